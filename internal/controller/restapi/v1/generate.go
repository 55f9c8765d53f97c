package v1

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/quoteviral/quoteviral/internal/controller/restapi/v1/response"
	"github.com/quoteviral/quoteviral/internal/dto"
)

// @Summary  	Generate quote image
// @Description Overlays styled quote text on an uploaded base image and exports platform variants
// @Tags 		generation
// @Accept 		json
// @Produce 	json
// @Produce 	image/jpeg
// @Param 		request body dto.GenerateParams true "Generation parameters"
// @Success 	200 {object} response.Generate "Multi-format: variant URLs. Single format: raw image bytes"
// @Failure 	400 {object} response.Error "Missing or invalid parameters"
// @Failure 	404 {object} response.Error "Base image not found"
// @Failure 	429 {object} response.RateLimited "Rate limit exceeded"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/api/generate [post]
func (r *V1) generateQuote(ctx *fiber.Ctx) error {
	// 1. parse body
	var params dto.GenerateParams
	if err := ctx.BodyParser(&params); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid JSON body")
	}

	// 2. required fields
	if params.ImageID == "" || params.QuoteText == "" || params.FontID == "" {
		return errorResponse(ctx, http.StatusBadRequest, "Missing required fields: imageId, quoteText, fontId")
	}

	// 3. generate
	result, err := r.gen.Generate(ctx.UserContext(), caller(ctx), params)
	if err != nil {
		return r.fail(ctx, "restapi - v1 - generateQuote", err)
	}

	// 4. single format: the encoded image is the response body
	if result.SingleFormat() {
		ctx.Set(fiber.HeaderContentType, result.Format.ContentType())
		ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", result.Filename))
		if result.CacheHit {
			ctx.Set("X-Cache", "HIT")
		} else {
			ctx.Set("X-Cache", "MISS")
		}

		return ctx.Send(result.Image)
	}

	// 5. multi format: serving paths per variant
	return ctx.JSON(response.Generate{
		Success:      true,
		GenerationID: result.GenerationID,
		Variants:     result.VariantURLs,
		Metadata:     result.Metadata,
	})
}

// @Summary  	Batch generate quote images
// @Description Renders one image per quote, cycling through the provided base images
// @Tags 		generation
// @Accept 		json
// @Produce 	json
// @Param 		request body dto.BatchParams true "Batch parameters"
// @Success 	200 {object} response.Batch
// @Failure 	400 {object} response.Error "Malformed batch"
// @Failure 	429 {object} response.RateLimited "Rate limit exceeded"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/api/batch [post]
func (r *V1) generateBatch(ctx *fiber.Ctx) error {
	var params dto.BatchParams
	if err := ctx.BodyParser(&params); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid JSON body")
	}

	result, err := r.gen.GenerateBatch(ctx.UserContext(), caller(ctx), params)
	if err != nil {
		return r.fail(ctx, "restapi - v1 - generateBatch", err)
	}

	return ctx.JSON(response.Batch{
		Success:    true,
		BatchID:    result.BatchID,
		Total:      result.Total,
		Successful: result.Successful,
		Failed:     result.Failed,
		Results:    result.Results,
	})
}
