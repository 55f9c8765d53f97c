package v1

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/quoteviral/quoteviral/pkg/types/errs"
)

// @Summary  	Serve optimized image
// @Description Returns a stored asset re-encoded for the client's Accept, DPR and Save-Data headers
// @Tags 		serving
// @Produce 	image/jpeg,image/png,image/webp
// @Param 		path path string true "Asset path under generated/ or templates/"
// @Success 	200 {file} 	binary
// @Success 	304 "Not modified"
// @Failure 	404 {object} response.Error "Image not found"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/serve/{path} [get]
func (r *V1) serveImage(ctx *fiber.Ctx) error {
	assetPath := ctx.Params("*")
	if assetPath == "" {
		return errorResponse(ctx, http.StatusBadRequest, "invalid path")
	}

	result, err := r.serving.Serve(ctx.UserContext(), assetPath, capabilities(ctx), ctx.Get(fiber.HeaderIfNoneMatch))
	if err != nil {
		if errors.Is(err, errs.ErrRecordNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "image not found")
		}

		return r.fail(ctx, "restapi - v1 - serveImage", err)
	}

	for k, v := range result.Headers {
		ctx.Set(k, v)
	}
	ctx.Set(fiber.HeaderETag, result.ETag)

	if result.NotModified {
		return ctx.SendStatus(http.StatusNotModified)
	}

	ctx.Set(fiber.HeaderContentType, result.ContentType)

	return ctx.Send(result.Data)
}
