package v1

import (
	"io"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/quoteviral/quoteviral/internal/controller/restapi/v1/response"
	"github.com/quoteviral/quoteviral/internal/dto"
)

// @Summary  	Upload base image
// @Description Validates, standardizes and stores an image with its derived variants
// @Tags 		uploads
// @Accept 		mpfd
// @Produce 	json
// @Param 		image 	 formData file   true  "Image file (jpeg, png, webp, gif), max 10MB"
// @Param 		category formData string false "Image category (portrait, landscape, ...)"
// @Param 		userId 	 formData string false "Uploader ID"
// @Success 	200 {object} response.Upload
// @Failure 	400 {object} response.Error "Missing file or failed validation"
// @Failure 	429 {object} response.RateLimited "Rate limit exceeded"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/api/upload [post]
func (r *V1) uploadImage(ctx *fiber.Ctx) error {
	// 1. multipart file
	file, err := ctx.FormFile("image")
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "no file provided")
	}

	fileReader, err := file.Open()
	if err != nil {
		r.logger.Error(err, "restapi - v1 - uploadImage")

		return errorResponse(ctx, http.StatusInternalServerError, "problems with opening the file")
	}
	defer fileReader.Close()

	data, err := io.ReadAll(fileReader)
	if err != nil {
		r.logger.Error(err, "restapi - v1 - uploadImage")

		return errorResponse(ctx, http.StatusInternalServerError, "problems with reading the file")
	}

	// 2. upload
	result, err := r.uploads.Upload(ctx.UserContext(), caller(ctx), dto.UploadParams{
		Data:         data,
		OriginalName: file.Filename,
		ContentType:  file.Header.Get(fiber.HeaderContentType),
		Size:         file.Size,
		UserID:       ctx.FormValue("userId"),
		Category:     ctx.FormValue("category"),
	})
	if err != nil {
		return r.fail(ctx, "restapi - v1 - uploadImage", err)
	}

	// 3. response
	return ctx.JSON(response.Upload{
		Success:  true,
		ImageID:  result.ImageID,
		Variants: result.Variants,
		Metadata: result.Metadata,
	})
}
