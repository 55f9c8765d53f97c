package v1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/quoteviral/quoteviral/internal/catalog"
	"github.com/quoteviral/quoteviral/internal/controller/restapi/v1/response"
)

// @Summary  	List quotes
// @Description Returns seeded quotes for a category and language; unknown pairs fall back to motivational/en
// @Tags 		catalog
// @Produce 	json
// @Param 		category query string false "Quote category" default(motivational)
// @Param 		language query string false "Language code" default(en)
// @Success 	200 {array} entity.Quote
// @Router 		/api/quotes [get]
func (r *V1) getQuotes(ctx *fiber.Ctx) error {
	category := ctx.Query("category", "motivational")
	language := ctx.Query("language", "en")

	return ctx.JSON(catalog.Quotes(category, language))
}

// @Summary  	List templates
// @Description Returns stored template metadata, capped at 50 entries
// @Tags 		catalog
// @Produce 	json
// @Param 		category query string false "Template category" default(all)
// @Param 		language query string false "Language code" default(en)
// @Success 	200 {object} response.Templates
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/api/templates [get]
func (r *V1) getTemplates(ctx *fiber.Ctx) error {
	category := ctx.Query("category", "all")
	language := ctx.Query("language", "en")

	templates, err := r.serving.Templates(ctx.UserContext(), category, language)
	if err != nil {
		return r.fail(ctx, "restapi - v1 - getTemplates", err)
	}

	return ctx.JSON(response.Templates{
		Templates: templates,
		Total:     len(templates),
		Category:  category,
		Language:  language,
	})
}

// @Summary  	List font presets
// @Tags 		catalog
// @Produce 	json
// @Success 	200 {object} response.Fonts
// @Router 		/api/fonts [get]
func (r *V1) getFonts(ctx *fiber.Ctx) error {
	return ctx.JSON(response.Fonts{Fonts: catalog.Fonts()})
}

// @Summary  	List categories
// @Tags 		catalog
// @Produce 	json
// @Success 	200 {object} response.Categories
// @Router 		/api/categories [get]
func (r *V1) getCategories(ctx *fiber.Ctx) error {
	return ctx.JSON(response.Categories{Categories: catalog.Categories()})
}

// @Summary  	List languages
// @Tags 		catalog
// @Produce 	json
// @Success 	200 {object} response.Languages
// @Router 		/api/languages [get]
func (r *V1) getLanguages(ctx *fiber.Ctx) error {
	return ctx.JSON(response.Languages{Languages: catalog.Languages()})
}

// @Summary  	List output format presets
// @Tags 		catalog
// @Produce 	json
// @Success 	200 {object} response.Formats
// @Router 		/api/formats [get]
func (r *V1) getFormats(ctx *fiber.Ctx) error {
	return ctx.JSON(response.Formats{Formats: catalog.Formats()})
}
