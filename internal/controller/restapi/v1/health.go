package v1

import (
	"github.com/gofiber/fiber/v2"
)

// @Summary  	Service health
// @Description Probes storage dependencies and summarizes their state
// @Tags 		health
// @Produce 	json
// @Success 	200 {object} entity.Health
// @Router 		/api/health [get]
func (r *V1) getHealth(ctx *fiber.Ctx) error {
	return ctx.JSON(r.health.Check(ctx.UserContext()))
}
