package handlers

import (
	"github.com/gofiber/fiber/v2"
)

type healthResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// HealthHandler serves the liveness payload on the root path.
type HealthHandler struct{ payload healthResponse }

func NewHealthHandler(serviceName string) *HealthHandler {
	return &HealthHandler{payload: healthResponse{
		Message: serviceName + " API is running",
		Status:  "healthy",
	}}
}

// Root: basic liveness check.
// @Summary Liveness probe
// @Tags    health
// @Produce json
// @Success 200 {object} healthResponse
// @Router  / [get]
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.payload)
}
