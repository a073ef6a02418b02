package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/faithbit/ssms-api/internal/application/usecase"
)

// DashboardHandler serves the admin dashboard aggregates.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler builds the dashboard handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats returns the headline counts and the per-category product tally.
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.Context())
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, "Failed to load dashboard stats")
	}
	return respondOK(c, "Dashboard stats retrieved", out)
}
