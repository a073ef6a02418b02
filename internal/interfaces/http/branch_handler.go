package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/faithbit/ssms-api/internal/application/usecase"
	"github.com/faithbit/ssms-api/internal/domain"
)

// BranchHandler serves the branch read endpoints.
type BranchHandler struct {
	uc *usecase.BranchUseCase
}

// NewBranchHandler builds the branch handler.
func NewBranchHandler(uc *usecase.BranchUseCase) *BranchHandler {
	return &BranchHandler{uc: uc}
}

// List returns the active branches.
func (h *BranchHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, "Failed to list branches")
	}
	return respondOK(c, "Branches retrieved", out)
}

// GetByID fetches one branch.
func (h *BranchHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respondError(c, fiber.StatusNotFound, "Branch not found")
		}
		return respondError(c, fiber.StatusInternalServerError, "Failed to load branch")
	}
	return respondOK(c, "Branch retrieved", out)
}
