package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/faithbit/ssms-api/internal/application/dto"
	"github.com/faithbit/ssms-api/internal/application/usecase"
	"github.com/faithbit/ssms-api/internal/domain"
)

// ProductHandler serves the catalog endpoints plus the point-of-sale lookups.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler builds the product handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create adds a product. When no barcode is supplied one is generated from
// the product numbering sequence.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	errs := dto.FieldErrors{}
	if in.SKU == "" {
		errs.Add("sku", "sku is required")
	}
	if in.Name == "" {
		errs.Add("name", "name is required")
	}
	if !errs.Empty() {
		return respondValidation(c, errs)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return respondError(c, fiber.StatusBadRequest, "Invalid product data")
		case errors.Is(err, domain.ErrBarcodeCollision):
			return respondError(c, fiber.StatusBadRequest, "Barcode already in use")
		case errors.Is(err, domain.ErrDuplicate):
			return respondError(c, fiber.StatusBadRequest, "Product already exists")
		}
		return respondError(c, fiber.StatusInternalServerError, "Failed to create product")
	}
	return respondCreated(c, "Product created", out)
}

// Search is the POS quick search (?q=term&limit=n).
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.Context(), c.Query("q"), c.QueryInt("limit"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return respondError(c, fiber.StatusBadRequest, "Search term must be at least 2 characters")
		}
		return respondError(c, fiber.StatusInternalServerError, "Search failed")
	}
	return respondOK(c, "Products retrieved", out)
}

// GetByBarcode is the POS scan lookup (?barcode=code).
func (h *ProductHandler) GetByBarcode(c *fiber.Ctx) error {
	out, err := h.uc.GetByBarcode(c.Context(), c.Query("barcode"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return respondError(c, fiber.StatusBadRequest, "barcode is required")
		case errors.Is(err, domain.ErrNotFound):
			return respondError(c, fiber.StatusNotFound, "Product not found")
		}
		return respondError(c, fiber.StatusInternalServerError, "Lookup failed")
	}
	return respondOK(c, "Product retrieved", out)
}

// GetByID fetches one active product.
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respondError(c, fiber.StatusNotFound, "Product not found")
		}
		return respondError(c, fiber.StatusInternalServerError, "Failed to load product")
	}
	return respondOK(c, "Product retrieved", out)
}

// List returns a filtered page of products with pagination metadata.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var in dto.ProductListRequest
	if err := c.QueryParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid query parameters")
	}
	items, pagination, err := h.uc.List(c.Context(), in)
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, "Failed to list products")
	}
	return respondPaginated(c, "Products retrieved", items, pagination)
}

// Update mutates the writable fields; SKU and barcode never change.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return respondError(c, fiber.StatusNotFound, "Product not found")
		case errors.Is(err, domain.ErrInvalidInput):
			return respondError(c, fiber.StatusBadRequest, "Invalid product data")
		case errors.Is(err, domain.ErrDuplicate):
			return respondError(c, fiber.StatusBadRequest, "Product already exists")
		}
		return respondError(c, fiber.StatusInternalServerError, "Failed to update product")
	}
	return respondOK(c, "Product updated", out)
}

// Deactivate soft-deletes a product.
func (h *ProductHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.uc.Deactivate(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respondError(c, fiber.StatusNotFound, "Product not found")
		}
		return respondError(c, fiber.StatusInternalServerError, "Failed to deactivate product")
	}
	return respondOK(c, "Product deactivated", nil)
}
