package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/faithbit/ssms-api/internal/application/dto"
	"github.com/faithbit/ssms-api/internal/application/usecase"
	"github.com/faithbit/ssms-api/internal/domain"
)

// CustomerHandler serves the customer CRUD and listing endpoints.
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler builds the customer handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create registers a customer; the customer number is generated server-side.
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := validateCreateCustomer(in); !errs.Empty() {
		return respondValidation(c, errs)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return respondError(c, fiber.StatusBadRequest, "Invalid customer data")
		case errors.Is(err, domain.ErrNumberConflict):
			return respondError(c, fiber.StatusBadRequest, "Could not allocate a customer number, please retry")
		case errors.Is(err, domain.ErrDuplicate):
			return respondError(c, fiber.StatusBadRequest, "Customer already exists")
		}
		return respondError(c, fiber.StatusInternalServerError, "Failed to create customer")
	}
	return respondCreated(c, "Customer created", out)
}

// GetByID fetches one active customer.
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respondError(c, fiber.StatusNotFound, "Customer not found")
		}
		return respondError(c, fiber.StatusInternalServerError, "Failed to load customer")
	}
	return respondOK(c, "Customer retrieved", out)
}

// List returns a filtered page of customers with pagination metadata.
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	var in dto.CustomerListRequest
	if err := c.QueryParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid query parameters")
	}
	items, pagination, err := h.uc.List(c.Context(), in)
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, "Failed to list customers")
	}
	return respondPaginated(c, "Customers retrieved", items, pagination)
}

// Update mutates the writable fields; the customer number never changes.
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return respondError(c, fiber.StatusNotFound, "Customer not found")
		case errors.Is(err, domain.ErrInvalidInput):
			return respondError(c, fiber.StatusBadRequest, "Invalid customer data")
		case errors.Is(err, domain.ErrDuplicate):
			return respondError(c, fiber.StatusBadRequest, "Customer already exists")
		}
		return respondError(c, fiber.StatusInternalServerError, "Failed to update customer")
	}
	return respondOK(c, "Customer updated", out)
}

// Deactivate soft-deletes a customer.
func (h *CustomerHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.uc.Deactivate(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respondError(c, fiber.StatusNotFound, "Customer not found")
		}
		return respondError(c, fiber.StatusInternalServerError, "Failed to deactivate customer")
	}
	return respondOK(c, "Customer deactivated", nil)
}

func validateCreateCustomer(in dto.CreateCustomerRequest) dto.FieldErrors {
	errs := dto.FieldErrors{}
	if in.Type == "business" {
		if in.CompanyName == "" {
			errs.Add("company_name", "company_name is required for business customers")
		}
	} else if in.FirstName == "" && in.LastName == "" && in.Phone == "" {
		errs.Add("first_name", "a name or phone number is required")
	}
	return errs
}
