package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/faithbit/ssms-api/internal/application/dto"
)

// Every endpoint answers with the same envelope: success, message, and the
// optional data / errors / pagination blocks. Clients branch on success and
// the HTTP status, never on message text.

func respondOK(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(dto.Response{Success: true, Message: message, Data: data})
}

func respondCreated(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(dto.Response{Success: true, Message: message, Data: data})
}

func respondPaginated(c *fiber.Ctx, message string, data interface{}, p *dto.Pagination) error {
	return c.Status(fiber.StatusOK).JSON(dto.Response{Success: true, Message: message, Data: data, Pagination: p})
}

func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.Response{Success: false, Message: message})
}

func respondValidation(c *fiber.Ctx, errs dto.FieldErrors) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.Response{
		Success: false,
		Message: "Validation failed",
		Errors:  errs,
	})
}
