package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/faithbit/ssms-api/internal/application/auth"
	"github.com/faithbit/ssms-api/internal/application/dto"
	"github.com/faithbit/ssms-api/internal/domain"
)

// AuthHandler serves login, refresh, logout and the current-user lookup.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler builds the auth handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login authenticates with username (or email) and password. Bad password
// and unknown account answer identically.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	errs := dto.FieldErrors{}
	if in.Username == "" {
		errs.Add("username", "username is required")
	}
	if in.Password == "" {
		errs.Add("password", "password is required")
	}
	if !errs.Empty() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Response{
			Success: false,
			Message: "username and password are required",
			Errors:  errs,
		})
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			return respondError(c, fiber.StatusUnauthorized, "Invalid credentials")
		case errors.Is(err, domain.ErrAccountNotActive):
			return respondError(c, fiber.StatusForbidden, "Account is not active")
		}
		return respondError(c, fiber.StatusInternalServerError, "Login failed")
	}
	return respondOK(c, "Login successful", out)
}

// Refresh rotates the token pair. Every failure mode answers the same way.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var in dto.RefreshRequest
	if err := c.BodyParser(&in); err != nil || in.RefreshToken == "" {
		return respondError(c, fiber.StatusBadRequest, "refresh_token is required")
	}
	out, err := h.uc.Refresh(c.Context(), in.RefreshToken)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidToken) {
			return respondError(c, fiber.StatusUnauthorized, "Invalid or expired refresh token")
		}
		return respondError(c, fiber.StatusInternalServerError, "Token refresh failed")
	}
	return respondOK(c, "Token refreshed", out)
}

// Logout revokes the stored token pair for the authenticated user.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(c.Context(), CurrentUserID(c)); err != nil {
		return respondError(c, fiber.StatusInternalServerError, "Logout failed")
	}
	return respondOK(c, "Logged out successfully", nil)
}

// Me returns the authenticated user's profile and resolved permissions. The
// user is re-read so a status change takes effect before token expiry.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(c.Context(), CurrentUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return respondError(c, fiber.StatusUnauthorized, "Invalid or expired token")
		}
		return respondError(c, fiber.StatusInternalServerError, "Failed to load user")
	}
	return respondOK(c, "User retrieved", out)
}
