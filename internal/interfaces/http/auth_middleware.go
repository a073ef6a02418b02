package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/faithbit/ssms-api/internal/domain/rbac"
	"github.com/faithbit/ssms-api/pkg/token"
)

// localClaims is the Locals key holding the verified access token claims.
const localClaims = "claims"

// Authenticate validates the Bearer access token and stores its claims in
// c.Locals for the handlers behind it. Refresh tokens never pass: the token
// type is part of verification.
func Authenticate(issuer *token.Issuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return respondError(c, fiber.StatusUnauthorized, "Access token required")
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return respondError(c, fiber.StatusUnauthorized, "Access token required")
		}
		claims, err := issuer.Verify(strings.TrimSpace(parts[1]), token.TypeAccess)
		if err != nil {
			return respondError(c, fiber.StatusUnauthorized, "Invalid or expired token")
		}
		c.Locals(localClaims, claims)
		return c.Next()
	}
}

// RequirePermission authorizes the request against the role permission table.
// Wildcards resolve at check time: admin's "*" and prefix grants like
// "customer.*" match without being materialized.
func RequirePermission(permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := CurrentClaims(c)
		if claims == nil {
			return respondError(c, fiber.StatusUnauthorized, "Access token required")
		}
		if !rbac.HasPermission(claims.Role, permission) {
			return respondError(c, fiber.StatusForbidden, "You do not have permission to perform this action")
		}
		return c.Next()
	}
}

// CurrentClaims returns the verified claims, or nil outside Authenticate.
func CurrentClaims(c *fiber.Ctx) *token.Claims {
	claims, _ := c.Locals(localClaims).(*token.Claims)
	return claims
}

// CurrentUserID returns the authenticated user id.
func CurrentUserID(c *fiber.Ctx) string {
	if claims := CurrentClaims(c); claims != nil {
		return claims.UserID
	}
	return ""
}
