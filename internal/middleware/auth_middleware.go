package middleware

import (
	"go-inventory-ledger/internal/model"
	"go-inventory-ledger/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// TokenCookie is the cookie carrying the session token.
const TokenCookie = "token"

// Locals keys populated by RequireAuth.
const (
	LocalUsername        = "username"
	LocalRole            = "role"
	LocalEstablishmentID = "establishment_id"
)

// RequireAuth validates the session cookie and stashes the decoded claims in
// the request context. Missing, invalid or expired tokens yield 401; expiry
// is terminal, the client must log in again.
func RequireAuth(tokens *jwt.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(TokenCookie)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Authentication token missing"})
		}

		claims, err := tokens.Validate(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid or expired token"})
		}

		c.Locals(LocalUsername, claims.Username)
		c.Locals(LocalRole, claims.Role)
		c.Locals(LocalEstablishmentID, claims.EstablishmentID)

		return c.Next()
	}
}

// RequireRole rejects any authenticated caller whose role is not exactly the
// required one. Runs after RequireAuth.
func RequireRole(required model.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(LocalRole).(model.Role)
		if !ok || role != required {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Insufficient permissions"})
		}
		return c.Next()
	}
}

// Username returns the authenticated user's name from the request context.
func Username(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocalUsername).(string); ok {
		return v
	}
	return ""
}

// Role returns the authenticated user's role from the request context.
func Role(c *fiber.Ctx) model.Role {
	if v, ok := c.Locals(LocalRole).(model.Role); ok {
		return v
	}
	return ""
}

// EstablishmentID returns the establishment claim, nil when not scoped.
func EstablishmentID(c *fiber.Ctx) *int {
	if v, ok := c.Locals(LocalEstablishmentID).(*int); ok {
		return v
	}
	return nil
}
