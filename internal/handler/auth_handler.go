package handler

import (
	"time"

	"go-inventory-ledger/internal/middleware"
	"go-inventory-ledger/internal/service"
	"go-inventory-ledger/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService   service.AuthService
	secureCookies bool
}

func NewAuthHandler(authService service.AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		secureCookies: secureCookies,
	}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Name            string `json:"name"`
	Password        string `json:"password"`
	EstablishmentID *int   `json:"establishmentId"`
}

// Login authenticates a user and sets the session cookie
// POST /user/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid JSON"})
	}

	if req.Name == "" || req.Password == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Missing required fields: name, password",
		})
	}

	result, err := h.authService.Login(req.Name, req.Password, req.EstablishmentID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	// Session cookie: httpOnly + strict same-site, lifetime matches the
	// token's 24h expiry.
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    result.Token,
		Expires:  time.Now().Add(jwt.TokenTTL),
		HTTPOnly: true,
		Secure:   h.secureCookies,
		SameSite: fiber.CookieSameSiteStrictMode,
	})

	return c.JSON(fiber.Map{
		"success":         true,
		"message":         "Login successful",
		"username":        result.Username,
		"role":            result.Role,
		"establishmentId": result.EstablishmentID,
	})
}

// TokenData returns the decoded claims of the current session
// GET /user/tokendata
func (h *AuthHandler) TokenData(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"username":        middleware.Username(c),
		"role":            middleware.Role(c),
		"establishmentId": middleware.EstablishmentID(c),
	})
}
