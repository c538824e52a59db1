package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-inventory-ledger/internal/model"
	"go-inventory-ledger/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedApp(tokens *jwt.TokenService, required model.Role) *fiber.App {
	app := fiber.New()

	handlers := []fiber.Handler{RequireAuth(tokens)}
	if required != "" {
		handlers = append(handlers, RequireRole(required))
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"username":        Username(c),
			"role":            Role(c),
			"establishmentId": EstablishmentID(c),
		})
	})

	app.Get("/protected", handlers...)
	return app
}

func requestWithToken(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: TokenCookie, Value: token})
	}
	return req
}

func TestRequireAuthMissingCookie(t *testing.T) {
	tokens := jwt.NewTokenService("test-secret", "inventory-ledger")
	app := newProtectedApp(tokens, "")

	resp, err := app.Test(requestWithToken(""))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthInvalidToken(t *testing.T) {
	tokens := jwt.NewTokenService("test-secret", "inventory-ledger")
	app := newProtectedApp(tokens, "")

	resp, err := app.Test(requestWithToken("garbage"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthValidToken(t *testing.T) {
	tokens := jwt.NewTokenService("test-secret", "inventory-ledger")
	app := newProtectedApp(tokens, "")

	est := 1
	token, err := tokens.Generate("alice", model.RoleWasteManagement, &est)
	require.NoError(t, err)

	resp, err := app.Test(requestWithToken(token))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRoleMismatch(t *testing.T) {
	tokens := jwt.NewTokenService("test-secret", "inventory-ledger")
	app := newProtectedApp(tokens, model.RoleAdmin)

	token, err := tokens.Generate("bob", model.RoleWasteManagement, nil)
	require.NoError(t, err)

	resp, err := app.Test(requestWithToken(token))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireRoleMatch(t *testing.T) {
	tokens := jwt.NewTokenService("test-secret", "inventory-ledger")
	app := newProtectedApp(tokens, model.RoleAdmin)

	token, err := tokens.Generate("root", model.RoleAdmin, nil)
	require.NoError(t, err)

	resp, err := app.Test(requestWithToken(token))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
