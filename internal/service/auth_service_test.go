package service

import (
	"testing"

	"go-inventory-ledger/internal/model"
	"go-inventory-ledger/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(t *testing.T, name, password string, role model.Role, establishmentID *int) *model.User {
	t.Helper()
	user := &model.User{
		Name:            name,
		Role:            role,
		EstablishmentID: establishmentID,
	}
	require.NoError(t, user.SetPassword(password))
	return user
}

func TestLoginSuccess(t *testing.T) {
	est := 2
	repo := &fakeUserRepo{users: []*model.User{
		newTestUser(t, "alice", "secret123", model.RoleProductManagement, &est),
	}}
	tokens := jwt.NewTokenService("test-secret", "inventory-ledger")
	svc := NewAuthService(repo, tokens)

	resp, err := svc.Login("alice", "secret123", &est)
	require.NoError(t, err)

	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, model.RoleProductManagement, resp.Role)
	require.NotNil(t, resp.EstablishmentID)
	assert.Equal(t, 2, *resp.EstablishmentID)

	claims, err := tokens.Validate(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, model.RoleProductManagement, claims.Role)
}

func TestLoginUnknownUser(t *testing.T) {
	tokens := jwt.NewTokenService("test-secret", "inventory-ledger")
	svc := NewAuthService(&fakeUserRepo{}, tokens)

	_, err := svc.Login("nobody", "whatever", nil)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := &fakeUserRepo{users: []*model.User{
		newTestUser(t, "alice", "secret123", model.RoleAdmin, nil),
	}}
	tokens := jwt.NewTokenService("test-secret", "inventory-ledger")
	svc := NewAuthService(repo, tokens)

	_, err := svc.Login("alice", "wrong", nil)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginScopedByEstablishment(t *testing.T) {
	est := 1
	repo := &fakeUserRepo{users: []*model.User{
		newTestUser(t, "alice", "secret123", model.RoleWasteManagement, &est),
	}}
	tokens := jwt.NewTokenService("test-secret", "inventory-ledger")
	svc := NewAuthService(repo, tokens)

	other := 3
	_, err := svc.Login("alice", "secret123", &other)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
