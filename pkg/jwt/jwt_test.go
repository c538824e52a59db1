package jwt

import (
	"testing"

	"go-inventory-ledger/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateValidateRoundTrip(t *testing.T) {
	svc := NewTokenService("unit-test-secret", "inventory-ledger")

	est := 4
	token, err := svc.Generate("alice", model.RoleProductManagement, &est)
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, model.RoleProductManagement, claims.Role)
	require.NotNil(t, claims.EstablishmentID)
	assert.Equal(t, 4, *claims.EstablishmentID)
	assert.Equal(t, "inventory-ledger", claims.Issuer)
}

func TestValidateNilEstablishment(t *testing.T) {
	svc := NewTokenService("unit-test-secret", "inventory-ledger")

	token, err := svc.Generate("admin", model.RoleAdmin, nil)
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Nil(t, claims.EstablishmentID)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuing := NewTokenService("secret-a", "inventory-ledger")
	verifying := NewTokenService("secret-b", "inventory-ledger")

	token, err := issuing.Generate("alice", model.RoleAdmin, nil)
	require.NoError(t, err)

	_, err = verifying.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := NewTokenService("unit-test-secret", "inventory-ledger")

	_, err := svc.Validate("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
