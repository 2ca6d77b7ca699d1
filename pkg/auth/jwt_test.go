package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_HMACRoundTrip(t *testing.T) {
	svc, err := NewJWTService(JWTConfig{
		Secret:     "test-secret",
		Issuer:     "academix-gateway",
		Expiration: time.Hour,
	})
	require.NoError(t, err)

	userID := uuid.New()
	tenantID := uuid.New()

	token, err := svc.GenerateToken(userID, tenantID, []string{RoleAccountant, RoleAuditor})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, tenantID, claims.TenantID)
	assert.True(t, claims.HasRole(RoleAccountant))
	assert.True(t, claims.HasRole(RoleAuditor))
	assert.False(t, claims.HasRole(RoleAdmin))
	assert.Equal(t, "academix-gateway", claims.Issuer)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	issuer, err := NewJWTService(JWTConfig{Secret: "secret-a", Expiration: time.Hour})
	require.NoError(t, err)
	validator, err := NewJWTService(JWTConfig{Secret: "secret-b"})
	require.NoError(t, err)

	token, err := issuer.GenerateToken(uuid.New(), uuid.New(), []string{RoleAdmin})
	require.NoError(t, err)

	_, err = validator.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsWrongIssuer(t *testing.T) {
	issuer, err := NewJWTService(JWTConfig{Secret: "s", Issuer: "someone-else", Expiration: time.Hour})
	require.NoError(t, err)
	validator, err := NewJWTService(JWTConfig{Secret: "s", Issuer: "academix-gateway"})
	require.NoError(t, err)

	token, err := issuer.GenerateToken(uuid.New(), uuid.New(), nil)
	require.NoError(t, err)

	_, err = validator.ValidateToken(token)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid issuer")
}

func TestNewJWTService_RequiresKeyMaterial(t *testing.T) {
	_, err := NewJWTService(JWTConfig{})
	assert.Error(t, err)
}
