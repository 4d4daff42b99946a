package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *JWTService {
	t.Helper()
	svc, err := NewJWTService(JWTConfig{
		Secret:     "test-secret-key",
		Issuer:     "agrocredito-test",
		Expiration: time.Hour,
	})
	require.NoError(t, err)
	return svc
}

func TestNewJWTService_RequiresKeyMaterial(t *testing.T) {
	_, err := NewJWTService(JWTConfig{Issuer: "agrocredito-test"})
	assert.Error(t, err)
}

func TestGenerateAndValidateToken_HMAC(t *testing.T) {
	svc := newTestService(t)

	userID := uuid.New()
	roles := []string{RoleAdmin, RoleFarmer}

	token, err := svc.GenerateToken(userID, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, roles, claims.Roles)
	assert.Equal(t, "agrocredito-test", claims.Issuer)
}

func TestGenerateAndValidateToken_RSA(t *testing.T) {
	privPEM, pubPEM, err := GenerateKeyPair()
	require.NoError(t, err)

	issuer, err := NewJWTService(JWTConfig{
		PrivateKeyPEM: string(privPEM),
		Issuer:        "agrocredito-test",
		Expiration:    time.Hour,
	})
	require.NoError(t, err)

	validator, err := NewJWTService(JWTConfig{
		PublicKeyPEM: string(pubPEM),
		Issuer:       "agrocredito-test",
	})
	require.NoError(t, err)

	userID := uuid.New()
	token, err := issuer.GenerateToken(userID, []string{RoleFarmer})
	require.NoError(t, err)

	claims, err := validator.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.True(t, claims.HasRole(RoleFarmer))
	assert.False(t, claims.HasRole(RoleAdmin))
}

func TestValidateToken_ValidationOnlyCannotSign(t *testing.T) {
	_, pubPEM, err := GenerateKeyPair()
	require.NoError(t, err)

	validator, err := NewJWTService(JWTConfig{PublicKeyPEM: string(pubPEM)})
	require.NoError(t, err)

	_, err = validator.GenerateToken(uuid.New(), []string{RoleFarmer})
	assert.Error(t, err)
}

func TestValidateToken_InvalidToken(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.ValidateToken("not-a-valid-token")
	assert.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := newTestService(t)

	other, err := NewJWTService(JWTConfig{
		Secret:     "different-secret",
		Issuer:     "agrocredito-test",
		Expiration: time.Hour,
	})
	require.NoError(t, err)

	token, err := other.GenerateToken(uuid.New(), []string{RoleFarmer})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(JWTConfig{
		Secret:     "test-secret-key",
		Issuer:     "agrocredito-test",
		Expiration: -time.Hour,
	})
	require.NoError(t, err)

	token, err := svc.GenerateToken(uuid.New(), []string{RoleAdmin})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_WrongIssuer(t *testing.T) {
	issuer, err := NewJWTService(JWTConfig{
		Secret:     "test-secret-key",
		Issuer:     "some-other-service",
		Expiration: time.Hour,
	})
	require.NoError(t, err)

	token, err := issuer.GenerateToken(uuid.New(), []string{RoleAdmin})
	require.NoError(t, err)

	svc := newTestService(t)
	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestClaims_HasRole(t *testing.T) {
	claims := &Claims{Roles: []string{RoleAdmin}}

	assert.True(t, claims.HasRole(RoleAdmin))
	assert.False(t, claims.HasRole(RoleFarmer))
}
