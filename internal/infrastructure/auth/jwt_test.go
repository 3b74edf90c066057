package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tanner253/BigsAckies-sub001/internal/infrastructure/config"
)

func newTestService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-for-access-tokens",
		RefreshSecret:          "test-secret-key-for-refresh-tokens",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "reptile-store-test",
	})
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := newTestService()
	userID := uuid.New()

	pair, err := svc.GenerateTokenPair(GenerateTokenInput{
		UserID: userID,
		Name:   "ana",
		Role:   "customer",
	})
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, "Bearer", pair.TokenType)

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "customer", claims.Role)
	assert.False(t, claims.IsAdmin())

	got, err := claims.GetUserUUID()
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestTokenTypeEnforcement(t *testing.T) {
	svc := newTestService()
	pair, err := svc.GenerateTokenPair(GenerateTokenInput{UserID: uuid.New(), Role: "customer"})
	require.NoError(t, err)

	// A refresh token must not pass access validation and vice versa
	_, err = svc.ValidateAccessToken(pair.RefreshToken)
	assert.Error(t, err)

	_, err = svc.ValidateRefreshToken(pair.AccessToken)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := newTestService()
	_, err := svc.ValidateAccessToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshTokenOmitsRole(t *testing.T) {
	svc := newTestService()
	pair, err := svc.GenerateTokenPair(GenerateTokenInput{UserID: uuid.New(), Name: "ana", Role: "admin"})
	require.NoError(t, err)

	claims, err := svc.ValidateRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Empty(t, claims.Role)
}

func TestAdminClaims(t *testing.T) {
	svc := newTestService()
	pair, err := svc.GenerateTokenPair(GenerateTokenInput{UserID: uuid.New(), Role: "admin"})
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin())
	assert.Greater(t, claims.GetRemainingTTL(), time.Duration(0))
}
