package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arivera/clubchat/internal/app/models"
)

func newTestService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "clubchat.test",
	})
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := newTestService(time.Hour)
	user := &models.User{ID: "user-1", Email: "alex@example.com", DisplayName: "Alex"}

	access, refresh, expiresIn, refreshExpiresIn, err := svc.GenerateTokenPair(user)
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, 3600, expiresIn)
	assert.Equal(t, 86400, refreshExpiresIn)

	claims, err := svc.ValidateAndExtractClaims(access)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alex@example.com", claims.Email)
}

func TestValidateTokenFailures(t *testing.T) {
	user := &models.User{ID: "user-1", Email: "alex@example.com", DisplayName: "Alex"}

	t.Run("expired token", func(t *testing.T) {
		svc := newTestService(-time.Minute)

		access, _, _, _, err := svc.GenerateTokenPair(user)
		require.NoError(t, err)

		_, err = svc.ValidateAndExtractClaims(access)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		svc := newTestService(time.Hour)
		access, _, _, _, err := svc.GenerateTokenPair(user)
		require.NoError(t, err)

		other := NewJWTService(JWTConfig{
			SecretKey:       "other-secret",
			AccessTokenExp:  time.Hour,
			RefreshTokenExp: 24 * time.Hour,
			TokenIssuer:     "clubchat.test",
		})
		_, err = other.ValidateAndExtractClaims(access)
		assert.Error(t, err)
	})

	t.Run("empty token", func(t *testing.T) {
		svc := newTestService(time.Hour)
		_, err := svc.ValidateAndExtractClaims("")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
