package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zapateria/backend/internal/infrastructure/config"
)

func newTestService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:     "test-secret",
		Expiration: time.Hour,
		Issuer:     "zapateria-test",
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	service := newTestService()
	userID := uuid.New()

	token, expiresAt, err := service.GenerateToken(userID, "admin", "admin")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := service.ValidateToken(token)

	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "zapateria-test", claims.Issuer)
}

func TestJWTService_ValidateToken_Errors(t *testing.T) {
	service := newTestService()

	t.Run("garbage token", func(t *testing.T) {
		_, err := service.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTService(config.JWTConfig{
			Secret:     "other-secret",
			Expiration: time.Hour,
			Issuer:     "zapateria-test",
		})
		token, _, err := other.GenerateToken(uuid.New(), "admin", "admin")
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		shortLived := NewJWTService(config.JWTConfig{
			Secret:     "test-secret",
			Expiration: -time.Minute,
			Issuer:     "zapateria-test",
		})
		token, _, err := shortLived.GenerateToken(uuid.New(), "admin", "admin")
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}
