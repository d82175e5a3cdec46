package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestService() *Service {
	return NewService("access-secret", "refresh-secret", 15*time.Minute, 10*24*time.Hour)
}

func TestNewService(t *testing.T) {
	service := newTestService()

	assert.NotNil(t, service)
	assert.Equal(t, []byte("access-secret"), service.accessSecret)
	assert.Equal(t, []byte("refresh-secret"), service.refreshSecret)
}

func TestGenerateAccessToken(t *testing.T) {
	service := newTestService()

	token, err := service.GenerateAccessToken("user-123")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestValidateAccessToken_RoundTrip(t *testing.T) {
	service := newTestService()

	token, err := service.GenerateAccessToken("user-123")
	assert.NoError(t, err)

	claims, err := service.ValidateAccessToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, "user-123", claims.UserID)
}

func TestValidateRefreshToken_RoundTrip(t *testing.T) {
	service := newTestService()

	token, err := service.GenerateRefreshToken("user-456")
	assert.NoError(t, err)

	claims, err := service.ValidateRefreshToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-456", claims.UserID)
}

func TestValidateAccessToken_RejectsRefreshToken(t *testing.T) {
	service := newTestService()

	refreshToken, err := service.GenerateRefreshToken("user-123")
	assert.NoError(t, err)

	// Signed with a different secret, so it must not validate as access.
	_, err = service.ValidateAccessToken(refreshToken)
	assert.Error(t, err)
}

func TestValidateRefreshToken_RejectsAccessToken(t *testing.T) {
	service := newTestService()

	accessToken, err := service.GenerateAccessToken("user-123")
	assert.NoError(t, err)

	_, err = service.ValidateRefreshToken(accessToken)
	assert.Error(t, err)
}

func TestValidateAccessToken_InvalidToken(t *testing.T) {
	service := newTestService()

	_, err := service.ValidateAccessToken("invalid-token")
	assert.Error(t, err)
}

func TestValidateAccessToken_EmptyToken(t *testing.T) {
	service := newTestService()

	_, err := service.ValidateAccessToken("")
	assert.Error(t, err)
}

func TestValidateAccessToken_WrongSecret(t *testing.T) {
	service1 := NewService("secret-1", "refresh-1", time.Minute, time.Hour)
	service2 := NewService("secret-2", "refresh-2", time.Minute, time.Hour)

	token, err := service1.GenerateAccessToken("user-123")
	assert.NoError(t, err)

	_, err = service2.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestValidateAccessToken_ExpiredToken(t *testing.T) {
	service := NewService("access-secret", "refresh-secret", -time.Minute, time.Hour)

	token, err := service.GenerateAccessToken("user-123")
	assert.NoError(t, err)

	_, err = service.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestGenerateAccessToken_ExpirationSet(t *testing.T) {
	service := newTestService()

	token, err := service.GenerateAccessToken("user-123")
	assert.NoError(t, err)

	claims, err := service.ValidateAccessToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims.ExpiresAt)
	assert.True(t, time.Now().Before(claims.ExpiresAt.Time))
}
