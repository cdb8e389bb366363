package authenticating

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stockmate/stockmate-api/internal/config"
	"github.com/stockmate/stockmate-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(secret string, ttl time.Duration) *config.Config {
	return &config.Config{
		Auth: config.Auth{
			Enabled:  true,
			Secret:   secret,
			TokenTTL: ttl,
		},
	}
}

func TestIssueAndValidateToken(t *testing.T) {
	service := NewService(testConfig("test-secret", time.Hour))

	token, err := service.IssueToken("market-data-sync")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, "market-data-sync", claims.Service)
	assert.Equal(t, "market-data-sync", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestIssueTokenRequiresServiceName(t *testing.T) {
	service := NewService(testConfig("test-secret", time.Hour))

	token, err := service.IssueToken("")

	assert.Empty(t, token)
	assert.ErrorIs(t, err, ErrMissingServiceName)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	service := NewService(testConfig("test-secret", -time.Hour))

	token, err := service.IssueToken("market-data-sync")
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)

	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrExpiredToken)
	assert.True(t, IsTokenError(err))
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewService(testConfig("secret-one", time.Hour))
	validator := NewService(testConfig("secret-two", time.Hour))

	token, err := issuer.IssueToken("market-data-sync")
	require.NoError(t, err)

	claims, err := validator.ValidateToken(token)

	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsUnsignedToken(t *testing.T) {
	service := NewService(testConfig("test-secret", time.Hour))

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, domain.ServiceClaims{
		Service: "market-data-sync",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)

	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	service := NewService(testConfig("test-secret", time.Hour))

	claims, err := service.ValidateToken("not-a-token")

	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)

	var authErr *AuthError
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, "AUTH_002", authErr.Code)
}
