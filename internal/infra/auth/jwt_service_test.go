package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/config"
	"storefront/internal/domain/service"
)

func newTestJWTService(t *testing.T, expiry time.Duration) service.TokenService {
	t.Helper()
	svc, err := NewJWTService(&config.Config{
		JWT: &config.JWTConfig{Secret: "test-secret", Expiry: expiry},
	})
	require.NoError(t, err)
	return svc
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{JWT: &config.JWTConfig{}})
	assert.Error(t, err)

	_, err = NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc := newTestJWTService(t, 24*time.Hour)

	token, err := svc.IssueToken("USER-ABC123", "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "USER-ABC123", claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.Expiry, time.Minute)
}

func TestJWTService_TokenDurationMatchesConfig(t *testing.T) {
	// The constructor must not rewrite the configured lifetime; defaults
	// belong to the config loader.
	svc := newTestJWTService(t, -time.Minute)
	assert.Equal(t, -time.Minute, svc.TokenDuration())
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := newTestJWTService(t, -time.Minute)

	token, err := svc.IssueToken("USER-ABC123", "user@example.com")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, service.ErrTokenMalformed)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer := newTestJWTService(t, time.Hour)
	token, err := issuer.IssueToken("USER-ABC123", "user@example.com")
	require.NoError(t, err)

	verifier, err := NewJWTService(&config.Config{
		JWT: &config.JWTConfig{Secret: "another-secret", Expiry: time.Hour},
	})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, service.ErrTokenMalformed)
}
