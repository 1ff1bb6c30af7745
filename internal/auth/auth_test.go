package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sthemsandsaves/booking-backend/internal/domain"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	token, err := manager.GenerateToken("admin@example.com")
	require.NoError(t, err)

	claims, err := manager.ParseAndValidate(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)
}

func TestJWTManager_RejectsWrongSecret(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)
	other := NewJWTManager("other-secret", time.Hour)

	token, err := manager.GenerateToken("admin@example.com")
	require.NoError(t, err)

	_, err = other.ParseAndValidate(token)
	require.Error(t, err)
}

func TestJWTManager_RejectsExpiredToken(t *testing.T) {
	manager := NewJWTManager("test-secret", -time.Minute)

	token, err := manager.GenerateToken("admin@example.com")
	require.NoError(t, err)

	_, err = manager.ParseAndValidate(token)
	require.Error(t, err)
}

func TestAdminAuthenticator_Login(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	manager := NewJWTManager("test-secret", time.Hour)
	authenticator := NewAdminAuthenticator("admin@example.com", hash, manager)

	token, err := authenticator.Login("admin@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := manager.ParseAndValidate(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)
}

func TestAdminAuthenticator_RejectsBadCredentials(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	manager := NewJWTManager("test-secret", time.Hour)
	authenticator := NewAdminAuthenticator("admin@example.com", hash, manager)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "admin@example.com", "guess"},
		{"wrong email", "intruder@example.com", "s3cret-pass"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := authenticator.Login(tt.email, tt.password)
			var unauthorizedErr *domain.UnauthorizedError
			require.ErrorAs(t, err, &unauthorizedErr)
		})
	}
}
