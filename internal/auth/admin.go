package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/sthemsandsaves/booking-backend/internal/domain"
)

// AdminAuthenticator verifies the single administrator credential and issues
// session tokens. Replaces the legacy shared-password page gate with a
// verifiable, expiring token.
type AdminAuthenticator struct {
	email        string
	passwordHash string
	jwtManager   *JWTManager
}

// NewAdminAuthenticator creates an AdminAuthenticator for the configured
// admin account. passwordHash is a bcrypt hash.
func NewAdminAuthenticator(email, passwordHash string, jwtManager *JWTManager) *AdminAuthenticator {
	return &AdminAuthenticator{
		email:        email,
		passwordHash: passwordHash,
		jwtManager:   jwtManager,
	}
}

// Login verifies the credential pair and returns a signed session token.
func (a *AdminAuthenticator) Login(email, password string) (string, error) {
	if email != a.email {
		return "", domain.NewUnauthorizedError("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(password)); err != nil {
		return "", domain.NewUnauthorizedError("invalid credentials")
	}

	token, err := a.jwtManager.GenerateToken(email)
	if err != nil {
		return "", err
	}
	return token, nil
}

// HashPassword produces a bcrypt hash for bootstrapping the admin credential.
func HashPassword(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}
