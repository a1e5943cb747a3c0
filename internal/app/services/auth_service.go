package services

import (
	"crypto/subtle"

	"github.com/seda/schoolpulse/internal/pkg/apperrors"
	"github.com/seda/schoolpulse/internal/pkg/auth"
	"github.com/seda/schoolpulse/internal/pkg/logger"
)

// AuthService authenticates the single reviewer account and issues
// access tokens for the identifiable tier.
type AuthService struct {
	jwtService   *auth.JWTService
	username     string
	passwordHash string
}

// NewAuthService creates a new AuthService
func NewAuthService(jwtService *auth.JWTService, username, passwordHash string) *AuthService {
	return &AuthService{
		jwtService:   jwtService,
		username:     username,
		passwordHash: passwordHash,
	}
}

// Login verifies the reviewer credentials and returns an access token
// with its lifetime in seconds. Username and password failures are
// indistinguishable to the caller.
func (s *AuthService) Login(username, password string) (string, int, error) {
	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	if !auth.CheckPassword(s.passwordHash, password) || !usernameOK {
		logger.Warn().Str("username", username).Msg("Login attempt rejected")
		return "", 0, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(username)
	if err != nil {
		return "", 0, err
	}

	logger.Info().Str("username", username).Msg("Reviewer logged in")
	return token, expiresIn, nil
}
