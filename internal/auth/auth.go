// Package auth issues and verifies the bearer tokens that guard the
// transaction endpoints. Tokens carry a fixed validity window and are
// opaque to the analytics core.
package auth

import (
	"errors"
	"fmt"
	"time"

	"looper/finance-dashboard/internal/apperror"
	"looper/finance-dashboard/internal/logging"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the fixed validity window for issued tokens.
const TokenTTL = time.Hour

// Credential is one user_id/password pair.
// Plaintext passwords are for the demo user table only.
type Credential struct {
	UserID   string `json:"user_id" yaml:"user_id"`
	Password string `json:"password" yaml:"password"`
}

// DefaultCredentials is the builtin demo user table.
var DefaultCredentials = []Credential{
	{UserID: "user_001", Password: "password1"},
	{UserID: "user_002", Password: "password2"},
	{UserID: "user_003", Password: "password3"},
	{UserID: "user_004", Password: "password4"},
}

// Service authenticates credential pairs and verifies issued tokens.
type Service struct {
	secret      []byte
	credentials []Credential
	now         func() time.Time
	logger      logging.Logger
}

// NewService creates a Service. An empty credential list falls back to
// the builtin demo table.
func NewService(secret string, credentials []Credential, logger logging.Logger) *Service {
	if len(credentials) == 0 {
		credentials = DefaultCredentials
	}
	if logger == nil {
		logger = &logging.MockLogger{}
	}
	return &Service{
		secret:      []byte(secret),
		credentials: credentials,
		now:         time.Now,
		logger:      logger,
	}
}

// Authenticate verifies a credential pair and mints a signed token valid
// for TokenTTL. A mismatch yields *apperror.AuthError.
func (s *Service) Authenticate(userID, password string) (string, error) {
	for _, c := range s.credentials {
		if c.UserID != userID || c.Password != password {
			continue
		}

		now := s.now()
		claims := jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
		if err != nil {
			return "", fmt.Errorf("error signing token: %w", err)
		}

		s.logger.WithField(logging.FieldUser, userID).Info("Issued token")
		return signed, nil
	}

	s.logger.WithField(logging.FieldUser, userID).Warn("Rejected credentials")
	return "", &apperror.AuthError{UserID: userID}
}

// Verify parses a bearer token and returns the user id it was issued to.
// Expired, malformed, or foreign-signed tokens yield *apperror.AuthError.
func (s *Service) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return "", &apperror.AuthError{}
	}
	return claims.Subject, nil
}

// IsAuthError reports whether err is a credential rejection.
func IsAuthError(err error) bool {
	var authErr *apperror.AuthError
	return errors.As(err, &authErr)
}
