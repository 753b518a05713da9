// Package superadmin guards the destructive admin operations (activity log
// purge, and whatever joins it later) behind a passphrase unlock. The old
// dashboard kept an "unlocked" flag in browser session storage; here the
// unlock issues a short-lived signed token instead, so the check cannot be
// forged client-side.
package superadmin

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/mirayfashion/admin-backend/pkg/config"
	"github.com/mirayfashion/admin-backend/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// Claims represents the superadmin session claims
type Claims struct {
	jwt.RegisteredClaims
	Actor string `json:"actor"`
}

// Session contains an issued superadmin token
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	TokenType string    `json:"token_type"`
}

// Manager handles superadmin session tokens
type Manager struct {
	config *config.SessionConfig
}

// NewManager creates a new session manager
func NewManager(cfg *config.SessionConfig) *Manager {
	return &Manager{config: cfg}
}

// Unlock verifies the passphrase against the configured bcrypt hash and
// issues a session token for the given actor.
func (m *Manager) Unlock(actor, passphrase string) (*Session, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(m.config.PassphraseHash), []byte(passphrase)); err != nil {
		return nil, errors.InvalidCredentials()
	}

	now := time.Now()
	expiresAt := now.Add(m.config.Expiry)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.config.Issuer,
			Subject:   actor,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
		Actor: actor,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(m.config.Secret))
	if err != nil {
		return nil, err
	}

	return &Session{
		Token:     tokenString,
		ExpiresAt: expiresAt,
		TokenType: "Bearer",
	}, nil
}

// Validate validates a session token and returns the claims
func (m *Manager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.TokenInvalid()
		}
		return []byte(m.config.Secret), nil
	})

	if err != nil {
		if err.Error() == "token has invalid claims: token is expired" {
			return nil, errors.TokenExpired()
		}
		return nil, errors.TokenInvalid()
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.TokenInvalid()
	}

	return claims, nil
}

// HashPassphrase derives the bcrypt hash to store in configuration. Exposed
// for the setup path and tests.
func HashPassphrase(passphrase string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(passphrase), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
