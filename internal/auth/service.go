package auth

import (
	"fmt"
	"time"

	"schedulehq-backend/internal/config"
	apperrors "schedulehq-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Claims are the JWT claims issued on login
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AuthService issues and validates manager tokens
type AuthService struct {
	secret      []byte
	expiry      time.Duration
	managerUser string
	passwordOK  func(password string) bool
}

// NewAuthService creates a new auth service from configuration. In
// production a bcrypt hash is required; the plain-password knob exists for
// local development only.
func NewAuthService(cfg *config.Config) (*AuthService, error) {
	s := &AuthService{
		secret:      []byte(cfg.JWTSecret),
		expiry:      time.Duration(cfg.JWTExpiryHours) * time.Hour,
		managerUser: cfg.ManagerUser,
	}

	switch {
	case cfg.ManagerPasswordHash != "":
		hash := []byte(cfg.ManagerPasswordHash)
		s.passwordOK = func(password string) bool {
			return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
		}
	case cfg.ManagerPassword != "" && !cfg.IsProduction():
		plain := cfg.ManagerPassword
		s.passwordOK = func(password string) bool {
			return password == plain
		}
	default:
		return nil, fmt.Errorf("no manager credentials configured")
	}

	return s, nil
}

// Login verifies credentials and returns a signed token
func (s *AuthService) Login(username, password string) (string, error) {
	if username != s.managerUser || !s.passwordOK(password) {
		return "", apperrors.ErrInvalidCredentials
	}

	now := time.Now()
	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate parses and verifies a token, returning its claims
func (s *AuthService) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
