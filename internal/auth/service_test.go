package auth

import (
	"testing"
	"time"

	"schedulehq-backend/internal/config"
	apperrors "schedulehq-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func devConfig() *config.Config {
	return &config.Config{
		Environment:     "development",
		JWTSecret:       "test-secret",
		JWTExpiryHours:  24,
		ManagerUser:     "manager",
		ManagerPassword: "letmein",
	}
}

func TestNewAuthService(t *testing.T) {
	t.Run("plain password in development", func(t *testing.T) {
		svc, err := NewAuthService(devConfig())
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})

	t.Run("bcrypt hash", func(t *testing.T) {
		hash, err := bcrypt.GenerateFromPassword([]byte("letmein"), bcrypt.MinCost)
		require.NoError(t, err)

		cfg := devConfig()
		cfg.ManagerPassword = ""
		cfg.ManagerPasswordHash = string(hash)
		svc, err := NewAuthService(cfg)
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})

	t.Run("plain password rejected in production", func(t *testing.T) {
		cfg := devConfig()
		cfg.Environment = "production"
		_, err := NewAuthService(cfg)
		assert.Error(t, err)
	})

	t.Run("no credentials configured", func(t *testing.T) {
		cfg := devConfig()
		cfg.ManagerPassword = ""
		_, err := NewAuthService(cfg)
		assert.Error(t, err)
	})
}

func TestLogin(t *testing.T) {
	svc, err := NewAuthService(devConfig())
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		token, err := svc.Login("manager", "letmein")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login("manager", "wrong")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("wrong username", func(t *testing.T) {
		_, err := svc.Login("intruder", "letmein")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("bcrypt credentials", func(t *testing.T) {
		hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
		require.NoError(t, err)

		cfg := devConfig()
		cfg.ManagerPassword = ""
		cfg.ManagerPasswordHash = string(hash)
		hashed, err := NewAuthService(cfg)
		require.NoError(t, err)

		token, err := hashed.Login("manager", "s3cret")
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		_, err = hashed.Login("manager", "letmein")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestValidate(t *testing.T) {
	svc, err := NewAuthService(devConfig())
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		token, err := svc.Login("manager", "letmein")
		require.NoError(t, err)

		claims, err := svc.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, "manager", claims.Username)
		assert.True(t, claims.ExpiresAt.After(time.Now()))
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.Validate("not.a.token")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
			Username: "manager",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		forged, err := other.SignedString([]byte("different-secret"))
		require.NoError(t, err)

		_, err = svc.Validate(forged)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		stale := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
			Username: "manager",
			RegisteredClaims: jwt.RegisteredClaims{
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		})
		signed, err := stale.SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = svc.Validate(signed)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("unexpected signing algorithm", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{Username: "manager"})
		raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.Validate(raw)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}
