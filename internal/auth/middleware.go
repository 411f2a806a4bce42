package auth

import (
	"net/http"
	"strings"

	apperrors "schedulehq-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// RequireAuth returns middleware that rejects requests without a valid
// bearer token
func RequireAuth(service *AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingToken.Error()})
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingToken.Error()})
			return
		}

		claims, err := service.Validate(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrInvalidToken.Error()})
			return
		}

		c.Set("username", claims.Username)
		c.Next()
	}
}
