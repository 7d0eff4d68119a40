package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxUserIDKey = "auth.user_id"
	ctxEmailKey  = "auth.email"
)

// RequireAuth is gin middleware enforcing a valid bearer token. On
// success the user's ID and email are stored in the gin context for
// handlers to read via UserFromContext.
func RequireAuth(tokens *TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenStr := strings.TrimPrefix(header, "Bearer ")
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token required"})
			return
		}

		claims, err := tokens.Verify(tokenStr)
		if err != nil {
			msg := "Invalid token"
			if err == ErrTokenExpired {
				msg = "Token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxEmailKey, claims.Email)
		c.Next()
	}
}

// UserFromContext returns the authenticated user's ID and email as set
// by RequireAuth.
func UserFromContext(c *gin.Context) (uuid.UUID, string, bool) {
	id, ok := c.Get(ctxUserIDKey)
	if !ok {
		return uuid.Nil, "", false
	}
	userID, ok := id.(uuid.UUID)
	if !ok {
		return uuid.Nil, "", false
	}
	email := c.GetString(ctxEmailKey)
	return userID, email, true
}
