package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fullnessapp/fullness-server/internal/auth"
)

// TokenHeader carries the signed auth token on protected routes.
const TokenHeader = "x-auth-token"

const claimsKey = "authClaims"

// RequireRole gates a route on a verified token whose role claim equals the
// required role id. Missing or invalid tokens are 401; a valid token with the
// wrong role is 403. The token signature is always verified before any claim
// is read.
func RequireRole(secret []byte, roleID int) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		claims, err := auth.VerifyToken(secret, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		if claims.RoleID != roleID {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// ClaimsFromContext returns the verified claims set by RequireRole, or nil.
func ClaimsFromContext(c *gin.Context) *auth.Claims {
	if v, ok := c.Get(claimsKey); ok {
		if claims, ok := v.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}
