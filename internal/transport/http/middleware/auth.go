package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iamasit07/4-in-a-row/solver/pkg/auth"
	"github.com/iamasit07/4-in-a-row/solver/pkg/httputil"
)

const clientKey = "client"

// APITokenMiddleware requires a valid HS256 token signed with secret.
// An empty secret lets every request through.
func APITokenMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		// 1. Extract Token (Header or query)
		tokenString, err := httputil.GetTokenFromRequest(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		// 2. Validate JWT Signature
		claims, err := auth.ValidateAPIToken(secret, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(clientKey, claims.Client)
		c.Next()
	}
}

// Client is the token holder set by APITokenMiddleware, if any.
func Client(c *gin.Context) string {
	return c.GetString(clientKey)
}
