// middlewares/auth_middleware.go
package middlewares

import (
	"net/http"
	"strings"

	"neocal-backend/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the requesting user and stores its id in the
// context. Tokens are accepted as X-Auth-Token or Authorization: Bearer.
// In demo mode (auth not required) the token is optional and every request
// resolves to the shared demo identity.
func AuthMiddleware(auth *services.AuthService, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Auth-Token")
		if token == "" {
			if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
				token = strings.TrimPrefix(h, "Bearer ")
			}
		}
		if token == "" && required {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "X-Auth-Token header required"})
			return
		}

		userID, err := auth.ResolveToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
