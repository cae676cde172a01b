package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tokomebel/furniture-api/auth"
	"github.com/tokomebel/furniture-api/response"
)

// ValidateToken verifies the authorization header against the injected
// signing secret before any handler logic runs. The header is accepted with
// or without a "Bearer " prefix.
func ValidateToken(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			response.Fail(c, http.StatusUnauthorized, "Authorization header is missing", nil)
			c.Abort()
			return
		}
		tokenString = strings.TrimPrefix(tokenString, "Bearer ")

		claims, err := auth.ParseToken(tokenString, secret)
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		c.Set("admin_id", claims.AdminID)
		c.Set("admin_email", claims.Email)

		c.Next()
	}
}
