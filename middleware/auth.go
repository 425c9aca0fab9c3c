package middleware

import (
	"net/http"
	"strings"

	"ibelong/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware guards mutating endpoints. The token is issued by the
// external auth service; this core only validates and extracts the subject.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		c.Set("userID", userID)
		c.Next()
	}
}
