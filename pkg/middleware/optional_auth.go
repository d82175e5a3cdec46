package middleware

import (
	"strings"

	"vidtube/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// OptionalAuthMiddleware resolves the principal when a valid access token is
// present and continues anonymously otherwise. Used for public endpoints
// whose responses carry viewer-relative flags.
func OptionalAuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie("accessToken")
		if err != nil || tokenString == "" {
			authHeader := c.GetHeader("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				tokenString = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if tokenString != "" {
			if claims, err := jwtService.ValidateAccessToken(tokenString); err == nil {
				c.Set("user_id", claims.UserID)
			}
		}

		c.Next()
	}
}
