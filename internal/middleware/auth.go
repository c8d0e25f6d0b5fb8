package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"product-store-be/internal/jwt"
	"product-store-be/internal/response"
)

// AuthMiddleware returns a Gin middleware that guards a route behind a
// bearer token. A missing header, a malformed header, and a token that
// fails verification all produce the same generic 401; the handler never
// runs. On success the decoded user id and email are stored in the
// request context.
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			unauthorized(c)
			return
		}

		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			unauthorized(c)
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	response.Send(c, http.StatusUnauthorized, false, "Unauthorized", nil)
	c.Abort()
}
