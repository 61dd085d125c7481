package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/LidiaAlemu/meditrack/internal"
	"github.com/LidiaAlemu/meditrack/internal/response"
)

const userKey = "user"

// Middleware resolves the caller before any handler runs. Requests without a
// verifiable identity never reach record logic.
func Middleware(provider Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Unauthorized("missing bearer token"))
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		user, err := provider.ValidateToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Unauthorized("invalid token"))
			return
		}
		c.Set(userKey, user)
		c.Next()
	}
}

// UserFrom returns the authenticated user set by Middleware.
func UserFrom(c *gin.Context) *internal.User {
	return c.MustGet(userKey).(*internal.User)
}
