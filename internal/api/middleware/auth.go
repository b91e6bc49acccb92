// Package middleware provides the gin middleware chain: bearer-token
// authentication, request ids and request logging.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lettaaaaa/uklon-service/internal/auth"
	"github.com/lettaaaaa/uklon-service/internal/domain/entities"
	"github.com/lettaaaaa/uklon-service/internal/services"
)

// CurrentUserKey is the context key the authenticated user is stored under.
const CurrentUserKey = "current_user"

// Auth verifies the Authorization bearer token and resolves it to an existing
// user. Missing, malformed, expired tokens and tokens for deleted users all
// abort with 401 before any handler logic runs.
func Auth(tokens *auth.JWTService, authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format"})
			c.Abort()
			return
		}

		userID, err := tokens.VerifyToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		user, err := authService.ResolveUser(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user stored by Auth. Only valid on routes behind
// the Auth middleware.
func CurrentUser(c *gin.Context) *entities.User {
	user, _ := c.Get(CurrentUserKey)
	return user.(*entities.User)
}
