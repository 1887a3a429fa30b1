package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campushire/jobboard/internal/models"
	"github.com/campushire/jobboard/internal/repository"
	"github.com/campushire/jobboard/internal/revocation"
	"github.com/campushire/jobboard/internal/utils"
)

// AuthMiddleware resolves the bearer token to a current user record. The
// directory row is re-read on every request so role and activation changes
// (and deletions) take effect without waiting for the token to expire.
func AuthMiddleware(jwtSecret string, userRepo *repository.UserRepository, revoker revocation.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization header required",
			})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid authorization format. Use: Bearer <token>",
			})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString, jwtSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		// Tokens of deleted accounts are denylisted until they expire
		if revoked, err := revoker.IsRevoked(claims.UserID); err == nil && revoked {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Credentials have been revoked",
			})
			c.Abort()
			return
		}

		user, err := userRepo.GetUserByID(claims.UserID)
		if err != nil || user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Account no longer exists",
			})
			c.Abort()
			return
		}

		c.Set("user_id", user.ID.String())
		c.Set("user_role", string(user.Role))
		c.Set("user_active", user.IsActive)
		c.Set("current_user", user)

		c.Next()
	}
}

// OptionalAuthMiddleware resolves a bearer token when one is present but
// lets anonymous requests through. Read paths use it so the visibility
// filter can distinguish admins and creators from the public.
func OptionalAuthMiddleware(jwtSecret string, userRepo *repository.UserRepository, revoker revocation.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if authHeader == "" || tokenString == authHeader {
			c.Next()
			return
		}

		claims, err := utils.ValidateToken(tokenString, jwtSecret)
		if err != nil {
			c.Next()
			return
		}

		if revoked, err := revoker.IsRevoked(claims.UserID); err == nil && revoked {
			c.Next()
			return
		}

		user, err := userRepo.GetUserByID(claims.UserID)
		if err != nil || user == nil {
			c.Next()
			return
		}

		c.Set("user_id", user.ID.String())
		c.Set("user_role", string(user.Role))
		c.Set("user_active", user.IsActive)
		c.Set("current_user", user)

		c.Next()
	}
}

// AdminMiddleware gates a route group to active admins. Must run after
// AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userValue, exists := c.Get("current_user")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Unauthorized",
			})
			c.Abort()
			return
		}

		user := userValue.(*models.User)
		if user.Role != models.RoleAdmin || !user.IsActive {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Admin access required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentUser pulls the authenticated user out of the gin context
func CurrentUser(c *gin.Context) (*models.User, bool) {
	userValue, exists := c.Get("current_user")
	if !exists {
		return nil, false
	}
	user, ok := userValue.(*models.User)
	return user, ok
}
