package middleware

import (
	"net/http"
	"strings"

	"shop-backend/models"
	"shop-backend/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	UserContextKey = "userID"
	RoleContextKey = "role"
)

// VerifyToken authenticates the request from its Bearer token and stores
// the caller's identity in the gin context. Downstream handlers trust these
// values as-is.
func VerifyToken(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bearer := c.GetHeader("Authorization")
		if bearer == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Unauthorized"})
			return
		}

		parts := strings.SplitN(bearer, " ", 2)
		if len(parts) != 2 {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Unauthorized"})
			return
		}

		claims, err := tokens.Validate(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		c.Set(UserContextKey, claims.UserID)
		c.Set(RoleContextKey, claims.Role)
		c.Next()
	}
}

// AdminOnly gates a route group to tokens carrying the admin role claim.
// It must run after VerifyToken.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(RoleContextKey) != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied"})
			return
		}
		c.Next()
	}
}

// GetUserID returns the authenticated user's id parsed as an ObjectID.
func GetUserID(c *gin.Context) (primitive.ObjectID, bool) {
	raw := c.GetString(UserContextKey)
	if raw == "" {
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}
