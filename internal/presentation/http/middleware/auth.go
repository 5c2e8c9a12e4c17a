package middleware

import (
	"strings"

	"github.com/ahamedrahman2000/njv-travels/internal/presentation/http/dto/response"
	"github.com/ahamedrahman2000/njv-travels/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys set by AuthMiddleware
const (
	OperatorIDKey    = "operator_id"
	OperatorEmailKey = "operator_email"
)

// AuthMiddleware creates a JWT authentication middleware
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(OperatorIDKey, claims.OperatorID)
		c.Set(OperatorEmailKey, claims.Email)

		c.Next()
	}
}

// OperatorID returns the authenticated operator, or uuid.Nil
func OperatorID(c *gin.Context) uuid.UUID {
	value, exists := c.Get(OperatorIDKey)
	if !exists {
		return uuid.Nil
	}
	id, ok := value.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}
