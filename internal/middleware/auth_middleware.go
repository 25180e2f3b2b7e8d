package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/devraj/lecturehall/internal/app/models"
	"github.com/devraj/lecturehall/internal/pkg/apperrors"
	"github.com/devraj/lecturehall/internal/pkg/auth"
)

// Context keys set by JWTAuth for downstream handlers
const (
	ContextUserID = "userID"
	ContextEmail  = "email"
	ContextRole   = "role"
)

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// JWTAuth middleware for JWT token validation. On success the user's
// identity (id, email, role) is placed in the request context; failures are
// mapped by AbortWithAPIError.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			AbortWithAPIError(c, apperrors.ErrAuthRequired)
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			AbortWithAPIError(c, err)
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			AbortWithAPIError(c, err)
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// RoleRequired middleware to check if the authenticated user has the
// required role. Must run after JWTAuth.
func (m *AuthMiddleware) RoleRequired(requiredRole models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRole)
		if !exists {
			AbortWithAPIError(c, apperrors.ErrAuthRequired)
			return
		}

		roleStr, ok := role.(string)
		if !ok || models.Role(roleStr) != requiredRole {
			AbortWithAPIError(c, apperrors.ErrAccessDenied)
			return
		}

		c.Next()
	}
}

// CallerEmail returns the authenticated caller's email from the context.
func CallerEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(ContextEmail)
	if !exists {
		return "", false
	}
	emailStr, ok := email.(string)
	return emailStr, ok && emailStr != ""
}
