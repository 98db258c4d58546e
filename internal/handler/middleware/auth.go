package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"booking-billing/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxOperatorIDKey = "operator_id"
	ctxRoleKey       = "operator_role"

	RoleViewer  = "viewer"
	RoleBilling = "billing"
	RoleAdmin   = "admin"
)

var roleHierarchy = map[string]int{
	RoleViewer:  1,
	RoleBilling: 2,
	RoleAdmin:   3,
}

type AuthMiddleware struct {
	validator *jwt.Validator
}

func NewAuthMiddleware(validator *jwt.Validator) *AuthMiddleware {
	return &AuthMiddleware{validator: validator}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.validator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxOperatorIDKey, claims.OperatorID)
		c.Set(ctxRoleKey, claims.Role)
		c.Set("jwt_claims", map[string]any{
			"operator_id": claims.OperatorID.String(),
			"role":        claims.Role,
		})
		c.Next()
	}
}

func (m *AuthMiddleware) RequireRoleAtLeast(minRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok {
			// Unexpected: should be used after RequireAuth()
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if !hasMinimumRole(role, minRole) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func hasMinimumRole(role, minRole string) bool {
	level, ok := roleHierarchy[role]
	minLevel, minOK := roleHierarchy[minRole]
	return ok && minOK && level >= minLevel
}

func GetOperatorID(c *gin.Context) (uuid.UUID, bool) {
	operatorID, exists := c.Get(ctxOperatorIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := operatorID.(uuid.UUID)
	return id, ok
}

func GetRole(c *gin.Context) (string, bool) {
	role, exists := c.Get(ctxRoleKey)
	if !exists {
		return "", false
	}

	r, ok := role.(string)
	return r, ok
}
