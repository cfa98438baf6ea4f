package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"coffeeos/internal/microservices/auth/service"
)

const (
	CtxUserID   = "user_id"
	CtxUserRole = "user_role"
	CtxBranchID = "token_branch_id"
)

// RequireAuth validates the bearer token and stashes the claims on the gin
// context.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"type": "unauthorized", "title": "Unauthorized", "status": http.StatusUnauthorized,
				"detail": "missing bearer token",
			})
			return
		}

		claims, err := service.ParseToken(strings.TrimPrefix(header, "Bearer "), secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"type": "unauthorized", "title": "Unauthorized", "status": http.StatusUnauthorized,
				"detail": "invalid or expired token",
			})
			return
		}

		c.Set(CtxUserID, claims.Subject)
		c.Set(CtxUserRole, claims.Role)
		c.Set(CtxBranchID, claims.BranchID)
		c.Next()
	}
}

// RequireRole allows only the listed roles past.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(CtxUserRole)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"type": "forbidden", "title": "Forbidden", "status": http.StatusForbidden,
			"detail": "role " + role + " may not perform this action",
		})
	}
}
