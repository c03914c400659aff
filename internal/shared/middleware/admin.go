package middleware

import (
	"github.com/gin-gonic/gin"

	"yamdb-backend/internal/domains/user"
	"yamdb-backend/internal/shared/permission"
	"yamdb-backend/internal/shared/response"
)

// AdminMiddleware rejects callers without the admin role. Must run after
// AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := user.Role(c.GetString(CtxRole))
		if !permission.CanManageUsers(role) {
			response.Forbidden(c, "admin role required")
			c.Abort()
			return
		}

		c.Next()
	}
}
