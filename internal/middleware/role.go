package middleware

import (
	"cursos_backend/internal/model"
	"cursos_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// RoleMiddleware restricts a route to the given roles. It runs after
// AuthMiddleware, so the claims are already in the context.
func RoleMiddleware(roles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		if claims == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		for _, role := range roles {
			if claims.Role == role {
				c.Next()
				return
			}
		}

		util.Forbidden(c)
		c.Abort()
	}
}
