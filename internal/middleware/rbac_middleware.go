package middleware

import (
	"net/http"

	"go-paie/internal/shared/apperror"
	"go-paie/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RBACService is anything that can answer role/resource/action questions.
type RBACService interface {
	Enforce(role, resource, action string) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get("role")
		if !ok {
			response.AbortWithError(c, ErrMissingAuthContext)
			return
		}
		roleStr, _ := role.(string)

		allowed, err := service.Enforce(roleStr, resource, action)
		if err != nil {
			zap.L().Named("middleware.rbac").Error("enforce failed",
				zap.String("role", roleStr),
				zap.String("resource", resource),
				zap.String("action", action),
				zap.Error(err),
			)
			response.AbortWithError(c, apperror.ErrInternal)
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, apperror.ErrForbidden.Code, apperror.ErrForbidden.Message, gin.H{
				"required": resource + ":" + action,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
