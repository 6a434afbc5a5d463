package middleware

import (
	"go-hrms/internal/domain"
	"go-hrms/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

// RBACService is satisfied by anything that can evaluate an EnforceRequest.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextRole)
		if role == "" {
			abortWith(c, apperror.ErrUnauthorized)
			return
		}

		allowed, err := service.Enforce(domain.EnforceRequest{
			Role:     role,
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			abortWith(c, apperror.ErrInternal)
			return
		}
		if !allowed {
			abortWith(c, apperror.ErrForbidden)
			return
		}
		c.Next()
	}
}
