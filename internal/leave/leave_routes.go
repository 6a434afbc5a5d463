package leave

import (
	"go-hrms/internal/middleware"
	"go-hrms/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
) {
	leaves := r.Group("/leave-requests")
	{
		leaves.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourceLeave, rbac.ActionRead), handler.List)
		leaves.GET("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceLeave, rbac.ActionRead), handler.GetByID)
		leaves.POST("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceLeave, rbac.ActionCreate),
			middleware.Idempotency(rdb),
			handler.Create,
		)
		leaves.PUT("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceLeave, rbac.ActionUpdate), handler.Update)
		leaves.POST("/:id/review",
			middleware.RBACAuthorize(rbacService, rbac.ResourceLeave, rbac.ActionReview),
			middleware.Idempotency(rdb),
			handler.Review,
		)
		leaves.DELETE("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceLeave, rbac.ActionDelete), handler.Delete)
	}
}
