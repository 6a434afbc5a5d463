package leavequota

import (
	"go-hrms/internal/middleware"
	"go-hrms/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
) {
	quotas := r.Group("/leave-quotas")
	{
		quotas.GET("/me", middleware.RBACAuthorize(rbacService, rbac.ResourceQuota, rbac.ActionRead), handler.Mine)
		quotas.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourceQuota, rbac.ActionManage), handler.List)
		quotas.POST("", middleware.RBACAuthorize(rbacService, rbac.ResourceQuota, rbac.ActionManage), handler.Create)
		quotas.GET("/:employee_id/:year/:leave_type", middleware.RBACAuthorize(rbacService, rbac.ResourceQuota, rbac.ActionManage), handler.Get)
		quotas.PUT("/:employee_id/:year/:leave_type", middleware.RBACAuthorize(rbacService, rbac.ResourceQuota, rbac.ActionManage), handler.Update)
		quotas.DELETE("/:employee_id/:year/:leave_type", middleware.RBACAuthorize(rbacService, rbac.ResourceQuota, rbac.ActionManage), handler.Delete)
	}
}
