package rbac

import (
	"sync"

	"go-hrms/internal/domain"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

const (
	ResourceLeave = "leave"
	ResourceQuota = "quota"

	ActionCreate = "create"
	ActionRead   = "read"
	ActionUpdate = "update"
	ActionReview = "review"
	ActionDelete = "delete"
	ActionManage = "manage"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   *zap.Logger
}

func NewService(enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{enforcer: enforcer, logger: l}
}

// SeedDefaultPolicy installs the built-in role hierarchy
// EMPLOYEE < MANAGER < HR_ADMIN and their permissions.
func SeedDefaultPolicy(e *casbin.Enforcer) error {
	policies := [][]string{
		{domain.RoleEmployee, ResourceLeave, ActionCreate},
		{domain.RoleEmployee, ResourceLeave, ActionRead},
		{domain.RoleEmployee, ResourceLeave, ActionUpdate},
		{domain.RoleEmployee, ResourceQuota, ActionRead},
		{domain.RoleManager, ResourceLeave, ActionReview},
		{domain.RoleHRAdmin, ResourceLeave, ActionDelete},
		{domain.RoleHRAdmin, ResourceQuota, ActionManage},
	}
	for _, p := range policies {
		if _, err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return err
		}
	}

	groups := [][]string{
		{domain.RoleManager, domain.RoleEmployee},
		{domain.RoleHRAdmin, domain.RoleManager},
	}
	for _, g := range groups {
		if _, err := e.AddGroupingPolicy(g[0], g[1]); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed, err := s.enforcer.Enforce(req.Role, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", req.Role),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", req.Role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}
