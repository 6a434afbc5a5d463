package app

import (
	"net/http"

	"go-hrms/internal/assignment"
	"go-hrms/internal/config"
	"go-hrms/internal/employee"
	"go-hrms/internal/leave"
	"go-hrms/internal/leavequota"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/middleware"
	"go-hrms/internal/rbac"
	"go-hrms/internal/rbac/infra"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func newLedger(cfg *config.Config, gormDB *gorm.DB, logger *zap.Logger) leavequota.Ledger {
	return leavequota.NewLedger(
		leavequota.NewRepository(gormDB),
		leavequota.PolicyFromConfig(cfg.Leave),
		logger,
	)
}

func pageLimits(cfg *config.Config) response.PageLimits {
	return response.PageLimits{Default: cfg.Leave.DefaultPageLimit, Max: cfg.Leave.MaxPageLimit}
}

func newRBACService(cfg *config.Config, logger *zap.Logger) (rbac.Service, error) {
	enforcer, err := infra.NewEnforcer(cfg.App.RBACPolicyFile)
	if err != nil {
		return nil, err
	}
	if cfg.App.RBACPolicyFile == "" {
		if err := rbac.SeedDefaultPolicy(enforcer); err != nil {
			return nil, err
		}
	}
	return rbac.NewService(enforcer, logger), nil
}

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	conns *infrastructure,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(conns.gormDB)
	assignmentRepo := assignment.NewRepository(conns.gormDB)
	quotaRepo := leavequota.NewRepository(conns.gormDB)
	leaveRepo := leave.NewRepository(conns.gormDB)
	outboxRepo := kafka.NewOutboxRepository(conns.sqlDB)

	// --- RBAC Core ---
	rbacService, err := newRBACService(cfg, logger)
	if err != nil {
		return err
	}

	// --- Services ---
	directory := employee.NewDirectory(employeeRepo, logger)
	resolver := assignment.NewResolver(assignmentRepo, conns.rdb, cfg.Leave.ManagerCacheTTL, logger)
	ledger := newLedger(cfg, conns.gormDB, logger)
	quotaService := leavequota.NewService(quotaRepo, ledger, pageLimits(cfg), logger)
	leaveService := leave.NewService(
		conns.sqlDB,
		leaveRepo,
		directory,
		resolver,
		ledger,
		outboxRepo,
		pageLimits(cfg),
		logger,
	)

	// --- Handlers ---
	leaveHandler := leave.NewHandler(leaveService, logger)
	quotaHandler := leavequota.NewHandler(quotaService, logger)

	// --- Routes Registration ---
	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(logger),
		middleware.RateLimitByIP(rate.Limit(cfg.RateLimit.PerSecond), cfg.RateLimit.Burst),
	)
	router.GET("/healthz", func(c *gin.Context) {
		if err := conns.sqlDB.PingContext(c.Request.Context()); err != nil {
			response.Error(c, http.StatusServiceUnavailable, apperror.CodeServiceUnavailable, "database unreachable", nil)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"status": "ok"}, nil)
	})

	api := router.Group("/api/v1")
	api.Use(
		middleware.AuthMiddleware(cfg.Auth.JWTSecret),
		middleware.RateLimitByEmployee(rate.Limit(cfg.RateLimit.PerSecond), cfg.RateLimit.Burst),
	)
	{
		leave.RegisterRoutes(api, leaveHandler, rbacService, conns.rdb)
		leavequota.RegisterRoutes(api, quotaHandler, rbacService)
	}

	return nil
}
