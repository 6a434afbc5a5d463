package app

import (
	"database/sql"
	"fmt"

	"go-hrms/internal/config"
	"go-hrms/internal/shared/connection"
	"go-hrms/internal/shared/database"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type infrastructure struct {
	gormDB *gorm.DB
	sqlDB  *sql.DB
	rdb    *redis.Client
}

func (i *infrastructure) Close() {
	if i.rdb != nil {
		_ = i.rdb.Close()
	}
	if i.sqlDB != nil {
		_ = i.sqlDB.Close()
	}
}

// connect opens Postgres and, when withRedis is set, Redis. A Redis that
// cannot be reached only disables caching and idempotency.
func connect(cfg *config.Config, logger *zap.Logger, withRedis bool) (*infrastructure, error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database.DSN(), cfg.Database.MaxRetries, logger)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap sql db: %w", err)
	}

	conns := &infrastructure{gormDB: gormDB, sqlDB: sqlDB}
	if !withRedis {
		return conns, nil
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Redis.MaxRetries, logger)
	if err != nil {
		logger.Warn("redis unavailable, manager cache and idempotency disabled", zap.Error(err))
		return conns, nil
	}
	conns.rdb = rdb
	return conns, nil
}

// BuildApp connects the infrastructure, applies migrations and registers
// every HTTP module on router. The returned func releases the connections.
func BuildApp(router *gin.Engine, cfg *config.Config, logger *zap.Logger) (func(), error) {
	conns, err := connect(cfg, logger, true)
	if err != nil {
		return nil, err
	}

	if cfg.App.RunMigrations {
		if err := database.RunMigrations(conns.sqlDB, logger); err != nil {
			conns.Close()
			return nil, err
		}
	}

	if err := registerModules(router, cfg, conns, logger); err != nil {
		conns.Close()
		return nil, err
	}
	return conns.Close, nil
}
