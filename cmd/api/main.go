package main

import (
	"os"

	"go-hrms/internal/app"
	"go-hrms/internal/bootstrap"
	"go-hrms/internal/config"
	"go-hrms/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		panic(err)
	}
	logger, err := bootstrap.NewLogger(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()
	r := gin.New()
	r.Use(gin.Recovery())

	cleanup, err := app.BuildApp(r, cfg, logger)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer cleanup()

	bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:            cfg.App.Port,
			ReadTimeout:     cfg.App.ReadTimeout,
			WriteTimeout:    cfg.App.WriteTimeout,
			IdleTimeout:     cfg.App.IdleTimeout,
			ShutdownTimeout: cfg.App.ShutdownTimeout,
		},
		bootstrap.NewZapAuditLogger(logger),
		logger,
	)
}
