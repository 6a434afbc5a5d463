package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-hrms/internal/app"
	"go-hrms/internal/bootstrap"
	"go-hrms/internal/config"
	"go-hrms/internal/shared/apperror"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	year := flag.Int("year", time.Now().Year(), "quota year to provision")
	flag.Parse()

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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	report, err := app.RunBackfill(ctx, cfg, logger, *year)
	if err != nil {
		logger.Fatal("run backfill failed", zap.Error(err))
	}
	logger.Info("backfill report",
		zap.Int("year", *year),
		zap.Int("employees", report.Employees),
		zap.Int("created", report.Created),
		zap.Int("skipped", report.Skipped),
	)
}
