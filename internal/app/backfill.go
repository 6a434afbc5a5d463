package app

import (
	"context"

	"go-hrms/internal/config"
	"go-hrms/internal/employee"
	"go-hrms/internal/messaging/kafka/consumer"

	"go.uber.org/zap"
)

type BackfillReport struct {
	Employees int
	// Created counts quota rows inserted by this run.
	Created int
	// Skipped counts employees whose balances all existed already.
	Skipped int
}

// Backfill provisions the default quotas of year for every employee in the
// directory. Existing balances are never touched, so reruns are safe.
func Backfill(
	ctx context.Context,
	directory employee.Directory,
	provisioner consumer.QuotaProvisioner,
	year int,
	logger *zap.Logger,
) (BackfillReport, error) {
	log := logger.Named("app.backfill")

	ids, err := directory.ListIDs(ctx)
	if err != nil {
		return BackfillReport{}, err
	}

	report := BackfillReport{Employees: len(ids)}
	for _, empNo := range ids {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		created, err := provisioner.Provision(ctx, empNo, year)
		if err != nil {
			log.Error("backfill provision failed", zap.Int64("emp_no", empNo), zap.Error(err))
			return report, err
		}
		report.Created += created
		if created == 0 {
			report.Skipped++
		}
	}

	log.Info("backfill finished",
		zap.Int("year", year),
		zap.Int("employees", report.Employees),
		zap.Int("created", report.Created),
		zap.Int("skipped", report.Skipped),
	)
	return report, nil
}

func RunBackfill(ctx context.Context, cfg *config.Config, logger *zap.Logger, year int) (BackfillReport, error) {
	conns, err := connect(cfg, logger, false)
	if err != nil {
		return BackfillReport{}, err
	}
	defer conns.Close()

	directory := employee.NewDirectory(employee.NewRepository(conns.gormDB), logger)
	return Backfill(ctx, directory, newLedger(cfg, conns.gormDB, logger), year, logger)
}
