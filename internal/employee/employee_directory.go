package employee

import (
	"context"

	employeeerrors "go-hrms/internal/employee/errors"
	"go-hrms/internal/shared/contextutil"

	"go.uber.org/zap"
)

// Directory answers the questions the leave engine asks about employees.
// It never writes.
//
//go:generate mockgen -source=employee_directory.go -destination=mock/employee_directory_mock.go -package=mock
type Directory interface {
	Exists(ctx context.Context, empNo int64) (bool, error)
	Get(ctx context.Context, empNo int64) (*Employee, error)
	ListIDs(ctx context.Context) ([]int64, error)
}

type directory struct {
	repo   Repository
	logger *zap.Logger
}

func NewDirectory(repo Repository, logger ...*zap.Logger) Directory {
	l := zap.L().Named("employee.directory")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.directory")
	}
	return &directory{repo: repo, logger: l}
}

func (d *directory) Exists(ctx context.Context, empNo int64) (bool, error) {
	if empNo <= 0 {
		return false, nil
	}

	ok, err := d.repo.Exists(ctx, empNo)
	if err != nil {
		contextutil.GetLogger(ctx, d.logger).Error("failed to check employee existence",
			zap.Int64("emp_no", empNo),
			zap.Error(err),
		)
		return false, employeeerrors.ErrDirectoryUnavailable.WithCause(err)
	}
	return ok, nil
}

func (d *directory) Get(ctx context.Context, empNo int64) (*Employee, error) {
	emp, err := d.repo.FindByID(ctx, empNo)
	if err != nil {
		mapped := mapRepositoryError(err)
		if mapped != employeeerrors.ErrEmployeeNotFound {
			contextutil.GetLogger(ctx, d.logger).Error("failed to load employee",
				zap.Int64("emp_no", empNo),
				zap.Error(err),
			)
		}
		return nil, mapped
	}
	return emp, nil
}

func (d *directory) ListIDs(ctx context.Context) ([]int64, error) {
	ids, err := d.repo.ListIDs(ctx)
	if err != nil {
		contextutil.GetLogger(ctx, d.logger).Error("failed to list employee ids", zap.Error(err))
		return nil, employeeerrors.ErrDirectoryUnavailable.WithCause(err)
	}
	return ids, nil
}
