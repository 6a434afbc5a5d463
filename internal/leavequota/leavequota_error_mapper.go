package leavequota

import (
	"errors"

	leavequotaerrors "go-hrms/internal/leavequota/errors"
	"go-hrms/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return leavequotaerrors.ErrQuotaNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return leavequotaerrors.ErrQuotaAlreadyExists
		case "23514":
			return leavequotaerrors.ErrNegativeQuota
		}
	}

	return leavequotaerrors.ErrQuotaStorage.WithCause(err)
}
