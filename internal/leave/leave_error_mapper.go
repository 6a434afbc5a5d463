package leave

import (
	"errors"

	leaveerrors "go-hrms/internal/leave/errors"
	"go-hrms/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError keeps AppErrors from collaborators and turns raw
// storage errors into the engine's taxonomy.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return leaveerrors.ErrLeaveNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23514" && pgErr.ConstraintName == "chk_leave_requests_range" {
		return leaveerrors.ErrInvalidRange
	}

	return leaveerrors.ErrStorageFailure.WithCause(err)
}
