package employee

import (
	"errors"

	employeeerrors "go-hrms/internal/employee/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}
	return employeeerrors.ErrDirectoryUnavailable.WithCause(err)
}
