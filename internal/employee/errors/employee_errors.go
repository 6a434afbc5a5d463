package employeeerrors

import (
	"go-hrms/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrDirectoryUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"Employee directory is unavailable",
		http.StatusServiceUnavailable,
	)
)
