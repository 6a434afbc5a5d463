package assignmenterrors

import (
	"go-hrms/internal/shared/apperror"
	"net/http"
)

var ErrAssignmentUnavailable = apperror.New(
	apperror.CodeServiceUnavailable,
	"Assignment history is unavailable",
	http.StatusServiceUnavailable,
)
