package leavequotaerrors

import (
	"go-hrms/internal/shared/apperror"
	"net/http"
)

var (
	// ErrInvalidCategory means a quota operation was asked for a category
	// that has no balance. It is a programming error, not user input.
	ErrInvalidCategory = apperror.New(
		apperror.CodeInternalError,
		"Leave type does not carry a quota",
		http.StatusInternalServerError,
	)
	ErrQuotaNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave quota not found",
		http.StatusNotFound,
	)
	ErrQuotaAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Leave quota already exists for this employee, year and leave type",
		http.StatusConflict,
	)
	ErrNegativeQuota = apperror.New(
		apperror.CodeInvalidInput,
		"Remaining days must not be negative",
		http.StatusBadRequest,
	)
	ErrInvalidLeaveType = apperror.New(
		apperror.CodeInvalidInput,
		"Leave type must be PAID or SICK",
		http.StatusBadRequest,
	)
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"Year is invalid",
		http.StatusBadRequest,
	)
	ErrQuotaStorage = apperror.New(
		apperror.CodeServiceUnavailable,
		"Leave quota storage is unavailable",
		http.StatusServiceUnavailable,
	)
)
