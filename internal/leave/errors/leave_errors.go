package leaveerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave request not found",
		http.StatusNotFound,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidRange = apperror.New(
		apperror.CodeInvalidInput,
		"End date must not be before start date",
		http.StatusBadRequest,
	)
	ErrInvalidLeaveType = apperror.New(
		apperror.CodeInvalidInput,
		"Leave type must be PAID, UNPAID or SICK",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status must be PENDING, APPROVED, REJECTED or CANCELLED",
		http.StatusBadRequest,
	)
	ErrInvalidDecision = apperror.New(
		apperror.CodeInvalidInput,
		"Outcome must be APPROVED or REJECTED",
		http.StatusBadRequest,
	)
	ErrInsufficientQuota = apperror.New(
		apperror.CodeInsufficientQuota,
		"Insufficient leave quota",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidState,
		"Leave request has already been decided",
		http.StatusConflict,
	)
	ErrLeaveNotEditable = apperror.New(
		apperror.CodeInvalidState,
		"Only pending leave requests can change dates or leave type",
		http.StatusConflict,
	)
	ErrFilingForOthers = apperror.New(
		apperror.CodeForbidden,
		"Employees may only file leave for themselves",
		http.StatusForbidden,
	)
	ErrStorageFailure = apperror.New(
		apperror.CodeServiceUnavailable,
		"Leave storage is unavailable, retry later",
		http.StatusServiceUnavailable,
	)
)

var ErrNotOwnRequest = apperror.New(
	apperror.CodeForbidden,
	"Employees may only view, edit or cancel their own leave requests",
	http.StatusForbidden,
)

var ErrSelfReview = apperror.New(
	apperror.CodeForbidden,
	"Leave requests cannot be approved or rejected by the requester",
	http.StatusForbidden,
)
