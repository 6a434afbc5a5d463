package middleware

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
)

var (
	ErrTokenNotFound = apperror.New(apperror.CodeUnauthorized, "Token not found", http.StatusUnauthorized)
	ErrInvalidToken  = apperror.New(apperror.CodeUnauthorized, "Invalid token", http.StatusUnauthorized)
	ErrTokenExpired  = apperror.New(apperror.CodeUnauthorized, "Token has expired", http.StatusUnauthorized)
	ErrMissingClaim  = apperror.New(apperror.CodeUnauthorized, "Token is missing required claims", http.StatusUnauthorized)
	ErrTooMany       = apperror.New(apperror.CodeTooManyRequests, "Too many requests", http.StatusTooManyRequests)
	ErrProcessing    = apperror.New(apperror.CodeConflict, "A request with this idempotency key is still being processed", http.StatusConflict)
)

func abortWith(c *gin.Context, err *apperror.AppError) {
	response.Error(c, err.HTTPStatus, err.Code, err.Message, nil)
	c.Abort()
}
