package leavequota

import (
	"net/http"
	"strconv"
	"time"

	"go-hrms/internal/middleware"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leavequota.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavequota.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave quota request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeBindError(c *gin.Context, err error) {
	h.logger.Warn("leave quota validation failed", zap.Error(err))
	h.writeServiceError(c, apperror.MapValidationError(err))
}

// keyParams reads /:employee_id/:year/:leave_type.
func (h *Handler) keyParams(c *gin.Context) (int64, int, string, bool) {
	empNo, err := strconv.ParseInt(c.Param("employee_id"), 10, 64)
	if err != nil || empNo <= 0 {
		h.writeServiceError(c, apperror.InvalidField("Employee Id"))
		return 0, 0, "", false
	}
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		h.writeServiceError(c, apperror.InvalidField("Year"))
		return 0, 0, "", false
	}
	return empNo, year, c.Param("leave_type"), true
}

func (h *Handler) List(c *gin.Context) {
	var q ListQuotasQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, meta, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) Mine(c *gin.Context) {
	empNo, ok := middleware.EmployeeIDFrom(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	year := time.Now().Year()
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.writeServiceError(c, apperror.InvalidField("Year"))
			return
		}
		year = parsed
	}

	resp, err := h.service.Balances(c.Request.Context(), empNo, year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Get(c *gin.Context) {
	empNo, year, leaveType, ok := h.keyParams(c)
	if !ok {
		return
	}

	resp, err := h.service.Get(c.Request.Context(), empNo, year, leaveType)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateQuotaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	empNo, year, leaveType, ok := h.keyParams(c)
	if !ok {
		return
	}

	var req UpdateQuotaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), empNo, year, leaveType, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	empNo, year, leaveType, ok := h.keyParams(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), empNo, year, leaveType); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
