package leave

import (
	"net/http"
	"strconv"

	"go-hrms/internal/domain"
	leaveerrors "go-hrms/internal/leave/errors"
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
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeBindError(c *gin.Context, err error) {
	h.logger.Warn("leave validation failed", zap.Error(err))
	h.writeServiceError(c, apperror.MapValidationError(err))
}

// caller returns the authenticated employee and whether the role is the
// plain employee role, which only sees its own requests.
func (h *Handler) caller(c *gin.Context) (int64, bool, bool) {
	empNo, ok := middleware.EmployeeIDFrom(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return 0, false, false
	}
	return empNo, c.GetString(middleware.ContextRole) == domain.RoleEmployee, true
}

func (h *Handler) leaveID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.writeServiceError(c, apperror.InvalidField("Leave Id"))
		return 0, false
	}
	return id, true
}

func (h *Handler) Create(c *gin.Context) {
	actorID, selfOnly, ok := h.caller(c)
	if !ok {
		return
	}

	var req CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}
	if req.EmployeeID == 0 {
		req.EmployeeID = actorID
	}
	if selfOnly && req.EmployeeID != actorID {
		h.writeServiceError(c, leaveerrors.ErrFilingForOthers)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) List(c *gin.Context) {
	actorID, selfOnly, ok := h.caller(c)
	if !ok {
		return
	}

	var q ListLeaveRequestsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeBindError(c, err)
		return
	}
	if selfOnly {
		q.EmployeeID = &actorID
	}

	resp, meta, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) GetByID(c *gin.Context) {
	actorID, selfOnly, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := h.leaveID(c)
	if !ok {
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if selfOnly && resp.EmployeeID != actorID {
		h.writeServiceError(c, leaveerrors.ErrNotOwnRequest)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Review(c *gin.Context) {
	reviewerID, _, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := h.leaveID(c)
	if !ok {
		return
	}

	var req ReviewLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.Review(c.Request.Context(), id, reviewerID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	actorID, selfOnly, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := h.leaveID(c)
	if !ok {
		return
	}

	var req UpdateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	if selfOnly {
		if !employeeMayApply(req) {
			h.writeServiceError(c, apperror.ErrForbidden)
			return
		}
		current, err := h.service.GetByID(c.Request.Context(), id)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		if current.EmployeeID != actorID {
			h.writeServiceError(c, leaveerrors.ErrNotOwnRequest)
			return
		}
	}

	resp, err := h.service.Update(c.Request.Context(), id, actorID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// employeeMayApply limits employees to editing their own terms and
// withdrawing a request. Decisions and manager fields stay with reviewers.
func employeeMayApply(req UpdateLeaveRequest) bool {
	if req.ManagerComment != nil || req.ManagerID != nil {
		return false
	}
	if req.Status == nil {
		return true
	}
	st, err := domain.ParseLeaveStatus(*req.Status)
	return err == nil && (st == domain.LeaveStatusCancelled || st == domain.LeaveStatusPending)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.leaveID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
