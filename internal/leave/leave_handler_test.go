package leave_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hrms/internal/domain"
	"go-hrms/internal/leave"
	leaveerrors "go-hrms/internal/leave/errors"
	leaveMock "go-hrms/internal/leave/mock"
	"go-hrms/internal/middleware"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestRouter(svc leave.Service, caller int64, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if caller != 0 {
			c.Set(middleware.ContextEmployeeID, caller)
			c.Set(middleware.ContextRole, role)
		}
		c.Next()
	})

	h := leave.NewHandler(svc)
	g := r.Group("/leave-requests")
	g.GET("", h.List)
	g.GET("/:id", h.GetByID)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.POST("/:id/review", h.Review)
	g.DELETE("/:id", h.Delete)
	return r
}

func do(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestLeaveHandler_Create(t *testing.T) {
	t.Run("defaults employee to caller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := leaveMock.NewMockService(ctrl)
		svc.EXPECT().Create(gomock.Any(), leave.CreateLeaveRequest{
			EmployeeID: employeeID,
			LeaveType:  "PAID",
			StartDate:  "2025-03-01",
			EndDate:    "2025-03-05",
		}).Return(leave.LeaveResponse{ID: 1, EmployeeID: employeeID, DaysRequested: 5, Status: "PENDING"}, nil)

		w := do(newTestRouter(svc, employeeID, domain.RoleEmployee), http.MethodPost, "/leave-requests", gin.H{
			"leave_type": "PAID",
			"start_date": "2025-03-01",
			"end_date":   "2025-03-05",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decode(t, w)
		assert.True(t, env.Ok)
		assert.Contains(t, string(env.Data), `"days_requested":5`)
	})

	t.Run("employee cannot file for others", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := leaveMock.NewMockService(ctrl)

		w := do(newTestRouter(svc, employeeID, domain.RoleEmployee), http.MethodPost, "/leave-requests", gin.H{
			"employee_id": 10002,
			"leave_type":  "PAID",
			"start_date":  "2025-03-01",
			"end_date":    "2025-03-05",
		})

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("hr admin files for others", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := leaveMock.NewMockService(ctrl)
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(leave.LeaveResponse{ID: 2, EmployeeID: 10002}, nil)

		w := do(newTestRouter(svc, 1, domain.RoleHRAdmin), http.MethodPost, "/leave-requests", gin.H{
			"employee_id": 10002,
			"leave_type":  "SICK",
			"start_date":  "2025-03-01",
			"end_date":    "2025-03-01",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := leaveMock.NewMockService(ctrl)

		w := do(newTestRouter(svc, employeeID, domain.RoleEmployee), http.MethodPost, "/leave-requests", gin.H{"leave_type": "PAID"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("insufficient quota", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := leaveMock.NewMockService(ctrl)
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(leave.LeaveResponse{}, leaveerrors.ErrInsufficientQuota)

		w := do(newTestRouter(svc, employeeID, domain.RoleEmployee), http.MethodPost, "/leave-requests", gin.H{
			"leave_type": "PAID",
			"start_date": "2025-03-01",
			"end_date":   "2025-03-20",
		})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "INSUFFICIENT_QUOTA", decode(t, w).Error.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := leaveMock.NewMockService(ctrl)

		w := do(newTestRouter(svc, 0, ""), http.MethodPost, "/leave-requests", gin.H{})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestLeaveHandler_Review(t *testing.T) {
	t.Run("reviewer comes from token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := leaveMock.NewMockService(ctrl)
		svc.EXPECT().Review(gomock.Any(), int64(7), managerID, leave.ReviewLeaveRequest{Outcome: "APPROVED"}).
			Return(leave.LeaveResponse{ID: 7, Status: "APPROVED"}, nil)

		w := do(newTestRouter(svc, managerID, domain.RoleManager), http.MethodPost, "/leave-requests/7/review", gin.H{"outcome": "APPROVED"})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("already decided", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := leaveMock.NewMockService(ctrl)
		svc.EXPECT().Review(gomock.Any(), int64(7), managerID, gomock.Any()).
			Return(leave.LeaveResponse{}, leaveerrors.ErrInvalidTransition)

		w := do(newTestRouter(svc, managerID, domain.RoleManager), http.MethodPost, "/leave-requests/7/review", gin.H{"outcome": "REJECTED"})
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "INVALID_STATE", decode(t, w).Error.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := leaveMock.NewMockService(ctrl)

		w := do(newTestRouter(svc, managerID, domain.RoleManager), http.MethodPost, "/leave-requests/abc/review", gin.H{"outcome": "APPROVED"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLeaveHandler_List(t *testing.T) {
	t.Run("employee sees own requests only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := leaveMock.NewMockService(ctrl)
		svc.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, q leave.ListLeaveRequestsQuery) ([]leave.LeaveResponse, response.PaginationMeta, error) {
				assert.Equal(t, employeeID, *q.EmployeeID)
				assert.Equal(t, "PENDING", q.Status)
				return []leave.LeaveResponse{{ID: 1}}, response.NewPaginationMeta(0, 20, 1), nil
			})

		w := do(newTestRouter(svc, employeeID, domain.RoleEmployee), http.MethodGet, "/leave-requests?employee_id=10002&status=PENDING", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("manager filters freely", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := leaveMock.NewMockService(ctrl)
		svc.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, q leave.ListLeaveRequestsQuery) ([]leave.LeaveResponse, response.PaginationMeta, error) {
				assert.Equal(t, int64(10002), *q.EmployeeID)
				return nil, response.NewPaginationMeta(0, 20, 0), nil
			})

		w := do(newTestRouter(svc, managerID, domain.RoleManager), http.MethodGet, "/leave-requests?employee_id=10002", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestLeaveHandler_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := leaveMock.NewMockService(ctrl)
	svc.EXPECT().GetByID(gomock.Any(), int64(5)).Return(leave.LeaveResponse{ID: 5, EmployeeID: 10002}, nil).Times(2)

	w := do(newTestRouter(svc, employeeID, domain.RoleEmployee), http.MethodGet, "/leave-requests/5", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(newTestRouter(svc, managerID, domain.RoleManager), http.MethodGet, "/leave-requests/5", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLeaveHandler_Update(t *testing.T) {
	t.Run("employee cancels own request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := leaveMock.NewMockService(ctrl)
		svc.EXPECT().GetByID(gomock.Any(), int64(5)).Return(leave.LeaveResponse{ID: 5, EmployeeID: employeeID}, nil)
		svc.EXPECT().Update(gomock.Any(), int64(5), employeeID, gomock.Any()).Return(leave.LeaveResponse{ID: 5, Status: "CANCELLED"}, nil)

		w := do(newTestRouter(svc, employeeID, domain.RoleEmployee), http.MethodPut, "/leave-requests/5", gin.H{"status": "CANCELLED"})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("employee cannot approve", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := leaveMock.NewMockService(ctrl)

		w := do(newTestRouter(svc, employeeID, domain.RoleEmployee), http.MethodPut, "/leave-requests/5", gin.H{"status": "APPROVED"})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("hr admin approves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := leaveMock.NewMockService(ctrl)
		svc.EXPECT().Update(gomock.Any(), int64(5), int64(1), gomock.Any()).Return(leave.LeaveResponse{ID: 5, Status: "APPROVED"}, nil)

		w := do(newTestRouter(svc, 1, domain.RoleHRAdmin), http.MethodPut, "/leave-requests/5", gin.H{"status": "APPROVED"})
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestLeaveHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := leaveMock.NewMockService(ctrl)
	svc.EXPECT().Delete(gomock.Any(), int64(9)).Return(leaveerrors.ErrLeaveNotFound)

	w := do(newTestRouter(svc, 1, domain.RoleHRAdmin), http.MethodDelete, "/leave-requests/9", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
