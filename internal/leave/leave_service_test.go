package leave_test

import (
	"context"
	"errors"
	"testing"
	"time"

	assignmentMock "go-hrms/internal/assignment/mock"
	"go-hrms/internal/domain"
	employeeerrors "go-hrms/internal/employee/errors"
	employeeMock "go-hrms/internal/employee/mock"
	"go-hrms/internal/events"
	"go-hrms/internal/leave"
	leaveerrors "go-hrms/internal/leave/errors"
	leaveMock "go-hrms/internal/leave/mock"
	"go-hrms/internal/leavequota"
	"go-hrms/internal/shared/response"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const (
	employeeID int64 = 10001
	managerID  int64 = 110022
)

type serviceDeps struct {
	service   leave.Service
	sql       sqlmock.Sqlmock
	repo      *memLeaveRepo
	quotas    *memQuotaRepo
	outbox    *memOutbox
	directory *employeeMock.MockDirectory
	resolver  *assignmentMock.MockResolver
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, mock, err := sqlmock.New()
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	t.Cleanup(func() { db.Close() })

	deps := &serviceDeps{
		sql:       mock,
		repo:      newMemLeaveRepo(),
		quotas:    newMemQuotaRepo(),
		outbox:    &memOutbox{},
		directory: employeeMock.NewMockDirectory(ctrl),
		resolver:  assignmentMock.NewMockResolver(ctrl),
	}
	ledger := leavequota.NewLedger(deps.quotas, leavequota.DefaultPolicy())
	deps.service = leave.NewService(
		db,
		deps.repo,
		deps.directory,
		deps.resolver,
		ledger,
		deps.outbox,
		response.PageLimits{Default: 20, Max: 100},
	)
	return deps
}

func int64Ptr(v int64) *int64 { return &v }
func strPtr(v string) *string { return &v }

// create files a request through the service and fails the test on error.
func (d *serviceDeps) create(t *testing.T, req leave.CreateLeaveRequest) leave.LeaveResponse {
	t.Helper()
	d.directory.EXPECT().Exists(gomock.Any(), req.EmployeeID).Return(true, nil)
	d.resolver.EXPECT().ResolveCurrentManager(gomock.Any(), req.EmployeeID).Return(int64Ptr(managerID), nil)
	d.sql.ExpectBegin()
	d.sql.ExpectCommit()

	resp, err := d.service.Create(context.Background(), req)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	return resp
}

func paid(start, end string) leave.CreateLeaveRequest {
	return leave.CreateLeaveRequest{EmployeeID: employeeID, LeaveType: "PAID", StartDate: start, EndDate: end}
}

func TestLeaveService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success counts inclusive days", func(t *testing.T) {
		deps := setupServiceTest(t)

		resp := deps.create(t, leave.CreateLeaveRequest{
			EmployeeID: employeeID,
			LeaveType:  "paid",
			StartDate:  "2025-03-01",
			EndDate:    "2025-03-05",
			Comment:    strPtr("  family trip "),
		})

		assert.Equal(t, 5, resp.DaysRequested)
		assert.Equal(t, "PENDING", resp.Status)
		assert.Equal(t, "PAID", resp.LeaveType)
		assert.Equal(t, int64Ptr(managerID), resp.ManagerID)
		assert.Equal(t, "family trip", *resp.EmployeeComment)
		assert.Nil(t, resp.DecidedAt)
		assert.Equal(t, []string{events.EventLeaveRequested}, deps.outbox.types())

		left, ok := deps.quotas.remaining(employeeID, 2025, domain.LeaveTypePaid)
		assert.True(t, ok)
		assert.Equal(t, 10, left)
		assert.NoError(t, deps.sql.ExpectationsWereMet())
	})

	t.Run("same day request is one day", func(t *testing.T) {
		deps := setupServiceTest(t)
		resp := deps.create(t, paid("2025-06-10", "2025-06-10"))
		assert.Equal(t, 1, resp.DaysRequested)
	})

	t.Run("request without manager keeps manager empty", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.directory.EXPECT().Exists(ctx, employeeID).Return(true, nil)
		deps.resolver.EXPECT().ResolveCurrentManager(ctx, employeeID).Return(nil, nil)
		deps.sql.ExpectBegin()
		deps.sql.ExpectCommit()

		resp, err := deps.service.Create(ctx, paid("2025-03-01", "2025-03-02"))
		assert.NoError(t, err)
		assert.Nil(t, resp.ManagerID)
	})

	t.Run("end before start", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Create(ctx, paid("2025-03-05", "2025-03-01"))
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidRange)
		assert.NoError(t, deps.sql.ExpectationsWereMet())
	})

	t.Run("invalid leave type", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := paid("2025-03-01", "2025-03-05")
		req.LeaveType = "SABBATICAL"

		_, err := deps.service.Create(ctx, req)
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidLeaveType)
	})

	t.Run("invalid date format", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Create(ctx, paid("01/03/2025", "2025-03-05"))
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateFormat)
	})

	t.Run("unknown employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.directory.EXPECT().Exists(ctx, employeeID).Return(false, nil)

		_, err := deps.service.Create(ctx, paid("2025-03-01", "2025-03-05"))
		assert.ErrorIs(t, err, leaveerrors.ErrEmployeeNotFound)
		assert.NoError(t, deps.sql.ExpectationsWereMet())
	})

	t.Run("directory unavailable", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.directory.EXPECT().Exists(ctx, employeeID).Return(false, employeeerrors.ErrDirectoryUnavailable)

		_, err := deps.service.Create(ctx, paid("2025-03-01", "2025-03-05"))
		assert.ErrorIs(t, err, employeeerrors.ErrDirectoryUnavailable)
	})

	t.Run("insufficient quota", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.directory.EXPECT().Exists(ctx, employeeID).Return(true, nil)
		deps.sql.ExpectBegin()
		deps.sql.ExpectRollback()

		_, err := deps.service.Create(ctx, paid("2025-03-01", "2025-03-11"))
		assert.ErrorIs(t, err, leaveerrors.ErrInsufficientQuota)
		assert.Empty(t, deps.outbox.types())
		assert.NoError(t, deps.sql.ExpectationsWereMet())
	})

	t.Run("unpaid is never quota limited", func(t *testing.T) {
		deps := setupServiceTest(t)

		resp := deps.create(t, leave.CreateLeaveRequest{
			EmployeeID: employeeID,
			LeaveType:  "UNPAID",
			StartDate:  "2025-03-01",
			EndDate:    "2025-03-20",
		})
		assert.Equal(t, 20, resp.DaysRequested)

		_, ok := deps.quotas.remaining(employeeID, 2025, domain.LeaveTypeUnpaid)
		assert.False(t, ok)
	})

	t.Run("manager lookup failure", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.directory.EXPECT().Exists(ctx, employeeID).Return(true, nil)
		deps.resolver.EXPECT().ResolveCurrentManager(ctx, employeeID).Return(nil, errors.New("boom"))
		deps.sql.ExpectBegin()
		deps.sql.ExpectRollback()

		_, err := deps.service.Create(ctx, paid("2025-03-01", "2025-03-02"))
		assert.ErrorIs(t, err, leaveerrors.ErrStorageFailure)
	})
}

func TestLeaveService_Review(t *testing.T) {
	ctx := context.Background()

	t.Run("approve debits once", func(t *testing.T) {
		deps := setupServiceTest(t)
		created := deps.create(t, paid("2025-03-03", "2025-03-05"))

		deps.sql.ExpectBegin()
		deps.sql.ExpectCommit()
		resp, err := deps.service.Review(ctx, created.ID, managerID, leave.ReviewLeaveRequest{
			Outcome: "APPROVED",
			Comment: strPtr("enjoy"),
		})
		assert.NoError(t, err)
		assert.Equal(t, "APPROVED", resp.Status)
		assert.NotNil(t, resp.DecidedAt)
		assert.Equal(t, "enjoy", *resp.ManagerComment)
		if assert.NotNil(t, resp.RemainingDays) {
			assert.Equal(t, 7, *resp.RemainingDays)
		}

		deps.sql.ExpectBegin()
		deps.sql.ExpectRollback()
		_, err = deps.service.Review(ctx, created.ID, managerID, leave.ReviewLeaveRequest{Outcome: "REJECTED"})
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidTransition)

		left, _ := deps.quotas.remaining(employeeID, 2025, domain.LeaveTypePaid)
		assert.Equal(t, 7, left)
		assert.Equal(t, []string{events.EventLeaveRequested, events.EventLeaveDecided}, deps.outbox.types())
		assert.NoError(t, deps.sql.ExpectationsWereMet())
	})

	t.Run("reject leaves balance untouched", func(t *testing.T) {
		deps := setupServiceTest(t)
		created := deps.create(t, paid("2025-03-03", "2025-03-05"))

		deps.sql.ExpectBegin()
		deps.sql.ExpectCommit()
		resp, err := deps.service.Review(ctx, created.ID, managerID, leave.ReviewLeaveRequest{Outcome: "rejected"})
		assert.NoError(t, err)
		assert.Equal(t, "REJECTED", resp.Status)
		assert.Nil(t, resp.RemainingDays)

		left, _ := deps.quotas.remaining(employeeID, 2025, domain.LeaveTypePaid)
		assert.Equal(t, 10, left)
	})

	t.Run("approve unpaid skips ledger", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := paid("2025-03-01", "2025-03-20")
		req.LeaveType = "UNPAID"
		created := deps.create(t, req)

		deps.sql.ExpectBegin()
		deps.sql.ExpectCommit()
		resp, err := deps.service.Review(ctx, created.ID, managerID, leave.ReviewLeaveRequest{Outcome: "APPROVED"})
		assert.NoError(t, err)
		assert.Equal(t, "APPROVED", resp.Status)
		assert.Nil(t, resp.RemainingDays)
	})

	t.Run("approval clamps at zero", func(t *testing.T) {
		deps := setupServiceTest(t)
		first := deps.create(t, paid("2025-03-01", "2025-03-08"))
		second := deps.create(t, paid("2025-04-01", "2025-04-05"))

		deps.sql.ExpectBegin()
		deps.sql.ExpectCommit()
		_, err := deps.service.Review(ctx, first.ID, managerID, leave.ReviewLeaveRequest{Outcome: "APPROVED"})
		assert.NoError(t, err)

		deps.sql.ExpectBegin()
		deps.sql.ExpectCommit()
		resp, err := deps.service.Review(ctx, second.ID, managerID, leave.ReviewLeaveRequest{Outcome: "APPROVED"})
		assert.NoError(t, err)
		assert.Equal(t, 0, *resp.RemainingDays)
	})

	t.Run("lost race is rejected without debit", func(t *testing.T) {
		deps := setupServiceTest(t)
		created := deps.create(t, paid("2025-03-03", "2025-03-05"))

		snapshot := deps.repo.rows[created.ID]
		stored := snapshot
		stored.Status = domain.LeaveStatusRejected
		deps.repo.rows[created.ID] = stored
		deps.repo.stale = &snapshot

		deps.sql.ExpectBegin()
		deps.sql.ExpectRollback()
		_, err := deps.service.Review(ctx, created.ID, managerID, leave.ReviewLeaveRequest{Outcome: "APPROVED"})
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidTransition)

		left, _ := deps.quotas.remaining(employeeID, 2025, domain.LeaveTypePaid)
		assert.Equal(t, 10, left)
	})

	t.Run("requester cannot decide own request", func(t *testing.T) {
		deps := setupServiceTest(t)
		created := deps.create(t, paid("2025-03-03", "2025-03-05"))

		deps.sql.ExpectBegin()
		deps.sql.ExpectRollback()
		_, err := deps.service.Review(ctx, created.ID, employeeID, leave.ReviewLeaveRequest{Outcome: "APPROVED"})
		assert.ErrorIs(t, err, leaveerrors.ErrSelfReview)

		assert.Equal(t, domain.LeaveStatusPending, deps.repo.rows[created.ID].Status)
		left, _ := deps.quotas.remaining(employeeID, 2025, domain.LeaveTypePaid)
		assert.Equal(t, 10, left)
	})

	t.Run("invalid outcome", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Review(ctx, 1, managerID, leave.ReviewLeaveRequest{Outcome: "CANCELLED"})
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDecision)
		assert.NoError(t, deps.sql.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.sql.ExpectBegin()
		deps.sql.ExpectRollback()

		_, err := deps.service.Review(ctx, 404, managerID, leave.ReviewLeaveRequest{Outcome: "APPROVED"})
		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})
}

func TestLeaveService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("cancel records decision time without debit", func(t *testing.T) {
		deps := setupServiceTest(t)
		created := deps.create(t, paid("2025-03-03", "2025-03-05"))

		deps.sql.ExpectBegin()
		deps.sql.ExpectCommit()
		resp, err := deps.service.Update(ctx, created.ID, employeeID, leave.UpdateLeaveRequest{Status: strPtr("CANCELLED")})
		assert.NoError(t, err)
		assert.Equal(t, "CANCELLED", resp.Status)
		assert.NotNil(t, resp.DecidedAt)
		assert.Equal(t, int64Ptr(managerID), resp.ManagerID)

		left, _ := deps.quotas.remaining(employeeID, 2025, domain.LeaveTypePaid)
		assert.Equal(t, 10, left)
	})

	t.Run("approval through update debits once", func(t *testing.T) {
		deps := setupServiceTest(t)
		created := deps.create(t, paid("2025-03-03", "2025-03-05"))

		deps.sql.ExpectBegin()
		deps.sql.ExpectCommit()
		resp, err := deps.service.Update(ctx, created.ID, 1, leave.UpdateLeaveRequest{
			Status:    strPtr("APPROVED"),
			ManagerID: int64Ptr(managerID),
		})
		assert.NoError(t, err)
		assert.Equal(t, 7, *resp.RemainingDays)
		assert.Equal(t, int64Ptr(managerID), resp.ManagerID)

		deps.sql.ExpectBegin()
		deps.sql.ExpectCommit()
		resp, err = deps.service.Update(ctx, created.ID, 1, leave.UpdateLeaveRequest{
			Status:         strPtr("APPROVED"),
			ManagerComment: strPtr("noted"),
		})
		assert.NoError(t, err)
		assert.Equal(t, "APPROVED", resp.Status)
		assert.Equal(t, "noted", *resp.ManagerComment)

		left, _ := deps.quotas.remaining(employeeID, 2025, domain.LeaveTypePaid)
		assert.Equal(t, 7, left)
	})

	t.Run("decided request cannot move again", func(t *testing.T) {
		deps := setupServiceTest(t)
		created := deps.create(t, paid("2025-03-03", "2025-03-05"))

		deps.sql.ExpectBegin()
		deps.sql.ExpectCommit()
		_, err := deps.service.Review(ctx, created.ID, managerID, leave.ReviewLeaveRequest{Outcome: "REJECTED"})
		assert.NoError(t, err)

		deps.sql.ExpectBegin()
		deps.sql.ExpectRollback()
		_, err = deps.service.Update(ctx, created.ID, managerID, leave.UpdateLeaveRequest{Status: strPtr("APPROVED")})
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidTransition)
	})

	t.Run("pending dates are recomputed", func(t *testing.T) {
		deps := setupServiceTest(t)
		created := deps.create(t, paid("2025-03-03", "2025-03-05"))

		deps.sql.ExpectBegin()
		deps.sql.ExpectCommit()
		resp, err := deps.service.Update(ctx, created.ID, employeeID, leave.UpdateLeaveRequest{EndDate: strPtr("2025-03-10")})
		assert.NoError(t, err)
		assert.Equal(t, 8, resp.DaysRequested)
		assert.Equal(t, "PENDING", resp.Status)
	})

	t.Run("edit beyond quota", func(t *testing.T) {
		deps := setupServiceTest(t)
		created := deps.create(t, paid("2025-03-03", "2025-03-05"))

		deps.sql.ExpectBegin()
		deps.sql.ExpectRollback()
		_, err := deps.service.Update(ctx, created.ID, employeeID, leave.UpdateLeaveRequest{EndDate: strPtr("2025-03-31")})
		assert.ErrorIs(t, err, leaveerrors.ErrInsufficientQuota)
	})

	t.Run("edit inverts range", func(t *testing.T) {
		deps := setupServiceTest(t)
		created := deps.create(t, paid("2025-03-03", "2025-03-05"))

		deps.sql.ExpectBegin()
		deps.sql.ExpectRollback()
		_, err := deps.service.Update(ctx, created.ID, employeeID, leave.UpdateLeaveRequest{EndDate: strPtr("2025-03-01")})
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidRange)
	})

	t.Run("decided request terms are frozen", func(t *testing.T) {
		deps := setupServiceTest(t)
		created := deps.create(t, paid("2025-03-03", "2025-03-05"))

		deps.sql.ExpectBegin()
		deps.sql.ExpectCommit()
		_, err := deps.service.Review(ctx, created.ID, managerID, leave.ReviewLeaveRequest{Outcome: "APPROVED"})
		assert.NoError(t, err)

		deps.sql.ExpectBegin()
		deps.sql.ExpectRollback()
		_, err = deps.service.Update(ctx, created.ID, employeeID, leave.UpdateLeaveRequest{StartDate: strPtr("2025-03-04")})
		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotEditable)
	})

	t.Run("requester cannot approve through update", func(t *testing.T) {
		deps := setupServiceTest(t)
		created := deps.create(t, paid("2025-03-03", "2025-03-05"))

		deps.sql.ExpectBegin()
		deps.sql.ExpectRollback()
		_, err := deps.service.Update(ctx, created.ID, employeeID, leave.UpdateLeaveRequest{Status: strPtr("APPROVED")})
		assert.ErrorIs(t, err, leaveerrors.ErrSelfReview)

		deps.sql.ExpectBegin()
		deps.sql.ExpectRollback()
		_, err = deps.service.Update(ctx, created.ID, managerID, leave.UpdateLeaveRequest{
			Status:    strPtr("REJECTED"),
			ManagerID: int64Ptr(employeeID),
		})
		assert.ErrorIs(t, err, leaveerrors.ErrSelfReview)

		left, _ := deps.quotas.remaining(employeeID, 2025, domain.LeaveTypePaid)
		assert.Equal(t, 10, left)
		assert.Equal(t, []string{events.EventLeaveRequested}, deps.outbox.types())
	})

	t.Run("invalid status", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Update(ctx, 1, employeeID, leave.UpdateLeaveRequest{Status: strPtr("ARCHIVED")})
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatus)
	})
}

func TestLeaveService_List(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)

	first := deps.create(t, paid("2025-03-03", "2025-03-04"))
	deps.create(t, paid("2025-05-01", "2025-05-02"))
	other := leave.CreateLeaveRequest{EmployeeID: 10002, LeaveType: "SICK", StartDate: "2025-03-03", EndDate: "2025-03-03"}
	deps.create(t, other)

	deps.sql.ExpectBegin()
	deps.sql.ExpectCommit()
	_, err := deps.service.Review(ctx, first.ID, managerID, leave.ReviewLeaveRequest{Outcome: "APPROVED"})
	assert.NoError(t, err)

	t.Run("by employee", func(t *testing.T) {
		resp, meta, err := deps.service.List(ctx, leave.ListLeaveRequestsQuery{EmployeeID: int64Ptr(employeeID)})
		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, int64(2), meta.Total)
		assert.Equal(t, 20, meta.Limit)
	})

	t.Run("by status", func(t *testing.T) {
		resp, _, err := deps.service.List(ctx, leave.ListLeaveRequestsQuery{Status: "approved"})
		assert.NoError(t, err)
		if assert.Len(t, resp, 1) {
			assert.Equal(t, first.ID, resp[0].ID)
		}
	})

	t.Run("limit is capped", func(t *testing.T) {
		_, meta, err := deps.service.List(ctx, leave.ListLeaveRequestsQuery{Limit: 1000})
		assert.NoError(t, err)
		assert.Equal(t, 100, meta.Limit)
		assert.Equal(t, 3, meta.Count)
	})

	t.Run("invalid status filter", func(t *testing.T) {
		_, _, err := deps.service.List(ctx, leave.ListLeaveRequestsQuery{Status: "DONE"})
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatus)
	})
}

func TestLeaveService_GetAndDelete(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	created := deps.create(t, paid("2025-03-03", "2025-03-05"))

	got, err := deps.service.GetByID(ctx, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, created.StartDate, got.StartDate)

	assert.NoError(t, deps.service.Delete(ctx, created.ID))

	_, err = deps.service.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	assert.ErrorIs(t, deps.service.Delete(ctx, created.ID), leaveerrors.ErrLeaveNotFound)
}

func TestLeaveService_StorageFailures(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("connection reset by peer")

	setup := func(t *testing.T) (leave.Service, *leaveMock.MockRepository, sqlmock.Sqlmock, *memQuotaRepo) {
		ctrl := gomock.NewController(t)
		db, mock, err := sqlmock.New()
		if !assert.NoError(t, err) {
			t.FailNow()
		}
		t.Cleanup(func() { db.Close() })

		repo := leaveMock.NewMockRepository(ctrl)
		repo.EXPECT().WithTx(gomock.Any()).Return(repo).AnyTimes()
		quotas := newMemQuotaRepo()
		svc := leave.NewService(
			db,
			repo,
			employeeMock.NewMockDirectory(ctrl),
			assignmentMock.NewMockResolver(ctrl),
			leavequota.NewLedger(quotas, leavequota.DefaultPolicy()),
			&memOutbox{},
			response.PageLimits{Default: 20, Max: 100},
		)
		return svc, repo, mock, quotas
	}

	t.Run("get surfaces storage failure", func(t *testing.T) {
		svc, repo, _, _ := setup(t)
		repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(nil, dbErr)

		_, err := svc.GetByID(ctx, 7)
		assert.ErrorIs(t, err, leaveerrors.ErrStorageFailure)
	})

	t.Run("failed status write does not debit", func(t *testing.T) {
		svc, repo, sqlMock, quotas := setup(t)
		pending := &leave.LeaveRequest{
			ID:            7,
			EmpNo:         employeeID,
			LeaveType:     domain.LeaveTypePaid,
			StartDate:     mustDate(t, "2025-03-03"),
			EndDate:       mustDate(t, "2025-03-05"),
			DaysRequested: 3,
			Status:        domain.LeaveStatusPending,
		}
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()
		repo.EXPECT().FindByIDForUpdate(gomock.Any(), int64(7)).Return(pending, nil)
		repo.EXPECT().UpdateIfStatus(gomock.Any(), gomock.Any(), domain.LeaveStatusPending).Return(false, dbErr)

		_, err := svc.Review(ctx, 7, managerID, leave.ReviewLeaveRequest{Outcome: "APPROVED"})
		assert.ErrorIs(t, err, leaveerrors.ErrStorageFailure)

		_, ok := quotas.remaining(employeeID, 2025, domain.LeaveTypePaid)
		assert.False(t, ok)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("list surfaces storage failure", func(t *testing.T) {
		svc, repo, _, _ := setup(t)
		repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, int64(0), dbErr)

		_, _, err := svc.List(ctx, leave.ListLeaveRequestsQuery{})
		assert.ErrorIs(t, err, leaveerrors.ErrStorageFailure)
	})
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateLayout, s)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	return d
}
