package leave

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
	"time"

	"go-hrms/internal/assignment"
	"go-hrms/internal/domain"
	"go-hrms/internal/employee"
	"go-hrms/internal/events"
	leaveerrors "go-hrms/internal/leave/errors"
	"go-hrms/internal/leavequota"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/response"

	"go.uber.org/zap"
)

const aggregateLeaveRequest = "leave_request"

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	GetByID(ctx context.Context, id int64) (LeaveResponse, error)
	List(ctx context.Context, q ListLeaveRequestsQuery) ([]LeaveResponse, response.PaginationMeta, error)
	Review(ctx context.Context, id, reviewerID int64, req ReviewLeaveRequest) (LeaveResponse, error)
	Update(ctx context.Context, id, actorID int64, req UpdateLeaveRequest) (LeaveResponse, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	db        *sql.DB
	repo      Repository
	directory employee.Directory
	resolver  assignment.Resolver
	ledger    leavequota.Ledger
	outbox    kafka.OutboxRepository
	limits    response.PageLimits
	now       func() time.Time
	logger    *zap.Logger
}

// NewService wires the lifecycle engine. outbox may be nil, in which case
// no lifecycle events are recorded.
func NewService(
	db *sql.DB,
	repo Repository,
	directory employee.Directory,
	resolver assignment.Resolver,
	ledger leavequota.Ledger,
	outbox kafka.OutboxRepository,
	limits response.PageLimits,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		directory: directory,
		resolver:  resolver,
		ledger:    ledger,
		outbox:    outbox,
		limits:    limits,
		now:       time.Now,
		logger:    l,
	}
}

func (s *service) Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create leave requested",
		zap.Int64("emp_no", req.EmployeeID),
		zap.String("leave_type", req.LeaveType),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	leaveType, err := parseLeaveType(req.LeaveType)
	if err != nil {
		return LeaveResponse{}, err
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	if endDate.Before(startDate) {
		return LeaveResponse{}, leaveerrors.ErrInvalidRange
	}
	days := domain.DaysInclusive(startDate, endDate)
	if days <= 0 {
		return LeaveResponse{}, leaveerrors.ErrInvalidRange
	}

	exists, err := s.directory.Exists(ctx, req.EmployeeID)
	if err != nil {
		log.Error("create leave employee lookup failed", zap.Int64("emp_no", req.EmployeeID), zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}
	if !exists {
		log.Warn("create leave unknown employee", zap.Int64("emp_no", req.EmployeeID))
		return LeaveResponse{}, leaveerrors.ErrEmployeeNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, leaveerrors.ErrStorageFailure.WithCause(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	enough, err := s.ledger.WithTx(tx).HasSufficient(ctx, req.EmployeeID, leaveType, startDate.Year(), days)
	if err != nil {
		log.Error("create leave quota check failed", zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}
	if !enough {
		log.Warn("create leave insufficient quota",
			zap.Int64("emp_no", req.EmployeeID),
			zap.String("leave_type", leaveType.String()),
			zap.Int("days", days),
		)
		return LeaveResponse{}, leaveerrors.ErrInsufficientQuota
	}

	managerID, err := s.resolver.ResolveCurrentManager(ctx, req.EmployeeID)
	if err != nil {
		log.Error("create leave manager resolution failed", zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}

	l := &LeaveRequest{
		EmpNo:           req.EmployeeID,
		LeaveType:       leaveType,
		StartDate:       startDate,
		EndDate:         endDate,
		DaysRequested:   days,
		Status:          domain.LeaveStatusPending,
		RequestedAt:     s.now().UTC(),
		ManagerEmpNo:    managerID,
		EmployeeComment: trimComment(req.Comment),
	}
	if err := qtx.Create(ctx, l); err != nil {
		log.Error("create leave persist failed", zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueue(ctx, tx, l, events.EventLeaveRequested, events.LeaveRequestedEvent{
		EventType:     events.EventLeaveRequested,
		RequestID:     contextutil.GetRequestID(ctx),
		LeaveID:       l.ID,
		EmployeeID:    l.EmpNo,
		LeaveType:     l.LeaveType.String(),
		StartDate:     l.StartDate.Format(domain.DateLayout),
		EndDate:       l.EndDate.Format(domain.DateLayout),
		DaysRequested: l.DaysRequested,
		ManagerID:     l.ManagerEmpNo,
		OccurredAt:    l.RequestedAt,
	}); err != nil {
		log.Error("create leave enqueue event failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("create leave commit failed", zap.Error(err))
		return LeaveResponse{}, leaveerrors.ErrStorageFailure.WithCause(err)
	}

	log.Info("create leave success",
		zap.Int64("leave_id", l.ID),
		zap.Int64("emp_no", l.EmpNo),
		zap.Int("days", l.DaysRequested),
	)
	return mapToResponse(*l), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (LeaveResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*l), nil
}

func (s *service) List(ctx context.Context, q ListLeaveRequestsQuery) ([]LeaveResponse, response.PaginationMeta, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	filter := ListFilter{EmpNo: q.EmployeeID, Offset: q.Offset, Limit: s.limits.Clamp(q.Limit)}
	if strings.TrimSpace(q.Status) != "" {
		status, err := domain.ParseLeaveStatus(q.Status)
		if err != nil {
			return nil, response.PaginationMeta{}, leaveerrors.ErrInvalidStatus
		}
		filter.Status = &status
	}

	leaves, total, err := s.repo.List(ctx, filter)
	if err != nil {
		log.Error("list leave failed", zap.Error(err))
		return nil, response.PaginationMeta{}, mapRepositoryError(err)
	}

	meta := response.NewPaginationMeta(filter.Offset, filter.Limit, len(leaves))
	meta.Total = total
	return mapToListResponse(leaves), meta, nil
}

func (s *service) Review(ctx context.Context, id, reviewerID int64, req ReviewLeaveRequest) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("review leave requested",
		zap.Int64("leave_id", id),
		zap.Int64("reviewer_id", reviewerID),
		zap.String("outcome", req.Outcome),
	)

	outcome, err := domain.ParseLeaveStatus(req.Outcome)
	if err != nil || (outcome != domain.LeaveStatusApproved && outcome != domain.LeaveStatusRejected) {
		return LeaveResponse{}, leaveerrors.ErrInvalidDecision
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("review leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, leaveerrors.ErrStorageFailure.WithCause(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}
	if c := trimComment(req.Comment); c != nil {
		l.ManagerComment = c
	}

	remaining, err := s.transitionTo(ctx, tx, qtx, l, outcome, &reviewerID)
	if err != nil {
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("review leave commit failed", zap.Int64("leave_id", id), zap.Error(err))
		return LeaveResponse{}, leaveerrors.ErrStorageFailure.WithCause(err)
	}

	log.Info("review leave success",
		zap.Int64("leave_id", id),
		zap.String("status", l.Status.String()),
	)
	resp := mapToResponse(*l)
	resp.RemainingDays = remaining
	return resp, nil
}

type leaveEdit struct {
	leaveType *domain.LeaveType
	startDate *time.Time
	endDate   *time.Time
	status    *domain.LeaveStatus
}

func (e leaveEdit) changesTerms() bool {
	return e.leaveType != nil || e.startDate != nil || e.endDate != nil
}

func parseEdit(req UpdateLeaveRequest) (leaveEdit, error) {
	var e leaveEdit
	if req.LeaveType != nil {
		t, err := parseLeaveType(*req.LeaveType)
		if err != nil {
			return e, err
		}
		e.leaveType = &t
	}
	if req.StartDate != nil {
		d, err := parseDate(*req.StartDate)
		if err != nil {
			return e, err
		}
		e.startDate = &d
	}
	if req.EndDate != nil {
		d, err := parseDate(*req.EndDate)
		if err != nil {
			return e, err
		}
		e.endDate = &d
	}
	if req.Status != nil {
		st, err := domain.ParseLeaveStatus(*req.Status)
		if err != nil {
			return e, leaveerrors.ErrInvalidStatus
		}
		e.status = &st
	}
	return e, nil
}

// Update applies a partial edit. A status change goes through the same
// guarded transition as Review, so quota is never debited twice.
func (s *service) Update(ctx context.Context, id, actorID int64, req UpdateLeaveRequest) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("update leave requested", zap.Int64("leave_id", id), zap.Int64("actor_id", actorID))

	edit, err := parseEdit(req)
	if err != nil {
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("update leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, leaveerrors.ErrStorageFailure.WithCause(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}
	current := l.Status

	if edit.changesTerms() {
		if current != domain.LeaveStatusPending {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotEditable
		}
		if edit.leaveType != nil {
			l.LeaveType = *edit.leaveType
		}
		if edit.startDate != nil {
			l.StartDate = *edit.startDate
		}
		if edit.endDate != nil {
			l.EndDate = *edit.endDate
		}
		if l.EndDate.Before(l.StartDate) {
			return LeaveResponse{}, leaveerrors.ErrInvalidRange
		}
		l.DaysRequested = domain.DaysInclusive(l.StartDate, l.EndDate)

		enough, err := s.ledger.WithTx(tx).HasSufficient(ctx, l.EmpNo, l.LeaveType, l.QuotaYear(), l.DaysRequested)
		if err != nil {
			return LeaveResponse{}, mapRepositoryError(err)
		}
		if !enough {
			return LeaveResponse{}, leaveerrors.ErrInsufficientQuota
		}
	}

	if req.EmployeeComment != nil {
		l.EmployeeComment = trimComment(req.EmployeeComment)
	}
	if req.ManagerComment != nil {
		l.ManagerComment = trimComment(req.ManagerComment)
	}

	var remaining *int
	if edit.status != nil && *edit.status != current {
		reviewer := &actorID
		if req.ManagerID != nil {
			reviewer = req.ManagerID
		}
		remaining, err = s.transitionTo(ctx, tx, qtx, l, *edit.status, reviewer)
		if err != nil {
			return LeaveResponse{}, err
		}
	} else {
		if req.ManagerID != nil {
			if current != domain.LeaveStatusPending {
				return LeaveResponse{}, leaveerrors.ErrLeaveNotEditable
			}
			l.ManagerEmpNo = req.ManagerID
		}
		written, err := qtx.UpdateIfStatus(ctx, l, current)
		if err != nil {
			log.Error("update leave persist failed", zap.Int64("leave_id", id), zap.Error(err))
			return LeaveResponse{}, mapRepositoryError(err)
		}
		if !written {
			return LeaveResponse{}, leaveerrors.ErrInvalidTransition
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("update leave commit failed", zap.Int64("leave_id", id), zap.Error(err))
		return LeaveResponse{}, leaveerrors.ErrStorageFailure.WithCause(err)
	}

	log.Info("update leave success",
		zap.Int64("leave_id", id),
		zap.String("status", l.Status.String()),
	)
	resp := mapToResponse(*l)
	resp.RemainingDays = remaining
	return resp, nil
}

// transitionTo moves a PENDING request to target inside tx. The write is
// conditional on the stored status, and an approval debits quota in the
// same transaction, so a request is charged at most once.
func (s *service) transitionTo(
	ctx context.Context,
	tx *sql.Tx,
	qtx Repository,
	l *LeaveRequest,
	target domain.LeaveStatus,
	reviewer *int64,
) (*int, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	from := l.Status
	if from != domain.LeaveStatusPending || target == domain.LeaveStatusPending {
		log.Warn("leave transition rejected",
			zap.Int64("leave_id", l.ID),
			zap.String("from_status", from.String()),
			zap.String("to_status", target.String()),
		)
		return nil, leaveerrors.ErrInvalidTransition
	}
	if target != domain.LeaveStatusCancelled && reviewer != nil && *reviewer == l.EmpNo {
		log.Warn("leave self review rejected", zap.Int64("leave_id", l.ID), zap.Int64("emp_no", l.EmpNo))
		return nil, leaveerrors.ErrSelfReview
	}

	decidedAt := s.now().UTC()
	l.Status = target
	l.DecidedAt = &decidedAt
	if target != domain.LeaveStatusCancelled && reviewer != nil {
		l.ManagerEmpNo = reviewer
	}

	written, err := qtx.UpdateIfStatus(ctx, l, from)
	if err != nil {
		log.Error("leave transition persist failed", zap.Int64("leave_id", l.ID), zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	if !written {
		log.Warn("leave transition lost race", zap.Int64("leave_id", l.ID))
		return nil, leaveerrors.ErrInvalidTransition
	}

	var (
		remaining *int
		debited   int
	)
	if target == domain.LeaveStatusApproved {
		q, err := s.ledger.WithTx(tx).Debit(ctx, l.EmpNo, l.LeaveType, l.QuotaYear(), l.DaysRequested)
		if err != nil {
			log.Error("leave approval debit failed", zap.Int64("leave_id", l.ID), zap.Error(err))
			return nil, mapRepositoryError(err)
		}
		if q != nil {
			left := q.RemainingDays
			remaining = &left
			debited = l.DaysRequested
		}
	}

	var decidedBy *int64
	if target != domain.LeaveStatusCancelled {
		decidedBy = reviewer
	}
	if err := s.enqueue(ctx, tx, l, events.EventLeaveDecided, events.LeaveDecidedEvent{
		EventType:     events.EventLeaveDecided,
		RequestID:     contextutil.GetRequestID(ctx),
		LeaveID:       l.ID,
		EmployeeID:    l.EmpNo,
		LeaveType:     l.LeaveType.String(),
		Status:        l.Status.String(),
		DecidedBy:     decidedBy,
		DaysDebited:   debited,
		RemainingDays: remaining,
		OccurredAt:    decidedAt,
	}); err != nil {
		return nil, err
	}

	return remaining, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	log := contextutil.GetLogger(ctx, s.logger)

	if err := s.repo.Delete(ctx, id); err != nil {
		mapped := mapRepositoryError(err)
		if mapped != leaveerrors.ErrLeaveNotFound {
			log.Error("delete leave failed", zap.Int64("leave_id", id), zap.Error(err))
		}
		return mapped
	}

	log.Info("delete leave success", zap.Int64("leave_id", id))
	return nil
}

func (s *service) enqueue(ctx context.Context, tx *sql.Tx, l *LeaveRequest, eventType string, payload any) error {
	if s.outbox == nil {
		return nil
	}
	evt, err := kafka.NewOutboxEvent(
		contextutil.GetRequestID(ctx),
		aggregateLeaveRequest,
		strconv.FormatInt(l.ID, 10),
		eventType,
		events.LeaveLifecycleTopic,
		payload,
	)
	if err != nil {
		return leaveerrors.ErrStorageFailure.WithCause(err)
	}
	if err := s.outbox.WithTx(tx).Create(ctx, evt); err != nil {
		return leaveerrors.ErrStorageFailure.WithCause(err)
	}
	return nil
}

func parseLeaveType(v string) (domain.LeaveType, error) {
	t, err := domain.ParseLeaveType(v)
	if err != nil {
		return "", leaveerrors.ErrInvalidLeaveType
	}
	return t, nil
}

func parseDate(v string) (time.Time, error) {
	d, err := time.Parse(domain.DateLayout, strings.TrimSpace(v))
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return d, nil
}

func trimComment(c *string) *string {
	if c == nil {
		return nil
	}
	v := strings.TrimSpace(*c)
	if v == "" {
		return nil
	}
	return &v
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:              l.ID,
		EmployeeID:      l.EmpNo,
		LeaveType:       l.LeaveType.String(),
		StartDate:       l.StartDate.Format(domain.DateLayout),
		EndDate:         l.EndDate.Format(domain.DateLayout),
		DaysRequested:   l.DaysRequested,
		Status:          l.Status.String(),
		RequestedAt:     l.RequestedAt.Format(time.RFC3339),
		ManagerID:       l.ManagerEmpNo,
		EmployeeComment: l.EmployeeComment,
		ManagerComment:  l.ManagerComment,
	}
	if l.DecidedAt != nil {
		v := l.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &v
	}
	return resp
}

func mapToListResponse(leaves []LeaveRequest) []LeaveResponse {
	resp := make([]LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		resp = append(resp, mapToResponse(l))
	}
	return resp
}
