package leavequota

import (
	"context"
	"time"

	"go-hrms/internal/domain"
	leavequotaerrors "go-hrms/internal/leavequota/errors"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/response"

	"go.uber.org/zap"
)

// Service is the administrative surface over quota balances. Balance
// arithmetic triggered by leave approval goes through Ledger instead.
//
//go:generate mockgen -source=leavequota_service.go -destination=mock/leavequota_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, q ListQuotasQuery) ([]QuotaResponse, response.PaginationMeta, error)
	Get(ctx context.Context, empNo int64, year int, leaveType string) (QuotaResponse, error)
	Balances(ctx context.Context, empNo int64, year int) ([]QuotaResponse, error)
	Create(ctx context.Context, req CreateQuotaRequest) (QuotaResponse, error)
	Update(ctx context.Context, empNo int64, year int, leaveType string, req UpdateQuotaRequest) (QuotaResponse, error)
	Delete(ctx context.Context, empNo int64, year int, leaveType string) error
}

type service struct {
	repo   Repository
	ledger Ledger
	limits response.PageLimits
	logger *zap.Logger
}

func NewService(repo Repository, ledger Ledger, limits response.PageLimits, logger ...*zap.Logger) Service {
	l := zap.L().Named("leavequota.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavequota.service")
	}
	return &service{repo: repo, ledger: ledger, limits: limits, logger: l}
}

func (s *service) key(empNo int64, year int, leaveType string) (Key, error) {
	t, err := domain.ParseLeaveType(leaveType)
	if err != nil || !s.ledger.Policy().IsQuotaBearing(t) {
		return Key{}, leavequotaerrors.ErrInvalidLeaveType
	}
	if year < 1900 || year > 9998 {
		return Key{}, leavequotaerrors.ErrInvalidYear
	}
	return Key{EmpNo: empNo, Year: year, LeaveType: t}, nil
}

func (s *service) List(ctx context.Context, q ListQuotasQuery) ([]QuotaResponse, response.PaginationMeta, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	limit := s.limits.Clamp(q.Limit)

	quotas, total, err := s.repo.List(ctx, ListFilter{
		EmpNo:     q.EmployeeID,
		Year:      q.Year,
		LeaveType: q.LeaveType,
		Offset:    q.Offset,
		Limit:     limit,
	})
	if err != nil {
		log.Error("failed to list leave quotas", zap.Error(err))
		return nil, response.PaginationMeta{}, mapRepositoryError(err)
	}

	meta := response.NewPaginationMeta(q.Offset, limit, len(quotas))
	meta.Total = total
	return mapToListResponse(quotas), meta, nil
}

func (s *service) Get(ctx context.Context, empNo int64, year int, leaveType string) (QuotaResponse, error) {
	key, err := s.key(empNo, year, leaveType)
	if err != nil {
		return QuotaResponse{}, err
	}

	q, err := s.repo.Find(ctx, key)
	if err != nil {
		return QuotaResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*q), nil
}

// Balances returns every quota-bearing balance of the employee for the
// year, provisioning the missing ones.
func (s *service) Balances(ctx context.Context, empNo int64, year int) ([]QuotaResponse, error) {
	if year < 1900 || year > 9998 {
		return nil, leavequotaerrors.ErrInvalidYear
	}

	types := s.ledger.Policy().Types()
	resp := make([]QuotaResponse, 0, len(types))
	for _, t := range types {
		q, err := s.ledger.GetOrCreate(ctx, empNo, t, year)
		if err != nil {
			return nil, err
		}
		resp = append(resp, mapToResponse(*q))
	}
	return resp, nil
}

func (s *service) Create(ctx context.Context, req CreateQuotaRequest) (QuotaResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create leave quota",
		zap.Int64("emp_no", req.EmployeeID),
		zap.Int("year", req.Year),
		zap.String("leave_type", req.LeaveType),
	)

	key, err := s.key(req.EmployeeID, req.Year, req.LeaveType)
	if err != nil {
		log.Warn("create leave quota rejected", zap.Error(err))
		return QuotaResponse{}, err
	}

	days, _ := s.ledger.Policy().Default(key.LeaveType)
	if req.RemainingDays != nil {
		if *req.RemainingDays < 0 {
			return QuotaResponse{}, leavequotaerrors.ErrNegativeQuota
		}
		days = *req.RemainingDays
	}

	q := &Quota{EmpNo: key.EmpNo, Year: key.Year, LeaveType: key.LeaveType, RemainingDays: days}
	if err := s.repo.Create(ctx, q); err != nil {
		mapped := mapRepositoryError(err)
		if mapped == leavequotaerrors.ErrQuotaAlreadyExists {
			log.Warn("leave quota already exists", zap.Int64("emp_no", key.EmpNo), zap.Int("year", key.Year))
		} else {
			log.Error("failed to create leave quota", zap.Error(err))
		}
		return QuotaResponse{}, mapped
	}

	log.Info("leave quota created",
		zap.Int64("emp_no", q.EmpNo),
		zap.Int("year", q.Year),
		zap.String("leave_type", q.LeaveType.String()),
		zap.Int("remaining_days", q.RemainingDays),
	)
	return mapToResponse(*q), nil
}

func (s *service) Update(ctx context.Context, empNo int64, year int, leaveType string, req UpdateQuotaRequest) (QuotaResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	key, err := s.key(empNo, year, leaveType)
	if err != nil {
		return QuotaResponse{}, err
	}
	if req.RemainingDays == nil || *req.RemainingDays < 0 {
		return QuotaResponse{}, leavequotaerrors.ErrNegativeQuota
	}

	q, err := s.repo.SetRemaining(ctx, key, *req.RemainingDays)
	if err != nil {
		log.Warn("update leave quota failed", zap.Int64("emp_no", empNo), zap.Error(err))
		return QuotaResponse{}, mapRepositoryError(err)
	}

	log.Info("leave quota updated",
		zap.Int64("emp_no", q.EmpNo),
		zap.Int("year", q.Year),
		zap.String("leave_type", q.LeaveType.String()),
		zap.Int("remaining_days", q.RemainingDays),
	)
	return mapToResponse(*q), nil
}

func (s *service) Delete(ctx context.Context, empNo int64, year int, leaveType string) error {
	log := contextutil.GetLogger(ctx, s.logger)

	key, err := s.key(empNo, year, leaveType)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, key); err != nil {
		return mapRepositoryError(err)
	}

	log.Info("leave quota deleted",
		zap.Int64("emp_no", key.EmpNo),
		zap.Int("year", key.Year),
		zap.String("leave_type", key.LeaveType.String()),
	)
	return nil
}

func mapToResponse(q Quota) QuotaResponse {
	return QuotaResponse{
		EmployeeID:    q.EmpNo,
		Year:          q.Year,
		LeaveType:     q.LeaveType.String(),
		RemainingDays: q.RemainingDays,
		UpdatedAt:     q.UpdatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(quotas []Quota) []QuotaResponse {
	resp := make([]QuotaResponse, 0, len(quotas))
	for _, q := range quotas {
		resp = append(resp, mapToResponse(q))
	}
	return resp
}
