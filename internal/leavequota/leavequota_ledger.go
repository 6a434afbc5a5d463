package leavequota

import (
	"context"
	"database/sql"

	"go-hrms/internal/domain"
	leavequotaerrors "go-hrms/internal/leavequota/errors"
	"go-hrms/internal/shared/contextutil"

	"go.uber.org/zap"
)

// Ledger owns every mutation of quota balances.
//
// GetOrCreate and HasSufficient may write: a missing balance is provisioned
// with the policy default before it is read.
//
//go:generate mockgen -source=leavequota_ledger.go -destination=mock/leavequota_ledger_mock.go -package=mock
type Ledger interface {
	WithTx(tx *sql.Tx) Ledger
	Policy() Policy
	GetOrCreate(ctx context.Context, empNo int64, leaveType domain.LeaveType, year int) (*Quota, error)
	// Debit is a no-op returning nil for categories without a quota. Callers
	// guarantee it runs at most once per approval.
	Debit(ctx context.Context, empNo int64, leaveType domain.LeaveType, year int, days int) (*Quota, error)
	HasSufficient(ctx context.Context, empNo int64, leaveType domain.LeaveType, year int, days int) (bool, error)
	// Provision creates the default balance of every quota-bearing category
	// for the year and returns how many rows were new.
	Provision(ctx context.Context, empNo int64, year int) (int, error)
}

type ledger struct {
	repo   Repository
	policy Policy
	logger *zap.Logger
}

func NewLedger(repo Repository, policy Policy, logger ...*zap.Logger) Ledger {
	l := zap.L().Named("leavequota.ledger")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavequota.ledger")
	}
	return &ledger{repo: repo, policy: policy, logger: l}
}

func (l *ledger) WithTx(tx *sql.Tx) Ledger {
	return &ledger{repo: l.repo.WithTx(tx), policy: l.policy, logger: l.logger}
}

func (l *ledger) Policy() Policy {
	return l.policy
}

func (l *ledger) GetOrCreate(ctx context.Context, empNo int64, leaveType domain.LeaveType, year int) (*Quota, error) {
	log := contextutil.GetLogger(ctx, l.logger)

	if _, err := l.ensure(ctx, empNo, leaveType, year); err != nil {
		return nil, err
	}

	q, err := l.repo.Find(ctx, Key{EmpNo: empNo, Year: year, LeaveType: leaveType})
	if err != nil {
		log.Error("failed to load leave quota",
			zap.Int64("emp_no", empNo),
			zap.Int("year", year),
			zap.String("leave_type", leaveType.String()),
			zap.Error(err),
		)
		return nil, mapRepositoryError(err)
	}
	return q, nil
}

func (l *ledger) Debit(ctx context.Context, empNo int64, leaveType domain.LeaveType, year int, days int) (*Quota, error) {
	log := contextutil.GetLogger(ctx, l.logger)

	if !l.policy.IsQuotaBearing(leaveType) {
		return nil, nil
	}
	if days < 0 {
		return nil, leavequotaerrors.ErrNegativeQuota
	}

	if _, err := l.ensure(ctx, empNo, leaveType, year); err != nil {
		return nil, err
	}

	q, err := l.repo.Debit(ctx, Key{EmpNo: empNo, Year: year, LeaveType: leaveType}, days)
	if err != nil {
		log.Error("failed to debit leave quota",
			zap.Int64("emp_no", empNo),
			zap.Int("year", year),
			zap.String("leave_type", leaveType.String()),
			zap.Int("days", days),
			zap.Error(err),
		)
		return nil, mapRepositoryError(err)
	}

	log.Info("leave quota debited",
		zap.Int64("emp_no", empNo),
		zap.Int("year", year),
		zap.String("leave_type", leaveType.String()),
		zap.Int("days", days),
		zap.Int("remaining_days", q.RemainingDays),
	)
	return q, nil
}

func (l *ledger) HasSufficient(ctx context.Context, empNo int64, leaveType domain.LeaveType, year int, days int) (bool, error) {
	if !l.policy.IsQuotaBearing(leaveType) {
		return true, nil
	}

	q, err := l.GetOrCreate(ctx, empNo, leaveType, year)
	if err != nil {
		return false, err
	}
	return q.RemainingDays >= days, nil
}

func (l *ledger) Provision(ctx context.Context, empNo int64, year int) (int, error) {
	created := 0
	for _, t := range l.policy.Types() {
		ok, err := l.ensure(ctx, empNo, t, year)
		if err != nil {
			return created, err
		}
		if ok {
			created++
		}
	}
	return created, nil
}

// ensure provisions the default balance when the key has none.
func (l *ledger) ensure(ctx context.Context, empNo int64, leaveType domain.LeaveType, year int) (bool, error) {
	log := contextutil.GetLogger(ctx, l.logger)

	days, ok := l.policy.Default(leaveType)
	if !ok {
		log.Error("quota requested for leave type without quota",
			zap.Int64("emp_no", empNo),
			zap.String("leave_type", leaveType.String()),
		)
		return false, leavequotaerrors.ErrInvalidCategory
	}

	created, err := l.repo.InsertIfAbsent(ctx, &Quota{
		EmpNo:         empNo,
		Year:          year,
		LeaveType:     leaveType,
		RemainingDays: days,
	})
	if err != nil {
		log.Error("failed to provision leave quota",
			zap.Int64("emp_no", empNo),
			zap.Int("year", year),
			zap.String("leave_type", leaveType.String()),
			zap.Error(err),
		)
		return false, mapRepositoryError(err)
	}

	if created {
		log.Info("leave quota provisioned",
			zap.Int64("emp_no", empNo),
			zap.Int("year", year),
			zap.String("leave_type", leaveType.String()),
			zap.Int("remaining_days", days),
		)
	}
	return created, nil
}
