package assignment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	assignmenterrors "go-hrms/internal/assignment/errors"
	"go-hrms/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Resolver answers "who manages this employee" from effective-dated
// department and manager history. It only reads.
//
//go:generate mockgen -source=assignment_resolver.go -destination=mock/assignment_resolver_mock.go -package=mock
type Resolver interface {
	// ResolveCurrentManager returns nil when the employee has no current
	// department or the department has no current manager.
	ResolveCurrentManager(ctx context.Context, empNo int64) (*int64, error)
	ResolveCurrentDepartment(ctx context.Context, empNo int64) (string, bool, error)
	ResolveManagerOn(ctx context.Context, empNo int64, on time.Time) (*int64, error)
}

type resolver struct {
	repo   Repository
	rdb    *redis.Client
	ttl    time.Duration
	sf     *singleflight.Group
	logger *zap.Logger
}

// NewResolver builds a resolver. A nil rdb or a zero ttl disables caching.
func NewResolver(repo Repository, rdb *redis.Client, ttl time.Duration, logger ...*zap.Logger) Resolver {
	l := zap.L().Named("assignment.resolver")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("assignment.resolver")
	}
	return &resolver{
		repo:   repo,
		rdb:    rdb,
		ttl:    ttl,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func CurrentManagerKey(empNo int64) string {
	return fmt.Sprintf("assignment:manager:%d", empNo)
}

type cachedManager struct {
	ManagerID *int64 `json:"manager_id"`
}

func (r *resolver) cacheEnabled() bool {
	return r.rdb != nil && r.ttl > 0
}

func (r *resolver) ResolveCurrentManager(ctx context.Context, empNo int64) (*int64, error) {
	log := contextutil.GetLogger(ctx, r.logger)
	cacheKey := CurrentManagerKey(empNo)

	if r.cacheEnabled() {
		cached, err := r.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var entry cachedManager
			if jsonErr := json.Unmarshal([]byte(cached), &entry); jsonErr == nil {
				return entry.ManagerID, nil
			}
		} else if err != redis.Nil {
			log.Warn("manager cache read failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	// The lookup is shared by every caller waiting on cacheKey, so it must
	// not die with the first caller's request.
	sharedCtx := context.WithoutCancel(ctx)
	v, err, _ := r.sf.Do(cacheKey, func() (interface{}, error) {
		managerID, err := r.resolve(sharedCtx, empNo, Interval.IsCurrent)
		if err != nil {
			return nil, err
		}

		if r.cacheEnabled() {
			if payload, err := json.Marshal(cachedManager{ManagerID: managerID}); err == nil {
				if err := r.rdb.Set(sharedCtx, cacheKey, string(payload), r.ttl).Err(); err != nil {
					log.Warn("manager cache write failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}
		return managerID, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*int64), nil
}

func (r *resolver) ResolveCurrentDepartment(ctx context.Context, empNo int64) (string, bool, error) {
	return r.department(ctx, empNo, Interval.IsCurrent)
}

func (r *resolver) ResolveManagerOn(ctx context.Context, empNo int64, on time.Time) (*int64, error) {
	return r.resolve(ctx, empNo, func(i Interval) bool { return i.ActiveOn(on) })
}

func (r *resolver) resolve(ctx context.Context, empNo int64, active func(Interval) bool) (*int64, error) {
	log := contextutil.GetLogger(ctx, r.logger)

	deptNo, ok, err := r.department(ctx, empNo, active)
	if err != nil || !ok {
		return nil, err
	}

	managers, err := r.repo.ListManagerHistory(ctx, deptNo)
	if err != nil {
		log.Error("failed to load manager history",
			zap.String("dept_no", deptNo),
			zap.Error(err),
		)
		return nil, assignmenterrors.ErrAssignmentUnavailable.WithCause(err)
	}

	manager, ok := pickManager(managers, active)
	if !ok {
		log.Debug("department has no active manager",
			zap.Int64("emp_no", empNo),
			zap.String("dept_no", deptNo),
		)
		return nil, nil
	}
	return &manager.EmpNo, nil
}

func (r *resolver) department(ctx context.Context, empNo int64, active func(Interval) bool) (string, bool, error) {
	rows, err := r.repo.ListDepartmentHistory(ctx, empNo)
	if err != nil {
		contextutil.GetLogger(ctx, r.logger).Error("failed to load department history",
			zap.Int64("emp_no", empNo),
			zap.Error(err),
		)
		return "", false, assignmenterrors.ErrAssignmentUnavailable.WithCause(err)
	}

	dept, ok := pickDepartment(rows, active)
	if !ok {
		return "", false, nil
	}
	return dept.DeptNo, true, nil
}

// pickDepartment chooses the active row with the latest from_date. Rows
// sharing that from_date resolve to the lowest dept_no.
func pickDepartment(rows []DeptEmployee, active func(Interval) bool) (DeptEmployee, bool) {
	var best DeptEmployee
	found := false
	for _, row := range rows {
		if !active(row.Interval()) {
			continue
		}
		if !found ||
			row.FromDate.After(best.FromDate) ||
			(row.FromDate.Equal(best.FromDate) && row.DeptNo < best.DeptNo) {
			best = row
			found = true
		}
	}
	return best, found
}

// pickManager chooses the active row with the latest from_date. Rows
// sharing that from_date resolve to the lowest emp_no.
func pickManager(rows []DeptManager, active func(Interval) bool) (DeptManager, bool) {
	var best DeptManager
	found := false
	for _, row := range rows {
		if !active(row.Interval()) {
			continue
		}
		if !found ||
			row.FromDate.After(best.FromDate) ||
			(row.FromDate.Equal(best.FromDate) && row.EmpNo < best.EmpNo) {
			best = row
			found = true
		}
	}
	return best, found
}
