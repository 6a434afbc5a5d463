package leavequota

import (
	"context"
	"database/sql"
	"time"

	"go-hrms/internal/shared/connection"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ListFilter struct {
	EmpNo     *int64
	Year      *int
	LeaveType string
	Offset    int
	Limit     int
}

//go:generate mockgen -source=leavequota_repo.go -destination=mock/leavequota_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	// InsertIfAbsent reports whether a new row was written.
	InsertIfAbsent(ctx context.Context, q *Quota) (bool, error)
	Create(ctx context.Context, q *Quota) error
	Find(ctx context.Context, key Key) (*Quota, error)
	List(ctx context.Context, filter ListFilter) ([]Quota, int64, error)
	Debit(ctx context.Context, key Key, days int) (*Quota, error)
	SetRemaining(ctx context.Context, key Key, days int) (*Quota, error)
	Delete(ctx context.Context, key Key) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return connection.BindTx(r.db, r.tx).WithContext(ctx)
}

func byKey(key Key) (string, []interface{}) {
	return "emp_no = ? AND year = ? AND leave_type = ?", []interface{}{key.EmpNo, key.Year, key.LeaveType}
}

func (r *repository) InsertIfAbsent(ctx context.Context, q *Quota) (bool, error) {
	res := r.conn(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(q)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) Create(ctx context.Context, q *Quota) error {
	return r.conn(ctx).Create(q).Error
}

func (r *repository) Find(ctx context.Context, key Key) (*Quota, error) {
	var q Quota
	query, args := byKey(key)
	if err := r.conn(ctx).Where(query, args...).First(&q).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

func (f ListFilter) scope(db *gorm.DB) *gorm.DB {
	if f.EmpNo != nil {
		db = db.Where("emp_no = ?", *f.EmpNo)
	}
	if f.Year != nil {
		db = db.Where("year = ?", *f.Year)
	}
	if f.LeaveType != "" {
		db = db.Where("leave_type = ?", f.LeaveType)
	}
	return db
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]Quota, int64, error) {
	var total int64
	if err := r.conn(ctx).Model(&Quota{}).Scopes(filter.scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var quotas []Quota
	err := r.conn(ctx).
		Scopes(filter.scope).
		Order("emp_no ASC").
		Order("year DESC").
		Order("leave_type ASC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&quotas).Error
	return quotas, total, err
}

// Debit subtracts days in a single statement, clamping at zero, so concurrent
// debits on the same key serialize on the row lock.
func (r *repository) Debit(ctx context.Context, key Key, days int) (*Quota, error) {
	var q Quota
	res := r.conn(ctx).Raw(`
		UPDATE leave_quotas
		SET remaining_days = GREATEST(remaining_days - ?, 0), updated_at = ?
		WHERE emp_no = ? AND year = ? AND leave_type = ?
		RETURNING emp_no, year, leave_type, remaining_days, created_at, updated_at
	`, days, time.Now(), key.EmpNo, key.Year, key.LeaveType).Scan(&q)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &q, nil
}

func (r *repository) SetRemaining(ctx context.Context, key Key, days int) (*Quota, error) {
	var q Quota
	res := r.conn(ctx).Raw(`
		UPDATE leave_quotas
		SET remaining_days = ?, updated_at = ?
		WHERE emp_no = ? AND year = ? AND leave_type = ?
		RETURNING emp_no, year, leave_type, remaining_days, created_at, updated_at
	`, days, time.Now(), key.EmpNo, key.Year, key.LeaveType).Scan(&q)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &q, nil
}

func (r *repository) Delete(ctx context.Context, key Key) error {
	query, args := byKey(key)
	res := r.conn(ctx).Where(query, args...).Delete(&Quota{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
