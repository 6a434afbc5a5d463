package leave

import (
	"context"
	"database/sql"

	"go-hrms/internal/domain"
	"go-hrms/internal/shared/connection"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ListFilter struct {
	EmpNo  *int64
	Status *domain.LeaveStatus
	Offset int
	Limit  int
}

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *LeaveRequest) error
	FindByID(ctx context.Context, id int64) (*LeaveRequest, error)
	// FindByIDForUpdate locks the row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id int64) (*LeaveRequest, error)
	List(ctx context.Context, filter ListFilter) ([]LeaveRequest, int64, error)
	// UpdateIfStatus writes l only while the stored status still equals
	// expected and reports whether a row was written.
	UpdateIfStatus(ctx context.Context, l *LeaveRequest, expected domain.LeaveStatus) (bool, error)
	Delete(ctx context.Context, id int64) error
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

func (r *repository) Create(ctx context.Context, l *LeaveRequest) error {
	return r.conn(ctx).Create(l).Error
}

func (r *repository) FindByID(ctx context.Context, id int64) (*LeaveRequest, error) {
	var l LeaveRequest
	if err := r.conn(ctx).First(&l, "leave_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id int64) (*LeaveRequest, error) {
	var l LeaveRequest
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&l, "leave_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (f ListFilter) scope(db *gorm.DB) *gorm.DB {
	if f.EmpNo != nil {
		db = db.Where("emp_no = ?", *f.EmpNo)
	}
	if f.Status != nil {
		db = db.Where("status = ?", *f.Status)
	}
	return db
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]LeaveRequest, int64, error) {
	var total int64
	if err := r.conn(ctx).Model(&LeaveRequest{}).Scopes(filter.scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var leaves []LeaveRequest
	err := r.conn(ctx).
		Scopes(filter.scope).
		Order("requested_at DESC").
		Order("leave_id DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&leaves).Error
	return leaves, total, err
}

func (r *repository) UpdateIfStatus(ctx context.Context, l *LeaveRequest, expected domain.LeaveStatus) (bool, error) {
	res := r.conn(ctx).
		Model(l).
		Where("status = ?", expected).
		Select("*").
		Omit("leave_id", "requested_at").
		Updates(l)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	res := r.conn(ctx).Delete(&LeaveRequest{}, "leave_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
