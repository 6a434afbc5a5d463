package employee

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	Exists(ctx context.Context, empNo int64) (bool, error)
	FindByID(ctx context.Context, empNo int64) (*Employee, error)
	ListIDs(ctx context.Context) ([]int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Exists(ctx context.Context, empNo int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("emp_no = ?", empNo).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindByID(ctx context.Context, empNo int64) (*Employee, error) {
	var emp Employee
	err := r.db.WithContext(ctx).First(&emp, "emp_no = ?", empNo).Error
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *repository) ListIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Order("emp_no ASC").
		Pluck("emp_no", &ids).Error
	return ids, err
}
