package assignment

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=assignment_repo.go -destination=mock/assignment_repo_mock.go -package=mock
type Repository interface {
	ListDepartmentHistory(ctx context.Context, empNo int64) ([]DeptEmployee, error)
	ListManagerHistory(ctx context.Context, deptNo string) ([]DeptManager, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListDepartmentHistory(ctx context.Context, empNo int64) ([]DeptEmployee, error) {
	var rows []DeptEmployee
	err := r.db.WithContext(ctx).
		Where("emp_no = ?", empNo).
		Order("from_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListManagerHistory(ctx context.Context, deptNo string) ([]DeptManager, error) {
	var rows []DeptManager
	err := r.db.WithContext(ctx).
		Where("dept_no = ?", deptNo).
		Order("from_date DESC").
		Find(&rows).Error
	return rows, err
}
