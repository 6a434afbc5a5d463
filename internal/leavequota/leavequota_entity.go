package leavequota

import (
	"time"

	"go-hrms/internal/domain"
)

// Quota is the remaining entitlement of one employee for one year and one
// quota-bearing leave category.
type Quota struct {
	EmpNo         int64            `gorm:"column:emp_no;primaryKey;autoIncrement:false"`
	Year          int              `gorm:"column:year;primaryKey;autoIncrement:false"`
	LeaveType     domain.LeaveType `gorm:"column:leave_type;primaryKey;size:10"`
	RemainingDays int              `gorm:"column:remaining_days;not null"`
	CreatedAt     time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

func (Quota) TableName() string {
	return "leave_quotas"
}

type Key struct {
	EmpNo     int64
	Year      int
	LeaveType domain.LeaveType
}

func (q Quota) Key() Key {
	return Key{EmpNo: q.EmpNo, Year: q.Year, LeaveType: q.LeaveType}
}
