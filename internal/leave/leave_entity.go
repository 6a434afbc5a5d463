package leave

import (
	"time"

	"go-hrms/internal/domain"
)

type LeaveRequest struct {
	ID              int64              `gorm:"column:leave_id;primaryKey;autoIncrement"`
	EmpNo           int64              `gorm:"column:emp_no;not null"`
	LeaveType       domain.LeaveType   `gorm:"column:leave_type;size:10;not null"`
	StartDate       time.Time          `gorm:"column:start_date;type:date;not null"`
	EndDate         time.Time          `gorm:"column:end_date;type:date;not null"`
	DaysRequested   int                `gorm:"column:days_requested;not null"`
	Status          domain.LeaveStatus `gorm:"column:status;size:10;not null"`
	RequestedAt     time.Time          `gorm:"column:requested_at;not null"`
	DecidedAt       *time.Time         `gorm:"column:decided_at"`
	ManagerEmpNo    *int64             `gorm:"column:manager_emp_no"`
	EmployeeComment *string            `gorm:"column:employee_comment;size:255"`
	ManagerComment  *string            `gorm:"column:manager_comment;size:255"`
	UpdatedAt       time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// QuotaYear is the ledger year charged for the request.
func (l LeaveRequest) QuotaYear() int {
	return l.StartDate.Year()
}
