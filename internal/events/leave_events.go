package events

import "time"

const LeaveLifecycleTopic = "hr.leave.lifecycle.v1"

const (
	EventLeaveRequested = "leave_requested"
	EventLeaveDecided   = "leave_decided"
)

type LeaveRequestedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	LeaveID       int64     `json:"leave_id"`
	EmployeeID    int64     `json:"employee_id"`
	LeaveType     string    `json:"leave_type"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	DaysRequested int       `json:"days_requested"`
	ManagerID     *int64    `json:"manager_id,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type LeaveDecidedEvent struct {
	EventType  string `json:"event_type"`
	RequestID  string `json:"request_id,omitempty"`
	LeaveID    int64  `json:"leave_id"`
	EmployeeID int64  `json:"employee_id"`
	LeaveType  string `json:"leave_type"`
	Status     string `json:"status"`
	DecidedBy  *int64 `json:"decided_by,omitempty"`
	// DaysDebited is zero unless the decision consumed quota.
	DaysDebited   int       `json:"days_debited"`
	RemainingDays *int      `json:"remaining_days,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}
