package leave

type CreateLeaveRequest struct {
	// EmployeeID defaults to the caller when omitted.
	EmployeeID int64   `json:"employee_id" binding:"omitempty,gt=0"`
	LeaveType  string  `json:"leave_type" binding:"required"`
	StartDate  string  `json:"start_date" binding:"required"`
	EndDate    string  `json:"end_date" binding:"required"`
	Comment    *string `json:"comment" binding:"omitempty,max=255"`
}

type ReviewLeaveRequest struct {
	Outcome string  `json:"outcome" binding:"required"`
	Comment *string `json:"comment" binding:"omitempty,max=255"`
}

// UpdateLeaveRequest is a partial update; nil fields are left untouched.
type UpdateLeaveRequest struct {
	LeaveType       *string `json:"leave_type"`
	StartDate       *string `json:"start_date"`
	EndDate         *string `json:"end_date"`
	EmployeeComment *string `json:"employee_comment" binding:"omitempty,max=255"`
	ManagerComment  *string `json:"manager_comment" binding:"omitempty,max=255"`
	Status          *string `json:"status"`
	// ManagerID overrides the caller as the recorded reviewer.
	ManagerID *int64 `json:"manager_id" binding:"omitempty,gt=0"`
}

type ListLeaveRequestsQuery struct {
	EmployeeID *int64 `form:"employee_id" binding:"omitempty,gt=0"`
	Status     string `form:"status"`
	Offset     int    `form:"offset" binding:"gte=0"`
	Limit      int    `form:"limit" binding:"gte=0"`
}

type LeaveResponse struct {
	ID              int64   `json:"leave_id"`
	EmployeeID      int64   `json:"employee_id"`
	LeaveType       string  `json:"leave_type"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	DaysRequested   int     `json:"days_requested"`
	Status          string  `json:"status"`
	RequestedAt     string  `json:"requested_at"`
	DecidedAt       *string `json:"decided_at,omitempty"`
	ManagerID       *int64  `json:"manager_id,omitempty"`
	EmployeeComment *string `json:"employee_comment,omitempty"`
	ManagerComment  *string `json:"manager_comment,omitempty"`
	// RemainingDays is the balance left after an approval debited quota.
	RemainingDays *int `json:"remaining_days,omitempty"`
}
