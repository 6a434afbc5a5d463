package leavequota

type ListQuotasQuery struct {
	EmployeeID *int64 `form:"employee_id" binding:"omitempty,gt=0"`
	Year       *int   `form:"year" binding:"omitempty,gte=1900,lte=9998"`
	LeaveType  string `form:"leave_type" binding:"omitempty,oneof=PAID SICK"`
	Offset     int    `form:"offset" binding:"gte=0"`
	Limit      int    `form:"limit" binding:"gte=0"`
}

type CreateQuotaRequest struct {
	EmployeeID int64  `json:"employee_id" binding:"required,gt=0"`
	Year       int    `json:"year" binding:"required,gte=1900,lte=9998"`
	LeaveType  string `json:"leave_type" binding:"required"`
	// RemainingDays falls back to the policy default when omitted.
	RemainingDays *int `json:"remaining_days" binding:"omitempty,gte=0"`
}

type UpdateQuotaRequest struct {
	RemainingDays *int `json:"remaining_days" binding:"required,gte=0"`
}

type QuotaResponse struct {
	EmployeeID    int64  `json:"employee_id"`
	Year          int    `json:"year"`
	LeaveType     string `json:"leave_type"`
	RemainingDays int    `json:"remaining_days"`
	UpdatedAt     string `json:"updated_at"`
}
