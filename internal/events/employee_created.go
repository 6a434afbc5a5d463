package events

import "time"

// EmployeeLifecycleTopic carries events published by the employee
// administration service.
const EmployeeLifecycleTopic = "hr.employee.lifecycle.v1"

const EventEmployeeCreated = "employee_created"

type EmployeeCreatedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID int64     `json:"employee_id"`
	HireDate   string    `json:"hire_date,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ProvisionYear is the calendar year whose quota a new hire starts with.
func (e EmployeeCreatedEvent) ProvisionYear() int {
	if hire, err := time.Parse("2006-01-02", e.HireDate); err == nil {
		return hire.Year()
	}
	if !e.OccurredAt.IsZero() {
		return e.OccurredAt.Year()
	}
	return time.Now().UTC().Year()
}
