package domain

import (
	"fmt"
	"strings"
	"time"
)

// LeaveType is the closed set of leave categories.
type LeaveType string

const (
	LeaveTypePaid   LeaveType = "PAID"
	LeaveTypeUnpaid LeaveType = "UNPAID"
	LeaveTypeSick   LeaveType = "SICK"
)

func ParseLeaveType(v string) (LeaveType, error) {
	switch t := LeaveType(strings.ToUpper(strings.TrimSpace(v))); t {
	case LeaveTypePaid, LeaveTypeUnpaid, LeaveTypeSick:
		return t, nil
	default:
		return "", fmt.Errorf("unknown leave type %q", v)
	}
}

func (t LeaveType) String() string { return string(t) }

type LeaveStatus string

const (
	LeaveStatusPending   LeaveStatus = "PENDING"
	LeaveStatusApproved  LeaveStatus = "APPROVED"
	LeaveStatusRejected  LeaveStatus = "REJECTED"
	LeaveStatusCancelled LeaveStatus = "CANCELLED"
)

func ParseLeaveStatus(v string) (LeaveStatus, error) {
	switch s := LeaveStatus(strings.ToUpper(strings.TrimSpace(v))); s {
	case LeaveStatusPending, LeaveStatusApproved, LeaveStatusRejected, LeaveStatusCancelled:
		return s, nil
	default:
		return "", fmt.Errorf("unknown leave status %q", v)
	}
}

// IsTerminal reports whether no further transition is possible.
func (s LeaveStatus) IsTerminal() bool {
	return s == LeaveStatusApproved || s == LeaveStatusRejected || s == LeaveStatusCancelled
}

func (s LeaveStatus) String() string { return string(s) }

const DateLayout = "2006-01-02"

// DaysInclusive counts calendar days from start to end, both included.
// Only the calendar date of each argument is used, so time zones and DST
// shifts never change the result. A negative span yields a value <= 0.
// Unix seconds are used because time.Duration saturates past ~292 years.
func DaysInclusive(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int((e.Unix()-s.Unix())/86400) + 1
}
