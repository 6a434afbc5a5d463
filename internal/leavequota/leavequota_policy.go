package leavequota

import (
	"sort"

	"go-hrms/internal/config"
	"go-hrms/internal/domain"
)

// Policy maps each quota-bearing leave category to the number of days an
// employee is granted when a balance is first provisioned. Categories that
// are absent are not quota-bearing.
type Policy map[domain.LeaveType]int

func DefaultPolicy() Policy {
	return Policy{
		domain.LeaveTypePaid: 10,
		domain.LeaveTypeSick: 5,
	}
}

func PolicyFromConfig(cfg config.LeaveConfig) Policy {
	return Policy{
		domain.LeaveTypePaid: cfg.DefaultPaidDays,
		domain.LeaveTypeSick: cfg.DefaultSickDays,
	}
}

func (p Policy) IsQuotaBearing(t domain.LeaveType) bool {
	_, ok := p[t]
	return ok
}

func (p Policy) Default(t domain.LeaveType) (int, bool) {
	days, ok := p[t]
	return days, ok
}

// Types returns the quota-bearing categories in a stable order.
func (p Policy) Types() []domain.LeaveType {
	types := make([]domain.LeaveType, 0, len(p))
	for t := range p {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
