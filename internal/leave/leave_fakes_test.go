package leave_test

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"go-hrms/internal/domain"
	"go-hrms/internal/leave"
	"go-hrms/internal/leavequota"
	"go-hrms/internal/messaging/kafka"

	"gorm.io/gorm"
)

// memLeaveRepo keeps leave requests in a map and honours the conditional
// write contract of UpdateIfStatus.
type memLeaveRepo struct {
	mu     sync.Mutex
	rows   map[int64]leave.LeaveRequest
	nextID int64
	// stale makes FindByIDForUpdate return this snapshot instead of the
	// stored row, simulating a reader that lost a race.
	stale *leave.LeaveRequest
}

func newMemLeaveRepo() *memLeaveRepo {
	return &memLeaveRepo{rows: map[int64]leave.LeaveRequest{}, nextID: 1}
}

func (m *memLeaveRepo) WithTx(*sql.Tx) leave.Repository { return m }

func (m *memLeaveRepo) Create(_ context.Context, l *leave.LeaveRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	l.ID = m.nextID
	m.nextID++
	m.rows[l.ID] = *l
	return nil
}

func (m *memLeaveRepo) FindByID(_ context.Context, id int64) (*leave.LeaveRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &l, nil
}

func (m *memLeaveRepo) FindByIDForUpdate(ctx context.Context, id int64) (*leave.LeaveRequest, error) {
	if m.stale != nil {
		l := *m.stale
		return &l, nil
	}
	return m.FindByID(ctx, id)
}

func (m *memLeaveRepo) List(_ context.Context, f leave.ListFilter) ([]leave.LeaveRequest, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []leave.LeaveRequest
	for _, l := range m.rows {
		if f.EmpNo != nil && l.EmpNo != *f.EmpNo {
			continue
		}
		if f.Status != nil && l.Status != *f.Status {
			continue
		}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].RequestedAt.Equal(out[j].RequestedAt) {
			return out[i].RequestedAt.After(out[j].RequestedAt)
		}
		return out[i].ID > out[j].ID
	})

	total := int64(len(out))
	if f.Offset >= len(out) {
		return nil, total, nil
	}
	out = out[f.Offset:]
	if f.Limit > 0 && f.Limit < len(out) {
		out = out[:f.Limit]
	}
	return out, total, nil
}

func (m *memLeaveRepo) UpdateIfStatus(_ context.Context, l *leave.LeaveRequest, expected domain.LeaveStatus) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.rows[l.ID]
	if !ok || stored.Status != expected {
		return false, nil
	}
	m.rows[l.ID] = *l
	return true, nil
}

func (m *memLeaveRepo) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.rows, id)
	return nil
}

// memQuotaRepo backs a real ledger so balance arithmetic is exercised.
type memQuotaRepo struct {
	mu   sync.Mutex
	rows map[leavequota.Key]leavequota.Quota
}

func newMemQuotaRepo() *memQuotaRepo {
	return &memQuotaRepo{rows: map[leavequota.Key]leavequota.Quota{}}
}

func (m *memQuotaRepo) WithTx(*sql.Tx) leavequota.Repository { return m }

func (m *memQuotaRepo) InsertIfAbsent(_ context.Context, q *leavequota.Quota) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[q.Key()]; ok {
		return false, nil
	}
	m.rows[q.Key()] = *q
	return true, nil
}

func (m *memQuotaRepo) Create(ctx context.Context, q *leavequota.Quota) error {
	_, err := m.InsertIfAbsent(ctx, q)
	return err
}

func (m *memQuotaRepo) Find(_ context.Context, key leavequota.Key) (*leavequota.Quota, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q, ok := m.rows[key]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &q, nil
}

func (m *memQuotaRepo) List(context.Context, leavequota.ListFilter) ([]leavequota.Quota, int64, error) {
	return nil, 0, nil
}

func (m *memQuotaRepo) Debit(_ context.Context, key leavequota.Key, days int) (*leavequota.Quota, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q, ok := m.rows[key]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	q.RemainingDays = max(q.RemainingDays-days, 0)
	m.rows[key] = q
	return &q, nil
}

func (m *memQuotaRepo) SetRemaining(_ context.Context, key leavequota.Key, days int) (*leavequota.Quota, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q, ok := m.rows[key]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	q.RemainingDays = days
	m.rows[key] = q
	return &q, nil
}

func (m *memQuotaRepo) Delete(_ context.Context, key leavequota.Key) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, key)
	return nil
}

func (m *memQuotaRepo) remaining(empNo int64, year int, t domain.LeaveType) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q, ok := m.rows[leavequota.Key{EmpNo: empNo, Year: year, LeaveType: t}]
	return q.RemainingDays, ok
}

type memOutbox struct {
	mu     sync.Mutex
	events []kafka.OutboxEvent
}

func (o *memOutbox) WithTx(*sql.Tx) kafka.OutboxRepository { return o }

func (o *memOutbox) Create(_ context.Context, event kafka.OutboxEvent) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
	return nil
}

func (o *memOutbox) ListPending(context.Context, int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (o *memOutbox) MarkSent(context.Context, string) error { return nil }

func (o *memOutbox) MarkFailed(context.Context, string, string) error { return nil }

func (o *memOutbox) types() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]string, 0, len(o.events))
	for _, e := range o.events {
		out = append(out, e.EventType)
	}
	return out
}
