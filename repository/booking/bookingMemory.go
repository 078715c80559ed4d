package bookingrepo

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/primeitclub/the-newbies/model"
)

type memory struct {
	mu     sync.Mutex
	items  []model.Booking
	lastID int64
}

func NewMemory() Repo { return &memory{} }

func (m *memory) Create(ctx context.Context, b *model.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	ms := now.UnixMilli()
	if ms <= m.lastID {
		ms = m.lastID + 1
	}
	m.lastID = ms

	b.ID = fmt.Sprintf("demo-booking-%d", ms)
	b.CreatedAt = now
	m.items = append(m.items, *b)
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*model.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == id {
			b := m.items[i]
			return &b, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *memory) ListByUser(ctx context.Context, userID string, role Role) (*model.BookingPage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := &model.BookingPage{}
	for _, b := range m.items {
		if (role == RoleLandlord && b.LandlordID == userID) ||
			(role == RoleStudent && b.StudentID == userID) {
			out.Documents = append(out.Documents, b)
		}
	}
	sort.SliceStable(out.Documents, func(i, j int) bool {
		return out.Documents[i].CreatedAt.After(out.Documents[j].CreatedAt)
	})
	out.Total = len(out.Documents)
	return out, nil
}

func (m *memory) SetStatus(ctx context.Context, id string, status model.BookingStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].Status = status
			return nil
		}
	}
	return sql.ErrNoRows
}

func (m *memory) SetPaymentStatus(ctx context.Context, id string, status model.PaymentStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].PaymentStatus = status
			return nil
		}
	}
	return sql.ErrNoRows
}

func (m *memory) RejectStalePending(ctx context.Context, before time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for i := range m.items {
		if m.items[i].Status == model.BookingPending && m.items[i].CreatedAt.Before(before) {
			m.items[i].Status = model.BookingRejected
			n++
		}
	}
	return n, nil
}
