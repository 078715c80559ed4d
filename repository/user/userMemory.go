package userrepo

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/primeitclub/the-newbies/model"
)

type memory struct {
	mu     sync.Mutex
	items  []model.User
	lastID int64
}

func NewMemory(seed []model.User) Repo {
	m := &memory{items: make([]model.User, len(seed))}
	copy(m.items, seed)
	return m
}

func (m *memory) Create(ctx context.Context, u *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	ms := now.UnixMilli()
	if ms <= m.lastID {
		ms = m.lastID + 1
	}
	m.lastID = ms

	u.ID = fmt.Sprintf("demo-%s-%d", u.UserType, ms)
	u.CreatedAt = now
	m.items = append(m.items, *u)
	return nil
}

func (m *memory) ByEmail(ctx context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if strings.EqualFold(m.items[i].Email, email) {
			u := m.items[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (m *memory) ByID(ctx context.Context, id string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == id {
			u := m.items[i]
			return &u, nil
		}
	}
	return nil, nil
}
