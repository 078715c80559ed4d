package favoriterepo

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
	items  []model.Favorite
	lastID int64
}

func NewMemory() Repo { return &memory{} }

// NewMemorySeeded exists for tests that need pre-existing rows, including
// duplicate pairs the uniqueness check would normally reject.
func NewMemorySeeded(seed []model.Favorite) Repo {
	m := &memory{items: make([]model.Favorite, len(seed))}
	copy(m.items, seed)
	return m
}

func (m *memory) Add(ctx context.Context, f *model.Favorite) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, x := range m.items {
		if x.UserID == f.UserID && x.PropertyID == f.PropertyID {
			return ErrDuplicate
		}
	}

	now := time.Now().UTC()
	ms := now.UnixMilli()
	if ms <= m.lastID {
		ms = m.lastID + 1
	}
	m.lastID = ms

	f.ID = fmt.Sprintf("demo-favorite-%d", ms)
	f.CreatedAt = now
	m.items = append(m.items, *f)
	return nil
}

func (m *memory) Remove(ctx context.Context, userID, propertyID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, x := range m.items {
		if x.UserID == userID && x.PropertyID == propertyID {
			// first match only, mirrors the keyed single-row delete
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

func (m *memory) ListByUser(ctx context.Context, userID string) (*model.FavoritePage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := &model.FavoritePage{}
	for _, f := range m.items {
		if f.UserID == userID {
			out.Documents = append(out.Documents, f)
		}
	}
	sort.SliceStable(out.Documents, func(i, j int) bool {
		return out.Documents[i].CreatedAt.After(out.Documents[j].CreatedAt)
	})
	out.Total = len(out.Documents)
	return out, nil
}
