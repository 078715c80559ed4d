package reviewrepo

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/primeitclub/the-newbies/model"
)

// memory seeds each property with canned reviews on first read, the way
// the demo catalog ships with review content out of the box.
type memory struct {
	mu     sync.Mutex
	items  map[string][]model.Review // keyed by property id
	seed   func(propertyID string) []model.Review
	lastID int64
}

func NewMemory(seed func(propertyID string) []model.Review) Repo {
	return &memory{items: map[string][]model.Review{}, seed: seed}
}

func (m *memory) Create(ctx context.Context, rv *model.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	ms := now.UnixMilli()
	if ms <= m.lastID {
		ms = m.lastID + 1
	}
	m.lastID = ms

	rv.ID = fmt.Sprintf("demo-review-%d", ms)
	rv.CreatedAt = now
	m.ensure(rv.PropertyID)
	m.items[rv.PropertyID] = append(m.items[rv.PropertyID], *rv)
	return nil
}

func (m *memory) ListByProperty(ctx context.Context, propertyID string) (*model.ReviewPage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ensure(propertyID)
	docs := make([]model.Review, len(m.items[propertyID]))
	copy(docs, m.items[propertyID])
	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].CreatedAt.After(docs[j].CreatedAt)
	})
	return &model.ReviewPage{Documents: docs, Total: len(docs)}, nil
}

func (m *memory) ensure(propertyID string) {
	if _, ok := m.items[propertyID]; !ok && m.seed != nil {
		m.items[propertyID] = m.seed(propertyID)
	}
}
