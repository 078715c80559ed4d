package propertyrepo

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/primeitclub/the-newbies/model"
)

// memory is the demo-mode catalog. It owns its records instead of living
// as module-level mutable state; callers get it injected like any Repo.
type memory struct {
	mu     sync.Mutex
	items  []model.Property // head = newest
	lastID int64
}

func NewMemory(seed []model.Property) Repo {
	m := &memory{items: make([]model.Property, len(seed))}
	copy(m.items, seed)
	return m
}

func (m *memory) Create(ctx context.Context, p *model.Property) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	// millisecond ids, bumped on collision so rapid calls stay unique
	ms := now.UnixMilli()
	if ms <= m.lastID {
		ms = m.lastID + 1
	}
	m.lastID = ms

	p.ID = fmt.Sprintf("demo-property-%d", ms)
	p.CreatedAt = now
	p.UpdatedAt = now
	m.items = append([]model.Property{*p}, m.items...)
	return nil
}

func (m *memory) List(ctx context.Context, f Filter) (*model.PropertyPage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return f.Apply(m.items), nil
}

func (m *memory) Get(ctx context.Context, id string) (*model.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == id {
			p := m.items[i]
			return &p, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *memory) Update(ctx context.Context, id string, u model.PropertyUpdate) (*model.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID != id {
			continue
		}
		p := &m.items[i]
		if u.Title != nil {
			p.Title = *u.Title
		}
		if u.Description != nil {
			p.Description = *u.Description
		}
		if u.Price != nil {
			p.Price = *u.Price
		}
		if u.Location != nil {
			p.Location = *u.Location
		}
		if u.Address != nil {
			p.Address = *u.Address
		}
		if u.RoomType != nil {
			p.RoomType = *u.RoomType
		}
		if u.Amenities != nil {
			p.Amenities = *u.Amenities
		}
		if u.Images != nil {
			p.Images = *u.Images
		}
		if u.Available != nil {
			p.Available = *u.Available
		}
		if u.Rules != nil {
			p.Rules = *u.Rules
		}
		p.UpdatedAt = time.Now().UTC()
		out := *p
		return &out, nil
	}
	return nil, sql.ErrNoRows
}
