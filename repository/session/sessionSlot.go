package sessionrepo

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// slot is the demo-mode store: one JSON file, overwritten on every login,
// so only a single demo identity is active at a time.
type slot struct {
	mu   sync.Mutex
	path string
}

func NewSlot(path string) Repo { return &slot{path: path} }

func (s *slot) Create(ctx context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0o644)
}

func (s *slot) Get(ctx context.Context, sessionID string) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var rec Record
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, err
	}
	// a later login overwrote the slot; older sessions are gone
	if rec.Session.ID != sessionID {
		return nil, nil
	}
	// the redis store expires via TTL; the slot checks on read
	if time.Now().After(rec.Session.ExpiresAt) {
		_ = os.Remove(s.path)
		return nil, nil
	}
	return &rec, nil
}

func (s *slot) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// cleared regardless of which session asks
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
