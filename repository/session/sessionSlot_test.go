// repository/session/session_slot_test.go
package sessionrepo

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/primeitclub/the-newbies/model"
)

func newTestSlot(t *testing.T) Repo {
	t.Helper()
	return NewSlot(filepath.Join(t.TempDir(), "demo-session.json"))
}

func slotRecord(sessionID string, ttl time.Duration) Record {
	now := time.Now().UTC()
	return Record{
		Session: model.Session{ID: sessionID, UserID: "demo-student-1", CreatedAt: now, ExpiresAt: now.Add(ttl)},
		User:    model.User{ID: "demo-student-1", Name: "Demo Tenant", UserType: model.UserStudent},
	}
}

func TestSlot_RoundTrip(t *testing.T) {
	ctx := context.Background()
	slot := newTestSlot(t)

	require.NoError(t, slot.Create(ctx, slotRecord("sess-1", 24*time.Hour)))

	rec, err := slot.Get(ctx, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.Equal(t, "demo-student-1", rec.User.ID)

	// unknown session ids resolve to nothing
	rec, err = slot.Get(ctx, "sess-2")
	require.NoError(t, err)
	require.Nil(t, rec)
}

func TestSlot_ExpiredSessionResolvesToNothing(t *testing.T) {
	ctx := context.Background()
	slot := newTestSlot(t)

	require.NoError(t, slot.Create(ctx, slotRecord("sess-1", -24*time.Hour)))

	rec, err := slot.Get(ctx, "sess-1")
	require.NoError(t, err)
	require.Nil(t, rec)

	// the expired file is cleared, not just ignored
	rec, err = slot.Get(ctx, "sess-1")
	require.NoError(t, err)
	require.Nil(t, rec)
}

func TestSlot_OverwriteEvictsPrevious(t *testing.T) {
	ctx := context.Background()
	slot := newTestSlot(t)

	require.NoError(t, slot.Create(ctx, slotRecord("sess-1", 24*time.Hour)))
	require.NoError(t, slot.Create(ctx, slotRecord("sess-2", 24*time.Hour)))

	rec, err := slot.Get(ctx, "sess-1")
	require.NoError(t, err)
	require.Nil(t, rec)

	rec, err = slot.Get(ctx, "sess-2")
	require.NoError(t, err)
	require.NotNil(t, rec)
}

func TestSlot_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	slot := newTestSlot(t)

	require.NoError(t, slot.Create(ctx, slotRecord("sess-1", 24*time.Hour)))
	require.NoError(t, slot.Delete(ctx, "sess-1"))
	require.NoError(t, slot.Delete(ctx, "sess-1"))

	rec, err := slot.Get(ctx, "sess-1")
	require.NoError(t, err)
	require.Nil(t, rec)
}
