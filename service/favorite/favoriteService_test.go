// service/favorite/favorite_service_test.go
package favoritesvc

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/primeitclub/the-newbies/model"
	favoriterepo "github.com/primeitclub/the-newbies/repository/favorite"
)

func TestAddAndList(t *testing.T) {
	ctx := context.Background()
	svc := New(favoriterepo.NewMemory())

	f, err := svc.Add(ctx, "user-1", "property-1")
	require.NoError(t, err)
	require.NotEmpty(t, f.ID)
	require.False(t, f.CreatedAt.IsZero())

	page, err := svc.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, 1, page.Total)
	require.Equal(t, "property-1", page.Documents[0].PropertyID)

	// other users see nothing
	page, err = svc.ListByUser(ctx, "user-2")
	require.NoError(t, err)
	require.Equal(t, 0, page.Total)
}

func TestAdd_DuplicatePairRejected(t *testing.T) {
	ctx := context.Background()
	svc := New(favoriterepo.NewMemory())

	_, err := svc.Add(ctx, "user-1", "property-1")
	require.NoError(t, err)

	_, err = svc.Add(ctx, "user-1", "property-1")
	require.Error(t, err)
	require.Equal(t, ErrAlreadyFavorite, Code(err))

	// same property for another user is fine
	_, err = svc.Add(ctx, "user-2", "property-1")
	require.NoError(t, err)
}

// Historical duplicates (from before uniqueness was enforced) are removed
// one row per call.
func TestRemove_DuplicateRowsRemovesExactlyOne(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	svc := New(favoriterepo.NewMemorySeeded([]model.Favorite{
		{ID: "f1", UserID: "user-1", PropertyID: "property-1", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "f2", UserID: "user-1", PropertyID: "property-1", CreatedAt: now.Add(-time.Hour)},
	}))

	require.NoError(t, svc.Remove(ctx, "user-1", "property-1"))

	page, err := svc.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, 1, page.Total)

	require.NoError(t, svc.Remove(ctx, "user-1", "property-1"))

	err = svc.Remove(ctx, "user-1", "property-1")
	require.Error(t, err)
	require.Equal(t, ErrNotFound, Code(err))
}

func TestAdd_BadInput(t *testing.T) {
	ctx := context.Background()
	svc := New(favoriterepo.NewMemory())

	_, err := svc.Add(ctx, "", "property-1")
	require.Equal(t, ErrBadInput, Code(err))
	_, err = svc.Add(ctx, "user-1", "")
	require.Equal(t, ErrBadInput, Code(err))
}
