// repository/property/filter_test.go
package propertyrepo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/primeitclub/the-newbies/demo"
	"github.com/primeitclub/the-newbies/model"
)

func ids(page *model.PropertyPage) []string {
	out := make([]string, 0, len(page.Documents))
	for _, p := range page.Documents {
		out = append(out, p.ID)
	}
	return out
}

func TestFilter_Location_CaseInsensitiveSubstring(t *testing.T) {
	page := Filter{Location: "kirti"}.Apply(demo.Properties())
	require.Equal(t, []string{"demo-property-1"}, ids(page))

	page = Filter{Location: "KIRTIPUR"}.Apply(demo.Properties())
	require.Equal(t, []string{"demo-property-1"}, ids(page))
}

func TestFilter_RoomType(t *testing.T) {
	page := Filter{RoomType: "shared"}.Apply(demo.Properties())
	require.Equal(t, []string{"demo-property-2", "demo-property-6"}, ids(page))

	// "all" and empty are wildcards
	for _, rt := range []string{"", "all"} {
		page := Filter{RoomType: rt}.Apply(demo.Properties())
		require.Equal(t, len(demo.Properties()), page.Total, "roomType=%q", rt)
	}
}

func TestFilter_PriceBounds_Inclusive(t *testing.T) {
	page := Filter{MinPrice: 8500, MaxPrice: 12000}.Apply(demo.Properties())
	require.Equal(t, []string{"demo-property-1", "demo-property-4"}, ids(page))
}

func TestFilter_Available(t *testing.T) {
	avail := false
	page := Filter{Available: &avail}.Apply(demo.Properties())
	require.Equal(t, []string{"demo-property-5"}, ids(page))
}

func TestFilter_Amenities_ContainsAll(t *testing.T) {
	page := Filter{Amenities: []string{"wifi", "parking"}}.Apply(demo.Properties())
	require.Equal(t, []string{"demo-property-3", "demo-property-6"}, ids(page))

	// tag matching ignores case
	page = Filter{Amenities: []string{"WiFi"}}.Apply(demo.Properties())
	require.Equal(t, 5, page.Total)
}

func TestFilter_Combined(t *testing.T) {
	avail := true
	page := Filter{RoomType: "shared", MaxPrice: 6000, Available: &avail}.Apply(demo.Properties())
	require.Equal(t, []string{"demo-property-2"}, ids(page))
}

func TestFilter_OrderedNewestFirst(t *testing.T) {
	page := Filter{}.Apply(demo.Properties())
	prev := time.Now().Add(24 * time.Hour)
	for _, p := range page.Documents {
		require.False(t, p.CreatedAt.After(prev), "listing not ordered by created_at desc")
		prev = p.CreatedAt
	}
}

func TestFilter_Pagination(t *testing.T) {
	page := Filter{Page: 2, Limit: 2}.Apply(demo.Properties())
	require.Equal(t, 6, page.Total, "total counts the filtered set before pagination")
	require.Equal(t, []string{"demo-property-3", "demo-property-4"}, ids(page))

	// past the end is empty, total unchanged
	page = Filter{Page: 9, Limit: 2}.Apply(demo.Properties())
	require.Empty(t, page.Documents)
	require.Equal(t, 6, page.Total)
}

// The memory source must answer exactly what the evaluator says: listing
// through the repo equals applying the filter to the catalog directly.
func TestMemoryList_MatchesEvaluator(t *testing.T) {
	repo := NewMemory(demo.Properties())

	avail := true
	filters := []Filter{
		{},
		{Location: "kathmandu"},
		{RoomType: "single"},
		{MinPrice: 5000, MaxPrice: 10000},
		{Available: &avail, Amenities: []string{"wifi"}},
		{Page: 1, Limit: 3},
		{Page: 2, Limit: 3},
	}
	for _, f := range filters {
		got, err := repo.List(context.Background(), f)
		require.NoError(t, err)

		want := f.Apply(demo.Properties())
		require.Equal(t, ids(want), ids(got))
		require.Equal(t, want.Total, got.Total)
	}
}
