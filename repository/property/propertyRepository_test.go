// repository/property/property_repository_test.go
package propertyrepo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompileFilter_AmenitiesCaseInsensitive(t *testing.T) {
	where, args := compileFilter(Filter{Amenities: []string{"WiFi", "Parking"}})

	// one EXISTS clause per tag, each comparing with lower() on both sides,
	// so the SQL answers the same way Filter.Matches does for mixed case.
	require.Equal(t, 2, strings.Count(where, "jsonb_array_elements_text(amenities)"))
	require.Contains(t, where, "lower(tag) = lower($1)")
	require.Contains(t, where, "lower(tag) = lower($2)")
	require.Equal(t, []any{"WiFi", "Parking"}, args)
}

func TestCompileFilter_Predicates(t *testing.T) {
	avail := true
	where, args := compileFilter(Filter{
		Location:  "kirtipur",
		RoomType:  "single",
		MinPrice:  3000,
		MaxPrice:  25000,
		Available: &avail,
	})

	require.Contains(t, where, "location ILIKE $1")
	require.Contains(t, where, "room_type = $2")
	require.Contains(t, where, "price >= $3")
	require.Contains(t, where, "price <= $4")
	require.Contains(t, where, "available = $5")
	require.Equal(t, []any{"%kirtipur%", "single", 3000.0, 25000.0, true}, args)
}

func TestCompileFilter_WildcardRoomType(t *testing.T) {
	for _, rt := range []string{"", "all"} {
		where, args := compileFilter(Filter{RoomType: rt})
		require.NotContains(t, where, "room_type")
		require.Empty(t, args)
	}
}
