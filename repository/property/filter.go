package propertyrepo

import (
	"sort"
	"strings"

	"github.com/primeitclub/the-newbies/model"
)

// Filter is the listing query. Both implementations must answer it
// identically: the memory source evaluates Matches, the postgres source
// compiles the same predicates into WHERE clauses.
type Filter struct {
	Location  string
	RoomType  string // "" or "all" matches everything
	MinPrice  float64
	MaxPrice  float64
	Amenities []string // property must carry every requested tag
	Available *bool
	Page      int // 1-based
	Limit     int
}

func (f Filter) Matches(p model.Property) bool {
	if f.Location != "" &&
		!strings.Contains(strings.ToLower(p.Location), strings.ToLower(f.Location)) {
		return false
	}
	if f.RoomType != "" && f.RoomType != "all" && string(p.RoomType) != f.RoomType {
		return false
	}
	if f.MinPrice > 0 && p.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && p.Price > f.MaxPrice {
		return false
	}
	if f.Available != nil && p.Available != *f.Available {
		return false
	}
	for _, want := range f.Amenities {
		if !hasAmenity(p.Amenities, want) {
			return false
		}
	}
	return true
}

func hasAmenity(have []string, want string) bool {
	for _, a := range have {
		if strings.EqualFold(a, want) {
			return true
		}
	}
	return false
}

// Apply filters, orders newest first and paginates. Total counts the
// filtered set before pagination.
func (f Filter) Apply(in []model.Property) *model.PropertyPage {
	var matched []model.Property
	for _, p := range in {
		if f.Matches(p) {
			matched = append(matched, p)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)
	page, limit := f.Page, f.Limit
	if page < 1 {
		page = 1
	}
	if limit > 0 {
		lo := (page - 1) * limit
		if lo > total {
			lo = total
		}
		hi := lo + limit
		if hi > total {
			hi = total
		}
		matched = matched[lo:hi]
	}
	return &model.PropertyPage{Documents: matched, Total: total}
}
