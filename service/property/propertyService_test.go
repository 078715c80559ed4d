// service/property/property_service_test.go
package propertysvc

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/primeitclub/the-newbies/model"
)

type mockRepo struct {
	createFn func(ctx context.Context, p *model.Property) error
	listFn   func(ctx context.Context, f Filter) (*model.PropertyPage, error)
	getFn    func(ctx context.Context, id string) (*model.Property, error)
	updateFn func(ctx context.Context, id string, u model.PropertyUpdate) (*model.Property, error)
}

func (m *mockRepo) Create(ctx context.Context, p *model.Property) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, p)
}
func (m *mockRepo) List(ctx context.Context, f Filter) (*model.PropertyPage, error) {
	if m.listFn == nil {
		return &model.PropertyPage{}, nil
	}
	return m.listFn(ctx, f)
}
func (m *mockRepo) Get(ctx context.Context, id string) (*model.Property, error) {
	if m.getFn == nil {
		return nil, sql.ErrNoRows
	}
	return m.getFn(ctx, id)
}
func (m *mockRepo) Update(ctx context.Context, id string, u model.PropertyUpdate) (*model.Property, error) {
	if m.updateFn == nil {
		return nil, sql.ErrNoRows
	}
	return m.updateFn(ctx, id, u)
}

// --- tests ---

func TestGet_InvalidIDLiteralsNeverHitTheStore(t *testing.T) {
	ctx := context.Background()
	looked := false
	svc := New(&mockRepo{
		getFn: func(ctx context.Context, id string) (*model.Property, error) {
			looked = true
			return nil, sql.ErrNoRows
		},
	})

	for _, id := range []string{"", "undefined", "null"} {
		_, err := svc.Get(ctx, id)
		require.Error(t, err, "id=%q", id)
		require.Equal(t, ErrInvalidID, Code(err))
	}
	require.False(t, looked, "invalid ids must fail before any lookup")
}

func TestGet_NotFoundCarriesID(t *testing.T) {
	ctx := context.Background()
	svc := New(&mockRepo{})

	_, err := svc.Get(ctx, "mystery-id")
	require.Error(t, err)
	require.Equal(t, ErrNotFound, Code(err))
	require.Contains(t, err.Error(), "mystery-id")
}

func TestGet_Success(t *testing.T) {
	ctx := context.Background()
	svc := New(&mockRepo{
		getFn: func(ctx context.Context, id string) (*model.Property, error) {
			return &model.Property{ID: id, Title: "room"}, nil
		},
	})

	p, err := svc.Get(ctx, "demo-property-1")
	require.NoError(t, err)
	require.Equal(t, "demo-property-1", p.ID)
}

func TestCreate_Validation(t *testing.T) {
	ctx := context.Background()
	svc := New(&mockRepo{})

	cases := []model.Property{
		{Location: "l", LandlordID: "ll", RoomType: model.RoomSingle},              // no title
		{Title: "t", LandlordID: "ll", RoomType: model.RoomSingle},                 // no location
		{Title: "t", Location: "l", RoomType: model.RoomSingle},                    // no landlord
		{Title: "t", Location: "l", LandlordID: "ll", RoomType: model.RoomSingle, Price: -1},
		{Title: "t", Location: "l", LandlordID: "ll", RoomType: "villa"},           // bad room type
	}
	for i, p := range cases {
		pc := p
		err := svc.Create(ctx, &pc)
		require.Error(t, err, "case %d", i)
		require.Equal(t, ErrBadInput, Code(err))
	}
}

func TestUpdate_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := New(&mockRepo{})

	title := "x"
	_, err := svc.Update(ctx, "gone", model.PropertyUpdate{Title: &title})
	require.Error(t, err)
	require.Equal(t, ErrNotFound, Code(err))
	require.Contains(t, err.Error(), "gone")
}

func TestCodeExtractor(t *testing.T) {
	require.Equal(t, ErrNotFound, Code(makeErr(ErrNotFound, "x")))
	require.Equal(t, ErrCode(""), Code(sql.ErrNoRows))
}
