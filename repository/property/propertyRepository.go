package propertyrepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/primeitclub/the-newbies/model"
)

type Repo interface {
	Create(ctx context.Context, p *model.Property) error
	List(ctx context.Context, f Filter) (*model.PropertyPage, error)
	Get(ctx context.Context, id string) (*model.Property, error)
	Update(ctx context.Context, id string, u model.PropertyUpdate) (*model.Property, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

const propertyCols = `
id, title, description, price, location, address, room_type,
amenities, images, landlord_id, available, coordinates, nearby_places,
rules, created_at, updated_at`

func (r *repo) Create(ctx context.Context, p *model.Property) error {
	p.ID = uuid.NewString()
	const q = `
INSERT INTO properties
  (id, title, description, price, location, address, room_type,
   amenities, images, landlord_id, available, coordinates, nearby_places, rules)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
RETURNING created_at, updated_at`
	return r.db.QueryRowContext(ctx, q,
		p.ID, p.Title, p.Description, p.Price, p.Location, p.Address, p.RoomType,
		jsonb(p.Amenities), jsonb(p.Images), p.LandlordID, p.Available,
		jsonbPtr(p.Coordinates), jsonb(p.Nearby), jsonb(p.Rules),
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *repo) List(ctx context.Context, f Filter) (*model.PropertyPage, error) {
	where, args := compileFilter(f)

	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM properties`+where, args...).Scan(&total); err != nil {
		return nil, err
	}

	q := `SELECT ` + propertyCols + ` FROM properties` + where + ` ORDER BY created_at DESC`
	page, limit := f.Page, f.Limit
	if page < 1 {
		page = 1
	}
	if limit > 0 {
		q += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, limit, (page-1)*limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := &model.PropertyPage{Total: total}
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		out.Documents = append(out.Documents, *p)
	}
	return out, rows.Err()
}

func (r *repo) Get(ctx context.Context, id string) (*model.Property, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+propertyCols+` FROM properties WHERE id=$1`, id)
	return scanProperty(row)
}

func (r *repo) Update(ctx context.Context, id string, u model.PropertyUpdate) (*model.Property, error) {
	set := "updated_at = now()"
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if u.Title != nil {
		set += ", title=" + arg(*u.Title)
	}
	if u.Description != nil {
		set += ", description=" + arg(*u.Description)
	}
	if u.Price != nil {
		set += ", price=" + arg(*u.Price)
	}
	if u.Location != nil {
		set += ", location=" + arg(*u.Location)
	}
	if u.Address != nil {
		set += ", address=" + arg(*u.Address)
	}
	if u.RoomType != nil {
		set += ", room_type=" + arg(string(*u.RoomType))
	}
	if u.Amenities != nil {
		set += ", amenities=" + arg(jsonb(*u.Amenities))
	}
	if u.Images != nil {
		set += ", images=" + arg(jsonb(*u.Images))
	}
	if u.Available != nil {
		set += ", available=" + arg(*u.Available)
	}
	if u.Rules != nil {
		set += ", rules=" + arg(jsonb(*u.Rules))
	}

	q := `UPDATE properties SET ` + set + ` WHERE id=` + arg(id) +
		` RETURNING ` + propertyCols
	return scanProperty(r.db.QueryRowContext(ctx, q, args...))
}

func compileFilter(f Filter) (string, []any) {
	where := " WHERE 1=1"
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if f.Location != "" {
		where += " AND location ILIKE " + arg("%"+f.Location+"%")
	}
	if f.RoomType != "" && f.RoomType != "all" {
		where += " AND room_type = " + arg(f.RoomType)
	}
	if f.MinPrice > 0 {
		where += " AND price >= " + arg(f.MinPrice)
	}
	if f.MaxPrice > 0 {
		where += " AND price <= " + arg(f.MaxPrice)
	}
	if f.Available != nil {
		where += " AND available = " + arg(*f.Available)
	}
	// per-tag EXISTS keeps the case rule identical to Filter.Matches
	for _, a := range f.Amenities {
		where += " AND EXISTS (SELECT 1 FROM jsonb_array_elements_text(amenities) tag" +
			" WHERE lower(tag) = lower(" + arg(a) + "))"
	}
	return where, args
}

type rowScanner interface{ Scan(dest ...any) error }

func scanProperty(row rowScanner) (*model.Property, error) {
	var (
		p                               model.Property
		amenities, images, nearby, rules []byte
		coords                          []byte
	)
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Price, &p.Location, &p.Address, &p.RoomType,
		&amenities, &images, &p.LandlordID, &p.Available, &coords, &nearby,
		&rules, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := unjsonb(amenities, &p.Amenities); err != nil {
		return nil, err
	}
	if err := unjsonb(images, &p.Images); err != nil {
		return nil, err
	}
	if err := unjsonb(nearby, &p.Nearby); err != nil {
		return nil, err
	}
	if err := unjsonb(rules, &p.Rules); err != nil {
		return nil, err
	}
	if len(coords) > 0 {
		if err := json.Unmarshal(coords, &p.Coordinates); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

// jsonb marshals list columns; nil slices become empty arrays so reads
// never see SQL NULL.
func jsonb(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil || string(b) == "null" {
		return []byte("[]")
	}
	return b
}

func jsonbPtr(v *model.Coordinates) any {
	if v == nil {
		return nil
	}
	b, _ := json.Marshal(v)
	return b
}

func unjsonb[T any](b []byte, dst *T) error {
	if len(b) == 0 {
		return nil
	}
	return json.Unmarshal(b, dst)
}
