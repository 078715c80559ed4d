package favoriterepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/primeitclub/the-newbies/model"
)

// ErrDuplicate reports an existing (user, property) pair. Both
// implementations return it so callers never see driver errors.
var ErrDuplicate = errors.New("favorite already exists")

type Repo interface {
	Add(ctx context.Context, f *model.Favorite) error
	// Remove deletes exactly one row for the pair, even if historical
	// duplicates exist. sql.ErrNoRows when the pair is absent.
	Remove(ctx context.Context, userID, propertyID string) error
	ListByUser(ctx context.Context, userID string) (*model.FavoritePage, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) Add(ctx context.Context, f *model.Favorite) error {
	f.ID = uuid.NewString()
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO favorites (id, user_id, property_id)
		VALUES ($1,$2,$3)
		RETURNING created_at`,
		f.ID, f.UserID, f.PropertyID,
	).Scan(&f.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *repo) Remove(ctx context.Context, userID, propertyID string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM favorites
		WHERE id = (
			SELECT id FROM favorites
			WHERE user_id=$1 AND property_id=$2
			ORDER BY created_at
			LIMIT 1
		)`, userID, propertyID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *repo) ListByUser(ctx context.Context, userID string) (*model.FavoritePage, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, property_id, created_at
		FROM favorites
		WHERE user_id=$1
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := &model.FavoritePage{}
	for rows.Next() {
		var f model.Favorite
		if err := rows.Scan(&f.ID, &f.UserID, &f.PropertyID, &f.CreatedAt); err != nil {
			return nil, err
		}
		out.Documents = append(out.Documents, f)
	}
	out.Total = len(out.Documents)
	return out, rows.Err()
}
