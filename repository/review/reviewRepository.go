package reviewrepo

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/primeitclub/the-newbies/model"
)

type Repo interface {
	Create(ctx context.Context, rv *model.Review) error
	ListByProperty(ctx context.Context, propertyID string) (*model.ReviewPage, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) Create(ctx context.Context, rv *model.Review) error {
	rv.ID = uuid.NewString()
	return r.db.QueryRowContext(ctx, `
		INSERT INTO reviews (id, property_id, student_id, rating, comment)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING created_at`,
		rv.ID, rv.PropertyID, rv.StudentID, rv.Rating, rv.Comment,
	).Scan(&rv.CreatedAt)
}

func (r *repo) ListByProperty(ctx context.Context, propertyID string) (*model.ReviewPage, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, property_id, student_id, rating, comment, created_at
		FROM reviews
		WHERE property_id=$1
		ORDER BY created_at DESC`, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := &model.ReviewPage{}
	for rows.Next() {
		var rv model.Review
		if err := rows.Scan(&rv.ID, &rv.PropertyID, &rv.StudentID, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, err
		}
		out.Documents = append(out.Documents, rv)
	}
	out.Total = len(out.Documents)
	return out, rows.Err()
}
