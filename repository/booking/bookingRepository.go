package bookingrepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/primeitclub/the-newbies/model"
)

// Role picks which reference column a listing query matches on.
type Role string

const (
	RoleStudent  Role = "student"
	RoleLandlord Role = "landlord"
)

type Repo interface {
	Create(ctx context.Context, b *model.Booking) error
	Get(ctx context.Context, id string) (*model.Booking, error)
	ListByUser(ctx context.Context, userID string, role Role) (*model.BookingPage, error)
	SetStatus(ctx context.Context, id string, status model.BookingStatus) error
	SetPaymentStatus(ctx context.Context, id string, status model.PaymentStatus) error
	RejectStalePending(ctx context.Context, before time.Time) (int64, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

const bookingCols = `
id, property_id, student_id, landlord_id, start_date, end_date,
status, total_amount, payment_status, created_at`

func (r *repo) Create(ctx context.Context, b *model.Booking) error {
	b.ID = uuid.NewString()
	const q = `
INSERT INTO bookings
  (id, property_id, student_id, landlord_id, start_date, end_date,
   status, total_amount, payment_status)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
RETURNING created_at`
	return r.db.QueryRowContext(ctx, q,
		b.ID, b.PropertyID, b.StudentID, b.LandlordID, b.StartDate, b.EndDate,
		b.Status, b.TotalAmount, b.PaymentStatus,
	).Scan(&b.CreatedAt)
}

func (r *repo) Get(ctx context.Context, id string) (*model.Booking, error) {
	var b model.Booking
	err := r.db.QueryRowContext(ctx,
		`SELECT `+bookingCols+` FROM bookings WHERE id=$1`, id).Scan(
		&b.ID, &b.PropertyID, &b.StudentID, &b.LandlordID, &b.StartDate, &b.EndDate,
		&b.Status, &b.TotalAmount, &b.PaymentStatus, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repo) ListByUser(ctx context.Context, userID string, role Role) (*model.BookingPage, error) {
	col := "student_id"
	if role == RoleLandlord {
		col = "landlord_id"
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+bookingCols+` FROM bookings WHERE `+col+`=$1 ORDER BY created_at DESC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := &model.BookingPage{}
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(
			&b.ID, &b.PropertyID, &b.StudentID, &b.LandlordID, &b.StartDate, &b.EndDate,
			&b.Status, &b.TotalAmount, &b.PaymentStatus, &b.CreatedAt,
		); err != nil {
			return nil, err
		}
		out.Documents = append(out.Documents, b)
	}
	out.Total = len(out.Documents)
	return out, rows.Err()
}

func (r *repo) SetStatus(ctx context.Context, id string, status model.BookingStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE bookings SET status=$1 WHERE id=$2`, status, id)
	if err != nil {
		return err
	}
	return noRowsAsErr(res)
}

func (r *repo) SetPaymentStatus(ctx context.Context, id string, status model.PaymentStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE bookings SET payment_status=$1 WHERE id=$2`, status, id)
	if err != nil {
		return err
	}
	return noRowsAsErr(res)
}

func (r *repo) RejectStalePending(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE bookings SET status=$1 WHERE status=$2 AND created_at < $3`,
		model.BookingRejected, model.BookingPending, before)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func noRowsAsErr(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
