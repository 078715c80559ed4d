package bookingsvc

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/primeitclub/the-newbies/model"
	bookingrepo "github.com/primeitclub/the-newbies/repository/booking"
	propertyrepo "github.com/primeitclub/the-newbies/repository/property"
)

// errors used by controllers

type ErrCode string

const (
	ErrPropertyNotFound  ErrCode = "PROPERTY_NOT_FOUND"
	ErrNotFound          ErrCode = "NOT_FOUND"
	ErrNotAvailable      ErrCode = "NOT_AVAILABLE"
	ErrNotOwner          ErrCode = "NOT_OWNER"
	ErrInvalidTransition ErrCode = "INVALID_TRANSITION"
	ErrBadInput          ErrCode = "BAD_INPUT"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// Role = repository shape
type Role = bookingrepo.Role

// statusTransitions is the agreed lifecycle: a booking starts pending,
// the landlord confirms or rejects it, and a confirmed stay completes.
var statusTransitions = map[model.BookingStatus][]model.BookingStatus{
	model.BookingPending:   {model.BookingConfirmed, model.BookingRejected},
	model.BookingConfirmed: {model.BookingCompleted},
}

var paymentTransitions = map[model.PaymentStatus][]model.PaymentStatus{
	model.PaymentPending: {model.PaymentPaid},
	model.PaymentPaid:    {model.PaymentRefunded},
}

// CanTransition reports whether status may move from to next.
func CanTransition(from, to model.BookingStatus) bool {
	for _, v := range statusTransitions[from] {
		if v == to {
			return true
		}
	}
	return false
}

func CanTransitionPayment(from, to model.PaymentStatus) bool {
	for _, v := range paymentTransitions[from] {
		if v == to {
			return true
		}
	}
	return false
}

type Service interface {
	// Create books a property for a student; the stay starts pending with
	// payment pending.
	Create(ctx context.Context, studentID, propertyID string, start time.Time, end *time.Time) (*model.Booking, error)

	// ListFor returns the bookings a user participates in, by role.
	ListFor(ctx context.Context, userID string, role Role) (*model.BookingPage, error)

	// SetStatus applies a status transition; only the booking's landlord may.
	SetStatus(ctx context.Context, landlordID, bookingID string, status model.BookingStatus) error

	// SetPaymentStatus applies a payment transition; the booking's student
	// pays, its landlord refunds.
	SetPaymentStatus(ctx context.Context, callerID, bookingID string, status model.PaymentStatus) error
}

type service struct {
	r  bookingrepo.Repo
	pr propertyrepo.Repo
}

func New(r bookingrepo.Repo, pr propertyrepo.Repo) Service {
	return &service{r: r, pr: pr}
}

func (s *service) Create(ctx context.Context, studentID, propertyID string, start time.Time, end *time.Time) (*model.Booking, error) {
	if studentID == "" || propertyID == "" || start.IsZero() {
		return nil, makeErr(ErrBadInput)
	}
	if end != nil && end.Before(start) {
		return nil, makeErr(ErrBadInput)
	}

	p, err := s.pr.Get(ctx, propertyID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, makeErr(ErrPropertyNotFound)
	}
	if err != nil {
		return nil, err
	}
	if !p.Available {
		return nil, makeErr(ErrNotAvailable)
	}

	b := &model.Booking{
		PropertyID:    propertyID,
		StudentID:     studentID,
		LandlordID:    p.LandlordID,
		StartDate:     start,
		EndDate:       end,
		Status:        model.BookingPending,
		TotalAmount:   p.Price,
		PaymentStatus: model.PaymentPending,
	}
	if err := s.r.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) ListFor(ctx context.Context, userID string, role Role) (*model.BookingPage, error) {
	return s.r.ListByUser(ctx, userID, role)
}

func (s *service) SetStatus(ctx context.Context, landlordID, bookingID string, status model.BookingStatus) error {
	b, err := s.r.Get(ctx, bookingID)
	if errors.Is(err, sql.ErrNoRows) {
		return makeErr(ErrNotFound)
	}
	if err != nil {
		return err
	}
	if b.LandlordID != landlordID {
		return makeErr(ErrNotOwner)
	}
	if !CanTransition(b.Status, status) {
		return makeErr(ErrInvalidTransition)
	}
	return s.r.SetStatus(ctx, bookingID, status)
}

func (s *service) SetPaymentStatus(ctx context.Context, callerID, bookingID string, status model.PaymentStatus) error {
	b, err := s.r.Get(ctx, bookingID)
	if errors.Is(err, sql.ErrNoRows) {
		return makeErr(ErrNotFound)
	}
	if err != nil {
		return err
	}
	if !CanTransitionPayment(b.PaymentStatus, status) {
		return makeErr(ErrInvalidTransition)
	}
	switch status {
	case model.PaymentPaid:
		if b.StudentID != callerID {
			return makeErr(ErrNotOwner)
		}
	case model.PaymentRefunded:
		if b.LandlordID != callerID {
			return makeErr(ErrNotOwner)
		}
	}
	return s.r.SetPaymentStatus(ctx, bookingID, status)
}
