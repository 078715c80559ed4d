// service/booking/booking_service_test.go
package bookingsvc

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/primeitclub/the-newbies/model"
	bookingrepo "github.com/primeitclub/the-newbies/repository/booking"
	propertyrepo "github.com/primeitclub/the-newbies/repository/property"
)

func TestStatusTransitions(t *testing.T) {
	legal := []struct{ from, to model.BookingStatus }{
		{model.BookingPending, model.BookingConfirmed},
		{model.BookingPending, model.BookingRejected},
		{model.BookingConfirmed, model.BookingCompleted},
	}
	for _, c := range legal {
		require.True(t, CanTransition(c.from, c.to), "%s -> %s", c.from, c.to)
	}

	illegal := []struct{ from, to model.BookingStatus }{
		{model.BookingPending, model.BookingCompleted},
		{model.BookingConfirmed, model.BookingPending},
		{model.BookingRejected, model.BookingConfirmed},
		{model.BookingCompleted, model.BookingPending},
		{model.BookingRejected, model.BookingRejected},
	}
	for _, c := range illegal {
		require.False(t, CanTransition(c.from, c.to), "%s -> %s", c.from, c.to)
	}
}

func TestPaymentTransitions(t *testing.T) {
	require.True(t, CanTransitionPayment(model.PaymentPending, model.PaymentPaid))
	require.True(t, CanTransitionPayment(model.PaymentPaid, model.PaymentRefunded))
	require.False(t, CanTransitionPayment(model.PaymentPending, model.PaymentRefunded))
	require.False(t, CanTransitionPayment(model.PaymentRefunded, model.PaymentPaid))
	require.False(t, CanTransitionPayment(model.PaymentPaid, model.PaymentPending))
}

func seedProperty(available bool) propertyrepo.Repo {
	pr := propertyrepo.NewMemory([]model.Property{{
		ID:         "demo-property-1",
		Title:      "room",
		Location:   "Kirtipur",
		RoomType:   model.RoomSingle,
		Price:      8500,
		LandlordID: "landlord-1",
		Available:  available,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}})
	return pr
}

func TestCreate_Success(t *testing.T) {
	ctx := context.Background()
	svc := New(bookingrepo.NewMemory(), seedProperty(true))

	start := time.Now().UTC().AddDate(0, 0, 7)
	b, err := svc.Create(ctx, "student-1", "demo-property-1", start, nil)
	require.NoError(t, err)
	require.NotEmpty(t, b.ID)
	require.Equal(t, "landlord-1", b.LandlordID)
	require.Equal(t, model.BookingPending, b.Status)
	require.Equal(t, model.PaymentPending, b.PaymentStatus)
	require.Equal(t, 8500.0, b.TotalAmount)
}

func TestCreate_PropertyMissingOrUnavailable(t *testing.T) {
	ctx := context.Background()
	start := time.Now().UTC()

	svc := New(bookingrepo.NewMemory(), seedProperty(true))
	_, err := svc.Create(ctx, "student-1", "no-such-property", start, nil)
	require.Equal(t, ErrPropertyNotFound, Code(err))

	svc = New(bookingrepo.NewMemory(), seedProperty(false))
	_, err = svc.Create(ctx, "student-1", "demo-property-1", start, nil)
	require.Equal(t, ErrNotAvailable, Code(err))
}

func TestCreate_EndBeforeStart(t *testing.T) {
	ctx := context.Background()
	svc := New(bookingrepo.NewMemory(), seedProperty(true))

	start := time.Now().UTC()
	end := start.AddDate(0, 0, -1)
	_, err := svc.Create(ctx, "student-1", "demo-property-1", start, &end)
	require.Equal(t, ErrBadInput, Code(err))
}

func TestSetStatus_OwnershipAndTransition(t *testing.T) {
	ctx := context.Background()
	br := bookingrepo.NewMemory()
	svc := New(br, seedProperty(true))

	b, err := svc.Create(ctx, "student-1", "demo-property-1", time.Now().UTC(), nil)
	require.NoError(t, err)

	// a stranger may not touch it
	err = svc.SetStatus(ctx, "someone-else", b.ID, model.BookingConfirmed)
	require.Equal(t, ErrNotOwner, Code(err))

	// the landlord confirms
	require.NoError(t, svc.SetStatus(ctx, "landlord-1", b.ID, model.BookingConfirmed))

	// confirmed cannot go back to pending
	err = svc.SetStatus(ctx, "landlord-1", b.ID, model.BookingPending)
	require.Equal(t, ErrInvalidTransition, Code(err))

	// unknown booking
	err = svc.SetStatus(ctx, "landlord-1", "missing", model.BookingConfirmed)
	require.Equal(t, ErrNotFound, Code(err))
}

func TestSetPaymentStatus_PartiesOnly(t *testing.T) {
	ctx := context.Background()
	br := bookingrepo.NewMemory()
	svc := New(br, seedProperty(true))

	b, err := svc.Create(ctx, "student-1", "demo-property-1", time.Now().UTC(), nil)
	require.NoError(t, err)

	// strangers may not touch the payment at all
	err = svc.SetPaymentStatus(ctx, "someone-else", b.ID, model.PaymentPaid)
	require.Equal(t, ErrNotOwner, Code(err))

	// only the student pays
	err = svc.SetPaymentStatus(ctx, "landlord-1", b.ID, model.PaymentPaid)
	require.Equal(t, ErrNotOwner, Code(err))
	require.NoError(t, svc.SetPaymentStatus(ctx, "student-1", b.ID, model.PaymentPaid))

	// only the landlord refunds
	err = svc.SetPaymentStatus(ctx, "student-1", b.ID, model.PaymentRefunded)
	require.Equal(t, ErrNotOwner, Code(err))
	require.NoError(t, svc.SetPaymentStatus(ctx, "landlord-1", b.ID, model.PaymentRefunded))

	// refunded is terminal
	err = svc.SetPaymentStatus(ctx, "student-1", b.ID, model.PaymentPaid)
	require.Equal(t, ErrInvalidTransition, Code(err))

	err = svc.SetPaymentStatus(ctx, "student-1", "missing", model.PaymentPaid)
	require.Equal(t, ErrNotFound, Code(err))
}

func TestListFor_SplitsByRole(t *testing.T) {
	ctx := context.Background()
	br := bookingrepo.NewMemory()
	svc := New(br, seedProperty(true))

	_, err := svc.Create(ctx, "student-1", "demo-property-1", time.Now().UTC(), nil)
	require.NoError(t, err)
	_, err = svc.Create(ctx, "student-2", "demo-property-1", time.Now().UTC(), nil)
	require.NoError(t, err)

	mine, err := svc.ListFor(ctx, "student-1", bookingrepo.RoleStudent)
	require.NoError(t, err)
	require.Equal(t, 1, mine.Total)

	theirs, err := svc.ListFor(ctx, "landlord-1", bookingrepo.RoleLandlord)
	require.NoError(t, err)
	require.Equal(t, 2, theirs.Total)
}

func TestCleaner_RejectsOnlyStalePending(t *testing.T) {
	ctx := context.Background()
	br := bookingrepo.NewMemory()

	stale := &model.Booking{PropertyID: "p", StudentID: "s", LandlordID: "l", StartDate: time.Now(), Status: model.BookingPending, PaymentStatus: model.PaymentPending}
	require.NoError(t, br.Create(ctx, stale))
	fresh := &model.Booking{PropertyID: "p", StudentID: "s", LandlordID: "l", StartDate: time.Now(), Status: model.BookingPending, PaymentStatus: model.PaymentPending}
	require.NoError(t, br.Create(ctx, fresh))
	confirmed := &model.Booking{PropertyID: "p", StudentID: "s", LandlordID: "l", StartDate: time.Now(), Status: model.BookingConfirmed, PaymentStatus: model.PaymentPending}
	require.NoError(t, br.Create(ctx, confirmed))

	// cutoff between the two pending bookings
	n, err := br.RejectStalePending(ctx, fresh.CreatedAt)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	got, err := br.Get(ctx, stale.ID)
	require.NoError(t, err)
	require.Equal(t, model.BookingRejected, got.Status)

	got, err = br.Get(ctx, fresh.ID)
	require.NoError(t, err)
	require.Equal(t, model.BookingPending, got.Status)

	got, err = br.Get(ctx, confirmed.ID)
	require.NoError(t, err)
	require.Equal(t, model.BookingConfirmed, got.Status)
}

func TestCodeExtractorBooking(t *testing.T) {
	require.Equal(t, ErrNotFound, Code(makeErr(ErrNotFound)))
	require.Equal(t, ErrCode(""), Code(sql.ErrNoRows))
}
