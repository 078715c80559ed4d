package bookingsvc

import (
	"context"
	"time"

	bookingrepo "github.com/primeitclub/the-newbies/repository/booking"
)

type Cleaner interface {
	RejectStale(ctx context.Context) (int64, error)
}

type cleaner struct {
	r    bookingrepo.Repo
	hold time.Duration
}

// NewCleaner rejects bookings still pending past the hold window.
func NewCleaner(r bookingrepo.Repo, hold time.Duration) Cleaner {
	return &cleaner{r: r, hold: hold}
}

func (c *cleaner) RejectStale(ctx context.Context) (int64, error) {
	return c.r.RejectStalePending(ctx, time.Now().UTC().Add(-c.hold))
}
