package reviewsvc

import (
	"context"
	"errors"

	"github.com/primeitclub/the-newbies/model"
	reviewrepo "github.com/primeitclub/the-newbies/repository/review"
)

type ErrCode string

const (
	ErrBadInput ErrCode = "BAD_INPUT"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }

func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type Service interface {
	Create(ctx context.Context, rv *model.Review) error
	ListByProperty(ctx context.Context, propertyID string) (*model.ReviewPage, error)
}

type service struct{ r reviewrepo.Repo }

func New(r reviewrepo.Repo) Service { return &service{r: r} }

func (s *service) Create(ctx context.Context, rv *model.Review) error {
	if rv.PropertyID == "" || rv.StudentID == "" {
		return codedError{ErrBadInput}
	}
	if rv.Rating < 1 || rv.Rating > 5 {
		return codedError{ErrBadInput}
	}
	return s.r.Create(ctx, rv)
}

func (s *service) ListByProperty(ctx context.Context, propertyID string) (*model.ReviewPage, error) {
	return s.r.ListByProperty(ctx, propertyID)
}
