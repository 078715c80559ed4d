package favoritesvc

import (
	"context"
	"database/sql"
	"errors"

	"github.com/primeitclub/the-newbies/model"
	favoriterepo "github.com/primeitclub/the-newbies/repository/favorite"
)

type ErrCode string

const (
	ErrAlreadyFavorite ErrCode = "ALREADY_FAVORITE"
	ErrNotFound        ErrCode = "NOT_FOUND"
	ErrBadInput        ErrCode = "BAD_INPUT"
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
	Add(ctx context.Context, userID, propertyID string) (*model.Favorite, error)
	Remove(ctx context.Context, userID, propertyID string) error
	ListByUser(ctx context.Context, userID string) (*model.FavoritePage, error)
}

type service struct{ r favoriterepo.Repo }

func New(r favoriterepo.Repo) Service { return &service{r: r} }

func (s *service) Add(ctx context.Context, userID, propertyID string) (*model.Favorite, error) {
	if userID == "" || propertyID == "" {
		return nil, codedError{ErrBadInput}
	}
	f := &model.Favorite{UserID: userID, PropertyID: propertyID}
	err := s.r.Add(ctx, f)
	if errors.Is(err, favoriterepo.ErrDuplicate) {
		return nil, codedError{ErrAlreadyFavorite}
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (s *service) Remove(ctx context.Context, userID, propertyID string) error {
	err := s.r.Remove(ctx, userID, propertyID)
	if errors.Is(err, sql.ErrNoRows) {
		return codedError{ErrNotFound}
	}
	return err
}

func (s *service) ListByUser(ctx context.Context, userID string) (*model.FavoritePage, error) {
	return s.r.ListByUser(ctx, userID)
}
