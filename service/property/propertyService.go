package propertysvc

import (
	"context"
	"database/sql"
	"errors"

	"github.com/primeitclub/the-newbies/model"
	propertyrepo "github.com/primeitclub/the-newbies/repository/property"
)

// errors used by controllers

type ErrCode string

const (
	ErrInvalidID ErrCode = "INVALID_ID"
	ErrNotFound  ErrCode = "NOT_FOUND"
	ErrBadInput  ErrCode = "BAD_INPUT"
)

type codedError struct {
	code   ErrCode
	detail string
}

func (e codedError) Error() string {
	if e.detail == "" {
		return string(e.code)
	}
	return string(e.code) + ": " + e.detail
}
func (e codedError) Code() ErrCode { return e.code }

func makeErr(c ErrCode, detail string) error { return codedError{code: c, detail: detail} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// Filter = repository shape
type Filter = propertyrepo.Filter

type Service interface {
	Create(ctx context.Context, p *model.Property) error
	List(ctx context.Context, f Filter) (*model.PropertyPage, error)
	Get(ctx context.Context, id string) (*model.Property, error)
	Update(ctx context.Context, id string, u model.PropertyUpdate) (*model.Property, error)
}

type service struct{ r propertyrepo.Repo }

func New(r propertyrepo.Repo) Service { return &service{r: r} }

func (s *service) Create(ctx context.Context, p *model.Property) error {
	if p.Title == "" || p.Location == "" || p.LandlordID == "" || p.Price < 0 {
		return makeErr(ErrBadInput, "title, location, landlord and non-negative price required")
	}
	if !model.ValidRoomType(p.RoomType) {
		return makeErr(ErrBadInput, "unknown room type "+string(p.RoomType))
	}
	return s.r.Create(ctx, p)
}

func (s *service) List(ctx context.Context, f Filter) (*model.PropertyPage, error) {
	return s.r.List(ctx, f)
}

func (s *service) Get(ctx context.Context, id string) (*model.Property, error) {
	// malformed routing produces these literals; never hit the store
	if id == "" || id == "undefined" || id == "null" {
		return nil, makeErr(ErrInvalidID, "invalid property ID")
	}
	p, err := s.r.Get(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, makeErr(ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Update(ctx context.Context, id string, u model.PropertyUpdate) (*model.Property, error) {
	if id == "" || id == "undefined" || id == "null" {
		return nil, makeErr(ErrInvalidID, "invalid property ID")
	}
	if u.RoomType != nil && !model.ValidRoomType(*u.RoomType) {
		return nil, makeErr(ErrBadInput, "unknown room type "+string(*u.RoomType))
	}
	if u.Price != nil && *u.Price < 0 {
		return nil, makeErr(ErrBadInput, "price must be >= 0")
	}
	p, err := s.r.Update(ctx, id, u)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, makeErr(ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}
