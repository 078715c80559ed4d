package storagesvc

import (
	"context"
	"database/sql"
	"errors"
	"io"

	storagerepo "github.com/primeitclub/the-newbies/repository/storage"
)

type ErrCode string

const (
	ErrInvalidBucket ErrCode = "INVALID_BUCKET"
	ErrNotFound      ErrCode = "NOT_FOUND"
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

type File = storagerepo.File

type Service interface {
	Upload(ctx context.Context, bucket, name string, r io.Reader) (*File, error)
	Delete(ctx context.Context, bucket, fileID string) error
	// URL is the public path the static route serves the file under.
	URL(f *File) string
}

type service struct{ r storagerepo.Repo }

func New(r storagerepo.Repo) Service { return &service{r: r} }

func validBucket(b string) bool {
	switch b {
	case storagerepo.BucketPropertyImages, storagerepo.BucketUserAvatars, storagerepo.BucketDocuments:
		return true
	}
	return false
}

func (s *service) Upload(ctx context.Context, bucket, name string, r io.Reader) (*File, error) {
	if !validBucket(bucket) {
		return nil, codedError{ErrInvalidBucket}
	}
	return s.r.Save(ctx, bucket, name, r)
}

func (s *service) Delete(ctx context.Context, bucket, fileID string) error {
	if !validBucket(bucket) {
		return codedError{ErrInvalidBucket}
	}
	err := s.r.Delete(ctx, bucket, fileID)
	if errors.Is(err, sql.ErrNoRows) {
		return codedError{ErrNotFound}
	}
	return err
}

func (s *service) URL(f *File) string {
	return "/files/" + f.Bucket + "/" + f.ID
}
