package storagerepo

import (
	"context"
	"database/sql"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Buckets the service accepts uploads into.
const (
	BucketPropertyImages = "property-images"
	BucketUserAvatars    = "user-avatars"
	BucketDocuments      = "documents"
)

type File struct {
	ID     string `json:"id"`
	Bucket string `json:"bucket"`
	Name   string `json:"name"`
	Size   int64  `json:"size"`
}

type Repo interface {
	Save(ctx context.Context, bucket, name string, r io.Reader) (*File, error)
	Delete(ctx context.Context, bucket, fileID string) error
}

// disk stores each file as <root>/<bucket>/<id><ext>. Buckets are plain
// directories; the echo static route serves them.
type disk struct{ root string }

func NewDisk(root string) Repo { return &disk{root: root} }

func (d *disk) Save(ctx context.Context, bucket, name string, r io.Reader) (*File, error) {
	id := uuid.NewString() + filepath.Ext(name)
	dir := filepath.Join(d.root, bucket)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	f, err := os.Create(filepath.Join(dir, id))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	size, err := io.Copy(f, r)
	if err != nil {
		_ = os.Remove(f.Name())
		return nil, err
	}
	return &File{ID: id, Bucket: bucket, Name: name, Size: size}, nil
}

func (d *disk) Delete(ctx context.Context, bucket, fileID string) error {
	// fileID is a uuid we issued; reject anything path-like
	if fileID != filepath.Base(fileID) {
		return sql.ErrNoRows
	}
	err := os.Remove(filepath.Join(d.root, bucket, fileID))
	if os.IsNotExist(err) {
		return sql.ErrNoRows
	}
	return err
}
