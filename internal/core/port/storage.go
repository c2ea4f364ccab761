package port

import (
	"context"
	"io"
)

// ObjectStorage is the only interface through which the object store is
// touched. Implementations force public-read visibility and return durable
// URLs of the form {base}/{bucket}/{key}.
type ObjectStorage interface {
	Put(ctx context.Context, key, contentType string, r io.Reader, size int64) (string, error)
	Copy(ctx context.Context, srcKey, dstKey string) (string, error)
	Move(ctx context.Context, srcKey, dstKey string) (string, error)
	Delete(ctx context.Context, key string) error
	DeleteMany(ctx context.Context, urls []string) (int, error)
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Exists(ctx context.Context, key string) (bool, error)
	GenerateKey(folder, filename string) string
	MimeFor(filename string) string
	KeyFromURL(url string) (string, bool)
}
