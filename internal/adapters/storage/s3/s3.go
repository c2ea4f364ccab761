package s3

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/projecthowly/beatstore-bot-sub000/internal/config"
	"github.com/projecthowly/beatstore-bot-sub000/internal/core/domain"
)

// Gateway is the storage gateway for an S3-compatible object store. It is
// the only component that talks to the store; objects it writes are
// publicly readable and addressed by {base}/{bucket}/{key}.
type Gateway struct {
	client *minio.Client
	config config.S3Config
	base   string
	logger *slog.Logger

	// removeObject is swapped in tests to fault the delete leg of Move
	removeObject func(ctx context.Context, bucket, key string, opts minio.RemoveObjectOptions) error
}

// NewGateway returns a Gateway. The bucket is created if missing and a
// public-read policy is applied so returned URLs resolve without signing.
func NewGateway(ctx context.Context, cfg config.S3Config, logger *slog.Logger) (*Gateway, error) {
	lookup := minio.BucketLookupDNS
	if cfg.ForcePathStyle {
		lookup = minio.BucketLookupPath
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:        credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:       cfg.UseSSL,
		Region:       cfg.Region,
		BucketLookup: lookup,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	policy := fmt.Sprintf(`{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"AWS":["*"]},"Action":["s3:GetObject"],"Resource":["arn:aws:s3:::%s/*"]}]}`, cfg.Bucket)
	if err := client.SetBucketPolicy(ctx, cfg.Bucket, policy); err != nil {
		return nil, fmt.Errorf("failed to set public-read bucket policy: %w", err)
	}

	base := strings.TrimRight(cfg.PublicBaseURL, "/")
	if base == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		base = fmt.Sprintf("%s://%s", scheme, cfg.Endpoint)
	}

	return &Gateway{
		client:       client,
		config:       cfg,
		base:         base,
		logger:       logger,
		removeObject: client.RemoveObject,
	}, nil
}

func (g *Gateway) urlFor(key string) string {
	return fmt.Sprintf("%s/%s/%s", g.base, g.config.Bucket, key)
}

// Put uploads the bytes under key in a single shot and returns the durable
// public URL
func (g *Gateway) Put(ctx context.Context, key, contentType string, r io.Reader, size int64) (string, error) {
	opts := minio.PutObjectOptions{
		ContentType:      contentType,
		DisableMultipart: true,
	}

	if _, err := g.client.PutObject(ctx, g.config.Bucket, key, r, size, opts); err != nil {
		return "", fmt.Errorf("put %s: %w: %w", key, domain.ErrStorage, err)
	}
	return g.urlFor(key), nil
}

// Copy performs a server-side copy without re-uploading bytes
func (g *Gateway) Copy(ctx context.Context, srcKey, dstKey string) (string, error) {
	src := minio.CopySrcOptions{Bucket: g.config.Bucket, Object: srcKey}
	dst := minio.CopyDestOptions{Bucket: g.config.Bucket, Object: dstKey}

	if _, err := g.client.CopyObject(ctx, dst, src); err != nil {
		return "", fmt.Errorf("copy %s to %s: %w: %w", srcKey, dstKey, domain.ErrStorage, err)
	}
	return g.urlFor(dstKey), nil
}

// Move copies the object then deletes the source. When the delete fails
// after a successful copy the object exists at both locations; the
// destination URL is still returned, together with an error wrapping
// domain.ErrSourceRetained so callers see the partial state.
func (g *Gateway) Move(ctx context.Context, srcKey, dstKey string) (string, error) {
	url, err := g.Copy(ctx, srcKey, dstKey)
	if err != nil {
		return "", err
	}

	if err := g.Delete(ctx, srcKey); err != nil {
		g.logger.Warn("move left source in place",
			slog.String("srcKey", srcKey),
			slog.String("dstKey", dstKey),
			slog.String("error", err.Error()))
		return url, fmt.Errorf("move %s: %w: %w", srcKey, domain.ErrSourceRetained, err)
	}
	return url, nil
}

// Delete removes the object. Deleting a key that does not exist is not an
// error.
func (g *Gateway) Delete(ctx context.Context, key string) error {
	if err := g.removeObject(ctx, g.config.Bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("delete %s: %w: %w", key, domain.ErrStorage, err)
	}
	return nil
}

// DeleteMany removes the objects behind the given URLs, best effort. URLs
// outside the bucket base are skipped, per-URL failures only log, and the
// number of successful deletions is returned.
func (g *Gateway) DeleteMany(ctx context.Context, urls []string) (int, error) {
	deleted := 0
	for _, url := range urls {
		key, ok := g.KeyFromURL(url)
		if !ok {
			g.logger.Warn("skipping url outside bucket base", slog.String("url", url))
			continue
		}
		if err := g.Delete(ctx, key); err != nil {
			g.logger.Error("failed to delete object", slog.String("key", key), slog.String("error", err.Error()))
			continue
		}
		deleted++
	}
	return deleted, nil
}

// Get retrieves the object's content
func (g *Gateway) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	object, err := g.client.GetObject(ctx, g.config.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get %s: %w: %w", key, domain.ErrStorage, err)
	}
	return object, nil
}

// Exists reports whether an object is present at key
func (g *Gateway) Exists(ctx context.Context, key string) (bool, error) {
	_, err := g.client.StatObject(ctx, g.config.Bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return false, nil
		}
		return false, fmt.Errorf("stat %s: %w: %w", key, domain.ErrStorage, err)
	}
	return true, nil
}

// KeyFromURL extracts the object key from a durable URL. URLs that do not
// start with this gateway's bucket base report false.
func (g *Gateway) KeyFromURL(url string) (string, bool) {
	prefix := fmt.Sprintf("%s/%s/", g.base, g.config.Bucket)
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(url, prefix)
	if key == "" {
		return "", false
	}
	return key, true
}
