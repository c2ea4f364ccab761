package s3

import (
	"context"

	"github.com/minio/minio-go/v7"
)

// FailDeletes makes every delete on the gateway fail with err
func (g *Gateway) FailDeletes(err error) {
	g.removeObject = func(ctx context.Context, bucket, key string, opts minio.RemoveObjectOptions) error {
		return err
	}
}
