package ledger

import (
	"context"
	"fmt"

	"corporate-web/core/storage"

	"github.com/minio/minio-go/v7"
)

// ObjectSource fetches the ledger from a CSV object in the storage bucket.
type ObjectSource struct {
	client storage.Client
	bucket string
	object string
}

// NewObjectSource creates a source reading the given object.
func NewObjectSource(client storage.Client, bucket, object string) *ObjectSource {
	return &ObjectSource{client: client, bucket: bucket, object: object}
}

// Fetch implements Source.
func (s *ObjectSource) Fetch(ctx context.Context) (Ledger, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
	if err != nil {
		return Empty(), fmt.Errorf("failed to fetch ledger object %s/%s: %w", s.bucket, s.object, err)
	}
	defer obj.Close()

	ledger, err := ParseCSV(obj)
	if err != nil {
		// Minio defers some errors (missing object included) until the
		// first read, so they surface here rather than at GetObject.
		return Empty(), fmt.Errorf("failed to parse ledger object %s/%s: %w", s.bucket, s.object, err)
	}
	return ledger, nil
}
