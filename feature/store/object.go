package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"corporate-web/core/storage"
	"corporate-web/feature/asset"

	"github.com/minio/minio-go/v7"
)

// ObjectStore persists the asset table as a CSV object in the storage bucket.
type ObjectStore struct {
	client storage.Client
	bucket string
	object string
}

// NewObjectStore creates a store writing to the given bucket/object.
func NewObjectStore(client storage.Client, bucket, object string) *ObjectStore {
	return &ObjectStore{client: client, bucket: bucket, object: object}
}

// Load implements Store. A missing object is an empty table, not an error.
func (s *ObjectStore) Load(ctx context.Context) (asset.Table, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
	if err != nil {
		if isNotFound(err) {
			return asset.NewTable(), nil
		}
		return asset.NewTable(), fmt.Errorf("failed to fetch table object %s/%s: %w", s.bucket, s.object, err)
	}
	defer obj.Close()

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(obj); err != nil {
		// Minio reports a missing object on first read, not at GetObject.
		if isNotFound(err) {
			return asset.NewTable(), nil
		}
		return asset.NewTable(), fmt.Errorf("failed to read table object %s/%s: %w", s.bucket, s.object, err)
	}

	return decodeCSV(buf)
}

// Save implements Store. The bucket is created on first save.
func (s *ObjectStore) Save(ctx context.Context, table asset.Table) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
		}
	}

	buf := new(bytes.Buffer)
	if err := encodeCSV(buf, table); err != nil {
		return fmt.Errorf("failed to encode table: %w", err)
	}

	_, err = s.client.PutObject(ctx, s.bucket, s.object, buf, int64(buf.Len()), minio.PutObjectOptions{
		ContentType: "text/csv",
	})
	if err != nil {
		return fmt.Errorf("failed to upload table object %s/%s: %w", s.bucket, s.object, err)
	}
	return nil
}

func isNotFound(err error) bool {
	var resp minio.ErrorResponse
	if errors.As(err, &resp) {
		return resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket"
	}
	return false
}
