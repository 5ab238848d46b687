package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/minio/minio-go/v7"
)

// Mirror copies a local file to and from a bucket.
type Mirror struct {
	client Client
	bucket string
	prefix string
}

// NewMirror creates a mirror storing objects under prefix in bucket.
func NewMirror(client Client, bucket, prefix string) *Mirror {
	return &Mirror{client: client, bucket: bucket, prefix: prefix}
}

// ObjectName returns the object key used for a local file.
func (m *Mirror) ObjectName(localPath string) string {
	return path.Join(m.prefix, filepath.Base(localPath))
}

// Upload copies the file at localPath to the bucket, creating the bucket if needed.
func (m *Mirror) Upload(ctx context.Context, localPath string) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", m.bucket, err)
	}
	if !exists {
		if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", m.bucket, err)
		}
	}

	f, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", localPath, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", localPath, err)
	}

	_, err = m.client.PutObject(ctx, m.bucket, m.ObjectName(localPath), f, info.Size(), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", localPath, err)
	}
	return nil
}

// Restore downloads the mirrored copy to localPath when no local file exists.
// It reports whether a file was written. A missing object is not an error.
func (m *Mirror) Restore(ctx context.Context, localPath string) (bool, error) {
	if _, err := os.Stat(localPath); err == nil {
		return false, nil
	}

	obj, err := m.client.GetObject(ctx, m.bucket, m.ObjectName(localPath), minio.GetObjectOptions{})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get mirrored snapshot: %w", err)
	}
	defer obj.Close()

	if err := os.MkdirAll(filepath.Dir(localPath), 0o755); err != nil {
		return false, fmt.Errorf("failed to create cache directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(localPath), filepath.Base(localPath)+".*.restore")
	if err != nil {
		return false, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := io.Copy(tmp, obj); err != nil {
		_ = tmp.Close()
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to download mirrored snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return false, fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, localPath); err != nil {
		return false, fmt.Errorf("failed to place restored snapshot: %w", err)
	}
	return true, nil
}

func isNotFound(err error) bool {
	var resp minio.ErrorResponse
	if errors.As(err, &resp) {
		return resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket"
	}
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}
