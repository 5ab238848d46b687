package checks

import (
	"context"
	"fmt"

	"rein-stock/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// CheckMirror verifies the snapshot bucket exists.
func CheckMirror(ctx context.Context, client storage.Client, bucket string) Result {
	if client == nil {
		return Result{Status: StatusSkipped, Detail: "snapshot mirror disabled"}
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return failed(fmt.Errorf("failed to check bucket existence: %w", err))
	}
	if !exists {
		return Result{Status: StatusError, Detail: fmt.Sprintf("bucket %s does not exist", bucket), Missing: []string{bucket}}
	}
	return Result{Status: StatusOK, Detail: bucket}
}

// FixMirror creates the snapshot bucket.
func FixMirror(ctx context.Context, client storage.Client, bucket string, logger *zap.Logger) error {
	if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		logger.Error("Failed to create bucket", zap.String("bucket", bucket), zap.Error(err))
		return err
	}
	logger.Info("Created missing bucket", zap.String("bucket", bucket))
	return nil
}
