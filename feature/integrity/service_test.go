package integrity_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"rein-stock/core/database"
	"rein-stock/core/reconcile"
	"rein-stock/core/rein"
	"rein-stock/core/storage/mocks"
	"rein-stock/feature/integrity"
	"rein-stock/feature/integrity/checks"
	"rein-stock/feature/stock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestService_CheckAll(t *testing.T) {
	ctx := context.Background()

	t.Run("AllSubsystems", func(t *testing.T) {
		cache, err := reconcile.NewFileCache(filepath.Join(t.TempDir(), "cache.json"))
		require.NoError(t, err)
		require.NoError(t, cache.Save(reconcile.NewSnapshot()))

		db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
		require.NoError(t, err)
		require.NoError(t, stock.MigrateHistory(db))

		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "snapshots").Return(true, nil)

		svc := integrity.NewService(cache, db, client, "snapshots", goodCreds, zap.NewNop())
		report := svc.CheckAll(ctx)

		assert.Equal(t, checks.StatusOK, report.Status)
		assert.Len(t, report.Checks, 4)
		for name, r := range report.Checks {
			assert.Equal(t, checks.StatusOK, r.Status, name)
		}
		client.AssertExpectations(t)
	})

	t.Run("WarnWhenNeverSynced", func(t *testing.T) {
		cache, err := reconcile.NewFileCache(filepath.Join(t.TempDir(), "cache.json"))
		require.NoError(t, err)

		svc := integrity.NewService(cache, nil, nil, "snapshots", goodCreds, nil)
		report := svc.CheckAll(ctx)

		assert.Equal(t, checks.StatusWarn, report.Status)
		assert.Equal(t, checks.StatusWarn, report.Checks["cache"].Status)
		assert.Equal(t, checks.StatusSkipped, report.Checks["mirror"].Status)
	})

	t.Run("ErrorOutranksWarn", func(t *testing.T) {
		cache, err := reconcile.NewFileCache(filepath.Join(t.TempDir(), "cache.json"))
		require.NoError(t, err)

		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "snapshots").Return(false, errors.New("connection refused"))

		svc := integrity.NewService(cache, nil, client, "snapshots", rein.Config{}, zap.NewNop())
		report := svc.CheckAll(ctx)

		assert.Equal(t, checks.StatusError, report.Status)
		assert.Equal(t, checks.StatusError, report.Checks["mirror"].Status)
		assert.Contains(t, report.Checks["credentials"].Missing, "rein.base_url")
	})
}
