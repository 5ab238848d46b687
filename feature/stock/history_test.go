package stock_test

import (
	"context"
	"testing"
	"time"

	"rein-stock/core/database"
	"rein-stock/feature/stock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newSQLiteHistory(t *testing.T) *stock.GormHistory {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, stock.MigrateHistory(db))
	return stock.NewGormHistory(db)
}

func TestGormHistory_SQLite(t *testing.T) {
	ctx := context.Background()
	h := newSQLiteHistory(t)
	base := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)

	for i, status := range []string{stock.StatusSuccess, stock.StatusFailed, stock.StatusSuccess} {
		run := &stock.SyncRun{
			RunID:      []string{"a", "b", "c"}[i],
			Mode:       stock.ModeFull,
			Status:     status,
			StartedAt:  base.Add(time.Duration(i) * time.Hour),
			FinishedAt: base.Add(time.Duration(i)*time.Hour + time.Minute),
			Pages:      4,
			TotalSKUs:  337,
		}
		require.NoError(t, h.Record(ctx, run))
		assert.NotZero(t, run.ID)
	}

	runs, err := h.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "c", runs[0].RunID)
	assert.Equal(t, "b", runs[1].RunID)
	assert.Equal(t, stock.StatusFailed, runs[1].Status)
	assert.Equal(t, 337, runs[1].TotalSKUs)

	all, err := h.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestMigrateHistory_RejectsIncompleteTable(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	// A view occupying the table name cannot be migrated.
	require.NoError(t, db.Exec("CREATE VIEW stock_sync_runs AS SELECT 1 AS id").Error)

	assert.Error(t, stock.MigrateHistory(db))
}

func newMockHistory(t *testing.T) (*stock.GormHistory, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)
	return stock.NewGormHistory(db), mock
}

func TestGormHistory_MySQLRecord(t *testing.T) {
	h, mock := newMockHistory(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `stock_sync_runs`").
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectCommit()

	run := &stock.SyncRun{RunID: "r-1", Mode: stock.ModeFull, Status: stock.StatusSuccess, StartedAt: time.Now()}
	require.NoError(t, h.Record(context.Background(), run))
	assert.Equal(t, uint(42), run.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormHistory_MySQLRecordError(t *testing.T) {
	h, mock := newMockHistory(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `stock_sync_runs`").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := h.Record(context.Background(), &stock.SyncRun{RunID: "r-1"})
	assert.ErrorContains(t, err, "failed to record sync run")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormHistory_MySQLRecent(t *testing.T) {
	h, mock := newMockHistory(t)

	rows := sqlmock.NewRows([]string{"id", "run_id", "mode", "status", "pages", "total_skus"}).
		AddRow(2, "r-2", "full", "failed", 1, 0).
		AddRow(1, "r-1", "full", "success", 4, 337)
	mock.ExpectQuery("SELECT \\* FROM `stock_sync_runs` ORDER BY started_at DESC").
		WillReturnRows(rows)

	runs, err := h.Recent(context.Background(), 500)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "r-2", runs[0].RunID)
	assert.Equal(t, 337, runs[1].TotalSKUs)
	assert.NoError(t, mock.ExpectationsWereMet())
}
