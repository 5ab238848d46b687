package stock

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rein-stock/core/database"

	"gorm.io/gorm"
)

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// SyncRun is one recorded SyncFull attempt.
type SyncRun struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	RunID      string    `gorm:"size:36;uniqueIndex" json:"run_id"`
	Mode       string    `gorm:"size:16" json:"mode"`
	Status     string    `gorm:"size:16;index" json:"status"`
	StartedAt  time.Time `gorm:"index" json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Pages      int       `json:"pages"`
	New        int       `json:"new"`
	Updated    int       `json:"updated"`
	Removed    int       `json:"removed"`
	TotalSKUs  int       `gorm:"column:total_skus" json:"total_skus"`
	Error      string    `gorm:"type:text" json:"error,omitempty"`
}

// HistoryColumns lists the columns the sync history table must have.
var HistoryColumns = []string{
	"run_id", "mode", "status", "started_at", "finished_at",
	"pages", "new", "updated", "removed", "total_skus", "error",
}

// TableName overrides the default table name.
func (SyncRun) TableName() string {
	return "stock_sync_runs"
}

// HistoryRepository persists sync runs.
type HistoryRepository interface {
	Record(ctx context.Context, run *SyncRun) error
	Recent(ctx context.Context, limit int) ([]SyncRun, error)
}

// GormHistory stores sync runs with GORM.
type GormHistory struct {
	db *gorm.DB
}

// NewGormHistory creates a repository over db.
func NewGormHistory(db *gorm.DB) *GormHistory {
	return &GormHistory{db: db}
}

// MigrateHistory creates or updates the sync run table and verifies its columns.
func MigrateHistory(db *gorm.DB) error {
	if err := db.AutoMigrate(&SyncRun{}); err != nil {
		return fmt.Errorf("failed to migrate sync history: %w", err)
	}

	missing, err := database.MissingColumns(db, SyncRun{}.TableName(), HistoryColumns)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("sync history table is missing columns: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Record inserts a run.
func (h *GormHistory) Record(ctx context.Context, run *SyncRun) error {
	if err := h.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to record sync run: %w", err)
	}
	return nil
}

// Recent returns the latest runs, newest first.
func (h *GormHistory) Recent(ctx context.Context, limit int) ([]SyncRun, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	var runs []SyncRun
	err := h.db.WithContext(ctx).
		Order("started_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sync runs: %w", err)
	}
	return runs, nil
}
