package cmd

import (
	"context"
	"fmt"

	"rein-stock/core/config"
	"rein-stock/core/database"
	"rein-stock/core/logger"
	"rein-stock/core/metrics"
	"rein-stock/core/reconcile"
	"rein-stock/core/rein"
	"rein-stock/core/storage"
	"rein-stock/feature/stock"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime bundles the objects every command needs.
type runtime struct {
	cfg     *config.Config
	logger  *zap.Logger
	cache   *reconcile.FileCache
	db      *gorm.DB
	storage storage.Client
	metrics *metrics.Recorder
	service *stock.Service
}

func loadRuntime() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, l, nil
}

// newRuntime wires the stock service. History and the snapshot mirror are
// optional; failing to set them up is logged and the service runs without them.
func newRuntime(ctx context.Context) (*runtime, error) {
	cfg, l, err := loadRuntime()
	if err != nil {
		return nil, err
	}

	cache, err := reconcile.NewFileCache(cfg.Sync.CachePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}

	rt := &runtime{cfg: cfg, logger: l, cache: cache, metrics: metrics.NewRecorder()}
	opts := []stock.Option{stock.WithObserver(rt.metrics)}

	if cfg.Database.Enabled() {
		if db, err := database.Connect(cfg.Database); err != nil {
			l.Warn("Sync history disabled: database connection failed", zap.Error(err))
		} else {
			rt.db = db
			if err := stock.MigrateHistory(db); err != nil {
				l.Warn("Sync history disabled: migration failed", zap.Error(err))
			} else {
				opts = append(opts, stock.WithHistory(stock.NewGormHistory(db)))
			}
		}
	}

	if cfg.Storage.Enabled {
		if client, err := storage.NewClient(cfg.Storage); err != nil {
			l.Warn("Snapshot mirror disabled", zap.Error(err))
		} else {
			rt.storage = client
			mirror := storage.NewMirror(client, cfg.Storage.Bucket, cfg.Sync.MirrorPrefix)
			if restored, err := mirror.Restore(ctx, cache.Path()); err != nil {
				l.Warn("Failed to restore mirrored snapshot", zap.Error(err))
			} else if restored {
				l.Info("Restored snapshot from object storage", zap.String("path", cache.Path()))
			}
			opts = append(opts, stock.WithMirror(mirror))
		}
	}

	client := rein.NewClient(cfg.Rein, nil)
	fetcher := rein.NewFetcher(client, l)
	extractor := rein.NewExtractor(rein.ImageBase(cfg.Rein.CDNBase, cfg.Rein.Database, cfg.Rein.CDNVersion))

	rt.service = stock.NewService(fetcher, extractor, cache, l, opts...)
	return rt, nil
}
