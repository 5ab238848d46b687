package integrity

import (
	"context"
	"time"

	"rein-stock/core/reconcile"
	"rein-stock/core/rein"
	"rein-stock/core/storage"
	"rein-stock/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Report is the combined result of every check.
type Report struct {
	Status string                   `json:"status"`
	Checks map[string]checks.Result `json:"checks"`
}

// Service runs health checks against the service's dependencies.
type Service struct {
	store  reconcile.Store
	db     *gorm.DB
	client storage.Client
	bucket string
	rein   rein.Config
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates an integrity service. db and client may be nil when
// history or mirroring is disabled.
func NewService(store reconcile.Store, db *gorm.DB, client storage.Client, bucket string, reinCfg rein.Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:  store,
		db:     db,
		client: client,
		bucket: bucket,
		rein:   reinCfg,
		logger: logger,
		now:    time.Now,
	}
}

// CheckCache inspects the persisted snapshot.
func (s *Service) CheckCache() checks.Result {
	return checks.CheckCache(s.store, s.now())
}

// CheckHistory inspects the sync history table.
func (s *Service) CheckHistory() checks.Result {
	return checks.CheckHistory(s.db)
}

// CheckMirror inspects the snapshot bucket.
func (s *Service) CheckMirror(ctx context.Context) checks.Result {
	return checks.CheckMirror(ctx, s.client, s.bucket)
}

// FixMirror creates the snapshot bucket.
func (s *Service) FixMirror(ctx context.Context) error {
	return checks.FixMirror(ctx, s.client, s.bucket, s.logger)
}

// CheckCredentials inspects the ERP settings.
func (s *Service) CheckCredentials() checks.Result {
	return checks.CheckCredentials(s.rein)
}

// CheckAll runs every check. The overall status is the worst individual one,
// skipped checks aside.
func (s *Service) CheckAll(ctx context.Context) Report {
	report := Report{
		Status: checks.StatusOK,
		Checks: map[string]checks.Result{
			"cache":       s.CheckCache(),
			"history":     s.CheckHistory(),
			"mirror":      s.CheckMirror(ctx),
			"credentials": s.CheckCredentials(),
		},
	}
	for _, r := range report.Checks {
		switch {
		case r.Status == checks.StatusError:
			report.Status = checks.StatusError
		case r.Status == checks.StatusWarn && report.Status == checks.StatusOK:
			report.Status = checks.StatusWarn
		}
	}
	return report
}
