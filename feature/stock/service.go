package stock

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"rein-stock/core/metrics"
	"rein-stock/core/rein"
	"rein-stock/core/reconcile"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ModeFull labels runs that walked the whole catalog.
const ModeFull = "full"

// ErrHistoryDisabled is returned by History when no repository is configured.
var ErrHistoryDisabled = errors.New("sync history is not configured")

// Catalog reads products from the ERP.
type Catalog interface {
	FetchAll(ctx context.Context) ([]*rein.ProductPage, error)
	FetchPage(ctx context.Context, page int, term string) (*rein.ProductPage, error)
}

// SnapshotMirror copies the persisted snapshot somewhere else.
type SnapshotMirror interface {
	Upload(ctx context.Context, path string) error
}

// SyncObserver receives a sample for every finished sync attempt.
type SyncObserver interface {
	ObserveSync(s metrics.SyncSample)
}

// Summary is the diff of one run plus its identity.
type Summary struct {
	reconcile.DiffSummary
	RunID string `json:"run_id"`
	Mode  string `json:"mode"`
	Pages int    `json:"pages"`
}

// SyncResult is returned by SyncFull.
type SyncResult struct {
	Items   []reconcile.SnapshotEntry `json:"items"`
	Summary Summary                   `json:"summary"`
}

// Search status filters, named after the values the editor sends.
const (
	SearchActive   = "ativos"
	SearchInactive = "inativos"
	SearchAll      = "todos"
)

// DefaultSearchPerPage is the page size assumed when a search does not set one.
const DefaultSearchPerPage = 10

// SearchQuery selects one page of a live lookup.
type SearchQuery struct {
	Term    string
	Page    int
	PerPage int
	// Status is SearchActive (default), SearchInactive or SearchAll.
	Status string
	// ExactSKU keeps only variants whose SKU equals Term.
	ExactSKU bool
}

// SearchRow is one variant of a search result. Rows are never merged, so a
// SKU listed under two products appears twice.
type SearchRow struct {
	ProductID   string `json:"productId,omitempty"`
	VariantID   string `json:"variantId,omitempty"`
	SKU         string `json:"sku"`
	ProductName string `json:"productName"`
	NCM         string `json:"ncm,omitempty"`
	StockQty    int    `json:"stockQty"`
	Active      bool   `json:"active"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// SearchResult is one page of a term lookup against the live API.
// Total and TotalPages describe the remote listing before any filtering.
type SearchResult struct {
	Items      []SearchRow `json:"items"`
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	PerPage    int         `json:"per_page"`
	TotalPages int         `json:"total_pages"`
}

// Service synchronizes the ERP catalog into the local snapshot.
type Service struct {
	catalog   Catalog
	extractor *rein.Extractor
	store     reconcile.Store
	history   HistoryRepository
	mirror    SnapshotMirror
	observer  SyncObserver
	logger    *zap.Logger
	group     singleflight.Group
	now       func() time.Time
	newID     func() string
}

// Option customizes a Service.
type Option func(*Service)

// WithHistory records every sync attempt in h.
func WithHistory(h HistoryRepository) Option {
	return func(s *Service) { s.history = h }
}

// WithMirror uploads the snapshot after every successful save.
func WithMirror(m SnapshotMirror) Option {
	return func(s *Service) { s.mirror = m }
}

// WithObserver reports every sync attempt to o.
func WithObserver(o SyncObserver) Option {
	return func(s *Service) { s.observer = o }
}

// WithClock replaces the time source used for run timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a stock service.
func NewService(catalog Catalog, extractor *rein.Extractor, store reconcile.Store, logger *zap.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		catalog:   catalog,
		extractor: extractor,
		store:     store,
		logger:    logger,
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SyncFull walks the whole catalog, persists the new snapshot and reports
// how it differs from the previous one. Concurrent callers share a single
// in-flight run. On failure the cached snapshot is left untouched.
func (s *Service) SyncFull(ctx context.Context) (*SyncResult, error) {
	v, err, shared := s.group.Do("sync_full", func() (any, error) {
		return s.syncFull(ctx)
	})
	if shared {
		s.logger.Debug("Joined in-flight stock sync")
	}
	if err != nil {
		return nil, err
	}
	return v.(*SyncResult), nil
}

func (s *Service) syncFull(ctx context.Context) (*SyncResult, error) {
	run := &SyncRun{
		RunID:     s.newID(),
		Mode:      ModeFull,
		StartedAt: s.now(),
	}
	l := s.logger.With(zap.String("run_id", run.RunID))
	l.Info("Stock sync started")

	pages, err := s.catalog.FetchAll(ctx)
	if err != nil {
		s.fail(ctx, l, run, err)
		return nil, fmt.Errorf("stock sync: %w", err)
	}
	run.Pages = len(pages)

	rows := s.extractor.RowsFromPages(pages)
	current := &reconcile.Snapshot{Entries: reconcile.Index(rows)}
	previous := s.store.Load()

	if err := s.store.Save(current); err != nil {
		s.fail(ctx, l, run, err)
		return nil, fmt.Errorf("stock sync: %w", err)
	}

	diff := reconcile.Diff(previous, current)

	if s.mirror != nil {
		if err := s.mirror.Upload(ctx, s.store.Path()); err != nil {
			l.Warn("Snapshot mirror upload failed", zap.Error(err))
		}
	}

	run.Status = StatusSuccess
	run.FinishedAt = s.now()
	run.New = diff.New
	run.Updated = diff.Updated
	run.Removed = diff.Removed
	run.TotalSKUs = diff.TotalSKUs
	s.record(ctx, l, run)
	s.observe(run)

	l.Info("Stock sync finished",
		zap.Int("pages", run.Pages),
		zap.Int("rows", len(rows)),
		zap.Int("new", diff.New),
		zap.Int("updated", diff.Updated),
		zap.Int("removed", diff.Removed),
		zap.Int("total_skus", diff.TotalSKUs),
		zap.Duration("took", run.FinishedAt.Sub(run.StartedAt)),
	)

	return &SyncResult{
		Items: reconcile.Sorted(current),
		Summary: Summary{
			DiffSummary: diff,
			RunID:       run.RunID,
			Mode:        run.Mode,
			Pages:       run.Pages,
		},
	}, nil
}

func (s *Service) fail(ctx context.Context, l *zap.Logger, run *SyncRun, err error) {
	run.Status = StatusFailed
	run.FinishedAt = s.now()
	run.Error = err.Error()
	l.Error("Stock sync failed", zap.Error(err))
	s.record(ctx, l, run)
	s.observe(run)
}

func (s *Service) observe(run *SyncRun) {
	if s.observer == nil {
		return
	}
	s.observer.ObserveSync(metrics.SyncSample{
		Status:     run.Status,
		Duration:   run.FinishedAt.Sub(run.StartedAt),
		FinishedAt: run.FinishedAt,
		Pages:      run.Pages,
		New:        run.New,
		Updated:    run.Updated,
		Removed:    run.Removed,
		TotalSKUs:  run.TotalSKUs,
	})
}

func (s *Service) record(ctx context.Context, l *zap.Logger, run *SyncRun) {
	if s.history == nil {
		return
	}
	// A cancelled request must not lose the record of its own failure.
	if err := s.history.Record(context.WithoutCancel(ctx), run); err != nil {
		l.Warn("Failed to record sync run", zap.Error(err))
	}
}

// ListCached returns the persisted snapshot ordered by product name and SKU.
// It never touches the network.
func (s *Service) ListCached() []reconcile.SnapshotEntry {
	return reconcile.Sorted(s.store.Load())
}

// Search looks up one page of products matching q.Term on the live API and
// flattens it into one row per variant. Rows are ordered active first, then
// by stock descending, then by SKU.
func (s *Service) Search(ctx context.Context, q SearchQuery) (*SearchResult, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = DefaultSearchPerPage
	}
	term := strings.TrimSpace(q.Term)

	p, err := s.catalog.FetchPage(ctx, q.Page, term)
	if err != nil {
		return nil, fmt.Errorf("stock search: %w", err)
	}

	items := make([]SearchRow, 0, len(p.Items))
	for _, row := range s.extractor.Rows(p) {
		if !matchesStatus(q.Status, row.Active) {
			continue
		}
		if q.ExactSKU && term != "" && row.SKU != term {
			continue
		}
		items = append(items, SearchRow{
			ProductID:   row.ProductID,
			VariantID:   row.VariantID,
			SKU:         row.SKU,
			ProductName: row.ProductName,
			NCM:         row.NCM,
			StockQty:    row.StockQty,
			Active:      row.Active,
			ImageURL:    row.ImageURL,
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Active != items[j].Active {
			return items[i].Active
		}
		if items[i].StockQty != items[j].StockQty {
			return items[i].StockQty > items[j].StockQty
		}
		return items[i].SKU < items[j].SKU
	})

	total := p.TotalItems
	if total <= 0 {
		total = p.Count
	}
	totalPages := (total + q.PerPage - 1) / q.PerPage
	if totalPages < 1 {
		totalPages = 1
	}

	return &SearchResult{
		Items:      items,
		Total:      total,
		Page:       q.Page,
		PerPage:    q.PerPage,
		TotalPages: totalPages,
	}, nil
}

// matchesStatus applies the status filter. Unknown values filter nothing.
func matchesStatus(status string, active bool) bool {
	switch status {
	case "", SearchActive:
		return active
	case SearchInactive:
		return !active
	default:
		return true
	}
}

// History returns the most recent sync runs.
func (s *Service) History(ctx context.Context, limit int) ([]SyncRun, error) {
	if s.history == nil {
		return nil, ErrHistoryDisabled
	}
	return s.history.Recent(ctx, limit)
}
