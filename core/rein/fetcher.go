package rein

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const (
	// PageSize is the fixed number of items the API returns on a full page.
	PageSize = 100
	// MinRequestInterval keeps a full walk under 60 requests per minute.
	MinRequestInterval = 1050 * time.Millisecond
)

// PageLister fetches a single listing page.
type PageLister interface {
	ListProducts(ctx context.Context, page int, term string) (*ProductPage, error)
}

// Fetcher walks the product listing page by page.
type Fetcher struct {
	lister   PageLister
	logger   *zap.Logger
	pageSize int
	throttle throttle
}

// FetcherOption customizes a Fetcher.
type FetcherOption func(*Fetcher)

// WithClock replaces the time source and sleep function used by the throttle.
func WithClock(now func() time.Time, sleep func(ctx context.Context, d time.Duration) error) FetcherOption {
	return func(f *Fetcher) {
		f.throttle.now = now
		f.throttle.sleep = sleep
	}
}

// WithMinInterval overrides the minimum spacing between page requests.
func WithMinInterval(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.throttle.interval = d
	}
}

// NewFetcher creates a fetcher over lister.
func NewFetcher(lister PageLister, logger *zap.Logger, opts ...FetcherOption) *Fetcher {
	if logger == nil {
		logger = zap.NewNop()
	}

	f := &Fetcher{
		lister:   lister,
		logger:   logger,
		pageSize: PageSize,
		throttle: throttle{
			interval: MinRequestInterval,
			now:      time.Now,
			sleep:    sleepContext,
		},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FetchAll retrieves the entire catalog starting at page 1.
// It stops at the first page holding fewer than PageSize items; that is the
// only stopping condition. Any failure aborts the walk and no pages are returned.
func (f *Fetcher) FetchAll(ctx context.Context) ([]*ProductPage, error) {
	var pages []*ProductPage

	for page := 1; ; page++ {
		start := f.throttle.now()

		p, err := f.lister.ListProducts(ctx, page, "")
		if err != nil {
			f.logger.Error("Catalog page fetch failed", zap.Int("page", page), zap.Error(err))
			return nil, err
		}
		pages = append(pages, p)

		f.logger.Debug("Fetched catalog page", zap.Int("page", page), zap.Int("items", p.Count))

		if p.Count < f.pageSize {
			break
		}

		if err := f.throttle.wait(ctx, start); err != nil {
			return nil, err
		}
	}

	return pages, nil
}

// FetchPage retrieves a single page, optionally filtered by a search term.
func (f *Fetcher) FetchPage(ctx context.Context, page int, term string) (*ProductPage, error) {
	if page < 1 {
		page = 1
	}
	return f.lister.ListProducts(ctx, page, term)
}
