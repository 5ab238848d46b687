package rein

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock advances only when the lister or the throttle says so.
type fakeClock struct {
	t      time.Time
	sleeps []time.Duration
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) sleep(_ context.Context, d time.Duration) error {
	c.sleeps = append(c.sleeps, d)
	c.t = c.t.Add(d)
	return nil
}

type fakeLister struct {
	clock   *fakeClock
	latency time.Duration
	counts  []int
	failAt  int
	calls   []int
	terms   []string
}

func (l *fakeLister) ListProducts(_ context.Context, page int, term string) (*ProductPage, error) {
	l.calls = append(l.calls, page)
	l.terms = append(l.terms, term)
	if l.clock != nil {
		l.clock.t = l.clock.t.Add(l.latency)
	}
	if page == l.failAt {
		return nil, &HTTPError{Path: ProductPath, Page: page, Status: 500, Preview: "boom"}
	}

	count := 0
	if page-1 < len(l.counts) {
		count = l.counts[page-1]
	}
	items := make([]RawObject, count)
	for i := range items {
		items[i] = RawObject{}
	}
	return &ProductPage{Page: page, Items: items, Count: count}, nil
}

func TestFetchAll_StopsOnShortPage(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	lister := &fakeLister{clock: clock, counts: []int{100, 100, 100, 37, 100}}

	f := NewFetcher(lister, nil, WithClock(clock.now, clock.sleep))
	pages, err := f.FetchAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 4}, lister.calls)
	assert.Len(t, pages, 4)
	assert.Equal(t, 37, pages[3].Count)
}

func TestFetchAll_EmptyFirstPage(t *testing.T) {
	lister := &fakeLister{}

	pages, err := NewFetcher(lister, nil, WithMinInterval(0)).FetchAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []int{1}, lister.calls)
	assert.Len(t, pages, 1)
}

func TestFetchAll_ThrottlesBetweenPages(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	lister := &fakeLister{clock: clock, latency: 300 * time.Millisecond, counts: []int{100, 100, 5}}

	f := NewFetcher(lister, nil, WithClock(clock.now, clock.sleep))
	_, err := f.FetchAll(context.Background())
	require.NoError(t, err)

	// One wait between each pair of requests, none after the last page
	assert.Equal(t, []time.Duration{750 * time.Millisecond, 750 * time.Millisecond}, clock.sleeps)
}

func TestFetchAll_NoWaitWhenRequestIsSlow(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	lister := &fakeLister{clock: clock, latency: 2 * time.Second, counts: []int{100, 1}}

	f := NewFetcher(lister, nil, WithClock(clock.now, clock.sleep))
	_, err := f.FetchAll(context.Background())
	require.NoError(t, err)

	assert.Empty(t, clock.sleeps)
}

func TestFetchAll_AbortsOnError(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	lister := &fakeLister{clock: clock, counts: []int{100, 100, 100}, failAt: 2}

	pages, err := NewFetcher(lister, nil, WithClock(clock.now, clock.sleep)).FetchAll(context.Background())

	assert.Nil(t, pages)
	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, 2, httpErr.Page)
	assert.Equal(t, []int{1, 2}, lister.calls)
}

func TestFetchAll_SleepCancelled(t *testing.T) {
	lister := &fakeLister{counts: []int{100, 100}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFetcher(lister, nil, WithMinInterval(time.Hour)).FetchAll(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []int{1}, lister.calls)
}

func TestFetchPage_SearchMode(t *testing.T) {
	lister := &fakeLister{counts: []int{3}}

	page, err := NewFetcher(lister, nil).FetchPage(context.Background(), 0, "SKU-1")
	require.NoError(t, err)

	assert.Equal(t, 1, page.Page)
	assert.Equal(t, []string{"SKU-1"}, lister.terms)
}
