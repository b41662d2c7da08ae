// Copyright 2026 The Push Chain MCP Server Authors
// SPDX-License-Identifier: MIT

package docscache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kshitij-hash/push-chain-mcp-server/internal/model"
)

// fakeFetcher implements Fetcher.
type fakeFetcher struct {
	docs  []*model.DocumentEntry
	err   error
	calls int
}

func (f *fakeFetcher) Fetch(_ context.Context) ([]*model.DocumentEntry, error) {
	f.calls++
	return f.docs, f.err
}

func docSet(names ...string) []*model.DocumentEntry {
	out := make([]*model.DocumentEntry, 0, len(names))
	for _, n := range names {
		out = append(out, &model.DocumentEntry{Name: n, Path: n + ".md"})
	}
	return out
}

func TestGet_FreshSnapshotServedWithoutFetch(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	fetcher := &fakeFetcher{docs: docSet("new")}
	c := New(docSet("seed"), base, time.Hour, fetcher, func() time.Time {
		return base.Add(30 * time.Minute)
	})

	docs, fetchedAt := c.Get(context.Background())
	require.Len(t, docs, 1)
	assert.Equal(t, "seed", docs[0].Name)
	assert.Equal(t, base, fetchedAt)
	assert.Zero(t, fetcher.calls)
	assert.False(t, c.Stale())
}

func TestGet_StaleSnapshotRefetched(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	clock := base.Add(2 * time.Hour)
	fetcher := &fakeFetcher{docs: docSet("fresh-a", "fresh-b")}
	c := New(docSet("seed"), base, time.Hour, fetcher, func() time.Time { return clock })

	require.True(t, c.Stale())
	docs, fetchedAt := c.Get(context.Background())
	assert.Equal(t, 1, fetcher.calls)
	require.Len(t, docs, 2)
	assert.Equal(t, "fresh-a", docs[0].Name)
	assert.Equal(t, clock, fetchedAt)
	assert.False(t, c.Stale(), "refetch resets the clock")

	// Subsequent gets serve the refreshed snapshot without another fetch.
	c.Get(context.Background())
	assert.Equal(t, 1, fetcher.calls)
}

func TestGet_FetchFailureDegradesToStale(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	fetcher := &fakeFetcher{err: errors.New("rate limited")}
	c := New(docSet("seed"), base, time.Hour, fetcher, func() time.Time {
		return base.Add(3 * time.Hour)
	})

	docs, fetchedAt := c.Get(context.Background())
	assert.Equal(t, 1, fetcher.calls)
	require.Len(t, docs, 1)
	assert.Equal(t, "seed", docs[0].Name, "stale snapshot survives a failed refetch")
	assert.Equal(t, base, fetchedAt)
	assert.True(t, c.Stale(), "failed refetch does not reset the clock")
}

func TestGet_NilFetcherAlwaysServesSeed(t *testing.T) {
	c := New(docSet("seed"), time.Time{}, time.Hour, nil, nil)

	docs, _ := c.Get(context.Background())
	require.Len(t, docs, 1)
	assert.Equal(t, "seed", docs[0].Name)
}

func TestInvalidate(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	fetcher := &fakeFetcher{docs: docSet("fresh")}
	c := New(docSet("seed"), base, time.Hour, fetcher, func() time.Time { return base })

	assert.False(t, c.Stale())
	c.Invalidate()
	assert.True(t, c.Stale())

	docs, _ := c.Get(context.Background())
	assert.Equal(t, 1, fetcher.calls)
	assert.Equal(t, "fresh", docs[0].Name)
}
