// Copyright 2026 The Push Chain MCP Server Authors
// SPDX-License-Identifier: MIT

// Package docscache owns the documentation snapshot behind an explicit
// pull-through interface: Get returns the docs and when they were fetched,
// refetching through the injected Fetcher when the snapshot has outlived its
// TTL. The clock and fetcher are injectable so tests can drive staleness
// without sleeping or touching the network.
package docscache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/kshitij-hash/push-chain-mcp-server/internal/model"
)

// Fetcher produces a fresh documentation snapshot from the upstream source.
type Fetcher interface {
	Fetch(ctx context.Context) ([]*model.DocumentEntry, error)
}

// Cache is a pull-through documentation cache with TTL semantics.
type Cache struct {
	mu        sync.Mutex
	docs      []*model.DocumentEntry
	fetchedAt time.Time

	ttl     time.Duration
	now     func() time.Time
	fetcher Fetcher
}

// New creates a Cache seeded with an initial snapshot fetched at fetchedAt.
// fetcher may be nil, in which case Get always serves the seed. now may be
// nil to use the wall clock.
func New(initial []*model.DocumentEntry, fetchedAt time.Time, ttl time.Duration, fetcher Fetcher, now func() time.Time) *Cache {
	if now == nil {
		now = time.Now
	}
	return &Cache{
		docs:      initial,
		fetchedAt: fetchedAt,
		ttl:       ttl,
		now:       now,
		fetcher:   fetcher,
	}
}

// Get returns the current snapshot and its fetch time. A stale snapshot is
// refetched through the fetcher; a fetch failure degrades to the stale
// snapshot with a warning, because documentation is best-effort data.
func (c *Cache) Get(ctx context.Context) ([]*model.DocumentEntry, time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.fetcher == nil || !c.staleLocked() {
		return c.docs, c.fetchedAt
	}

	fresh, err := c.fetcher.Fetch(ctx)
	if err != nil {
		slog.Warn("docs refetch failed, serving stale snapshot",
			"fetched_at", c.fetchedAt, "error", err)
		return c.docs, c.fetchedAt
	}
	c.docs = fresh
	c.fetchedAt = c.now()
	return c.docs, c.fetchedAt
}

// Invalidate marks the snapshot stale so the next Get refetches.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetchedAt = time.Time{}
}

// Stale reports whether the snapshot has outlived the TTL.
func (c *Cache) Stale() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.staleLocked()
}

func (c *Cache) staleLocked() bool {
	if c.fetchedAt.IsZero() {
		return true
	}
	return c.now().Sub(c.fetchedAt) > c.ttl
}
