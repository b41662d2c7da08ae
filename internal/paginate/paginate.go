// Copyright 2026 The Push Chain MCP Server Authors
// SPDX-License-Identifier: MIT

// Package paginate bounds tool responses two ways, in order: item-count
// bounding of result lists (limit/offset), then character-count bounding of
// the final serialized text. The character ceiling is a last-resort safety
// net; even a single returned item can trigger it.
package paginate

import "fmt"

// DefaultCharacterLimit is the hard cap on serialized response text unless
// overridden by configuration.
const DefaultCharacterLimit = 25000

// Window describes how a result list was bounded and how to fetch the rest.
type Window struct {
	Total      int  `json:"total"`
	Returned   int  `json:"returned"`
	Offset     int  `json:"offset"`
	Limit      int  `json:"limit"`
	HasMore    bool `json:"has_more"`
	NextOffset int  `json:"next_offset,omitempty"`
}

// Page computes the bounding window for a list of total items. offset >= total
// yields an empty window, not an error. limit < 1 is treated as 1.
func Page(total, limit, offset int) Window {
	if limit < 1 {
		limit = 1
	}
	if offset < 0 {
		offset = 0
	}
	returned := total - offset
	if returned < 0 {
		returned = 0
	}
	if returned > limit {
		returned = limit
	}
	w := Window{
		Total:    total,
		Returned: returned,
		Offset:   offset,
		Limit:    limit,
		HasMore:  offset+limit < total,
	}
	if w.HasMore {
		w.NextOffset = offset + limit
	}
	return w
}

// Slice applies Page to items and returns the bounded sub-slice.
func Slice[T any](items []T, limit, offset int) ([]T, Window) {
	w := Page(len(items), limit, offset)
	if w.Returned == 0 {
		return nil, w
	}
	return items[w.Offset : w.Offset+w.Returned], w
}

// Truncate hard-cuts text at ceiling characters and appends a notice stating
// the original length, the shown length, and guidance to narrow the query.
// The cut is not content-aware. Text at or under the ceiling is returned
// unchanged.
func Truncate(text string, ceiling int) string {
	if ceiling <= 0 {
		ceiling = DefaultCharacterLimit
	}
	if len(text) <= ceiling {
		return text
	}
	return text[:ceiling] + TruncationNotice(len(text), ceiling)
}

// TruncationNotice is the fixed-format trailer appended by Truncate.
func TruncationNotice(original, shown int) string {
	return fmt.Sprintf(
		"\n\n[Response truncated: showing %d of %d characters. Narrow your query or use limit/offset to reduce the result size.]",
		shown, original)
}
