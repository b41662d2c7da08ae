// Copyright 2026 The Push Chain MCP Server Authors
// SPDX-License-Identifier: MIT

package paginate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage_BasicWindowing(t *testing.T) {
	tests := []struct {
		name           string
		total          int
		limit          int
		offset         int
		wantReturned   int
		wantHasMore    bool
		wantNextOffset int
	}{
		{"exact fit", 10, 10, 0, 10, false, 0},
		{"first page", 23, 20, 0, 20, true, 20},
		{"last partial page", 23, 20, 20, 3, false, 0},
		{"offset past end", 10, 5, 100, 0, false, 0},
		{"offset at end", 10, 5, 10, 0, false, 0},
		{"empty list", 0, 20, 0, 0, false, 0},
		{"middle page", 50, 10, 10, 10, true, 20},
		{"limit larger than total", 3, 20, 0, 3, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Page(tt.total, tt.limit, tt.offset)
			assert.Equal(t, tt.total, w.Total)
			assert.Equal(t, tt.wantReturned, w.Returned)
			assert.Equal(t, tt.wantHasMore, w.HasMore)
			assert.Equal(t, tt.wantNextOffset, w.NextOffset)
		})
	}
}

func TestPage_NormalizesDegenerateInputs(t *testing.T) {
	w := Page(10, 0, -5)
	assert.Equal(t, 1, w.Limit, "limit below 1 clamps to 1")
	assert.Equal(t, 0, w.Offset, "negative offset clamps to 0")
	assert.Equal(t, 1, w.Returned)
}

// Returned must always equal min(limit, max(0, total-offset)).
func TestPage_ReturnedInvariant(t *testing.T) {
	for total := 0; total <= 30; total += 3 {
		for limit := 1; limit <= 25; limit += 4 {
			for offset := 0; offset <= 35; offset += 5 {
				w := Page(total, limit, offset)
				want := total - offset
				if want < 0 {
					want = 0
				}
				if want > limit {
					want = limit
				}
				require.Equal(t, want, w.Returned,
					"total=%d limit=%d offset=%d", total, limit, offset)
				require.Equal(t, offset+limit < total, w.HasMore,
					"total=%d limit=%d offset=%d", total, limit, offset)
			}
		}
	}
}

func TestSlice(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	got, w := Slice(items, 2, 1)
	assert.Equal(t, []string{"b", "c"}, got)
	assert.True(t, w.HasMore)
	assert.Equal(t, 3, w.NextOffset)

	got, w = Slice(items, 10, 4)
	assert.Equal(t, []string{"e"}, got)
	assert.False(t, w.HasMore)

	got, w = Slice(items, 10, 50)
	assert.Nil(t, got)
	assert.Equal(t, 0, w.Returned)
}

func TestTruncate_UnderCeilingUnchanged(t *testing.T) {
	text := strings.Repeat("x", 100)
	assert.Equal(t, text, Truncate(text, 100))
	assert.Equal(t, text, Truncate(text, 200))
}

func TestTruncate_OverCeiling(t *testing.T) {
	text := strings.Repeat("x", 150)
	got := Truncate(text, 100)

	require.True(t, strings.HasPrefix(got, strings.Repeat("x", 100)))
	assert.Contains(t, got, "[Response truncated: showing 100 of 150 characters.")
	assert.Contains(t, got, "limit/offset")
	// Exactly ceiling characters of content plus the fixed notice, nothing
	// else.
	assert.Equal(t, 100+len(TruncationNotice(150, 100)), len(got))
	assert.Equal(t, strings.Repeat("x", 100)+TruncationNotice(150, 100), got)
}

func TestTruncate_ZeroCeilingUsesDefault(t *testing.T) {
	text := strings.Repeat("x", DefaultCharacterLimit+1)
	got := Truncate(text, 0)
	assert.Contains(t, got, "[Response truncated: showing 25000 of 25001 characters.")

	short := "hello"
	assert.Equal(t, short, Truncate(short, 0))
}
