package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"tutorials/quickstart.md", "tutorials"},
		{"tutorials/wallets/setup.md", "tutorials"},
		{"faq.md", "general"},
		{"reference/errors.mdx", "reference"},
	}
	for _, tt := range tests {
		d := &DocumentEntry{Path: tt.path}
		assert.Equal(t, tt.want, d.Category(), "path %q", tt.path)
	}
}

func TestValidKind(t *testing.T) {
	for _, k := range KindStrings() {
		assert.True(t, ValidKind(k))
	}
	assert.False(t, ValidKind("enum"))
	assert.False(t, ValidKind(""))
	assert.False(t, ValidKind("Function"))
}
