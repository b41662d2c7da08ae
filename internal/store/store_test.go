// Copyright 2026 The Push Chain MCP Server Authors
// SPDX-License-Identifier: MIT

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kshitij-hash/push-chain-mcp-server/internal/model"
)

func testStore() *Store {
	docs := []*model.DocumentEntry{
		{Name: "Intro", Path: "intro.md"},
		{Name: "Wallet", Path: "tutorials/wallet.md"},
		{Name: "Send", Path: "tutorials/send.md"},
		{Name: "Errors", Path: "reference/errors.md"},
	}
	files := []*model.SourceFile{
		{Path: "packages/core/src/client.ts", Text: "export class PushClient {}\n"},
	}
	exports := []model.ExportRecord{
		{Name: "PushClient", Kind: model.KindClass, SourceFile: "packages/core/src/client.ts"},
	}
	packages := []*model.PackageDescriptor{
		{Name: "@pushchain/core", Root: "packages/core"},
		{Name: "@pushchain/core-utils", Root: "packages/core-utils"},
	}
	return New(docs, files, exports, packages)
}

func TestLookupsByPath(t *testing.T) {
	s := testStore()

	require.NotNil(t, s.DocumentByPath("tutorials/wallet.md"))
	assert.Nil(t, s.DocumentByPath("tutorials/missing.md"))

	require.NotNil(t, s.SourceFileByPath("packages/core/src/client.ts"))
	assert.Nil(t, s.SourceFileByPath("packages/core/src/other.ts"))

	require.NotNil(t, s.PackageByName("@pushchain/core"))
	assert.Nil(t, s.PackageByName("@pushchain/nope"))
}

func TestPackageForPath(t *testing.T) {
	s := testStore()

	assert.Equal(t, "@pushchain/core", s.PackageForPath("packages/core/src/client.ts"))

	// Longest root wins; a prefix match on "packages/core" must not claim
	// files under "packages/core-utils". The root match requires the "/"
	// boundary.
	assert.Equal(t, "@pushchain/core-utils", s.PackageForPath("packages/core-utils/src/a.ts"))

	// Unknown package dirs fall back to the naming convention.
	assert.Equal(t, "@pushchain/experimental", s.PackageForPath("packages/experimental/src/x.ts"))

	// Paths outside the packages tree have no owner.
	assert.Equal(t, "", s.PackageForPath("scripts/build.ts"))
}

func TestCategories(t *testing.T) {
	s := testStore()
	assert.Equal(t, []string{"general", "reference", "tutorials"}, s.Categories())
}
