// Copyright 2026 The Push Chain MCP Server Authors
// SPDX-License-Identifier: MIT

// Package store owns the read-only, process-lifetime snapshot of
// documentation entries, SDK source files, exported symbols, and package
// descriptors. Everything is populated once at startup; tool calls only read.
package store

import (
	"sort"
	"strings"

	"github.com/kshitij-hash/push-chain-mcp-server/internal/model"
)

// Store is the in-memory data snapshot. Safe for concurrent reads; nothing
// mutates it after New returns.
type Store struct {
	docs       []*model.DocumentEntry
	docsByPath map[string]*model.DocumentEntry

	files       []*model.SourceFile
	filesByPath map[string]*model.SourceFile

	exports  []model.ExportRecord
	packages []*model.PackageDescriptor
}

// New assembles a Store from already-loaded records. Slice order is
// preserved; lookups by path use the last entry for a duplicate path, but
// loaders guarantee path uniqueness.
func New(docs []*model.DocumentEntry, files []*model.SourceFile, exports []model.ExportRecord, packages []*model.PackageDescriptor) *Store {
	s := &Store{
		docs:        docs,
		docsByPath:  make(map[string]*model.DocumentEntry, len(docs)),
		files:       files,
		filesByPath: make(map[string]*model.SourceFile, len(files)),
		exports:     exports,
		packages:    packages,
	}
	for _, d := range docs {
		s.docsByPath[d.Path] = d
	}
	for _, f := range files {
		s.filesByPath[f.Path] = f
	}
	return s
}

// Documents returns all documentation entries in load order.
func (s *Store) Documents() []*model.DocumentEntry { return s.docs }

// DocumentByPath returns the document with the exact path, or nil.
func (s *Store) DocumentByPath(path string) *model.DocumentEntry {
	return s.docsByPath[path]
}

// SourceFiles returns all SDK source files in load order.
func (s *Store) SourceFiles() []*model.SourceFile { return s.files }

// SourceFileByPath returns the source file with the exact path, or nil.
func (s *Store) SourceFileByPath(path string) *model.SourceFile {
	return s.filesByPath[path]
}

// Exports returns all export records in load order.
func (s *Store) Exports() []model.ExportRecord { return s.exports }

// Packages returns all package descriptors in load order.
func (s *Store) Packages() []*model.PackageDescriptor { return s.packages }

// PackageByName returns the descriptor whose name matches exactly, or nil.
func (s *Store) PackageByName(name string) *model.PackageDescriptor {
	for _, p := range s.packages {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// PackageForPath derives the owning package name for a source file path by
// longest package-root prefix match. Unknown paths fall back to a name
// derived from the "packages/<dir>" convention, or "" when the path is not
// under a package root at all.
func (s *Store) PackageForPath(path string) string {
	var best *model.PackageDescriptor
	for _, p := range s.packages {
		if p.Root == "" || !strings.HasPrefix(path, p.Root+"/") {
			continue
		}
		if best == nil || len(p.Root) > len(best.Root) {
			best = p
		}
	}
	if best != nil {
		return best.Name
	}
	parts := strings.Split(path, "/")
	if len(parts) >= 2 && parts[0] == "packages" {
		return "@pushchain/" + parts[1]
	}
	return ""
}

// Categories returns the distinct document categories, sorted.
func (s *Store) Categories() []string {
	seen := make(map[string]bool)
	for _, d := range s.docs {
		seen[d.Category()] = true
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
