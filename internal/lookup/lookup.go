// Copyright 2026 The Push Chain MCP Server Authors
// SPDX-License-Identifier: MIT

// Package lookup executes the read-only queries behind every tool: exact-name
// export lookup, keyword search, path lookup, and aggregate listings. All
// operations are deterministic against the store snapshot and preserve store
// load order; no re-sorting is applied.
package lookup

import (
	"context"
	"strings"

	"github.com/kshitij-hash/push-chain-mcp-server/internal/extract"
	"github.com/kshitij-hash/push-chain-mcp-server/internal/failure"
	"github.com/kshitij-hash/push-chain-mcp-server/internal/model"
	"github.com/kshitij-hash/push-chain-mcp-server/internal/store"
)

const (
	// DefaultContentThreshold: when a docs search yields fewer hits than
	// this, the engine widens to document content (and the remote fallback
	// when configured). Kept configurable rather than inferring stricter
	// intent from the arbitrary historical value.
	DefaultContentThreshold = 5

	// maxContentMatchesPerFile caps per-file content matches before any
	// pagination runs.
	maxContentMatchesPerFile = 5

	contentContextLines = 2
	exampleContextLines = 3
)

// Search scopes for SearchSDK.
const (
	ScopeAll      = "all"
	ScopeExports  = "exports"
	ScopePaths    = "paths"
	ScopeContent  = "content"
	ScopeExamples = "examples"
)

// RemoteSearcher is the optional upstream fallback consulted when local doc
// search comes up short.
type RemoteSearcher interface {
	SearchDocs(ctx context.Context, query string) ([]DocMatch, *failure.Failure)
}

// Engine runs queries against an immutable store snapshot.
type Engine struct {
	store            *store.Store
	contentThreshold int
	remote           RemoteSearcher
}

// NewEngine creates an Engine. threshold <= 0 selects the default; remote may
// be nil to disable the upstream fallback.
func NewEngine(s *store.Store, threshold int, remote RemoteSearcher) *Engine {
	if threshold <= 0 {
		threshold = DefaultContentThreshold
	}
	return &Engine{store: s, contentThreshold: threshold, remote: remote}
}

// Store exposes the underlying snapshot for resource handlers.
func (e *Engine) Store() *store.Store { return e.store }

// ExportMatch is one export record joined with its owning package and, for
// exact lookups, a best-effort definition snippet.
type ExportMatch struct {
	Name       string `json:"name"`
	Kind       string `json:"kind"`
	Package    string `json:"package"`
	SourceFile string `json:"source_file"`
	Definition string `json:"definition,omitempty"`
}

// ExactName returns every export whose name equals name, optionally filtered
// by kind and package, each with an extracted definition. Zero matches is an
// empty slice, never an error; the tool layer decides how to present it.
func (e *Engine) ExactName(name, kind, pkg string) []ExportMatch {
	var matches []ExportMatch
	for _, rec := range e.store.Exports() {
		if rec.Name != name {
			continue
		}
		if kind != "" && string(rec.Kind) != kind {
			continue
		}
		owner := e.store.PackageForPath(rec.SourceFile)
		if pkg != "" && owner != pkg {
			continue
		}
		def := extract.Placeholder(rec.Name, rec.SourceFile)
		if sf := e.store.SourceFileByPath(rec.SourceFile); sf != nil {
			def = extract.Definition(rec.Name, rec.Kind, rec.SourceFile, sf.Text)
		}
		matches = append(matches, ExportMatch{
			Name:       rec.Name,
			Kind:       string(rec.Kind),
			Package:    owner,
			SourceFile: rec.SourceFile,
			Definition: def,
		})
	}
	return matches
}

// ContentMatch is one matching line with its 1-based line number and a fixed
// surrounding context window.
type ContentMatch struct {
	Path    string   `json:"path"`
	Line    int      `json:"line"`
	Text    string   `json:"text"`
	Context []string `json:"context,omitempty"`
}

// SDKSearchResult carries the parallel result lists of a keyword search plus
// the pre-truncation count of each.
type SDKSearchResult struct {
	Exports  []ExportMatch  `json:"exports,omitempty"`
	Paths    []string       `json:"paths,omitempty"`
	Content  []ContentMatch `json:"content,omitempty"`
	Examples []ContentMatch `json:"examples,omitempty"`

	TotalExports  int `json:"total_exports"`
	TotalPaths    int `json:"total_paths"`
	TotalContent  int `json:"total_content"`
	TotalExamples int `json:"total_examples"`
}

// SearchSDK runs a case-insensitive substring search over export names, file
// paths, file text, and usage examples (doc code blocks), limited by scope.
// Path matches are reported ahead of content matches in the formatted output;
// within each list, store order is preserved.
func (e *Engine) SearchSDK(query, scope string) *SDKSearchResult {
	q := strings.ToLower(query)
	res := &SDKSearchResult{}

	if scope == ScopeAll || scope == "" || scope == ScopeExports {
		for _, rec := range e.store.Exports() {
			if strings.Contains(strings.ToLower(rec.Name), q) {
				res.Exports = append(res.Exports, ExportMatch{
					Name:       rec.Name,
					Kind:       string(rec.Kind),
					Package:    e.store.PackageForPath(rec.SourceFile),
					SourceFile: rec.SourceFile,
				})
			}
		}
		res.TotalExports = len(res.Exports)
	}

	if scope == ScopeAll || scope == "" || scope == ScopePaths {
		for _, sf := range e.store.SourceFiles() {
			if strings.Contains(strings.ToLower(sf.Path), q) {
				res.Paths = append(res.Paths, sf.Path)
			}
		}
		res.TotalPaths = len(res.Paths)
	}

	if scope == ScopeAll || scope == "" || scope == ScopeContent {
		for _, sf := range e.store.SourceFiles() {
			res.Content = append(res.Content, matchLines(sf.Path, sf.Text, q, contentContextLines, maxContentMatchesPerFile)...)
		}
		res.TotalContent = len(res.Content)
	}

	if scope == ScopeAll || scope == "" || scope == ScopeExamples {
		for _, doc := range e.store.Documents() {
			// The per-file cap spans every code block of the document.
			remaining := maxContentMatchesPerFile
			for _, block := range doc.CodeBlocks {
				if remaining <= 0 {
					break
				}
				hits := matchLines(doc.Path, block.Code, q, exampleContextLines, remaining)
				remaining -= len(hits)
				res.Examples = append(res.Examples, hits...)
			}
		}
		res.TotalExamples = len(res.Examples)
	}

	return res
}

// matchLines scans text for the lowercase query, capturing each matching line
// with its 1-based number and a window of ctx lines on either side, stopping
// after limit matches.
func matchLines(path, text, q string, ctx, limit int) []ContentMatch {
	var matches []ContentMatch
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if !strings.Contains(strings.ToLower(line), q) {
			continue
		}
		start := i - ctx
		if start < 0 {
			start = 0
		}
		end := i + ctx + 1
		if end > len(lines) {
			end = len(lines)
		}
		window := make([]string, end-start)
		copy(window, lines[start:end])
		matches = append(matches, ContentMatch{
			Path:    path,
			Line:    i + 1,
			Text:    strings.TrimSpace(line),
			Context: window,
		})
		if len(matches) >= limit {
			break
		}
	}
	return matches
}

// DocMatch is one documentation search hit.
type DocMatch struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Category string `json:"category"`
	Snippet  string `json:"snippet,omitempty"`
	Source   string `json:"source,omitempty"` // "local" or "remote"
}

// SearchDocs searches document names, paths, and metadata; when hits stay
// under the content threshold it widens to document text, and then to the
// remote fallback when one is configured. A failed remote fetch surfaces
// immediately; there are no automatic retries.
func (e *Engine) SearchDocs(ctx context.Context, query string) ([]DocMatch, *failure.Failure) {
	q := strings.ToLower(query)
	var matches []DocMatch
	matched := make(map[string]bool)

	for _, doc := range e.store.Documents() {
		if docMetaMatches(doc, q) {
			matches = append(matches, DocMatch{
				Name:     doc.Name,
				Path:     doc.Path,
				Category: doc.Category(),
				Source:   "local",
			})
			matched[doc.Path] = true
		}
	}

	if len(matches) < e.contentThreshold {
		for _, doc := range e.store.Documents() {
			if matched[doc.Path] {
				continue
			}
			line, ok := firstMatchingLine(doc.RawContent, q)
			if !ok {
				continue
			}
			matches = append(matches, DocMatch{
				Name:     doc.Name,
				Path:     doc.Path,
				Category: doc.Category(),
				Snippet:  line,
				Source:   "local",
			})
			matched[doc.Path] = true
		}
	}

	if len(matches) < e.contentThreshold && e.remote != nil {
		remote, f := e.remote.SearchDocs(ctx, query)
		if f != nil {
			return nil, f
		}
		for _, m := range remote {
			if !matched[m.Path] {
				m.Source = "remote"
				matches = append(matches, m)
			}
		}
	}

	return matches, nil
}

func docMetaMatches(doc *model.DocumentEntry, q string) bool {
	if strings.Contains(strings.ToLower(doc.Name), q) ||
		strings.Contains(strings.ToLower(doc.Path), q) {
		return true
	}
	for _, v := range doc.Metadata {
		if strings.Contains(strings.ToLower(v), q) {
			return true
		}
	}
	return false
}

func firstMatchingLine(text, q string) (string, bool) {
	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(strings.ToLower(line), q) {
			return strings.TrimSpace(line), true
		}
	}
	return "", false
}

// Documents lists document entries, optionally filtered by category.
func (e *Engine) Documents(category string) []*model.DocumentEntry {
	if category == "" {
		return e.store.Documents()
	}
	var out []*model.DocumentEntry
	for _, doc := range e.store.Documents() {
		if doc.Category() == category {
			out = append(out, doc)
		}
	}
	return out
}

// Document returns the document with the exact path, or nil. No partial
// matching.
func (e *Engine) Document(path string) *model.DocumentEntry {
	return e.store.DocumentByPath(path)
}

// SourceFile returns the source file with the exact path, or nil.
func (e *Engine) SourceFile(path string) *model.SourceFile {
	return e.store.SourceFileByPath(path)
}

// AllExports returns every export (without definitions), optionally filtered
// by owning package and kind, in store order. The tool layer paginates and
// groups the flat list.
func (e *Engine) AllExports(pkg, kind string) []ExportMatch {
	var out []ExportMatch
	for _, rec := range e.store.Exports() {
		if kind != "" && string(rec.Kind) != kind {
			continue
		}
		owner := e.store.PackageForPath(rec.SourceFile)
		if pkg != "" && owner != pkg {
			continue
		}
		out = append(out, ExportMatch{
			Name:       rec.Name,
			Kind:       string(rec.Kind),
			Package:    owner,
			SourceFile: rec.SourceFile,
		})
	}
	return out
}

// Classes returns every class export, optionally filtered by package.
func (e *Engine) Classes(pkg string) []ExportMatch {
	return e.AllExports(pkg, string(model.KindClass))
}

// ComponentListing splits UI exports by naming heuristic: the "use" prefix
// marks hooks, a "Provider" substring marks providers, and the remaining
// class/function exports are components.
type ComponentListing struct {
	Components []string `json:"components"`
	Hooks      []string `json:"hooks"`
	Providers  []string `json:"providers"`
}

// Components classifies exports of the UI package (any package whose name
// contains "ui"); when no such package exists, all packages are considered.
func (e *Engine) Components() ComponentListing {
	uiOnly := false
	for _, p := range e.store.Packages() {
		if strings.Contains(p.Name, "ui") {
			uiOnly = true
			break
		}
	}

	var listing ComponentListing
	for _, rec := range e.store.Exports() {
		if uiOnly && !strings.Contains(e.store.PackageForPath(rec.SourceFile), "ui") {
			continue
		}
		switch {
		case strings.HasPrefix(rec.Name, "use"):
			listing.Hooks = append(listing.Hooks, rec.Name)
		case strings.Contains(rec.Name, "Provider"):
			listing.Providers = append(listing.Providers, rec.Name)
		case rec.Kind == model.KindClass || rec.Kind == model.KindFunction:
			listing.Components = append(listing.Components, rec.Name)
		}
	}
	return listing
}

// Packages returns package descriptors: all of them, or the single named one.
func (e *Engine) Packages(name string) []*model.PackageDescriptor {
	if name == "" {
		return e.store.Packages()
	}
	if p := e.store.PackageByName(name); p != nil {
		return []*model.PackageDescriptor{p}
	}
	return nil
}
