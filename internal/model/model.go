// Package model defines the core domain types for the Push Chain MCP server.
//
// All types are populated once at startup by the store loaders and are
// immutable for the life of the process.
package model

import (
	"path"
	"strings"
)

// ExportKind classifies an exported symbol.
type ExportKind string

// Export kinds recognized by the extractor.
const (
	KindFunction  ExportKind = "function"
	KindClass     ExportKind = "class"
	KindType      ExportKind = "type"
	KindInterface ExportKind = "interface"
	KindConstant  ExportKind = "constant"
)

// Kinds lists every valid export kind in a fixed order.
func Kinds() []ExportKind {
	return []ExportKind{KindFunction, KindClass, KindType, KindInterface, KindConstant}
}

// KindStrings returns the valid kinds as plain strings, for schema enums.
func KindStrings() []string {
	kinds := Kinds()
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = string(k)
	}
	return out
}

// ValidKind reports whether s names a recognized export kind.
func ValidKind(s string) bool {
	for _, k := range Kinds() {
		if string(k) == s {
			return true
		}
	}
	return false
}

// CodeBlock is one fenced code region extracted from a document, in
// document order.
type CodeBlock struct {
	Language string `json:"language"`
	Code     string `json:"code"`
}

// DocumentEntry is one documentation file from the docs cache.
type DocumentEntry struct {
	Name       string            // Title from metadata, or the file stem.
	Path       string            // Cache-relative slash path; unique key.
	RawContent string            // Full file text including the header block.
	Metadata   map[string]string // Parsed from the leading delimited header.
	CodeBlocks []CodeBlock       // Fenced regions, document order preserved.
}

// Category returns the leading path element of the document's path, which
// encodes its category ("tutorials/quickstart.md" -> "tutorials"). Documents
// at the cache root fall into "general".
func (d *DocumentEntry) Category() string {
	dir := path.Dir(d.Path)
	if dir == "." || dir == "/" {
		return "general"
	}
	if i := strings.IndexByte(dir, '/'); i >= 0 {
		return dir[:i]
	}
	return dir
}

// ExportRecord is one exported symbol found in an SDK source file. The
// SourceFile field is a non-owning path reference into the store; duplicate
// names across files are legal and name lookup returns all of them.
type ExportRecord struct {
	Name       string     `json:"name"`
	Kind       ExportKind `json:"kind"`
	SourceFile string     `json:"source_file"`
}

// SourceFile is the full text of one SDK source file, keyed by its
// package-root-relative path.
type SourceFile struct {
	Path string
	Text string
}

// PackageDescriptor describes one SDK package plus aggregate export
// statistics derived at load time.
type PackageDescriptor struct {
	Name         string             `json:"name"`
	Version      string             `json:"version"`
	Description  string             `json:"description,omitempty"`
	Dependencies map[string]string  `json:"dependencies,omitempty"`
	Root         string             `json:"-"` // e.g. "packages/core"
	ExportCounts map[ExportKind]int `json:"export_counts"`
}
