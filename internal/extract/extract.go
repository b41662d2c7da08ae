// Copyright 2026 The Push Chain MCP Server Authors
// SPDX-License-Identifier: MIT

// Package extract pulls exported symbols and definition snippets out of
// TypeScript source text using regular expressions. This is a best-effort
// heuristic, deliberately not a parser: malformed source degrades to the
// line-window or placeholder fallbacks instead of failing.
package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kshitij-hash/push-chain-mcp-server/internal/model"
)

const (
	// maxDefinitionSpan caps a delimiter-extracted definition snippet.
	maxDefinitionSpan = 1200

	// fallbackWindowLines is the size of the raw line window used when
	// delimiter matching fails.
	fallbackWindowLines = 30
)

// declPattern pairs an export kind with the declaration regex that finds it.
type declPattern struct {
	kind model.ExportKind
	re   *regexp.Regexp
}

// Declaration patterns, applied in order. Enums come before const/let/var so
// "export const enum Foo" is classified as a type, not a constant named
// "enum".
var declPatterns = []declPattern{
	{model.KindFunction, regexp.MustCompile(`(?m)^export\s+(?:default\s+)?(?:async\s+)?function\s+([A-Za-z_$][\w$]*)`)},
	{model.KindClass, regexp.MustCompile(`(?m)^export\s+(?:default\s+)?(?:abstract\s+)?class\s+([A-Za-z_$][\w$]*)`)},
	{model.KindInterface, regexp.MustCompile(`(?m)^export\s+interface\s+([A-Za-z_$][\w$]*)`)},
	{model.KindType, regexp.MustCompile(`(?m)^export\s+(?:const\s+)?enum\s+([A-Za-z_$][\w$]*)`)},
	{model.KindType, regexp.MustCompile(`(?m)^export\s+type\s+([A-Za-z_$][\w$]*)`)},
	{model.KindConstant, regexp.MustCompile(`(?m)^export\s+(?:const|let|var)\s+([A-Za-z_$][\w$]*)`)},
}

// topLevelExport matches the start of any top-level export declaration; used
// as the end delimiter when extracting a definition span.
var topLevelExport = regexp.MustCompile(`(?m)^export\s`)

// Exports scans text and returns every exported symbol, in source order per
// kind pattern. path is recorded as the non-owning SourceFile reference.
func Exports(path, text string) []model.ExportRecord {
	var records []model.ExportRecord
	seen := make(map[string]bool)
	for _, p := range declPatterns {
		for _, m := range p.re.FindAllStringSubmatch(text, -1) {
			name := m[1]
			if name == "enum" {
				// "export const enum" partially matched by the constant
				// pattern; the enum pattern already recorded it.
				continue
			}
			key := name + "\x00" + string(p.kind)
			if seen[key] {
				continue
			}
			seen[key] = true
			records = append(records, model.ExportRecord{
				Name:       name,
				Kind:       p.kind,
				SourceFile: path,
			})
		}
	}
	return records
}

// Definition extracts a best-effort source snippet for the named export.
// Three tiers: declaration keyword to the next top-level export (capped),
// then a raw line window starting at the first line containing both "export"
// and the name, then a found-but-unextractable placeholder. Never fails.
func Definition(name string, kind model.ExportKind, path, text string) string {
	if snippet := delimiterSnippet(name, kind, text); snippet != "" {
		return snippet
	}
	if snippet := lineWindowSnippet(name, text); snippet != "" {
		return snippet
	}
	return Placeholder(name, path)
}

// Placeholder is the tier-three result for a symbol whose definition could
// not be extracted.
func Placeholder(name, path string) string {
	return fmt.Sprintf("// %s is declared in %s but its definition could not be extracted.\n// Use get_source_file with path %q to view the full source.", name, path, path)
}

// declRegexFor builds a regex anchored on the specific symbol name.
func declRegexFor(name string, kind model.ExportKind) *regexp.Regexp {
	quoted := regexp.QuoteMeta(name)
	var body string
	switch kind {
	case model.KindFunction:
		body = `(?:default\s+)?(?:async\s+)?function\s+` + quoted
	case model.KindClass:
		body = `(?:default\s+)?(?:abstract\s+)?class\s+` + quoted
	case model.KindInterface:
		body = `interface\s+` + quoted
	case model.KindType:
		body = `(?:type|(?:const\s+)?enum)\s+` + quoted
	case model.KindConstant:
		body = `(?:const|let|var)\s+` + quoted
	default:
		body = quoted
	}
	return regexp.MustCompile(`(?m)^export\s+` + body + `\b`)
}

func delimiterSnippet(name string, kind model.ExportKind, text string) string {
	loc := declRegexFor(name, kind).FindStringIndex(text)
	if loc == nil {
		return ""
	}
	rest := text[loc[0]:]
	end := len(rest)
	// Skip past the matched declaration itself before hunting for the next
	// top-level export.
	if next := topLevelExport.FindStringIndex(rest[loc[1]-loc[0]:]); next != nil {
		end = loc[1] - loc[0] + next[0]
	}
	if end > maxDefinitionSpan {
		end = maxDefinitionSpan
	}
	return strings.TrimRight(rest[:end], " \t\n")
}

func lineWindowSnippet(name string, text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.Contains(line, "export") && strings.Contains(line, name) {
			end := i + fallbackWindowLines
			if end > len(lines) {
				end = len(lines)
			}
			return strings.TrimRight(strings.Join(lines[i:end], "\n"), " \t\n")
		}
	}
	return ""
}
