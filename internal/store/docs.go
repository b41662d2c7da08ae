// Copyright 2026 The Push Chain MCP Server Authors
// SPDX-License-Identifier: MIT

package store

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kshitij-hash/push-chain-mcp-server/internal/model"
)

// fencedBlock captures fenced code regions: language tag, then body up to the
// closing fence. Non-greedy so adjacent blocks stay separate.
var fencedBlock = regexp.MustCompile("(?ms)^```([A-Za-z0-9_+-]*)[ \t]*\r?\n(.*?)^```")

// frontmatterDelim is the header-block delimiter line.
const frontmatterDelim = "---"

// LoadDocs reads every .md/.mdx file under dir into DocumentEntry records.
// A missing directory is not an error: documentation is best-effort, so it
// degrades to an empty set with a warning. Individual unreadable files are
// skipped with a warning; a duplicate path is a corrupt-cache condition and
// is reported as an error.
func LoadDocs(dir string) ([]*model.DocumentEntry, error) {
	if _, err := os.Stat(dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Warn("docs cache missing, serving zero documents", "dir", dir)
			return nil, nil
		}
		return nil, fmt.Errorf("docs cache: %w", err)
	}

	var paths []string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(p))
		if ext == ".md" || ext == ".mdx" {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking docs cache: %w", err)
	}
	sort.Strings(paths)

	seen := make(map[string]bool, len(paths))
	docs := make([]*model.DocumentEntry, 0, len(paths))
	for _, p := range paths {
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return nil, err
		}
		rel = filepath.ToSlash(rel)
		if seen[rel] {
			return nil, fmt.Errorf("duplicate document path %q in docs cache", rel)
		}
		seen[rel] = true

		data, err := os.ReadFile(p) //nolint:gosec // operator-provided cache dir
		if err != nil {
			slog.Warn("skipping unreadable document", "path", rel, "error", err)
			continue
		}
		docs = append(docs, ParseDocument(rel, string(data)))
	}
	return docs, nil
}

// ParseDocument builds a DocumentEntry from raw file content: the leading
// delimited header block becomes metadata, fenced regions become code blocks
// in document order, and the name comes from the "title" metadata key or the
// file stem.
func ParseDocument(path, content string) *model.DocumentEntry {
	meta := parseFrontmatter(content)

	name := meta["title"]
	if name == "" {
		base := filepath.Base(path)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	var blocks []model.CodeBlock
	for _, m := range fencedBlock.FindAllStringSubmatch(content, -1) {
		blocks = append(blocks, model.CodeBlock{Language: m[1], Code: m[2]})
	}

	return &model.DocumentEntry{
		Name:       name,
		Path:       path,
		RawContent: content,
		Metadata:   meta,
		CodeBlocks: blocks,
	}
}

// parseFrontmatter extracts the leading "---" delimited header block as a
// flat string map. Missing or malformed headers yield an empty map; a
// malformed header never fails the whole document.
func parseFrontmatter(content string) map[string]string {
	meta := make(map[string]string)
	rest, ok := strings.CutPrefix(content, frontmatterDelim+"\n")
	if !ok {
		rest, ok = strings.CutPrefix(content, frontmatterDelim+"\r\n")
		if !ok {
			return meta
		}
	}
	end := strings.Index(rest, "\n"+frontmatterDelim)
	if end < 0 {
		return meta
	}

	var raw map[string]any
	if err := yaml.Unmarshal([]byte(rest[:end]), &raw); err != nil {
		slog.Debug("malformed document header block", "error", err)
		return meta
	}
	for k, v := range raw {
		meta[k] = fmt.Sprintf("%v", v)
	}
	return meta
}
