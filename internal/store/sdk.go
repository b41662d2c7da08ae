// Copyright 2026 The Push Chain MCP Server Authors
// SPDX-License-Identifier: MIT

package store

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/kshitij-hash/push-chain-mcp-server/internal/extract"
	"github.com/kshitij-hash/push-chain-mcp-server/internal/failure"
	"github.com/kshitij-hash/push-chain-mcp-server/internal/model"
)

// packageManifest is the subset of package.json the SDK loader consumes.
type packageManifest struct {
	Name         string            `json:"name"`
	Version      string            `json:"version"`
	Description  string            `json:"description"`
	Dependencies map[string]string `json:"dependencies"`
}

// LoadSDK reads every package under <root>/packages: the package manifest
// becomes a PackageDescriptor, and each source file under src/ is stored with
// its exports extracted. Unlike the docs cache, SDK data is required: a
// missing or corrupt layout is a data-integrity failure and the caller must
// refuse to serve.
func LoadSDK(root string) ([]*model.SourceFile, []model.ExportRecord, []*model.PackageDescriptor, *failure.Failure) {
	packagesDir := filepath.Join(root, "packages")
	entries, err := os.ReadDir(packagesDir)
	if err != nil {
		return nil, nil, nil, failure.Integrityf("SDK data directory %q is not readable: %v", packagesDir, err)
	}

	var (
		files    []*model.SourceFile
		exports  []model.ExportRecord
		packages []*model.PackageDescriptor
	)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		pkgRoot := "packages/" + entry.Name()
		desc, ferr := loadManifest(filepath.Join(packagesDir, entry.Name()), pkgRoot, entry.Name())
		if ferr != nil {
			return nil, nil, nil, ferr
		}

		pkgFiles, ferr := loadSources(root, pkgRoot)
		if ferr != nil {
			return nil, nil, nil, ferr
		}
		for _, f := range pkgFiles {
			recs := extract.Exports(f.Path, f.Text)
			for _, r := range recs {
				desc.ExportCounts[r.Kind]++
			}
			exports = append(exports, recs...)
		}
		files = append(files, pkgFiles...)
		packages = append(packages, desc)
	}

	if len(packages) == 0 {
		return nil, nil, nil, failure.Integrityf("no packages found under %q", packagesDir)
	}
	return files, exports, packages, nil
}

func loadManifest(pkgDir, pkgRoot, dirName string) (*model.PackageDescriptor, *failure.Failure) {
	desc := &model.PackageDescriptor{
		Name:         "@pushchain/" + dirName,
		Root:         pkgRoot,
		ExportCounts: make(map[model.ExportKind]int),
	}

	data, err := os.ReadFile(filepath.Join(pkgDir, "package.json")) //nolint:gosec // operator-provided SDK dir
	if err != nil {
		return nil, failure.Integrityf("package %q has no readable package.json: %v", pkgRoot, err)
	}
	var m packageManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, failure.Integrityf("package.json for %q is corrupt: %v", pkgRoot, err)
	}

	if m.Name != "" {
		desc.Name = m.Name
	}
	desc.Version = normalizeVersion(m.Version)
	desc.Description = m.Description
	desc.Dependencies = m.Dependencies
	return desc, nil
}

// normalizeVersion keeps the manifest's version string when it is valid
// semver (with or without the leading v) and blanks it otherwise, so
// downstream consumers never compare garbage.
func normalizeVersion(v string) string {
	if v == "" {
		return ""
	}
	if semver.IsValid("v" + strings.TrimPrefix(v, "v")) {
		return strings.TrimPrefix(v, "v")
	}
	return ""
}

// loadSources reads every .ts/.tsx file under the package's src directory.
// WalkDir visits lexically, so load order is deterministic across runs.
func loadSources(root, pkgRoot string) ([]*model.SourceFile, *failure.Failure) {
	srcDir := filepath.Join(root, filepath.FromSlash(pkgRoot), "src")
	if _, err := os.Stat(srcDir); err != nil {
		// Packages without a src tree (pure config packages) are legal.
		return nil, nil
	}

	var files []*model.SourceFile
	err := filepath.WalkDir(srcDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == "node_modules" {
				return filepath.SkipDir
			}
			return nil
		}
		ext := strings.ToLower(filepath.Ext(p))
		if ext != ".ts" && ext != ".tsx" {
			return nil
		}
		if strings.HasSuffix(p, ".d.ts") {
			return nil
		}
		data, err := os.ReadFile(p) //nolint:gosec // walked from operator-provided root
		if err != nil {
			return fmt.Errorf("reading %s: %w", p, err)
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		files = append(files, &model.SourceFile{
			Path: filepath.ToSlash(rel),
			Text: string(data),
		})
		return nil
	})
	if err != nil {
		return nil, failure.Integrityf("reading sources for %q: %v", pkgRoot, err)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}
