// Copyright 2026 The Push Chain MCP Server Authors
// SPDX-License-Identifier: MIT

// Package refresh regenerates the on-disk docs cache from the upstream
// repository. It runs out of process from the server: a running server keeps
// its loaded snapshot until restart, which is an accepted staleness window.
package refresh

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
)

// ManifestName is the cache manifest file written next to the fetched docs.
const ManifestName = "manifest.toml"

// Manifest records the provenance of one docs cache snapshot.
type Manifest struct {
	SnapshotID string    `toml:"snapshot_id"`
	FetchedAt  time.Time `toml:"fetched_at"`
	Source     string    `toml:"source"`
	FileCount  int       `toml:"file_count"`
}

// WriteManifest writes the manifest into dir, stamping a fresh snapshot id
// and fetch time when unset.
func WriteManifest(dir string, m Manifest) error {
	if m.SnapshotID == "" {
		m.SnapshotID = uuid.NewString()
	}
	if m.FetchedAt.IsZero() {
		m.FetchedAt = time.Now().UTC()
	}
	f, err := os.Create(filepath.Join(dir, ManifestName)) //nolint:gosec // operator-provided cache dir
	if err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	defer f.Close() //nolint:errcheck // best-effort close after encode

	if err := toml.NewEncoder(f).Encode(m); err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	return nil
}

// ReadManifest reads the manifest from dir. A missing manifest returns
// (nil, nil): the cache predates manifests or was assembled by hand.
func ReadManifest(dir string) (*Manifest, error) {
	var m Manifest
	_, err := toml.DecodeFile(filepath.Join(dir, ManifestName), &m)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return &m, nil
}
