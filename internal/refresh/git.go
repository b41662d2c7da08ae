// Copyright 2026 The Push Chain MCP Server Authors
// SPDX-License-Identifier: MIT

package refresh

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v5"
)

// GitFetcher clones the docs repository and copies the docs tree out of the
// working copy. Useful where the contents API is rate limited or unreachable
// but git access works.
type GitFetcher struct {
	repoURL string
	dir     string
}

// NewGitFetcher creates a fetcher cloning the "owner/name" repository over
// HTTPS.
func NewGitFetcher(repo, dir string) (*GitFetcher, error) {
	if !strings.Contains(repo, "/") {
		return nil, fmt.Errorf("docs repo must be owner/name, got %q", repo)
	}
	return &GitFetcher{
		repoURL: "https://github.com/" + repo + ".git",
		dir:     dir,
	}, nil
}

// Source describes the fetch origin for the cache manifest.
func (f *GitFetcher) Source() string {
	return f.repoURL + "/" + f.dir
}

// FetchToDir shallow-clones the repository into a temp directory, copies
// every markdown file under the docs tree into dest, and returns the number
// of files written.
func (f *GitFetcher) FetchToDir(ctx context.Context, dest string) (int, error) {
	tmp, err := os.MkdirTemp("", "pushchain-docs-*")
	if err != nil {
		return 0, err
	}
	defer os.RemoveAll(tmp) //nolint:errcheck // best-effort temp cleanup

	_, err = git.PlainCloneContext(ctx, tmp, false, &git.CloneOptions{
		URL:          f.repoURL,
		Depth:        1,
		SingleBranch: true,
	})
	if err != nil {
		return 0, fmt.Errorf("cloning %s: %w", f.repoURL, err)
	}

	srcDir := filepath.Join(tmp, filepath.FromSlash(f.dir))
	count := 0
	err = filepath.WalkDir(srcDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(p))
		if ext != ".md" && ext != ".mdx" {
			return nil
		}
		rel, err := filepath.Rel(srcDir, p)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(p) //nolint:gosec // path walked from our own clone
		if err != nil {
			return err
		}
		target := filepath.Join(dest, rel)
		if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
			return err
		}
		if err := os.WriteFile(target, data, 0o600); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("copying docs tree: %w", err)
	}
	return count, nil
}
