// Copyright 2026 The Push Chain MCP Server Authors
// SPDX-License-Identifier: MIT

package refresh

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/google/go-github/v68/github"
	"golang.org/x/sync/errgroup"

	"github.com/kshitij-hash/push-chain-mcp-server/internal/model"
	"github.com/kshitij-hash/push-chain-mcp-server/internal/store"
)

// downloadConcurrency bounds parallel content downloads against the API.
const downloadConcurrency = 4

// APIFetcher pulls the docs tree through the GitHub contents API. It
// implements docscache.Fetcher and backs the refresh command's default
// strategy.
type APIFetcher struct {
	api   *github.Client
	owner string
	repo  string
	dir   string
	ref   string
}

// NewAPIFetcher creates a fetcher for the "owner/name" repository's docs
// directory. token may be empty; ref may be empty for the default branch.
func NewAPIFetcher(token, repo, dir, ref string) (*APIFetcher, error) {
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || owner == "" || name == "" {
		return nil, fmt.Errorf("docs repo must be owner/name, got %q", repo)
	}
	api := github.NewClient(nil)
	if token != "" {
		api = api.WithAuthToken(token)
	}
	return &APIFetcher{api: api, owner: owner, repo: name, dir: dir, ref: ref}, nil
}

// Source describes the fetch origin for the cache manifest.
func (f *APIFetcher) Source() string {
	ref := f.ref
	if ref == "" {
		ref = "HEAD"
	}
	return fmt.Sprintf("%s/%s/%s@%s", f.owner, f.repo, f.dir, ref)
}

type remoteFile struct {
	rel     string // Path relative to the docs directory.
	content string
}

// Fetch downloads and parses the full docs tree into DocumentEntry records.
func (f *APIFetcher) Fetch(ctx context.Context) ([]*model.DocumentEntry, error) {
	files, err := f.fetchFiles(ctx)
	if err != nil {
		return nil, err
	}
	docs := make([]*model.DocumentEntry, 0, len(files))
	for _, rf := range files {
		docs = append(docs, store.ParseDocument(rf.rel, rf.content))
	}
	return docs, nil
}

// FetchToDir downloads the docs tree into dest, preserving relative paths,
// and returns the number of files written.
func (f *APIFetcher) FetchToDir(ctx context.Context, dest string) (int, error) {
	files, err := f.fetchFiles(ctx)
	if err != nil {
		return 0, err
	}
	for _, rf := range files {
		target := filepath.Join(dest, filepath.FromSlash(rf.rel))
		if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
			return 0, err
		}
		if err := os.WriteFile(target, []byte(rf.content), 0o600); err != nil {
			return 0, err
		}
	}
	return len(files), nil
}

// fetchFiles lists the docs tree and downloads every markdown file, bounding
// concurrency with an errgroup.
func (f *APIFetcher) fetchFiles(ctx context.Context) ([]remoteFile, error) {
	paths, err := f.listMarkdown(ctx, f.dir)
	if err != nil {
		return nil, err
	}

	var (
		mu    sync.Mutex
		files []remoteFile
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(downloadConcurrency)
	for _, p := range paths {
		g.Go(func() error {
			content, err := f.download(gctx, p)
			if err != nil {
				return err
			}
			rel := strings.TrimPrefix(p, f.dir+"/")
			mu.Lock()
			files = append(files, remoteFile{rel: rel, content: content})
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Downloads complete in arbitrary order; keep snapshot order stable.
	sort.Slice(files, func(i, j int) bool { return files[i].rel < files[j].rel })
	return files, nil
}

// listMarkdown walks the repository directory tree and collects .md/.mdx
// paths.
func (f *APIFetcher) listMarkdown(ctx context.Context, dir string) ([]string, error) {
	_, entries, _, err := f.api.Repositories.GetContents(ctx, f.owner, f.repo, dir,
		&github.RepositoryContentGetOptions{Ref: f.ref})
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		switch entry.GetType() {
		case "dir":
			sub, err := f.listMarkdown(ctx, entry.GetPath())
			if err != nil {
				return nil, err
			}
			paths = append(paths, sub...)
		case "file":
			ext := strings.ToLower(filepath.Ext(entry.GetName()))
			if ext == ".md" || ext == ".mdx" {
				paths = append(paths, entry.GetPath())
			}
		}
	}
	return paths, nil
}

func (f *APIFetcher) download(ctx context.Context, path string) (string, error) {
	fc, _, _, err := f.api.Repositories.GetContents(ctx, f.owner, f.repo, path,
		&github.RepositoryContentGetOptions{Ref: f.ref})
	if err != nil {
		return "", fmt.Errorf("downloading %s: %w", path, err)
	}
	content, err := fc.GetContent()
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", path, err)
	}
	return content, nil
}
