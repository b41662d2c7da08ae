// Copyright 2026 The Push Chain MCP Server Authors
// SPDX-License-Identifier: MIT

// Package upstream talks to the upstream documentation repository on GitHub.
// It backs the search_docs remote fallback and maps transport failures to
// specific human-readable causes with suggested remedies.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"net"
	"path"
	"strings"

	"github.com/google/go-github/v68/github"

	"github.com/kshitij-hash/push-chain-mcp-server/internal/failure"
	"github.com/kshitij-hash/push-chain-mcp-server/internal/lookup"
)

// Client searches the upstream docs repository. It performs no retries; a
// failed call surfaces immediately.
type Client struct {
	api   *github.Client
	owner string
	repo  string
	dir   string
}

// NewClient creates a Client for the "owner/name" repository, scoped to the
// docs directory within it. token may be empty for anonymous access, which
// is subject to much lower rate limits.
func NewClient(token, repo, dir string) (*Client, error) {
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || owner == "" || name == "" {
		return nil, fmt.Errorf("docs repo must be owner/name, got %q", repo)
	}
	api := github.NewClient(nil)
	if token != "" {
		api = api.WithAuthToken(token)
	}
	return &Client{api: api, owner: owner, repo: name, dir: dir}, nil
}

// SearchDocs queries the GitHub code search API for documentation files
// matching the query, implementing lookup.RemoteSearcher.
func (c *Client) SearchDocs(ctx context.Context, query string) ([]lookup.DocMatch, *failure.Failure) {
	q := fmt.Sprintf("%s repo:%s/%s path:%s", query, c.owner, c.repo, c.dir)
	result, _, err := c.api.Search.Code(ctx, q, &github.SearchOptions{
		ListOptions: github.ListOptions{PerPage: 20},
	})
	if err != nil {
		return nil, classify(err)
	}

	var matches []lookup.DocMatch
	for _, item := range result.CodeResults {
		p := item.GetPath()
		rel := strings.TrimPrefix(p, c.dir+"/")
		base := path.Base(p)
		matches = append(matches, lookup.DocMatch{
			Name:     strings.TrimSuffix(base, path.Ext(base)),
			Path:     rel,
			Category: categoryOf(rel),
			Source:   "remote",
		})
	}
	return matches, nil
}

func categoryOf(rel string) string {
	if i := strings.IndexByte(rel, '/'); i > 0 {
		return rel[:i]
	}
	return "general"
}

// classify maps an upstream error to a specific cause and remedy: rate limit
// vs timeout vs generic.
func classify(err error) *failure.Failure {
	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	switch {
	case errors.As(err, &rateErr), errors.As(err, &abuseErr):
		return failure.Upstreamf(
			"Wait for the rate limit window to reset, or set GITHUB_TOKEN to raise the limit.",
			"upstream documentation source is rate limited")
	case errors.Is(err, context.DeadlineExceeded), isTimeout(err):
		return failure.Upstreamf(
			"The upstream source did not respond in time; retry the search.",
			"upstream documentation source timed out")
	default:
		return failure.Upstreamf(
			"Check network connectivity to github.com and retry.",
			"upstream documentation source failed: %v", err)
	}
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
