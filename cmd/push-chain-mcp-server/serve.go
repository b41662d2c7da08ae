// Copyright 2026 The Push Chain MCP Server Authors
// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/kshitij-hash/push-chain-mcp-server/internal/config"
	"github.com/kshitij-hash/push-chain-mcp-server/internal/docscache"
	"github.com/kshitij-hash/push-chain-mcp-server/internal/lookup"
	"github.com/kshitij-hash/push-chain-mcp-server/internal/mcpserver"
	"github.com/kshitij-hash/push-chain-mcp-server/internal/model"
	"github.com/kshitij-hash/push-chain-mcp-server/internal/refresh"
	"github.com/kshitij-hash/push-chain-mcp-server/internal/store"
	"github.com/kshitij-hash/push-chain-mcp-server/internal/upstream"
)

const configFileHint = config.FileName

// serveCmd runs the MCP server over stdio.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server over stdio",
	Long: `Start an MCP server on stdin/stdout exposing the Push Chain tools:
  - list_documents / get_document / search_docs
  - get_export / search_sdk / get_source_file
  - list_all_exports / list_classes / list_components / get_package_info

SDK data is required: the server refuses to start without it. The docs cache
is best-effort: when missing, the server starts with zero documents and a
warning.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(configDir)
		if err != nil {
			return exitError(ExitInvalidArgs, "loading config: %v", err)
		}

		// SDK artifacts are required; serving partial data silently is
		// worse than not serving.
		files, exports, packages, f := store.LoadSDK(cfg.SDKPath)
		if f != nil {
			return exitError(ExitDataError, "%s", f.Message)
		}

		docs := loadDocsSnapshot(cmd, cfg)

		st := store.New(docs, files, exports, packages)

		var remote lookup.RemoteSearcher
		if cfg.RemoteFallback {
			client, err := upstream.NewClient(config.GitHubToken(), cfg.DocsRepo, cfg.DocsRepoDir)
			if err != nil {
				return exitError(ExitInvalidArgs, "remote fallback: %v", err)
			}
			remote = client
		}
		engine := lookup.NewEngine(st, cfg.ContentSearchThreshold, remote)

		srv := mcpserver.New(Version, engine, mcpserver.Options{
			CharacterLimit:       cfg.CharacterLimit,
			StrictProtocolErrors: cfg.StrictProtocolErrors,
		})

		slog.Info("server ready",
			"documents", len(docs),
			"source_files", len(files),
			"exports", len(exports),
			"packages", len(packages))
		return srv.Run(cmd.Context(), &mcp.StdioTransport{})
	},
}

// loadDocsSnapshot builds the documentation snapshot through the
// pull-through cache: the on-disk cache seeds it, the manifest supplies the
// fetch time, and a stale snapshot is refetched from the upstream when a
// fetcher can be constructed. Every failure on this path degrades rather
// than aborts.
func loadDocsSnapshot(cmd *cobra.Command, cfg *config.Config) []*model.DocumentEntry {
	docs, err := store.LoadDocs(cfg.DocsPath)
	if err != nil {
		slog.Warn("docs cache unreadable, serving zero documents", "error", err)
		docs = nil
	}

	fetchedAt := time.Now()
	if m, err := refresh.ReadManifest(cfg.DocsPath); err == nil && m != nil {
		fetchedAt = m.FetchedAt
	}

	var fetcher docscache.Fetcher
	if api, err := refresh.NewAPIFetcher(config.GitHubToken(), cfg.DocsRepo, cfg.DocsRepoDir, ""); err == nil {
		fetcher = api
	}

	cache := docscache.New(docs, fetchedAt, cfg.TTL(), fetcher, nil)
	docs, _ = cache.Get(cmd.Context())
	return docs
}
