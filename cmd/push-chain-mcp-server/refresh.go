// Copyright 2026 The Push Chain MCP Server Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kshitij-hash/push-chain-mcp-server/internal/config"
	"github.com/kshitij-hash/push-chain-mcp-server/internal/refresh"
)

// Refresh-specific flag values.
var (
	refreshStrategy string
	refreshRef      string
)

// refreshCmd regenerates the docs cache from the upstream repository. A
// running server keeps its loaded snapshot until restarted.
var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Regenerate the docs cache from the upstream repository",
	Long: `Fetch the documentation tree from the configured GitHub repository
into the local docs cache and stamp a manifest with the snapshot id and fetch
time. The api strategy uses the GitHub contents API (set GITHUB_TOKEN to
raise rate limits); the git strategy shallow-clones the repository instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(configDir)
		if err != nil {
			return exitError(ExitInvalidArgs, "loading config: %v", err)
		}
		if err := os.MkdirAll(cfg.DocsPath, 0o750); err != nil {
			return exitError(ExitInvalidArgs, "creating docs cache dir: %v", err)
		}

		var (
			count  int
			source string
		)
		switch refreshStrategy {
		case "api":
			f, err := refresh.NewAPIFetcher(config.GitHubToken(), cfg.DocsRepo, cfg.DocsRepoDir, refreshRef)
			if err != nil {
				return exitError(ExitInvalidArgs, "%v", err)
			}
			count, err = f.FetchToDir(cmd.Context(), cfg.DocsPath)
			if err != nil {
				return exitError(ExitFetchError, "fetching docs: %v", err)
			}
			source = f.Source()
		case "git":
			f, err := refresh.NewGitFetcher(cfg.DocsRepo, cfg.DocsRepoDir)
			if err != nil {
				return exitError(ExitInvalidArgs, "%v", err)
			}
			count, err = f.FetchToDir(cmd.Context(), cfg.DocsPath)
			if err != nil {
				return exitError(ExitFetchError, "fetching docs: %v", err)
			}
			source = f.Source()
		default:
			return exitError(ExitInvalidArgs, "unknown strategy %q (supported: api, git)", refreshStrategy)
		}

		if err := refresh.WriteManifest(cfg.DocsPath, refresh.Manifest{
			Source:    source,
			FileCount: count,
		}); err != nil {
			return exitError(ExitFetchError, "%v", err)
		}

		if noColor {
			color.NoColor = true
		}
		fmt.Printf("%s fetched %d documents from %s into %s\n",
			color.GreenString("✓"), count, source, cfg.DocsPath)
		return nil
	},
}

func init() {
	refreshCmd.Flags().StringVar(&refreshStrategy, "strategy", "api", "fetch strategy: api or git")
	refreshCmd.Flags().StringVar(&refreshRef, "ref", "", "git ref to fetch (api strategy; default branch when empty)")
}
