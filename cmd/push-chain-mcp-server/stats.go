// Copyright 2026 The Push Chain MCP Server Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kshitij-hash/push-chain-mcp-server/internal/config"
	"github.com/kshitij-hash/push-chain-mcp-server/internal/model"
	"github.com/kshitij-hash/push-chain-mcp-server/internal/refresh"
	"github.com/kshitij-hash/push-chain-mcp-server/internal/store"
)

// statsCmd prints a summary of the loaded data without starting a server.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the local docs and SDK data",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(configDir)
		if err != nil {
			return exitError(ExitInvalidArgs, "loading config: %v", err)
		}
		if noColor {
			color.NoColor = true
		}

		files, exports, packages, f := store.LoadSDK(cfg.SDKPath)
		if f != nil {
			return exitError(ExitDataError, "%s", f.Message)
		}
		docs, err := store.LoadDocs(cfg.DocsPath)
		if err != nil {
			return exitError(ExitDataError, "loading docs: %v", err)
		}

		bold := color.New(color.Bold)
		bold.Println("SDK packages")
		sort.Slice(packages, func(i, j int) bool { return packages[i].Name < packages[j].Name })
		for _, pkg := range packages {
			fmt.Printf("  %s %s\n", color.CyanString("%-32s", pkg.Name), pkg.Version)
			for _, kind := range model.Kinds() {
				if n := pkg.ExportCounts[kind]; n > 0 {
					fmt.Printf("    %-12s %d\n", kind, n)
				}
			}
		}

		fmt.Println()
		bold.Println("Totals")
		fmt.Printf("  %-14s %d\n", "packages", len(packages))
		fmt.Printf("  %-14s %d\n", "source files", len(files))
		fmt.Printf("  %-14s %d\n", "exports", len(exports))
		fmt.Printf("  %-14s %d\n", "documents", len(docs))

		if m, err := refresh.ReadManifest(cfg.DocsPath); err == nil && m != nil {
			fmt.Println()
			bold.Println("Docs snapshot")
			fmt.Printf("  %-14s %s\n", "id", m.SnapshotID)
			fmt.Printf("  %-14s %s\n", "fetched", m.FetchedAt.Format("2006-01-02 15:04:05 MST"))
			fmt.Printf("  %-14s %s\n", "source", m.Source)
		}
		return nil
	},
}
