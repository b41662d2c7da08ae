package main

import (
	"github.com/spf13/cobra"

	pclog "github.com/kshitij-hash/push-chain-mcp-server/internal/log"
)

// Global flag values.
var (
	verbose   bool
	quiet     bool
	noColor   bool
	configDir string
)

// rootCmd is the base command for push-chain-mcp-server.
var rootCmd = &cobra.Command{
	Use:   "push-chain-mcp-server",
	Short: "Serve Push Chain docs and SDK data to AI agents over MCP",
	Long: `push-chain-mcp-server exposes Push Chain documentation and SDK
introspection data as Model Context Protocol tools: exact-name export lookup,
keyword search with context windows, document retrieval, and package
statistics. All data is loaded once at startup from static artifacts; use the
refresh command to regenerate the docs cache between runs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		pclog.Setup(verbose, quiet)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "directory containing "+configFileHint)

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}
