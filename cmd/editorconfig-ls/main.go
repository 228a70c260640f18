package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/noritaka1166/editorconfig-ls/cmd/editorconfig-ls/commands"
	"github.com/noritaka1166/editorconfig-ls/config"
	"github.com/noritaka1166/editorconfig-ls/logger"
)

var rootCmd = &cobra.Command{
	Use:   "editorconfig-ls",
	Short: "Language server for EditorConfig files",
	Long: `editorconfig-ls - Language server for EditorConfig files.

Provides context-aware completion for .editorconfig property names and
values, plus hover documentation, over the Language Server Protocol.

Available commands:
  serve       - Start the language server (stdio or WebSocket)
  properties  - List the known EditorConfig properties
  version     - Show version information

Examples:
  editorconfig-ls serve                 # Serve LSP over stdio
  editorconfig-ls serve --ws :9670      # Serve LSP over WebSocket
  editorconfig-ls properties            # Dump the property catalog`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		level := cfg.Log.Level
		if verbosity, _ := cmd.Flags().GetCount("verbose"); verbosity > 0 {
			level = "debug"
		}

		if err := logger.Initialize(cfg.Log.JSON, level); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")

	rootCmd.AddCommand(commands.ServeCmd)
	rootCmd.AddCommand(commands.PropertiesCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
