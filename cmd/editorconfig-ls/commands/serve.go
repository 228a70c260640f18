package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/noritaka1166/editorconfig-ls/config"
	"github.com/noritaka1166/editorconfig-ls/errors"
	"github.com/noritaka1166/editorconfig-ls/langserver"
	"github.com/noritaka1166/editorconfig-ls/logger"
	"github.com/noritaka1166/editorconfig-ls/registry"
)

// ServeCmd starts the language server.
var ServeCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"server"},
	Short:   "Start the EditorConfig language server",
	Long: `Start the language server. By default the protocol is served over
stdio, which is how editors spawn it. With --ws the server instead listens
for WebSocket connections, one LSP session per connection.`,
	RunE: runServe,
}

var serveWebSocketAddr string

func init() {
	ServeCmd.Flags().StringVar(&serveWebSocketAddr, "ws", "", "Serve over WebSocket on this address instead of stdio (e.g. :9670, or \"-\" for the configured address)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	log := logger.Named("langserver")
	handler := langserver.NewHandler(registry.Default(), log)
	srv := langserver.NewServer(handler, log)

	if serveWebSocketAddr == "" {
		// stdio transport: no banner, stdout belongs to the protocol.
		return srv.RunStdio()
	}

	addr := serveWebSocketAddr
	if addr == "-" {
		addr = cfg.Server.WebSocketAddr
	}

	pterm.Info.Printf("EditorConfig language server listening on ws://%s/lsp\n", addr)
	pterm.Info.Println("Press Ctrl+C to stop")

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.ListenWebSocket(addr)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return errors.Wrap(err, "server failed")
	case sig := <-sigChan:
		pterm.Info.Printf("Received %s, shutting down\n", sig)
		return nil
	}
}
