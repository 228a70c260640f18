package langserver

import (
	"net/http"

	"github.com/gorilla/websocket"
	protocol "github.com/tliron/glsp/protocol_3_16"
	glspserver "github.com/tliron/glsp/server"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Local tooling endpoint; any editor frontend may connect.
		return true
	},
}

// Server runs the LSP protocol over a transport, dispatching to a Handler.
type Server struct {
	handler *Handler
	logger  *zap.SugaredLogger
}

// NewServer creates a server around the given handler.
func NewServer(handler *Handler, logger *zap.SugaredLogger) *Server {
	return &Server{handler: handler, logger: logger}
}

// protocolHandler wires the handler's methods into the GLSP dispatch table.
func (s *Server) protocolHandler() *protocol.Handler {
	return &protocol.Handler{
		Initialize:             s.handler.Initialize,
		Initialized:            s.handler.Initialized,
		Shutdown:               s.handler.Shutdown,
		TextDocumentDidOpen:    s.handler.TextDocumentDidOpen,
		TextDocumentDidChange:  s.handler.TextDocumentDidChange,
		TextDocumentDidClose:   s.handler.TextDocumentDidClose,
		TextDocumentCompletion: s.handler.TextDocumentCompletion,
		CompletionItemResolve:  s.handler.CompletionItemResolve,
		TextDocumentHover:      s.handler.TextDocumentHover,
	}
}

// RunStdio serves the protocol over stdin/stdout. This is the transport
// editors spawn the binary with; it blocks until the client disconnects.
func (s *Server) RunStdio() error {
	s.logger.Infow("Serving LSP over stdio")
	glspServer := glspserver.NewServer(s.protocolHandler(), ServerName, false)
	return glspServer.RunStdio()
}

// HandleWebSocket upgrades an HTTP request and serves the protocol over the
// resulting WebSocket connection. Blocks until the connection closes.
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	s.logger.Infow("LSP WebSocket connection request", "remote", r.RemoteAddr)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Errorw("Failed to upgrade WebSocket", "error", err)
		return
	}

	glspServer := glspserver.NewServer(s.protocolHandler(), ServerName, false)

	s.logger.Infow("Serving LSP over WebSocket", "remote", r.RemoteAddr)
	glspServer.ServeWebSocket(conn)
	s.logger.Infow("LSP WebSocket connection closed", "remote", r.RemoteAddr)
}

// ListenWebSocket serves the WebSocket transport on the given address until
// the listener fails or the process exits.
func (s *Server) ListenWebSocket(addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/lsp", s.HandleWebSocket)

	s.logger.Infow("LSP WebSocket server listening", "addr", addr, "path", "/lsp")
	return http.ListenAndServe(addr, mux)
}
