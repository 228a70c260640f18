// Package langserver exposes the completion engine over the Language
// Server Protocol. It keeps a cache of open documents fed by text
// synchronization notifications and answers completion, resolve, and hover
// requests from it.
package langserver

import (
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"go.uber.org/zap"

	"github.com/noritaka1166/editorconfig-ls/completion"
	"github.com/noritaka1166/editorconfig-ls/errors"
	"github.com/noritaka1166/editorconfig-ls/internal/util"
	"github.com/noritaka1166/editorconfig-ls/internal/version"
	"github.com/noritaka1166/editorconfig-ls/registry"
)

// ServerName identifies this server in the initialize handshake.
const ServerName = "EditorConfig Language Server"

// maxOpenDocuments bounds the document cache. A buggy client could open
// unlimited documents; this caps the risk.
const maxOpenDocuments = 100

// Handler implements the LSP protocol handlers for EditorConfig files,
// wrapping the completion engine.
type Handler struct {
	engine    *completion.Engine
	registry  *registry.Registry
	logger    *zap.SugaredLogger
	documents map[string]string // URI → document content
	mu        sync.RWMutex
}

// NewHandler creates a protocol handler over the given registry.
func NewHandler(reg *registry.Registry, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		engine:    completion.NewEngine(reg),
		registry:  reg,
		logger:    logger,
		documents: make(map[string]string),
	}
}

// Initialize handles the LSP initialize request.
func (h *Handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	h.logger.Infow("LSP client initializing",
		"client", params.ClientInfo,
		"capabilities", "completion, resolve, hover",
	)

	syncKind := protocol.TextDocumentSyncKindFull
	capabilities := protocol.ServerCapabilities{
		CompletionProvider: &protocol.CompletionOptions{
			ResolveProvider:   util.Ptr(true),
			TriggerCharacters: []string{"=", " "},
		},
		HoverProvider: &protocol.HoverOptions{},
		TextDocumentSync: &protocol.TextDocumentSyncOptions{
			OpenClose: util.Ptr(true),
			Change:    &syncKind,
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    ServerName,
			Version: util.Ptr(version.Version),
		},
	}, nil
}

// Initialized is called after the client receives the InitializeResult.
func (h *Handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	h.logger.Infow("LSP client initialized")
	return nil
}

// Shutdown handles the LSP shutdown request.
func (h *Handler) Shutdown(ctx *glsp.Context) error {
	h.logger.Infow("LSP client shutting down")
	return nil
}

// TextDocumentDidOpen caches the opened document.
func (h *Handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	uri := string(params.TextDocument.URI)

	if _, exists := h.documents[uri]; !exists {
		if len(h.documents) >= maxOpenDocuments {
			h.logger.Warnw("Document cache limit reached, rejecting new document",
				"uri", uri,
				"current_count", len(h.documents),
				"max_allowed", maxOpenDocuments,
			)
			return errors.Newf("document cache limit reached (%d documents open)", maxOpenDocuments)
		}
	}

	h.documents[uri] = params.TextDocument.Text

	h.logger.Debugw("Document opened",
		"uri", uri,
		"length", len(params.TextDocument.Text),
		"total_documents", len(h.documents),
	)
	return nil
}

// TextDocumentDidChange replaces the cached content. Only full sync is
// advertised, so incremental change events are ignored.
func (h *Handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	uri := string(params.TextDocument.URI)
	for _, change := range params.ContentChanges {
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			h.documents[uri] = textChange.Text
		}
	}

	h.logger.Debugw("Document changed", "uri", uri, "changes", len(params.ContentChanges))
	return nil
}

// TextDocumentDidClose evicts the document from the cache.
func (h *Handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	uri := string(params.TextDocument.URI)
	delete(h.documents, uri)

	h.logger.Debugw("Document closed", "uri", uri)
	return nil
}

// TextDocumentCompletion answers completion requests from the cached
// document. The engine only needs the line under the cursor and its prefix.
func (h *Handler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (result any, err error) {
	// If completion logic panics, return an empty list instead of taking
	// down the session.
	defer func() {
		if r := recover(); r != nil {
			h.logger.Errorw("Panic in completion handler",
				"panic", r,
				"uri", params.TextDocument.URI,
			)
			result = []protocol.CompletionItem{}
			err = nil
		}
	}()

	uri := string(params.TextDocument.URI)
	line, beforeCursor := h.lineAt(uri, params.Position)

	h.logger.Debugw("LSP completion",
		"uri", uri,
		"line", params.Position.Line,
		"character", params.Position.Character,
		"prefix", beforeCursor,
	)

	items := h.engine.Provide(line, beforeCursor)

	completionItems := make([]protocol.CompletionItem, len(items))
	for i, item := range items {
		completionItems[i] = toProtocolItem(item)
	}

	h.logger.Debugw("LSP completion result", "count", len(completionItems))
	return completionItems, nil
}

// CompletionItemResolve returns the item unchanged: every field is already
// populated at creation time, the protocol just requires the round trip.
func (h *Handler) CompletionItemResolve(ctx *glsp.Context, params *protocol.CompletionItem) (*protocol.CompletionItem, error) {
	return params, nil
}

// TextDocumentHover shows a known property's documentation when the cursor
// rests on its name. Misses degrade to no hover, never to an error.
func (h *Handler) TextDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (result *protocol.Hover, err error) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Errorw("Panic in hover handler",
				"panic", r,
				"uri", params.TextDocument.URI,
			)
			result = nil
			err = nil
		}
	}()

	uri := string(params.TextDocument.URI)
	line, _ := h.lineAt(uri, params.Position)

	word := wordAt(line, int(params.Position.Character))
	prop, ok := h.registry.Lookup(word)
	if !ok {
		return nil, nil
	}

	var sb strings.Builder
	sb.WriteString("**")
	sb.WriteString(prop.Name)
	sb.WriteString("**\n\n")
	sb.WriteString(prop.Description)
	if len(prop.Values) > 0 {
		sb.WriteString("\n\nAllowed values: `")
		sb.WriteString(strings.Join(prop.Values, "`, `"))
		sb.WriteString("`")
	}

	h.logger.Debugw("LSP hover result", "property", prop.Name)

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: sb.String(),
		},
	}, nil
}

// lineAt returns the line at the given position in the cached document and
// the portion of it before the cursor. Out-of-range positions clamp to
// empty text, so a stale or absent document yields name-position
// suggestions rather than a fault.
func (h *Handler) lineAt(uri string, pos protocol.Position) (line, beforeCursor string) {
	h.mu.RLock()
	content := h.documents[uri]
	h.mu.RUnlock()

	lines := strings.Split(content, "\n")
	if int(pos.Line) >= len(lines) {
		return "", ""
	}

	line = strings.TrimSuffix(lines[pos.Line], "\r")
	cursor := int(pos.Character)
	if cursor > len(line) {
		cursor = len(line)
	}
	return line, line[:cursor]
}

// wordAt extracts the property-name token covering the given column:
// the run of letters, digits, underscores, and dashes around it.
func wordAt(line string, col int) string {
	if col > len(line) {
		col = len(line)
	}

	isWordByte := func(b byte) bool {
		return b == '_' || b == '-' ||
			(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') ||
			(b >= '0' && b <= '9')
	}

	start := col
	for start > 0 && isWordByte(line[start-1]) {
		start--
	}
	end := col
	for end < len(line) && isWordByte(line[end]) {
		end++
	}
	return line[start:end]
}

// toProtocolItem converts an engine item to its LSP representation.
func toProtocolItem(item completion.Item) protocol.CompletionItem {
	out := protocol.CompletionItem{
		Label:      item.Label,
		Kind:       completionKindPtr(item.Kind),
		InsertText: stringPtrOrNil(item.InsertText),
		SortText:   stringPtrOrNil(item.SortText),
	}
	if item.Documentation != "" {
		out.Documentation = item.Documentation
	}
	if item.Command != "" {
		out.Command = &protocol.Command{
			Title:   "Suggest",
			Command: item.Command,
		}
	}
	return out
}

func completionKindPtr(kind completion.Kind) *protocol.CompletionItemKind {
	k := protocol.CompletionItemKindText
	switch kind {
	case completion.KindProperty:
		k = protocol.CompletionItemKindProperty
	case completion.KindValue:
		k = protocol.CompletionItemKindValue
	}
	return &k
}

func stringPtrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
