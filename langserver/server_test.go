package langserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/noritaka1166/editorconfig-ls/registry"
)

// TestWebSocketLifecycle exercises the full protocol over a real WebSocket
// connection: initialize → initialized → didOpen → completion → shutdown.
func TestWebSocketLifecycle(t *testing.T) {
	handler := NewHandler(registry.Default(), zap.NewNop().Sugar())
	srv := NewServer(handler, zap.NewNop().Sugar())

	testServer := httptest.NewServer(http.HandlerFunc(srv.HandleWebSocket))
	defer testServer.Close()

	wsURL := "ws" + strings.TrimPrefix(testServer.URL, "http")

	dialer := websocket.Dialer{}
	conn, _, err := dialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Failed to connect WebSocket: %v", err)
	}
	defer conn.Close()

	// 1. Initialize request
	initRequest := map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  "initialize",
		"params": map[string]interface{}{
			"processId": nil,
			"clientInfo": map[string]interface{}{
				"name":    "TestClient",
				"version": "1.0",
			},
			"capabilities": map[string]interface{}{},
		},
	}
	if err := conn.WriteJSON(initRequest); err != nil {
		t.Fatalf("Failed to send initialize request: %v", err)
	}

	var initResponse map[string]interface{}
	if err := conn.ReadJSON(&initResponse); err != nil {
		t.Fatalf("Failed to read initialize response: %v", err)
	}

	result := initResponse["result"].(map[string]interface{})
	capabilities := result["capabilities"].(map[string]interface{})
	if capabilities["completionProvider"] == nil {
		t.Error("Expected completionProvider capability")
	}
	if capabilities["hoverProvider"] == nil {
		t.Error("Expected hoverProvider capability")
	}

	// 2. Initialized notification
	initializedNotif := map[string]interface{}{
		"jsonrpc": "2.0",
		"method":  "initialized",
		"params":  map[string]interface{}{},
	}
	if err := conn.WriteJSON(initializedNotif); err != nil {
		t.Fatalf("Failed to send initialized notification: %v", err)
	}

	// 3. Open a document
	didOpenNotif := map[string]interface{}{
		"jsonrpc": "2.0",
		"method":  "textDocument/didOpen",
		"params": map[string]interface{}{
			"textDocument": map[string]interface{}{
				"uri":        "file:///project/.editorconfig",
				"languageId": "editorconfig",
				"version":    1,
				"text":       "[*]\nindent_style = ",
			},
		},
	}
	if err := conn.WriteJSON(didOpenNotif); err != nil {
		t.Fatalf("Failed to send didOpen notification: %v", err)
	}

	// 4. Request completions in value position
	completionRequest := map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      2,
		"method":  "textDocument/completion",
		"params": map[string]interface{}{
			"textDocument": map[string]interface{}{
				"uri": "file:///project/.editorconfig",
			},
			"position": map[string]interface{}{
				"line":      1,
				"character": 15,
			},
		},
	}
	if err := conn.WriteJSON(completionRequest); err != nil {
		t.Fatalf("Failed to send completion request: %v", err)
	}

	var completionResponse map[string]interface{}
	if err := conn.ReadJSON(&completionResponse); err != nil {
		t.Fatalf("Failed to read completion response: %v", err)
	}

	items, ok := completionResponse["result"].([]interface{})
	if !ok {
		t.Fatalf("Expected completion item list, got %T", completionResponse["result"])
	}
	if len(items) != 3 {
		t.Errorf("Expected 3 value completions for indent_style, got %d", len(items))
	}

	labels := map[string]bool{}
	for _, raw := range items {
		item := raw.(map[string]interface{})
		labels[item["label"].(string)] = true
	}
	for _, want := range []string{"tab", "space", "unset"} {
		if !labels[want] {
			t.Errorf("Expected completion label %q, got %v", want, labels)
		}
	}

	// 5. Shutdown
	shutdownRequest := map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      3,
		"method":  "shutdown",
	}
	if err := conn.WriteJSON(shutdownRequest); err != nil {
		t.Fatalf("Failed to send shutdown request: %v", err)
	}

	var shutdownResponse map[string]interface{}
	if err := conn.ReadJSON(&shutdownResponse); err != nil {
		t.Fatalf("Failed to read shutdown response: %v", err)
	}
	if shutdownResponse["error"] != nil {
		t.Errorf("Shutdown returned error: %v", shutdownResponse["error"])
	}
}
