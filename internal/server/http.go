package server

import (
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// HTTPMux routes the three client transports: streamable HTTP at /,
// SSE at /sse for legacy clients, and a WebSocket bridge at /ws.
func (s *Server) HTTPMux(mcpServer *mcp.Server) http.Handler {
	sseHandler := mcp.NewSSEHandler(func(r *http.Request) *mcp.Server {
		s.debugf("SSE connection from %s: %s %s", r.RemoteAddr, r.Method, r.URL.Path)
		return mcpServer
	}, nil)

	streamableHandler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return mcpServer
	}, &mcp.StreamableHTTPOptions{
		JSONResponse: true,
		Stateless:    true,
	})

	s.wsManager = newWSManager(mcpServer, s.logger, s.debug)

	mux := http.NewServeMux()
	mux.Handle("/sse", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.debugf("[SSE] %s %s from %s", r.Method, r.URL.Path, r.RemoteAddr)
		sseHandler.ServeHTTP(w, r)
	}))
	mux.Handle("/ws", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.debugf("[WEBSOCKET] %s %s from %s", r.Method, r.URL.Path, r.RemoteAddr)
		s.wsManager.HandleUpgrade(w, r)
	}))
	mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.debugf("[HTTP] %s %s from %s", r.Method, r.URL.Path, r.RemoteAddr)
		streamableHandler.ServeHTTP(w, r)
	}))
	return mux
}

// CloseConnections shuts down any live WebSocket bridges; called on
// server shutdown.
func (s *Server) CloseConnections() {
	if s.wsManager != nil {
		s.wsManager.CloseAll()
	}
}
