package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/modelcontextprotocol/go-sdk/jsonrpc"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	wsMaxMessageSize = 1 << 20
	wsPingInterval   = 30 * time.Second
	wsPongWait       = 60 * time.Second
	wsWriteTimeout   = 10 * time.Second
)

// wsEnvelope frames MCP traffic over the WebSocket bridge. Clients send
// {"type":"request","id":...,"request":<JSON-RPC message>} and receive a
// response envelope correlated by that id, notification envelopes for
// server-initiated messages, and error envelopes for bridge failures.
type wsEnvelope struct {
	Type         string          `json:"type"`
	ID           string          `json:"id,omitempty"`
	Request      json.RawMessage `json:"request,omitempty"`
	Response     json.RawMessage `json:"response,omitempty"`
	Notification json.RawMessage `json:"notification,omitempty"`
	Error        json.RawMessage `json:"error,omitempty"`
}

type wsManager struct {
	upgrader  websocket.Upgrader
	mcpServer *mcp.Server
	logger    *log.Logger
	debug     bool

	mu    sync.Mutex
	conns map[string]*wsConn
}

// wsConn adapts one WebSocket client to an MCP connection: the read pump
// unwraps inbound envelopes into JSON-RPC messages for the session, and
// session writes are wrapped back into envelopes on the socket.
type wsConn struct {
	id     string
	sock   *websocket.Conn
	logger *log.Logger
	debug  bool

	inbound   chan jsonrpc.Message
	done      chan struct{}
	closeOnce sync.Once

	// writeMu serializes socket writes: session responses, pings, and
	// bridge errors all share the one connection.
	writeMu sync.Mutex

	pendingMu sync.Mutex
	pending   map[string]string // JSON-RPC request id -> envelope id
}

// wsTransport hands a live connection to the MCP server; Connect is
// called exactly once per WebSocket client.
type wsTransport struct {
	conn *wsConn
}

func (t wsTransport) Connect(context.Context) (mcp.Connection, error) {
	return t.conn, nil
}

func newWSManager(mcpServer *mcp.Server, logger *log.Logger, debug bool) *wsManager {
	return &wsManager{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		mcpServer: mcpServer,
		logger:    logger,
		debug:     debug,
		conns:     make(map[string]*wsConn),
	}
}

func (m *wsManager) HandleUpgrade(w http.ResponseWriter, r *http.Request) {
	sock, err := m.upgrader.Upgrade(w, r, nil)
	if err != nil {
		m.logger.Printf("[WEBSOCKET] upgrade failed for %s: %v", r.RemoteAddr, err)
		return
	}

	c := &wsConn{
		id:      uuid.NewString(),
		sock:    sock,
		logger:  m.logger,
		debug:   m.debug,
		inbound: make(chan jsonrpc.Message, 16),
		done:    make(chan struct{}),
		pending: make(map[string]string),
	}

	m.mu.Lock()
	m.conns[c.id] = c
	m.mu.Unlock()

	if m.debug {
		m.logger.Printf("[WEBSOCKET] connection %s opened from %s", c.id, r.RemoteAddr)
	}

	session, err := m.mcpServer.Connect(context.Background(), wsTransport{conn: c}, nil)
	if err != nil {
		m.logger.Printf("[WEBSOCKET] session connect failed on %s: %v", c.id, err)
		m.drop(c)
		return
	}

	go c.readPump()
	go c.pingLoop()
	go func() {
		// The session ends when the socket closes or the server shuts
		// down; either way the bridge entry is done.
		session.Wait()
		m.drop(c)
	}()
}

func (m *wsManager) drop(c *wsConn) {
	m.mu.Lock()
	delete(m.conns, c.id)
	m.mu.Unlock()
	c.Close()
	if m.debug {
		m.logger.Printf("[WEBSOCKET] connection %s closed", c.id)
	}
}

// readPump feeds decoded client requests to the session until the socket
// fails or the connection is closed.
func (c *wsConn) readPump() {
	defer c.Close()

	c.sock.SetReadLimit(wsMaxMessageSize)
	c.sock.SetReadDeadline(time.Now().Add(wsPongWait))
	c.sock.SetPongHandler(func(string) error {
		return c.sock.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	for {
		msgType, data, err := c.sock.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
				c.logger.Printf("[WEBSOCKET] read error on %s: %v", c.id, err)
			}
			return
		}
		if msgType != websocket.TextMessage && msgType != websocket.BinaryMessage {
			continue
		}

		var env wsEnvelope
		if err := json.Unmarshal(data, &env); err != nil {
			c.sendBridgeError("", "parse message: "+err.Error())
			continue
		}
		if env.Type != "request" {
			if c.debug {
				c.logger.Printf("[WEBSOCKET] ignoring %q message on %s", env.Type, c.id)
			}
			continue
		}

		msg, err := jsonrpc.DecodeMessage(env.Request)
		if err != nil {
			c.sendBridgeError(env.ID, "decode request: "+err.Error())
			continue
		}
		if req, ok := msg.(*jsonrpc.Request); ok && req.ID.IsValid() {
			c.trackEnvelopeID(req.ID, env.ID)
		}

		select {
		case c.inbound <- msg:
		case <-c.done:
			return
		}
	}
}

func (c *wsConn) pingLoop() {
	ticker := time.NewTicker(wsPingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			if err := c.writeFrame(websocket.PingMessage, nil); err != nil {
				c.Close()
				return
			}
		}
	}
}

// Read implements mcp.Connection.
func (c *wsConn) Read(ctx context.Context) (jsonrpc.Message, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-c.done:
		return nil, io.EOF
	case msg := <-c.inbound:
		return msg, nil
	}
}

// Write implements mcp.Connection. Responses are wrapped with the
// envelope id of the request they answer; everything else goes out as a
// notification envelope.
func (c *wsConn) Write(_ context.Context, msg jsonrpc.Message) error {
	data, err := jsonrpc.EncodeMessage(msg)
	if err != nil {
		return err
	}
	env := wsEnvelope{Type: "notification", Notification: data}
	if resp, ok := msg.(*jsonrpc.Response); ok {
		env = wsEnvelope{Type: "response", ID: c.takeEnvelopeID(resp.ID), Response: data}
	}
	frame, err := json.Marshal(env)
	if err != nil {
		return err
	}
	return c.writeFrame(websocket.TextMessage, frame)
}

// Close implements mcp.Connection; it also unblocks any pending Read.
func (c *wsConn) Close() error {
	c.closeOnce.Do(func() {
		close(c.done)
		c.writeMu.Lock()
		c.sock.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
		c.sock.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "server closing"))
		c.writeMu.Unlock()
		c.sock.Close()
	})
	return nil
}

// SessionID implements mcp.Connection.
func (c *wsConn) SessionID() string { return c.id }

func (c *wsConn) writeFrame(messageType int, data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	c.sock.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	return c.sock.WriteMessage(messageType, data)
}

func (c *wsConn) sendBridgeError(id, msg string) {
	payload, _ := json.Marshal(map[string]string{"message": msg})
	frame, err := json.Marshal(wsEnvelope{Type: "error", ID: id, Error: payload})
	if err != nil {
		return
	}
	if err := c.writeFrame(websocket.TextMessage, frame); err != nil {
		c.logger.Printf("[WEBSOCKET] write error on %s: %v", c.id, err)
		c.Close()
	}
}

func (c *wsConn) trackEnvelopeID(rpcID jsonrpc.ID, envID string) {
	c.pendingMu.Lock()
	c.pending[rpcIDKey(rpcID)] = envID
	c.pendingMu.Unlock()
}

func (c *wsConn) takeEnvelopeID(rpcID jsonrpc.ID) string {
	c.pendingMu.Lock()
	defer c.pendingMu.Unlock()
	key := rpcIDKey(rpcID)
	envID := c.pending[key]
	delete(c.pending, key)
	return envID
}

// rpcIDKey builds a map key from a JSON-RPC id, which may be a string or
// a number on the wire.
func rpcIDKey(id jsonrpc.ID) string {
	return fmt.Sprintf("%T:%v", id.Raw(), id.Raw())
}

// CloseAll tears down every live connection; used during shutdown.
func (m *wsManager) CloseAll() {
	m.mu.Lock()
	conns := make([]*wsConn, 0, len(m.conns))
	for _, c := range m.conns {
		conns = append(conns, c)
	}
	m.mu.Unlock()

	for _, c := range conns {
		m.drop(c)
	}
}
