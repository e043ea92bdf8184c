package server

import (
	"context"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// progressReporter pushes MCP progress notifications for long-running
// scans when the client supplied a progress token. Without a token every
// Emit is a no-op.
type progressReporter struct {
	ctx     context.Context
	session *mcp.ServerSession
	token   any
	logger  *log.Logger
	last    float64
}

func (s *Server) progressReporter(ctx context.Context, req *mcp.CallToolRequest) *progressReporter {
	p := &progressReporter{ctx: ctx, logger: s.logger}
	if req != nil && req.Session != nil && req.Params != nil {
		p.session = req.Session
		p.token = req.Params.GetProgressToken()
	}
	return p
}

func (p *progressReporter) Emit(message string, progress, total float64) {
	if p == nil || p.token == nil || p.session == nil {
		return
	}
	if progress < p.last {
		progress = p.last
	} else {
		p.last = progress
	}
	params := &mcp.ProgressNotificationParams{
		ProgressToken: p.token,
		Progress:      progress,
	}
	if message != "" {
		params.Message = message
	}
	if total > 0 {
		params.Total = total
	}
	if err := p.session.NotifyProgress(p.ctx, params); err != nil && p.logger != nil {
		p.logger.Printf("Warning: failed to send progress notification: %v", err)
	}
}
