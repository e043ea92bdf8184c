package server

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Process lifecycle tools: everything here forwards straight through the
// gateway, the upstream owns the notion of "currently opened process".

func (s *Server) executeLua(ctx context.Context, req *mcp.CallToolRequest, args ExecuteLuaRequest) (*mcp.CallToolResult, any, error) {
	s.logToolInvocation("execute_lua", map[string]interface{}{"bytes": len(args.Code)})
	res := s.client.Call(ctx, "execute-lua", http.MethodPost, map[string]any{
		"Code": args.Code,
	})
	return s.forwardResult(res)
}

func (s *Server) getProcessList(ctx context.Context, req *mcp.CallToolRequest, args GetProcessListRequest) (*mcp.CallToolResult, any, error) {
	s.logToolInvocation("get_process_list", nil)
	res := s.client.Call(ctx, "process-list", http.MethodGet, nil)
	return s.forwardResult(res)
}

func (s *Server) openProcess(ctx context.Context, req *mcp.CallToolRequest, args OpenProcessRequest) (*mcp.CallToolResult, any, error) {
	s.logToolInvocation("open_process", map[string]interface{}{"process": args.Process})
	if args.Process == "" {
		return s.errorResult("process is required")
	}
	res := s.client.Call(ctx, "open-process", http.MethodPost, map[string]any{
		"Process": args.Process,
	})
	return s.forwardResult(res)
}

func (s *Server) getThreadList(ctx context.Context, req *mcp.CallToolRequest, args GetThreadListRequest) (*mcp.CallToolResult, any, error) {
	s.logToolInvocation("get_thread_list", nil)
	res := s.client.Call(ctx, "thread-list", http.MethodGet, nil)
	return s.forwardResult(res)
}

func (s *Server) getProcessStatus(ctx context.Context, req *mcp.CallToolRequest, args GetProcessStatusRequest) (*mcp.CallToolResult, any, error) {
	s.logToolInvocation("get_process_status", nil)
	res := s.client.Call(ctx, "process-status", http.MethodGet, nil)
	return s.forwardResult(res)
}
