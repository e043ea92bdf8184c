package server

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// get_api_info is answered locally; everything needed is already known
// from configuration.
func (s *Server) getAPIInfo(ctx context.Context, req *mcp.CallToolRequest, args GetAPIInfoRequest) (*mcp.CallToolResult, any, error) {
	s.logToolInvocation("get_api_info", nil)
	base := s.client.BaseURL()
	out, err := s.jsonResult(map[string]interface{}{
		"success":     true,
		"base_url":    base,
		"swagger_ui":  base + "/swagger",
		"description": "REST API for Cheat Engine MCP Server",
	})
	return out, nil, err
}

func (s *Server) getHealth(ctx context.Context, req *mcp.CallToolRequest, args GetHealthRequest) (*mcp.CallToolResult, any, error) {
	s.logToolInvocation("get_health", nil)
	res := s.client.Call(ctx, "health", http.MethodGet, nil)
	return s.forwardResult(res)
}
