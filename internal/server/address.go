package server

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Symbol and module lookup tools.

func (s *Server) getAddressSafe(ctx context.Context, req *mcp.CallToolRequest, args GetAddressSafeRequest) (*mcp.CallToolResult, any, error) {
	s.logToolInvocation("get_address_safe", map[string]interface{}{"expr": args.AddressString})
	if args.AddressString == "" {
		return s.errorResult("address_string is required")
	}
	res := s.client.Call(ctx, "get-address-safe", http.MethodPost, map[string]any{
		"AddressString": args.AddressString,
		"Local":         args.Local,
	})
	return s.forwardResult(res)
}

func (s *Server) getNameFromAddress(ctx context.Context, req *mcp.CallToolRequest, args GetNameFromAddressRequest) (*mcp.CallToolResult, any, error) {
	s.logToolInvocation("get_name_from_address", map[string]interface{}{"address": args.Address})
	if args.Address == "" {
		return s.errorResult("address is required")
	}
	res := s.client.Call(ctx, "get-name-from-address", http.MethodPost, map[string]any{
		"Address":     args.Address,
		"ModuleNames": boolOrDefault(args.ModuleNames, true),
		"Symbols":     boolOrDefault(args.Symbols, true),
		"Sections":    args.Sections,
	})
	return s.forwardResult(res)
}

func (s *Server) inModule(ctx context.Context, req *mcp.CallToolRequest, args InModuleRequest) (*mcp.CallToolResult, any, error) {
	s.logToolInvocation("in_module", map[string]interface{}{"address": args.Address})
	if args.Address == "" {
		return s.errorResult("address is required")
	}
	res := s.client.Call(ctx, "in-module", http.MethodPost, map[string]any{
		"Address": args.Address,
	})
	return s.forwardResult(res)
}

func (s *Server) inSystemModule(ctx context.Context, req *mcp.CallToolRequest, args InSystemModuleRequest) (*mcp.CallToolResult, any, error) {
	s.logToolInvocation("in_system_module", map[string]interface{}{"address": args.Address})
	if args.Address == "" {
		return s.errorResult("address is required")
	}
	res := s.client.Call(ctx, "in-system-module", http.MethodPost, map[string]any{
		"Address": args.Address,
	})
	return s.forwardResult(res)
}

func boolOrDefault(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
