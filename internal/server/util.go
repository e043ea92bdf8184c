package server

import (
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hedgehogform/ce-mcp-client/internal/ceclient"
)

func (s *Server) logToolInvocation(tool string, details map[string]interface{}) {
	if details == nil {
		details = map[string]interface{}{}
	}
	s.logger.Printf("[Tool] %s %v", tool, details)
}

// marshalJSON marshals v to indented JSON for tool replies
func (s *Server) marshalJSON(v interface{}) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

func (s *Server) debugf(format string, args ...interface{}) {
	if s.debug {
		s.logger.Printf("[DEBUG] "+format, args...)
	}
}

// jsonResult wraps v as a single-text-content tool result.
func (s *Server) jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := s.marshalJSON(v)
	if err != nil {
		return nil, fmt.Errorf("marshal tool result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil
}

// errorResult builds a structured failure reply. Upstream and local
// failures are data, not protocol errors, so the handler error stays nil.
func (s *Server) errorResult(format string, args ...interface{}) (*mcp.CallToolResult, any, error) {
	res, err := s.jsonResult(map[string]interface{}{
		"success": false,
		"error":   fmt.Sprintf(format, args...),
	})
	return res, nil, err
}

// forwardResult passes an upstream reply through verbatim. Gateway-level
// failures already carry a synthesized success/error body.
func (s *Server) forwardResult(res ceclient.Result) (*mcp.CallToolResult, any, error) {
	if !res.Success {
		s.debugf("upstream failure: %s", res.Error)
	}
	out, err := s.jsonResult(res.Data)
	return out, nil, err
}
