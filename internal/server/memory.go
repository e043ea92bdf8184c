package server

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Memory access tools. The upstream multiplexes every read and write
// through two endpoints keyed by a DataType string; the local flag
// selects Cheat Engine's own process by appending "local" to that key.

func dataType(kind string, local bool) string {
	if local {
		return kind + "local"
	}
	return kind
}

func (s *Server) readMemory(ctx context.Context, payload map[string]any) (*mcp.CallToolResult, any, error) {
	res := s.client.Call(ctx, "read-memory", http.MethodPost, payload)
	return s.forwardResult(res)
}

func (s *Server) writeMemory(ctx context.Context, payload map[string]any) (*mcp.CallToolResult, any, error) {
	res := s.client.Call(ctx, "write-memory", http.MethodPost, payload)
	return s.forwardResult(res)
}

func (s *Server) readBytes(ctx context.Context, req *mcp.CallToolRequest, args ReadBytesRequest) (*mcp.CallToolResult, any, error) {
	s.logToolInvocation("read_bytes", map[string]interface{}{"address": args.Address, "count": args.ByteCount})
	if args.Address == "" {
		return s.errorResult("address is required")
	}
	if args.ByteCount <= 0 {
		return s.errorResult("byte_count must be positive")
	}
	return s.readMemory(ctx, map[string]any{
		"Address":   args.Address,
		"DataType":  dataType("bytes", args.Local),
		"ByteCount": args.ByteCount,
	})
}

func (s *Server) readSmallInteger(ctx context.Context, req *mcp.CallToolRequest, args ReadSmallIntegerRequest) (*mcp.CallToolResult, any, error) {
	s.logToolInvocation("read_small_integer", map[string]interface{}{"address": args.Address})
	if args.Address == "" {
		return s.errorResult("address is required")
	}
	return s.readMemory(ctx, map[string]any{
		"Address":  args.Address,
		"DataType": dataType("smallinteger", args.Local),
		"Signed":   args.Signed,
	})
}

func (s *Server) readInteger(ctx context.Context, req *mcp.CallToolRequest, args ReadIntegerRequest) (*mcp.CallToolResult, any, error) {
	s.logToolInvocation("read_integer", map[string]interface{}{"address": args.Address})
	if args.Address == "" {
		return s.errorResult("address is required")
	}
	return s.readMemory(ctx, map[string]any{
		"Address":  args.Address,
		"DataType": dataType("integer", args.Local),
		"Signed":   args.Signed,
	})
}

func (s *Server) readQword(ctx context.Context, req *mcp.CallToolRequest, args ReadQwordRequest) (*mcp.CallToolResult, any, error) {
	s.logToolInvocation("read_qword", map[string]interface{}{"address": args.Address})
	if args.Address == "" {
		return s.errorResult("address is required")
	}
	return s.readMemory(ctx, map[string]any{
		"Address":  args.Address,
		"DataType": dataType("qword", args.Local),
	})
}

func (s *Server) readPointer(ctx context.Context, req *mcp.CallToolRequest, args ReadPointerRequest) (*mcp.CallToolResult, any, error) {
	s.logToolInvocation("read_pointer", map[string]interface{}{"address": args.Address})
	if args.Address == "" {
		return s.errorResult("address is required")
	}
	return s.readMemory(ctx, map[string]any{
		"Address":  args.Address,
		"DataType": dataType("pointer", args.Local),
	})
}

func (s *Server) readFloat(ctx context.Context, req *mcp.CallToolRequest, args ReadFloatRequest) (*mcp.CallToolResult, any, error) {
	s.logToolInvocation("read_float", map[string]interface{}{"address": args.Address})
	if args.Address == "" {
		return s.errorResult("address is required")
	}
	return s.readMemory(ctx, map[string]any{
		"Address":  args.Address,
		"DataType": dataType("float", args.Local),
	})
}

func (s *Server) readDouble(ctx context.Context, req *mcp.CallToolRequest, args ReadDoubleRequest) (*mcp.CallToolResult, any, error) {
	s.logToolInvocation("read_double", map[string]interface{}{"address": args.Address})
	if args.Address == "" {
		return s.errorResult("address is required")
	}
	return s.readMemory(ctx, map[string]any{
		"Address":  args.Address,
		"DataType": dataType("double", args.Local),
	})
}

func (s *Server) readString(ctx context.Context, req *mcp.CallToolRequest, args ReadStringRequest) (*mcp.CallToolResult, any, error) {
	s.logToolInvocation("read_string", map[string]interface{}{"address": args.Address})
	if args.Address == "" {
		return s.errorResult("address is required")
	}
	maxLength := args.MaxLength
	if maxLength <= 0 {
		maxLength = 50
	}
	return s.readMemory(ctx, map[string]any{
		"Address":   args.Address,
		"DataType":  dataType("string", args.Local),
		"MaxLength": maxLength,
		"WideChar":  args.WideChar,
	})
}

func (s *Server) writeBytes(ctx context.Context, req *mcp.CallToolRequest, args WriteBytesRequest) (*mcp.CallToolResult, any, error) {
	s.logToolInvocation("write_bytes", map[string]interface{}{"address": args.Address, "count": len(args.ByteValues)})
	if args.Address == "" {
		return s.errorResult("address is required")
	}
	if len(args.ByteValues) == 0 {
		return s.errorResult("byte_values must not be empty")
	}
	for _, b := range args.ByteValues {
		if b < 0 || b > 255 {
			return s.errorResult("byte value %d out of range 0-255", b)
		}
	}
	return s.writeMemory(ctx, map[string]any{
		"Address":  args.Address,
		"DataType": dataType("bytes", args.Local),
		"Value":    args.ByteValues,
	})
}

func (s *Server) writeSmallInteger(ctx context.Context, req *mcp.CallToolRequest, args WriteSmallIntegerRequest) (*mcp.CallToolResult, any, error) {
	s.logToolInvocation("write_small_integer", map[string]interface{}{"address": args.Address})
	if args.Address == "" {
		return s.errorResult("address is required")
	}
	return s.writeMemory(ctx, map[string]any{
		"Address":  args.Address,
		"DataType": dataType("smallinteger", args.Local),
		"Value":    args.Value,
	})
}

func (s *Server) writeInteger(ctx context.Context, req *mcp.CallToolRequest, args WriteIntegerRequest) (*mcp.CallToolResult, any, error) {
	s.logToolInvocation("write_integer", map[string]interface{}{"address": args.Address})
	if args.Address == "" {
		return s.errorResult("address is required")
	}
	return s.writeMemory(ctx, map[string]any{
		"Address":  args.Address,
		"DataType": dataType("integer", args.Local),
		"Value":    args.Value,
	})
}

func (s *Server) writeQword(ctx context.Context, req *mcp.CallToolRequest, args WriteQwordRequest) (*mcp.CallToolResult, any, error) {
	s.logToolInvocation("write_qword", map[string]interface{}{"address": args.Address})
	if args.Address == "" {
		return s.errorResult("address is required")
	}
	return s.writeMemory(ctx, map[string]any{
		"Address":  args.Address,
		"DataType": dataType("qword", args.Local),
		"Value":    args.Value,
	})
}

func (s *Server) writeFloat(ctx context.Context, req *mcp.CallToolRequest, args WriteFloatRequest) (*mcp.CallToolResult, any, error) {
	s.logToolInvocation("write_float", map[string]interface{}{"address": args.Address})
	if args.Address == "" {
		return s.errorResult("address is required")
	}
	return s.writeMemory(ctx, map[string]any{
		"Address":  args.Address,
		"DataType": dataType("float", args.Local),
		"Value":    args.Value,
	})
}

func (s *Server) writeDouble(ctx context.Context, req *mcp.CallToolRequest, args WriteDoubleRequest) (*mcp.CallToolResult, any, error) {
	s.logToolInvocation("write_double", map[string]interface{}{"address": args.Address})
	if args.Address == "" {
		return s.errorResult("address is required")
	}
	return s.writeMemory(ctx, map[string]any{
		"Address":  args.Address,
		"DataType": dataType("double", args.Local),
		"Value":    args.Value,
	})
}

func (s *Server) writeString(ctx context.Context, req *mcp.CallToolRequest, args WriteStringRequest) (*mcp.CallToolResult, any, error) {
	s.logToolInvocation("write_string", map[string]interface{}{"address": args.Address})
	if args.Address == "" {
		return s.errorResult("address is required")
	}
	return s.writeMemory(ctx, map[string]any{
		"Address":  args.Address,
		"DataType": dataType("string", args.Local),
		"Value":    args.Text,
		"WideChar": args.WideChar,
	})
}
