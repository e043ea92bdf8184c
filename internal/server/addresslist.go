package server

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Cheat table (address list) tools. Update and delete select a record by
// exactly one of id, index, or description.

func (s *Server) getAddressList(ctx context.Context, req *mcp.CallToolRequest, args GetAddressListRequest) (*mcp.CallToolResult, any, error) {
	s.logToolInvocation("get_address_list", nil)
	res := s.client.Call(ctx, "addresslist", http.MethodGet, nil)
	return s.forwardResult(res)
}

func (s *Server) addAddressListEntry(ctx context.Context, req *mcp.CallToolRequest, args AddAddressListEntryRequest) (*mcp.CallToolResult, any, error) {
	s.logToolInvocation("add_address_list_entry", map[string]interface{}{
		"description": args.Description, "address": args.Address,
	})
	if args.Description == "" {
		return s.errorResult("description is required")
	}
	if args.Address == "" {
		return s.errorResult("address is required")
	}
	typeName := args.VarType
	if typeName == "" {
		typeName = "vtDword"
	}
	varType, err := ParseVarType(typeName)
	if err != nil {
		return s.errorResult("%v", err)
	}

	payload := map[string]any{
		"description": args.Description,
		"address":     args.Address,
		"varType":     int(varType),
	}
	if args.Value != "" {
		payload["value"] = args.Value
	}
	res := s.client.Call(ctx, "addresslist/add", http.MethodPost, payload)
	return s.forwardResult(res)
}

func (s *Server) updateAddressListEntry(ctx context.Context, req *mcp.CallToolRequest, args UpdateAddressListEntryRequest) (*mcp.CallToolResult, any, error) {
	s.logToolInvocation("update_address_list_entry", nil)
	selector, ok := recordSelector(args.ID, args.Index, args.Description)
	if !ok {
		return s.errorResult("specify exactly one of id, index, or description")
	}

	if args.NewVarType != "" {
		varType, err := ParseVarType(args.NewVarType)
		if err != nil {
			return s.errorResult("%v", err)
		}
		selector["newVarType"] = int(varType)
	}
	if args.NewDescription != "" {
		selector["newDescription"] = args.NewDescription
	}
	if args.NewAddress != "" {
		selector["newAddress"] = args.NewAddress
	}
	if args.NewValue != "" {
		selector["newValue"] = args.NewValue
	}
	if args.Active != nil {
		selector["active"] = *args.Active
	}
	res := s.client.Call(ctx, "addresslist/update", http.MethodPost, selector)
	return s.forwardResult(res)
}

func (s *Server) deleteAddressListEntry(ctx context.Context, req *mcp.CallToolRequest, args DeleteAddressListEntryRequest) (*mcp.CallToolResult, any, error) {
	s.logToolInvocation("delete_address_list_entry", nil)
	selector, ok := recordSelector(args.ID, args.Index, args.Description)
	if !ok {
		return s.errorResult("specify exactly one of id, index, or description")
	}
	res := s.client.Call(ctx, "addresslist/delete", http.MethodPost, selector)
	return s.forwardResult(res)
}

func (s *Server) clearAddressList(ctx context.Context, req *mcp.CallToolRequest, args ClearAddressListRequest) (*mcp.CallToolResult, any, error) {
	s.logToolInvocation("clear_address_list", nil)
	res := s.client.Call(ctx, "addresslist/clear", http.MethodPost, nil)
	return s.forwardResult(res)
}

// recordSelector builds the record-selection payload from id, index, or
// description. Exactly one must be set; anything else is a caller error.
// The address list endpoints take lower-camelCase keys, unlike the rest
// of the upstream API.
func recordSelector(id, index *int, description string) (map[string]any, bool) {
	given := 0
	payload := map[string]any{}
	if id != nil {
		payload["id"] = *id
		given++
	}
	if index != nil {
		payload["index"] = *index
		given++
	}
	if description != "" {
		payload["description"] = description
		given++
	}
	return payload, given == 1
}
