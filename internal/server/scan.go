package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Scanning and disassembly tools. memscan, memscan_fetch_more, and
// memscan_reset are the only tools with local state: the scan store
// caches the full result set so callers can page through it without
// rescanning.

const defaultStopAddress = "0x00007fffffffffff"

func (s *Server) aobScan(ctx context.Context, req *mcp.CallToolRequest, args AobScanRequest) (*mcp.CallToolResult, any, error) {
	s.logToolInvocation("aob_scan", map[string]interface{}{"pattern": args.AOBString})
	if args.AOBString == "" {
		return s.errorResult("aob_string is required")
	}
	// Optional knobs are sent only when given; the upstream applies its
	// own defaults to absent fields.
	payload := map[string]any{"AOBString": args.AOBString}
	if args.ProtectionFlags != "" {
		payload["ProtectionFlags"] = args.ProtectionFlags
	}
	if args.AlignmentType != "" {
		alignment, err := ParseAlignmentType(args.AlignmentType)
		if err != nil {
			return s.errorResult("%v", err)
		}
		payload["AlignmentType"] = int(alignment)
	}
	if args.AlignmentParam != "" {
		payload["AlignmentParam"] = args.AlignmentParam
	}

	progress := s.progressReporter(ctx, req)
	progress.Emit("AOB scan started", 0, 1)
	res := s.client.Call(ctx, "aob-scan", http.MethodPost, payload)
	progress.Emit("AOB scan complete", 1, 1)
	return s.forwardResult(res)
}

func (s *Server) disassemble(ctx context.Context, req *mcp.CallToolRequest, args DisassembleRequest) (*mcp.CallToolResult, any, error) {
	s.logToolInvocation("disassemble", map[string]interface{}{"address": args.Address})
	if args.Address == "" {
		return s.errorResult("address is required")
	}
	res := s.client.Call(ctx, "disassemble", http.MethodPost, map[string]any{
		"Address":     args.Address,
		"RequestType": "disassemble",
	})
	return s.forwardResult(res)
}

func (s *Server) getInstructionSize(ctx context.Context, req *mcp.CallToolRequest, args GetInstructionSizeRequest) (*mcp.CallToolResult, any, error) {
	s.logToolInvocation("get_instruction_size", map[string]interface{}{"address": args.Address})
	if args.Address == "" {
		return s.errorResult("address is required")
	}
	res := s.client.Call(ctx, "disassemble", http.MethodPost, map[string]any{
		"Address":     args.Address,
		"RequestType": "size",
	})
	return s.forwardResult(res)
}

func (s *Server) memScan(ctx context.Context, req *mcp.CallToolRequest, args MemScanRequest) (*mcp.CallToolResult, any, error) {
	s.logToolInvocation("memscan", map[string]interface{}{
		"option": args.ScanOption, "type": args.VarType, "input1": args.Input1,
	})

	optionName := args.ScanOption
	if optionName == "" {
		optionName = "soExactValue"
	}
	option, err := ParseScanOption(optionName)
	if err != nil {
		return s.errorResult("%v", err)
	}

	typeName := args.VarType
	if typeName == "" {
		typeName = "vtDword"
	}
	varType, err := ParseVarType(typeName)
	if err != nil {
		return s.errorResult("%v", err)
	}

	roundingName := args.RoundingType
	if roundingName == "" {
		roundingName = "rtExtremerounded"
	}
	rounding, err := ParseRoundingType(roundingName)
	if err != nil {
		return s.errorResult("%v", err)
	}

	alignName := args.AlignmentType
	if alignName == "" {
		alignName = "fsmAligned"
	}
	alignment, err := ParseAlignmentType(alignName)
	if err != nil {
		return s.errorResult("%v", err)
	}
	alignParam := args.AlignmentParam
	if alignParam == "" {
		alignParam = "4"
	}

	startAddress := args.StartAddress
	if startAddress == "" {
		startAddress = "0"
	}
	stopAddress := args.StopAddress
	if stopAddress == "" {
		stopAddress = defaultStopAddress
	}
	protection := args.ProtectionFlags
	if protection == "" {
		protection = "+W-C"
	}

	maxResults := clampScanCount(args.MaxResults, s.maxScanResults)

	payload := map[string]any{
		"ScanOption":         int(option),
		"VarType":            int(varType),
		"RoundingType":       rounding,
		"StartAddress":       startAddress,
		"StopAddress":        stopAddress,
		"ProtectionFlags":    protection,
		"AlignmentType":      int(alignment),
		"AlignmentParam":     alignParam,
		"IsHexadecimalInput": args.IsHexadecimal,
		"IsNotABinaryString": args.IsNotABinary,
		"IsUnicodeScan":      args.IsUnicode,
		"IsCaseSensitive":    args.IsCaseSensitive,
	}
	if args.Input1 != "" {
		payload["Input1"] = args.Input1
	}
	if args.Input2 != "" {
		payload["Input2"] = args.Input2
	}

	progress := s.progressReporter(ctx, req)

	// Serialized with memscan_reset so a reset cannot slip between the
	// upstream call and the cache update.
	s.scanMu.Lock()
	defer s.scanMu.Unlock()

	progress.Emit("memory scan started", 0, 1)
	res := s.client.Call(ctx, "memscan", http.MethodPost, payload)
	if !res.Success {
		// Cache stays as-is: the previous scan's results remain valid.
		return s.forwardResult(res)
	}

	set, ok := parseResultSet(res.Data)
	if !ok {
		return s.errorResult("Invalid response: memscan reply carries no result set")
	}
	s.scans.Replace(set)

	items, total, _ := s.scans.Page(0, maxResults)
	progress.Emit(fmt.Sprintf("memory scan complete (%d results)", total), 1, 1)
	s.debugf("memscan cached %d of %d results, returning %d", s.scans.Len(), total, len(items))

	out, err := s.jsonResult(scanPage{
		Success:     true,
		TotalCount:  total,
		StoredCount: len(items),
		Items:       items,
	})
	return out, nil, err
}

func (s *Server) memScanFetchMore(ctx context.Context, req *mcp.CallToolRequest, args MemScanFetchMoreRequest) (*mcp.CallToolResult, any, error) {
	s.logToolInvocation("memscan_fetch_more", map[string]interface{}{
		"start": args.StartIndex, "count": args.Count,
	})
	if args.StartIndex < 0 {
		return s.errorResult("start_index must not be negative")
	}
	count := clampScanCount(args.Count, s.maxScanResults)

	items, total, ok := s.scans.Page(args.StartIndex, count)
	if !ok {
		return s.errorResult("no cached results; run a scan first")
	}

	// A start index past the cached range is a valid empty page, not an
	// error; total_count still tells the caller how far they can go.
	out, err := s.jsonResult(scanPage{
		Success:     true,
		TotalCount:  total,
		StoredCount: len(items),
		Items:       items,
	})
	return out, nil, err
}

func (s *Server) memScanReset(ctx context.Context, req *mcp.CallToolRequest, args MemScanResetRequest) (*mcp.CallToolResult, any, error) {
	s.logToolInvocation("memscan_reset", nil)

	s.scanMu.Lock()
	defer s.scanMu.Unlock()

	// Local cache goes first and stays cleared regardless of the upstream
	// outcome; stale results must never survive a reset attempt.
	s.scans.Clear()
	res := s.client.Call(ctx, "memscan-reset", http.MethodPost, nil)
	return s.forwardResult(res)
}

func (s *Server) convert(ctx context.Context, conversionType, text string) (*mcp.CallToolResult, any, error) {
	res := s.client.Call(ctx, "convert", http.MethodPost, map[string]any{
		"Text":           text,
		"ConversionType": conversionType,
	})
	return s.forwardResult(res)
}

func (s *Server) ansiToUTF8(ctx context.Context, req *mcp.CallToolRequest, args ConvertStringRequest) (*mcp.CallToolResult, any, error) {
	s.logToolInvocation("ansi_to_utf8", nil)
	return s.convert(ctx, "ansiToUtf8", args.Text)
}

func (s *Server) utf8ToANSI(ctx context.Context, req *mcp.CallToolRequest, args ConvertStringRequest) (*mcp.CallToolResult, any, error) {
	s.logToolInvocation("utf8_to_ansi", nil)
	return s.convert(ctx, "utf8ToAnsi", args.Text)
}

func (s *Server) stringToMD5(ctx context.Context, req *mcp.CallToolRequest, args ConvertStringRequest) (*mcp.CallToolResult, any, error) {
	s.logToolInvocation("string_to_md5", nil)
	return s.convert(ctx, "stringToMd5", args.Text)
}
