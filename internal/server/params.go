package server

// Parameter types for all MCP tool implementations

type ExecuteLuaRequest struct {
	Code string `json:"code" mcp:"Lua code to execute"`
}

type GetProcessListRequest struct{}

type OpenProcessRequest struct {
	Process string `json:"process" mcp:"process ID or executable name"`
}

type GetThreadListRequest struct{}

type GetProcessStatusRequest struct{}

type ReadBytesRequest struct {
	Address   string `json:"address" mcp:"address expression"`
	ByteCount int    `json:"byte_count" mcp:"number of bytes to read"`
	Local     bool   `json:"local,omitempty" mcp:"read Cheat Engine's own memory"`
}

type ReadSmallIntegerRequest struct {
	Address string `json:"address" mcp:"address expression"`
	Signed  bool   `json:"signed,omitempty" mcp:"interpret as signed"`
	Local   bool   `json:"local,omitempty" mcp:"read Cheat Engine's own memory"`
}

type ReadIntegerRequest struct {
	Address string `json:"address" mcp:"address expression"`
	Signed  bool   `json:"signed,omitempty" mcp:"interpret as signed"`
	Local   bool   `json:"local,omitempty" mcp:"read Cheat Engine's own memory"`
}

type ReadQwordRequest struct {
	Address string `json:"address" mcp:"address expression"`
	Local   bool   `json:"local,omitempty" mcp:"read Cheat Engine's own memory"`
}

type ReadPointerRequest struct {
	Address string `json:"address" mcp:"address expression"`
	Local   bool   `json:"local,omitempty" mcp:"read Cheat Engine's own memory"`
}

type ReadFloatRequest struct {
	Address string `json:"address" mcp:"address expression"`
	Local   bool   `json:"local,omitempty" mcp:"read Cheat Engine's own memory"`
}

type ReadDoubleRequest struct {
	Address string `json:"address" mcp:"address expression"`
	Local   bool   `json:"local,omitempty" mcp:"read Cheat Engine's own memory"`
}

type ReadStringRequest struct {
	Address   string `json:"address" mcp:"address expression"`
	MaxLength int    `json:"max_length,omitempty" mcp:"maximum characters to read (default 50)"`
	WideChar  bool   `json:"wide_char,omitempty" mcp:"read UTF-16 instead of ANSI"`
	Local     bool   `json:"local,omitempty" mcp:"read Cheat Engine's own memory"`
}

type WriteBytesRequest struct {
	Address    string `json:"address" mcp:"address expression"`
	ByteValues []int  `json:"byte_values" mcp:"bytes to write"`
	Local      bool   `json:"local,omitempty" mcp:"write Cheat Engine's own memory"`
}

type WriteSmallIntegerRequest struct {
	Address string `json:"address" mcp:"address expression"`
	Value   int64  `json:"value" mcp:"value to write"`
	Local   bool   `json:"local,omitempty" mcp:"write Cheat Engine's own memory"`
}

type WriteIntegerRequest struct {
	Address string `json:"address" mcp:"address expression"`
	Value   int64  `json:"value" mcp:"value to write"`
	Local   bool   `json:"local,omitempty" mcp:"write Cheat Engine's own memory"`
}

type WriteQwordRequest struct {
	Address string `json:"address" mcp:"address expression"`
	Value   int64  `json:"value" mcp:"value to write"`
	Local   bool   `json:"local,omitempty" mcp:"write Cheat Engine's own memory"`
}

type WriteFloatRequest struct {
	Address string  `json:"address" mcp:"address expression"`
	Value   float64 `json:"value" mcp:"value to write"`
	Local   bool    `json:"local,omitempty" mcp:"write Cheat Engine's own memory"`
}

type WriteDoubleRequest struct {
	Address string  `json:"address" mcp:"address expression"`
	Value   float64 `json:"value" mcp:"value to write"`
	Local   bool    `json:"local,omitempty" mcp:"write Cheat Engine's own memory"`
}

type WriteStringRequest struct {
	Address  string `json:"address" mcp:"address expression"`
	Text     string `json:"text" mcp:"string to write"`
	WideChar bool   `json:"wide_char,omitempty" mcp:"write UTF-16 instead of ANSI"`
	Local    bool   `json:"local,omitempty" mcp:"write Cheat Engine's own memory"`
}

type GetAddressSafeRequest struct {
	AddressString string `json:"address_string" mcp:"address expression to resolve"`
	Local         bool   `json:"local,omitempty" mcp:"resolve in Cheat Engine's own symbol table"`
}

type GetNameFromAddressRequest struct {
	Address     string `json:"address" mcp:"address expression"`
	ModuleNames *bool  `json:"module_names,omitempty" mcp:"include module names (default true)"`
	Symbols     *bool  `json:"symbols,omitempty" mcp:"include symbols (default true)"`
	Sections    bool   `json:"sections,omitempty" mcp:"include section names"`
}

type InModuleRequest struct {
	Address string `json:"address" mcp:"address expression"`
}

type InSystemModuleRequest struct {
	Address string `json:"address" mcp:"address expression"`
}

type AobScanRequest struct {
	AOBString       string `json:"aob_string" mcp:"byte pattern, e.g. \"48 8B ?? 90\""`
	ProtectionFlags string `json:"protection_flags,omitempty" mcp:"memory protection filter, e.g. +X*C*W; upstream default when omitted"`
	AlignmentType   string `json:"alignment_type,omitempty" mcp:"fsmNotAligned, fsmAligned, or fsmLastDigits; upstream default when omitted"`
	AlignmentParam  string `json:"alignment_param,omitempty" mcp:"alignment parameter; upstream default when omitted"`
}

type DisassembleRequest struct {
	Address string `json:"address" mcp:"address expression"`
}

type GetInstructionSizeRequest struct {
	Address string `json:"address" mcp:"address expression"`
}

type MemScanRequest struct {
	ScanOption      string `json:"scan_option,omitempty" mcp:"scan mode, e.g. soExactValue (default)"`
	VarType         string `json:"var_type,omitempty" mcp:"value type, e.g. vtDword (default)"`
	Input1          string `json:"input1,omitempty" mcp:"primary scan value"`
	Input2          string `json:"input2,omitempty" mcp:"secondary scan value for soValueBetween"`
	RoundingType    string `json:"rounding_type,omitempty" mcp:"rtRounded, rtExtremerounded (default), or rtTruncated"`
	StartAddress    string `json:"start_address,omitempty" mcp:"scan range start (default 0)"`
	StopAddress     string `json:"stop_address,omitempty" mcp:"scan range end (default 0x00007fffffffffff)"`
	ProtectionFlags string `json:"protection_flags,omitempty" mcp:"memory protection filter (default +W-C)"`
	AlignmentType   string `json:"alignment_type,omitempty" mcp:"fsmNotAligned, fsmAligned (default), or fsmLastDigits"`
	AlignmentParam  string `json:"alignment_param,omitempty" mcp:"alignment parameter (default \"4\")"`
	IsHexadecimal   bool   `json:"is_hexadecimal,omitempty" mcp:"inputs are hexadecimal"`
	IsNotABinary    bool   `json:"is_not_a_binary_string,omitempty" mcp:"treat input as decimal, not binary"`
	IsUnicode       bool   `json:"is_unicode,omitempty" mcp:"string scan is UTF-16"`
	IsCaseSensitive bool   `json:"is_case_sensitive,omitempty" mcp:"string scan is case sensitive"`
	MaxResults      int    `json:"max_results,omitempty" mcp:"results to return now (default 100, max 500)"`
}

type MemScanFetchMoreRequest struct {
	StartIndex int `json:"start_index" mcp:"zero-based index into the cached results"`
	Count      int `json:"count,omitempty" mcp:"results to return (default 100, max 500)"`
}

type MemScanResetRequest struct{}

type ConvertStringRequest struct {
	Text string `json:"text" mcp:"string to convert"`
}

type GetAddressListRequest struct{}

type AddAddressListEntryRequest struct {
	Description string `json:"description" mcp:"record description"`
	Address     string `json:"address" mcp:"address expression"`
	VarType     string `json:"var_type,omitempty" mcp:"value type, e.g. vtDword (default)"`
	Value       string `json:"value,omitempty" mcp:"initial value to write"`
}

type UpdateAddressListEntryRequest struct {
	ID             *int   `json:"id,omitempty" mcp:"record ID"`
	Index          *int   `json:"index,omitempty" mcp:"record index"`
	Description    string `json:"description,omitempty" mcp:"record description to match"`
	NewDescription string `json:"new_description,omitempty" mcp:"replacement description"`
	NewAddress     string `json:"new_address,omitempty" mcp:"replacement address"`
	NewVarType     string `json:"new_var_type,omitempty" mcp:"replacement value type"`
	NewValue       string `json:"new_value,omitempty" mcp:"replacement value"`
	Active         *bool  `json:"active,omitempty" mcp:"freeze or unfreeze the record"`
}

type DeleteAddressListEntryRequest struct {
	ID          *int   `json:"id,omitempty" mcp:"record ID"`
	Index       *int   `json:"index,omitempty" mcp:"record index"`
	Description string `json:"description,omitempty" mcp:"record description to match"`
}

type ClearAddressListRequest struct{}

type GetAPIInfoRequest struct{}

type GetHealthRequest struct{}
