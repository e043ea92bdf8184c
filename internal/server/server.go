package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hedgehogform/ce-mcp-client/internal/ceclient"
)

const (
	DefaultPort              = 7300
	defaultCheatEngineHost   = "localhost"
	defaultCheatEnginePort   = 6300
	defaultRequestTimeoutSec = 600
	defaultMaxScanResults    = 100
	maxScanResultCeiling     = 500
)

type Config struct {
	Port              int    `json:"port"`
	CheatEngineHost   string `json:"cheat_engine_host"`
	CheatEnginePort   int    `json:"cheat_engine_port"`
	RequestTimeoutSec int    `json:"request_timeout_seconds"`
	MaxScanResults    int    `json:"max_scan_results"`
	Debug             bool   `json:"debug"`
}

// CheatEngineBaseURL builds the upstream base URL from host and port.
func (c Config) CheatEngineBaseURL() string {
	return fmt.Sprintf("http://%s:%d", c.CheatEngineHost, c.CheatEnginePort)
}

type Server struct {
	client         *ceclient.Client
	scans          *scanStore
	logger         *log.Logger
	maxScanResults int
	debug          bool

	// scanMu serializes memscan and memscan_reset end to end, upstream
	// call included, so a reset cannot interleave with an in-flight scan
	// and leave a stale cache entry behind.
	scanMu sync.Mutex

	wsManager *wsManager
}

func New(client *ceclient.Client, logger *log.Logger, maxScanResults int, debug bool) *Server {
	if maxScanResults <= 0 {
		maxScanResults = defaultMaxScanResults
	}
	if maxScanResults > maxScanResultCeiling {
		maxScanResults = maxScanResultCeiling
	}
	return &Server{
		client:         client,
		scans:          newScanStore(),
		logger:         logger,
		maxScanResults: maxScanResults,
		debug:          debug,
	}
}

func LoadConfig(path string) (Config, error) {
	cfg := Config{
		Port:              DefaultPort,
		CheatEngineHost:   defaultCheatEngineHost,
		CheatEnginePort:   defaultCheatEnginePort,
		RequestTimeoutSec: defaultRequestTimeoutSec,
		MaxScanResults:    defaultMaxScanResults,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	ensureConfigDefaults(&cfg)
	return cfg, nil
}

func ensureConfigDefaults(cfg *Config) {
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if cfg.CheatEngineHost == "" {
		cfg.CheatEngineHost = defaultCheatEngineHost
	}
	if cfg.CheatEnginePort == 0 {
		cfg.CheatEnginePort = defaultCheatEnginePort
	}
	if cfg.RequestTimeoutSec == 0 {
		cfg.RequestTimeoutSec = defaultRequestTimeoutSec
	}
	if cfg.MaxScanResults <= 0 {
		cfg.MaxScanResults = defaultMaxScanResults
	}
	if cfg.MaxScanResults > maxScanResultCeiling {
		cfg.MaxScanResults = maxScanResultCeiling
	}
}

// ApplyEnvOverrides layers environment settings over the file config.
// MCP_HOST and MCP_PORT address the Cheat Engine instance and keep the
// names the original deployment used.
func ApplyEnvOverrides(cfg *Config) {
	if val := os.Getenv("MCP_HOST"); val != "" {
		cfg.CheatEngineHost = val
	}
	if val := os.Getenv("MCP_PORT"); val != "" {
		if p, err := strconv.Atoi(val); err == nil {
			cfg.CheatEnginePort = p
		}
	}
	if val := os.Getenv("CE_MCP_PORT"); val != "" {
		if p, err := strconv.Atoi(val); err == nil {
			cfg.Port = p
		}
	}
	if val := os.Getenv("CE_MCP_TIMEOUT_SEC"); val != "" {
		if secs, err := strconv.Atoi(val); err == nil {
			cfg.RequestTimeoutSec = secs
		}
	}
	if val := os.Getenv("CE_MCP_MAX_SCAN_RESULTS"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			cfg.MaxScanResults = n
		}
	}
	if val := os.Getenv("CE_MCP_DEBUG"); val != "" {
		if parsed, ok := parseBool(val); ok {
			cfg.Debug = parsed
		}
	}
	ensureConfigDefaults(cfg)
}

func (s *Server) RegisterTools(mcpServer *mcp.Server) {
	// Process tools
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "execute_lua",
		Description: "Execute Lua code inside Cheat Engine",
	}, s.executeLua)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "get_process_list",
		Description: "List running processes visible to Cheat Engine",
	}, s.getProcessList)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "open_process",
		Description: "Open a target process by PID or name",
	}, s.openProcess)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "get_thread_list",
		Description: "List threads of the currently opened process",
	}, s.getThreadList)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "get_process_status",
		Description: "Report which process is currently opened",
	}, s.getProcessStatus)

	// Memory read tools
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "read_bytes",
		Description: "Read raw bytes at an address",
	}, s.readBytes)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "read_small_integer",
		Description: "Read a 16-bit integer at an address",
	}, s.readSmallInteger)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "read_integer",
		Description: "Read a 32-bit integer at an address",
	}, s.readInteger)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "read_qword",
		Description: "Read a 64-bit integer at an address",
	}, s.readQword)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "read_pointer",
		Description: "Read a pointer-sized value at an address",
	}, s.readPointer)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "read_float",
		Description: "Read a 32-bit float at an address",
	}, s.readFloat)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "read_double",
		Description: "Read a 64-bit float at an address",
	}, s.readDouble)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "read_string",
		Description: "Read a string at an address",
	}, s.readString)

	// Memory write tools
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "write_bytes",
		Description: "Write raw bytes at an address",
	}, s.writeBytes)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "write_small_integer",
		Description: "Write a 16-bit integer at an address",
	}, s.writeSmallInteger)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "write_integer",
		Description: "Write a 32-bit integer at an address",
	}, s.writeInteger)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "write_qword",
		Description: "Write a 64-bit integer at an address",
	}, s.writeQword)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "write_float",
		Description: "Write a 32-bit float at an address",
	}, s.writeFloat)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "write_double",
		Description: "Write a 64-bit float at an address",
	}, s.writeDouble)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "write_string",
		Description: "Write a string at an address",
	}, s.writeString)

	// Address tools
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "get_address_safe",
		Description: "Resolve an address expression, null when it cannot be resolved",
	}, s.getAddressSafe)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "get_name_from_address",
		Description: "Get the symbolic name for an address",
	}, s.getNameFromAddress)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "in_module",
		Description: "Check whether an address lies inside a loaded module",
	}, s.inModule)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "in_system_module",
		Description: "Check whether an address lies inside a system module",
	}, s.inSystemModule)

	// Scan tools
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "aob_scan",
		Description: "Scan process memory for an array-of-bytes pattern",
	}, s.aobScan)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "disassemble",
		Description: "Disassemble the instruction at an address",
	}, s.disassemble)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "get_instruction_size",
		Description: "Get the byte size of the instruction at an address",
	}, s.getInstructionSize)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "memscan",
		Description: "Run a memory value scan; results are cached for pagination",
	}, s.memScan)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "memscan_fetch_more",
		Description: "Page through cached results of the last memscan",
	}, s.memScanFetchMore)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "memscan_reset",
		Description: "Reset the scan session and drop cached results",
	}, s.memScanReset)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "ansi_to_utf8",
		Description: "Convert a string from ANSI to UTF-8",
	}, s.ansiToUTF8)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "utf8_to_ansi",
		Description: "Convert a string from UTF-8 to ANSI",
	}, s.utf8ToANSI)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "string_to_md5",
		Description: "Compute the MD5 hash of a string",
	}, s.stringToMD5)

	// Address list (cheat table) tools
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "get_address_list",
		Description: "List all cheat table memory records",
	}, s.getAddressList)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "add_address_list_entry",
		Description: "Add a memory record to the cheat table",
	}, s.addAddressListEntry)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "update_address_list_entry",
		Description: "Update a cheat table record selected by id, index, or description",
	}, s.updateAddressListEntry)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "delete_address_list_entry",
		Description: "Delete a cheat table record selected by id, index, or description",
	}, s.deleteAddressListEntry)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "clear_address_list",
		Description: "Remove all cheat table records",
	}, s.clearAddressList)

	// Utility tools
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "get_api_info",
		Description: "Describe the upstream Cheat Engine REST API",
	}, s.getAPIInfo)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "get_health",
		Description: "Probe upstream server health",
	}, s.getHealth)
}

// clampScanCount normalizes a caller-supplied page size: non-positive
// falls back to the default, anything above the ceiling is capped.
func clampScanCount(n, fallback int) int {
	if n <= 0 {
		n = fallback
	}
	if n > maxScanResultCeiling {
		n = maxScanResultCeiling
	}
	return n
}

func parseBool(val string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "1", "true", "t", "yes", "y", "on":
		return true, true
	case "0", "false", "f", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
