package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hedgehogform/ce-mcp-client/internal/ceclient"
	"github.com/hedgehogform/ce-mcp-client/internal/server"
)

var (
	configPath  = flag.String("config", "config.json", "Path to server config")
	portFlag    = flag.Int("port", 0, "HTTP port (overrides config)")
	ceHostFlag  = flag.String("ce-host", "", "Cheat Engine host (overrides config)")
	cePortFlag  = flag.Int("ce-port", 0, "Cheat Engine port (overrides config)")
	timeoutFlag = flag.Duration("timeout", 0, "Upstream request timeout (overrides config)")
	stdioFlag   = flag.Bool("stdio", false, "Serve MCP over stdio instead of HTTP")
	debugFlag   = flag.Bool("debug", false, "Enable verbose debug logging")
)

func main() {
	flag.Parse()

	logger := log.New(os.Stderr, "[CE-MCP] ", log.LstdFlags)
	logger.Printf("Starting Cheat Engine MCP Server")
	cfg, err := server.LoadConfig(*configPath)
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	server.ApplyEnvOverrides(&cfg)

	if *portFlag > 0 {
		cfg.Port = *portFlag
	}
	if *ceHostFlag != "" {
		cfg.CheatEngineHost = *ceHostFlag
	}
	if *cePortFlag > 0 {
		cfg.CheatEnginePort = *cePortFlag
	}
	if *debugFlag {
		cfg.Debug = true
	}

	requestTimeout := time.Duration(cfg.RequestTimeoutSec) * time.Second
	if *timeoutFlag > 0 {
		requestTimeout = *timeoutFlag
	}

	client := ceclient.New(cfg.CheatEngineBaseURL(), requestTimeout, logger, cfg.Debug)
	srv := server.New(client, logger, cfg.MaxScanResults, cfg.Debug)

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "cheat-engine",
		Version: "0.1.0",
	}, nil)

	srv.RegisterTools(mcpServer)

	logger.Printf("Upstream Cheat Engine API at %s", cfg.CheatEngineBaseURL())

	if *stdioFlag {
		if err := mcpServer.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
			logger.Fatalf("stdio transport: %v", err)
		}
		return
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	mux := srv.HTTPMux(mcpServer)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	logger.Printf("Listening on %s", addr)
	logger.Printf("HTTP transport at http://localhost:%d/", cfg.Port)
	logger.Printf("SSE transport at http://localhost:%d/sse", cfg.Port)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Println("Shutting down gracefully...")

		// Give HTTP server 10 seconds to finish in-flight requests
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Printf("HTTP server shutdown error: %v", err)
		}
		srv.CloseConnections()

		logger.Println("Shutdown complete")
		os.Exit(0)
	}()

	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		logger.Fatal(err)
	}
}
