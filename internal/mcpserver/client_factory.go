package mcpserver

import (
	"fmt"
)

// Transport names for MCP server connections.
const (
	// TransportStdio is the standard I/O transport for local subprocesses.
	TransportStdio = "stdio"
	// TransportStreamableHTTP is the streaming HTTP transport.
	TransportStreamableHTTP = "streamable-http"
	// TransportSSE is the Server-Sent Events transport.
	TransportSSE = "sse"
)

// ClientConfig contains configuration for creating an MCP client.
// This provides a unified configuration structure for all client types.
type ClientConfig struct {
	// Transport selects the client implementation (stdio, streamable-http, sse)
	Transport string
	// Command is the executable path for stdio servers
	Command string
	// Args are the command line arguments for stdio servers
	Args []string
	// Env contains environment variables for stdio servers
	Env map[string]string
	// URL is the endpoint for remote servers (streamable-http, sse)
	URL string
	// Headers are HTTP headers for remote servers
	Headers map[string]string
}

// NewClient creates the appropriate MCP client based on the configured
// transport. This factory function encapsulates the logic for choosing
// the correct client implementation.
func NewClient(config ClientConfig) (MCPClient, error) {
	switch config.Transport {
	case TransportStdio:
		if config.Command == "" {
			return nil, fmt.Errorf("command is required for stdio transport")
		}
		return NewStdioClient(config.Command, config.Args, config.Env), nil

	case TransportStreamableHTTP:
		if config.URL == "" {
			return nil, fmt.Errorf("url is required for streamable-http transport")
		}
		return NewStreamableHTTPClient(config.URL, config.Headers), nil

	case TransportSSE:
		if config.URL == "" {
			return nil, fmt.Errorf("url is required for sse transport")
		}
		return NewSSEClient(config.URL, config.Headers), nil

	default:
		return nil, fmt.Errorf("unsupported MCP transport: %q (supported: %s, %s, %s)",
			config.Transport, TransportStdio, TransportStreamableHTTP, TransportSSE)
	}
}
