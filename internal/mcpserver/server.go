package mcpserver

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/darrenyao/dingtalk-agent-sdk/internal/pool"
	"github.com/darrenyao/dingtalk-agent-sdk/pkg/logging"
)

// Server is one pooled, already-connected MCP server connection. It
// pairs a connected MCPClient with a stable identity so the pool can
// account for it, and it satisfies pool.Resource.
type Server struct {
	id     string
	client MCPClient
}

// NewServer binds an already-connected client to an identity. Callers
// normally go through NewServerFactory; this constructor exists for
// wiring pre-built clients, e.g. in tests.
func NewServer(id string, client MCPClient) *Server {
	return &Server{id: id, client: client}
}

// ID returns the server's identity for pool accounting and diagnostics.
func (s *Server) ID() string { return s.id }

// Client returns the connected MCP client for protocol operations.
func (s *Server) Client() MCPClient { return s.client }

// Dispose closes the underlying MCP connection. It is safe to call on
// a degraded connection; transport close errors are returned for the
// caller to log.
func (s *Server) Dispose(ctx context.Context) error {
	logging.Debug("MCPServer", "Disposing server %s", s.id)
	return s.client.Close()
}

// NewServerFactory builds a pool.Factory that creates one fully
// connected Server per call from the given client configuration. The
// factory only returns servers that completed the MCP handshake; a
// client that fails to connect is closed and the error is returned so
// the pool can roll back.
func NewServerFactory(name string, config ClientConfig) pool.Factory[*Server] {
	return func(ctx context.Context) (*Server, error) {
		mcpClient, err := NewClient(config)
		if err != nil {
			return nil, fmt.Errorf("building MCP client for %q: %w", name, err)
		}

		if err := mcpClient.Initialize(ctx); err != nil {
			return nil, fmt.Errorf("connecting MCP server for %q: %w", name, err)
		}

		server := NewServer(fmt.Sprintf("%s-%s", name, uuid.NewString()[:8]), mcpClient)
		logging.Debug("MCPServer", "Connected server %s via %s", server.id, config.Transport)
		return server, nil
	}
}
