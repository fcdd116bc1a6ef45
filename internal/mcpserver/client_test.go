package mcpserver

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_TransportSelection(t *testing.T) {
	tests := []struct {
		name    string
		config  ClientConfig
		wantErr string
	}{
		{
			name:   "stdio",
			config: ClientConfig{Transport: TransportStdio, Command: "mcp-server", Args: []string{"--fast"}},
		},
		{
			name:    "stdio without command",
			config:  ClientConfig{Transport: TransportStdio},
			wantErr: "command is required",
		},
		{
			name:   "streamable-http",
			config: ClientConfig{Transport: TransportStreamableHTTP, URL: "http://localhost:8080/mcp"},
		},
		{
			name:    "streamable-http without url",
			config:  ClientConfig{Transport: TransportStreamableHTTP},
			wantErr: "url is required",
		},
		{
			name:   "sse",
			config: ClientConfig{Transport: TransportSSE, URL: "http://localhost:8080/sse"},
		},
		{
			name:    "sse without url",
			config:  ClientConfig{Transport: TransportSSE},
			wantErr: "url is required",
		},
		{
			name:    "unknown transport",
			config:  ClientConfig{Transport: "pigeon"},
			wantErr: "unsupported MCP transport",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClient(tt.config)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, c)
		})
	}
}

func TestNewClient_ConcreteTypes(t *testing.T) {
	c, err := NewClient(ClientConfig{Transport: TransportStdio, Command: "srv"})
	require.NoError(t, err)
	assert.IsType(t, &StdioClient{}, c)

	c, err = NewClient(ClientConfig{Transport: TransportStreamableHTTP, URL: "http://h/mcp"})
	require.NoError(t, err)
	assert.IsType(t, &StreamableHTTPClient{}, c)

	c, err = NewClient(ClientConfig{Transport: TransportSSE, URL: "http://h/sse"})
	require.NoError(t, err)
	assert.IsType(t, &SSEClient{}, c)
}

func TestOperationsOnDisconnectedClient(t *testing.T) {
	ctx := context.Background()
	c := NewStdioClient("srv", nil, nil)

	_, err := c.ListTools(ctx)
	assert.ErrorContains(t, err, "client not connected")

	_, err = c.CallTool(ctx, "echo", map[string]interface{}{"msg": "hi"})
	assert.ErrorContains(t, err, "client not connected")

	assert.ErrorContains(t, c.Ping(ctx), "client not connected")

	// Closing an unconnected client is a safe no-op.
	assert.NoError(t, c.Close())
}

// mockMCPClient is a test double for the MCPClient interface.
type mockMCPClient struct {
	closed   int
	closeErr error
	tools    []mcp.Tool
}

func (m *mockMCPClient) Initialize(ctx context.Context) error { return nil }

func (m *mockMCPClient) Close() error {
	m.closed++
	return m.closeErr
}

func (m *mockMCPClient) ListTools(ctx context.Context) ([]mcp.Tool, error) {
	return m.tools, nil
}

func (m *mockMCPClient) CallTool(ctx context.Context, name string, args map[string]interface{}) (*mcp.CallToolResult, error) {
	return &mcp.CallToolResult{}, nil
}

func (m *mockMCPClient) Ping(ctx context.Context) error { return nil }

func TestServer_Dispose(t *testing.T) {
	mock := &mockMCPClient{}
	server := &Server{id: "stdio-abc123", client: mock}

	assert.Equal(t, "stdio-abc123", server.ID())
	require.NoError(t, server.Dispose(context.Background()))
	assert.Equal(t, 1, mock.closed)
}

func TestServer_DisposeReturnsCloseError(t *testing.T) {
	mock := &mockMCPClient{closeErr: errors.New("connection reset")}
	server := &Server{id: "stdio-def456", client: mock}

	err := server.Dispose(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, mock.closed)
}

func TestNewServerFactory_InvalidConfig(t *testing.T) {
	factory := NewServerFactory("broken", ClientConfig{Transport: "pigeon"})

	_, err := factory(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported MCP transport")
}
