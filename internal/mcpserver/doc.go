// Package mcpserver provides MCP (Model Context Protocol) client
// connections for the agent bridge.
//
// It contains transport-specific client implementations (stdio
// subprocess, SSE, streamable-http) behind the MCPClient interface, a
// configuration-driven client factory, and the pooled Server type that
// binds a connected client to a stable identity so it can be managed by
// the pool package.
package mcpserver
