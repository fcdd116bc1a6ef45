// Package agent interprets chat messages with an LLM and the tools of
// a borrowed MCP server.
//
// The Manager is the pool's consumer: for every message it acquires one
// server from the routed pool, bridges that server's MCP tools into the
// chat completion request, loops over the model's tool calls, and
// releases the server exactly once with a health verdict. Transport
// failures against the server mark it unhealthy so the pool retires it;
// model-side failures do not condemn the server.
package agent
