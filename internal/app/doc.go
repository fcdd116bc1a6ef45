// Package app bootstraps and runs the DingTalk agent bridge.
//
// NewApplication performs the bootstrap phase: logging, configuration
// loading and validation, and wiring of the MCP server pools, the agent
// manager, and the stream client. Run performs the execution phase:
// all-or-nothing pool initialization, stream connection, signal
// handling, and orderly shutdown (transport first, pools last).
package app
