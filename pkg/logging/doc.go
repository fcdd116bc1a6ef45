// Package logging provides a structured logging system for the DingTalk
// agent bridge with unified log handling and level filtering.
//
// This package is built on Go's standard slog package. All log entries
// include a timestamp, a level, a subsystem identifier for
// categorization, the message content with optional printf-style
// formatting, and optional error information.
//
// # Usage
//
//	import "github.com/darrenyao/dingtalk-agent-sdk/pkg/logging"
//
//	// Initialize with Info level logging to stdout
//	logging.InitForCLI(logging.LevelInfo, os.Stdout)
//
//	// Log messages
//	logging.Info("Bootstrap", "Application starting up")
//	logging.Debug("Config", "Loaded configuration from %s", configPath)
//	logging.Warn("Pool", "Server released to a full queue")
//	logging.Error("Agent", err, "Failed to process message")
//
// # Subsystem Organization
//
// Logs are organized by subsystem to enable filtering:
//
//   - **Bootstrap**: Application initialization and startup
//   - **Config**: Configuration loading and validation
//   - **Pool**: MCP server pool lifecycle and accounting
//   - **Agent**: LLM agent and tool-call execution
//   - **DingTalk**: Stream client and message callbacks
//   - **MCPClient**: MCP transport operations
//
// # Thread Safety
//
// The logging system is fully thread-safe: concurrent logging from
// multiple goroutines is supported and configuration access is
// protected.
package logging
