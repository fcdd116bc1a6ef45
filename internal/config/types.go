package config

// Config is the top-level configuration structure for the DingTalk
// agent bridge.
type Config struct {
	LLM      LLMConfig      `yaml:"llm"`
	DingTalk DingTalkConfig `yaml:"dingtalk"`
	Pools    []PoolConfig   `yaml:"pools"`
}

// LLMConfig configures the OpenAI-compatible chat completion endpoint
// the agent calls.
type LLMConfig struct {
	BaseURL       string `yaml:"baseURL"`                 // Endpoint base URL (default: https://api.openai.com/v1)
	APIKey        string `yaml:"apiKey"`                  // API key; may also come from LLM_API_KEY
	Model         string `yaml:"model"`                   // Chat model name (default: gpt-4o)
	MaxToolRounds int    `yaml:"maxToolRounds,omitempty"` // Cap on tool-call loop iterations (default: 8)
}

// DingTalkConfig holds the stream-client credentials.
type DingTalkConfig struct {
	ClientID     string `yaml:"clientID"`     // App client id; may also come from DINGTALK_CLIENT_ID
	ClientSecret string `yaml:"clientSecret"` // App client secret; may also come from DINGTALK_CLIENT_SECRET
}

// PoolConfig defines one named pool of MCP server connections.
type PoolConfig struct {
	Name   string       `yaml:"name"`   // Pool name, used for routing and logging
	Size   int          `yaml:"size"`   // Number of connections the pool creates
	Server MCPServerDef `yaml:"server"` // How to reach the MCP server
}

// MCPServerDef describes how to connect to one kind of MCP server.
type MCPServerDef struct {
	Transport string            `yaml:"transport"`         // stdio, streamable-http, or sse
	Command   string            `yaml:"command,omitempty"` // Executable for stdio servers
	Args      []string          `yaml:"args,omitempty"`    // Arguments for stdio servers
	Env       map[string]string `yaml:"env,omitempty"`     // Environment for stdio servers
	URL       string            `yaml:"url,omitempty"`     // Endpoint for remote servers
	Headers   map[string]string `yaml:"headers,omitempty"` // HTTP headers for remote servers
}
