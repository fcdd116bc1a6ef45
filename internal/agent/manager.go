package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/darrenyao/dingtalk-agent-sdk/internal/config"
	"github.com/darrenyao/dingtalk-agent-sdk/internal/mcpserver"
	"github.com/darrenyao/dingtalk-agent-sdk/internal/pool"
	"github.com/darrenyao/dingtalk-agent-sdk/pkg/logging"

	"github.com/mark3labs/mcp-go/mcp"
)

// defaultInstructions is the system prompt given to the model. Tool
// capabilities come from the acquired MCP server, so the prompt only
// sets the assistant's register.
const defaultInstructions = `You are a helpful assistant for DingTalk users.
Use the available tools to answer questions when they apply; answer
directly when they do not. Reply in the language the user wrote in and
keep answers concise. Use markdown for code.`

// chatCompleter is the slice of the OpenAI client the manager uses.
// *openai.Client satisfies it; tests substitute a stub.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Manager routes chat messages through the LLM and the pooled MCP tool
// servers. One server is borrowed per message and released with a
// health verdict when processing finishes.
type Manager struct {
	registry      *pool.Registry[*mcpserver.Server]
	llm           chatCompleter
	model         string
	maxToolRounds int
	defaultPool   string
	instructions  string
}

// NewManager builds a Manager over an initialized pool registry. The
// LLM client is configured from llmCfg; defaultPool names the pool used
// for messages that carry no explicit route.
func NewManager(llmCfg config.LLMConfig, registry *pool.Registry[*mcpserver.Server], defaultPool string) (*Manager, error) {
	if llmCfg.BaseURL == "" || llmCfg.APIKey == "" {
		return nil, fmt.Errorf("LLM base URL and API key must be configured")
	}
	if _, ok := registry.Get(defaultPool); !ok {
		return nil, fmt.Errorf("default pool %q is not registered", defaultPool)
	}

	clientCfg := openai.DefaultConfig(llmCfg.APIKey)
	clientCfg.BaseURL = llmCfg.BaseURL

	maxRounds := llmCfg.MaxToolRounds
	if maxRounds <= 0 {
		maxRounds = config.DefaultMaxToolRounds
	}

	logging.Info("Agent", "Agent manager initialized, model %s, pools: %v", llmCfg.Model, registry.Names())
	return &Manager{
		registry:      registry,
		llm:           openai.NewClientWithConfig(clientCfg),
		model:         llmCfg.Model,
		maxToolRounds: maxRounds,
		defaultPool:   defaultPool,
		instructions:  defaultInstructions,
	}, nil
}

// ProcessMessage serves one chat message: it borrows an MCP server from
// the routed pool, exposes that server's tools to the model, runs the
// tool-call loop, and returns the model's final answer. The borrowed
// server is always released exactly once; transport failures against it
// mark it unhealthy so the pool retires it.
func (m *Manager) ProcessMessage(ctx context.Context, msg Message) (reply string, err error) {
	poolKey := msg.PoolKey
	if poolKey == "" {
		poolKey = m.defaultPool
	}

	selected, ok := m.registry.Get(poolKey)
	if !ok {
		return "", fmt.Errorf("no MCP pool named %q is configured", poolKey)
	}

	logging.Info("Agent", "Processing message from %s via pool %q", msg.SenderNick, poolKey)

	server, err := selected.Acquire(ctx)
	if err != nil {
		return "", fmt.Errorf("no tool server available: %w", err)
	}

	healthy := true
	defer func() {
		logging.Debug("Agent", "Releasing server %s, healthy=%t", server.ID(), healthy)
		selected.Release(ctx, server, healthy)
	}()

	tools, err := server.Client().ListTools(ctx)
	if err != nil {
		healthy = false
		return "", fmt.Errorf("listing tools on server %s: %w", server.ID(), err)
	}

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: m.instructions},
		{Role: openai.ChatMessageRoleUser, Content: msg.Content},
	}

	for round := 0; round < m.maxToolRounds; round++ {
		resp, err := m.llm.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:    m.model,
			Messages: messages,
			Tools:    chatTools(tools),
		})
		if err != nil {
			// The model failed, not the tool server.
			return "", fmt.Errorf("chat completion failed: %w", err)
		}
		if len(resp.Choices) == 0 {
			return "", fmt.Errorf("chat completion returned no choices")
		}

		choice := resp.Choices[0].Message
		if len(choice.ToolCalls) == 0 {
			logging.Info("Agent", "Final response ready after %d tool rounds", round)
			return choice.Content, nil
		}

		messages = append(messages, choice)
		for _, call := range choice.ToolCalls {
			content, toolErr := m.executeToolCall(ctx, server, call)
			if toolErr != nil {
				healthy = false
				return "", toolErr
			}
			messages = append(messages, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				Content:    content,
				ToolCallID: call.ID,
			})
		}
	}

	return "", fmt.Errorf("message needed more than %d tool rounds, giving up", m.maxToolRounds)
}

// executeToolCall runs one requested tool on the borrowed server. A
// malformed argument payload is reported back to the model as tool
// output so it can correct itself; a transport failure is returned as
// an error and condemns the server.
func (m *Manager) executeToolCall(ctx context.Context, server *mcpserver.Server, call openai.ToolCall) (string, error) {
	logging.Debug("Agent", "Tool call %s on server %s", call.Function.Name, server.ID())

	var args map[string]interface{}
	if call.Function.Arguments != "" {
		if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
			return fmt.Sprintf("invalid tool arguments: %v", err), nil
		}
	}

	result, err := server.Client().CallTool(ctx, call.Function.Name, args)
	if err != nil {
		return "", fmt.Errorf("tool %s failed on server %s: %w", call.Function.Name, server.ID(), err)
	}

	return toolResultText(result), nil
}

// chatTools converts MCP tool descriptors into chat completion tools.
func chatTools(tools []mcp.Tool) []openai.Tool {
	out := make([]openai.Tool, 0, len(tools))
	for _, t := range tools {
		var params any = t.InputSchema
		if t.InputSchema.Type == "" {
			params = map[string]any{"type": "object"}
		}
		out = append(out, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  params,
			},
		})
	}
	return out
}

// toolResultText flattens a tool result into the text handed back to
// the model.
func toolResultText(result *mcp.CallToolResult) string {
	var parts []string
	for _, content := range result.Content {
		if text, ok := content.(mcp.TextContent); ok {
			parts = append(parts, text.Text)
		}
	}
	text := strings.Join(parts, "\n")
	if result.IsError {
		return "tool error: " + text
	}
	return text
}
