package app

import (
	"fmt"
	"io"
	"os"

	"github.com/darrenyao/dingtalk-agent-sdk/internal/agent"
	"github.com/darrenyao/dingtalk-agent-sdk/internal/config"
	"github.com/darrenyao/dingtalk-agent-sdk/internal/dingtalk"
	"github.com/darrenyao/dingtalk-agent-sdk/internal/mcpserver"
	"github.com/darrenyao/dingtalk-agent-sdk/internal/pool"
	"github.com/darrenyao/dingtalk-agent-sdk/pkg/logging"
)

// Application bootstraps and runs the DingTalk agent bridge. It follows
// a two-phase initialization pattern:
//
//  1. Bootstrap phase: load configuration, initialize logging, wire the
//     pools, agent, and stream client (no connections are made yet)
//  2. Execution phase: Run initializes the pools, starts the stream
//     client, and blocks until shutdown
type Application struct {
	config   *Config
	registry *pool.Registry[*mcpserver.Server]
	stream   *dingtalk.StreamManager
}

// NewApplication creates and wires a new application instance. It
// configures logging, loads and validates the configuration, constructs
// one pool per configured MCP server kind, and builds the agent manager
// and stream client on top. No pool is initialized and no connection is
// opened here; that happens in Run.
func NewApplication(cfg *Config) (*Application, error) {
	appLogLevel := logging.LevelInfo
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	}
	var logOutput io.Writer = os.Stdout
	if cfg.Silent {
		logOutput = io.Discard
	}
	logging.InitForCLI(appLogLevel, logOutput)

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = config.GetDefaultConfigPathOrPanic()
	}

	bridgeCfg, err := config.LoadConfig(configPath)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to load configuration from %s", configPath)
		return nil, fmt.Errorf("failed to load configuration from %s: %w", configPath, err)
	}
	if err := bridgeCfg.Validate(); err != nil {
		logging.Error("Bootstrap", err, "Configuration is invalid")
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	registry, err := buildRegistry(bridgeCfg.Pools)
	if err != nil {
		return nil, err
	}

	// Messages without an explicit route go to the first configured pool.
	manager, err := agent.NewManager(bridgeCfg.LLM, registry, bridgeCfg.Pools[0].Name)
	if err != nil {
		return nil, fmt.Errorf("failed to build agent manager: %w", err)
	}

	stream := dingtalk.NewStreamManager(bridgeCfg.DingTalk, manager)

	logging.Info("Bootstrap", "Application wired: %d pools, default route %q", len(bridgeCfg.Pools), bridgeCfg.Pools[0].Name)
	return &Application{
		config:   cfg,
		registry: registry,
		stream:   stream,
	}, nil
}

// buildRegistry constructs one uninitialized pool per configured MCP
// server kind and registers them by name.
func buildRegistry(pools []config.PoolConfig) (*pool.Registry[*mcpserver.Server], error) {
	registry := pool.NewRegistry[*mcpserver.Server]()
	for _, pc := range pools {
		factory := mcpserver.NewServerFactory(pc.Name, mcpserver.ClientConfig{
			Transport: pc.Server.Transport,
			Command:   pc.Server.Command,
			Args:      pc.Server.Args,
			Env:       pc.Server.Env,
			URL:       pc.Server.URL,
			Headers:   pc.Server.Headers,
		})

		p, err := pool.New[*mcpserver.Server](pc.Name, pc.Size, factory)
		if err != nil {
			return nil, fmt.Errorf("building pool %q: %w", pc.Name, err)
		}
		if err := registry.Register(p); err != nil {
			return nil, fmt.Errorf("registering pool %q: %w", pc.Name, err)
		}
	}
	return registry, nil
}

// Registry exposes the pool registry, primarily for tests and
// diagnostics.
func (a *Application) Registry() *pool.Registry[*mcpserver.Server] {
	return a.registry
}
