package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/darrenyao/dingtalk-agent-sdk/internal/app"
)

// serveDebug enables verbose logging across the application.
var serveDebug bool

// serveSilent suppresses all log output; useful for scripting.
var serveSilent bool

// serveConfigPath specifies a custom configuration directory path.
// The directory should contain config.yaml.
var serveConfigPath string

// serveCmd starts the bridge: it brings up the MCP server pools,
// connects the DingTalk stream client, and serves messages until
// terminated.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the DingTalk agent bridge",
	Long: `Starts the DingTalk agent bridge.

On startup every configured MCP server pool is initialized to full
capacity (startup is all-or-nothing: if any server fails to connect the
process exits with an error instead of running degraded). The DingTalk
stream client then connects and messages are served until the process
receives SIGINT or SIGTERM, at which point the stream client stops and
every pool drains its connections.

Configuration:
  dingtalk-agent reads config.yaml from ~/.config/dingtalk-agent by
  default. Use --config-path to point at a different directory.
  Credentials may come from the environment: LLM_API_KEY,
  DINGTALK_CLIENT_ID, DINGTALK_CLIENT_SECRET.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

// runServe is the main entry point for the serve command
func runServe(cmd *cobra.Command, args []string) error {
	cfg := app.NewConfig(serveDebug, serveSilent, serveConfigPath)

	application, err := app.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.Run(ctx)
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")
	serveCmd.Flags().BoolVar(&serveSilent, "silent", false, "Suppress all log output")
	serveCmd.Flags().StringVar(&serveConfigPath, "config-path", "", "Custom configuration directory path")
}
