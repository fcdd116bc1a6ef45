package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the dingtalk-agent application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "dingtalk-agent",
	Short: "Bridge DingTalk conversations to an LLM agent with MCP tools",
	Long: `dingtalk-agent connects a DingTalk chat bot to an LLM-driven agent.
Incoming stream messages are interpreted by the model, which can call
tools on pooled MCP (Model Context Protocol) servers to answer them.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors that
	// are handled by the application, keeping error output clean.
	SilenceUsage: true,
}

// SetVersion sets the version for the root command.
// This is called from the main package to inject the build version.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application. It runs the
// root command, which in turn handles subcommands and flags. Called by
// main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "dingtalk-agent version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
