package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetVersion(t *testing.T) {
	SetVersion("1.2.3")
	if rootCmd.Version != "1.2.3" {
		t.Errorf("expected version 1.2.3, got %s", rootCmd.Version)
	}
}

func TestVersionCommand(t *testing.T) {
	SetVersion("9.9.9")

	var buf bytes.Buffer
	cmd := newVersionCmd()
	cmd.SetOut(&buf)
	cmd.Run(cmd, nil)

	if !strings.Contains(buf.String(), "dingtalk-agent version 9.9.9") {
		t.Errorf("unexpected version output: %q", buf.String())
	}
}

func TestServeCommandFlags(t *testing.T) {
	for _, flag := range []string{"debug", "silent", "config-path"} {
		if serveCmd.Flags().Lookup(flag) == nil {
			t.Errorf("serve command is missing the --%s flag", flag)
		}
	}
}

func TestServeCommandRegistered(t *testing.T) {
	for _, c := range rootCmd.Commands() {
		if c.Name() == "serve" {
			return
		}
	}
	t.Error("serve command is not registered on the root command")
}
