package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darrenyao/dingtalk-agent-sdk/internal/pool"
)

const testConfig = `
llm:
  baseURL: https://llm.internal/v1
  apiKey: sk-test
  model: qwen-max
dingtalk:
  clientID: ding-id
  clientSecret: ding-secret
pools:
  - name: stdio
    size: 2
    server:
      transport: stdio
      command: employee-info-mcp
  - name: code-analysis
    size: 1
    server:
      transport: streamable-http
      url: https://mcp.internal/mcp
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))
	return dir
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig(true, true, "/tmp/conf")
	assert.True(t, cfg.Debug)
	assert.True(t, cfg.Silent)
	assert.Equal(t, "/tmp/conf", cfg.ConfigPath)
}

func TestNewApplication_WiresPools(t *testing.T) {
	dir := writeTestConfig(t, testConfig)

	application, err := NewApplication(NewConfig(false, true, dir))
	require.NoError(t, err)

	registry := application.Registry()
	assert.Equal(t, []string{"code-analysis", "stdio"}, registry.Names())

	stdio, ok := registry.Get("stdio")
	require.True(t, ok)
	assert.Equal(t, 2, stdio.Capacity())
	// Bootstrap only wires; nothing is connected yet.
	assert.Equal(t, pool.StateUninitialized, stdio.State())
	assert.Equal(t, 0, stdio.Tracked())
}

func TestNewApplication_InvalidConfig(t *testing.T) {
	dir := writeTestConfig(t, `
llm:
  apiKey: sk-test
pools: []
`)

	_, err := NewApplication(NewConfig(false, true, dir))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestNewApplication_MalformedConfig(t *testing.T) {
	dir := writeTestConfig(t, "pools: [broken")

	_, err := NewApplication(NewConfig(false, true, dir))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}
