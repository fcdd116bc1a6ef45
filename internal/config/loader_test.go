package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, configFileName), []byte(content), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig returned error for missing file: %v", err)
	}

	if cfg.LLM.BaseURL != DefaultLLMBaseURL {
		t.Errorf("expected default base URL %s, got %s", DefaultLLMBaseURL, cfg.LLM.BaseURL)
	}
	if cfg.LLM.Model != DefaultLLMModel {
		t.Errorf("expected default model %s, got %s", DefaultLLMModel, cfg.LLM.Model)
	}
	if cfg.LLM.MaxToolRounds != DefaultMaxToolRounds {
		t.Errorf("expected default max tool rounds %d, got %d", DefaultMaxToolRounds, cfg.LLM.MaxToolRounds)
	}
}

func TestLoadConfig_FullFile(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, `
llm:
  baseURL: https://llm.internal/v1
  apiKey: sk-test
  model: qwen-max
dingtalk:
  clientID: ding-id
  clientSecret: ding-secret
pools:
  - name: stdio
    size: 3
    server:
      transport: stdio
      command: employee-info-mcp
      args: ["--fast"]
      env:
        REGION: cn-hangzhou
  - name: code-analysis
    server:
      transport: streamable-http
      url: https://mcp.internal/mcp
`)

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.LLM.Model != "qwen-max" {
		t.Errorf("expected model qwen-max, got %s", cfg.LLM.Model)
	}
	if len(cfg.Pools) != 2 {
		t.Fatalf("expected 2 pools, got %d", len(cfg.Pools))
	}
	if cfg.Pools[0].Size != 3 {
		t.Errorf("expected pool size 3, got %d", cfg.Pools[0].Size)
	}
	// Omitted size falls back to the default.
	if cfg.Pools[1].Size != DefaultPoolSize {
		t.Errorf("expected default pool size %d, got %d", DefaultPoolSize, cfg.Pools[1].Size)
	}
	if cfg.Pools[0].Server.Env["REGION"] != "cn-hangzhou" {
		t.Errorf("expected env REGION to survive loading, got %v", cfg.Pools[0].Server.Env)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got: %v", err)
	}
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "llm: [not a mapping")

	_, err := LoadConfig(dir)
	if err == nil {
		t.Fatal("expected error for malformed config")
	}
}
