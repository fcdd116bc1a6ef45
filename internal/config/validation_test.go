package config

import (
	"errors"
	"strings"
	"testing"
)

func validConfig() Config {
	return Config{
		LLM: LLMConfig{
			BaseURL:       DefaultLLMBaseURL,
			APIKey:        "sk-test",
			Model:         DefaultLLMModel,
			MaxToolRounds: DefaultMaxToolRounds,
		},
		DingTalk: DingTalkConfig{
			ClientID:     "ding-id",
			ClientSecret: "ding-secret",
		},
		Pools: []PoolConfig{
			{
				Name: "stdio",
				Size: 2,
				Server: MCPServerDef{
					Transport: "stdio",
					Command:   "employee-info-mcp",
				},
			},
		},
	}
}

func TestValidate_OK(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got: %v", err)
	}
}

func TestValidate_Findings(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{"missing api key", func(c *Config) { c.LLM.APIKey = "" }, "llm.apiKey"},
		{"missing dingtalk id", func(c *Config) { c.DingTalk.ClientID = "" }, "dingtalk.clientID"},
		{"missing dingtalk secret", func(c *Config) { c.DingTalk.ClientSecret = "" }, "dingtalk.clientSecret"},
		{"no pools", func(c *Config) { c.Pools = nil }, "pools"},
		{"negative pool size", func(c *Config) { c.Pools[0].Size = -1 }, "pools[0].size"},
		{"unnamed pool", func(c *Config) { c.Pools[0].Name = "" }, "pools[0].name"},
		{"unknown transport", func(c *Config) { c.Pools[0].Server.Transport = "pigeon" }, "pools[0].server.transport"},
		{"stdio without command", func(c *Config) { c.Pools[0].Server.Command = "" }, "pools[0].server.command"},
		{
			"remote without url",
			func(c *Config) { c.Pools[0].Server = MCPServerDef{Transport: "sse"} },
			"pools[0].server.url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantField) {
				t.Errorf("expected error mentioning %s, got: %v", tt.wantField, err)
			}
		})
	}
}

func TestValidate_DuplicatePoolNames(t *testing.T) {
	cfg := validConfig()
	cfg.Pools = append(cfg.Pools, cfg.Pools[0])

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error for duplicate pool name")
	}

	var errs ValidationErrors
	if !errors.As(err, &errs) {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if !strings.Contains(errs.Error(), "duplicate pool name") {
		t.Errorf("expected duplicate pool finding, got: %v", errs)
	}
}

func TestValidate_CollectsAllFindings(t *testing.T) {
	cfg := Config{}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors for empty config")
	}

	var errs ValidationErrors
	if !errors.As(err, &errs) {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(errs) < 4 {
		t.Errorf("expected every missing field reported, got %d findings: %v", len(errs), errs)
	}
}
