package config

import "os"

const (
	// DefaultLLMBaseURL is the OpenAI-compatible endpoint used when none
	// is configured.
	DefaultLLMBaseURL = "https://api.openai.com/v1"
	// DefaultLLMModel is the chat model used when none is configured.
	DefaultLLMModel = "gpt-4o"
	// DefaultMaxToolRounds caps the agent's tool-call loop per message.
	DefaultMaxToolRounds = 8
	// DefaultPoolSize is the pool capacity used when a pool omits size.
	DefaultPoolSize = 2
)

// GetDefaultConfig returns the default configuration. Credentials are
// taken from the environment so a config file never has to contain
// secrets.
func GetDefaultConfig() Config {
	return Config{
		LLM: LLMConfig{
			BaseURL:       DefaultLLMBaseURL,
			APIKey:        os.Getenv("LLM_API_KEY"),
			Model:         DefaultLLMModel,
			MaxToolRounds: DefaultMaxToolRounds,
		},
		DingTalk: DingTalkConfig{
			ClientID:     os.Getenv("DINGTALK_CLIENT_ID"),
			ClientSecret: os.Getenv("DINGTALK_CLIENT_SECRET"),
		},
	}
}

// applyDefaults fills unset fields after unmarshalling.
func applyDefaults(cfg *Config) {
	if cfg.LLM.BaseURL == "" {
		cfg.LLM.BaseURL = DefaultLLMBaseURL
	}
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = DefaultLLMModel
	}
	if cfg.LLM.MaxToolRounds <= 0 {
		cfg.LLM.MaxToolRounds = DefaultMaxToolRounds
	}
	if cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = os.Getenv("LLM_API_KEY")
	}
	if cfg.DingTalk.ClientID == "" {
		cfg.DingTalk.ClientID = os.Getenv("DINGTALK_CLIENT_ID")
	}
	if cfg.DingTalk.ClientSecret == "" {
		cfg.DingTalk.ClientSecret = os.Getenv("DINGTALK_CLIENT_SECRET")
	}
	for i := range cfg.Pools {
		// Only fill unset sizes; explicit non-positive values are left
		// for validation to reject.
		if cfg.Pools[i].Size == 0 {
			cfg.Pools[i].Size = DefaultPoolSize
		}
	}
}
