package app

// Config holds the runtime options for the application, assembled from
// command line flags by cmd.
type Config struct {
	// Debug enables verbose logging across all subsystems.
	Debug bool
	// Silent suppresses all log output; useful in tests and scripting.
	Silent bool
	// ConfigPath overrides the default configuration directory.
	ConfigPath string
}

// NewConfig creates the application configuration from command line
// flags.
func NewConfig(debug, silent bool, configPath string) *Config {
	return &Config{
		Debug:      debug,
		Silent:     silent,
		ConfigPath: configPath,
	}
}
