package config

// Default values for configuration.
const (
	DefaultLogLevel     = "error"
	DefaultMaxLineBytes = 16 * 1024 * 1024

	// MinMaxLineBytes matches bufio.Scanner's initial buffer.
	MinMaxLineBytes = 4096
)

// Environment variable names.
const (
	EnvConfigFile   = "LINETOOLS_CONFIG"
	EnvLogLevel     = "LINETOOLS_LOG"
	EnvMaxLineBytes = "LINETOOLS_MAX_LINE_BYTES"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:     DefaultLogLevel,
		MaxLineBytes: DefaultMaxLineBytes,
	}
}
