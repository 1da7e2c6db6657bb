// Package config provides the ambient settings shared by the linetools binaries.
//
// Settings never change what a filter outputs; they tune logging and input
// limits only.
package config

// Config is the root settings structure loaded from YAML.
type Config struct {
	// LogLevel is the minimum level written to standard error.
	LogLevel string `yaml:"log_level"`

	// MaxLineBytes is the longest input line accepted by the line readers.
	// Longer lines are a read failure.
	MaxLineBytes int `yaml:"max_line_bytes"`
}
