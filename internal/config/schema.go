// Package config provides configuration management for keyfold.
package config

// Config is the root configuration.
type Config struct {
	// Output controls CLI output and logging behavior.
	Output OutputConfig `mapstructure:"output"`

	// Dictionaries holds user-defined dictionaries, keyed by dictionary
	// name. A user dictionary shadows a built-in of the same name.
	// Populated from the raw YAML rather than through viper: viper
	// lowercases map keys, which would mask the uppercase-key contract
	// check.
	Dictionaries map[string]map[string]string `mapstructure:"-"`

	// DictionaryFiles lists standalone YAML files to load additional
	// dictionaries from. Each file holds a name -> entries mapping.
	DictionaryFiles []string `mapstructure:"dictionary_files"`
}

// OutputConfig controls CLI output and logging.
type OutputConfig struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`

	// Color enables colored terminal output.
	Color bool `mapstructure:"color"`

	// JSON switches command output to JSON.
	JSON bool `mapstructure:"json"`

	// Verbose enables debug-level logging regardless of LogLevel.
	Verbose bool `mapstructure:"verbose"`
}

// DefaultConfig returns the configuration defaults.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			LogLevel: "info",
			Color:    true,
		},
	}
}
