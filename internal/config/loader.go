package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	kferrors "github.com/keyfold/keyfold/internal/errors"
)

// Loader handles configuration loading and merging.
type Loader struct {
	v           *viper.Viper
	configPath  string
	searchPaths []string
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix("KEYFOLD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return &Loader{
		v:           v,
		searchPaths: []string{"."},
	}
}

// WithConfigPath sets an explicit config file path.
func (l *Loader) WithConfigPath(path string) *Loader {
	l.configPath = path
	return l
}

// WithSearchPaths adds directories to search for config files.
func (l *Loader) WithSearchPaths(paths ...string) *Loader {
	l.searchPaths = append(l.searchPaths, paths...)
	return l
}

// Load loads the configuration. A missing config file is not an error; the
// defaults apply. Dictionary files referenced by the config are loaded and
// merged, then the whole result is validated.
func (l *Loader) Load() (*Config, error) {
	const op = "config.Load"

	l.setDefaults()

	if err := l.loadConfigFile(); err != nil {
		return nil, kferrors.ConfigWrap(err, op, "failed to load config file")
	}

	cfg := &Config{}
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, kferrors.ConfigWrap(err, op, "failed to unmarshal config")
	}

	// Viper lowercases map keys, so the dictionaries section is read from
	// the raw YAML to keep key case observable for validation.
	if err := l.loadInlineDictionaries(cfg); err != nil {
		return nil, err
	}

	if err := l.mergeDictionaryFiles(cfg); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setDefaults sets default values using Viper.
func (l *Loader) setDefaults() {
	defaults := DefaultConfig()

	l.v.SetDefault("output.log_level", defaults.Output.LogLevel)
	l.v.SetDefault("output.color", defaults.Output.Color)
	l.v.SetDefault("output.json", defaults.Output.JSON)
	l.v.SetDefault("output.verbose", defaults.Output.Verbose)
}

// loadConfigFile reads the config file if one exists.
func (l *Loader) loadConfigFile() error {
	if l.configPath != "" {
		l.v.SetConfigFile(l.configPath)
		return l.v.ReadInConfig()
	}

	l.v.SetConfigName("keyfold")
	l.v.SetConfigType("yaml")
	for _, p := range l.searchPaths {
		l.v.AddConfigPath(p)
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

// loadInlineDictionaries reads the dictionaries section straight from the
// config file, preserving key case.
func (l *Loader) loadInlineDictionaries(cfg *Config) error {
	const op = "config.loadInlineDictionaries"

	path := l.v.ConfigFileUsed()
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return kferrors.IOWrap(err, op, fmt.Sprintf("reading config file %s", path))
	}

	var raw struct {
		Dictionaries map[string]map[string]string `yaml:"dictionaries"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return kferrors.ConfigWrap(err, op, fmt.Sprintf("parsing config file %s", path))
	}

	cfg.Dictionaries = raw.Dictionaries
	return nil
}

// mergeDictionaryFiles loads each standalone dictionary file and merges its
// dictionaries into cfg. Entries from files lose to entries declared inline
// in the config for the same dictionary name.
func (l *Loader) mergeDictionaryFiles(cfg *Config) error {
	const op = "config.mergeDictionaryFiles"

	for _, path := range cfg.DictionaryFiles {
		data, err := os.ReadFile(path)
		if err != nil {
			return kferrors.IOWrap(err, op, fmt.Sprintf("reading dictionary file %s", path))
		}

		var dicts map[string]map[string]string
		if err := yaml.Unmarshal(data, &dicts); err != nil {
			return kferrors.ConfigWrap(err, op, fmt.Sprintf("parsing dictionary file %s", path))
		}

		if cfg.Dictionaries == nil {
			cfg.Dictionaries = make(map[string]map[string]string)
		}
		for name, entries := range dicts {
			merged, ok := cfg.Dictionaries[name]
			if !ok {
				cfg.Dictionaries[name] = entries
				continue
			}
			for k, v := range entries {
				if _, exists := merged[k]; !exists {
					merged[k] = v
				}
			}
		}
	}
	return nil
}
