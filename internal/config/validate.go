package config

import (
	"fmt"

	kferrors "github.com/keyfold/keyfold/internal/errors"
	"github.com/keyfold/keyfold/pkg/keyword"
)

// validLogLevels are the accepted output.log_level values.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks the configuration for contract violations. Dictionary
// names and keys must be lowercase ASCII: an uppercase key could never be
// matched at lookup time, so it is rejected here rather than silently
// accepted.
func Validate(cfg *Config) error {
	const op = "config.Validate"

	if !validLogLevels[cfg.Output.LogLevel] {
		return kferrors.Config(op, fmt.Sprintf("invalid log level %q", cfg.Output.LogLevel))
	}

	for name, entries := range cfg.Dictionaries {
		if name == "" {
			return kferrors.Validation(op, "dictionary with empty name")
		}
		if !keyword.IsLower(name) {
			return kferrors.Validation(op,
				fmt.Sprintf("dictionary name %q contains uppercase ASCII", name))
		}
		for k := range entries {
			if !keyword.IsLower(k) {
				return kferrors.Validation(op,
					fmt.Sprintf("dictionary %q: key %q contains uppercase ASCII", name, k))
			}
		}
	}

	return nil
}
