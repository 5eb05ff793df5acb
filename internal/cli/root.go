// Package cli provides the command-line interface for keyfold.
package cli

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/keyfold/keyfold/internal/config"
	kferrors "github.com/keyfold/keyfold/internal/errors"
	"github.com/keyfold/keyfold/pkg/keyword"
	"github.com/keyfold/keyfold/pkg/registry"
)

var (
	// Version information set by main.
	versionInfo struct {
		Version string
		Commit  string
		Date    string
	}

	// Global flags
	cfgFile    string
	verbose    bool
	outputJSON bool
	noColor    bool
	logLevel   string

	// Global config
	cfg *config.Config

	// Logger
	logger *log.Logger

	// Styles
	styles = struct {
		Key    lipgloss.Style
		Value  lipgloss.Style
		Error  lipgloss.Style
		Subtle lipgloss.Style
		Bold   lipgloss.Style
	}{
		Key:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Value:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Subtle: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Bold:   lipgloss.NewStyle().Bold(true),
	}
)

// SetVersionInfo sets the version information from main.
func SetVersionInfo(version, commit, date string) {
	versionInfo.Version = version
	versionInfo.Commit = commit
	versionInfo.Date = date
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "keyfold",
	Short: "ASCII case-insensitive keyword lookup",
	Long: `keyfold resolves keywords against fixed dictionaries, matching
case-insensitively in the ASCII range.

Built-in dictionaries cover the CSS named colors and the well-known
certificate property OIDs. Custom dictionaries can be declared in
keyfold.yaml or in standalone dictionary files.

Folding never touches bytes outside 'A'..'Z', so UTF-8 input passes
through intact.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}
		return initConfig()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with a context for graceful shutdown.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: keyfold.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "output results as JSON")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}

// initConfig loads the configuration and applies global flags.
func initConfig() error {
	loader := config.NewLoader()
	if cfgFile != "" {
		loader.WithConfigPath(cfgFile)
	}

	var err error
	cfg, err = loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if verbose {
		cfg.Output.Verbose = true
	}
	if outputJSON {
		cfg.Output.JSON = true
	}
	if noColor {
		cfg.Output.Color = false
	}
	if logLevel != "" {
		cfg.Output.LogLevel = logLevel
	}

	if !cfg.Output.Color {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	configureLogLevel()
	return nil
}

// configureLogLevel sets the logger level based on configuration.
func configureLogLevel() {
	switch cfg.Output.LogLevel {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}

	if cfg.Output.Verbose {
		logger.SetLevel(log.DebugLevel)
	}
}

// resolveDictionary returns the named dictionary, letting a user-configured
// dictionary shadow a built-in of the same name.
func resolveDictionary(name string) (*keyword.Dictionary[string], error) {
	const op = "cli.resolveDictionary"

	if cfg != nil {
		if entries, ok := cfg.Dictionaries[keyword.Fold(name)]; ok {
			d, err := keyword.NewDictionary(entries)
			if err != nil {
				return nil, kferrors.ValidationWrap(err, op, fmt.Sprintf("dictionary %q", name))
			}
			return d, nil
		}
	}

	if d, ok := registry.Get(name); ok {
		return d, nil
	}

	return nil, kferrors.NotFound(op, fmt.Sprintf("no dictionary named %q", name))
}

// dictionaryNames returns the names of all available dictionaries, sorted,
// with configured dictionaries shadowing built-ins.
func dictionaryNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, n := range registry.Names() {
		seen[n] = true
		names = append(names, n)
	}
	if cfg != nil {
		for n := range cfg.Dictionaries {
			if !seen[n] {
				names = append(names, n)
			}
		}
	}
	sort.Strings(names)
	return names
}
