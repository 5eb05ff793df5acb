package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	kferrors "github.com/keyfold/keyfold/internal/errors"
)

// LookupResult is the outcome of resolving a single key.
type LookupResult struct {
	Key   string `json:"key"`
	Value string `json:"value,omitempty"`
	Found bool   `json:"found"`
}

// LookupReport is the JSON output of the lookup command.
type LookupReport struct {
	Dictionary string         `json:"dictionary"`
	Results    []LookupResult `json:"results"`
	Misses     int            `json:"misses"`
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <dictionary> <key>...",
	Short: "Resolve keys against a dictionary, ASCII case-insensitively",
	Long: `Resolve one or more keys against the named dictionary.

Keys match case-insensitively in the ASCII range: "RED", "Red" and "red"
all resolve to the same entry of css-colors. Keys longer than the longest
dictionary entry never match.

Exit codes:
  0 - every key resolved
  1 - at least one key missed, or the dictionary does not exist`,
	Args: cobra.MinimumNArgs(2),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	name, keys := args[0], args[1:]

	dict, err := resolveDictionary(name)
	if err != nil {
		return err
	}
	logger.Debug("resolved dictionary", "name", name, "entries", dict.Len(), "max_key_len", dict.MaxKeyLen())

	report := LookupReport{Dictionary: name, Results: make([]LookupResult, 0, len(keys))}
	for _, key := range keys {
		value, found := dict.Lookup(key)
		if !found {
			report.Misses++
		}
		report.Results = append(report.Results, LookupResult{Key: key, Value: value, Found: found})
	}

	out := cmd.OutOrStdout()
	if cfg.Output.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		for _, r := range report.Results {
			if r.Found {
				fmt.Fprintf(out, "%s = %s\n", styles.Key.Render(r.Key), styles.Value.Render(r.Value))
			} else {
				fmt.Fprintf(out, "%s %s\n", styles.Key.Render(r.Key), styles.Error.Render("(no match)"))
			}
		}
	}

	if report.Misses > 0 {
		return kferrors.Newf(kferrors.KindNotFound, "%d of %d keys not found", report.Misses, len(keys))
	}
	return nil
}
