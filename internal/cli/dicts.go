package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// DictInfo describes one available dictionary.
type DictInfo struct {
	Name      string `json:"name"`
	Source    string `json:"source"` // "built-in" or "config"
	Entries   int    `json:"entries"`
	MaxKeyLen int    `json:"max_key_len"`
}

var dictsCmd = &cobra.Command{
	Use:   "dicts",
	Short: "List available dictionaries",
	Long: `List the available dictionaries: the built-ins shipped with
keyfold and any dictionaries declared in the configuration. A configured
dictionary shadows a built-in of the same name.`,
	RunE: runDicts,
}

func init() {
	rootCmd.AddCommand(dictsCmd)
}

func runDicts(cmd *cobra.Command, args []string) error {
	var infos []DictInfo
	for _, name := range dictionaryNames() {
		source := "built-in"
		if _, configured := cfg.Dictionaries[name]; configured {
			source = "config"
		}
		dict, err := resolveDictionary(name)
		if err != nil {
			return err
		}
		infos = append(infos, DictInfo{
			Name:      name,
			Source:    source,
			Entries:   dict.Len(),
			MaxKeyLen: dict.MaxKeyLen(),
		})
	}

	out := cmd.OutOrStdout()
	if cfg.Output.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	for _, info := range infos {
		fmt.Fprintf(out, "%s  %s\n", styles.Bold.Render(info.Name),
			styles.Subtle.Render(fmt.Sprintf("(%s, %d entries, max key %d)",
				info.Source, info.Entries, info.MaxKeyLen)))
	}
	return nil
}
