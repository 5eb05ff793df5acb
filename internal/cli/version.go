package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keyfold/keyfold/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
	v := versionInfo.Version
	if v == "" || v == "dev" {
		v = version.Get()
	}

	out := cmd.OutOrStdout()
	if outputJSON {
		return json.NewEncoder(out).Encode(map[string]string{
			"version": v,
			"commit":  versionInfo.Commit,
			"date":    versionInfo.Date,
		})
	}

	fmt.Fprintf(out, "keyfold %s\n", v)
	if versionInfo.Commit != "" && versionInfo.Commit != "none" {
		fmt.Fprintf(out, "  commit: %s\n", versionInfo.Commit)
	}
	if versionInfo.Date != "" && versionInfo.Date != "unknown" {
		fmt.Fprintf(out, "  built:  %s\n", versionInfo.Date)
	}
	return nil
}
