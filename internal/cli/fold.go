package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keyfold/keyfold/pkg/keyword"
)

var foldCmd = &cobra.Command{
	Use:   "fold [text...]",
	Short: "ASCII-lowercase text",
	Long: `Lowercase the arguments in the ASCII range and print one result
per line. With no arguments, lines are read from stdin.

Only bytes 'A'..'Z' are folded; everything else, including multi-byte
UTF-8 sequences, passes through unchanged.`,
	RunE: runFold,
}

func init() {
	rootCmd.AddCommand(foldCmd)
}

func runFold(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) > 0 {
		for _, s := range args {
			fmt.Fprintln(out, keyword.Fold(s))
		}
		return nil
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		fmt.Fprintln(out, keyword.Fold(scanner.Text()))
	}
	return scanner.Err()
}
