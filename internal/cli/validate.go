package cli

import (
	"fmt"
	"io"

	"studydeck/internal/deck"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		if len(args) != 1 {
			fmt.Fprintln(stderr, "expected exactly one deck file")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		records, err := deck.LoadQuiz(args[0])
		if err != nil {
			fmt.Fprintf(stderr, "Load failed: %v\n", err)
			return ExitError
		}
		diagnostics := deck.Check(records)
		for _, diagnostic := range diagnostics {
			fmt.Fprintf(stdout, "Warning: %s\n", diagnostic)
		}
		if len(diagnostics) > 0 {
			fmt.Fprintf(stdout, "Deck OK (%d questions, %d warning(s))\n", len(records), len(diagnostics))
			return ExitOK
		}
		fmt.Fprintf(stdout, "Deck OK (%d questions)\n", len(records))
		return ExitOK
	}
}
