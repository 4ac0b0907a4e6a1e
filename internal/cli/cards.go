package cli

import (
	"flag"
	"fmt"
	"io"

	"studydeck/internal/config"
	"studydeck/internal/deck"
	"studydeck/internal/ui/cardsui"
)

// runCards builds the handler for the cards command.
func runCards(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		title := flags.String("title", "", "Deck title shown above the card (default: config)")
		shuffle := flags.Bool("shuffle", false, "Start with the deck shuffled")
		seed := flags.Int64("seed", 0, "Shuffle seed (default: current time)")
		uiMode := flags.String("ui", "", "UI mode: auto|live (default: config)")
		noColor := flags.Bool("no-color", false, "Disable colors")
		configPath := flags.String("config", "", "Path to config file (default: ./"+config.DefaultFileName+")")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() != 1 {
			fmt.Fprintln(stderr, "expected exactly one deck file")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitError
		}

		cards, err := deck.LoadCards(flags.Arg(0))
		if err != nil {
			fmt.Fprintf(stderr, "Load failed: %v\n", err)
			return ExitError
		}

		mode := *uiMode
		if mode == "" {
			mode = cfg.UI.Mode
		}
		decision, err := resolveUIMode(mode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if !decision.useLive {
			fmt.Fprintln(stderr, "The flashcard viewer needs an interactive terminal.")
			return ExitError
		}

		deckTitle := cfg.Cards.Title
		if *title != "" {
			deckTitle = *title
		}
		noColorOn := cfg.UI.NoColor
		if flagWasSet(flags, "no-color") {
			noColorOn = *noColor
		}
		shuffleSeed := *seed
		if shuffleSeed == 0 {
			shuffleSeed = timeSeed()
		}
		opts := cardsui.Options{
			Title:   deckTitle,
			NoColor: noColorOn,
			Seed:    shuffleSeed,
			Shuffle: *shuffle,
		}
		if err := cardsui.Run(cards, stdout, opts); err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
