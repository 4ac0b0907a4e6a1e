package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"studydeck/internal/config"
	"studydeck/internal/deck"
	"studydeck/internal/quiz"
	"studydeck/internal/ui/quizui"
)

// stdin is the interactive input for the plain quiz driver.
var stdin io.Reader = os.Stdin

// timeSeed supplies shuffle seeds when none is given.
var timeSeed = func() int64 { return time.Now().UnixNano() }

// runQuiz builds the handler for the quiz command.
func runQuiz(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		timer := flags.Float64("timer", -1, "Per-question seconds, 0 for unlimited (default: config)")
		shuffle := flags.Bool("shuffle", false, "Shuffle question order")
		seed := flags.Int64("seed", 0, "Shuffle seed (default: current time)")
		uiMode := flags.String("ui", "", "UI mode: auto|live|plain (default: config)")
		noColor := flags.Bool("no-color", false, "Disable colors in the live UI")
		fuzzy := flags.Bool("fuzzy-match", false, "Allow loose correct-answer matching")
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

		records, err := deck.LoadQuiz(flags.Arg(0))
		if err != nil {
			fmt.Fprintf(stderr, "Load failed: %v\n", err)
			return ExitError
		}
		for _, diagnostic := range deck.Check(records) {
			fmt.Fprintf(stderr, "Warning: %s\n", diagnostic)
		}

		timerSeconds := cfg.Quiz.TimerSeconds
		if *timer >= 0 {
			timerSeconds = *timer
		}
		shuffleOn := cfg.Quiz.Shuffle
		if flagWasSet(flags, "shuffle") {
			shuffleOn = *shuffle
		}
		shuffleSeed := *seed
		if shuffleSeed == 0 {
			shuffleSeed = timeSeed()
		}
		session, err := quiz.NewSession(records, quiz.Options{
			TimerSeconds: timerSeconds,
			Shuffle:      shuffleOn,
			Seed:         shuffleSeed,
			Policy:       quiz.ResolvePolicy{AllowFuzzy: *fuzzy},
		})
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitError
		}
		if err := session.Start(); err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
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
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		if decision.useLive {
			noColorOn := cfg.UI.NoColor
			if flagWasSet(flags, "no-color") {
				noColorOn = *noColor
			}
			opts := quizui.Options{
				NoColor:      noColorOn,
				TickInterval: time.Duration(cfg.UI.TickIntervalMS) * time.Millisecond,
			}
			if err := quizui.Run(session, stdout, opts); err != nil {
				fmt.Fprintf(stderr, "%v\n", err)
				return ExitError
			}
			return ExitOK
		}
		if err := runPlainQuiz(session, stdin, stdout); err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

// loadConfig loads an explicit config file, or the working-directory
// default, falling back to built-in defaults when absent.
func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadDefault()
}
