package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"studydeck/internal/quiz"
)

// runPlainQuiz drives a started session over line-oriented input, for
// non-TTY output or an explicit plain mode. Time still accrues between
// prompts, so timeouts fire on the next read.
func runPlainQuiz(session *quiz.Session, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for session.Phase() == quiz.PhaseActive {
		session.Tick()
		fired, err := session.HandleTimeout()
		if err != nil {
			return err
		}
		if fired {
			fmt.Fprintln(out, "Time's up! Moving on.")
			fmt.Fprintln(out)
			continue
		}

		view := session.Snapshot()
		printPlainQuestion(out, view)
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			if err := session.Finish(); err != nil {
				return err
			}
			break
		}
		if err := applyPlainCommand(session, out, scanner.Text()); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}
	printPlainResults(out, session)
	return nil
}

// applyPlainCommand interprets one input line against the session.
func applyPlainCommand(session *quiz.Session, out io.Writer, line string) error {
	input := strings.ToLower(strings.TrimSpace(line))
	switch input {
	case "":
		if session.IsSubmitted(session.Current()) {
			return advancePlain(session)
		}
		if err := session.Submit(); err != nil {
			return err
		}
		printPlainFeedback(out, session.Snapshot())
		return nil
	case "a", "b", "c", "d":
		letter := quiz.Letter(strings.ToUpper(input))
		if err := session.SelectDraft(letter); err != nil {
			fmt.Fprintf(out, "Cannot select %s: %v\n", letter, err)
		}
		return nil
	case "n":
		return advancePlain(session)
	case "p":
		if session.Current() > 0 {
			return session.Navigate(session.Current() - 1)
		}
		return nil
	case "h":
		if hint := session.Snapshot().Hint; hint != "" {
			fmt.Fprintf(out, "Hint: %s\n", hint)
		} else {
			fmt.Fprintln(out, "No hint for this question.")
		}
		return nil
	case "f", "q":
		return session.Finish()
	default:
		fmt.Fprintf(out, "Unknown input %q. Use a-d, Enter, n, p, h, f, q.\n", line)
		return nil
	}
}

// advancePlain moves forward, finishing after the last question.
func advancePlain(session *quiz.Session) error {
	if session.Current()+1 < session.Len() {
		return session.Navigate(session.Current() + 1)
	}
	return session.Finish()
}

// printPlainQuestion prints the open question, its options, and state.
func printPlainQuestion(out io.Writer, view quiz.View) {
	fmt.Fprintf(out, "Question %d of %d", view.Index+1, view.Total)
	if view.HasTimer {
		fmt.Fprintf(out, "  [%.0fs left]", view.RemainingSeconds)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, view.QuestionText)
	for _, option := range view.Options {
		marker := " "
		if view.Selected != nil && view.Selected.Letter == option.Letter {
			marker = ">"
		}
		fmt.Fprintf(out, "%s %s. %s\n", marker, option.Letter, option.Text)
	}
	if view.IsSubmitted {
		printPlainFeedback(out, view)
		fmt.Fprintln(out, "(submitted; Enter moves on)")
	} else {
		fmt.Fprintln(out, "a-d select, Enter submit, n/p move, h hint, f finish, q quit")
	}
}

// printPlainFeedback prints grading feedback for a submitted question.
func printPlainFeedback(out io.Writer, view quiz.View) {
	if view.IsCorrect {
		fmt.Fprintln(out, "Correct!")
	} else if view.CorrectResolved {
		fmt.Fprintf(out, "Incorrect. The correct answer is %s.\n", view.CorrectLetter)
	} else {
		fmt.Fprintf(out, "Incorrect. The correct answer is: %s\n", view.CorrectRaw)
	}
	if view.RationaleText != "" {
		fmt.Fprintf(out, "Rationale: %s\n", view.RationaleText)
	}
}

// printPlainResults prints the final score and a per-question breakdown.
func printPlainResults(out io.Writer, session *quiz.Session) {
	total := session.Len()
	score := session.Score()
	fmt.Fprintln(out, "Quiz complete!")
	fmt.Fprintf(out, "Score: %d/%d (%.0f%%)\n", score, total, float64(score)*100/float64(total))
	for index := 0; index < total; index++ {
		record, err := session.Item(index)
		if err != nil {
			continue
		}
		result := "incorrect"
		if session.Policy().IsCorrect(session.Selected(index), record) {
			result = "correct"
		}
		fmt.Fprintf(out, "  Q%d: %s (%.0fs)\n", index+1, result, session.Elapsed(index))
	}
}
