package deck

import (
	"fmt"

	"studydeck/internal/quiz"
)

// Diagnostic flags a data-quality concern in a loaded quiz deck. These are
// warnings, not load failures: the affected question still runs, it just
// cannot be graded by letter.
type Diagnostic struct {
	Question int // 1-based position in the deck
	Message  string
}

// String renders the diagnostic for display.
func (d Diagnostic) String() string {
	return fmt.Sprintf("question %d: %s", d.Question, d.Message)
}

// Check inspects loaded records for correct-answer fields the resolver
// cannot map to an option.
func Check(records []quiz.Record) []Diagnostic {
	var diagnostics []Diagnostic
	for index, record := range records {
		number := index + 1
		if record.CorrectRaw == "" {
			diagnostics = append(diagnostics, Diagnostic{
				Question: number,
				Message:  "empty correct-answer field",
			})
			continue
		}
		letter, ok := quiz.ResolveCorrectLetter(record)
		if !ok {
			diagnostics = append(diagnostics, Diagnostic{
				Question: number,
				Message:  fmt.Sprintf("correct answer %q does not name an option", record.CorrectRaw),
			})
			continue
		}
		if _, present := record.Options[letter]; !present {
			diagnostics = append(diagnostics, Diagnostic{
				Question: number,
				Message:  fmt.Sprintf("correct answer %q names option %s, which has no text", record.CorrectRaw, letter),
			})
		}
	}
	return diagnostics
}
