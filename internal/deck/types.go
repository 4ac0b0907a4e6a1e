// Package deck loads study decks from CSV, JSON, or YAML files. A load is
// all-or-nothing: structural problems fail the whole file, while rows whose
// correct-answer field cannot be resolved are kept and surfaced as
// diagnostics.
package deck

// Flashcard is one question/answer pair from a flashcard deck.
type Flashcard struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}
