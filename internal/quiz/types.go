package quiz

// Letter identifies one of the four answer options.
type Letter string

const (
	LetterA Letter = "A"
	LetterB Letter = "B"
	LetterC Letter = "C"
	LetterD Letter = "D"
)

// Letters lists the option identifiers in display order.
var Letters = []Letter{LetterA, LetterB, LetterC, LetterD}

// Valid reports whether the letter is one of A-D.
func (l Letter) Valid() bool {
	switch l {
	case LetterA, LetterB, LetterC, LetterD:
		return true
	default:
		return false
	}
}

// Rationale holds explanatory notes in one of the two authoring forms.
// A loaded deck uses exactly one form for every record.
type Rationale struct {
	// Combined is the pipe-delimited form: "Option A: why | B: why | ...".
	Combined string
	// PerLetter maps a letter to its note.
	PerLetter map[Letter]string
}

// Record is one quiz item as produced by the deck loader. Records are
// immutable after loading; a shuffle reorders records, never rewrites them.
type Record struct {
	Question   string
	Options    map[Letter]string
	CorrectRaw string
	Hint       string
	Rationale  Rationale
}

// OptionText returns the text of an option and whether it exists.
func (r Record) OptionText(letter Letter) (string, bool) {
	text, ok := r.Options[letter]
	return text, ok
}

// PresentLetters returns the letters of the record's options in display order.
func (r Record) PresentLetters() []Letter {
	present := make([]Letter, 0, len(r.Options))
	for _, letter := range Letters {
		if _, ok := r.Options[letter]; ok {
			present = append(present, letter)
		}
	}
	return present
}

// Selection is a user's chosen option: the letter plus the option text the
// user saw. A nil *Selection means unanswered.
type Selection struct {
	Letter Letter
	Text   string
}
