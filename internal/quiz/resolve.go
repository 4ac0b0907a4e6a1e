package quiz

import "strings"

// ResolvePolicy controls how a free-text correct-answer field is matched
// against a record's options. The zero value matches exactly and never
// guesses. Fuzzy matching (substring containment with a minimum length
// ratio) is an opt-in policy because it risks false positives when one
// option's text is a substring of another's.
type ResolvePolicy struct {
	AllowFuzzy     bool
	FuzzyThreshold float64
}

// DefaultFuzzyThreshold is the length-ratio floor applied when fuzzy
// matching is enabled without an explicit threshold.
const DefaultFuzzyThreshold = 0.9

// ResolveCorrectLetter determines the authoritative correct letter for a
// record: an embedded letter in the correct-answer field wins, otherwise
// the first option (in A-D order) whose normalized text equals the
// normalized field. Returns false when nothing matches; the record is then
// unusable for letter-based grading, which is a data-quality condition,
// not an error.
func (p ResolvePolicy) ResolveCorrectLetter(record Record) (Letter, bool) {
	if letter, ok := ExtractLetter(record.CorrectRaw); ok {
		return letter, true
	}
	want := Normalize(record.CorrectRaw)
	if want == "" {
		return "", false
	}
	for _, letter := range Letters {
		text, ok := record.Options[letter]
		if !ok {
			continue
		}
		if Normalize(text) == want {
			return letter, true
		}
	}
	if p.AllowFuzzy {
		return p.fuzzyMatch(record, want)
	}
	return "", false
}

// fuzzyMatch applies the opt-in loose comparison: one normalized text must
// contain the other and their lengths must overlap by at least the
// configured ratio.
func (p ResolvePolicy) fuzzyMatch(record Record, want string) (Letter, bool) {
	threshold := p.FuzzyThreshold
	if threshold <= 0 {
		threshold = DefaultFuzzyThreshold
	}
	for _, letter := range Letters {
		text, ok := record.Options[letter]
		if !ok {
			continue
		}
		if fuzzyEqual(Normalize(text), want, threshold) {
			return letter, true
		}
	}
	return "", false
}

// fuzzyEqual reports whether two normalized strings are close enough under
// the containment-plus-length-ratio rule.
func fuzzyEqual(a, b string, threshold float64) bool {
	if a == "" || b == "" {
		return false
	}
	shorter, longer := a, b
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if !strings.Contains(longer, shorter) {
		return false
	}
	return float64(len(shorter))/float64(len(longer)) >= threshold
}

// IsCorrect judges a selection against a record. A nil selection is never
// correct. When the correct letter resolves, letters are compared; when it
// does not, the selection's option text is compared against the raw
// correct-answer field as a last resort.
func (p ResolvePolicy) IsCorrect(selected *Selection, record Record) bool {
	if selected == nil {
		return false
	}
	if letter, ok := p.ResolveCorrectLetter(record); ok {
		return selected.Letter == letter
	}
	return Normalize(selected.Text) == Normalize(record.CorrectRaw)
}

// ResolveCorrectLetter resolves with the default exact-only policy.
func ResolveCorrectLetter(record Record) (Letter, bool) {
	return ResolvePolicy{}.ResolveCorrectLetter(record)
}

// IsCorrect judges a selection with the default exact-only policy.
func IsCorrect(selected *Selection, record Record) bool {
	return ResolvePolicy{}.IsCorrect(selected, record)
}
