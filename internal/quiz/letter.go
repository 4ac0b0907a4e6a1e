package quiz

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// optionPhrase matches "OPTION <letter>" bounded by end-of-string, a
// delimiter, or whitespace, anywhere in uppercased text.
var optionPhrase = regexp.MustCompile(`\bOPTION\s+([A-D])(?:$|[\s.:)\-])`)

// ExtractLetter recognizes an option letter embedded in arbitrary text.
// Attempts are ordered: a bare letter, then a letter followed by a
// delimiter, then an "OPTION x" phrase. The first match wins; unambiguous
// forms are trusted before the looser phrase match.
func ExtractLetter(value string) (Letter, bool) {
	trimmed := strings.ToUpper(strings.TrimSpace(value))
	if trimmed == "" {
		return "", false
	}
	if letter := Letter(trimmed); letter.Valid() {
		return letter, true
	}
	if letter, ok := leadingDelimitedLetter(trimmed); ok {
		return letter, ok
	}
	if match := optionPhrase.FindStringSubmatch(trimmed); match != nil {
		return Letter(match[1]), true
	}
	return "", false
}

// leadingDelimitedLetter matches text starting with a letter in A-D
// immediately followed by a delimiter or whitespace. Words like "Apple"
// are rejected because 'p' is not a valid delimiter.
func leadingDelimitedLetter(trimmed string) (Letter, bool) {
	if len(trimmed) < 2 {
		return "", false
	}
	letter := Letter(trimmed[:1])
	if !letter.Valid() {
		return "", false
	}
	next, _ := utf8.DecodeRuneInString(trimmed[1:])
	switch {
	case next == '.' || next == ':' || next == ')' || next == '-':
		return letter, true
	case unicode.IsSpace(next):
		return letter, true
	default:
		return "", false
	}
}
