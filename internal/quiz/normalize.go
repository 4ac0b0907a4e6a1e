package quiz

import "strings"

// Normalize canonicalizes free text for equality comparison: trim,
// lowercase, collapse internal whitespace, strip matching enclosing
// quotes, and strip trailing punctuation. Quote stripping and punctuation
// trimming repeat until neither applies, so a quote pair hidden behind a
// trailing period still comes off. Empty input yields "". Normalize is
// idempotent.
func Normalize(value string) string {
	text := strings.ToLower(strings.Join(strings.Fields(value), " "))
	for {
		next := stripEnclosingQuotes(text)
		next = strings.TrimSpace(strings.TrimRight(next, ".,;: "))
		if next == text {
			return text
		}
		text = next
	}
}

// stripEnclosingQuotes removes one layer of matching quotes around text.
func stripEnclosingQuotes(text string) string {
	if len(text) < 2 {
		return text
	}
	first, last := text[0], text[len(text)-1]
	if first != last {
		return text
	}
	if first != '"' && first != '\'' {
		return text
	}
	return strings.TrimSpace(text[1 : len(text)-1])
}
