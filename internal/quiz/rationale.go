package quiz

import "strings"

// RationaleFor retrieves the explanatory note for a letter. The per-letter
// form is a direct lookup; the combined form is split on "|" and scanned
// for a segment prefixed "Option <letter>:" or "<letter>:" (case
// insensitive). Absence is a normal, renderable case.
func RationaleFor(record Record, letter Letter) (string, bool) {
	if record.Rationale.PerLetter != nil {
		text, ok := record.Rationale.PerLetter[letter]
		if !ok || strings.TrimSpace(text) == "" {
			return "", false
		}
		return text, true
	}
	if record.Rationale.Combined == "" {
		return "", false
	}
	for _, segment := range strings.Split(record.Rationale.Combined, "|") {
		segment = strings.TrimSpace(segment)
		if text, ok := segmentRationale(segment, letter); ok {
			return text, true
		}
	}
	return "", false
}

// segmentRationale extracts the note from one combined-form segment when
// its prefix names the wanted letter.
func segmentRationale(segment string, letter Letter) (string, bool) {
	colon := strings.Index(segment, ":")
	if colon < 0 {
		return "", false
	}
	prefix := strings.ToUpper(strings.Join(strings.Fields(segment[:colon]), " "))
	if prefix != string(letter) && prefix != "OPTION "+string(letter) {
		return "", false
	}
	text := strings.TrimSpace(segment[colon+1:])
	if text == "" {
		return "", false
	}
	return text, true
}
