package quiz

import "testing"

// capitals returns a two-option record with the given correct-answer field.
func capitals(correctRaw string) Record {
	return Record{
		Question:   "Capital of Italy?",
		Options:    map[Letter]string{LetterA: "Paris", LetterB: "Rome"},
		CorrectRaw: correctRaw,
	}
}

// TestResolveBareLetter verifies a bare letter wins regardless of option text.
func TestResolveBareLetter(t *testing.T) {
	record := capitals("B")
	letter, ok := ResolveCorrectLetter(record)
	if !ok || letter != LetterB {
		t.Fatalf("expected B, got %s ok=%v", letter, ok)
	}
	if IsCorrect(&Selection{Letter: LetterA, Text: "Paris"}, record) {
		t.Fatalf("selecting A should be incorrect")
	}
	if !IsCorrect(&Selection{Letter: LetterB, Text: "Rome"}, record) {
		t.Fatalf("selecting B should be correct")
	}
}

// TestResolveLetterPrefixedPhrase verifies "B: Rome" resolves by its letter.
func TestResolveLetterPrefixedPhrase(t *testing.T) {
	letter, ok := ResolveCorrectLetter(capitals("B: Rome"))
	if !ok || letter != LetterB {
		t.Fatalf("expected B, got %s ok=%v", letter, ok)
	}
}

// TestResolveByOptionText verifies full answer text resolves to its option.
func TestResolveByOptionText(t *testing.T) {
	letter, ok := ResolveCorrectLetter(capitals("Rome"))
	if !ok || letter != LetterB {
		t.Fatalf("expected B, got %s ok=%v", letter, ok)
	}
	letter, ok = ResolveCorrectLetter(capitals(" 'rome.' "))
	if !ok || letter != LetterB {
		t.Fatalf("expected B after normalization, got %s ok=%v", letter, ok)
	}
}

// TestResolveLetterOrderPreference verifies text matching scans A to D and
// returns the first exact match.
func TestResolveLetterOrderPreference(t *testing.T) {
	record := Record{
		Options:    map[Letter]string{LetterA: "Same", LetterC: "Same"},
		CorrectRaw: "same",
	}
	letter, ok := ResolveCorrectLetter(record)
	if !ok || letter != LetterA {
		t.Fatalf("expected first match A, got %s ok=%v", letter, ok)
	}
}

// TestResolveNoMatch verifies an unresolvable field yields no letter and
// grades selections against the raw text as a last resort.
func TestResolveNoMatch(t *testing.T) {
	record := capitals("Madrid")
	if _, ok := ResolveCorrectLetter(record); ok {
		t.Fatalf("expected no resolution for %q", record.CorrectRaw)
	}
	if IsCorrect(&Selection{Letter: LetterB, Text: "Rome"}, record) {
		t.Fatalf("selection text does not match the raw answer")
	}
	edited := Record{
		Options:    map[Letter]string{LetterA: "Madrid (the capital)", LetterB: "Rome"},
		CorrectRaw: "Madrid",
	}
	if _, ok := ResolveCorrectLetter(edited); ok {
		t.Fatalf("expected no resolution for edited option text")
	}
	if !IsCorrect(&Selection{Letter: LetterA, Text: "Madrid"}, edited) {
		t.Fatalf("full-text fallback should accept a matching selection text")
	}
}

// TestIsCorrectUnanswered verifies a nil selection is never correct.
func TestIsCorrectUnanswered(t *testing.T) {
	if IsCorrect(nil, capitals("B")) {
		t.Fatalf("unanswered must be incorrect")
	}
}

// TestFuzzyPolicyOptIn verifies fuzzy matching applies only when enabled
// and only above the length-ratio threshold.
func TestFuzzyPolicyOptIn(t *testing.T) {
	record := Record{
		Options:    map[Letter]string{LetterA: "The Eiffel Tower!", LetterB: "Rome"},
		CorrectRaw: "The Eiffel Tower",
	}
	if _, ok := ResolveCorrectLetter(record); ok {
		t.Fatalf("default policy must not fuzzy-match")
	}
	fuzzy := ResolvePolicy{AllowFuzzy: true}
	letter, ok := fuzzy.ResolveCorrectLetter(record)
	if !ok || letter != LetterA {
		t.Fatalf("fuzzy policy should resolve A, got %s ok=%v", letter, ok)
	}

	short := Record{
		Options:    map[Letter]string{LetterA: "The capital of France", LetterB: "Rome"},
		CorrectRaw: "France",
	}
	if _, ok := fuzzy.ResolveCorrectLetter(short); ok {
		t.Fatalf("fuzzy policy must reject matches below the length ratio")
	}
	permissive := ResolvePolicy{AllowFuzzy: true, FuzzyThreshold: 0.2}
	letter, ok = permissive.ResolveCorrectLetter(short)
	if !ok || letter != LetterA {
		t.Fatalf("lowered threshold should resolve A, got %s ok=%v", letter, ok)
	}
}
