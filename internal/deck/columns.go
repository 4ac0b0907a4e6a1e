package deck

import (
	"fmt"
	"strings"

	"studydeck/internal/quiz"
)

// quizColumns maps deck concepts to CSV column positions. Absent optional
// columns are -1.
type quizColumns struct {
	question  int
	options   map[quiz.Letter]int
	correct   int
	hint      int
	combined  int
	perLetter map[quiz.Letter]int
}

// canonicalHeader lowercases and collapses whitespace so authored headers
// match regardless of spacing or case.
func canonicalHeader(header string) string {
	return strings.ToLower(strings.Join(strings.Fields(header), " "))
}

// resolveQuizColumns locates the required and optional quiz columns in a
// header row. Missing required columns, fewer than two option columns, or
// a mix of the two rationale forms fail the load.
func resolveQuizColumns(headers []string) (quizColumns, error) {
	cols := quizColumns{
		question:  -1,
		correct:   -1,
		hint:      -1,
		combined:  -1,
		options:   map[quiz.Letter]int{},
		perLetter: map[quiz.Letter]int{},
	}
	for index, header := range headers {
		switch name := canonicalHeader(header); name {
		case "question":
			cols.question = index
		case "correct answer":
			cols.correct = index
		case "hint":
			cols.hint = index
		case "rationale", "rationale (wrong answers)":
			cols.combined = index
		default:
			if letter, ok := suffixLetter(name, "option "); ok {
				cols.options[letter] = index
			} else if letter, ok := suffixLetter(name, "rationale "); ok {
				cols.perLetter[letter] = index
			}
		}
	}
	if cols.question < 0 {
		return quizColumns{}, fmt.Errorf("missing required column %q", "Question")
	}
	if cols.correct < 0 {
		return quizColumns{}, fmt.Errorf("missing required column %q", "Correct Answer")
	}
	if len(cols.options) < 2 {
		return quizColumns{}, fmt.Errorf("need at least two of the %q..%q columns, found %d", "Option A", "Option D", len(cols.options))
	}
	if cols.combined >= 0 && len(cols.perLetter) > 0 {
		return quizColumns{}, fmt.Errorf("deck mixes the combined %q column with per-letter rationale columns", "Rationale (Wrong Answers)")
	}
	return cols, nil
}

// suffixLetter matches headers of the form "<prefix><letter>" for a valid
// option letter.
func suffixLetter(name, prefix string) (quiz.Letter, bool) {
	if !strings.HasPrefix(name, prefix) {
		return "", false
	}
	letter := quiz.Letter(strings.ToUpper(strings.TrimPrefix(name, prefix)))
	return letter, letter.Valid()
}

// cell reads a column from a possibly ragged CSV row.
func cell(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}
