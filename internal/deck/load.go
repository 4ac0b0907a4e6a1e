package deck

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"studydeck/internal/quiz"
)

// quizRow is the flat row schema shared by the JSON and YAML quiz forms,
// mirroring the CSV columns.
type quizRow struct {
	Question   string `json:"question" yaml:"question"`
	OptionA    string `json:"option_a" yaml:"option_a"`
	OptionB    string `json:"option_b" yaml:"option_b"`
	OptionC    string `json:"option_c" yaml:"option_c"`
	OptionD    string `json:"option_d" yaml:"option_d"`
	Correct    string `json:"correct_answer" yaml:"correct_answer"`
	Hint       string `json:"hint" yaml:"hint"`
	Rationale  string `json:"rationale" yaml:"rationale"`
	RationaleA string `json:"rationale_a" yaml:"rationale_a"`
	RationaleB string `json:"rationale_b" yaml:"rationale_b"`
	RationaleC string `json:"rationale_c" yaml:"rationale_c"`
	RationaleD string `json:"rationale_d" yaml:"rationale_d"`
}

// LoadQuiz reads a quiz deck file into question records. The format is
// chosen by extension: .csv, .json, or .yml/.yaml.
func LoadQuiz(path string) ([]quiz.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read quiz deck: %w", err)
	}
	var records []quiz.Record
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		records, err = parseQuizCSV(data)
	case ".json":
		records, err = parseQuizRows(data, decodeJSONRows)
	case ".yml", ".yaml":
		records, err = parseQuizRows(data, decodeYAMLRows)
	default:
		return nil, fmt.Errorf("unsupported deck format %q", ext)
	}
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no usable questions in %s", filepath.Base(path))
	}
	return records, nil
}

// parseQuizCSV reads a header row and turns every following row into a
// record.
func parseQuizCSV(data []byte) ([]quiz.Record, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("parse csv: empty file")
	}
	cols, err := resolveQuizColumns(rows[0])
	if err != nil {
		return nil, err
	}
	var records []quiz.Record
	for number, row := range rows[1:] {
		record, ok, err := recordFromCSVRow(cols, row, number+2)
		if err != nil {
			return nil, err
		}
		if ok {
			records = append(records, record)
		}
	}
	return records, nil
}

// recordFromCSVRow builds one record, skipping fully empty rows. The row
// number is 1-based including the header, for error messages.
func recordFromCSVRow(cols quizColumns, row []string, number int) (quiz.Record, bool, error) {
	record := quiz.Record{
		Question:   cell(row, cols.question),
		CorrectRaw: cell(row, cols.correct),
		Hint:       cell(row, cols.hint),
		Options:    map[quiz.Letter]string{},
	}
	for letter, index := range cols.options {
		if text := cell(row, index); text != "" {
			record.Options[letter] = text
		}
	}
	if record.Question == "" && record.CorrectRaw == "" && len(record.Options) == 0 {
		return quiz.Record{}, false, nil
	}
	if record.Question == "" {
		return quiz.Record{}, false, fmt.Errorf("row %d: missing question", number)
	}
	if len(record.Options) < 2 {
		return quiz.Record{}, false, fmt.Errorf("row %d: needs at least two options", number)
	}
	if cols.combined >= 0 {
		record.Rationale.Combined = cell(row, cols.combined)
	} else if len(cols.perLetter) > 0 {
		record.Rationale.PerLetter = map[quiz.Letter]string{}
		for letter, index := range cols.perLetter {
			if text := cell(row, index); text != "" {
				record.Rationale.PerLetter[letter] = text
			}
		}
	}
	return record, true, nil
}

// decodeJSONRows strictly decodes a JSON array of quiz rows.
func decodeJSONRows(data []byte) ([]quizRow, error) {
	var rows []quizRow
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&rows); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("parse json: trailing content")
	}
	return rows, nil
}

// decodeYAMLRows strictly decodes a YAML sequence of quiz rows.
func decodeYAMLRows(data []byte) ([]quizRow, error) {
	var rows []quizRow
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&rows); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("parse yaml: trailing content")
	}
	return rows, nil
}

// parseQuizRows converts decoded rows to records, enforcing the
// one-rationale-form-per-file rule.
func parseQuizRows(data []byte, decode func([]byte) ([]quizRow, error)) ([]quiz.Record, error) {
	rows, err := decode(data)
	if err != nil {
		return nil, err
	}
	combined, perLetter := false, false
	var records []quiz.Record
	for number, row := range rows {
		record, ok, err := recordFromRow(row, number+1)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if record.Rationale.Combined != "" {
			combined = true
		}
		if record.Rationale.PerLetter != nil {
			perLetter = true
		}
		records = append(records, record)
	}
	if combined && perLetter {
		return nil, fmt.Errorf("deck mixes the combined rationale field with per-letter rationale fields")
	}
	return records, nil
}

// recordFromRow builds one record from a decoded row, skipping empty rows.
func recordFromRow(row quizRow, number int) (quiz.Record, bool, error) {
	record := quiz.Record{
		Question:   strings.TrimSpace(row.Question),
		CorrectRaw: strings.TrimSpace(row.Correct),
		Hint:       strings.TrimSpace(row.Hint),
		Options:    map[quiz.Letter]string{},
	}
	optionValues := map[quiz.Letter]string{
		quiz.LetterA: row.OptionA,
		quiz.LetterB: row.OptionB,
		quiz.LetterC: row.OptionC,
		quiz.LetterD: row.OptionD,
	}
	for letter, value := range optionValues {
		if text := strings.TrimSpace(value); text != "" {
			record.Options[letter] = text
		}
	}
	if record.Question == "" && record.CorrectRaw == "" && len(record.Options) == 0 {
		return quiz.Record{}, false, nil
	}
	if record.Question == "" {
		return quiz.Record{}, false, fmt.Errorf("question %d: missing question text", number)
	}
	if len(record.Options) < 2 {
		return quiz.Record{}, false, fmt.Errorf("question %d: needs at least two options", number)
	}
	record.Rationale.Combined = strings.TrimSpace(row.Rationale)
	notes := map[quiz.Letter]string{
		quiz.LetterA: row.RationaleA,
		quiz.LetterB: row.RationaleB,
		quiz.LetterC: row.RationaleC,
		quiz.LetterD: row.RationaleD,
	}
	for letter, value := range notes {
		if text := strings.TrimSpace(value); text != "" {
			if record.Rationale.PerLetter == nil {
				record.Rationale.PerLetter = map[quiz.Letter]string{}
			}
			record.Rationale.PerLetter[letter] = text
		}
	}
	if record.Rationale.Combined != "" && record.Rationale.PerLetter != nil {
		return quiz.Record{}, false, fmt.Errorf("question %d: uses both rationale forms", number)
	}
	return record, true, nil
}
