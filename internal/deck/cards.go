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
)

// LoadCards reads a flashcard deck. CSV files are headerless with the
// question in the first column and the answer in the second; JSON and YAML
// files hold a sequence of question/answer objects.
func LoadCards(path string) ([]Flashcard, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read flashcard deck: %w", err)
	}
	var cards []Flashcard
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		cards, err = parseCardsCSV(data)
	case ".json":
		cards, err = parseCardsJSON(data)
	case ".yml", ".yaml":
		cards, err = parseCardsYAML(data)
	default:
		return nil, fmt.Errorf("unsupported deck format %q", ext)
	}
	if err != nil {
		return nil, err
	}
	cards = usableCards(cards)
	if len(cards) == 0 {
		return nil, fmt.Errorf("no usable flashcards in %s", filepath.Base(path))
	}
	return cards, nil
}

// parseCardsCSV reads every row as data; there is no header row.
func parseCardsCSV(data []byte) ([]Flashcard, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	var cards []Flashcard
	for number, row := range rows {
		if len(row) > 0 && len(row) < 2 && strings.TrimSpace(row[0]) != "" {
			return nil, fmt.Errorf("row %d: needs a question and an answer column", number+1)
		}
		if len(row) < 2 {
			continue
		}
		cards = append(cards, Flashcard{
			Question: strings.TrimSpace(row[0]),
			Answer:   strings.TrimSpace(row[1]),
		})
	}
	return cards, nil
}

// parseCardsJSON strictly decodes a JSON array of cards.
func parseCardsJSON(data []byte) ([]Flashcard, error) {
	var cards []Flashcard
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cards); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("parse json: trailing content")
	}
	return cards, nil
}

// parseCardsYAML strictly decodes a YAML sequence of cards.
func parseCardsYAML(data []byte) ([]Flashcard, error) {
	var cards []Flashcard
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cards); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("parse yaml: trailing content")
	}
	return cards, nil
}

// usableCards drops rows with a blank side, including the "nan" artifacts
// spreadsheet exports leave in empty cells.
func usableCards(cards []Flashcard) []Flashcard {
	usable := cards[:0]
	for _, card := range cards {
		card.Question = strings.TrimSpace(card.Question)
		card.Answer = strings.TrimSpace(card.Answer)
		if card.Question == "" || card.Answer == "" {
			continue
		}
		if strings.EqualFold(card.Question, "nan") || strings.EqualFold(card.Answer, "nan") {
			continue
		}
		usable = append(usable, card)
	}
	return usable
}
