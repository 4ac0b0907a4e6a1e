package deck

import (
	"strings"
	"testing"
)

// TestLoadCardsCSV verifies the headerless two-column form and row
// filtering.
func TestLoadCardsCSV(t *testing.T) {
	payload := "What is Go?,A programming language\n" +
		"nan,nan\n" +
		"Empty answer,\n" +
		"What is a goroutine?,A lightweight thread\n"
	cards, err := LoadCards(writeDeck(t, "cards.csv", payload))
	if err != nil {
		t.Fatalf("load cards: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cards))
	}
	if cards[0].Question != "What is Go?" || cards[1].Answer != "A lightweight thread" {
		t.Fatalf("unexpected cards %+v", cards)
	}
}

// TestLoadCardsJSON verifies the object form and strict decoding.
func TestLoadCardsJSON(t *testing.T) {
	payload := `[
  {"question": "Q1", "answer": "A1"},
  {"question": "Q2", "answer": "A2"}
]`
	cards, err := LoadCards(writeDeck(t, "cards.json", payload))
	if err != nil {
		t.Fatalf("load cards: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cards))
	}

	bogus := `[{"question": "Q", "answer": "A", "extra": true}]`
	if _, err := LoadCards(writeDeck(t, "cards.json", bogus)); err == nil {
		t.Fatalf("unknown fields must be rejected")
	}
}

// TestLoadCardsYAML verifies the YAML sequence form.
func TestLoadCardsYAML(t *testing.T) {
	payload := "- question: Q1\n  answer: A1\n"
	cards, err := LoadCards(writeDeck(t, "cards.yml", payload))
	if err != nil {
		t.Fatalf("load cards: %v", err)
	}
	if len(cards) != 1 || cards[0].Answer != "A1" {
		t.Fatalf("unexpected cards %+v", cards)
	}
}

// TestLoadCardsEmptyDeck verifies a deck with no usable rows fails.
func TestLoadCardsEmptyDeck(t *testing.T) {
	_, err := LoadCards(writeDeck(t, "cards.csv", "nan,nan\n"))
	if err == nil {
		t.Fatalf("expected load failure")
	}
	if !strings.Contains(err.Error(), "no usable flashcards") {
		t.Fatalf("unexpected error %v", err)
	}
}

// TestLoadCardsSingleColumnRow verifies a lone value is a structural error.
func TestLoadCardsSingleColumnRow(t *testing.T) {
	if _, err := LoadCards(writeDeck(t, "cards.csv", "only a question\n")); err == nil {
		t.Fatalf("expected load failure for single-column row")
	}
}
