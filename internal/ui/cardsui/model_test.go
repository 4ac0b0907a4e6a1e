package cardsui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"studydeck/internal/deck"
)

// fourCards returns a small deck for navigation tests.
func fourCards() []deck.Flashcard {
	return []deck.Flashcard{
		{Question: "Q1", Answer: "A1"},
		{Question: "Q2", Answer: "A2"},
		{Question: "Q3", Answer: "A3"},
		{Question: "Q4", Answer: "A4"},
	}
}

// key builds a key press message.
func key(value string) tea.KeyMsg {
	switch value {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(value)}
	}
}

// update applies a message and returns the concrete model.
func update(t *testing.T, model Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := model.Update(msg)
	typed, ok := next.(Model)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return typed
}

// TestViewerFlipAndNavigate verifies flipping and edge-clamped movement.
func TestViewerFlipAndNavigate(t *testing.T) {
	model := NewModel(fourCards(), Options{Title: "Deck", NoColor: true})

	if !strings.Contains(model.View(), "Q1") {
		t.Fatalf("expected first question, got %q", model.View())
	}
	model = update(t, model, key("space"))
	if !strings.Contains(model.View(), "A1") {
		t.Fatalf("expected answer side after flip")
	}
	model = update(t, model, key("right"))
	if model.index != 1 || model.showAnswer {
		t.Fatalf("moving must show the next question side, index=%d", model.index)
	}
	model = update(t, model, key("left"))
	model = update(t, model, key("left"))
	if model.index != 0 {
		t.Fatalf("previous must clamp at the first card, index=%d", model.index)
	}
	for i := 0; i < 10; i++ {
		model = update(t, model, key("right"))
	}
	if model.index != 3 {
		t.Fatalf("next must clamp at the last card, index=%d", model.index)
	}
}

// TestViewerShuffleAndResetOrder verifies reordering controls.
func TestViewerShuffleAndResetOrder(t *testing.T) {
	model := NewModel(fourCards(), Options{NoColor: true, Seed: 7})
	model = update(t, model, key("right"))
	model = update(t, model, key("s"))
	if model.index != 0 || model.showAnswer {
		t.Fatalf("shuffle must restart the review")
	}
	model = update(t, model, key("o"))
	for i, card := range fourCards() {
		if model.cards[i] != card {
			t.Fatalf("reset order must restore file order at %d", i)
		}
	}
}

// TestViewerRestart verifies returning to the first card.
func TestViewerRestart(t *testing.T) {
	model := NewModel(fourCards(), Options{NoColor: true})
	model = update(t, model, key("right"))
	model = update(t, model, key("space"))
	model = update(t, model, key("r"))
	if model.index != 0 || model.showAnswer {
		t.Fatalf("restart must return to the first question side")
	}
}
