// Package cardsui renders a flashcard deck as a Bubble Tea program: flip,
// navigate, shuffle, reset to file order, restart. There is no timer and
// no grading.
package cardsui

import (
	"math/rand"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"studydeck/internal/deck"
)

// Options configures the flashcard viewer.
type Options struct {
	Title   string
	NoColor bool
	Seed    int64
	Shuffle bool
}

// Model drives one flashcard review.
type Model struct {
	source     []deck.Flashcard
	cards      []deck.Flashcard
	index      int
	showAnswer bool
	title      string
	noColor    bool
	progress   progress.Model
	rng        *rand.Rand
	width      int
}

// NewModel constructs a viewer over a loaded deck.
func NewModel(cards []deck.Flashcard, opts Options) Model {
	source := make([]deck.Flashcard, len(cards))
	copy(source, cards)
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	if opts.NoColor {
		bar = progress.New(progress.WithSolidFill("7"), progress.WithoutPercentage())
	}
	model := Model{
		source:   source,
		cards:    append([]deck.Flashcard(nil), source...),
		title:    opts.Title,
		noColor:  opts.NoColor,
		progress: bar,
		rng:      rand.New(rand.NewSource(opts.Seed)),
	}
	if opts.Shuffle {
		model.shuffle()
	}
	return model
}

// Init performs no startup work; the viewer is purely key-driven.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update consumes key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.progress.Width = min(typed.Width-4, 60)
		return m, nil
	case tea.KeyMsg:
		return m.onKey(typed)
	}
	return m, nil
}

// onKey dispatches a key press.
func (m Model) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "left", "a":
		m.previous()
	case "right", "d":
		m.next()
	case " ", "enter":
		m.showAnswer = !m.showAnswer
	case "s":
		m.shuffle()
	case "o":
		m.resetOrder()
	case "r":
		m.restart()
	}
	return m, nil
}

// next moves forward, stopping at the last card.
func (m *Model) next() {
	if m.index < len(m.cards)-1 {
		m.index++
		m.showAnswer = false
	}
}

// previous moves backward, stopping at the first card.
func (m *Model) previous() {
	if m.index > 0 {
		m.index--
		m.showAnswer = false
	}
}

// shuffle randomizes the card order and restarts the review.
func (m *Model) shuffle() {
	m.rng.Shuffle(len(m.cards), func(i, j int) {
		m.cards[i], m.cards[j] = m.cards[j], m.cards[i]
	})
	m.restart()
}

// resetOrder restores the original file order and restarts the review.
func (m *Model) resetOrder() {
	copy(m.cards, m.source)
	m.restart()
}

// restart returns to the first card with the question side up.
func (m *Model) restart() {
	m.index = 0
	m.showAnswer = false
}
