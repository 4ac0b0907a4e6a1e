package cardsui

import (
	"fmt"
	"io"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"studydeck/internal/deck"
)

// View renders the current card.
func (m Model) View() string {
	card := m.cards[m.index]
	label, text := "QUESTION", card.Question
	cardColor := lipgloss.Color("33")
	if m.showAnswer {
		label, text = "ANSWER", card.Answer
		cardColor = lipgloss.Color("42")
	}
	sections := []string{
		stylize(m.title, m.noColor, lipgloss.Color("33")),
		"",
		m.renderCard(label, text, cardColor),
		"",
		m.progress.ViewAs(float64(m.index+1) / float64(len(m.cards))),
		m.renderStatus(),
		m.renderFooter(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderCard renders one side of the flashcard in a bordered box.
func (m Model) renderCard(label, text string, color lipgloss.Color) string {
	width := m.width - 4
	if width <= 0 || width > 72 {
		width = 72
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		Width(width)
	if !m.noColor {
		style = style.BorderForeground(color)
	}
	header := stylize(label, m.noColor, lipgloss.Color("244"))
	return style.Render(header + "\n\n" + text)
}

// renderStatus renders the position and completion line.
func (m Model) renderStatus() string {
	current := m.index + 1
	total := len(m.cards)
	line := "Card " + strconv.Itoa(current) + " of " + strconv.Itoa(total) +
		" | Completion: " + strconv.Itoa(current*100/total) + "%"
	return stylize(line, m.noColor, lipgloss.Color("242"))
}

// renderFooter renders key help.
func (m Model) renderFooter() string {
	help := "space flip | ←/→ move | s shuffle | o order | r restart | q quit"
	return stylize(help, m.noColor, lipgloss.Color("240"))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor || text == "" {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

// Run drives the viewer in the terminal until the user quits.
func Run(cards []deck.Flashcard, stdout io.Writer, opts Options) error {
	if stdout == nil {
		stdout = os.Stdout
	}
	model := NewModel(cards, opts)
	program := tea.NewProgram(model, tea.WithOutput(stdout), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run flashcard ui: %w", err)
	}
	return nil
}
