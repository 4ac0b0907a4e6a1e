package quizui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"studydeck/internal/quiz"
)

// View renders the UI for the session's current phase.
func (m Model) View() string {
	if m.session.Phase() == quiz.PhaseFinished {
		return m.renderResults()
	}
	view := m.session.Snapshot()
	sections := []string{
		m.renderHeader(view),
		m.progress.ViewAs(float64(view.Index) / float64(view.Total)),
		"",
		m.renderQuestion(view),
		m.renderOptions(view),
	}
	if m.showHint && view.Hint != "" {
		sections = append(sections, stylize("Hint: "+view.Hint, m.noColor, lipgloss.Color("214")))
	}
	if view.IsSubmitted {
		sections = append(sections, m.renderFeedback(view))
	}
	sections = append(sections, "", m.table.View(), m.renderFooter(view))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the position, score, and timer line.
func (m Model) renderHeader(view quiz.View) string {
	line := "Question " + strconv.Itoa(view.Index+1) + " of " + strconv.Itoa(view.Total) +
		" | Score: " + formatScore(view.Score, view.Total)
	if view.HasTimer {
		line += " | Time left: " + formatClock(view.RemainingSeconds)
	}
	return stylize(line, m.noColor, lipgloss.Color("33"))
}

// renderQuestion renders the question text.
func (m Model) renderQuestion(view quiz.View) string {
	return lipgloss.NewStyle().Bold(!m.noColor).Render(view.QuestionText)
}

// renderOptions renders the labeled options with the selection marker.
func (m Model) renderOptions(view quiz.View) string {
	lines := make([]string, 0, len(view.Options))
	for _, option := range view.Options {
		marker := "  "
		if view.Selected != nil && view.Selected.Letter == option.Letter {
			marker = "> "
		}
		line := marker + string(option.Letter) + ") " + option.Text
		color := lipgloss.Color("252")
		if view.IsSubmitted {
			switch {
			case view.CorrectResolved && option.Letter == view.CorrectLetter:
				color = lipgloss.Color("42")
			case view.Selected != nil && view.Selected.Letter == option.Letter:
				color = lipgloss.Color("196")
			default:
				color = lipgloss.Color("242")
			}
		}
		lines = append(lines, stylize(line, m.noColor, color))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderFeedback renders grading feedback for a locked question.
func (m Model) renderFeedback(view quiz.View) string {
	var lines []string
	if m.timedOut {
		lines = append(lines, stylize("Time's up!", m.noColor, lipgloss.Color("214")))
	}
	switch {
	case view.IsCorrect:
		lines = append(lines, stylize("Correct!", m.noColor, lipgloss.Color("42")))
	case view.CorrectResolved:
		lines = append(lines, stylize("Incorrect. Correct answer: "+string(view.CorrectLetter), m.noColor, lipgloss.Color("196")))
	default:
		lines = append(lines, stylize("Incorrect. Correct answer: "+view.CorrectRaw, m.noColor, lipgloss.Color("196")))
	}
	if view.RationaleText != "" {
		lines = append(lines, stylize("Why: "+view.RationaleText, m.noColor, lipgloss.Color("244")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderFooter renders key help and the latest notice.
func (m Model) renderFooter(view quiz.View) string {
	help := "a-d select | enter submit | ←/→ move | ? hint | f finish | q quit"
	if view.IsSubmitted {
		help = "←/→ move | f finish | q quit"
	}
	footer := stylize(help, m.noColor, lipgloss.Color("240"))
	if m.notice != "" {
		footer = stylize(m.notice, m.noColor, lipgloss.Color("214")) + "\n" + footer
	}
	return footer
}

// renderResults renders the finished-phase summary.
func (m Model) renderResults() string {
	view := m.session.Snapshot()
	total := view.Total
	header := stylize("Quiz finished", m.noColor, lipgloss.Color("33"))
	score := "Score: " + formatScore(view.Score, total) + " (" + formatPercent(view.Score, total) + ")"
	lines := []string{header, score, ""}
	for index, status := range view.Statuses {
		record, err := m.session.Item(index)
		if err != nil {
			continue
		}
		label := statusLabel(status)
		if status == quiz.StatusUnanswered {
			label = "unanswered"
		}
		line := formatIndex(index) + " " + stylizeStatus(label, status, m.noColor) + "  " + truncate(record.Question, 60)
		lines = append(lines, line)
	}
	lines = append(lines, "", stylize("r retry | q quit", m.noColor, lipgloss.Color("240")))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
