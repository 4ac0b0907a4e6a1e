package quizui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"studydeck/internal/quiz"
)

// formatIndex formats a question index for the navigation map.
func formatIndex(index int) string {
	return "Q" + pad2(index+1)
}

// pad2 left-pads a number to two digits when needed.
func pad2(value int) string {
	if value >= 10 {
		return strconv.Itoa(value)
	}
	return "0" + strconv.Itoa(value)
}

// formatClock renders whole seconds as m:ss.
func formatClock(seconds float64) string {
	total := int(seconds)
	return strconv.Itoa(total/60) + ":" + pad2(total%60)
}

// formatScore renders "score/total".
func formatScore(score, total int) string {
	return strconv.Itoa(score) + "/" + strconv.Itoa(total)
}

// formatPercent renders a ratio as a whole percentage.
func formatPercent(score, total int) string {
	if total == 0 {
		return "0%"
	}
	return strconv.Itoa(score*100/total) + "%"
}

// statusLabel renders a navigation-map status.
func statusLabel(status quiz.QuestionStatus) string {
	switch status {
	case quiz.StatusCurrent:
		return "current"
	case quiz.StatusCorrect:
		return "correct"
	case quiz.StatusIncorrect:
		return "incorrect"
	default:
		return "-"
	}
}

// truncate shortens text to a display limit on a single line.
func truncate(text string, limit int) string {
	normalized := strings.Join(strings.Fields(text), " ")
	if len(normalized) <= limit {
		return normalized
	}
	if limit <= 3 {
		return normalized[:limit]
	}
	return normalized[:limit-3] + "..."
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor || text == "" {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

// stylizeStatus colors a status label.
func stylizeStatus(label string, status quiz.QuestionStatus, noColor bool) string {
	if noColor {
		return label
	}
	switch status {
	case quiz.StatusCurrent:
		return stylize(label, noColor, lipgloss.Color("33"))
	case quiz.StatusCorrect:
		return stylize(label, noColor, lipgloss.Color("42"))
	case quiz.StatusIncorrect:
		return stylize(label, noColor, lipgloss.Color("196"))
	default:
		return stylize(label, noColor, lipgloss.Color("242"))
	}
}
