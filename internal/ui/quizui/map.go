package quizui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"studydeck/internal/quiz"
)

// mapColumns returns the navigation-map table layout.
func mapColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Status", Width: 12},
		{Title: "Answer", Width: 8},
		{Title: "Time", Width: 8},
	}
}

// mapStyles returns table styles for the navigation map.
func mapStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if !noColor {
		styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	}
	styles.Selected = styles.Cell
	return styles
}

// mapRows converts session state into navigation-map rows.
func mapRows(session *quiz.Session, noColor bool) []table.Row {
	view := session.Snapshot()
	rows := make([]table.Row, 0, view.Total)
	for index := 0; index < view.Total; index++ {
		status := view.Statuses[index]
		answer := ""
		if selected := session.Selected(index); selected != nil {
			answer = string(selected.Letter)
		}
		rows = append(rows, table.Row{
			formatIndex(index),
			stylizeStatus(statusLabel(status), status, noColor),
			answer,
			formatClock(session.Elapsed(index)),
		})
	}
	return rows
}
