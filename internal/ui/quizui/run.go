package quizui

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"studydeck/internal/quiz"
)

// Run drives a started session in the terminal until the user quits.
func Run(session *quiz.Session, stdout io.Writer, opts Options) error {
	if stdout == nil {
		stdout = os.Stdout
	}
	model := NewModel(session, opts)
	program := tea.NewProgram(model, tea.WithOutput(stdout), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run quiz ui: %w", err)
	}
	return nil
}
