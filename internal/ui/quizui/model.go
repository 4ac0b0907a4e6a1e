// Package quizui renders a quiz session as a Bubble Tea program. The UI is
// a thin driver: every state change goes through the session's transition
// methods, and a periodic tick feeds the countdown.
package quizui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"studydeck/internal/quiz"
)

// Options configures the quiz UI.
type Options struct {
	NoColor      bool
	TickInterval time.Duration
}

// Model drives one quiz session.
type Model struct {
	session      *quiz.Session
	table        table.Model
	progress     progress.Model
	tickInterval time.Duration
	noColor      bool
	showHint     bool
	timedOut     bool
	notice       string
	width        int
}

// NewModel constructs a UI model over a started session.
func NewModel(session *quiz.Session, opts Options) Model {
	tickInterval := opts.TickInterval
	if tickInterval <= 0 {
		tickInterval = time.Second
	}
	t := table.New(
		table.WithColumns(mapColumns()),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
	)
	t.SetStyles(mapStyles(opts.NoColor))
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	if opts.NoColor {
		bar = progress.New(progress.WithSolidFill("7"), progress.WithoutPercentage())
	}
	model := Model{
		session:      session,
		table:        t,
		progress:     bar,
		tickInterval: tickInterval,
		noColor:      opts.NoColor,
	}
	model.refreshMap()
	return model
}

// Init starts the countdown tick.
func (m Model) Init() tea.Cmd {
	return tick(m.tickInterval)
}

// tickMsg carries a clock tick.
type tickMsg time.Time

// tick emits a periodic tick message.
func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Update consumes key presses and timer ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.progress.Width = min(typed.Width-4, 60)
		m.table.SetWidth(typed.Width)
		return m, nil
	case tickMsg:
		return m.onTick()
	case tea.KeyMsg:
		return m.onKey(typed)
	}
	return m, nil
}

// onTick flushes session time and applies the timeout policy.
func (m Model) onTick() (tea.Model, tea.Cmd) {
	if m.session.Phase() != quiz.PhaseActive {
		return m, nil
	}
	m.session.Tick()
	fired, err := m.session.HandleTimeout()
	if err != nil {
		m.notice = err.Error()
	}
	if fired {
		m.timedOut = true
		m.showHint = false
	}
	m.refreshMap()
	if m.session.Phase() != quiz.PhaseActive {
		return m, nil
	}
	return m, tick(m.tickInterval)
}

// onKey dispatches a key press for the current phase.
func (m Model) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "q" || key == "ctrl+c" {
		return m, tea.Quit
	}
	if m.session.Phase() == quiz.PhaseFinished {
		if key == "r" {
			return m.retry()
		}
		return m, nil
	}
	switch key {
	case "a", "b", "c", "d":
		m.selectDraft(quiz.Letter(toUpperKey(key)))
	case "enter":
		m.submit()
	case "left", "h":
		m.navigate(m.session.Current() - 1)
	case "right", "l":
		m.navigate(m.session.Current() + 1)
	case "g":
		m.navigate(0)
	case "G":
		m.navigate(m.session.Len() - 1)
	case "?":
		m.showHint = !m.showHint
	case "f":
		m.session.Tick()
		if err := m.session.Finish(); err != nil {
			m.notice = err.Error()
		}
	}
	m.refreshMap()
	return m, nil
}

// selectDraft records a draft choice, ignoring letters the question does
// not offer and questions that are already locked.
func (m *Model) selectDraft(letter quiz.Letter) {
	m.notice = ""
	if m.session.IsSubmitted(m.session.Current()) {
		m.notice = "Answer locked; use arrows to move on."
		return
	}
	if err := m.session.SelectDraft(letter); err != nil {
		m.notice = err.Error()
	}
}

// submit locks the open question.
func (m *Model) submit() {
	m.notice = ""
	m.timedOut = false
	if m.session.IsSubmitted(m.session.Current()) {
		return
	}
	m.session.Tick()
	if err := m.session.Submit(); err != nil {
		m.notice = err.Error()
	}
}

// navigate moves between questions, clamping at the edges.
func (m *Model) navigate(index int) {
	m.notice = ""
	m.timedOut = false
	m.showHint = false
	if index < 0 || index >= m.session.Len() {
		return
	}
	m.session.Tick()
	if err := m.session.Navigate(index); err != nil {
		m.notice = err.Error()
	}
}

// retry starts a fresh session over the same deck.
func (m Model) retry() (tea.Model, tea.Cmd) {
	next, err := m.session.RetrySame()
	if err != nil {
		m.notice = err.Error()
		return m, nil
	}
	if err := next.Start(); err != nil {
		m.notice = err.Error()
		return m, nil
	}
	m.session = next
	m.showHint = false
	m.timedOut = false
	m.notice = ""
	m.refreshMap()
	return m, tick(m.tickInterval)
}

// refreshMap rebuilds the navigation-map table rows.
func (m *Model) refreshMap() {
	m.table.SetRows(mapRows(m.session, m.noColor))
	m.table.SetHeight(min(m.session.Len()+1, 8))
}

// toUpperKey converts a single-letter key to its option letter.
func toUpperKey(key string) string {
	return string(key[0] &^ 0x20)
}
