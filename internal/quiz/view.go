package quiz

// QuestionStatus classifies a question for the navigation map.
type QuestionStatus int

const (
	// StatusUnanswered marks a question not yet submitted.
	StatusUnanswered QuestionStatus = iota
	// StatusCurrent marks the open question.
	StatusCurrent
	// StatusCorrect marks a submitted, correctly answered question.
	StatusCorrect
	// StatusIncorrect marks a submitted, incorrectly answered question.
	StatusIncorrect
)

// String renders the status name.
func (s QuestionStatus) String() string {
	switch s {
	case StatusCurrent:
		return "current"
	case StatusCorrect:
		return "correct"
	case StatusIncorrect:
		return "incorrect"
	default:
		return "unanswered"
	}
}

// OptionView is one labeled option in display order.
type OptionView struct {
	Letter Letter
	Text   string
}

// View is everything a renderer needs for the open question. Timing fields
// are only as fresh as the last Tick.
type View struct {
	Index            int
	Total            int
	QuestionText     string
	Options          []OptionView
	Hint             string
	Selected         *Selection
	IsSubmitted      bool
	RemainingSeconds float64
	HasTimer         bool
	IsCorrect        bool
	CorrectLetter    Letter
	CorrectResolved  bool
	CorrectRaw       string
	RationaleText    string
	Score            int
	Statuses         []QuestionStatus
}

// Snapshot assembles the rendering view for the open question. Feedback
// fields (correctness, correct letter, rationale) are populated only for a
// submitted question. When the correct-answer field resolves to no letter,
// CorrectRaw carries the raw authored text for graceful display.
func (s *Session) Snapshot() View {
	if len(s.items) == 0 {
		return View{Total: len(s.source)}
	}
	record := s.items[s.current]
	view := View{
		Index:        s.current,
		Total:        len(s.items),
		QuestionText: record.Question,
		Hint:         record.Hint,
		Selected:     s.Selected(s.current),
		IsSubmitted:  s.submitted[s.current],
		Score:        s.score,
		CorrectRaw:   record.CorrectRaw,
		Statuses:     s.statuses(),
	}
	for _, letter := range record.PresentLetters() {
		view.Options = append(view.Options, OptionView{Letter: letter, Text: record.Options[letter]})
	}
	if remaining, ok := s.Remaining(); ok {
		view.HasTimer = true
		view.RemainingSeconds = remaining
	}
	if view.IsSubmitted {
		view.IsCorrect = s.policy.IsCorrect(view.Selected, record)
		view.CorrectLetter, view.CorrectResolved = s.policy.ResolveCorrectLetter(record)
		if view.Selected != nil {
			if text, ok := RationaleFor(record, view.Selected.Letter); ok {
				view.RationaleText = text
			}
		}
	}
	return view
}

// statuses builds the navigation-map classification for every question.
func (s *Session) statuses() []QuestionStatus {
	statuses := make([]QuestionStatus, len(s.items))
	for index := range s.items {
		switch {
		case index == s.current && s.phase == PhaseActive:
			statuses[index] = StatusCurrent
		case s.submitted[index] && s.policy.IsCorrect(s.Selected(index), s.items[index]):
			statuses[index] = StatusCorrect
		case s.submitted[index]:
			statuses[index] = StatusIncorrect
		default:
			statuses[index] = StatusUnanswered
		}
	}
	return statuses
}
