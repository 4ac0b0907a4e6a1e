package quiz

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Phase identifies the lifecycle stage of a session.
type Phase int

const (
	// PhaseSetup allows configuring shuffle and timer before the first question.
	PhaseSetup Phase = iota
	// PhaseActive is the answering phase.
	PhaseActive
	// PhaseFinished is terminal; only a retry leaves it.
	PhaseFinished
)

// String renders the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseActive:
		return "active"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// ErrNotActive is returned for answering operations outside the active phase.
var ErrNotActive = errors.New("session is not active")

// ErrNotSetup is returned for configuration outside the setup phase.
var ErrNotSetup = errors.New("session is not in setup")

// ErrNotFinished is returned for a retry before the session finished.
var ErrNotFinished = errors.New("session is not finished")

// ErrAlreadySubmitted is returned when drafting on a locked question.
var ErrAlreadySubmitted = errors.New("question already submitted")

// ErrIndexOutOfRange is returned for navigation outside the question range.
var ErrIndexOutOfRange = errors.New("question index out of range")

// ErrNoQuestions is returned when a session is created over an empty deck.
var ErrNoQuestions = errors.New("no questions")

// Options configures a session at creation. TimerSeconds of zero means
// unlimited. Seed feeds the shuffle; it is ignored unless Shuffle is set.
type Options struct {
	TimerSeconds float64
	Shuffle      bool
	Seed         int64
	Clock        Clock
	Policy       ResolvePolicy
}

// Session owns one quiz attempt: the frozen question order, the current
// position, per-question timing, draft and submitted answers, and the
// score. It is mutated only by discrete events issued by a single driver;
// callers must not apply events concurrently.
type Session struct {
	id        string
	source    []Record
	items     []Record
	current   int
	selected  map[int]Selection
	submitted map[int]bool
	elapsed   map[int]float64
	openedAt  time.Time
	timer     float64
	shuffle   bool
	seed      int64
	phase     Phase
	score     int
	clock     Clock
	policy    ResolvePolicy
}

// NewSession creates a session in the setup phase over a loaded deck.
func NewSession(items []Record, opts Options) (*Session, error) {
	if len(items) == 0 {
		return nil, ErrNoQuestions
	}
	if opts.TimerSeconds < 0 {
		return nil, fmt.Errorf("timer seconds must not be negative, got %v", opts.TimerSeconds)
	}
	clock := opts.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	source := make([]Record, len(items))
	copy(source, items)
	return &Session{
		id:      uuid.NewString(),
		source:  source,
		timer:   opts.TimerSeconds,
		shuffle: opts.Shuffle,
		seed:    opts.Seed,
		phase:   PhaseSetup,
		clock:   clock,
		policy:  opts.Policy,
	}, nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Len returns the number of questions.
func (s *Session) Len() int { return len(s.source) }

// TimerSeconds returns the per-question budget, zero meaning unlimited.
func (s *Session) TimerSeconds() float64 { return s.timer }

// Policy returns the answer-resolution policy in effect.
func (s *Session) Policy() ResolvePolicy { return s.policy }

// SetTimer changes the per-question budget during setup.
func (s *Session) SetTimer(seconds float64) error {
	if s.phase != PhaseSetup {
		return ErrNotSetup
	}
	if seconds < 0 {
		return fmt.Errorf("timer seconds must not be negative, got %v", seconds)
	}
	s.timer = seconds
	return nil
}

// SetShuffle changes the shuffle flag during setup.
func (s *Session) SetShuffle(on bool) error {
	if s.phase != PhaseSetup {
		return ErrNotSetup
	}
	s.shuffle = on
	return nil
}

// Start freezes the question order, applying the shuffle if requested,
// resets all per-question state, and opens the first question.
func (s *Session) Start() error {
	if s.phase != PhaseSetup {
		return fmt.Errorf("start: session is %s", s.phase)
	}
	s.items = make([]Record, len(s.source))
	copy(s.items, s.source)
	if s.shuffle {
		rng := rand.New(rand.NewSource(s.seed))
		rng.Shuffle(len(s.items), func(i, j int) {
			s.items[i], s.items[j] = s.items[j], s.items[i]
		})
	}
	s.current = 0
	s.selected = make(map[int]Selection)
	s.submitted = make(map[int]bool)
	s.elapsed = make(map[int]float64)
	s.score = 0
	s.openedAt = s.clock.Now()
	s.phase = PhaseActive
	return nil
}

// Current returns the index of the open question.
func (s *Session) Current() int { return s.current }

// Item returns the record at a presented index.
func (s *Session) Item(index int) (Record, error) {
	if index < 0 || index >= len(s.items) {
		return Record{}, ErrIndexOutOfRange
	}
	return s.items[index], nil
}

// Selected returns the draft or final answer for an index, nil when
// unanswered.
func (s *Session) Selected(index int) *Selection {
	sel, ok := s.selected[index]
	if !ok {
		return nil
	}
	return &sel
}

// IsSubmitted reports whether an index is locked and graded.
func (s *Session) IsSubmitted(index int) bool { return s.submitted[index] }

// Elapsed returns the accrued seconds for an index.
func (s *Session) Elapsed(index int) float64 { return s.elapsed[index] }

// Score returns the count of correct submitted answers.
func (s *Session) Score() int { return s.score }

// SelectDraft records a choice for the open question without locking it.
func (s *Session) SelectDraft(letter Letter) error {
	if s.phase != PhaseActive {
		return ErrNotActive
	}
	if s.submitted[s.current] {
		return ErrAlreadySubmitted
	}
	text, ok := s.items[s.current].Options[letter]
	if !ok {
		return fmt.Errorf("question %d has no option %s", s.current+1, letter)
	}
	s.selected[s.current] = Selection{Letter: letter, Text: text}
	return nil
}

// Submit locks and grades the open question. The current draft becomes the
// final answer; no draft means the question is graded unanswered. Calling
// Submit again on a locked question is a no-op.
func (s *Session) Submit() error {
	if s.phase != PhaseActive {
		return ErrNotActive
	}
	s.flushTime()
	if s.submitted[s.current] {
		return nil
	}
	s.submitted[s.current] = true
	s.score = ComputeScore(s)
	return nil
}

// Navigate moves to another question. Leaving an unsubmitted question
// keeps its draft stored but ungraded. Revisiting a submitted question
// shows locked feedback; it is never re-graded.
func (s *Session) Navigate(index int) error {
	if s.phase != PhaseActive {
		return ErrNotActive
	}
	if index < 0 || index >= len(s.items) {
		return fmt.Errorf("navigate to %d: %w", index, ErrIndexOutOfRange)
	}
	s.flushTime()
	s.current = index
	s.openedAt = s.clock.Now()
	return nil
}

// Tick flushes elapsed time for the open question. Drivers call it on a
// fixed cadence and before every remaining-time read.
func (s *Session) Tick() {
	if s.phase != PhaseActive {
		return
	}
	s.flushTime()
}

// Remaining returns the seconds left on the open question's budget. The
// second result is false when the session has no timer.
func (s *Session) Remaining() (float64, bool) {
	if s.timer <= 0 {
		return 0, false
	}
	left := s.timer - s.elapsed[s.current]
	if left < 0 {
		left = 0
	}
	return left, true
}

// CheckTimeout reports whether the open question's budget is exhausted
// while still unsubmitted.
func (s *Session) CheckTimeout() bool {
	if s.phase != PhaseActive || s.timer <= 0 {
		return false
	}
	if s.submitted[s.current] {
		return false
	}
	return s.elapsed[s.current] >= s.timer
}

// HandleTimeout applies the timeout policy when the budget is exhausted:
// the current draft is locked as the final answer, the question is
// submitted, and the session advances to the next question or finishes on
// the last one. Returns whether a timeout fired.
func (s *Session) HandleTimeout() (bool, error) {
	if s.phase != PhaseActive {
		return false, nil
	}
	s.flushTime()
	if !s.CheckTimeout() {
		return false, nil
	}
	if err := s.Submit(); err != nil {
		return false, err
	}
	if s.current+1 < len(s.items) {
		return true, s.Navigate(s.current + 1)
	}
	return true, s.Finish()
}

// Finish ends the session. An unsubmitted open question is auto-submitted
// with whatever draft it has; an unanswered question simply grades as
// incorrect.
func (s *Session) Finish() error {
	if s.phase != PhaseActive {
		return ErrNotActive
	}
	s.flushTime()
	if !s.submitted[s.current] {
		s.submitted[s.current] = true
	}
	s.score = ComputeScore(s)
	s.phase = PhaseFinished
	return nil
}

// RetrySame creates a fresh setup-phase session over the same question
// sequence with the same options and a new identity.
func (s *Session) RetrySame() (*Session, error) {
	if s.phase != PhaseFinished {
		return nil, ErrNotFinished
	}
	return NewSession(s.source, Options{
		TimerSeconds: s.timer,
		Shuffle:      s.shuffle,
		Seed:         s.seed + 1,
		Clock:        s.clock,
		Policy:       s.policy,
	})
}

// flushTime accrues wall-clock time onto the open question and resets the
// accrual anchor so repeated flushes never double-count an interval. A
// submitted question's clock is stopped; its stored time stays capped.
func (s *Session) flushTime() {
	now := s.clock.Now()
	if s.openedAt.IsZero() {
		s.openedAt = now
		return
	}
	delta := now.Sub(s.openedAt).Seconds()
	s.openedAt = now
	if delta <= 0 {
		return
	}
	if s.submitted[s.current] {
		return
	}
	total := s.elapsed[s.current] + delta
	if s.timer > 0 && total > s.timer {
		total = s.timer
	}
	s.elapsed[s.current] = total
}
