//go:build cucumber

package quiz

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/cucumber/godog"

	"studydeck/internal/testutil"
)

// TestSessionScenarios runs the quiz session feature scenarios.
func TestSessionScenarios(t *testing.T) {
	featurePath := filepath.Join("..", "..", "spec", "features", "quiz-session", "testing.feature")
	suite := godog.TestSuite{
		Name:                "quiz-session",
		ScenarioInitializer: InitializeSessionScenario,
		Options: &godog.Options{
			Format:    "pretty",
			Paths:     []string{featurePath},
			Strict:    true,
			TestingT:  t,
			Randomize: 0,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializeSessionScenario wires steps for session scenarios.
func InitializeSessionScenario(ctx *godog.ScenarioContext) {
	state := &sessionScenarioState{}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.Step(`^a quiz of (\d+) questions with no timer$`, state.givenQuizNoTimer)
	ctx.Step(`^a quiz of (\d+) questions with a (\d+) second timer$`, state.givenQuizWithTimer)
	ctx.Step(`^I select option "([A-D])"$`, state.selectOption)
	ctx.Step(`^I submit the answer$`, state.submitAnswer)
	ctx.Step(`^(\d+) seconds pass$`, state.secondsPass)
	ctx.Step(`^I finish the quiz$`, state.finishQuiz)
	ctx.Step(`^I retry the quiz$`, state.retryQuiz)
	ctx.Step(`^the score is (\d+)$`, state.scoreIs)
	ctx.Step(`^question (\d+) is locked$`, state.questionLocked)
	ctx.Step(`^the open question is (\d+)$`, state.openQuestionIs)
	ctx.Step(`^the quiz is finished$`, state.quizFinished)
	ctx.Step(`^the quiz is active$`, state.quizActive)
}

// sessionScenarioState holds scenario state for the session feature tests.
type sessionScenarioState struct {
	clock   *testutil.FakeClock
	session *Session
}

// reset clears scenario state.
func (s *sessionScenarioState) reset() {
	s.clock = testutil.NewFakeClock(time.Unix(1000, 0))
	s.session = nil
}

// start builds and starts a session over the fixture deck.
func (s *sessionScenarioState) start(count int, timer float64) error {
	if count != 3 {
		return fmt.Errorf("fixture deck has 3 questions, scenario asked for %d", count)
	}
	session, err := NewSession(threeQuestions(), Options{
		TimerSeconds: timer,
		Clock:        s.clock,
	})
	if err != nil {
		return err
	}
	if err := session.Start(); err != nil {
		return err
	}
	s.session = session
	return nil
}

// givenQuizNoTimer starts an untimed session.
func (s *sessionScenarioState) givenQuizNoTimer(count int) error {
	return s.start(count, 0)
}

// givenQuizWithTimer starts a timed session.
func (s *sessionScenarioState) givenQuizWithTimer(count, seconds int) error {
	return s.start(count, float64(seconds))
}

// selectOption drafts an answer on the open question.
func (s *sessionScenarioState) selectOption(letter string) error {
	return s.session.SelectDraft(Letter(letter))
}

// submitAnswer locks the open question.
func (s *sessionScenarioState) submitAnswer() error {
	return s.session.Submit()
}

// secondsPass advances the clock and applies the timeout policy.
func (s *sessionScenarioState) secondsPass(seconds int) error {
	s.clock.Advance(time.Duration(seconds) * time.Second)
	s.session.Tick()
	_, err := s.session.HandleTimeout()
	return err
}

// finishQuiz ends the session.
func (s *sessionScenarioState) finishQuiz() error {
	return s.session.Finish()
}

// retryQuiz starts a fresh attempt over the same questions.
func (s *sessionScenarioState) retryQuiz() error {
	next, err := s.session.RetrySame()
	if err != nil {
		return err
	}
	if err := next.Start(); err != nil {
		return err
	}
	s.session = next
	return nil
}

// scoreIs asserts the current score.
func (s *sessionScenarioState) scoreIs(want int) error {
	if got := s.session.Score(); got != want {
		return fmt.Errorf("expected score %d, got %d", want, got)
	}
	return nil
}

// questionLocked asserts a 1-based question is submitted.
func (s *sessionScenarioState) questionLocked(number int) error {
	if !s.session.IsSubmitted(number - 1) {
		return fmt.Errorf("expected question %d to be locked", number)
	}
	return nil
}

// openQuestionIs asserts the 1-based open question.
func (s *sessionScenarioState) openQuestionIs(number int) error {
	if got := s.session.Current() + 1; got != number {
		return fmt.Errorf("expected open question %d, got %d", number, got)
	}
	return nil
}

// quizFinished asserts the terminal phase.
func (s *sessionScenarioState) quizFinished() error {
	if phase := s.session.Phase(); phase != PhaseFinished {
		return fmt.Errorf("expected finished phase, got %s", phase)
	}
	return nil
}

// quizActive asserts the answering phase.
func (s *sessionScenarioState) quizActive() error {
	if phase := s.session.Phase(); phase != PhaseActive {
		return fmt.Errorf("expected active phase, got %s", phase)
	}
	return nil
}
