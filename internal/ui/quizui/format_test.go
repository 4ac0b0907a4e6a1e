package quizui

import (
	"testing"

	"studydeck/internal/quiz"
)

// TestFormatClock verifies m:ss rendering.
func TestFormatClock(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{seconds: 0, want: "0:00"},
		{seconds: 9.6, want: "0:09"},
		{seconds: 65, want: "1:05"},
		{seconds: 600, want: "10:00"},
	}
	for _, tc := range cases {
		if got := formatClock(tc.seconds); got != tc.want {
			t.Fatalf("formatClock(%v) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

// TestFormatPercent verifies whole-percentage rendering.
func TestFormatPercent(t *testing.T) {
	if got := formatPercent(2, 3); got != "66%" {
		t.Fatalf("formatPercent(2,3) = %q", got)
	}
	if got := formatPercent(0, 0); got != "0%" {
		t.Fatalf("formatPercent(0,0) = %q", got)
	}
}

// TestTruncate verifies single-line truncation.
func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("a  very \n long question text", 10); got != "a very ..." {
		t.Fatalf("truncate = %q", got)
	}
}

// TestStatusLabel verifies navigation-map labels.
func TestStatusLabel(t *testing.T) {
	if statusLabel(quiz.StatusCurrent) != "current" || statusLabel(quiz.StatusUnanswered) != "-" {
		t.Fatalf("unexpected status labels")
	}
}
