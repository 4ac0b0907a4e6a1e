package config

import (
	"fmt"
	"strings"
)

// Validate collects every problem in the config into one error.
func Validate(cfg *Config) error {
	var problems []string
	switch cfg.UI.Mode {
	case "auto", "live", "plain":
	default:
		problems = append(problems, fmt.Sprintf("ui.mode: invalid mode %q (expected auto|live|plain)", cfg.UI.Mode))
	}
	if cfg.UI.TickIntervalMS < 0 {
		problems = append(problems, fmt.Sprintf("ui.tick_interval_ms: must not be negative, got %d", cfg.UI.TickIntervalMS))
	}
	if cfg.Quiz.TimerSeconds < 0 {
		problems = append(problems, fmt.Sprintf("quiz.timer_seconds: must not be negative, got %v", cfg.Quiz.TimerSeconds))
	}
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("invalid config:\n  %s", strings.Join(problems, "\n  "))
}
