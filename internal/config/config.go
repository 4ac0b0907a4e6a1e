// Package config loads the optional .studydeck.yml settings file. Flags
// override config values; config values override defaults.
package config

// DefaultFileName is the config file searched for in the working directory.
const DefaultFileName = ".studydeck.yml"

// Config holds user defaults for the study tools.
type Config struct {
	Quiz  QuizConfig  `yaml:"quiz"`
	UI    UIConfig    `yaml:"ui"`
	Cards CardsConfig `yaml:"cards"`
}

// QuizConfig holds quiz session defaults.
type QuizConfig struct {
	// TimerSeconds is the per-question budget; zero means unlimited.
	TimerSeconds float64 `yaml:"timer_seconds"`
	Shuffle      bool    `yaml:"shuffle"`
}

// UIConfig holds terminal UI defaults.
type UIConfig struct {
	// Mode is one of auto, live, or plain.
	Mode           string `yaml:"mode"`
	NoColor        bool   `yaml:"no_color"`
	TickIntervalMS int    `yaml:"tick_interval_ms"`
}

// CardsConfig holds flashcard viewer defaults.
type CardsConfig struct {
	Title string `yaml:"title"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	cfg := Config{}
	Normalize(&cfg)
	return cfg
}

// Normalize fills unset fields with their defaults.
func Normalize(cfg *Config) {
	if cfg.UI.Mode == "" {
		cfg.UI.Mode = "auto"
	}
	if cfg.UI.TickIntervalMS == 0 {
		cfg.UI.TickIntervalMS = 1000
	}
	if cfg.Cards.Title == "" {
		cfg.Cards.Title = "Flashcard Review"
	}
}
