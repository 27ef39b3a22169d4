package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/color-quest/internal/history"
)

//go:embed defaults/colorquest.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			ShowDescription: true,
		},
		History: HistoryConfig{
			Key:   history.DefaultKey,
			Limit: history.MaxRecords,
		},
		Feedback: FeedbackConfig{
			Bell:          true,
			Speech:        false,
			SpeechCommand: "espeak",
			BravoDelay:    500 * time.Millisecond,
		},
		UI: UIConfig{
			NameHintDuration: 2 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.colorquest/colorquest.log",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
