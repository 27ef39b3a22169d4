// Package config provides YAML-based configuration loading for Color Quest.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/color-quest/internal/core"
	"github.com/vovakirdan/color-quest/internal/history"
)

// Config contains all configuration for the game.
type Config struct {
	Game     GameConfig     `yaml:"game"`
	History  HistoryConfig  `yaml:"history"`
	Feedback FeedbackConfig `yaml:"feedback"`
	UI       UIConfig       `yaml:"ui"`
	Log      LogConfig      `yaml:"log"`
}

// GameConfig defines gameplay options.
type GameConfig struct {
	ShowDescription bool     `yaml:"show_description"`
	Colors          []string `yaml:"colors"` // Empty = full palette
}

// HistoryConfig defines where and how much history is kept.
type HistoryConfig struct {
	Key   string `yaml:"key"`
	Limit int    `yaml:"limit"`
}

// FeedbackConfig defines the optional audio and speech cues.
type FeedbackConfig struct {
	Bell          bool          `yaml:"bell"`
	Speech        bool          `yaml:"speech"`
	SpeechCommand string        `yaml:"speech_command"`
	SpeechArgs    []string      `yaml:"speech_args"`
	BravoDelay    time.Duration `yaml:"bravo_delay"`
}

// UIConfig defines cosmetic timings.
type UIConfig struct {
	NameHintDuration time.Duration `yaml:"name_hint_duration"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Used while the TUI owns the terminal
}

// Palette resolves the configured colors. An empty list means all colors.
func (c Config) Palette() ([]core.Color, error) {
	if len(c.Game.Colors) == 0 {
		return core.AllColors(), nil
	}

	colors := make([]core.Color, 0, len(c.Game.Colors))
	for _, name := range c.Game.Colors {
		color, err := core.ParseColor(name)
		if err != nil {
			return nil, fmt.Errorf("config: invalid palette: %w", err)
		}
		colors = append(colors, color)
	}
	return colors, nil
}

// Normalize replaces missing or invalid values with defaults.
func (c *Config) Normalize() {
	def := Default()

	if c.History.Key == "" {
		c.History.Key = history.DefaultKey
	}
	if c.History.Limit <= 0 || c.History.Limit > history.MaxRecords {
		c.History.Limit = history.MaxRecords
	}
	if c.Feedback.BravoDelay <= 0 {
		c.Feedback.BravoDelay = def.Feedback.BravoDelay
	}
	if c.UI.NameHintDuration <= 0 {
		c.UI.NameHintDuration = def.UI.NameHintDuration
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Log.File == "" {
		c.Log.File = def.Log.File
	}
}
