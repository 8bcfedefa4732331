// Package config provides YAML-based game configuration loading and
// difficulty management for the tetris platform.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

var (
	// ErrUnknownPreset is returned for a difficulty preset name that is not
	// one of easy, normal, hard or fixed.
	ErrUnknownPreset = errors.New("config: unknown difficulty preset")

	// ErrInvalidConfig is returned by Validate.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// TetrisConfig contains all configuration for the tetris game modes.
type TetrisConfig struct {
	Gravity     GravityConfig     `yaml:"gravity"`
	Autopilot   AutopilotConfig   `yaml:"autopilot"`
	Difficulty  DifficultyConfig  `yaml:"difficulty"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
}

// GravityConfig defines how fast pieces fall. The delay between gravity
// steps at a level is base_delay_ms * factor^(level-1), floored at
// min_delay_ms.
type GravityConfig struct {
	BaseDelayMs int     `yaml:"base_delay_ms"`
	Factor      float64 `yaml:"factor"`
	MinDelayMs  int     `yaml:"min_delay_ms"`
}

// AutopilotConfig defines how the computer player behaves.
type AutopilotConfig struct {
	Weights     string `yaml:"weights"`       // "strong" or "weak"
	LevelCap    int    `yaml:"level_cap"`     // 0 disables the cap
	MoveDelayMs int    `yaml:"move_delay_ms"` // pause between autopilot turns
}

// DifficultyConfig selects a named difficulty preset.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// LeaderboardConfig points at the plain-text top scores file.
type LeaderboardConfig struct {
	Path string `yaml:"path"`
	Size int    `yaml:"size"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset resolves a preset name, case-insensitively. An empty name
// means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
}

// BaseDelayForPreset returns the level 1 gravity delay for a preset.
func BaseDelayForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 1500
	case DifficultyHard:
		return 600
	default:
		return 1000
	}
}

// IsFixedPreset returns true if the preset disables level acceleration.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// WeightsPreset resolves the configured autopilot weights.
func (c AutopilotConfig) WeightsPreset() (engine.Weights, error) {
	return engine.WeightsByName(c.Weights)
}

// SessionConfig builds the engine configuration for one session.
func (c TetrisConfig) SessionConfig(seed int64) (engine.SessionConfig, error) {
	w, err := c.Autopilot.WeightsPreset()
	if err != nil {
		return engine.SessionConfig{}, err
	}
	sc := engine.DefaultSessionConfig()
	sc.Seed = seed
	sc.Weights = w
	sc.LevelCap = c.Autopilot.LevelCap
	return sc, nil
}

// Validate reports the first problem found in the configuration.
func (c TetrisConfig) Validate() error {
	if c.Gravity.BaseDelayMs <= 0 {
		return fmt.Errorf("%w: gravity.base_delay_ms must be positive, got %d", ErrInvalidConfig, c.Gravity.BaseDelayMs)
	}
	if c.Gravity.Factor <= 0 || c.Gravity.Factor > 1 {
		return fmt.Errorf("%w: gravity.factor must be in (0, 1], got %g", ErrInvalidConfig, c.Gravity.Factor)
	}
	if c.Gravity.MinDelayMs < 0 {
		return fmt.Errorf("%w: gravity.min_delay_ms must not be negative, got %d", ErrInvalidConfig, c.Gravity.MinDelayMs)
	}
	if c.Autopilot.LevelCap < 0 {
		return fmt.Errorf("%w: autopilot.level_cap must not be negative, got %d", ErrInvalidConfig, c.Autopilot.LevelCap)
	}
	if c.Autopilot.MoveDelayMs < 0 {
		return fmt.Errorf("%w: autopilot.move_delay_ms must not be negative, got %d", ErrInvalidConfig, c.Autopilot.MoveDelayMs)
	}
	if c.Leaderboard.Size <= 0 {
		return fmt.Errorf("%w: leaderboard.size must be positive, got %d", ErrInvalidConfig, c.Leaderboard.Size)
	}
	if _, err := c.Autopilot.WeightsPreset(); err != nil {
		return err
	}
	if c.Difficulty.Preset != "" {
		if _, err := ParsePreset(string(c.Difficulty.Preset)); err != nil {
			return err
		}
	}
	return nil
}
