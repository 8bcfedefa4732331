package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Gravity: GravityConfig{
			BaseDelayMs: 1000,
			Factor:      0.6,
			MinDelayMs:  16,
		},
		Autopilot: AutopilotConfig{
			Weights:     "strong",
			LevelCap:    13,
			MoveDelayMs: 100,
		},
		Difficulty: DifficultyConfig{
			Preset: DifficultyNormal,
		},
		Leaderboard: LeaderboardConfig{
			Path: "~/.tetris/leaderboard.txt",
			Size: 5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
