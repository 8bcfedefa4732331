package config

import (
	"math"
	"time"
)

// DifficultyManager converts a level into gravity timing.
type DifficultyManager struct {
	cfg GravityConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg GravityConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether gravity accelerates with the level.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Factor > 0 && d.cfg.Factor < 1
}

// DelayMs returns the gravity delay in milliseconds at level (1-based).
func (d *DifficultyManager) DelayMs(level int) float64 {
	level = max(level, 1)
	delay := float64(d.cfg.BaseDelayMs)
	if d.IsEnabled() {
		delay *= math.Pow(d.cfg.Factor, float64(level-1))
	}
	return math.Max(delay, float64(d.cfg.MinDelayMs))
}

// Delay returns the gravity delay at level as a duration.
func (d *DifficultyManager) Delay(level int) time.Duration {
	return time.Duration(d.DelayMs(level) * float64(time.Millisecond))
}

// Ticks returns how many simulation ticks at tickRate make up one gravity
// step at level. Always at least 1.
func (d *DifficultyManager) Ticks(level, tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	ticks := int(math.Round(d.DelayMs(level) * float64(tickRate) / 1000))
	return max(ticks, 1)
}

// MsToTicks converts a millisecond interval to ticks at tickRate, at least 1.
func MsToTicks(ms, tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	return max(int(math.Round(float64(ms)*float64(tickRate)/1000)), 1)
}
