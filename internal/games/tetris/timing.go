package tetris

import (
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// gravityTimer counts ticks between gravity steps. The interval follows the
// session level, so it speeds up as soon as the level changes.
type gravityTimer struct {
	dm       *config.DifficultyManager
	tickRate int
	elapsed  int
}

func newGravityTimer(cfg config.GravityConfig, tickRate int) gravityTimer {
	return gravityTimer{dm: config.NewDifficultyManager(cfg), tickRate: tickRate}
}

// step advances the timer and applies gravity when it runs out.
func (t *gravityTimer) step(s *engine.Session) {
	t.elapsed++
	if t.elapsed >= t.dm.Ticks(s.Level(), t.tickRate) {
		t.elapsed = 0
		s.Tick()
	}
}

func (t *gravityTimer) reset() {
	t.elapsed = 0
}

// pacer fires once every n ticks.
type pacer struct {
	every   int
	elapsed int
}

func newPacer(ms, tickRate int) pacer {
	return pacer{every: config.MsToTicks(ms, tickRate)}
}

func (p *pacer) ready() bool {
	p.elapsed++
	if p.elapsed < p.every {
		return false
	}
	p.elapsed = 0
	return true
}

// applyInput feeds one frame of player actions into s. It reports whether
// the gravity timer should restart, which happens after any downward move or
// when a new piece is brought in.
func applyInput(s *engine.Session, in core.InputFrame) bool {
	restart := false

	if in.Has(core.ActionHold) && s.Hold() {
		restart = true
	}
	if in.Has(core.ActionRotateCW) {
		s.RotateCW()
	}
	if in.Has(core.ActionRotateCCW) {
		s.RotateCCW()
	}
	if in.Has(core.ActionLeft) {
		s.MoveLeft()
	}
	if in.Has(core.ActionRight) {
		s.MoveRight()
	}
	if in.Has(core.ActionSoftDrop) {
		s.SoftDrop()
		restart = true
	}
	if in.Has(core.ActionHardDrop) {
		s.HardDrop()
		restart = true
	}
	return restart
}
