package tetris

import (
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/multiplayer"
)

// Minimum screen size for two boards side by side.
const (
	versusMinW = 2*(boardW+1+panelW) + 2
	versusMinH = boardH + 1
)

// Versus runs the player against the autopilot on two boards fed by the same
// piece sequence. The match ends when both boards have topped out or the
// player leaves; the higher score wins.
type Versus struct {
	cfg      config.TetrisConfig
	human    *engine.Session
	cpu      *engine.Session
	duel     *multiplayer.Duel
	gravity  gravityTimer
	cpuPace  pacer
	tickRate int
	tick     uint64

	resultSaver multiplayer.MatchResultSaver // Optional, can be nil
	saved       bool
	saveErr     error

	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// NewVersus creates a player vs autopilot match.
func NewVersus() *Versus {
	return &Versus{}
}

// ID returns the game identifier.
func (v *Versus) ID() string {
	return IDVersus
}

// Title returns the display name.
func (v *Versus) Title() string {
	return "Versus CPU"
}

// SetResultSaver sets the optional match result saver. It survives Reset.
func (v *Versus) SetResultSaver(saver multiplayer.MatchResultSaver) {
	v.resultSaver = saver
}

// Reset starts a new match.
func (v *Versus) Reset(cfg core.RuntimeConfig) {
	seed := cfg.Seed
	if seed == 0 {
		seed = engine.EntropySeed()
	}

	v.cfg = Settings()
	v.tickRate = tickRate(cfg)
	v.human = newSession(v.cfg, int(core.Player1), seed)
	v.cpu = newSession(v.cfg, int(core.Player2), seed)
	v.duel = multiplayer.NewDuel(multiplayer.MatchModeVsCPU, v.human, v.cpu)
	v.gravity = newGravityTimer(v.cfg.Gravity, v.tickRate)
	v.cpuPace = newPacer(v.cfg.Autopilot.MoveDelayMs, v.tickRate)
	v.tick = 0
	v.saved = false
	v.saveErr = nil
	v.paused = false
	v.screenW = cfg.ScreenW
	v.screenH = cfg.ScreenH
	v.tooSmall = v.screenW < versusMinW || v.screenH < versusMinH
}

// Step advances both boards by one tick.
func (v *Versus) Step(in core.InputFrame) core.StepResult {
	v.tick++

	if v.tooSmall {
		return core.StepResult{State: v.State()}
	}

	if in.Has(core.ActionPause) && !v.duel.Over() {
		v.paused = !v.paused
	}
	if v.paused || v.duel.Over() {
		return core.StepResult{State: v.State()}
	}

	before := v.human.Lines()
	if !v.human.GameOver() {
		if applyInput(v.human, in) {
			v.gravity.reset()
		} else {
			v.gravity.step(v.human)
		}
	}
	if !v.cpu.GameOver() && v.cpuPace.ready() {
		v.cpu.MoveComputer()
	}

	v.duel.Tick()
	if v.duel.Over() {
		v.finish()
	}

	return core.StepResult{
		State:   v.State(),
		Cleared: v.human.Lines() - before,
	}
}

// Resize adapts to a new terminal size without restarting.
func (v *Versus) Resize(width, height int) {
	v.screenW = width
	v.screenH = height
	v.tooSmall = v.screenW < versusMinW || v.screenH < versusMinH
}

// Leave forfeits a running match for the player. The platform calls it when
// the player quits mid-match.
func (v *Versus) Leave() {
	if v.duel == nil || v.duel.Over() {
		return
	}
	v.duel.Forfeit(multiplayer.Player1)
	v.finish()
}

// finish records the result once per match.
func (v *Versus) finish() {
	if v.saved {
		return
	}
	v.saved = true
	if v.resultSaver != nil {
		v.saveErr = v.resultSaver.SaveMatchResult(v.duel.Result().Data(IDVersus, v.tickRate))
	}
}

// Result returns the match outcome so far.
func (v *Versus) Result() multiplayer.MatchResult {
	return v.duel.Result()
}

// SaveErr returns the error from storing the match result, if any.
func (v *Versus) SaveErr() error {
	return v.saveErr
}

// Seat returns the session for a player.
func (v *Versus) Seat(id core.PlayerID) *engine.Session {
	if id == core.Player2 {
		return v.cpu
	}
	return v.human
}

// State reports the player's board; GameOver means the match is over.
func (v *Versus) State() core.GameState {
	return core.GameState{
		Score:    v.human.Score(),
		Level:    v.human.Level(),
		Lines:    v.human.Lines(),
		GameOver: v.duel.Over(),
		Paused:   v.paused || v.tooSmall,
	}
}

// Controls returns the control hints for the game.
func (v *Versus) Controls() string {
	return "←→ Move  ↓ Soft drop  ↑/X/Z Rotate  C Hold  Space Drop  Q Forfeit"
}
