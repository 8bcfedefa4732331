// Package tetris adapts the engine to the platform's Game interface:
// a single-player marathon, an autopilot demo and a versus-CPU match.
package tetris

import (
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Mode represents the single-board game mode.
type Mode string

const (
	ModeMarathon  Mode = "marathon"
	ModeAutopilot Mode = "autopilot"
)

// Game IDs used for the registry and score storage.
const (
	IDMarathon  = "tetris"
	IDAutopilot = "tetris_auto"
	IDVersus    = "tetris_vs"
)

// Minimum screen size for one board with its side panel.
const (
	soloMinW = boardW + 1 + panelW
	soloMinH = boardH + 1
)

// Game is one board driven either by the player or by the autopilot.
type Game struct {
	mode    Mode
	cfg     config.TetrisConfig
	session *engine.Session
	gravity gravityTimer
	cpu     pacer
	tick    uint64

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// New creates a marathon game controlled by the player.
func New() *Game {
	return &Game{mode: ModeMarathon}
}

// NewAutopilot creates a game the computer plays on its own.
func NewAutopilot() *Game {
	return &Game{mode: ModeAutopilot}
}

func init() {
	registry.Register(IDMarathon, func() registry.Game {
		return New()
	})
	registry.Register(IDAutopilot, func() registry.Game {
		return NewAutopilot()
	})
	registry.Register(IDVersus, func() registry.Game {
		return NewVersus()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeAutopilot {
		return IDAutopilot
	}
	return IDMarathon
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeAutopilot {
		return "Autopilot"
	}
	return "Marathon"
}

// Reset starts a fresh session with the current package settings.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = Settings()
	g.session = newSession(g.cfg, int(core.Player1), cfg.Seed)
	g.gravity = newGravityTimer(g.cfg.Gravity, tickRate(cfg))
	g.cpu = newPacer(g.cfg.Autopilot.MoveDelayMs, tickRate(cfg))
	g.tick = 0
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tooSmall = g.screenW < soloMinW || g.screenH < soloMinH
}

func tickRate(cfg core.RuntimeConfig) int {
	if cfg.TickRate <= 0 {
		return core.DefaultConfig().TickRate
	}
	return cfg.TickRate
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.session.GameOver() {
		g.paused = !g.paused
	}
	if g.paused || g.session.GameOver() {
		// Restart after game over is handled by the platform calling Reset.
		return core.StepResult{State: g.State()}
	}

	before := g.session.Lines()
	if g.mode == ModeAutopilot {
		if g.cpu.ready() {
			g.session.MoveComputer()
		}
	} else {
		if applyInput(g.session, in) {
			g.gravity.reset()
		} else {
			g.gravity.step(g.session)
		}
	}

	return core.StepResult{
		State:   g.State(),
		Cleared: g.session.Lines() - before,
	}
}

// Resize adapts to a new terminal size without restarting.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.tooSmall = g.screenW < soloMinW || g.screenH < soloMinH
}

// Ranked reports whether scores from this mode go on the leaderboard.
// Autopilot scores do not.
func (g *Game) Ranked() bool {
	return g.mode == ModeMarathon
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		Level:    g.session.Level(),
		Lines:    g.session.Lines(),
		GameOver: g.session.GameOver(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Session exposes the underlying engine session.
func (g *Game) Session() *engine.Session {
	return g.session
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	if g.mode == ModeAutopilot {
		return "P: Pause | R: Restart | Q: Quit"
	}
	return "←→ Move  ↓ Soft drop  ↑/X/Z Rotate  C Hold  Space Drop  P Pause"
}
