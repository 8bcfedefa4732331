package tetris

import "github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// BoardSnapshot captures one session for determinism testing and replay.
type BoardSnapshot struct {
	Score    int
	Level    int
	Lines    int
	Combo    int
	Piece    string
	Rotation int
	Row      int
	Col      int
	Held     string
	Preview  [engine.PreviewSize]string
	Pieces   int
	GameOver bool
}

// Snapshot captures the complete game state.
type Snapshot struct {
	Tick  uint64
	Mode  string
	Board BoardSnapshot
	State GameStateType
}

// VersusSnapshot captures both seats of a match.
type VersusSnapshot struct {
	Tick   uint64
	P1     BoardSnapshot
	P2     BoardSnapshot
	Winner string // Empty while running or on a draw
	State  GameStateType
}

func snapshotBoard(s *engine.Session) BoardSnapshot {
	cur := s.Current()
	held, _ := s.Held()
	snap := BoardSnapshot{
		Score:    s.Score(),
		Level:    s.Level(),
		Lines:    s.Lines(),
		Combo:    s.Combo(),
		Piece:    cur.Kind().String(),
		Rotation: cur.Rotation(),
		Row:      cur.Offset().Row,
		Col:      cur.Offset().Col,
		Held:     held.String(),
		Pieces:   s.Stats().Pieces,
		GameOver: s.GameOver(),
	}
	for i, k := range s.Preview() {
		snap.Preview[i] = k.String()
	}
	return snap
}

func stateOf(tooSmall, paused, over bool) GameStateType {
	switch {
	case tooSmall:
		return StatePausedSmall
	case over:
		return StateGameOver
	case paused:
		return StatePaused
	default:
		return StatePlaying
	}
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:  g.tick,
		Mode:  string(g.mode),
		Board: snapshotBoard(g.session),
		State: stateOf(g.tooSmall, g.paused, g.session.GameOver()),
	}
}

// Snapshot returns the current match snapshot.
func (v *Versus) Snapshot() VersusSnapshot {
	snap := VersusSnapshot{
		Tick:  v.tick,
		P1:    snapshotBoard(v.human),
		P2:    snapshotBoard(v.cpu),
		State: stateOf(v.tooSmall, v.paused, v.duel.Over()),
	}
	if w := v.duel.Winner(); w != 0 {
		snap.Winner = w.String()
	}
	return snap
}
