package engine

import (
	"fmt"
	"math/rand"
)

// Smallest board that can hold every rotation of every piece.
const (
	MinRows = 4
	MinCols = 4
)

// DefaultLevelCap is the level at which the autopilot stops playing.
const DefaultLevelCap = 13

// SessionConfig holds the construction parameters of a Session.
type SessionConfig struct {
	ID   int
	Rows int
	Cols int

	// Seed for the piece supply. 0 picks a high-entropy seed.
	Seed int64

	// NotStarted creates a session that is already over. Drivers use it as a
	// placeholder before the first real game begins.
	NotStarted bool

	// Weights rate placements when the autopilot plays.
	Weights Weights

	// LevelCap ends the session once an autopilot move reaches this level.
	// 0 disables the cap.
	LevelCap int
}

// DefaultSessionConfig returns the standard 22x10 configuration.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		Rows:     DefaultRows,
		Cols:     DefaultCols,
		Weights:  StrongWeights,
		LevelCap: DefaultLevelCap,
	}
}

// Session is the authoritative state of one player's game. It is not safe for
// concurrent use; a single driver loop owns it and serializes input and ticks.
type Session struct {
	id     int
	field  *Playfield
	supply *Supply

	current Piece
	held    Kind
	canHold bool

	score    int
	combo    int
	level    int
	lines    int
	nextGoal int

	lastRotation bool
	lastMoveHold bool
	gameOver     bool

	weights  Weights
	levelCap int

	last  Placement
	stats Stats
}

// NewSession creates a session with a fresh board and supply.
func NewSession(cfg SessionConfig) (*Session, error) {
	if cfg.Rows < MinRows || cfg.Cols < MinCols {
		return nil, fmt.Errorf("%w: %dx%d (minimum %dx%d)",
			ErrInvalidDimensions, cfg.Rows, cfg.Cols, MinRows, MinCols)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = EntropySeed()
	}

	s := &Session{
		id:       cfg.ID,
		field:    NewPlayfield(cfg.Rows, cfg.Cols),
		supply:   NewSupply(rand.New(rand.NewSource(seed))),
		canHold:  true,
		combo:    -1,
		level:    1,
		nextGoal: firstLevelGoal,
		weights:  cfg.Weights,
		levelCap: cfg.LevelCap,
		gameOver: cfg.NotStarted,
	}
	s.assign(s.supply.Next())

	return s, nil
}

// assign makes p the active piece at its spawn position, nudged down into the
// board as far as two rows allow.
func (s *Session) assign(p Piece) {
	s.current = spawnOn(s.field, p)
}

// MoveLeft shifts the active piece one column left if it fits.
func (s *Session) MoveLeft() bool {
	return s.slide(-1)
}

// MoveRight shifts the active piece one column right if it fits.
func (s *Session) MoveRight() bool {
	return s.slide(1)
}

func (s *Session) slide(dc int) bool {
	if s.gameOver {
		return false
	}
	if !shift(s.field, &s.current, 0, dc) {
		return false
	}
	s.lastRotation = false
	return true
}

// RotateCW rotates the active piece clockwise, trying kick offsets.
func (s *Session) RotateCW() bool {
	return s.turn(true)
}

// RotateCCW rotates the active piece counter-clockwise, trying kick offsets.
func (s *Session) RotateCCW() bool {
	return s.turn(false)
}

func (s *Session) turn(clockwise bool) bool {
	if s.gameOver {
		return false
	}
	ok := rotate(s.field, &s.current, clockwise)
	s.lastRotation = ok
	return ok
}

// Hold banks the active piece. With an empty hold slot the next piece comes
// from the supply; otherwise the held and active pieces swap. Allowed once
// per settle.
func (s *Session) Hold() bool {
	if s.gameOver || !s.canHold {
		return false
	}

	banked := s.current.Kind()
	if s.held == KindNone {
		s.assign(s.supply.Next())
	} else {
		s.assign(NewPiece(s.held))
	}
	s.held = banked

	s.lastRotation = false
	s.canHold = false
	s.stats.Holds++
	return true
}

// SoftDrop moves the active piece down one row for one point. When the piece
// cannot move it settles. Returns false if a settle happened.
func (s *Session) SoftDrop() bool {
	if s.gameOver {
		return false
	}
	if !s.fall() {
		return false
	}
	s.score += softDropPoints
	return true
}

// Tick is one gravity step: SoftDrop without the point.
func (s *Session) Tick() bool {
	if s.gameOver {
		return false
	}
	return s.fall()
}

func (s *Session) fall() bool {
	if !shift(s.field, &s.current, 1, 0) {
		s.place()
		return false
	}
	s.lastRotation = false
	return true
}

// HardDrop drops the active piece to the floor, awards two points per row and
// settles it. Returns the distance dropped.
func (s *Session) HardDrop() int {
	if s.gameOver {
		return 0
	}
	d := s.field.DropDistance(s.current)
	s.score += hardDropPoints * d
	s.current.Move(d, 0)
	s.place()
	s.lastRotation = false
	return d
}

// DropDistance returns how far the active piece would fall on a hard drop.
func (s *Session) DropDistance() int {
	return s.field.DropDistance(s.current)
}

// Ghost returns the active piece moved to its landing row.
func (s *Session) Ghost() Piece {
	g := s.current
	g.Move(s.DropDistance(), 0)
	return g
}

// place settles the active piece, clears rows, updates score, level and
// combo, then either ends the game or brings in the next piece.
func (s *Session) place() {
	s.field.Merge(s.current)
	cleared := s.field.ClearFullRows()

	s.lines += cleared
	if s.lines >= s.nextGoal {
		s.level++
		s.nextGoal += 1 + s.level*2
	}

	before := s.score
	tspin := s.current.Kind() == KindT && s.lastRotation &&
		tSpinCorners(s.field, s.current) >= 3
	if tspin {
		s.score += tSpinBonusFor(cleared, s.level)
		s.stats.TSpins++
	}
	s.score += linePointsFor(cleared, s.level)

	if cleared > 0 {
		s.combo++
		s.score += comboPoints * s.combo * s.level
	} else {
		s.combo = -1
	}

	s.last = Placement{
		Kind:    s.current.Kind(),
		Cleared: cleared,
		TSpin:   tspin,
		Combo:   s.combo,
		Points:  s.score - before,
	}
	s.stats.Pieces++
	if cleared == 4 {
		s.stats.Tetrises++
	}
	s.stats.MaxCombo = max(s.stats.MaxCombo, s.combo)

	if s.bufferOccupied() {
		s.gameOver = true
		return
	}

	s.assign(s.supply.Next())
	if !s.field.Fits(s.current) {
		s.gameOver = true
		return
	}
	s.lastRotation = false
	s.canHold = true
}

func (s *Session) bufferOccupied() bool {
	for r := range min(HiddenRows, s.field.Rows()) {
		if !s.field.IsRowEmpty(r) {
			return true
		}
	}
	return false
}

// ID returns the session identifier.
func (s *Session) ID() int { return s.id }

// Board returns a read-only view of the playfield.
func (s *Session) Board() Board { return s.field }

// Current returns a copy of the active piece.
func (s *Session) Current() Piece { return s.current }

// Held returns the held kind, if any.
func (s *Session) Held() (Kind, bool) { return s.held, s.held != KindNone }

// CanHold reports whether Hold is currently allowed.
func (s *Session) CanHold() bool { return s.canHold }

// Preview returns the upcoming kinds, next first.
func (s *Session) Preview() [PreviewSize]Kind { return s.supply.Preview() }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Combo returns the combo counter; -1 means no active combo.
func (s *Session) Combo() int { return s.combo }

// Level returns the difficulty level, starting at 1.
func (s *Session) Level() int { return s.level }

// Lines returns the total number of rows cleared.
func (s *Session) Lines() int { return s.lines }

// NextLevelGoal returns the line total at which the next level begins.
func (s *Session) NextLevelGoal() int { return s.nextGoal }

// GameOver reports whether the session has ended.
func (s *Session) GameOver() bool { return s.gameOver }

// LastPlacement returns the outcome of the most recent settle.
func (s *Session) LastPlacement() Placement { return s.last }

// Stats returns the accumulated counters.
func (s *Session) Stats() Stats { return s.stats }

// Board is the read-only playfield surface exposed to drivers.
type Board interface {
	Rows() int
	Cols() int
	Cell(r, c int) Kind
}
