package engine

import (
	"fmt"
	"math"
)

// Weights scales each board feature in the placement rating:
//
//	rating = empty*EmptyLines + full*ClearedLines + drop*DropDistance
//	       - (holes*Holes + diff*HeightDiff + wells*Wells)
type Weights struct {
	EmptyLines   int `yaml:"empty_lines"`
	ClearedLines int `yaml:"cleared_lines"`
	DropDistance int `yaml:"drop_distance"`
	Holes        int `yaml:"holes"`
	HeightDiff   int `yaml:"height_diff"`
	Wells        int `yaml:"wells"`
}

// Weight presets. StrongWeights rarely loses; WeakWeights tolerates holes and
// tops out within a few levels.
var (
	StrongWeights = Weights{EmptyLines: 1, ClearedLines: 1000, DropDistance: 1, Holes: 10, HeightDiff: 3, Wells: 20}
	WeakWeights   = Weights{EmptyLines: 1, ClearedLines: 1000, DropDistance: 1, Holes: 3, HeightDiff: 3, Wells: 20}
)

// WeightsByName resolves a preset name ("strong" or "weak").
func WeightsByName(name string) (Weights, error) {
	switch name {
	case "", "strong":
		return StrongWeights, nil
	case "weak":
		return WeakWeights, nil
	default:
		return Weights{}, fmt.Errorf("%w: %q", ErrUnknownWeights, name)
	}
}

// Rate scores a board after a simulated drop of drop rows.
func (w Weights) Rate(f *Playfield, drop int) int {
	return f.EmptyLines()*w.EmptyLines +
		f.FullLines()*w.ClearedLines +
		drop*w.DropDistance -
		(f.Holes()*w.Holes + f.HeightDiff()*w.HeightDiff + f.Wells()*w.Wells)
}

// Move is a placement found by the search: rotate clockwise Rotations times,
// push fully right, then step left LeftSteps columns.
type Move struct {
	Rating    int
	Rotations int
	LeftSteps int
}

// FindBestMove tries every rotation and column for p on f and returns the
// placement with the highest rating. f is not modified; each candidate is
// rated on its own clone. Ties keep the first candidate found, so rightmost
// positions and earlier rotations win.
func FindBestMove(f *Playfield, p Piece, w Weights) Move {
	best := Move{Rating: math.MinInt}

	for n := range 4 {
		for shift(f, &p, 0, 1) {
		}

		for i := range f.Rows() {
			drop := f.DropDistance(p)

			landed := p
			landed.Move(drop, 0)
			trial := f.Clone()
			trial.Merge(landed)

			if rating := w.Rate(trial, drop); rating > best.Rating {
				best = Move{Rating: rating, Rotations: n, LeftSteps: i}
			}

			if !shift(f, &p, 0, -1) {
				break
			}
		}

		rotate(f, &p, true)
	}

	return best
}

// MoveComputer plays one autopilot turn. It rates the active piece and the
// piece a hold would bring in (the held piece, else the next in the preview).
// If the alternative rates strictly higher and the previous turn was not a
// hold, it holds; otherwise it performs the best move and hard-drops.
func (s *Session) MoveComputer() {
	if s.gameOver {
		return
	}

	move := FindBestMove(s.field, s.current, s.weights)

	altKind := s.supply.Peek(0)
	if s.held != KindNone {
		altKind = s.held
	}
	alt := FindBestMove(s.field, spawnOn(s.field, NewPiece(altKind)), s.weights)

	if alt.Rating > move.Rating && !s.lastMoveHold && s.canHold {
		s.Hold()
		s.lastMoveHold = true
	} else {
		for range move.Rotations {
			s.RotateCW()
		}
		for s.MoveRight() {
		}
		for range move.LeftSteps {
			s.MoveLeft()
		}
		s.HardDrop()
		s.lastMoveHold = false
	}

	if s.levelCap > 0 && s.level >= s.levelCap {
		s.gameOver = true
	}
}
