// Package engine implements the falling-block rules: piece shapes and rotation,
// the randomized piece supply, the playfield grid, the session state machine
// and the heuristic autopilot. It has no platform or terminal dependencies.
package engine

import (
	"fmt"
	"iter"
)

// Position is a (row, column) cell address. Row 0 is the top of the playfield.
// Positions may be negative while a piece sits above the board.
type Position struct {
	Row int
	Col int
}

// P is a convenience constructor for Position.
func P(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Add returns the position translated by (dRow, dCol).
func (p Position) Add(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Kind identifies one of the seven tetromino shapes. The numeric value is the
// id stored in playfield cells, so KindNone doubles as the empty cell.
type Kind uint8

const (
	KindNone Kind = iota
	KindI
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// KindCount is the number of playable kinds.
const KindCount = 7

// Kinds lists every playable kind in id order.
var Kinds = [KindCount]Kind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindZ:
		return "Z"
	default:
		return "Unknown"
	}
}

// Valid reports whether k is one of the seven playable kinds.
func (k Kind) Valid() bool {
	return k >= KindI && k <= KindZ
}

// shape is the immutable description of a kind.
type shape struct {
	rotations [][4]Position
	spawn     Position
}

var shapes = [...]shape{
	KindI: {
		spawn: P(-1, 3),
		rotations: [][4]Position{
			{P(1, 0), P(1, 1), P(1, 2), P(1, 3)},
			{P(0, 2), P(1, 2), P(2, 2), P(3, 2)},
			{P(2, 0), P(2, 1), P(2, 2), P(2, 3)},
			{P(0, 1), P(1, 1), P(2, 1), P(3, 1)},
		},
	},
	KindJ: {
		spawn: P(0, 3),
		rotations: [][4]Position{
			{P(0, 0), P(1, 0), P(1, 1), P(1, 2)},
			{P(0, 1), P(0, 2), P(1, 1), P(2, 1)},
			{P(1, 0), P(1, 1), P(1, 2), P(2, 2)},
			{P(0, 1), P(1, 1), P(2, 0), P(2, 1)},
		},
	},
	KindL: {
		spawn: P(0, 3),
		rotations: [][4]Position{
			{P(0, 2), P(1, 0), P(1, 1), P(1, 2)},
			{P(0, 1), P(1, 1), P(2, 1), P(2, 2)},
			{P(1, 0), P(1, 1), P(1, 2), P(2, 0)},
			{P(0, 0), P(0, 1), P(1, 1), P(2, 1)},
		},
	},
	KindO: {
		spawn: P(0, 4),
		rotations: [][4]Position{
			{P(0, 0), P(0, 1), P(1, 0), P(1, 1)},
		},
	},
	KindS: {
		spawn: P(0, 3),
		rotations: [][4]Position{
			{P(0, 1), P(0, 2), P(1, 0), P(1, 1)},
			{P(0, 1), P(1, 1), P(1, 2), P(2, 2)},
			{P(1, 1), P(1, 2), P(2, 0), P(2, 1)},
			{P(0, 0), P(1, 0), P(1, 1), P(2, 1)},
		},
	},
	KindT: {
		spawn: P(0, 3),
		rotations: [][4]Position{
			{P(0, 1), P(1, 0), P(1, 1), P(1, 2)},
			{P(0, 1), P(1, 1), P(1, 2), P(2, 1)},
			{P(1, 0), P(1, 1), P(1, 2), P(2, 1)},
			{P(0, 1), P(1, 0), P(1, 1), P(2, 1)},
		},
	},
	KindZ: {
		spawn: P(0, 3),
		rotations: [][4]Position{
			{P(0, 0), P(0, 1), P(1, 1), P(1, 2)},
			{P(0, 2), P(1, 1), P(1, 2), P(2, 1)},
			{P(1, 0), P(1, 1), P(2, 1), P(2, 2)},
			{P(0, 1), P(1, 0), P(1, 1), P(2, 0)},
		},
	},
}

// Piece is a live instance of a kind: its current rotation and offset on the board.
// Pieces are values; copying one yields an independent instance.
type Piece struct {
	kind     Kind
	rotation int
	offset   Position
}

// NewPiece creates a piece of the given kind at its spawn position.
// Panics if k is not a playable kind.
func NewPiece(k Kind) Piece {
	if !k.Valid() {
		panic(fmt.Sprintf("engine: invalid piece kind %d", k))
	}
	return Piece{kind: k, offset: shapes[k].spawn}
}

// Kind returns the piece kind.
func (p Piece) Kind() Kind { return p.kind }

// ID returns the cell id written into the playfield when this piece settles.
func (p Piece) ID() int { return int(p.kind) }

// Rotation returns the current rotation index.
func (p Piece) Rotation() int { return p.rotation }

// RotationCount returns how many distinct rotation states the kind has.
func (p Piece) RotationCount() int { return len(shapes[p.kind].rotations) }

// Offset returns the translation applied to the rotation layout.
func (p Piece) Offset() Position { return p.offset }

// Spawn returns the kind's spawn offset.
func (p Piece) Spawn() Position { return shapes[p.kind].spawn }

// RotateCW advances the rotation index. No collision checks happen here.
func (p *Piece) RotateCW() {
	p.rotation = (p.rotation + 1) % p.RotationCount()
}

// RotateCCW moves the rotation index back by one.
func (p *Piece) RotateCCW() {
	n := p.RotationCount()
	p.rotation = (p.rotation - 1 + n) % n
}

// Move translates the piece unconditionally.
func (p *Piece) Move(dRow, dCol int) {
	p.offset = p.offset.Add(dRow, dCol)
}

// Reset puts the piece back to rotation 0 at its spawn offset.
func (p *Piece) Reset() {
	p.rotation = 0
	p.offset = p.Spawn()
}

// Tiles yields the four absolute cells covered by the piece. The sequence is
// derived from the current rotation and offset each time it is ranged over.
func (p Piece) Tiles() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for _, t := range shapes[p.kind].rotations[p.rotation] {
			if !yield(t.Add(p.offset.Row, p.offset.Col)) {
				return
			}
		}
	}
}

// Cells returns the four absolute cells covered by the piece.
func (p Piece) Cells() [4]Position {
	var out [4]Position
	for i, t := range shapes[p.kind].rotations[p.rotation] {
		out[i] = t.Add(p.offset.Row, p.offset.Col)
	}
	return out
}
