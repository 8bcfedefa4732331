package engine

// Standard playfield dimensions. The top HiddenRows rows are spawn headroom
// and are not drawn.
const (
	DefaultRows = 22
	DefaultCols = 10
	HiddenRows  = 2
)

// Playfield is the grid of settled cells. Cells are stored row-major and hold
// the Kind of the piece that settled there, or KindNone.
type Playfield struct {
	rows  int
	cols  int
	cells []Kind
}

// NewPlayfield creates an empty playfield. Callers validate dimensions.
func NewPlayfield(rows, cols int) *Playfield {
	return &Playfield{
		rows:  rows,
		cols:  cols,
		cells: make([]Kind, rows*cols),
	}
}

// Rows returns the number of rows, hidden rows included.
func (f *Playfield) Rows() int { return f.rows }

// Cols returns the number of columns.
func (f *Playfield) Cols() int { return f.cols }

func (f *Playfield) index(r, c int) int {
	return r*f.cols + c
}

// IsInside reports whether (r, c) lies on the board.
func (f *Playfield) IsInside(r, c int) bool {
	return r >= 0 && r < f.rows && c >= 0 && c < f.cols
}

// IsEmpty reports whether (r, c) is on the board and unoccupied.
func (f *Playfield) IsEmpty(r, c int) bool {
	return f.IsInside(r, c) && f.cells[f.index(r, c)] == KindNone
}

// Cell returns the kind settled at (r, c). Out-of-bounds reads return KindNone.
func (f *Playfield) Cell(r, c int) Kind {
	if !f.IsInside(r, c) {
		return KindNone
	}
	return f.cells[f.index(r, c)]
}

// Set writes k at (r, c). Out-of-bounds writes are ignored.
func (f *Playfield) Set(r, c int, k Kind) {
	if f.IsInside(r, c) {
		f.cells[f.index(r, c)] = k
	}
}

// IsRowFull reports whether every cell in row r is occupied.
func (f *Playfield) IsRowFull(r int) bool {
	for c := range f.cols {
		if f.cells[f.index(r, c)] == KindNone {
			return false
		}
	}
	return true
}

// IsRowEmpty reports whether every cell in row r is free.
func (f *Playfield) IsRowEmpty(r int) bool {
	for c := range f.cols {
		if f.cells[f.index(r, c)] != KindNone {
			return false
		}
	}
	return true
}

// Fits reports whether every tile of p is on the board and unoccupied.
func (f *Playfield) Fits(p Piece) bool {
	for t := range p.Tiles() {
		if !f.IsEmpty(t.Row, t.Col) {
			return false
		}
	}
	return true
}

// Merge writes the tiles of p into the grid. Tiles outside the board are dropped.
func (f *Playfield) Merge(p Piece) {
	for t := range p.Tiles() {
		f.Set(t.Row, t.Col, p.Kind())
	}
}

func (f *Playfield) clearRow(r int) {
	start := f.index(r, 0)
	clear(f.cells[start : start+f.cols])
}

func (f *Playfield) moveRowDown(r, n int) {
	src := f.index(r, 0)
	dst := f.index(r+n, 0)
	copy(f.cells[dst:dst+f.cols], f.cells[src:src+f.cols])
	f.clearRow(r)
}

// ClearFullRows removes every full row and collapses the rows above it in a
// single bottom-up pass. Returns the number of rows removed.
func (f *Playfield) ClearFullRows() int {
	cleared := 0
	for r := f.rows - 1; r >= 0; r-- {
		switch {
		case f.IsRowFull(r):
			f.clearRow(r)
			cleared++
		case cleared > 0:
			f.moveRowDown(r, cleared)
		}
	}
	return cleared
}

// Clone returns a deep copy of the playfield.
func (f *Playfield) Clone() *Playfield {
	cells := make([]Kind, len(f.cells))
	copy(cells, f.cells)
	return &Playfield{
		rows:  f.rows,
		cols:  f.cols,
		cells: cells,
	}
}

// DropDistance returns how many rows p can fall before a tile would hit an
// occupied cell or the floor.
func (f *Playfield) DropDistance(p Piece) int {
	drop := f.rows
	for t := range p.Tiles() {
		d := 0
		for f.IsEmpty(t.Row+d+1, t.Col) {
			d++
		}
		drop = min(drop, d)
	}
	return drop
}
