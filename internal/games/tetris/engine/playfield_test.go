package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// fillRow occupies every cell of row r except the listed gap columns.
func fillRow(f *Playfield, r int, gaps ...int) {
	skip := make(map[int]bool, len(gaps))
	for _, c := range gaps {
		skip[c] = true
	}
	for c := range f.Cols() {
		if !skip[c] {
			f.Set(r, c, KindZ)
		}
	}
}

// grid renders a board as rows of '.' and '#'.
func grid(b Board) []string {
	out := make([]string, b.Rows())
	for r := range b.Rows() {
		row := make([]byte, b.Cols())
		for c := range b.Cols() {
			row[c] = '.'
			if b.Cell(r, c) != KindNone {
				row[c] = '#'
			}
		}
		out[r] = string(row)
	}
	return out
}

// parseGrid builds a playfield from rows of '.' and '#'.
func parseGrid(rows ...string) *Playfield {
	f := NewPlayfield(len(rows), len(rows[0]))
	for r, line := range rows {
		for c, ch := range line {
			if ch == '#' {
				f.Set(r, c, KindJ)
			}
		}
	}
	return f
}

func TestPlayfieldBounds(t *testing.T) {
	f := NewPlayfield(DefaultRows, DefaultCols)

	tests := []struct {
		r, c   int
		inside bool
	}{
		{0, 0, true},
		{21, 9, true},
		{-1, 0, false},
		{0, -1, false},
		{22, 0, false},
		{0, 10, false},
	}

	for _, tt := range tests {
		if got := f.IsInside(tt.r, tt.c); got != tt.inside {
			t.Errorf("IsInside(%d, %d) = %v, want %v", tt.r, tt.c, got, tt.inside)
		}
		if got := f.IsEmpty(tt.r, tt.c); got != tt.inside {
			t.Errorf("IsEmpty(%d, %d) = %v, want %v on empty board", tt.r, tt.c, got, tt.inside)
		}
	}

	f.Set(5, 5, KindT)
	if f.IsEmpty(5, 5) {
		t.Error("IsEmpty(5, 5) = true after Set")
	}
	if f.Cell(5, 5) != KindT {
		t.Errorf("Cell(5, 5) = %v, want T", f.Cell(5, 5))
	}
}

func TestRowQueries(t *testing.T) {
	f := parseGrid(
		"....",
		"#...",
		"####",
	)

	if !f.IsRowEmpty(0) || f.IsRowFull(0) {
		t.Error("row 0 should be empty and not full")
	}
	if f.IsRowEmpty(1) || f.IsRowFull(1) {
		t.Error("row 1 should be neither empty nor full")
	}
	if !f.IsRowFull(2) || f.IsRowEmpty(2) {
		t.Error("row 2 should be full and not empty")
	}
}

func TestClearFullRows(t *testing.T) {
	tests := []struct {
		name    string
		board   []string
		cleared int
		want    []string
	}{
		{
			name: "full empty full",
			board: []string{
				"....",
				"....",
				"....",
				"####",
				"....",
				"####",
			},
			cleared: 2,
			want: []string{
				"....",
				"....",
				"....",
				"....",
				"....",
				"....",
			},
		},
		{
			name: "full partial full",
			board: []string{
				"....",
				"....",
				"....",
				"####",
				"#..#",
				"####",
			},
			cleared: 2,
			want: []string{
				"....",
				"....",
				"....",
				"....",
				"....",
				"#..#",
			},
		},
		{
			name: "rows above collapse by count below",
			board: []string{
				".#..",
				"#...",
				"####",
				"..#.",
				"####",
				"####",
			},
			cleared: 3,
			want: []string{
				"....",
				"....",
				"....",
				".#..",
				"#...",
				"..#.",
			},
		},
		{
			name: "nothing to clear",
			board: []string{
				"....",
				"#.#.",
				"###.",
			},
			cleared: 0,
			want: []string{
				"....",
				"#.#.",
				"###.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := parseGrid(tt.board...)
			if got := f.ClearFullRows(); got != tt.cleared {
				t.Errorf("ClearFullRows() = %d, want %d", got, tt.cleared)
			}
			if diff := cmp.Diff(tt.want, grid(f)); diff != "" {
				t.Errorf("board mismatch (-want +got):\n%s", diff)
			}
			if got := f.ClearFullRows(); got != 0 {
				t.Errorf("second ClearFullRows() = %d, want 0", got)
			}
		})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	f := parseGrid(
		"....",
		".#..",
	)
	c := f.Clone()
	c.Set(0, 0, KindI)

	if f.Cell(0, 0) != KindNone {
		t.Error("writing to clone changed the original")
	}
	if diff := cmp.Diff([]string{"#...", ".#.."}, grid(c)); diff != "" {
		t.Errorf("clone mismatch (-want +got):\n%s", diff)
	}
}

func TestBoardMetrics(t *testing.T) {
	f := parseGrid(
		"....",
		"....",
		"#...",
		"#..#",
		".#.#",
		"##.#",
	)

	heights := []int{4, 2, 0, 3}
	for c, want := range heights {
		if got := f.ColumnHeight(c); got != want {
			t.Errorf("ColumnHeight(%d) = %d, want %d", c, got, want)
		}
	}

	if got := f.Holes(); got != 1 {
		t.Errorf("Holes() = %d, want 1", got)
	}
	if got := f.HeightDiff(); got != 7 {
		t.Errorf("HeightDiff() = %d, want 7", got)
	}
	if got := f.Wells(); got != 0 {
		t.Errorf("Wells() = %d, want 0", got)
	}
	if got := f.FullLines(); got != 0 {
		t.Errorf("FullLines() = %d, want 0", got)
	}
	if got := f.EmptyLines(); got != 2 {
		t.Errorf("EmptyLines() = %d, want 2", got)
	}
}

func TestWells(t *testing.T) {
	tests := []struct {
		name  string
		board []string
		want  int
	}{
		{
			name: "deep middle column",
			board: []string{
				"...",
				"...",
				"#..",
				"#.#",
				"#.#",
				"#.#",
			},
			want: 1,
		},
		{
			name: "shallow middle column",
			board: []string{
				"...",
				"...",
				"...",
				"#.#",
				"#.#",
				"###",
			},
			want: 0,
		},
		{
			name: "threshold is six",
			board: []string{
				"...",
				"...",
				"#..",
				"#..",
				"#.#",
				"#.#",
			},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseGrid(tt.board...).Wells(); got != tt.want {
				t.Errorf("Wells() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDropDistanceOnEmptyBoard(t *testing.T) {
	f := NewPlayfield(DefaultRows, DefaultCols)

	for _, k := range Kinds {
		p := NewPiece(k)
		maxRow := -1 << 31
		for pos := range p.Tiles() {
			maxRow = max(maxRow, pos.Row)
		}
		want := (DefaultRows - 1) - maxRow
		if got := f.DropDistance(p); got != want {
			t.Errorf("%v: DropDistance() = %d, want %d", k, got, want)
		}
	}
}

func TestDropDistanceStopsOnStack(t *testing.T) {
	f := NewPlayfield(DefaultRows, DefaultCols)
	fillRow(f, 21)
	f.Set(15, 4, KindI)

	p := NewPiece(KindO) // columns 4 and 5, rows 0 and 1
	if got := f.DropDistance(p); got != 13 {
		t.Errorf("DropDistance() = %d, want 13", got)
	}
}

func TestFitsAndMerge(t *testing.T) {
	f := NewPlayfield(DefaultRows, DefaultCols)
	p := NewPiece(KindT)

	if !f.Fits(p) {
		t.Fatal("T should fit at spawn on an empty board")
	}
	f.Merge(p)
	if f.Fits(p) {
		t.Error("T should not fit on top of itself")
	}
	for pos := range p.Tiles() {
		if f.Cell(pos.Row, pos.Col) != KindT {
			t.Errorf("Cell%v = %v, want T", pos, f.Cell(pos.Row, pos.Col))
		}
	}
}
