package engine

// Points per placement, indexed by rows cleared and multiplied by the level.
var (
	linePoints  = [...]int{0, 100, 300, 500, 800}
	tSpinPoints = [...]int{400, 800, 1200, 1600}
)

const (
	softDropPoints = 1  // per row
	hardDropPoints = 2  // per row
	comboPoints    = 50 // times combo times level
	firstLevelGoal = 3  // lines needed to leave level 1
)

// Placement describes the outcome of the most recent settle.
type Placement struct {
	Kind    Kind
	Cleared int
	TSpin   bool
	Combo   int
	Points  int // score gained by the settle itself, drop points excluded
}

// Stats accumulates per-session counters for display and storage.
type Stats struct {
	Pieces   int
	Holds    int
	TSpins   int
	Tetrises int
	MaxCombo int
}

// linePointsFor returns the line-clear award for n rows at level.
func linePointsFor(n, level int) int {
	if n < 0 || n >= len(linePoints) {
		n = len(linePoints) - 1
	}
	return linePoints[n] * level
}

// tSpinBonusFor returns the extra points a T-spin earns over a normal clear of
// n rows, so that the two together equal the T-spin table value.
func tSpinBonusFor(n, level int) int {
	if n < 0 || n >= len(tSpinPoints) {
		return 0
	}
	return (tSpinPoints[n] - linePoints[n]) * level
}

// tSpinCorners counts occupied corners of the 3x3 box anchored at the piece offset.
func tSpinCorners(f *Playfield, p Piece) int {
	o := p.Offset()
	corners := [4]Position{o, o.Add(2, 0), o.Add(0, 2), o.Add(2, 2)}
	n := 0
	for _, c := range corners {
		if f.IsInside(c.Row, c.Col) && f.Cell(c.Row, c.Col) != KindNone {
			n++
		}
	}
	return n
}
