package engine

// Column shifts tried in order when a rotated piece does not fit. Each entry is
// relative to the previous attempt: +1, then -2 (net -1). The I piece gets two
// more: -1 (net -2), then +4 (net +2).
var (
	kickShifts  = [...]int{1, -2}
	iKickShifts = [...]int{-1, 4}
)

// shift moves p by (dRow, dCol) on f and keeps the move only if p still fits.
func shift(f *Playfield, p *Piece, dRow, dCol int) bool {
	p.Move(dRow, dCol)
	if f.Fits(*p) {
		return true
	}
	p.Move(-dRow, -dCol)
	return false
}

// rotate turns p one step and searches the kick offsets for a fitting pose.
// On failure p is restored to its previous rotation and offset.
func rotate(f *Playfield, p *Piece, clockwise bool) bool {
	prev := *p
	if clockwise {
		p.RotateCW()
	} else {
		p.RotateCCW()
	}
	if f.Fits(*p) {
		return true
	}

	for _, dc := range kickShifts {
		p.Move(0, dc)
		if f.Fits(*p) {
			return true
		}
	}
	if p.Kind() == KindI {
		for _, dc := range iKickShifts {
			p.Move(0, dc)
			if f.Fits(*p) {
				return true
			}
		}
	}

	*p = prev
	return false
}

// spawnOn resets p and nudges it down up to two rows, one row at a time,
// keeping each nudge only if it fits.
func spawnOn(f *Playfield, p Piece) Piece {
	p.Reset()
	for range 2 {
		shift(f, &p, 1, 0)
	}
	return p
}
