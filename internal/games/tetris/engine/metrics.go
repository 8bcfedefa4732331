package engine

// Board features used by the autopilot to rate a placement.

// Holes counts empty cells that have an occupied cell somewhere above them in
// the same column.
func (f *Playfield) Holes() int {
	holes := 0
	for c := range f.cols {
		covered := false
		for r := range f.rows {
			empty := f.cells[f.index(r, c)] == KindNone
			if empty && covered {
				holes++
			}
			if !empty {
				covered = true
			}
		}
	}
	return holes
}

// ColumnHeight returns rows minus the index of the topmost occupied cell in
// column c, or 0 for an empty column.
func (f *Playfield) ColumnHeight(c int) int {
	for r := range f.rows {
		if f.cells[f.index(r, c)] != KindNone {
			return f.rows - r
		}
	}
	return 0
}

// HeightDiff sums the absolute height difference of each adjacent column pair.
func (f *Playfield) HeightDiff() int {
	total := 0
	prev := f.ColumnHeight(0)
	for c := 1; c < f.cols; c++ {
		h := f.ColumnHeight(c)
		total += abs(h - prev)
		prev = h
	}
	return total
}

// Wells counts column triples whose middle column sits deep below both
// neighbours: (left - mid) + (right - mid) >= 6.
func (f *Playfield) Wells() int {
	if f.cols < 3 {
		return 0
	}
	wells := 0
	left := f.ColumnHeight(0)
	mid := f.ColumnHeight(1)
	for c := 2; c < f.cols; c++ {
		right := f.ColumnHeight(c)
		if (left-mid)+(right-mid) >= 6 {
			wells++
		}
		left, mid = mid, right
	}
	return wells
}

// FullLines counts rows that are completely occupied.
func (f *Playfield) FullLines() int {
	n := 0
	for r := range f.rows {
		if f.IsRowFull(r) {
			n++
		}
	}
	return n
}

// EmptyLines counts rows with no occupied cell.
func (f *Playfield) EmptyLines() int {
	n := 0
	for r := range f.rows {
		if f.IsRowEmpty(r) {
			n++
		}
	}
	return n
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
