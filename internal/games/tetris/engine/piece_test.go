package engine

import (
	"testing"
)

func TestTilesAlwaysFour(t *testing.T) {
	for _, k := range Kinds {
		p := NewPiece(k)
		for r := range p.RotationCount() {
			n := 0
			for range p.Tiles() {
				n++
			}
			if n != 4 {
				t.Errorf("%v rotation %d: got %d tiles, want 4", k, r, n)
			}
			p.RotateCW()
		}
	}
}

func TestRotationCount(t *testing.T) {
	for _, k := range Kinds {
		want := 4
		if k == KindO {
			want = 1
		}
		if got := NewPiece(k).RotationCount(); got != want {
			t.Errorf("%v.RotationCount() = %d, want %d", k, got, want)
		}
	}
}

func TestRotateRoundTrip(t *testing.T) {
	for _, k := range Kinds {
		p := NewPiece(k)
		for start := range p.RotationCount() {
			p.RotateCW()
			p.RotateCCW()
			if p.Rotation() != start {
				t.Errorf("%v: CW then CCW from %d ended at %d", k, start, p.Rotation())
			}
			p.RotateCCW()
			p.RotateCW()
			if p.Rotation() != start {
				t.Errorf("%v: CCW then CW from %d ended at %d", k, start, p.Rotation())
			}
			p.RotateCW()
		}
	}
}

func TestRotateCCWWrapsToLast(t *testing.T) {
	p := NewPiece(KindT)
	p.RotateCCW()
	if p.Rotation() != 3 {
		t.Errorf("Rotation() = %d, want 3", p.Rotation())
	}

	o := NewPiece(KindO)
	o.RotateCCW()
	o.RotateCW()
	o.RotateCW()
	if o.Rotation() != 0 {
		t.Errorf("O Rotation() = %d, want 0", o.Rotation())
	}
}

func TestKindIDs(t *testing.T) {
	tests := []struct {
		kind Kind
		id   int
		name string
	}{
		{KindI, 1, "I"},
		{KindJ, 2, "J"},
		{KindL, 3, "L"},
		{KindO, 4, "O"},
		{KindS, 5, "S"},
		{KindT, 6, "T"},
		{KindZ, 7, "Z"},
	}

	for _, tt := range tests {
		p := NewPiece(tt.kind)
		if p.ID() != tt.id {
			t.Errorf("%v.ID() = %d, want %d", tt.kind, p.ID(), tt.id)
		}
		if tt.kind.String() != tt.name {
			t.Errorf("String() = %q, want %q", tt.kind.String(), tt.name)
		}
	}
}

func TestResetRestoresSpawn(t *testing.T) {
	p := NewPiece(KindL)
	p.RotateCW()
	p.Move(5, -2)
	p.Reset()

	if p.Rotation() != 0 {
		t.Errorf("Rotation() = %d, want 0", p.Rotation())
	}
	if p.Offset() != p.Spawn() {
		t.Errorf("Offset() = %v, want %v", p.Offset(), p.Spawn())
	}
}

func TestTilesFollowPiece(t *testing.T) {
	p := NewPiece(KindO)
	before := p.Cells()

	p.Move(3, 1)
	var after []Position
	for pos := range p.Tiles() {
		after = append(after, pos)
	}

	for i, pos := range after {
		want := before[i].Add(3, 1)
		if pos != want {
			t.Errorf("tile %d = %v, want %v", i, pos, want)
		}
	}
}

func TestTilesRestartable(t *testing.T) {
	p := NewPiece(KindS)
	seq := p.Tiles()

	var first, second []Position
	for pos := range seq {
		first = append(first, pos)
	}
	for pos := range seq {
		second = append(second, pos)
	}

	if len(first) != 4 || len(second) != 4 {
		t.Fatalf("got %d and %d tiles, want 4 each", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("tile %d differs between passes: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestNewPiecePanicsOnInvalidKind(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewPiece(KindNone) did not panic")
		}
	}()
	NewPiece(KindNone)
}
