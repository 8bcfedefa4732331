package engine

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// wellField returns a 22x10 field with rows 18-21 filled except column 9.
func wellField() *Playfield {
	f := NewPlayfield(DefaultRows, DefaultCols)
	for r := 18; r < 22; r++ {
		fillRow(f, r, 9)
	}
	return f
}

func TestWeightsByName(t *testing.T) {
	tests := []struct {
		name    string
		want    Weights
		wantErr error
	}{
		{"", StrongWeights, nil},
		{"strong", StrongWeights, nil},
		{"weak", WeakWeights, nil},
		{"genius", Weights{}, ErrUnknownWeights},
	}

	for _, tt := range tests {
		got, err := WeightsByName(tt.name)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("WeightsByName(%q) error = %v, want %v", tt.name, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("WeightsByName(%q) = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestRate(t *testing.T) {
	f := parseGrid(
		"....",
		"....",
		"#...",
		"#..#",
		".#.#",
		"##.#",
	)

	// 2 empty + 2 drop - (1 hole*10 + 7 diff*3)
	if got := StrongWeights.Rate(f, 2); got != -27 {
		t.Errorf("StrongWeights.Rate() = %d, want -27", got)
	}
	// 2 empty + 2 drop - (1 hole*3 + 7 diff*3)
	if got := WeakWeights.Rate(f, 2); got != -20 {
		t.Errorf("WeakWeights.Rate() = %d, want -20", got)
	}
}

func TestFindBestMoveFillsWell(t *testing.T) {
	f := wellField()
	before := grid(f)
	p := spawnOn(f, NewPiece(KindI))

	got := FindBestMove(f, p, StrongWeights)
	want := FindBestMove(f, p, StrongWeights)

	if got.Rotations != 1 || got.LeftSteps != 0 {
		t.Errorf("FindBestMove() = %+v, want 1 rotation and 0 left steps", got)
	}
	if got.Rating != 18+4000+17 {
		t.Errorf("Rating = %d, want %d", got.Rating, 18+4000+17)
	}
	if got != want {
		t.Errorf("FindBestMove() not deterministic: %+v then %+v", got, want)
	}
	if diff := cmp.Diff(before, grid(f)); diff != "" {
		t.Errorf("search modified the field (-before +after):\n%s", diff)
	}
}

func TestFindBestMoveOnEmptyBoard(t *testing.T) {
	f := NewPlayfield(DefaultRows, DefaultCols)
	p := spawnOn(f, NewPiece(KindO))

	got := FindBestMove(f, p, StrongWeights)
	// Both edges rate best; the rightmost column is tried first.
	if got.Rotations != 0 || got.LeftSteps != 0 {
		t.Errorf("FindBestMove() = %+v, want rotation 0 and 0 left steps", got)
	}
}

func TestMoveComputerClearsTetris(t *testing.T) {
	s := newTestSession(t)
	s.field = wellField()
	s.current = spawnOn(s.field, NewPiece(KindI))

	s.MoveComputer()

	if s.Lines() != 4 {
		t.Errorf("Lines() = %d, want 4", s.Lines())
	}
	if got := s.LastPlacement().Cleared; got != 4 {
		t.Errorf("LastPlacement().Cleared = %d, want 4", got)
	}
	if s.Stats().Tetrises != 1 {
		t.Errorf("Stats().Tetrises = %d, want 1", s.Stats().Tetrises)
	}
}

func TestMoveComputerHoldsForBetterPiece(t *testing.T) {
	s := newTestSession(t)
	s.field = wellField()
	s.current = spawnOn(s.field, NewPiece(KindO))
	s.held = KindI

	s.MoveComputer()

	if s.Current().Kind() != KindI {
		t.Errorf("Current() = %v, want I swapped in from hold", s.Current().Kind())
	}
	if held, _ := s.Held(); held != KindO {
		t.Errorf("Held() = %v, want O", held)
	}
	if !s.lastMoveHold {
		t.Error("lastMoveHold = false after a hold turn")
	}
	if s.Stats().Pieces != 0 {
		t.Errorf("Stats().Pieces = %d, want 0", s.Stats().Pieces)
	}

	s.MoveComputer()
	if s.Lines() != 4 {
		t.Errorf("Lines() after second turn = %d, want 4", s.Lines())
	}
	if s.lastMoveHold {
		t.Error("lastMoveHold = true after a drop turn")
	}
}

func TestMoveComputerNeverHoldsTwiceInARow(t *testing.T) {
	s := newTestSession(t)
	s.field = wellField()
	s.current = spawnOn(s.field, NewPiece(KindO))
	s.held = KindI
	s.lastMoveHold = true

	s.MoveComputer()

	if held, _ := s.Held(); held != KindI {
		t.Errorf("Held() = %v, want I untouched", held)
	}
	if s.Stats().Pieces != 1 {
		t.Errorf("Stats().Pieces = %d, want 1 (the O was dropped)", s.Stats().Pieces)
	}
}

func TestMoveComputerLevelCap(t *testing.T) {
	tests := []struct {
		name     string
		cap      int
		gameOver bool
	}{
		{"cap reached", 13, true},
		{"cap disabled", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t)
			s.level = 12
			s.lines = 5
			s.nextGoal = 1
			s.levelCap = tt.cap
			s.lastMoveHold = true

			s.MoveComputer()

			if s.Level() != 13 {
				t.Fatalf("Level() = %d, want 13", s.Level())
			}
			if s.GameOver() != tt.gameOver {
				t.Errorf("GameOver() = %v, want %v", s.GameOver(), tt.gameOver)
			}
		})
	}
}

func TestAutopilotSurvives(t *testing.T) {
	cfg := DefaultSessionConfig()
	cfg.Seed = 2024
	cfg.LevelCap = 0
	s, err := NewSession(cfg)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}

	for range 300 {
		s.MoveComputer()
		if s.GameOver() {
			break
		}
	}

	if s.Lines() < 20 {
		t.Errorf("autopilot cleared only %d lines in 300 turns", s.Lines())
	}
}
