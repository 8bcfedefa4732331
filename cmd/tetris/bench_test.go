package main

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/multiplayer"
)

func TestPlayAutopilotDeterministic(t *testing.T) {
	sc, err := config.DefaultTetrisConfig().SessionConfig(7)
	if err != nil {
		t.Fatalf("SessionConfig() failed: %v", err)
	}

	first, err := playAutopilot(context.Background(), sc, 40)
	if err != nil {
		t.Fatalf("playAutopilot() failed: %v", err)
	}
	second, err := playAutopilot(context.Background(), sc, 40)
	if err != nil {
		t.Fatalf("playAutopilot() failed: %v", err)
	}

	if diff := cmp.Diff(first, second, cmpopts.IgnoreFields(benchRun{}, "Elapsed")); diff != "" {
		t.Errorf("same seed gave different games (-first +second):\n%s", diff)
	}
	if first.Stats.Pieces > 40 {
		t.Errorf("played %d pieces past the limit of 40", first.Stats.Pieces)
	}
	if first.Seed != 7 {
		t.Errorf("Seed = %d, want 7", first.Seed)
	}
}

func TestPlayAutopilotCanceled(t *testing.T) {
	sc, err := config.DefaultTetrisConfig().SessionConfig(7)
	if err != nil {
		t.Fatalf("SessionConfig() failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := playAutopilot(ctx, sc, 0); !errors.Is(err, context.Canceled) {
		t.Errorf("playAutopilot() error = %v, want context.Canceled", err)
	}
}

func TestPlayDuelMirrorIsDraw(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	cfg.Autopilot.LevelCap = 1 // Each seat ends after its first turn

	res, err := playDuel(context.Background(), cfg, cfg, 11)
	if err != nil {
		t.Fatalf("playDuel() failed: %v", err)
	}

	want := multiplayer.MatchResult{
		Mode:   multiplayer.MatchModeCPUvsCPU,
		Reason: multiplayer.MatchEndReasonCompleted,
		Winner: 0,
		Score1: res.Score1,
		Score2: res.Score1,
		Ticks:  1,
	}
	if diff := cmp.Diff(want, res, cmpopts.IgnoreFields(multiplayer.MatchResult{}, "MatchID")); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
	if res.MatchID == "" {
		t.Error("match has no ID")
	}
}
