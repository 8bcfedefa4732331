package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

func TestGravityRows(t *testing.T) {
	g := config.GravityConfig{BaseDelayMs: 1000, Factor: 0.5, MinDelayMs: 100}

	want := [][]string{
		{"1", "1s", "60"},
		{"2", "500ms", "30"},
		{"3", "250ms", "15"},
		{"4", "125ms", "8"},
		{"5", "100ms", "6"},
	}
	if diff := cmp.Diff(want, gravityRows(g, 60, 5)); diff != "" {
		t.Errorf("gravityRows() mismatch (-want +got):\n%s", diff)
	}
}
