package multiplayer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

type fakeSeat struct {
	score int
	over  bool
}

func (f *fakeSeat) Score() int     { return f.score }
func (f *fakeSeat) GameOver() bool { return f.over }

func TestDuelRunsUntilBothSeatsEnd(t *testing.T) {
	p1, p2 := &fakeSeat{}, &fakeSeat{}
	d := NewDuel(MatchModeVsCPU, p1, p2)

	d.Tick()
	p1.score, p1.over = 500, true
	d.Tick()

	if d.Over() {
		t.Fatal("match over while Player2 is still playing")
	}
	if d.Winner() != 0 {
		t.Errorf("Winner() = %v before the end", d.Winner())
	}
	if d.Leader() != Player1 {
		t.Errorf("Leader() = %v, want P1", d.Leader())
	}

	p2.score, p2.over = 900, true
	d.Tick()

	if !d.Over() {
		t.Fatal("match should be over")
	}
	want := MatchResult{
		Mode:   MatchModeVsCPU,
		Reason: MatchEndReasonCompleted,
		Winner: Player2,
		Score1: 500,
		Score2: 900,
		Ticks:  2,
	}
	if diff := cmp.Diff(want, d.Result(), cmpopts.IgnoreFields(MatchResult{}, "MatchID")); diff != "" {
		t.Errorf("Result() mismatch (-want +got):\n%s", diff)
	}
}

func TestDuelDraw(t *testing.T) {
	d := NewDuel(MatchModeCPUvsCPU, &fakeSeat{score: 100, over: true}, &fakeSeat{score: 100, over: true})
	if !d.Over() || d.Winner() != 0 {
		t.Errorf("Over() = %v, Winner() = %v, want over with no winner", d.Over(), d.Winner())
	}
}

func TestDuelForfeit(t *testing.T) {
	p1, p2 := &fakeSeat{score: 9000}, &fakeSeat{score: 10}
	d := NewDuel(MatchModeVsCPU, p1, p2)

	d.Forfeit(Player1)

	if !d.Over() {
		t.Fatal("forfeit did not end the match")
	}
	if d.Winner() != Player2 {
		t.Errorf("Winner() = %v, want P2 despite the lower score", d.Winner())
	}
	if r := d.Result(); r.Reason != MatchEndReasonForfeit {
		t.Errorf("Reason = %v, want forfeit", r.Reason)
	}

	d.Forfeit(Player2)
	if d.Winner() != Player2 {
		t.Error("a second forfeit changed the result")
	}
}

func TestMatchIDsAreUnique(t *testing.T) {
	a := NewDuel(MatchModeSolo, &fakeSeat{}, &fakeSeat{})
	b := NewDuel(MatchModeSolo, &fakeSeat{}, &fakeSeat{})
	if a.Match().ID() == b.Match().ID() || a.Match().ID() == "" {
		t.Errorf("match IDs %q and %q", a.Match().ID(), b.Match().ID())
	}
}

func TestMatchResultData(t *testing.T) {
	r := MatchResult{
		MatchID: "m-1",
		Mode:    MatchModeVsCPU,
		Reason:  MatchEndReasonCompleted,
		Winner:  Player1,
		Score1:  10,
		Score2:  5,
		Ticks:   600,
	}

	want := MatchResultData{
		MatchID:      "m-1",
		GameID:       "tetris_vs",
		Mode:         "vs CPU",
		Score1:       10,
		Score2:       5,
		Winner:       "P1",
		EndReason:    "completed",
		DurationSecs: 10,
	}
	if diff := cmp.Diff(want, r.Data("tetris_vs", 60)); diff != "" {
		t.Errorf("Data() mismatch (-want +got):\n%s", diff)
	}

	r.Winner = 0
	if got := r.Data("tetris_vs", 0); got.Winner != "" || got.DurationSecs != 0 {
		t.Errorf("draw data = %+v", got)
	}
}
