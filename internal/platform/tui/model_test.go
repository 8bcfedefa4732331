package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// stubGame ends on the first tick after over is set.
type stubGame struct {
	state  core.GameState
	ranked bool
	resets int
	seeds  []int64
	frames []core.InputFrame
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.seeds = append(g.seeds, cfg.Seed)
	g.state = core.GameState{Level: 1}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState { return g.state }
func (g *stubGame) Ranked() bool          { return g.ranked }

type leavingGame struct {
	*stubGame
	left int
}

func (g *leavingGame) Leave() { g.left++ }

func testDeps(t *testing.T) Deps {
	t.Helper()
	dir := t.TempDir()

	store, err := storage.Open(filepath.Join(dir, "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	lb, err := storage.OpenLeaderboard(filepath.Join(dir, "leaderboard.txt"), 3)
	if err != nil {
		t.Fatalf("OpenLeaderboard() failed: %v", err)
	}

	return Deps{Store: store, Leaderboard: lb, Player: "ann"}
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	return send(t, m, TickMsg(time.Now()))
}

func finish(g *stubGame, score int) {
	g.state = core.GameState{Score: score, Level: 2, Lines: 7, GameOver: true}
}

func TestModelInitResetsGame(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, Deps{}, testConfig())

	if cmd := m.Init(); cmd == nil {
		t.Error("Init() returned no tick command")
	}
	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
}

func TestModelForwardsInput(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, Deps{}, testConfig())
	m.Init()

	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = send(t, m, runeKey('c'))
	m = tick(t, m)
	m = tick(t, m)

	if len(g.frames) != 2 {
		t.Fatalf("got %d frames, want 2", len(g.frames))
	}
	if !g.frames[0].Has(core.ActionLeft) || !g.frames[0].Has(core.ActionHold) {
		t.Error("first frame missing actions")
	}
	if !g.frames[1].Empty() {
		t.Error("input not cleared after tick")
	}
}

func TestModelRankedScoreEntersLeaderboard(t *testing.T) {
	deps := testDeps(t)
	g := &stubGame{ranked: true}
	m := NewModel(g, deps, testConfig())
	m.Init()

	finish(g, 1200)
	m = tick(t, m)
	if m.prompt == nil {
		t.Fatal("name prompt not shown for a leaderboard score")
	}
	if got := m.prompt.value(); got != "ann" {
		t.Errorf("prompt value = %q, want default player name", got)
	}
	if !strings.Contains(m.View(), "NEW HIGH SCORE") {
		t.Error("View() does not show the prompt")
	}

	// Ticks do not reach the game while the prompt is open
	frames := len(g.frames)
	m = tick(t, m)
	if len(g.frames) != frames {
		t.Error("game stepped while prompt was open")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.prompt != nil {
		t.Fatal("prompt still open after enter")
	}
	if m.status != "Ranked #1 on the leaderboard" {
		t.Errorf("status = %q", m.status)
	}

	want := []storage.LeaderboardEntry{{Score: 1200, Name: "ann"}}
	if diff := cmp.Diff(want, deps.Leaderboard.Entries()); diff != "" {
		t.Errorf("leaderboard mismatch (-want +got):\n%s", diff)
	}

	reopened, err := storage.OpenLeaderboard(deps.Leaderboard.Path(), 3)
	if err != nil {
		t.Fatalf("OpenLeaderboard() failed: %v", err)
	}
	if diff := cmp.Diff(want, reopened.Entries()); diff != "" {
		t.Errorf("saved leaderboard mismatch (-want +got):\n%s", diff)
	}

	scores, err := deps.Store.TopScores("stub", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Player != "ann" || scores[0].Score != 1200 || scores[0].Lines != 7 {
		t.Errorf("stored scores = %+v", scores)
	}
}

func TestModelPromptRejectsEmptyName(t *testing.T) {
	deps := testDeps(t)
	deps.Player = ""
	g := &stubGame{ranked: true}
	m := NewModel(g, deps, testConfig())
	m.Init()

	finish(g, 300)
	m = tick(t, m)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.prompt == nil {
		t.Fatal("prompt closed on an empty name")
	}
	if m.prompt.err == "" {
		t.Error("no error shown for an empty name")
	}
	if len(deps.Leaderboard.Entries()) != 0 {
		t.Error("empty name added to the leaderboard")
	}
}

func TestModelPromptSkip(t *testing.T) {
	deps := testDeps(t)
	g := &stubGame{ranked: true}
	m := NewModel(g, deps, testConfig())
	m.Init()

	finish(g, 500)
	m = tick(t, m)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.prompt != nil {
		t.Fatal("prompt still open after esc")
	}
	if len(deps.Leaderboard.Entries()) != 0 {
		t.Error("skipped score added to the leaderboard")
	}
	scores, err := deps.Store.TopScores("stub", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Errorf("got %d stored scores, want 1", len(scores))
	}
}

func TestModelUnrankedScoreSavedDirectly(t *testing.T) {
	deps := testDeps(t)
	g := &stubGame{ranked: false}
	m := NewModel(g, deps, testConfig())
	m.Init()

	finish(g, 900)
	m = tick(t, m)
	m = tick(t, m)

	if m.prompt != nil {
		t.Error("prompt shown for an unranked game")
	}
	if len(deps.Leaderboard.Entries()) != 0 {
		t.Error("unranked score added to the leaderboard")
	}
	scores, err := deps.Store.TopScores("stub", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Player != "ann" {
		t.Errorf("stored scores = %+v, want one score saved once", scores)
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, Deps{}, testConfig())
	m.Init()

	// Restart is ignored while playing
	m = send(t, m, runeKey('r'))
	m = tick(t, m)
	if g.resets != 1 {
		t.Fatalf("restart honored mid-game: resets = %d", g.resets)
	}

	finish(g, 0)
	m = tick(t, m)
	m = send(t, m, runeKey('r'))
	m = tick(t, m)

	if g.resets != 2 {
		t.Errorf("resets = %d, want 2", g.resets)
	}
	if m.gameState.GameOver {
		t.Error("state still game over after restart")
	}
}

func TestModelLeavesSeedingToGame(t *testing.T) {
	g := &stubGame{}
	cfg := testConfig()
	cfg.Seed = 0
	m := NewModel(g, Deps{}, cfg)
	m.Init()

	finish(g, 0)
	m = tick(t, m)
	m = send(t, m, runeKey('r'))
	tick(t, m)

	if diff := cmp.Diff([]int64{0, 0}, g.seeds); diff != "" {
		t.Errorf("seeds mismatch (-want +got):\n%s", diff)
	}
}

func TestModelRestartDropsPinnedSeed(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, Deps{}, testConfig())
	m.Init()

	finish(g, 0)
	m = tick(t, m)
	m = send(t, m, runeKey('r'))
	tick(t, m)

	if diff := cmp.Diff([]int64{1, 0}, g.seeds); diff != "" {
		t.Errorf("seeds mismatch (-want +got):\n%s", diff)
	}
}

func TestModelQuitLeavesGame(t *testing.T) {
	g := &leavingGame{stubGame: &stubGame{}}
	m := NewModel(g, Deps{}, testConfig())
	m.Init()

	next, cmd := m.Update(runeKey('q'))
	m = next.(Model)

	if cmd == nil {
		t.Error("quit returned no command")
	}
	if !m.IsQuitting() {
		t.Error("IsQuitting() = false")
	}
	if g.left != 1 {
		t.Errorf("Leave called %d times, want 1", g.left)
	}
}

func TestModelBackToMenu(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, Deps{}, testConfig())
	m.Init()

	// Back is ignored while the game runs
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back honored mid-game")
	}

	finish(g, 0)
	m = tick(t, m)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("BackToMenu() = false after game over")
	}
}
