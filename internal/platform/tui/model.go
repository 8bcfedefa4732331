package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/multiplayer"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// Deps are the optional services a game session records results to.
// Any of them may be nil or empty.
type Deps struct {
	Store       *storage.Store
	Leaderboard *storage.Leaderboard
	Player      string // Default name for scores and the name prompt
}

// Optional behaviors a registry.Game may implement.
type (
	resizer interface {
		Resize(width, height int)
	}
	ranked interface {
		Ranked() bool
	}
	leaver interface {
		Leave()
	}
	resultSaverSetter interface {
		SetResultSaver(saver multiplayer.MatchResultSaver)
	}
	saveErrorer interface {
		SaveErr() error
	}
)

// Model is the Bubble Tea model for running one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	deps       Deps
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	prompt     *namePrompt // Non-nil while asking for a leaderboard name
	status     string      // Shown under the board after game over
	standalone bool        // Quit the program instead of returning to a menu
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, deps Deps, cfg core.RuntimeConfig) Model {
	if rs, ok := game.(resultSaverSetter); ok && deps.Store != nil {
		rs.SetResultSaver(deps.Store)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		deps:       deps,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.prompt != nil {
			return m.handlePromptKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	if m.prompt != nil {
		return m, m.prompt.update(msg)
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.leave()
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu when the game is not running
	if action == core.ActionBack && (m.gameState.GameOver || m.gameState.Paused) {
		m.leave()
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil
	}

	if action == core.ActionRestart && !m.gameState.GameOver {
		return m, nil
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handlePromptKey routes keys to the name prompt.
func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.prompt = nil
		m.saveScore(m.deps.Player)
		m.quitting = true
		return m, tea.Quit

	case "esc":
		m.prompt = nil
		m.saveScore(m.deps.Player)
		return m, nil

	case "enter":
		name := m.prompt.value()
		rank, err := m.deps.Leaderboard.Add(m.gameState.Score, name)
		if errors.Is(err, storage.ErrInvalidEntry) {
			m.prompt.err = "Enter a name"
			return m, nil
		}
		m.prompt = nil
		m.saveScore(name)
		switch {
		case err != nil:
			m.status = fmt.Sprintf("Leaderboard not updated: %v", err)
		case rank == 0:
			m.status = "Score no longer makes the leaderboard"
		default:
			if err := m.deps.Leaderboard.Save(); err != nil {
				m.status = fmt.Sprintf("Leaderboard not saved: %v", err)
			} else {
				m.status = fmt.Sprintf("Ranked #%d on the leaderboard", rank)
			}
		}
		return m, nil
	}

	return m, m.prompt.update(msg)
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}

	// Games that cannot resize in place start over
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.prompt != nil {
		return m, tickCmd(m.config.TickRate)
	}

	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = 0 // Fresh piece sequence
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.status = ""
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	var cmd tea.Cmd
	if m.gameState.GameOver && !m.scoreSaved {
		cmd = m.finishGame()
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tea.Batch(cmd, tickCmd(m.config.TickRate))
}

// finishGame runs once per game over. A leaderboard score opens the name
// prompt; anything else is stored straight away under the default name.
func (m *Model) finishGame() tea.Cmd {
	m.scoreSaved = true

	if se, ok := m.game.(saveErrorer); ok && se.SaveErr() != nil {
		m.status = fmt.Sprintf("Match not saved: %v", se.SaveErr())
	}

	score := m.gameState.Score
	if score <= 0 {
		return nil
	}

	if r, ok := m.game.(ranked); ok && r.Ranked() && m.deps.Leaderboard != nil {
		if rank := m.deps.Leaderboard.RankFor(score); rank > 0 {
			m.prompt = newNamePrompt(m.deps.Player, score, rank)
			return textinput.Blink
		}
	}

	m.saveScore(m.deps.Player)
	return nil
}

// saveScore records the finished game in the score database.
func (m *Model) saveScore(player string) {
	if m.deps.Store == nil || m.gameState.Score <= 0 {
		return
	}
	_, err := m.deps.Store.SaveScore(storage.ScoreEntry{
		GameID: m.game.ID(),
		Player: player,
		Score:  m.gameState.Score,
		Lines:  m.gameState.Lines,
		Level:  m.gameState.Level,
	})
	if err != nil && m.status == "" {
		m.status = fmt.Sprintf("Score not saved: %v", err)
	}
}

// leave tells a running two-seat game that the player has gone.
func (m *Model) leave() {
	if l, ok := m.game.(leaver); ok {
		l.Leave()
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".tetris", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.prompt != nil {
		return m.prompt.view(m.config.ScreenW, m.config.ScreenH)
	}

	m.game.Render(m.screen)
	if m.status != "" && m.gameState.GameOver {
		y := m.screen.Height() - 1
		m.screen.DrawHLine(0, y, m.screen.Width(), ' ')
		m.screen.DrawTextCentered(y, m.status)
	}

	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for one game. It returns when the player
// quits or goes back.
func Run(game registry.Game, deps Deps, cfg core.RuntimeConfig) error {
	model := NewModel(game, deps, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
