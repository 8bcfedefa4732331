package tetris

import (
	"sync"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

var (
	settingsMu sync.RWMutex
	settings   = config.DefaultTetrisConfig()
)

// Configure sets the configuration used by games created afterwards.
// Call it before starting the TUI or SSH server.
func Configure(cfg config.TetrisConfig) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings = cfg
}

// Settings returns the active configuration.
func Settings() config.TetrisConfig {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settings
}

// newSession builds a session from cfg. A broken weights name falls back to
// the strong preset so a bad config never prevents play.
func newSession(cfg config.TetrisConfig, id int, seed int64) *engine.Session {
	sc, err := cfg.SessionConfig(seed)
	if err != nil {
		sc = engine.DefaultSessionConfig()
		sc.Seed = seed
	}
	sc.ID = id

	s, err := engine.NewSession(sc)
	if err != nil {
		// Only reachable with invalid dimensions, which the defaults never are.
		panic(err)
	}
	return s
}
