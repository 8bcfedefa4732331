// tetris is a falling-block puzzle game for the terminal with a heuristic
// autopilot.
//
// Usage:
//
//	tetris list                   - List available modes
//	tetris play [mode]            - Play a mode (default: tetris)
//	tetris menu                   - Start menu to pick modes interactively
//	tetris serve                  - Start SSH server for remote play
//	tetris scores <mode>          - Show stored scores for a mode
//	tetris leaderboard show|add   - Read or update the top scores file
//	tetris bench                  - Run autopilot games headless
//	tetris config                 - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.tetris/scores.db)
//	--config <path>       - Use a custom config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris in your terminal, with an autopilot",
	Long: `A falling-block puzzle game for the terminal.

Play a marathon yourself, watch the autopilot play, or race it on two
boards fed by the same pieces.

Available commands:
  list         - Show all modes
  play         - Play a mode directly
  menu         - Interactive mode picker
  serve        - Start SSH server for remote play
  scores       - View stored scores
  leaderboard  - Show or update the top scores file
  bench        - Measure the autopilot
  config       - Print the effective configuration

Examples:
  tetris play
  tetris play tetris_vs --difficulty hard
  tetris menu
  tetris serve --ssh :2222
  tetris bench --games 50`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetris/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(configCmd)
}

// loadSettings reads the configuration, applies --difficulty and hands the
// result to the game package. It exits on a bad config.
func loadSettings() config.TetrisConfig {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		config.ApplyTetrisPreset(&cfg, preset)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	tetris.Configure(cfg)
	return cfg
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openDeps opens the score database and leaderboard. Either may come back
// nil; the game still works without them.
func openDeps(cfg config.TetrisConfig) tui.Deps {
	deps := tui.Deps{Player: playerName()}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s could not open scores database: %v\n", warn("Warning:"), err)
	} else {
		deps.Store = store
	}

	lb, err := storage.OpenLeaderboard(cfg.Leaderboard.Path, cfg.Leaderboard.Size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s could not open leaderboard: %v\n", warn("Warning:"), err)
	} else {
		deps.Leaderboard = lb
	}

	return deps
}

func closeDeps(deps tui.Deps) {
	if deps.Store != nil {
		deps.Store.Close()
	}
}

// playerName is the default name offered for scores.
func playerName() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}
