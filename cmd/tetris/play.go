package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: tetris).

Modes:
  tetris       - Marathon, scores go on the leaderboard
  tetris_auto  - Watch the autopilot play
  tetris_vs    - Race the autopilot on the same pieces

Controls:
  Left/Right   - Move
  Down         - Soft drop
  Up/X         - Rotate clockwise
  Z            - Rotate counter-clockwise
  C            - Hold
  Space        - Hard drop
  P            - Pause
  R            - Restart (after game over)
  Esc          - Back (when paused or over)
  Q/Ctrl+C     - Quit
  Ctrl+S       - Save a screenshot

Difficulty options:
  easy   - Slow gravity, weaker autopilot
  normal - Standard gravity
  hard   - Fast gravity
  fixed  - Gravity never speeds up

Examples:
  tetris play
  tetris play tetris_auto
  tetris play tetris_vs --difficulty easy
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := tetris.IDMarathon
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tetris list' to see available modes.")
		os.Exit(1)
	}

	settings := loadSettings()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	deps := openDeps(settings)

	// Run the game
	runErr := tui.Run(game, deps, runtimeConfig())

	// Close store before potential exit
	closeDeps(deps)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
