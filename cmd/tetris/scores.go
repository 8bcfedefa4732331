package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagScoresLimit int
	flagMatches     bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show stored scores for a mode",
	Long: `Display the best stored scores for the specified mode (default: tetris).

With --matches, show the most recent versus matches instead.

Examples:
  tetris scores
  tetris scores tetris_auto --limit 20
  tetris scores --matches`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rows to show")
	scoresCmd.Flags().BoolVar(&flagMatches, "matches", false, "Show recent versus matches")
}

func runScores(cmd *cobra.Command, args []string) {
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

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagMatches {
		if err := printMatches(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := printScores(store, gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store, gameID string) error {
	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	fmt.Printf("High Scores - %s\n\n", game.Title())

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'tetris play %s' to set the first high score!\n", gameID)
		return nil
	}

	data := make([][]string, 0, len(scores))
	for i, e := range scores {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			e.Player,
			humanize.Comma(int64(e.Score)),
			strconv.Itoa(e.Lines),
			strconv.Itoa(e.Level),
			humanize.Time(e.CreatedAt),
		})
	}
	printTable([]string{"Rank", "Player", "Score", "Lines", "Level", "Played"}, data)

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Games: %d  Best: %s  Average: %s  Most lines: %d\n",
		stats.GamesCount,
		humanize.Comma(int64(stats.HighScore)),
		humanize.Comma(int64(stats.AvgScore)),
		stats.MaxLines,
	)
	return nil
}

func printMatches(store *storage.Store) error {
	matches, err := store.RecentMatches(flagScoresLimit)
	if err != nil {
		return err
	}

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		return nil
	}

	data := make([][]string, 0, len(matches))
	for _, m := range matches {
		winner := m.Winner
		if winner == "" {
			winner = "draw"
		}
		data = append(data, []string{
			m.MatchID[:min(8, len(m.MatchID))],
			m.Mode,
			humanize.Comma(int64(m.Score1)),
			humanize.Comma(int64(m.Score2)),
			winner,
			m.EndReason,
			fmt.Sprintf("%ds", m.Duration),
			humanize.Time(m.CreatedAt),
		})
	}
	printTable([]string{"Match", "Mode", "P1", "P2", "Winner", "Ended", "Length", "Played"}, data)
	return nil
}
