package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show or update the top scores file",
	Long: `Work with the plain-text top scores file.

The file holds one "score name" pair per line, best first. Its location
and size come from the leaderboard section of the config.

Examples:
  tetris leaderboard show
  tetris leaderboard add 12000 ann`,
}

var leaderboardShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the top scores",
	Args:  cobra.NoArgs,
	Run:   runLeaderboardShow,
}

var leaderboardAddCmd = &cobra.Command{
	Use:   "add <score> <name...>",
	Short: "Rank a score by hand",
	Args:  cobra.MinimumNArgs(2),
	Run:   runLeaderboardAdd,
}

func init() {
	leaderboardCmd.AddCommand(leaderboardShowCmd)
	leaderboardCmd.AddCommand(leaderboardAddCmd)
}

func openLeaderboard() *storage.Leaderboard {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	lb, err := storage.OpenLeaderboard(cfg.Leaderboard.Path, cfg.Leaderboard.Size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return lb
}

func runLeaderboardShow(_ *cobra.Command, _ []string) {
	lb := openLeaderboard()

	entries := lb.Entries()
	if len(entries) == 0 {
		fmt.Println("The leaderboard is empty.")
		return
	}

	data := make([][]string, 0, len(entries))
	for i, e := range entries {
		data = append(data, []string{strconv.Itoa(i + 1), e.Name, humanize.Comma(int64(e.Score))})
	}
	printTable([]string{"Rank", "Name", "Score"}, data)
}

func runLeaderboardAdd(_ *cobra.Command, args []string) {
	score, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid score %q\n", args[0])
		os.Exit(1)
	}
	name := strings.Join(args[1:], " ")

	lb := openLeaderboard()
	rank, err := lb.Add(score, name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if rank == 0 {
		fmt.Printf("%s does not make the leaderboard.\n", humanize.Comma(int64(score)))
		return
	}

	if err := lb.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s ranked %s with %s.\n", strings.TrimSpace(name), emph(fmt.Sprintf("#%d", rank)), humanize.Comma(int64(score)))
}
