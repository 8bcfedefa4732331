package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long:  `Shows a list of all registered game modes.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No modes available.")
		return
	}

	data := make([][]string, 0, len(games))
	for _, g := range games {
		data = append(data, []string{g.ID, g.Title})
	}
	printTable([]string{"ID", "Title"}, data)

	fmt.Println()
	fmt.Println("Run 'tetris play <id>' to play a mode.")
}
