package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var (
	flagConfigDefaults bool
	flagConfigGravity  int
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after applying --config and --difficulty.

Use --defaults to print the built-in file, a starting point for
~/.tetris/configs/tetris.yaml. Use --gravity N to list the fall delay
for the first N levels instead.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in default file")
	configCmd.Flags().IntVar(&flagConfigGravity, "gravity", 0, "Print the gravity delay for the first N levels")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfigDefaults {
		fmt.Print(string(config.DefaultYAML()))
		return
	}

	cfg := loadSettings()
	if flagConfigGravity > 0 {
		printTable([]string{"Level", "Delay", "Ticks"}, gravityRows(cfg.Gravity, flagFPS, flagConfigGravity))
		return
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(out))
}

// gravityRows lists the fall delay and its length in ticks for levels 1..levels.
func gravityRows(g config.GravityConfig, tickRate, levels int) [][]string {
	dm := config.NewDifficultyManager(g)
	rows := make([][]string, 0, levels)
	for level := 1; level <= levels; level++ {
		rows = append(rows, []string{
			strconv.Itoa(level),
			dm.Delay(level).Round(time.Millisecond).String(),
			strconv.Itoa(dm.Ticks(level, tickRate)),
		})
	}
	return rows
}
