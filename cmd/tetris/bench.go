package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/multiplayer"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagBenchGames     int
	flagBenchWorkers   int
	flagBenchWeights   string
	flagBenchRival     string
	flagBenchMaxPieces int
	flagBenchDuel      bool
	flagBenchVerbose   bool
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run autopilot games headless",
	Long: `Play a batch of autopilot games without a terminal and report how
they went. Game i uses seed --seed + i, so a pinned --seed repeats a run.

With --duel, every seed is a CPU vs CPU match between the --weights and
--rival presets on the same pieces. Matches run until both seats reach the
autopilot level cap or top out, and are stored like versus matches.

Examples:
  tetris bench
  tetris bench --games 100 --seed 42
  tetris bench --weights weak --max-pieces 2000
  tetris bench --duel --rival weak`,
	Args: cobra.NoArgs,
	Run:  runBench,
}

func init() {
	benchCmd.Flags().IntVar(&flagBenchGames, "games", 20, "Number of games")
	benchCmd.Flags().IntVar(&flagBenchWorkers, "workers", runtime.NumCPU(), "Games played at once")
	benchCmd.Flags().StringVar(&flagBenchWeights, "weights", "", "Weights preset: strong or weak (default from config)")
	benchCmd.Flags().StringVar(&flagBenchRival, "rival", "weak", "Weights preset for the second seat with --duel")
	benchCmd.Flags().IntVar(&flagBenchMaxPieces, "max-pieces", 5000, "Stop a single game after this many pieces (0 = no limit)")
	benchCmd.Flags().BoolVar(&flagBenchDuel, "duel", false, "Pit two autopilots against each other")
	benchCmd.Flags().BoolVarP(&flagBenchVerbose, "verbose", "v", false, "Log every game")
}

// benchRun is the outcome of one autopilot game.
type benchRun struct {
	Seed    int64
	Score   int
	Lines   int
	Level   int
	Stats   engine.Stats
	Capped  bool // Stopped by --max-pieces
	Elapsed time.Duration
}

func runBench(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "bench",
	})
	if flagBenchVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	if flagBenchGames <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --games must be positive")
		os.Exit(1)
	}

	settings := loadSettings()
	if flagBenchWeights != "" {
		settings.Autopilot.Weights = flagBenchWeights
	}
	if _, err := settings.Autopilot.WeightsPreset(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	baseSeed := flagSeed
	if baseSeed == 0 {
		baseSeed = engine.EntropySeed()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("starting", "games", flagBenchGames, "weights", settings.Autopilot.Weights,
		"duel", flagBenchDuel, "seed", baseSeed)

	if flagBenchDuel {
		if err := benchDuels(ctx, logger, settings, baseSeed); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	start := time.Now()
	runs, err := benchGames(ctx, logger, settings, baseSeed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	printBench(runs, time.Since(start))
}

// benchGames plays the games in parallel, one goroutine per game.
func benchGames(ctx context.Context, logger *log.Logger, settings config.TetrisConfig, baseSeed int64) ([]benchRun, error) {
	runs := make([]benchRun, flagBenchGames)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(flagBenchWorkers, 1))

	for i := range runs {
		seed := baseSeed + int64(i)
		g.Go(func() error {
			sc, err := settings.SessionConfig(seed)
			if err != nil {
				return err
			}
			run, err := playAutopilot(ctx, sc, flagBenchMaxPieces)
			if err != nil {
				return err
			}
			logger.Debug("game finished", "seed", seed, "score", run.Score,
				"lines", run.Lines, "pieces", run.Stats.Pieces, "capped", run.Capped)
			runs[i] = run
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return runs, nil
}

// ctxCheckEvery is how many autopilot turns pass between cancellation checks.
const ctxCheckEvery = 256

// playAutopilot lets the autopilot play one session to the end.
func playAutopilot(ctx context.Context, sc engine.SessionConfig, maxPieces int) (benchRun, error) {
	s, err := engine.NewSession(sc)
	if err != nil {
		return benchRun{}, err
	}

	start := time.Now()
	run := benchRun{Seed: sc.Seed}
	for turn := 0; !s.GameOver(); turn++ {
		if maxPieces > 0 && s.Stats().Pieces >= maxPieces {
			run.Capped = true
			break
		}
		if turn%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return benchRun{}, err
			}
		}
		s.MoveComputer()
	}

	run.Score = s.Score()
	run.Lines = s.Lines()
	run.Level = s.Level()
	run.Stats = s.Stats()
	run.Elapsed = time.Since(start)
	return run, nil
}

func printBench(runs []benchRun, wall time.Duration) {
	data := make([][]string, 0, len(runs))
	var total, pieces int
	best, worst := runs[0].Score, runs[0].Score
	for _, r := range runs {
		total += r.Score
		pieces += r.Stats.Pieces
		best = max(best, r.Score)
		worst = min(worst, r.Score)

		end := "over"
		if r.Capped {
			end = "capped"
		}
		data = append(data, []string{
			strconv.FormatInt(r.Seed, 10),
			humanize.Comma(int64(r.Score)),
			strconv.Itoa(r.Lines),
			strconv.Itoa(r.Level),
			humanize.Comma(int64(r.Stats.Pieces)),
			strconv.Itoa(r.Stats.Tetrises),
			strconv.Itoa(r.Stats.TSpins),
			strconv.Itoa(r.Stats.MaxCombo),
			end,
			r.Elapsed.Round(time.Millisecond).String(),
		})
	}
	printTable([]string{"Seed", "Score", "Lines", "Level", "Pieces", "Tetrises", "T-Spins", "Combo", "End", "Time"}, data)

	fmt.Println()
	fmt.Printf("Games: %d  Mean: %s  Best: %s  Worst: %s\n",
		len(runs),
		emph(humanize.Comma(int64(total/len(runs)))),
		humanize.Comma(int64(best)),
		humanize.Comma(int64(worst)),
	)
	fmt.Printf("Pieces: %s in %s (%s/s)\n",
		humanize.Comma(int64(pieces)),
		wall.Round(time.Millisecond),
		humanize.Comma(int64(float64(pieces)/max(wall.Seconds(), 0.001))),
	)
}

// benchDuels plays CPU vs CPU matches in parallel and stores each result.
func benchDuels(ctx context.Context, logger *log.Logger, settings config.TetrisConfig, baseSeed int64) error {
	if settings.Autopilot.LevelCap <= 0 {
		return errors.New("--duel needs a positive autopilot.level_cap")
	}

	rival := settings
	rival.Autopilot.Weights = flagBenchRival
	if _, err := rival.Autopilot.WeightsPreset(); err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, results will not be stored", "error", err)
	}
	if store != nil {
		defer store.Close()
	}

	results := make([]multiplayer.MatchResult, flagBenchGames)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(flagBenchWorkers, 1))

	for i := range results {
		seed := baseSeed + int64(i)
		g.Go(func() error {
			res, err := playDuel(ctx, settings, rival, seed)
			if err != nil {
				return err
			}
			logger.Debug("match finished", "seed", seed, "score1", res.Score1,
				"score2", res.Score2, "winner", res.Winner)
			if store != nil {
				if err := store.SaveMatchResult(res.Data(tetris.IDAutopilot, 0)); err != nil {
					logger.Warn("could not store match", "match", res.MatchID, "error", err)
				}
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	var wins [3]int // Draws, Player1, Player2
	data := make([][]string, 0, len(results))
	for i, r := range results {
		wins[r.Winner]++
		winner := "draw"
		if r.Winner != 0 {
			winner = r.Winner.String()
		}
		data = append(data, []string{
			strconv.FormatInt(baseSeed+int64(i), 10),
			humanize.Comma(int64(r.Score1)),
			humanize.Comma(int64(r.Score2)),
			winner,
			humanize.Comma(int64(r.Ticks)),
		})
	}
	printTable([]string{"Seed", settings.Autopilot.Weights, rival.Autopilot.Weights, "Winner", "Turns"}, data)

	fmt.Println()
	fmt.Printf("%s (P1): %d wins  %s (P2): %d wins  Draws: %d\n",
		emph(settings.Autopilot.Weights), wins[multiplayer.Player1],
		emph(rival.Autopilot.Weights), wins[multiplayer.Player2],
		wins[0],
	)
	return nil
}

// playDuel runs two autopilots on the same seed, one turn each per step,
// until both have ended. The level cap guarantees that they do.
func playDuel(ctx context.Context, p1Cfg, p2Cfg config.TetrisConfig, seed int64) (multiplayer.MatchResult, error) {
	seats := make([]*engine.Session, 2)
	for i, cfg := range []config.TetrisConfig{p1Cfg, p2Cfg} {
		sc, err := cfg.SessionConfig(seed)
		if err != nil {
			return multiplayer.MatchResult{}, err
		}
		sc.ID = i + 1
		if seats[i], err = engine.NewSession(sc); err != nil {
			return multiplayer.MatchResult{}, err
		}
	}

	duel := multiplayer.NewDuel(multiplayer.MatchModeCPUvsCPU, seats[0], seats[1])
	for !duel.Over() {
		if duel.Ticks()%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return multiplayer.MatchResult{}, err
			}
		}
		for _, s := range seats {
			s.MoveComputer()
		}
		duel.Tick()
	}
	return duel.Result(), nil
}
