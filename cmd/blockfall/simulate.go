package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/replay"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var (
	flagMode   string
	flagNoSave bool
	flagQuiet  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <script.yaml>",
	Short: "Run a YAML intent script",
	Long: `Runs a scripted game headlessly, prints a summary with the final
board and records the run in the ledger.

A script looks like:

  mode: standard
  seed: 42
  ticks: 600
  intents:
    - {at: 0, do: rotate_right}
    - {at: 5, do: hard_drop}

Intent names: move_left, move_right, soft_drop, hard_drop,
rotate_left, rotate_right, pause.

Examples:
  blockfall simulate run.yaml
  blockfall simulate run.yaml --mode classic --seed 7 --no-save`,
	Args: cobra.ExactArgs(1),
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagMode, "mode", "", "Override the script's mode")
	simulateCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the run")
	simulateCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "Omit the final board")
}

func runSimulate(cmd *cobra.Command, args []string) {
	path := args[0]

	script, err := replay.LoadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	mode := script.Mode
	if flagMode != "" {
		mode = flagMode
	}
	if mode == "" {
		mode = string(blockfall.ModeStandard)
	}
	if !registry.Exists(mode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
		fmt.Fprintln(os.Stderr, "Run 'blockfall list' to see available modes.")
		os.Exit(1)
	}
	if cmd.Flags().Changed("seed") {
		script.Seed = flagSeed
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	g := blockfall.New(blockfall.Mode(mode), blockfall.WithLogger(logger))
	if err := g.Configure(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring mode: %v\n", err)
		os.Exit(1)
	}

	logger.Info("simulating", "script", path, "mode", mode, "seed", script.Seed, "ticks", script.Ticks)
	sum := replay.Run(g, cfg.Runtime(script.Seed), script)
	logger.Info("simulation finished", "ticks", sum.Ticks, "pieces", sum.Pieces, "lines", sum.Lines, "game_over", sum.GameOver)

	fmt.Println(paint(titleStyle, fmt.Sprintf("Run - %s", g.Title())))
	fmt.Println()
	fmt.Printf("  %-9s %d\n", "Seed", sum.Seed)
	fmt.Printf("  %-9s %d / %d\n", "Ticks", sum.Ticks, script.Ticks)
	fmt.Printf("  %-9s %d\n", "Pieces", sum.Pieces)
	fmt.Printf("  %-9s %d\n", "Lines", sum.Lines)
	if sum.GameOver {
		fmt.Printf("  %-9s %s\n", "Result", paint(headerStyle, "game over"))
	}
	if !flagQuiet && sum.Board != "" {
		fmt.Println()
		fmt.Print(paintBoard(sum.Board))
	}

	if flagNoSave {
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		return
	}
	defer store.Close()

	id, err := store.SaveRun(storage.Run{
		Mode:     sum.Mode,
		Seed:     sum.Seed,
		Script:   path,
		Ticks:    sum.Ticks,
		Pieces:   sum.Pieces,
		Lines:    sum.Lines,
		GameOver: sum.GameOver,
	})
	if err != nil {
		logger.Warn("could not record run", "error", err)
		return
	}
	fmt.Println()
	fmt.Println(paint(dimStyle, "Recorded run "+id))
}
