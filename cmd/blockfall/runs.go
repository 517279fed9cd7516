package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var (
	flagLimit int
	flagStats bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [mode]",
	Short: "Show recorded runs",
	Long: `Without a mode, lists the most recent runs across all modes.
With a mode, lists that mode's best runs by lines cleared.

Examples:
  blockfall runs
  blockfall runs standard --limit 5
  blockfall runs --stats`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagStats, "stats", false, "Show per-mode statistics instead")
}

func runRuns(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagStats {
		printStats(store)
		return
	}

	var (
		runs  []storage.Run
		title string
	)
	if len(args) == 1 {
		mode := args[0]
		if !registry.Exists(mode) {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
			fmt.Fprintln(os.Stderr, "Run 'blockfall list' to see available modes.")
			os.Exit(1)
		}
		runs, err = store.BestRuns(mode, flagLimit)
		title = "Best Runs - " + mode
	} else {
		runs, err = store.RecentRuns(flagLimit)
		title = "Recent Runs"
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(paint(titleStyle, title))
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'blockfall simulate <script>' to record one.")
		return
	}

	fmt.Println(paint(headerStyle, fmt.Sprintf("  %-4s  %-10s  %-6s  %-6s  %-8s  %-16s  %s", "#", "Mode", "Lines", "Pieces", "Seed", "Date", "ID")))
	for i, r := range runs {
		mark := ""
		if r.GameOver {
			mark = " (over)"
		}
		fmt.Printf("  %-4d  %-10s  %-6d  %-6d  %-8d  %-16s  %s%s\n",
			i+1, r.Mode, r.Lines, r.Pieces, r.Seed, r.CreatedAt.Format("2006-01-02 15:04"), paint(dimStyle, r.ID[:8]), mark)
	}
}

func printStats(store *storage.Store) {
	stats, err := store.AllModeStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(paint(titleStyle, "Mode Statistics"))
	fmt.Println()
	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	modes := make([]string, 0, len(stats))
	for m := range stats {
		modes = append(modes, m)
	}
	sort.Strings(modes)

	fmt.Println(paint(headerStyle, fmt.Sprintf("  %-10s  %-5s  %-5s  %-7s  %s", "Mode", "Runs", "Best", "Avg", "Last run")))
	for _, m := range modes {
		s := stats[m]
		fmt.Printf("  %-10s  %-5d  %-5d  %-7.1f  %s\n",
			s.Mode, s.RunsCount, s.BestLines, s.AvgLines, s.LastRun.Format("2006-01-02 15:04"))
	}
}
