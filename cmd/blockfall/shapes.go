package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
	"github.com/vovakirdan/blockfall/internal/registry"
)

var flagKicks bool

var shapesCmd = &cobra.Command{
	Use:   "shapes [mode]",
	Short: "Show the rotation states of a mode's shapes",
	Long: `Draws every rotation state of every shape in a mode's catalog.
The anchor cell is marked "<>" when the shape does not cover it.

Examples:
  blockfall shapes
  blockfall shapes classic --kicks
  blockfall shapes custom --config my-shapes.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runShapes,
}

func init() {
	shapesCmd.Flags().BoolVar(&flagKicks, "kicks", false, "Also list kick offsets per rotation state")
}

func runShapes(cmd *cobra.Command, args []string) {
	mode := string(blockfall.ModeStandard)
	if len(args) == 1 {
		mode = args[0]
	}
	if !registry.Exists(mode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
		fmt.Fprintln(os.Stderr, "Run 'blockfall list' to see available modes.")
		os.Exit(1)
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

	cat := g.Catalog()
	fmt.Println(paint(titleStyle, fmt.Sprintf("Shapes - %s", g.Title())))
	fmt.Println()

	for _, name := range cat.Names() {
		shape, _ := cat.Get(name)
		fmt.Println(paint(headerStyle, fmt.Sprintf("%s  (%d states, %s pivot)", name, shape.RotationCount(), shape.Pivot())))

		blocks := make([]string, 0, shape.RotationCount())
		for i := range shape.RotationCount() {
			label := paint(dimStyle, fmt.Sprintf("r%d", i))
			blocks = append(blocks, stateStyle.Render(label+"\n"+drawCells(shape.State(i))))
		}
		fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, blocks...))

		if flagKicks {
			printKicks(shape)
		}
		fmt.Println()
	}
}

func printKicks(shape *engine.Shape) {
	for i := range shape.RotationCount() {
		fmt.Printf("  r%d cw:  %v\n", i, shape.Kicks().For(engine.Clockwise, i))
		fmt.Printf("  r%d ccw: %v\n", i, shape.Kicks().For(engine.Counterclockwise, i))
	}
}
