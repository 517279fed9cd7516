// blockfall is a headless falling-block engine: it lists modes, prints shape
// rotation tables, runs scripted simulations and keeps a ledger of runs.
//
// Usage:
//
//	blockfall list                 - List available modes
//	blockfall shapes [mode]        - Show every rotation state of a mode's shapes
//	blockfall simulate <script>    - Run a YAML intent script
//	blockfall runs [mode]          - Show recorded runs
//	blockfall config               - Print the default configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: from config)
//	--seed <value>       - Override the script's RNG seed
//	--db <path>          - Set database path (default: ~/.blockfall/runs.db)
//	--config <path>      - Custom configuration YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level>  - debug, info, warn or error
//
// Settings can also come from the environment or a .env file:
// BLOCKFALL_CONFIG, BLOCKFALL_DB and BLOCKFALL_LOG_LEVEL.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vovakirdan/blockfall/internal/config"

	// Import modes to register them
	_ "github.com/vovakirdan/blockfall/internal/games/blockfall"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string

	logger *log.Logger
)

// Environment variables consulted when the matching flag is not set.
var envFlags = map[string]string{
	"config":    "BLOCKFALL_CONFIG",
	"db":        "BLOCKFALL_DB",
	"log-level": "BLOCKFALL_LOG_LEVEL",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - a headless falling-block engine",
	Long: `Blockfall runs the falling-block engine without a screen: pieces,
kicks, line clears and lock delay, driven tick by tick from scripts.

Available commands:
  list      - Show all available modes
  shapes    - Show the rotation states of a mode's shapes
  simulate  - Run a YAML intent script and record the result
  runs      - View recorded runs
  config    - Print the default configuration

Examples:
  blockfall list
  blockfall shapes classic
  blockfall simulate scripts/example.yaml --seed 7
  blockfall runs standard`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed, overrides the script's seed")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blockfall/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads .env, fills unset flags from the environment and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot load .env: %w", err)
	}

	var envErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		name, ok := envFlags[f.Name]
		if !ok || f.Changed {
			return
		}
		if v, ok := os.LookupEnv(name); ok && v != "" {
			if err := f.Value.Set(v); err != nil && envErr == nil {
				envErr = fmt.Errorf("invalid %s: %w", name, err)
			}
		}
	})
	if envErr != nil {
		return envErr
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockfall",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)
	return nil
}

// loadConfig loads the configuration and applies the difficulty preset.
func loadConfig() (config.BlockfallConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplyPreset(&cfg, preset)
	}
	if flagFPS > 0 {
		cfg.Timing.TickRate = flagFPS
	}
	logger.Debug("config loaded", "board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height),
		"gravity", cfg.Timing.Gravity, "lock_delay", cfg.Timing.LockDelay)
	return cfg, nil
}
