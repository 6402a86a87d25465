// runner is a three-lane endless runner for the terminal.
//
// Usage:
//
//	runner [play]            - Play in the terminal (default)
//	runner play --demo       - Watch the autopilot play
//	runner sim               - Run a headless simulation
//	runner config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--config <path>       - Load a custom runner.yaml
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Lane Runner - dodge obstacles across three lanes",
	Long: `Lane Runner is an endless runner for the terminal. Switch between
three lanes and jump to avoid the obstacles rushing toward you. The run
gets faster with every obstacle that spawns.

Available commands:
  play     - Play in the terminal (default)
  sim      - Run a headless simulation driven by the autopilot
  config   - Print the effective configuration

Examples:
  runner
  runner play --difficulty hard
  runner play --demo
  runner sim --seed 42 --ticks 6000 --trace run.msgpack
  runner config --config ./runner.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.Flags().BoolVar(&flagDemo, "demo", false, "Let the autopilot play")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the runner config from the global flags.
// It returns the config and where it was loaded from.
func loadConfig() (config.RunnerConfig, string, error) {
	cfg, source, err := config.LoadRunnerWithSource(flagConfig)
	if err != nil {
		return cfg, source, err
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return cfg, source, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyRunnerPreset(&cfg, preset)
	}

	if err := config.Validate(cfg); err != nil {
		return cfg, source, fmt.Errorf("config from %s: %w", source, err)
	}
	return cfg, source, nil
}
