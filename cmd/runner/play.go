package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/platform/tui"
)

var flagDemo bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal.

Controls:
  Left/A, Right/D   - Change lane
  Space/Up/W        - Jump
  Enter             - Start
  R                 - Restart (after game over)
  P/Esc             - Pause
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Slower start, longer gaps between obstacles
  normal - The default pace
  hard   - Fast start, short gaps
  fixed  - No progression, stays at the config's initial pace

Examples:
  runner play
  runner play --difficulty easy
  runner play --demo
  runner play --config ./my-runner.yaml --log-file runner.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagDemo, "demo", false, "Let the autopilot play")
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The alternate screen owns the terminal, so logs only go to a file
	logger, closeLog, err := newLogger(flagLogLevel, flagLogFile, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}
	logger.Debug("config loaded", "source", source, "difficulty", flagDifficulty)

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW, rt.ScreenH = w, h
	}
	rt.TickRate = flagFPS
	rt.Seed = flagSeed

	return tui.Run(tui.Options{
		Runtime: rt,
		Runner: cfg,
		Demo:   flagDemo,
		Logger: logger,
	})
}
