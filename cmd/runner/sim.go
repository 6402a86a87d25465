package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/games/runner"
	"github.com/vovakirdan/lane-runner/internal/trace"
)

var (
	flagTicks     int
	flagDT        float64
	flagTrace     string
	flagMoves     bool
	flagAutopilot bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the simulation without a terminal UI. The autopilot plays until
it crashes or the tick budget runs out, then a summary is printed.

With --trace every event is written to a msgpack file.

Examples:
  runner sim
  runner sim --seed 42 --ticks 6000
  runner sim --seed 42 --trace run.msgpack --moves
  runner sim --autopilot=false --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Maximum number of ticks to simulate")
	simCmd.Flags().Float64Var(&flagDT, "dt", 1.0/60, "Seconds per tick")
	simCmd.Flags().StringVar(&flagTrace, "trace", "", "Write a msgpack event trace to this file")
	simCmd.Flags().BoolVar(&flagMoves, "moves", false, "Include obstacle move events in the trace")
	simCmd.Flags().BoolVar(&flagAutopilot, "autopilot", true, "Let the autopilot dodge obstacles")
}

// simOptions controls one headless run.
type simOptions struct {
	Seed      int64
	Ticks     int
	DT        float64
	Autopilot bool
	Trace     io.Writer // Nil disables tracing
	Moves     bool
}

func runSim(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(flagLogLevel, flagLogFile, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}
	logger.Debug("config loaded", "source", source)

	if flagTicks <= 0 || flagDT <= 0 {
		return fmt.Errorf("--ticks and --dt must be positive")
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts := simOptions{
		Seed:      seed,
		Ticks:     flagTicks,
		DT:        flagDT,
		Autopilot: flagAutopilot,
		Moves:     flagMoves,
	}

	s, err := simulateTo(flagTrace, cfg, opts, logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "seed=%d ticks=%d time=%.2fs state=%s score=%d spawns=%d speed=%.2f fixed=%t\n",
		seed, s.Tick, s.Time, s.State, s.Score, s.Spawns, s.Speed, !s.Escalating)
	return nil
}

// simulateTo runs simulate, writing the trace to path when it is set.
// The trace file is closed before returning and a failed close is an error.
func simulateTo(path string, cfg config.RunnerConfig, opts simOptions, logger *log.Logger) (runner.Snapshot, error) {
	if path == "" {
		return simulate(cfg, opts, logger)
	}

	f, err := os.Create(path)
	if err != nil {
		return runner.Snapshot{}, fmt.Errorf("create trace: %w", err)
	}
	opts.Trace = f

	s, err := simulate(cfg, opts, logger)
	if closeErr := f.Close(); closeErr != nil && err == nil {
		err = fmt.Errorf("close trace %s: %w", path, closeErr)
	}
	return s, err
}

// simulate plays one run and returns its final snapshot.
func simulate(cfg config.RunnerConfig, opts simOptions, logger *log.Logger) (runner.Snapshot, error) {
	var tw *trace.Writer
	presenters := []runner.Presenter{&logPresenter{logger: logger}}
	if opts.Trace != nil {
		tw = trace.NewWriter(opts.Trace, opts.Moves)
		if err := tw.WriteHeader(opts.Seed); err != nil {
			return runner.Snapshot{}, err
		}
		presenters = append(presenters, tw)
	}

	m, err := runner.NewMachine(cfg, rand.New(rand.NewSource(opts.Seed)), runner.Presenters(presenters...))
	if err != nil {
		return runner.Snapshot{}, err
	}

	var pilot *runner.Autopilot
	if opts.Autopilot {
		pilot = runner.NewAutopilot(cfg)
	}

	logger.Info("simulation started", "seed", opts.Seed, "ticks", opts.Ticks, "dt", opts.DT, "autopilot", opts.Autopilot)
	m.Start()
	for i := 0; i < opts.Ticks && m.State() == runner.StateRunning; i++ {
		if tw != nil {
			tw.SetTick(uint64(i + 1))
		}
		if pilot != nil {
			pilot.Drive(m)
		}
		m.Tick(opts.DT)
	}

	s := m.Snapshot()
	if tw != nil {
		if err := tw.WriteSummary(s); err != nil {
			return s, err
		}
	}
	logger.Info("simulation finished", "state", s.State, "score", s.Score, "time", fmt.Sprintf("%.2fs", s.Time))
	return s, nil
}

// logPresenter reports run events through the logger.
type logPresenter struct {
	runner.NopPresenter
	logger *log.Logger
}

func (p *logPresenter) OnObstacleSpawned(id runner.ObstacleID, lane int, size, depth float64) {
	p.logger.Debug("obstacle spawned", "id", id, "lane", lane, "size", fmt.Sprintf("%.2f", size), "depth", fmt.Sprintf("%.1f", depth))
}

func (p *logPresenter) OnObstacleRemoved(id runner.ObstacleID) {
	p.logger.Debug("obstacle passed", "id", id)
}

func (p *logPresenter) OnScoreChanged(score int) {
	p.logger.Debug("score", "value", score)
}

func (p *logPresenter) OnStateChanged(state runner.RunState) {
	p.logger.Info("state changed", "state", state)
}
