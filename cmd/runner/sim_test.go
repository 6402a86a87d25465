package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/games/runner"
	"github.com/vovakirdan/lane-runner/internal/trace"
)

func TestSimulateWritesTrace(t *testing.T) {
	var buf bytes.Buffer
	opts := simOptions{Seed: 9, Ticks: 240, DT: 1.0 / 60, Autopilot: true, Trace: &buf}

	s, err := simulate(config.DefaultRunnerConfig(), opts, log.New(io.Discard))
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}

	records, err := trace.Read(&buf)
	if err != nil {
		t.Fatalf("trace.Read() failed: %v", err)
	}
	if len(records) < 2 {
		t.Fatalf("got %d records", len(records))
	}
	if records[0].Kind != trace.KindHeader || records[0].Seed != 9 {
		t.Errorf("header = %+v", records[0])
	}
	last := records[len(records)-1]
	if last.Kind != trace.KindSummary || last.Score != s.Score || last.Tick != s.Tick {
		t.Errorf("summary = %+v, snapshot = %+v", last, s)
	}
}

func TestSimulateIsReproducible(t *testing.T) {
	opts := simOptions{Seed: 5, Ticks: 1200, DT: 1.0 / 60, Autopilot: true}
	logger := log.New(io.Discard)

	a, err := simulate(config.DefaultRunnerConfig(), opts, logger)
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}
	b, _ := simulate(config.DefaultRunnerConfig(), opts, logger)

	if a.Tick != b.Tick || a.Score != b.Score || a.Time != b.Time || a.State != b.State {
		t.Errorf("same seed gave different runs: %+v vs %+v", a, b)
	}
}

func TestSimulateStopsAtTickBudget(t *testing.T) {
	opts := simOptions{Seed: 1, Ticks: 30, DT: 1.0 / 60}

	s, err := simulate(config.DefaultRunnerConfig(), opts, log.New(io.Discard))
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}
	if s.Tick != 30 || s.State != runner.StateRunning {
		t.Errorf("Tick = %d, State = %v; expected 30 ticks still running", s.Tick, s.State)
	}
}

func TestLoggerRejectsBadLevel(t *testing.T) {
	if _, _, err := newLogger("loud", "", io.Discard); err == nil {
		t.Error("expected an error for an unknown level")
	}
}

func TestSimulateToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.msgpack")
	opts := simOptions{Seed: 3, Ticks: 90, DT: 1.0 / 60, Autopilot: true}

	s, err := simulateTo(path, config.DefaultRunnerConfig(), opts, log.New(io.Discard))
	if err != nil {
		t.Fatalf("simulateTo() failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer f.Close()
	records, err := trace.Read(f)
	if err != nil {
		t.Fatalf("trace.Read() failed: %v", err)
	}
	if last := records[len(records)-1]; last.Kind != trace.KindSummary || last.Tick != s.Tick {
		t.Errorf("trace not complete, last record %+v", last)
	}
}

func TestSimulateToBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "run.msgpack")
	opts := simOptions{Seed: 3, Ticks: 10, DT: 1.0 / 60}

	if _, err := simulateTo(path, config.DefaultRunnerConfig(), opts, log.New(io.Discard)); err == nil {
		t.Error("expected an error for an unwritable trace path")
	}
}
