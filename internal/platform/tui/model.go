package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/games/runner"
)

// maxFrameDelta caps the simulated time of one frame, so a stalled
// terminal does not teleport obstacles through the player.
// The jump arc is sampled from the same clock, so it is capped too.
const maxFrameDelta = 0.1

// Options configures a terminal run.
type Options struct {
	Runtime core.RuntimeConfig
	Runner  config.RunnerConfig
	Demo    bool        // Let the autopilot play
	Logger  *log.Logger // Nil discards logs
}

// Model is the Bubble Tea model for the runner.
type Model struct {
	machine  *runner.Machine
	scene    *Scene
	camera   *Camera
	screen   *core.Screen
	pilot    *runner.Autopilot
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	config   core.RuntimeConfig
	input    core.InputFrame
	last     time.Time
	paused   bool
	quitting bool
}

// NewModel creates a model with an idle machine.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Runtime
	if err := cfg.Validate(); err != nil {
		return Model{}, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	scene := NewScene(opts.Runner.Lanes)
	m, err := runner.NewMachine(opts.Runner, rand.New(rand.NewSource(cfg.Seed)), scene)
	if err != nil {
		return Model{}, err
	}

	model := Model{
		machine: m,
		scene:   scene,
		camera:  NewCamera(cfg.ScreenW, cfg.ScreenH-1),
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH-1),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		logger:  logger,
		config:  cfg,
		input:   core.NewInputFrame(),
	}
	scene.SetFixed(!m.Escalating())
	if opts.Demo {
		model.pilot = runner.NewAutopilot(opts.Runner)
		scene.SetDemo(true)
	}
	logger.Info("runner ready", "seed", cfg.Seed, "fps", cfg.TickRate, "demo", opts.Demo)
	return model, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues the action for the next tick. Quit is immediate.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "score", m.machine.Score(), "state", m.machine.State())
		return m, tea.Quit
	case core.ActionScreenshot:
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}
	m.input.Set(action)
	return m, nil
}

// handleResize keeps the run going and only rescales the view.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	h := max(msg.Height-1, 1)
	m.screen.Resize(msg.Width, h)
	m.camera.Resize(msg.Width, h)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick applies the queued input in arrival order and advances the
// machine by the wall time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1 / float64(m.config.TickRate)
	if !m.last.IsZero() {
		dt = max(0, min(now.Sub(m.last).Seconds(), maxFrameDelta))
	}
	m.last = now

	before := m.machine.State()
	for _, a := range m.input.Actions() {
		m.apply(a)
	}
	m.input.Clear()

	if m.pilot != nil && !m.paused {
		switch m.machine.State() {
		case runner.StateIdle:
			m.machine.Start()
		case runner.StateGameOver:
			m.machine.Restart()
		}
		m.pilot.Drive(m.machine)
	}

	if !m.paused {
		m.machine.Tick(dt)
	}

	if after := m.machine.State(); after != before {
		m.logger.Debug("state changed", "from", before, "to", after, "score", m.machine.Score())
		if after == runner.StateGameOver {
			id, _ := m.machine.LastHit()
			m.logger.Info("run over", "score", m.machine.Score(), "time", fmt.Sprintf("%.2fs", m.machine.Time()), "obstacle", id)
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// apply turns one action into a machine command.
// While paused only pause and restart get through.
func (m *Model) apply(a core.Action) {
	if m.paused && a != core.ActionPause && a != core.ActionRestart {
		return
	}
	switch a {
	case core.ActionLeft:
		m.machine.ShiftLane(-1)
	case core.ActionRight:
		m.machine.ShiftLane(1)
	case core.ActionJump:
		m.machine.Jump()
	case core.ActionStart:
		m.machine.Start()
	case core.ActionRestart:
		m.machine.Restart()
	case core.ActionPause:
		if m.machine.State() == runner.StateRunning {
			m.paused = !m.paused
			m.scene.SetPaused(m.paused)
		}
	}
	if m.machine.State() != runner.StateRunning {
		m.paused = false
		m.scene.SetPaused(false)
	}
}

// saveScreenshot writes the current frame as plain text under
// ~/.lanerunner/screenshots and returns the file path.
func (m *Model) saveScreenshot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("find home directory: %w", err)
	}
	dir := filepath.Join(home, ".lanerunner", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot directory: %w", err)
	}

	m.scene.Draw(m.screen, m.camera)
	path := filepath.Join(dir, fmt.Sprintf("runner_%s.txt", time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.scene.Draw(m.screen, m.camera)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Machine returns the machine the model drives.
func (m Model) Machine() *runner.Machine {
	return m.machine
}

// Paused reports whether ticks are currently withheld from the machine.
func (m Model) Paused() bool {
	return m.paused
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
