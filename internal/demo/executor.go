package demo

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/floatchat/internal/chat"
	"github.com/zhubert/floatchat/internal/config"
	"github.com/zhubert/floatchat/internal/logger"
	"github.com/zhubert/floatchat/internal/ui"
)

// maxCommands bounds the commands one step may run, so a stream that never
// ends fails the step instead of hanging the demo.
const maxCommands = 10000

// Frame represents a captured frame from the demo.
type Frame struct {
	Content    string        // ANSI-encoded terminal content
	Delay      time.Duration // Delay before this frame
	Annotation string        // Optional annotation/caption
	StepIndex  int           // Index of the step that produced this frame
}

// ExecutorConfig configures the demo executor.
type ExecutorConfig struct {
	// CaptureEveryStep captures a frame after every key and every streamed
	// reply snapshot (default: false)
	CaptureEveryStep bool

	// TypeDelay is the delay between characters when typing (default: 50ms)
	TypeDelay time.Duration

	// KeyDelay is the delay after key presses (default: 100ms)
	KeyDelay time.Duration

	// ReplyStepDelay is the delay between streamed reply snapshots (default: 30ms)
	ReplyStepDelay time.Duration
}

// DefaultExecutorConfig returns the default executor configuration.
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		CaptureEveryStep: false, // Don't capture every step by default for cleaner demos
		TypeDelay:        50 * time.Millisecond,
		KeyDelay:         100 * time.Millisecond,
		ReplyStepDelay:   30 * time.Millisecond,
	}
}

// Executor runs demo scenarios and captures frames. Commands returned by the
// app run synchronously on the executor's goroutine, so a submitted reply
// streams to completion before the next step.
type Executor struct {
	config ExecutorConfig
	app    *ui.App
	frames []Frame

	currentAnnotation string
}

// NewExecutor creates a new demo executor.
func NewExecutor(cfg ExecutorConfig) *Executor {
	return &Executor{
		config: cfg,
		frames: []Frame{},
	}
}

// App returns the app of the running or last run scenario.
func (e *Executor) App() *ui.App {
	return e.app
}

// Cleanup closes every panel and cancels any unfinished reply.
func (e *Executor) Cleanup() {
	if e.app != nil {
		e.app.Close()
	}
}

// Run executes a scenario and returns the captured frames.
func (e *Executor) Run(scenario *Scenario) ([]Frame, error) {
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	if err := e.setup(scenario); err != nil {
		return nil, fmt.Errorf("setup failed: %w", err)
	}
	defer e.Cleanup()

	log := logger.WithComponent("demo")
	log.Info("Running scenario", "name", scenario.Name, "steps", len(scenario.Steps))

	// Capture initial frame
	e.captureFrame(0, 500*time.Millisecond)

	for i, step := range scenario.Steps {
		if err := e.executeStep(i, step); err != nil {
			return nil, fmt.Errorf("step %d failed: %w", i, err)
		}
	}

	log.Info("Scenario finished", "name", scenario.Name, "frames", len(e.frames))
	return e.frames, nil
}

// setup builds the page for the scenario.
func (e *Executor) setup(scenario *Scenario) error {
	cfgs := make([]config.InstanceConfig, 0, len(scenario.Setup.Widgets))
	for _, f := range scenario.Setup.Widgets {
		cfg, err := config.Build(f)
		if err != nil {
			return err
		}
		cfgs = append(cfgs, cfg)
	}

	app, err := ui.NewApp(ui.Options{
		Content: scenario.Setup.Content,
		Stream:  chat.NewSampleStream(scenario.Setup.Reply, 0),
	}, cfgs...)
	if err != nil {
		return err
	}
	e.app = app
	e.frames = []Frame{}
	e.app.Update(tea.WindowSizeMsg{
		Width:  scenario.Width,
		Height: scenario.Height,
	})
	return nil
}

func (e *Executor) executeStep(index int, step Step) error {
	switch step.Type {
	case StepWait:
		e.captureFrame(index, step.Duration)

	case StepKey:
		if err := e.sendKey(index, step.Key); err != nil {
			return err
		}
		if e.config.CaptureEveryStep {
			e.captureFrame(index, e.config.KeyDelay)
		}

	case StepTypeText:
		for _, ch := range step.Text {
			if err := e.sendKey(index, string(ch)); err != nil {
				return err
			}
			if e.config.CaptureEveryStep {
				e.captureFrame(index, e.config.TypeDelay)
			}
		}

	case StepClose:
		widgets := e.app.Widgets()
		if step.Widget < 0 || step.Widget >= len(widgets) {
			return fmt.Errorf("no widget %d", step.Widget)
		}
		e.app.ClickClose(widgets[step.Widget].PanelID())
		e.captureFrame(index, e.config.KeyDelay)

	case StepAnnotate:
		e.currentAnnotation = step.Annotation
		// Don't capture, annotation applies to next frame

	case StepCapture:
		e.captureFrame(index, 0)

	default:
		return fmt.Errorf("unknown step type %d", step.Type)
	}

	return nil
}

// captureFrame captures the current view as a frame.
func (e *Executor) captureFrame(stepIndex int, delay time.Duration) {
	frame := Frame{
		Content:    e.app.RenderToString(),
		Delay:      delay,
		Annotation: e.currentAnnotation,
		StepIndex:  stepIndex,
	}
	e.frames = append(e.frames, frame)

	// Clear annotation after use
	e.currentAnnotation = ""
}

// sendKey sends a key press and runs whatever it starts.
func (e *Executor) sendKey(stepIndex int, key string) error {
	_, cmd := e.app.Update(keyPress(key))
	return e.run(stepIndex, cmd)
}

// run executes cmd and every command its messages lead to. Batches are
// flattened; a quit ends the run.
func (e *Executor) run(stepIndex int, cmd tea.Cmd) error {
	queue := []tea.Cmd{cmd}
	for n := 0; len(queue) > 0; n++ {
		if n > maxCommands {
			return fmt.Errorf("commands did not settle after %d runs", maxCommands)
		}
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}

		switch msg := next().(type) {
		case nil:
		case tea.QuitMsg:
			return nil
		case tea.BatchMsg:
			queue = append(queue, msg...)
		default:
			_, follow := e.app.Update(msg)
			queue = append(queue, follow)
			if e.config.CaptureEveryStep {
				e.captureFrame(stepIndex, e.config.ReplyStepDelay)
			}
		}
	}
	return nil
}

// keyPress converts a key string to a tea.KeyPressMsg.
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "shift+tab":
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case "escape", "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case "pgup":
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case "pgdown":
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case "ctrl+l":
		return tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl}
	case "ctrl+y":
		return tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}
	default:
		if r := []rune(key); len(r) == 1 {
			return tea.KeyPressMsg{Code: r[0], Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}
