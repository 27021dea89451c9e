// Package demo renders scripted walkthroughs of floating chat panels. A
// scenario drives the same ui.App the interactive program runs, with a
// deterministic sample stream in place of a chat backend, and records the
// frames it draws.
package demo

import (
	"time"

	"github.com/zhubert/floatchat/internal/config"
)

// StepType represents the type of action in a demo step.
type StepType int

const (
	// StepWait pauses for a duration (for timing/pacing).
	StepWait StepType = iota
	// StepKey sends a single key press.
	StepKey
	// StepTypeText types a string character by character.
	StepTypeText
	// StepClose clicks the close button of a widget's panel.
	StepClose
	// StepCapture captures the current frame (for selective capture).
	StepCapture
	// StepAnnotate adds an annotation/caption to the current frame.
	StepAnnotate
)

// Step represents a single action in a demo scenario.
type Step struct {
	Type        StepType
	Description string // Human-readable description of what this step does

	// For StepKey
	Key string

	// For StepTypeText
	Text string

	// For StepWait
	Duration time.Duration

	// For StepClose, the zero-based widget index
	Widget int

	// For StepAnnotate
	Annotation string
}

// Scenario defines a complete demo scenario.
type Scenario struct {
	Name        string
	Description string
	Width       int // Terminal width (default 100)
	Height      int // Terminal height (default 30)
	Setup       *ScenarioSetup
	Steps       []Step
}

// ScenarioSetup defines the page a demo starts from.
type ScenarioSetup struct {
	// Content is the base page text.
	Content string

	// Widgets are built in order; float button digits follow it.
	Widgets []config.Fields

	// Reply is what the sample stream types back to every message.
	Reply string
}

// DefaultReply is typed back when a setup names no reply.
const DefaultReply = "Thanks for your message! This is a sample reply."

// DefaultSetup returns a page with one local and one global widget.
func DefaultSetup() *ScenarioSetup {
	return &ScenarioSetup{
		Content: "Welcome to the demo page. Open a chat with its number key.",
		Widgets: []config.Fields{
			{InstanceName: "support", AnchorMode: config.AnchorLocal, Title: "Support"},
			{InstanceName: "assistant", AnchorMode: config.AnchorGlobal, Title: "Assistant"},
		},
		Reply: DefaultReply,
	}
}

// Validate checks that the scenario is valid.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "Name", Message: "scenario name is required"}
	}
	if s.Width <= 0 {
		s.Width = 100
	}
	if s.Height <= 0 {
		s.Height = 30
	}
	if s.Setup == nil {
		s.Setup = DefaultSetup()
	}
	if len(s.Setup.Widgets) == 0 {
		return &ValidationError{Field: "Setup.Widgets", Message: "at least one widget is required"}
	}
	if s.Setup.Reply == "" {
		s.Setup.Reply = DefaultReply
	}
	for _, step := range s.Steps {
		if step.Type == StepClose && (step.Widget < 0 || step.Widget >= len(s.Setup.Widgets)) {
			return &ValidationError{Field: "Steps", Message: "close step names an unknown widget"}
		}
	}
	return nil
}

// ValidationError represents a scenario validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Field + ": " + e.Message
}

// Step builder functions for fluent scenario construction

// Wait creates a wait step.
func Wait(d time.Duration) Step {
	return Step{
		Type:     StepWait,
		Duration: d,
	}
}

// Key creates a key press step.
func Key(key string) Step {
	return Step{
		Type: StepKey,
		Key:  key,
	}
}

// KeyWithDesc creates a key press step with a description.
func KeyWithDesc(key, description string) Step {
	return Step{
		Type:        StepKey,
		Key:         key,
		Description: description,
	}
}

// Type creates a text typing step.
func Type(text string) Step {
	return Step{
		Type: StepTypeText,
		Text: text,
	}
}

// Close clicks the close button of the idx-th widget.
func Close(idx int) Step {
	return Step{
		Type:   StepClose,
		Widget: idx,
	}
}

// Annotate creates an annotation step.
func Annotate(text string) Step {
	return Step{
		Type:       StepAnnotate,
		Annotation: text,
	}
}

// Capture creates a frame capture step.
func Capture() Step {
	return Step{
		Type: StepCapture,
	}
}
