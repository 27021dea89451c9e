package demo

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/floatchat/internal/config"
)

func testScenario(steps ...Step) *Scenario {
	return &Scenario{
		Name:   "test",
		Width:  80,
		Height: 24,
		Setup: &ScenarioSetup{
			Content: "Test page",
			Widgets: []config.Fields{
				{InstanceName: "one", AnchorMode: config.AnchorGlobal, Title: "First"},
				{InstanceName: "two", AnchorMode: config.AnchorGlobal, Title: "Second"},
			},
			Reply: "pong",
		},
		Steps: steps,
	}
}

func TestExecutorDefaultConfig(t *testing.T) {
	cfg := DefaultExecutorConfig()

	if cfg.CaptureEveryStep {
		t.Error("CaptureEveryStep should be false by default")
	}

	if cfg.TypeDelay != 50*time.Millisecond {
		t.Errorf("TypeDelay = %v, want 50ms", cfg.TypeDelay)
	}

	if cfg.KeyDelay != 100*time.Millisecond {
		t.Errorf("KeyDelay = %v, want 100ms", cfg.KeyDelay)
	}

	if cfg.ReplyStepDelay != 30*time.Millisecond {
		t.Errorf("ReplyStepDelay = %v, want 30ms", cfg.ReplyStepDelay)
	}
}

func TestExecutorRun(t *testing.T) {
	scenario := testScenario(
		Wait(100*time.Millisecond),
		Key("1"),
		Wait(100*time.Millisecond),
	)

	cfg := DefaultExecutorConfig()
	cfg.CaptureEveryStep = true

	frames, err := NewExecutor(cfg).Run(scenario)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// Initial frame + wait + key + wait
	if len(frames) != 4 {
		t.Errorf("Expected 4 frames, got %d", len(frames))
	}

	// First frame should have initial delay
	if frames[0].Delay != 500*time.Millisecond {
		t.Errorf("First frame delay = %v, want 500ms", frames[0].Delay)
	}

	if !strings.Contains(ansi.Strip(frames[len(frames)-1].Content), "First") {
		t.Error("last frame should show the opened panel")
	}
}

func TestExecutorRunInvalidScenario(t *testing.T) {
	_, err := NewExecutor(DefaultExecutorConfig()).Run(&Scenario{})
	if err == nil {
		t.Error("Run() should fail for a scenario without a name")
	}
}

func TestExecutorRunInvalidWidget(t *testing.T) {
	scenario := testScenario()
	scenario.Setup.Widgets = []config.Fields{{InstanceName: "has space"}}

	if _, err := NewExecutor(DefaultExecutorConfig()).Run(scenario); err == nil {
		t.Error("Run() should fail for an invalid widget configuration")
	}
}

func TestExecutorStreamsReply(t *testing.T) {
	scenario := testScenario(
		Key("2"),
		Type("ping"),
		Key("enter"),
		Capture(),
	)

	cfg := DefaultExecutorConfig()
	e := NewExecutor(cfg)
	frames, err := e.Run(scenario)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// Initial frame + capture
	if len(frames) != 2 {
		t.Fatalf("Expected 2 frames, got %d", len(frames))
	}
	last := ansi.Strip(frames[1].Content)
	for _, want := range []string{"ping", "pong"} {
		if !strings.Contains(last, want) {
			t.Errorf("last frame missing %q:\n%s", want, last)
		}
	}
}

func TestExecutorCapturesReplySteps(t *testing.T) {
	scenario := testScenario(
		Key("1"),
		Type("hi"),
		Key("enter"),
	)

	cfg := DefaultExecutorConfig()
	cfg.CaptureEveryStep = true
	frames, err := NewExecutor(cfg).Run(scenario)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var replySteps int
	for _, f := range frames {
		if f.StepIndex == 2 && f.Delay == cfg.ReplyStepDelay {
			replySteps++
		}
	}
	// One snapshot with an empty reply, one per character of "pong" and the
	// end of the stream.
	if replySteps != 6 {
		t.Errorf("reply frames = %d, want 6", replySteps)
	}
}

func TestExecutorAnnotation(t *testing.T) {
	scenario := testScenario(
		Annotate("hello"),
		Capture(),
		Capture(),
	)

	frames, err := NewExecutor(DefaultExecutorConfig()).Run(scenario)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if frames[1].Annotation != "hello" {
		t.Errorf("annotated frame = %q, want hello", frames[1].Annotation)
	}
	if frames[2].Annotation != "" {
		t.Error("annotation should apply to one frame only")
	}
}

func TestExecutorClose(t *testing.T) {
	scenario := testScenario(
		Key("1"),
		Close(0),
	)

	e := NewExecutor(DefaultExecutorConfig())
	frames, err := e.Run(scenario)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := ansi.Strip(frames[len(frames)-1].Content); strings.Contains(got, "First") {
		t.Errorf("closed panel still drawn:\n%s", got)
	}
}

func TestKeyPress(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"enter", "enter"},
		{"esc", "esc"},
		{"escape", "esc"},
		{"tab", "tab"},
		{"shift+tab", "shift+tab"},
		{"ctrl+l", "ctrl+l"},
		{"ctrl+y", "ctrl+y"},
		{"pgup", "pgup"},
		{"a", "a"},
		{"1", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := keyPress(tt.key).String(); got != tt.want {
				t.Errorf("keyPress(%q).String() = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestExecutorRunFlattensBatches(t *testing.T) {
	e := NewExecutor(DefaultExecutorConfig())
	if err := e.setup(testScenario()); err != nil {
		t.Fatalf("setup() error = %v", err)
	}
	defer e.Cleanup()

	var ran []string
	step := func(name string) tea.Cmd {
		return func() tea.Msg {
			ran = append(ran, name)
			return nil
		}
	}
	batch := func() tea.Msg { return tea.BatchMsg{step("a"), step("b")} }

	if err := e.run(0, batch); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if strings.Join(ran, ",") != "a,b" {
		t.Errorf("ran = %v, want [a b]", ran)
	}
}

func TestGenerateASCIICast(t *testing.T) {
	frames := []Frame{
		{Content: "one\ntwo", Delay: 500 * time.Millisecond},
		{Content: "three", Delay: time.Second, Annotation: "note"},
	}

	var buf bytes.Buffer
	if err := GenerateASCIICast(&buf, frames, 80, 24); err != nil {
		t.Fatalf("GenerateASCIICast() error = %v", err)
	}

	sc := bufio.NewScanner(&buf)
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want header, two frames and a marker", len(lines))
	}

	var header castHeader
	if err := json.Unmarshal([]byte(lines[0]), &header); err != nil {
		t.Fatalf("header: %v", err)
	}
	if header.Version != 2 || header.Width != 80 || header.Height != 24 {
		t.Errorf("header = %+v", header)
	}

	var first []any
	if err := json.Unmarshal([]byte(lines[1]), &first); err != nil {
		t.Fatalf("first event: %v", err)
	}
	if first[0].(float64) != 0.5 || first[1] != "o" || !strings.HasSuffix(first[2].(string), "one\r\ntwo") {
		t.Errorf("first event = %v", first)
	}

	var marker []any
	if err := json.Unmarshal([]byte(lines[2]), &marker); err != nil {
		t.Fatalf("marker: %v", err)
	}
	if marker[0].(float64) != 1.5 || marker[1] != "m" || marker[2] != "note" {
		t.Errorf("marker = %v", marker)
	}
}
