package scenarios

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/floatchat/internal/demo"
)

func TestAll(t *testing.T) {
	scenarios := All()

	if len(scenarios) != 2 {
		t.Errorf("All() should return 2 scenarios, got %d", len(scenarios))
	}

	for _, s := range scenarios {
		if err := s.Validate(); err != nil {
			t.Errorf("Scenario %q validation failed: %v", s.Name, err)
		}
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		name      string
		wantFound bool
	}{
		{"basic", true},
		{"stack", true},
		{"nonexistent", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scenario := Get(tt.name)
			found := scenario != nil

			if found != tt.wantFound {
				t.Errorf("Get(%q) found = %v, want %v", tt.name, found, tt.wantFound)
			}
		})
	}
}

func TestBasicScenarioRuns(t *testing.T) {
	frames, err := demo.NewExecutor(demo.DefaultExecutorConfig()).Run(Basic)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var replied bool
	for _, f := range frames {
		if strings.Contains(ansi.Strip(f.Content), "acme init") {
			replied = true
		}
	}
	if !replied {
		t.Error("no frame shows the streamed reply")
	}
}

func TestStackScenarioRuns(t *testing.T) {
	frames, err := demo.NewExecutor(demo.DefaultExecutorConfig()).Run(Stack)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var sawAll bool
	for _, f := range frames {
		if strings.Contains(ansi.Strip(f.Content), "3 open") {
			sawAll = true
		}
	}
	if !sawAll {
		t.Error("no frame shows all three panels open")
	}

	// Two Escapes closed sales then team; the close button closed starter.
	last := ansi.Strip(frames[len(frames)-1].Content)
	if !strings.Contains(last, "0 open") {
		t.Errorf("last frame should have no open panels:\n%s", last)
	}
	for _, title := range []string{"Starter plan", "Team plan", "Talk to sales"} {
		if strings.Contains(last, title) {
			t.Errorf("last frame still shows %q", title)
		}
	}
}
