package demo

import (
	"testing"
	"time"

	"github.com/zhubert/floatchat/internal/config"
)

func TestScenarioValidate(t *testing.T) {
	tests := []struct {
		name      string
		scenario  *Scenario
		wantErr   bool
		errField  string
		wantWidth int
	}{
		{
			name: "valid scenario",
			scenario: &Scenario{
				Name:        "test",
				Description: "Test scenario",
				Width:       80,
				Height:      24,
				Setup:       DefaultSetup(),
			},
			wantErr:   false,
			wantWidth: 80,
		},
		{
			name: "missing name",
			scenario: &Scenario{
				Description: "Test scenario",
			},
			wantErr:  true,
			errField: "Name",
		},
		{
			name: "default width and height",
			scenario: &Scenario{
				Name: "test",
			},
			wantErr:   false,
			wantWidth: 100, // Default
		},
		{
			name: "no widgets",
			scenario: &Scenario{
				Name:  "test",
				Setup: &ScenarioSetup{Content: "page"},
			},
			wantErr:  true,
			errField: "Setup.Widgets",
		},
		{
			name: "close of unknown widget",
			scenario: &Scenario{
				Name:  "test",
				Steps: []Step{Close(5)},
			},
			wantErr:  true,
			errField: "Steps",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.scenario.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && err != nil {
				if ve, ok := err.(*ValidationError); ok {
					if ve.Field != tt.errField {
						t.Errorf("Validate() error field = %v, want %v", ve.Field, tt.errField)
					}
				}
			}
			if !tt.wantErr && tt.wantWidth > 0 {
				if tt.scenario.Width != tt.wantWidth {
					t.Errorf("Width = %v, want %v", tt.scenario.Width, tt.wantWidth)
				}
			}
		})
	}
}

func TestScenarioValidateDefaultsReply(t *testing.T) {
	s := &Scenario{
		Name:  "test",
		Setup: &ScenarioSetup{Widgets: []config.Fields{{}}},
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if s.Setup.Reply != DefaultReply {
		t.Errorf("Reply = %q, want default", s.Setup.Reply)
	}
}

func TestStepBuilders(t *testing.T) {
	t.Run("Wait", func(t *testing.T) {
		step := Wait(500 * time.Millisecond)
		if step.Type != StepWait {
			t.Errorf("Type = %v, want StepWait", step.Type)
		}
		if step.Duration != 500*time.Millisecond {
			t.Errorf("Duration = %v, want 500ms", step.Duration)
		}
	})

	t.Run("Key", func(t *testing.T) {
		step := Key("enter")
		if step.Type != StepKey {
			t.Errorf("Type = %v, want StepKey", step.Type)
		}
		if step.Key != "enter" {
			t.Errorf("Key = %v, want enter", step.Key)
		}
	})

	t.Run("KeyWithDesc", func(t *testing.T) {
		step := KeyWithDesc("enter", "Send the message")
		if step.Type != StepKey {
			t.Errorf("Type = %v, want StepKey", step.Type)
		}
		if step.Description != "Send the message" {
			t.Errorf("Description = %v, want 'Send the message'", step.Description)
		}
	})

	t.Run("Type", func(t *testing.T) {
		step := Type("hello world")
		if step.Type != StepTypeText {
			t.Errorf("Type = %v, want StepTypeText", step.Type)
		}
		if step.Text != "hello world" {
			t.Errorf("Text = %v, want 'hello world'", step.Text)
		}
	})

	t.Run("Close", func(t *testing.T) {
		step := Close(2)
		if step.Type != StepClose || step.Widget != 2 {
			t.Errorf("Close(2) = %+v", step)
		}
	})
}

func TestDefaultSetup(t *testing.T) {
	setup := DefaultSetup()

	if len(setup.Widgets) != 2 {
		t.Fatalf("Widgets length = %v, want 2", len(setup.Widgets))
	}
	if setup.Widgets[0].AnchorMode != config.AnchorLocal || setup.Widgets[1].AnchorMode != config.AnchorGlobal {
		t.Errorf("want one local and one global widget, got %+v", setup.Widgets)
	}
	for _, f := range setup.Widgets {
		if _, err := config.Build(f); err != nil {
			t.Errorf("Build(%+v) error = %v", f, err)
		}
	}
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{
		Field:   "Name",
		Message: "is required",
	}

	expected := "validation error: Name: is required"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}
