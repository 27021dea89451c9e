// Package scenarios contains built-in demo scenarios for floatchat.
package scenarios

import (
	"time"

	"github.com/zhubert/floatchat/internal/config"
	"github.com/zhubert/floatchat/internal/demo"
)

// Basic opens a chat pinned to the viewport, asks a question, watches the
// reply stream in and closes the panel again.
var Basic = &demo.Scenario{
	Name:        "basic",
	Description: "Open a chat, send a message, close it with Escape",
	Width:       100,
	Height:      30,
	Setup: &demo.ScenarioSetup{
		Content: "Acme Docs\n\nEverything you need to get started with Acme. " +
			"Questions? Press 1 to chat with us.",
		Widgets: []config.Fields{
			{
				InstanceName: "help",
				AnchorMode:   config.AnchorGlobal,
				Title:        "Acme Help",
				MaxHeight:    "80vh",
			},
		},
		Reply: "Sure! Run `acme init` in your project directory, then:\n" +
			"- edit **acme.yaml**\n" +
			"- run `acme up`\n\n" +
			"See [the guide](https://example.com/guide) for more.",
	},
	Steps: []demo.Step{
		// The page with its float button
		demo.Wait(1 * time.Second),
		demo.Capture(),

		demo.Annotate("Press 1 to open the chat"),
		demo.KeyWithDesc("1", "open the help panel"),
		demo.Wait(500 * time.Millisecond),

		demo.Type("How do I set up a project?"),
		demo.Wait(300 * time.Millisecond),

		demo.Annotate("The reply streams in"),
		demo.KeyWithDesc("enter", "send the message"),
		demo.Wait(1500 * time.Millisecond),

		demo.Annotate("Escape closes the panel"),
		demo.Key("esc"),
		demo.Wait(1 * time.Second),
	},
}

// All returns all available scenarios.
func All() []*demo.Scenario {
	return []*demo.Scenario{
		Basic,
		Stack,
	}
}

// Get returns a scenario by name, or nil if not found.
func Get(name string) *demo.Scenario {
	for _, s := range All() {
		if s.Name == name {
			return s
		}
	}
	return nil
}
