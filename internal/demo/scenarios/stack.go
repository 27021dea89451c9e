package scenarios

import (
	"time"

	"github.com/zhubert/floatchat/internal/config"
	"github.com/zhubert/floatchat/internal/demo"
)

// Stack opens chats anchored to two page sections and one pinned to the
// viewport, then closes them most recent first with Escape.
var Stack = &demo.Scenario{
	Name:        "stack",
	Description: "Several chats on one page, closed in reverse order",
	Width:       110,
	Height:      32,
	Setup: &demo.ScenarioSetup{
		Content: "Pricing\n\nCompare plans below. Each plan has its own sales chat.",
		Widgets: []config.Fields{
			{InstanceName: "starter", AnchorMode: config.AnchorLocal, Title: "Starter plan"},
			{InstanceName: "team", AnchorMode: config.AnchorLocal, Title: "Team plan", Icon: "?"},
			{InstanceName: "sales", AnchorMode: config.AnchorGlobal, Title: "Talk to sales"},
		},
		Reply: "Happy to help with that.",
	},
	Steps: []demo.Step{
		demo.Wait(1 * time.Second),

		demo.Annotate("Open all three chats"),
		demo.Key("1"),
		demo.Key("ctrl+l"),
		demo.Key("2"),
		demo.Key("ctrl+l"),
		demo.Key("3"),
		demo.Type("hello"),
		demo.Key("enter"),
		demo.Wait(1 * time.Second),

		demo.Annotate("Escape closes the newest first"),
		demo.Key("esc"),
		demo.Wait(700 * time.Millisecond),
		demo.Key("esc"),
		demo.Wait(700 * time.Millisecond),

		demo.Annotate("The close button works too"),
		demo.Close(0),
		demo.Wait(1 * time.Second),
	},
}
