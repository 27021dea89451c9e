package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width        int
	bindings     []KeyBinding // overrides the contextual bindings when set
	panelFocused bool
	streaming    bool
	openPanels   int
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(panelFocused, streaming bool, openPanels int) {
	f.panelFocused = panelFocused
	f.streaming = streaming
	f.openPanels = openPanels
}

// SetBindings allows custom keybindings
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// Bindings returns the bindings shown for the current context.
func (f *Footer) Bindings() []KeyBinding {
	if f.bindings != nil {
		return f.bindings
	}
	if f.panelFocused {
		send := KeyBinding{Key: "enter", Desc: "send"}
		if f.streaming {
			send = KeyBinding{Key: "enter", Desc: "restart reply"}
		}
		return []KeyBinding{
			send,
			{Key: "ctrl+y", Desc: "copy reply"},
			{Key: "pgup/dn", Desc: "scroll"},
			{Key: "tab", Desc: "next"},
			{Key: "ctrl+l", Desc: "page"},
			{Key: "esc", Desc: "close top"},
		}
	}

	bindings := []KeyBinding{{Key: "1-9", Desc: "open chat"}}
	if f.openPanels > 0 {
		bindings = append(bindings,
			KeyBinding{Key: "tab", Desc: "focus panel"},
			KeyBinding{Key: "esc", Desc: "close top"},
		)
	}
	return append(bindings, KeyBinding{Key: "ctrl+c", Desc: "quit"})
}

// View renders the footer
func (f *Footer) View() string {
	var parts []string
	for _, b := range f.Bindings() {
		parts = append(parts, FooterKeyStyle.Render(b.Key)+FooterDescStyle.Render(": "+b.Desc))
	}
	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")
	return FooterStyle.Width(f.width).MaxWidth(f.width).Render(content)
}
