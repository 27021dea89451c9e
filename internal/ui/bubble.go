package ui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/floatchat/internal/chat"
	"github.com/zhubert/floatchat/internal/config"
	"github.com/zhubert/floatchat/internal/keys"
	"github.com/zhubert/floatchat/internal/panel"
	"github.com/zhubert/floatchat/internal/widget"
)

// Bubble is the single floating chat of a page. It keeps no panel stack:
// the float button and the panel swap visibility on every toggle, and
// Escape closes the panel when it is open.
type Bubble struct {
	w       *widget.Widget
	view    *panelView
	respond chat.ResponseFunc
	sheet   *StyleSheet

	collapsed bool
	content   string

	header *Header
	footer *Footer

	width, height int
}

// NewBubble builds the widget for cfg. It is always pinned to the
// viewport, whatever its anchor mode.
func NewBubble(cfg config.InstanceConfig, respond chat.ResponseFunc, sheet *StyleSheet) (*Bubble, error) {
	if respond == nil {
		respond = chat.SampleResponse
	}
	if sheet == nil {
		sheet = NewStyleSheet()
	}
	w := widget.New(cfg)
	anchor := func() *widget.Node { return widget.NewAnchor("anchor-"+cfg.InstanceName(), "") }
	if _, err := w.CreateLayout(anchor); err != nil {
		return nil, err
	}
	b := &Bubble{
		w:         w,
		view:      newPanelView(w),
		respond:   respond,
		sheet:     sheet,
		collapsed: true,
		content:   DefaultPageContent,
		header:    NewHeader(),
		footer:    NewFooter(),
	}
	b.apply(true, false)
	if !cfg.Collapsed() {
		b.Toggle()
	}
	return b, nil
}

// Widget returns the bubble's widget.
func (b *Bubble) Widget() *widget.Widget { return b.w }

// Collapsed reports whether the panel is hidden.
func (b *Bubble) Collapsed() bool { return b.collapsed }

// Toggle flips between the float button and the panel.
func (b *Bubble) Toggle() {
	iconVisible, panelVisible, collapsed := panel.ToggleVisibility(b.collapsed)
	b.collapsed = collapsed
	b.apply(iconVisible, panelVisible)
}

func (b *Bubble) apply(iconVisible, panelVisible bool) {
	c := b.w.Components()
	c.FloatButton.Hidden = !iconVisible
	c.Panel.Hidden = !panelVisible
	b.view.setFocused(panelVisible)
}

// Submit sends the input to the response function.
func (b *Bubble) Submit() {
	history, input := b.respond(b.w.History(), b.view.input.Value())
	b.w.SetHistory(history)
	b.w.SetInput(input)
	b.view.syncInput()
}

// Init implements tea.Model.
func (b *Bubble) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (b *Bubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width, b.height = msg.Width, msg.Height
		return b, nil

	case tea.KeyPressMsg:
		key := msg.String()
		if key == keys.CtrlC {
			return b, tea.Quit
		}
		if b.collapsed {
			if _, ok := keys.FloatButtonIndex(key); ok || key == keys.Enter {
				b.Toggle()
			}
			return b, nil
		}
		switch key {
		case keys.Escape:
			b.Toggle()
			return b, nil
		case keys.Enter:
			b.Submit()
			return b, nil
		case keys.PgUp, keys.PgDown:
			return b, b.view.scroll(msg)
		}
		return b, b.view.updateInput(msg)
	}
	return b, nil
}

// View implements tea.Model.
func (b *Bubble) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.SetContent(b.RenderToString())
	return v
}

// RenderToString renders the current frame as a string.
func (b *Bubble) RenderToString() string {
	if b.width == 0 || b.height == 0 {
		return "Loading..."
	}
	pageText := wrapText(b.content, max(b.width, MinTerminalWidth)-2)
	l := NewLayout(b.width, b.height, lipgloss.Height(pageText), 0)

	open := 0
	if !b.collapsed {
		open = 1
	}
	b.header.SetWidth(l.Width)
	b.header.SetStatus(open, "")
	b.footer.SetWidth(l.Width)
	b.footer.SetBindings(bubbleBindings(b.collapsed))

	layers := []layer{
		{content: b.header.View(), box: l.Header},
		{content: PageStyle.Render(pageText), box: l.Page},
		{content: b.footer.View(), box: l.Footer},
	}

	c := b.w.Components()
	if !c.FloatButton.Hidden {
		content := floatButtonView(b.sheet, c.FloatButton)
		layers = append(layers, layer{content: content, box: FloatButton(l.Body, lipgloss.Width(content), 0)})
	}
	if !c.Panel.Hidden {
		width := Panel(l.Body, l.Body.H).W
		height := PanelHeight(b.w.Config(), l.Body.H, b.view.contentLines(b.sheet, width, false))
		box := Panel(l.Body, height)
		layers = append(layers, layer{content: b.view.view(b.sheet, box, false), box: box})
	}
	return composite(l.Width, l.Height, layers)
}

func bubbleBindings(collapsed bool) []KeyBinding {
	if collapsed {
		return []KeyBinding{
			{Key: "1/enter", Desc: "open chat"},
			{Key: "ctrl+c", Desc: "quit"},
		}
	}
	return []KeyBinding{
		{Key: "enter", Desc: "send"},
		{Key: "pgup/dn", Desc: "scroll"},
		{Key: "esc", Desc: "close"},
		{Key: "ctrl+c", Desc: "quit"},
	}
}
