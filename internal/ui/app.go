package ui

import (
	"log/slog"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/floatchat/internal/chat"
	"github.com/zhubert/floatchat/internal/clipboard"
	"github.com/zhubert/floatchat/internal/config"
	"github.com/zhubert/floatchat/internal/keys"
	"github.com/zhubert/floatchat/internal/logger"
	"github.com/zhubert/floatchat/internal/notification"
	"github.com/zhubert/floatchat/internal/panel"
	"github.com/zhubert/floatchat/internal/style"
	"github.com/zhubert/floatchat/internal/widget"
)

// DefaultPageContent is the base page shown under the widgets.
const DefaultPageContent = "This page hosts floating chat widgets. " +
	"Press a digit to open a chat, Escape to close the most recently opened one."

// Options configure an App.
type Options struct {
	// Content is the base page text. Empty means DefaultPageContent.
	Content string

	// Respond answers submissions. Nil means chat.SampleResponse.
	Respond chat.ResponseFunc

	// Stream, when set, streams replies instead of answering in one step.
	Stream chat.StreamFunc

	// Notify sends a desktop notification when a reply finishes in a panel
	// without focus.
	Notify bool

	// StyleSheet resolves custom classes. Nil means built-in styles only.
	StyleSheet *StyleSheet
}

// App is the Bubble Tea model of one page: base content with floating chat
// widgets composited on top. It owns the page's panel stack, controller and
// key bus.
type App struct {
	opts Options

	stack *panel.Stack
	ctrl  *panel.Controller
	bus   *panel.Bus

	widgets []*widget.Widget
	views   map[string]*panelView
	streams map[string]*replyStream

	sheet  *StyleSheet
	header *Header
	footer *Footer

	width, height int
	focus         string // panel id holding input focus; "" is the page

	log *slog.Logger
}

// NewApp builds one widget per config and wires them to a fresh page.
func NewApp(opts Options, cfgs ...config.InstanceConfig) (*App, error) {
	if opts.Content == "" {
		opts.Content = DefaultPageContent
	}
	if opts.StyleSheet == nil {
		opts.StyleSheet = NewStyleSheet()
	}

	a := &App{
		opts:    opts,
		stack:   panel.NewStack(),
		bus:     panel.NewBus(),
		views:   make(map[string]*panelView),
		streams: make(map[string]*replyStream),
		sheet:   opts.StyleSheet,
		header:  NewHeader(),
		footer:  NewFooter(),
		log:     logger.WithComponent("ui"),
	}
	a.ctrl = panel.NewController(a.stack)

	for _, cfg := range cfgs {
		if err := a.add(cfg); err != nil {
			a.Close()
			return nil, err
		}
	}
	return a, nil
}

func (a *App) add(cfg config.InstanceConfig) error {
	w := widget.New(cfg)
	anchor := func() *widget.Node {
		return widget.NewAnchor("anchor-"+cfg.InstanceName(), cfg.InstanceName())
	}
	if _, err := w.CreateLayout(anchor); err != nil {
		return err
	}
	if err := w.DefineEvents(a.ctrl, a.bus, a.opts.Respond); err != nil {
		return err
	}
	if a.opts.Stream != nil {
		w.SetStream(a.opts.Stream)
	}
	a.widgets = append(a.widgets, w)
	a.views[w.PanelID()] = newPanelView(w)
	a.log.Debug("Widget added", "instance", cfg.InstanceName(), "panelID", w.PanelID())
	return nil
}

// Widgets returns the page's widgets in float-button order.
func (a *App) Widgets() []*widget.Widget { return a.widgets }

// Stack returns the page's panel stack.
func (a *App) Stack() *panel.Stack { return a.stack }

// Controller returns the page's panel controller.
func (a *App) Controller() *panel.Controller { return a.ctrl }

// Bus returns the page's key bus.
func (a *App) Bus() *panel.Bus { return a.bus }

// StyleSheet returns the sheet used to style classes.
func (a *App) StyleSheet() *StyleSheet { return a.sheet }

// Focus returns the id of the panel holding input focus, or "" for the page.
func (a *App) Focus() string { return a.focus }

// Streaming reports whether a reply is streaming into the panel.
func (a *App) Streaming(panelID string) bool {
	_, ok := a.streams[panelID]
	return ok
}

func (a *App) widgetFor(panelID string) *widget.Widget {
	if v, ok := a.views[panelID]; ok {
		return v.w
	}
	return nil
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.header.SetWidth(msg.Width)
		a.footer.SetWidth(msg.Width)
		return a, nil

	case tea.KeyPressMsg:
		return a, a.handleKey(msg)

	case streamStepMsg:
		return a, a.handleStreamStep(msg)
	}

	// Cursor blinks and the like go to the focused input.
	if v, ok := a.views[a.focus]; ok {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	switch key {
	case keys.CtrlC:
		a.Close()
		return tea.Quit
	case keys.Escape:
		if !a.bus.Dispatch(keys.Escape) {
			a.ctrl.HandleKey(key)
		}
		a.reconcile()
		return nil
	case keys.Tab:
		a.cycleFocus(1)
		return nil
	case keys.ShiftTab:
		a.cycleFocus(-1)
		return nil
	case keys.CtrlL:
		a.setFocus("")
		return nil
	}

	v, ok := a.views[a.focus]
	if !ok {
		if idx, ok := keys.FloatButtonIndex(key); ok {
			a.ClickFloatButton(idx)
		}
		return nil
	}

	switch key {
	case keys.Enter:
		return a.submit(v)
	case keys.CtrlY:
		return a.copyReply(v)
	case keys.PgUp, keys.PgDown:
		return v.scroll(msg)
	}
	return v.updateInput(msg)
}

// ClickFloatButton opens the idx-th widget's panel and focuses its input.
// Out-of-range indexes are ignored.
func (a *App) ClickFloatButton(idx int) {
	if idx < 0 || idx >= len(a.widgets) {
		return
	}
	w := a.widgets[idx]
	w.ClickFloatButton()
	a.setFocus(w.PanelID())
}

// ClickClose closes a panel through its close button.
func (a *App) ClickClose(panelID string) {
	if w := a.widgetFor(panelID); w != nil {
		w.ClickClose()
		a.reconcile()
	}
}

// reconcile brings focus and streams in line with panels that were closed
// behind the App's back, by Escape or a close button.
func (a *App) reconcile() {
	for id, s := range a.streams {
		if w := a.widgetFor(id); w == nil || w.Collapsed() {
			s.abort()
			delete(a.streams, id)
			a.log.Debug("Stream canceled by close", "panelID", id)
		}
	}
	if a.focus == "" {
		return
	}
	if w := a.widgetFor(a.focus); w == nil || w.Collapsed() {
		top, _ := a.stack.Top()
		a.setFocus(top)
	}
}

func (a *App) setFocus(panelID string) {
	if _, ok := a.views[panelID]; !ok {
		panelID = ""
	}
	a.focus = panelID
	for id, v := range a.views {
		v.setFocused(id == panelID)
	}
}

// cycleFocus moves focus through the page and the open panels in stack
// order.
func (a *App) cycleFocus(dir int) {
	order := append([]string{""}, a.stack.IDs()...)
	i := max(slices.Index(order, a.focus), 0)
	a.setFocus(order[(i+dir+len(order))%len(order)])
}

func (a *App) submit(v *panelView) tea.Cmd {
	message := v.input.Value()
	id := v.w.PanelID()
	if strings.TrimSpace(message) == "" {
		v.w.SetInput("")
		v.syncInput()
		return nil
	}
	fn := v.w.StreamFunc()
	if fn == nil {
		return nil
	}
	if old, ok := a.streams[id]; ok {
		old.abort()
	}
	s := startStream(id, fn, v.w.History(), message)
	a.streams[id] = s
	v.w.SetInput("")
	v.syncInput()
	a.log.Debug("Reply requested", "panelID", id)
	return s.pull()
}

func (a *App) handleStreamStep(msg streamStepMsg) tea.Cmd {
	s := msg.stream
	s.inFlight = false
	if s.canceled || a.streams[s.panelID] != s {
		s.finish()
		return nil
	}
	w := a.widgetFor(s.panelID)
	if !msg.ok || w == nil {
		s.finish()
		delete(a.streams, s.panelID)
		if a.opts.Notify && a.focus != s.panelID && w != nil {
			return notifyReply(w.Config().Title())
		}
		return nil
	}
	w.SetHistory(msg.history)
	return s.pull()
}

func notifyReply(title string) tea.Cmd {
	return func() tea.Msg {
		if err := notification.ReplyReady(title); err != nil {
			logger.WithComponent("ui").Warn("Notification failed", "error", err)
		}
		return nil
	}
}

func (a *App) copyReply(v *panelView) tea.Cmd {
	reply, ok := v.w.History().LastReply()
	if !ok {
		return nil
	}
	return tea.Batch(
		// OSC 52 for terminals that support it
		tea.SetClipboard(reply),
		func() tea.Msg {
			if err := clipboard.WriteText(reply); err != nil {
				logger.WithComponent("ui").Warn("Clipboard write failed", "error", err)
			}
			return nil
		},
	)
}

// Close cancels every stream and tears the widgets down.
func (a *App) Close() {
	for id, s := range a.streams {
		s.abort()
		delete(a.streams, id)
	}
	for _, w := range a.widgets {
		w.Teardown()
	}
	a.focus = ""
}

// View implements tea.Model.
func (a *App) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.SetContent(a.RenderToString())
	return v
}

// RenderToString renders the current frame as a string.
// This is useful for demos and testing.
func (a *App) RenderToString() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	pageText := wrapText(a.opts.Content, max(a.width, MinTerminalWidth)-2)
	var locals, globals []*widget.Widget
	for _, w := range a.widgets {
		if w.Config().IsGlobal() {
			globals = append(globals, w)
		} else {
			locals = append(locals, w)
		}
	}
	l := NewLayout(a.width, a.height, lipgloss.Height(pageText), len(locals))

	focusTitle := ""
	if w := a.widgetFor(a.focus); w != nil {
		focusTitle = w.Config().Title()
	}
	a.header.SetWidth(l.Width)
	a.header.SetStatus(a.stack.Len(), focusTitle)
	a.footer.SetWidth(l.Width)
	a.footer.SetContext(a.focus != "", a.Streaming(a.focus), a.stack.Len())

	layers := []layer{
		{content: a.header.View(), box: l.Header},
		{content: PageStyle.Render(pageText), box: l.Page},
		{content: a.footer.View(), box: l.Footer},
	}

	containers := make(map[string]Box, len(a.widgets))
	for i, w := range locals {
		box := l.Anchors[i]
		containers[w.PanelID()] = box
		layers = append(layers, layer{content: anchorView(w.Components().Anchor, box), box: box})
	}
	for _, w := range globals {
		containers[w.PanelID()] = l.Body
	}

	// Buttons sit under every panel.
	slot := 0
	for _, w := range a.widgets {
		btn := w.Components().FloatButton
		if btn.Hidden {
			continue
		}
		content := floatButtonView(a.sheet, btn)
		s := 0
		if w.Config().IsGlobal() {
			s = slot
			slot++
		}
		box := FloatButton(containers[w.PanelID()], lipgloss.Width(content), s)
		layers = append(layers, layer{content: content, box: box, z: style.FloatButtonZ})
	}

	// Panels in stack order, the most recently opened on top.
	for _, id := range a.stack.IDs() {
		v, ok := a.views[id]
		if !ok || v.w.Collapsed() {
			continue
		}
		container := containers[id]
		streaming := a.Streaming(id)
		width := Panel(container, container.H).W
		height := PanelHeight(v.w.Config(), l.Body.H, v.contentLines(a.sheet, width, streaming))
		box := Panel(container, height)
		z, _ := a.stack.ZIndex(id)
		layers = append(layers, layer{content: v.view(a.sheet, box, streaming), box: box, z: z})
	}

	return composite(l.Width, l.Height, layers)
}

// anchorView draws a local anchor as a bordered box labeled with its text.
func anchorView(anchor *widget.Node, box Box) string {
	if anchor == nil {
		return ""
	}
	inner := lipgloss.NewStyle().
		Width(max(box.W-BorderSize, 1)).
		Height(max(box.H-BorderSize, 1)).
		MaxHeight(max(box.H-BorderSize, 1)).
		Padding(0, 1).
		Render(truncate(anchor.Text, box.W-BorderSize-2))
	return AnchorStyle.Render(inner)
}
