// Package widget builds one floating chat instance: its layout tree, its
// wiring to the page's panel controller, and its conversation.
package widget

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/zhubert/floatchat/internal/chat"
	"github.com/zhubert/floatchat/internal/config"
	ferrors "github.com/zhubert/floatchat/internal/errors"
	"github.com/zhubert/floatchat/internal/logger"
	"github.com/zhubert/floatchat/internal/panel"
	"github.com/zhubert/floatchat/internal/style"
)

// CloseIcon is the label of the panel close button.
const CloseIcon = "❌"

// InputPlaceholder is shown in an empty message input.
const InputPlaceholder = "Type a message..."

// AnchorFactory creates the element a locally anchored widget is positioned
// against. It is only called in local anchor mode.
type AnchorFactory func() *Node

// Components are the nodes of a built layout.
type Components struct {
	Container    *Node
	Anchor       *Node // nil in global mode
	FloatButton  *Node
	Panel        *Node
	Header       *Node
	Title        *Node
	CloseButton  *Node
	Chat         *Node
	MessageInput *Node
}

// Widget is one floating chat instance.
type Widget struct {
	cfg        config.InstanceConfig
	panelID    string
	components *Components

	ctrl    *panel.Controller
	respond chat.ResponseFunc
	stream  chat.StreamFunc

	history      chat.History
	input        string
	cancelStream context.CancelFunc
	streamGen    int

	log *slog.Logger
}

// New returns a widget for cfg. The layout is built by CreateLayout.
func New(cfg config.InstanceConfig) *Widget {
	return &Widget{
		cfg: cfg,
		log: logger.WithComponent("widget").With("instance", cfg.InstanceName()),
	}
}

// Config returns the widget's configuration.
func (w *Widget) Config() config.InstanceConfig { return w.cfg }

// PanelID returns the id of the panel node, or "" before CreateLayout.
func (w *Widget) PanelID() string { return w.panelID }

// Components returns the layout nodes, or nil before CreateLayout.
func (w *Widget) Components() *Components { return w.components }

// History returns the visible conversation.
func (w *Widget) History() chat.History { return w.history }

// SetHistory replaces the visible conversation.
func (w *Widget) SetHistory(h chat.History) { w.history = h }

// Input returns the current message input value.
func (w *Widget) Input() string { return w.input }

// SetInput sets the message input value.
func (w *Widget) SetInput(s string) {
	w.input = s
	if w.components != nil {
		w.components.MessageInput.Text = s
	}
}

// Collapsed reports whether the panel is hidden.
func (w *Widget) Collapsed() bool {
	if w.components == nil {
		return w.cfg.Collapsed()
	}
	return w.components.Panel.Hidden
}

// Bound reports whether DefineEvents has wired the widget to a controller.
func (w *Widget) Bound() bool { return w.ctrl != nil }

// Streaming reports whether a stream is in flight.
func (w *Widget) Streaming() bool { return w.cancelStream != nil }

func newPanelID(instance string) string {
	return fmt.Sprintf("gfc-%s-%s", instance, strings.ReplaceAll(uuid.New().String(), "-", "")[:4])
}

// CreateLayout builds the node tree. In local mode anchorFactory is called
// once and must return a non-nil anchor; in global mode it is never called
// and may be nil.
func (w *Widget) CreateLayout(anchorFactory AnchorFactory) (*Components, error) {
	const op = ferrors.Op("widget.CreateLayout")
	if w.ctrl != nil {
		return nil, ferrors.E(op, ferrors.KindInvalid, fmt.Sprintf("%s is wired to a controller; call Teardown first", w.cfg.InstanceName()))
	}

	global := w.cfg.IsGlobal()
	var containerMarkers, fixedMarkers []string
	if global {
		containerMarkers = []string{style.GlobalAnchorMarker}
		fixedMarkers = []string{style.FixedMarker}
	}

	var anchor *Node
	if !global {
		if anchorFactory == nil {
			return nil, ferrors.E(op, ferrors.KindInvalid, "local anchor mode requires an anchor factory")
		}
		anchor = anchorFactory()
		if anchor == nil {
			return nil, ferrors.E(op, ferrors.KindInvalid, "anchor factory returned no anchor")
		}
	}

	c := &Components{Anchor: anchor}
	c.FloatButton = &Node{
		Kind:    KindButton,
		Role:    style.FloatButton,
		Classes: classList(w.cfg.Class(style.FloatButton), fixedMarkers...),
	}
	if w.cfg.IconType() == config.IconImage {
		c.FloatButton.Image = w.cfg.Icon()
	} else {
		c.FloatButton.Text = w.cfg.Icon()
	}

	c.Title = &Node{Kind: KindText, Role: style.PanelTitle, Classes: classList(w.cfg.Class(style.PanelTitle)), Text: w.cfg.Title()}
	c.CloseButton = &Node{Kind: KindButton, Role: style.PanelCloseButton, Classes: classList(w.cfg.Class(style.PanelCloseButton)), Text: CloseIcon}
	c.Header = &Node{
		Kind:     KindRow,
		Role:     style.PanelHeader,
		Classes:  classList(w.cfg.Class(style.PanelHeader)),
		Children: []*Node{c.Title, c.CloseButton},
	}
	c.Chat = &Node{Kind: KindChat, Role: style.PanelChat, Classes: classList(w.cfg.Class(style.PanelChat))}
	c.MessageInput = &Node{
		Kind:        KindInput,
		Role:        style.PanelMessageInput,
		Classes:     classList(w.cfg.Class(style.PanelMessageInput)),
		Placeholder: InputPlaceholder,
		Text:        w.input,
	}

	w.panelID = newPanelID(w.cfg.InstanceName())
	c.Panel = &Node{
		Kind:     KindPanel,
		Role:     style.Panel,
		ID:       w.panelID,
		Classes:  classList(w.cfg.Class(style.Panel), fixedMarkers...),
		Hidden:   w.cfg.Collapsed(),
		Children: []*Node{c.Header, c.Chat, c.MessageInput},
	}

	c.Container = &Node{
		Kind:    KindContainer,
		Role:    style.Container,
		Classes: classList(w.cfg.Class(style.Container), containerMarkers...),
	}
	if anchor != nil {
		c.Container.Children = append(c.Container.Children, anchor)
	}
	c.Container.Children = append(c.Container.Children, c.FloatButton, c.Panel)

	w.components = c
	w.log.Debug("Layout created", "panelID", w.panelID, "anchorMode", string(w.cfg.AnchorMode()))
	return c, nil
}

// DefineEvents wires the widget to the page: the panel is mounted on ctrl
// with the close button as its close control, the Escape listener is
// attached to bus (once per page), and submissions go to respond. A nil bus
// leaves Escape handling to the host. A panel configured open starts on the
// stack.
func (w *Widget) DefineEvents(ctrl *panel.Controller, bus panel.KeyBus, respond chat.ResponseFunc) error {
	const op = ferrors.Op("widget.DefineEvents")
	if w.components == nil {
		return ferrors.NotInitialized(w.cfg.InstanceName())
	}
	if ctrl == nil {
		return ferrors.E(op, ferrors.KindInvalid, "no panel controller")
	}
	if respond == nil {
		respond = chat.SampleResponse
	}
	if err := ctrl.Mount(panel.PanelHandle{ID: w.panelID, Close: w.ClickClose}); err != nil {
		return err
	}
	w.ctrl = ctrl
	w.respond = respond
	if bus != nil {
		ctrl.AttachEscapeListener(bus)
	}
	if !w.components.Panel.Hidden {
		ctrl.Open(w.panelID)
	}
	return nil
}

// SetStream makes SubmitStream use fn. Without it, SubmitStream wraps the
// plain response function.
func (w *Widget) SetStream(fn chat.StreamFunc) {
	w.stream = fn
}

// StreamFunc returns the responder used for streamed replies: the one set
// with SetStream, else the plain response function as a one-step stream.
// It is nil before DefineEvents.
func (w *Widget) StreamFunc() chat.StreamFunc {
	if w.respond == nil {
		return nil
	}
	if w.stream != nil {
		return w.stream
	}
	return chat.Streaming(w.respond)
}

// ClickFloatButton opens the panel.
func (w *Widget) ClickFloatButton() {
	if w.components == nil {
		return
	}
	w.components.Panel.Hidden = false
	if w.ctrl != nil {
		w.ctrl.Open(w.panelID)
	}
}

// ClickClose closes the panel. It is also the panel's close control for
// Escape cancellation.
func (w *Widget) ClickClose() {
	if w.components == nil {
		return
	}
	w.components.Panel.Hidden = true
	w.stopStream()
	if w.ctrl != nil {
		w.ctrl.Close(w.panelID)
	}
}

// Submit forwards the history and message to the response function and
// shows what it returns.
func (w *Widget) Submit(message string) (chat.History, error) {
	if w.respond == nil {
		return nil, ferrors.NotInitialized(w.cfg.InstanceName())
	}
	history, input := w.respond(w.history, message)
	w.history = history
	w.SetInput(input)
	return history, nil
}

// SubmitStream starts a streamed reply. The input is cleared at once; the
// returned sequence updates the visible history as it is consumed. Starting
// a new stream, closing the panel or Teardown cancels the previous one.
func (w *Widget) SubmitStream(ctx context.Context, message string) (iter.Seq[chat.History], error) {
	if w.respond == nil {
		return nil, ferrors.NotInitialized(w.cfg.InstanceName())
	}
	fn := w.StreamFunc()
	w.stopStream()
	ctx, cancel := context.WithCancel(ctx)
	w.cancelStream = cancel
	w.streamGen++
	seq := fn(ctx, w.history, message)
	w.SetInput("")
	w.log.Debug("Stream started", "panelID", w.panelID)

	gen := w.streamGen
	return func(yield func(chat.History) bool) {
		defer func() {
			cancel()
			if w.streamGen == gen {
				w.cancelStream = nil
			}
		}()
		for h := range seq {
			if ctx.Err() != nil {
				return
			}
			w.history = h
			if !yield(h) {
				return
			}
		}
	}, nil
}

func (w *Widget) stopStream() {
	if w.cancelStream != nil {
		w.cancelStream()
		w.cancelStream = nil
	}
}

// Teardown closes the panel, removes it from the controller and cancels any
// stream in flight. The layout is kept; DefineEvents may be called again.
func (w *Widget) Teardown() {
	w.stopStream()
	if w.ctrl != nil {
		w.ctrl.Unmount(w.panelID)
		w.ctrl = nil
	}
	if w.components != nil {
		w.components.Panel.Hidden = true
	}
	w.respond = nil
	w.log.Debug("Widget torn down", "panelID", w.panelID)
}
