package panel

import (
	"fmt"
	"log/slog"

	ferrors "github.com/zhubert/floatchat/internal/errors"
	"github.com/zhubert/floatchat/internal/keys"
	"github.com/zhubert/floatchat/internal/logger"
)

// State is the visibility state of a mounted panel.
type State int

const (
	Collapsed State = iota
	Open
)

func (s State) String() string {
	switch s {
	case Collapsed:
		return "collapsed"
	case Open:
		return "open"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// PanelHandle connects a panel to the controller. Close is the panel's own
// close action (for a widget, a click on its close button); it is expected to
// end in Controller.Close.
type PanelHandle struct {
	ID       string
	Close    func()
	OpenedAt uint64 // sequence number of the last Open, 0 if never opened
}

type entry struct {
	handle PanelHandle
	state  State
}

// Controller drives the panels of one page. It is not safe for concurrent
// use; hosts call it from their event loop. A Stack belongs to exactly one
// Controller: ids the controller did not mount are never its to close.
type Controller struct {
	stack          *Stack
	panels         map[string]*entry
	seq            uint64
	escapeAttached bool
	log            *slog.Logger
}

// NewController returns a controller writing to stack.
func NewController(stack *Stack) *Controller {
	return &Controller{
		stack:  stack,
		panels: make(map[string]*entry),
		log:    logger.WithComponent("panel"),
	}
}

// Stack returns the page stack the controller writes to.
func (c *Controller) Stack() *Stack {
	return c.stack
}

// Mount registers a panel in the collapsed state.
func (c *Controller) Mount(h PanelHandle) error {
	const op = ferrors.Op("panel.Mount")
	if h.ID == "" {
		return ferrors.E(op, ferrors.KindInvalid, "panel id is empty")
	}
	if h.Close == nil {
		return ferrors.E(op, ferrors.KindInvalid, fmt.Sprintf("panel %s has no close control", h.ID))
	}
	if _, exists := c.panels[h.ID]; exists {
		return ferrors.E(op, ferrors.KindInvalid, fmt.Sprintf("panel %s is already mounted", h.ID))
	}
	h.OpenedAt = 0
	c.panels[h.ID] = &entry{handle: h, state: Collapsed}
	c.log.Debug("Panel mounted", "panelID", h.ID)
	return nil
}

// Unmount closes the panel if needed and forgets it. Unknown ids are ignored.
func (c *Controller) Unmount(id string) {
	if _, ok := c.panels[id]; !ok {
		c.log.Debug("Unmount of unknown panel ignored", "panelID", id)
		return
	}
	c.Close(id)
	delete(c.panels, id)
	c.log.Debug("Panel unmounted", "panelID", id)
}

// Mounted reports whether id is registered.
func (c *Controller) Mounted(id string) bool {
	_, ok := c.panels[id]
	return ok
}

// Open moves a collapsed panel to the open state and pushes it on the stack.
// Opening an open panel, or an unknown id, does nothing.
func (c *Controller) Open(id string) {
	e, ok := c.panels[id]
	if !ok {
		c.log.Debug("Open of unknown panel ignored", "panelID", id)
		return
	}
	if e.state == Open {
		return
	}
	c.seq++
	e.state = Open
	e.handle.OpenedAt = c.seq
	c.stack.Push(id)
	c.log.Debug("Panel opened", "panelID", id, "depth", c.stack.Len())
}

// Close collapses a panel and removes it from the stack. Closing a collapsed
// panel, or an unknown id, does nothing.
func (c *Controller) Close(id string) {
	e, ok := c.panels[id]
	if !ok {
		c.log.Debug("Close of unknown panel ignored", "panelID", id)
		return
	}
	if e.state == Collapsed {
		return
	}
	e.state = Collapsed
	c.stack.Remove(id)
	c.log.Debug("Panel closed", "panelID", id, "depth", c.stack.Len())
}

// State returns the state of a panel. Unknown ids report Collapsed.
func (c *Controller) State(id string) State {
	if e, ok := c.panels[id]; ok {
		return e.state
	}
	return Collapsed
}

// Handle returns the registered handle of a panel.
func (c *Controller) Handle(id string) (PanelHandle, bool) {
	e, ok := c.panels[id]
	if !ok {
		return PanelHandle{}, false
	}
	return e.handle, true
}

// CancelTopmost closes the most recently opened panel by invoking its close
// control once, and returns its id. Only the top panel is affected, even when
// another open panel has focus. With nothing open it returns "".
//
// Removal of a handled panel happens in Close, reached through the panel's
// own close control. Entries with no mounted handle are dropped from the top
// first, since nothing could ever close them.
func (c *Controller) CancelTopmost() string {
	for {
		id, ok := c.stack.Top()
		if !ok {
			return ""
		}
		e, ok := c.panels[id]
		if !ok {
			c.stack.Remove(id)
			c.log.Warn("Dropped stack entry with no handle", "panelID", id)
			continue
		}
		c.log.Debug("Cancelling topmost panel", "panelID", id)
		e.handle.Close()
		return id
	}
}

// AttachEscapeListener subscribes CancelTopmost to Escape on bus. Only the
// first call per controller registers; later calls return false.
func (c *Controller) AttachEscapeListener(bus KeyBus) bool {
	if c.escapeAttached {
		return false
	}
	bus.On(keys.Escape, func() { c.CancelTopmost() })
	c.escapeAttached = true
	c.log.Debug("Escape listener attached")
	return true
}

// EscapeAttached reports whether the Escape listener has been registered.
func (c *Controller) EscapeAttached() bool {
	return c.escapeAttached
}

// HandleKey handles a page-level key without a bus. It reports whether the
// key was consumed.
func (c *Controller) HandleKey(key string) bool {
	if key != keys.Escape {
		return false
	}
	c.CancelTopmost()
	return true
}

// Reset forgets all handles and clears the stack without invoking any close
// control. The Escape registration survives; the bus holding it belongs to
// the page.
func (c *Controller) Reset() {
	clear(c.panels)
	c.stack.Clear()
	c.seq = 0
}
