package ui

import (
	"context"
	"iter"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/floatchat/internal/chat"
)

// replyStream is a streamed reply being pulled into a panel, one snapshot
// per Bubble Tea message. At most one pull is in flight; stop may only be
// called when none is, so it is called from Update after the pulled step
// has arrived.
type replyStream struct {
	panelID  string
	next     func() (chat.History, bool)
	stop     func()
	cancel   context.CancelFunc
	inFlight bool
	canceled bool
}

// streamStepMsg carries one pulled snapshot. ok is false once the reply is
// complete or was canceled.
type streamStepMsg struct {
	stream  *replyStream
	history chat.History
	ok      bool
}

func startStream(panelID string, fn chat.StreamFunc, history chat.History, message string) *replyStream {
	ctx, cancel := context.WithCancel(context.Background())
	next, stop := iter.Pull(fn(ctx, history, message))
	return &replyStream{panelID: panelID, next: next, stop: stop, cancel: cancel}
}

// pull returns a command that produces the next snapshot.
func (s *replyStream) pull() tea.Cmd {
	s.inFlight = true
	return func() tea.Msg {
		h, ok := s.next()
		return streamStepMsg{stream: s, history: h, ok: ok}
	}
}

// abort cancels the reply. A pull in flight returns promptly and its step
// is discarded when it arrives.
func (s *replyStream) abort() {
	s.canceled = true
	s.cancel()
	if !s.inFlight {
		s.stop()
	}
}

// finish releases the stream after its last step was handled.
func (s *replyStream) finish() {
	s.inFlight = false
	s.cancel()
	s.stop()
}
