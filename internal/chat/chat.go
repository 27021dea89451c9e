// Package chat defines conversation history and the response functions a
// widget forwards submissions to.
package chat

import (
	"context"
	"iter"
	"slices"
	"strings"
)

// Role is the speaker of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry of a conversation. Content is nil for an entry that
// has no content yet.
type Message struct {
	Role    Role    `json:"role"`
	Content *string `json:"content"`
}

// UserMessage returns a user entry with the given text.
func UserMessage(text string) Message {
	return Message{Role: RoleUser, Content: &text}
}

// AssistantMessage returns an assistant entry with the given text.
func AssistantMessage(text string) Message {
	return Message{Role: RoleAssistant, Content: &text}
}

// Text returns the content, or "" when there is none.
func (m Message) Text() string {
	if m.Content == nil {
		return ""
	}
	return *m.Content
}

// History is an ordered conversation.
type History []Message

// Clone returns a deep copy; contents are not shared with h.
func (h History) Clone() History {
	if h == nil {
		return nil
	}
	out := make(History, len(h))
	for i, m := range h {
		out[i] = m
		if m.Content != nil {
			c := *m.Content
			out[i].Content = &c
		}
	}
	return out
}

// LastReply returns the text of the most recent assistant entry.
func (h History) LastReply() (string, bool) {
	for i := len(h) - 1; i >= 0; i-- {
		if h[i].Role == RoleAssistant {
			return h[i].Text(), true
		}
	}
	return "", false
}

// Equal reports whether two histories have the same roles and texts.
func (h History) Equal(other History) bool {
	return slices.EqualFunc(h, other, func(a, b Message) bool {
		return a.Role == b.Role && (a.Content == nil) == (b.Content == nil) && a.Text() == b.Text()
	})
}

// ResponseFunc receives the visible history and the submitted message and
// returns the new history and the new input value.
type ResponseFunc func(history History, message string) (History, string)

// StreamFunc produces successive snapshots of the history for one submission.
// The sequence is lazy: the next snapshot is not computed until the consumer
// asks for it. Cancelling ctx ends the sequence.
type StreamFunc func(ctx context.Context, history History, message string) iter.Seq[History]

// SampleResponse echoes the message back: it appends the user entry and an
// assistant "Echo: <message>" entry and clears the input.
func SampleResponse(history History, message string) (History, string) {
	out := append(history.Clone(), UserMessage(message), AssistantMessage("Echo: "+message))
	return out, ""
}

// AddMessage appends a user entry and clears the input. A blank message
// leaves the history unchanged.
func AddMessage(history History, message string) (History, string) {
	if strings.TrimSpace(message) == "" {
		return history, ""
	}
	return append(history.Clone(), UserMessage(message)), ""
}

// Streaming wraps a plain response function as a stream with one snapshot.
func Streaming(fn ResponseFunc) StreamFunc {
	return func(ctx context.Context, history History, message string) iter.Seq[History] {
		return func(yield func(History) bool) {
			if ctx.Err() != nil {
				return
			}
			out, _ := fn(history, message)
			yield(out)
		}
	}
}
