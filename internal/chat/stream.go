package chat

import (
	"context"
	"iter"
	"time"
)

const (
	// DefaultStreamReply is the text SampleStream types out.
	DefaultStreamReply = "I am a floating chatbot."
	// DefaultStreamDelay is the pause before each streamed character.
	DefaultStreamDelay = 50 * time.Millisecond
)

// SampleStream adds the user message, then types DefaultStreamReply into a
// new assistant entry one character at a time.
var SampleStream = NewSampleStream(DefaultStreamReply, DefaultStreamDelay)

// NewSampleStream returns a StreamFunc that types reply with delay before
// each character. A blank message yields nothing.
//
// The first snapshot holds the user entry and an empty assistant entry; each
// following snapshot extends the assistant entry by one character. Every
// snapshot is an independent copy.
func NewSampleStream(reply string, delay time.Duration) StreamFunc {
	return func(ctx context.Context, history History, message string) iter.Seq[History] {
		return func(yield func(History) bool) {
			h, _ := AddMessage(history, message)
			if len(h) == len(history) {
				return
			}
			h = append(h, AssistantMessage(""))
			if !yield(h.Clone()) {
				return
			}

			var timer *time.Timer
			if delay > 0 {
				timer = time.NewTimer(delay)
				defer timer.Stop()
			}
			var typed []rune
			for _, r := range reply {
				if timer != nil {
					timer.Reset(delay)
					select {
					case <-ctx.Done():
						return
					case <-timer.C:
					}
				} else if ctx.Err() != nil {
					return
				}
				typed = append(typed, r)
				h[len(h)-1] = AssistantMessage(string(typed))
				if !yield(h.Clone()) {
					return
				}
			}
		}
	}
}

// Collect drains a stream and returns its last snapshot. It is meant for
// hosts without an event loop and for tests.
func Collect(seq iter.Seq[History]) History {
	var last History
	for h := range seq {
		last = h
	}
	return last
}
