// Package notification sends desktop notifications when a chat reply
// finishes in a panel that does not have focus.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/zhubert/floatchat/internal/logger"
)

// AppName is the title of every notification.
const AppName = "floatchat"

// Notifier matches beeep.Notify.
type Notifier func(title, message string, icon any) error

var notify Notifier = beeep.Notify

// SetNotifier replaces the notification backend. It is meant for tests.
func SetNotifier(n Notifier) {
	notify = n
}

// ResetNotifier restores the beeep backend.
func ResetNotifier() {
	notify = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
func Send(title, message string) error {
	log := logger.WithComponent("notification")
	log.Debug("Sending notification", "title", title)
	// Empty icon: beeep picks the platform default.
	err := notify(title, message, "")
	if err != nil {
		log.Warn("Failed to send notification", "error", err)
	}
	return err
}

// ReplyReady announces a finished reply for the chat titled chatTitle.
func ReplyReady(chatTitle string) error {
	return Send(AppName, chatTitle+" replied")
}
