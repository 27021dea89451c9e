package notification

import (
	"errors"
	"testing"
)

// mockNotification records calls to the notification function
type mockNotification struct {
	calls []struct {
		title   string
		message string
		icon    any
	}
	err error
}

func (m *mockNotification) notify(title, message string, icon any) error {
	m.calls = append(m.calls, struct {
		title   string
		message string
		icon    any
	}{title, message, icon})
	return m.err
}

func TestSend(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		message     string
		mockErr     error
		expectError bool
	}{
		{name: "successful notification", title: "Title", message: "Message"},
		{name: "notification error", title: "Title", message: "Message", mockErr: errors.New("failed"), expectError: true},
		{name: "empty message", title: "Title"},
		{name: "unicode content", title: "通知", message: "💬 reply"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockNotification{err: tt.mockErr}
			SetNotifier(mock.notify)
			defer ResetNotifier()

			err := Send(tt.title, tt.message)
			if (err != nil) != tt.expectError {
				t.Errorf("Send() error = %v, expectError %v", err, tt.expectError)
			}
			if len(mock.calls) != 1 {
				t.Fatalf("expected 1 call, got %d", len(mock.calls))
			}
			call := mock.calls[0]
			if call.title != tt.title || call.message != tt.message {
				t.Errorf("call = (%q, %q), want (%q, %q)", call.title, call.message, tt.title, tt.message)
			}
			if call.icon != "" {
				t.Errorf("icon = %v, want platform default", call.icon)
			}
		})
	}
}

func TestReplyReady(t *testing.T) {
	mock := &mockNotification{}
	SetNotifier(mock.notify)
	defer ResetNotifier()

	if err := ReplyReady("Support"); err != nil {
		t.Fatal(err)
	}
	if len(mock.calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.calls))
	}
	if mock.calls[0].title != AppName || mock.calls[0].message != "Support replied" {
		t.Errorf("call = %+v", mock.calls[0])
	}
}

func TestResetNotifier(t *testing.T) {
	mock := &mockNotification{}
	SetNotifier(mock.notify)
	ResetNotifier()

	if notify == nil {
		t.Fatal("notifier should be restored")
	}
	if len(mock.calls) != 0 {
		t.Error("mock should not have been called")
	}
}
