// Package clipboard copies chat replies to the system clipboard.
package clipboard

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"

	"github.com/zhubert/floatchat/internal/logger"
)

var (
	mu          sync.Mutex
	initialized bool

	// initFn and writeFn are replaced in tests; the real clipboard needs a
	// display server.
	initFn  = clipboard.Init
	writeFn = func(text string) { clipboard.Write(clipboard.FmtText, []byte(text)) }
	readFn  = func() []byte { return clipboard.Read(clipboard.FmtText) }
)

// Init initializes the clipboard. It is safe to call multiple times.
func Init() error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked()
}

func initLocked() error {
	if initialized {
		return nil
	}
	if err := initFn(); err != nil {
		logger.WithComponent("clipboard").Warn("Failed to initialize", "error", err)
		return fmt.Errorf("failed to initialize clipboard: %w", err)
	}
	initialized = true
	logger.WithComponent("clipboard").Debug("Initialized")
	return nil
}

// WriteText puts text on the clipboard.
func WriteText(text string) error {
	mu.Lock()
	defer mu.Unlock()
	if err := initLocked(); err != nil {
		return err
	}
	writeFn(text)
	logger.WithComponent("clipboard").Debug("Copied text", "bytes", len(text))
	return nil
}

// ReadText returns the text on the clipboard, or "" when there is none.
func ReadText() (string, error) {
	mu.Lock()
	defer mu.Unlock()
	if err := initLocked(); err != nil {
		return "", err
	}
	return string(readFn()), nil
}
