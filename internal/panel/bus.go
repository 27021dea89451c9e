package panel

// KeyBus delivers page-level key signals to listeners.
type KeyBus interface {
	On(key string, fn func())
}

// Bus is an in-process KeyBus. The terminal UI owns one per page.
type Bus struct {
	listeners map[string][]func()
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{listeners: make(map[string][]func())}
}

// On registers fn for key. Registering twice delivers twice.
func (b *Bus) On(key string, fn func()) {
	b.listeners[key] = append(b.listeners[key], fn)
}

// Dispatch calls every listener registered for key, in registration order,
// and reports whether there was any.
func (b *Bus) Dispatch(key string) bool {
	fns := b.listeners[key]
	for _, fn := range fns {
		fn()
	}
	return len(fns) > 0
}

// Listeners returns the number of listeners registered for key.
func (b *Bus) Listeners(key string) int {
	return len(b.listeners[key])
}
