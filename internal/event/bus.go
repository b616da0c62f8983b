package event

import "sync"

// Publisher is the hook a store invokes after each mutating call.
type Publisher interface {
	Publish(event Event)
}

// NoOpPublisher is a publisher that does nothing (for callers that do not
// need change notification).
type NoOpPublisher struct{}

// Publish does nothing.
func (NoOpPublisher) Publish(event Event) {}

// Handler receives published events.
type Handler func(event Event)

// Bus is a synchronous in-process publish/subscribe hub. Handlers run on
// the publishing goroutine, in subscription order.
type Bus struct {
	mu       sync.RWMutex
	handlers []Handler
}

// Ensure Bus implements Publisher
var _ Publisher = (*Bus)(nil)

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a handler for all subsequent events.
func (b *Bus) Subscribe(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

// Publish delivers the event to every subscribed handler.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.RUnlock()

	for _, h := range handlers {
		h(event)
	}
}
