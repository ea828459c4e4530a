// internal/event/manager.go
package event

import (
	"sync"

	"github.com/bethropolis/overlay/internal/logger"
)

// Handler is an event subscriber. Returning true consumes the event and
// stops delivery to later handlers.
type Handler func(e Event) bool

// Manager handles event subscriptions and dispatching.
type Manager struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler // Map event types to a list of handlers
}

// NewManager creates a new event manager.
func NewManager() *Manager {
	return &Manager{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe adds a handler for a specific event type.
func (m *Manager) Subscribe(eventType Type, handler Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.handlers[eventType] = append(m.handlers[eventType], handler)
	logger.DebugTagf("event", "Handler subscribed to %v", eventType)
}

// Dispatch delivers an event synchronously, in subscription order.
func (m *Manager) Dispatch(eventType Type, data interface{}) {
	m.mu.RLock() // Read lock while copying the handler list
	handlers := make([]Handler, len(m.handlers[eventType]))
	copy(handlers, m.handlers[eventType])
	m.mu.RUnlock()

	if len(handlers) == 0 {
		return // Nobody listening; most events land here in tests
	}

	logger.DebugTagf("event", "Dispatching %v to %d handler(s)", eventType, len(handlers))
	e := Event{Type: eventType, Data: data}
	for _, handler := range handlers {
		// Handlers may subscribe more handlers; they see the next dispatch.
		if handler(e) {
			break // Consumed
		}
	}
}
