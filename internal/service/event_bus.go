package service

import (
	"context"
	"sync"

	"markethub-be/pkg/events"
	pktNats "markethub-be/pkg/nats"
)

// EventPublisher is satisfied by *nats.Publisher and by LocalEventBus.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// LocalEventBus delivers events to in-process handlers. It stands in for NATS
// when no broker is configured so notifications still reach websocket clients.
type LocalEventBus struct {
	mu       sync.RWMutex
	handlers map[string][]pktNats.EventHandler
}

func NewLocalEventBus() *LocalEventBus {
	return &LocalEventBus{handlers: map[string][]pktNats.EventHandler{}}
}

func (b *LocalEventBus) Subscribe(eventType string, handler pktNats.EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish runs every handler for the event type and returns the first error.
func (b *LocalEventBus) Publish(ctx context.Context, event events.Event) error {
	b.mu.RLock()
	handlers := append([]pktNats.EventHandler(nil), b.handlers[event.EventType()]...)
	b.mu.RUnlock()

	var firstErr error
	for _, h := range handlers {
		if err := h(ctx, event); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
