package events

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeCallRosterChange EventType = "call_roster_change"
	EventTypeCallCancelled    EventType = "call_cancelled"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// CallRosterChangeEvent fires after a successful attendance confirmation so
// the announcement embed can be re-rendered.
type CallRosterChangeEvent struct {
	CallID    string
	ChannelID string
	MessageID string
	Total     int
}

func (e CallRosterChangeEvent) Type() EventType {
	return EventTypeCallRosterChange
}

// CallCancelledEvent fires after a call is cancelled so the announcement can
// be replaced with a cancellation notice.
type CallCancelledEvent struct {
	CallID        string
	ChannelID     string
	MessageID     string
	Title         string
	CancelledByID string
}

func (e CallCancelledEvent) Type() EventType {
	return EventTypeCallCancelled
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Emit publishes an event to all registered handlers. Handlers run
// asynchronously so emitters are never blocked by slow Discord calls.
func (b *Bus) Emit(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, handler := range handlers {
		go func(h Handler) {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"eventType": event.Type(),
						"panic":     r,
					}).Error("Event handler panicked")
				}
			}()
			h(ctx, event)
		}(handler)
	}
}
