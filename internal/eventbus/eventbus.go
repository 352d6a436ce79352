package eventbus

import (
	"runtime/debug"
	"sync"

	log "github.com/sirupsen/logrus"

	"envinstall/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventInstallStarted   = domain.EventInstallStarted
	EventInstallSkipped   = domain.EventInstallSkipped
	EventInstallSucceeded = domain.EventInstallSucceeded
	EventInstallFailed    = domain.EventInstallFailed
	EventBatchCompleted   = domain.EventBatchCompleted
)

// AllEvents lists every event type
var AllEvents = []EventType{
	EventInstallStarted,
	EventInstallSkipped,
	EventInstallSucceeded,
	EventInstallFailed,
	EventBatchCompleted,
}

// Re-export domain event types
type InstallStartedEvent = domain.InstallStartedEvent
type InstallSkippedEvent = domain.InstallSkippedEvent
type InstallSucceededEvent = domain.InstallSucceededEvent
type InstallFailedEvent = domain.InstallFailedEvent
type BatchCompletedEvent = domain.BatchCompletedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus delivers events synchronously, on the publishing goroutine, in
// subscription order.
type bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]subscription
	nextID   uint64
}

// New creates a new event bus
func New() EventBus {
	return &bus{
		handlers: make(map[EventType][]subscription),
	}
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	log.WithField("event", event.Type()).Debug("publishing event")

	b.mu.RLock()
	subs := make([]subscription, len(b.handlers[event.Type()]))
	copy(subs, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, s := range subs {
		b.call(s.handler, event)
	}
}

func (b *bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
		}
	}()
	h(event)
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// SubscribeAll registers handler for every event type
func SubscribeAll(b EventBus, handler EventHandler) func() {
	unsubs := make([]func(), 0, len(AllEvents))
	for _, t := range AllEvents {
		unsubs = append(unsubs, b.Subscribe(t, handler))
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}
