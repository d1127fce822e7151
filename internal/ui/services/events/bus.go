package events

import (
	"fmt"
	"sync"
)

// Bus is a synchronous event bus for UI services. Handlers run on the
// publishing goroutine, in subscription order, so events from one source
// are observed in the order they were published.
type Bus struct {
	mu        sync.RWMutex
	listeners map[string][]listener
	nextID    uint64
}

type listener struct {
	id      uint64
	handler func(interface{})
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[string][]listener),
	}
}

// Subscribe registers a listener for an event type and returns a func that
// removes it.
func (b *Bus) Subscribe(eventType string, handler func(interface{})) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.listeners[eventType] = append(b.listeners[eventType], listener{id: id, handler: handler})

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(eventType, id) })
	}
}

func (b *Bus) remove(eventType string, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.listeners[eventType]
	for i, l := range subs {
		if l.id == id {
			b.listeners[eventType] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Publish delivers event to every listener registered for its type.
func (b *Bus) Publish(event interface{}) {
	b.mu.RLock()
	// Copy so handlers may subscribe or unsubscribe while being called.
	handlers := append([]listener(nil), b.listeners[TypeOf(event)]...)
	b.mu.RUnlock()

	for _, l := range handlers {
		l.handler(event)
	}
}

// TypeOf returns the key listeners use to subscribe to event.
func TypeOf(event interface{}) string {
	return fmt.Sprintf("%T", event)
}
