// Package events is the pub-sub backbone of the reader: services publish,
// the TUI model subscribes and turns events into view updates.
package events

import (
	"sync"
)

// Broker manages event distribution. Subscribers get buffered channels;
// a full channel drops the event rather than blocking a publisher.
type Broker struct {
	subscribers map[EventType][]chan Event
	mu          sync.RWMutex
	bufferSize  int
}

// NewBroker creates a new event broker
func NewBroker() *Broker {
	return &Broker{
		subscribers: make(map[EventType][]chan Event),
		bufferSize:  16,
	}
}

// Subscribe creates a subscription to specific event types.
// With no types given, the subscription receives everything.
func (b *Broker) Subscribe(eventTypes ...EventType) <-chan Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, b.bufferSize)

	if len(eventTypes) == 0 {
		eventTypes = []EventType{"*"}
	}
	for _, eventType := range eventTypes {
		b.subscribers[eventType] = append(b.subscribers[eventType], ch)
	}

	return ch
}

// Publish sends an event to all matching subscribers.
func (b *Broker) Publish(event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers[event.Type] {
		select {
		case ch <- event:
		default:
			// Channel full, skip this event
		}
	}
	for _, ch := range b.subscribers["*"] {
		select {
		case ch <- event:
		default:
		}
	}
}

// PublishAsync sends an event without blocking the caller.
func (b *Broker) PublishAsync(event Event) {
	go b.Publish(event)
}

// Shutdown closes every subscriber channel and drops all subscriptions.
func (b *Broker) Shutdown() {
	b.mu.Lock()
	defer b.mu.Unlock()

	closed := make(map[chan Event]struct{})
	for _, subscribers := range b.subscribers {
		for _, ch := range subscribers {
			if _, done := closed[ch]; done {
				continue
			}
			close(ch)
			closed[ch] = struct{}{}
		}
	}
	b.subscribers = make(map[EventType][]chan Event)
}
