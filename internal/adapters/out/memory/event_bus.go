package memory

import (
	"context"
	"sync"

	"fulfillment/internal/core/domain/events"
	"fulfillment/internal/pkg/errs"
)

// EventBus records published events in order and fans them out to subscribers.
type EventBus struct {
	mu          sync.Mutex
	published   []events.Event
	subscribers []func(events.Event)
}

func NewEventBus() *EventBus {
	return &EventBus{}
}

// Subscribe registers fn to be called synchronously for every later event.
func (b *EventBus) Subscribe(fn func(events.Event)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = append(b.subscribers, fn)
}

func (b *EventBus) Publish(ctx context.Context, event events.Event) error {
	if err := ctx.Err(); err != nil {
		return errs.NewRepositoryError("publish "+string(event.Kind()), err)
	}

	b.mu.Lock()
	b.published = append(b.published, event)
	subscribers := make([]func(events.Event), len(b.subscribers))
	copy(subscribers, b.subscribers)
	b.mu.Unlock()

	for _, fn := range subscribers {
		fn(event)
	}
	return nil
}

// Published returns a copy of every event seen so far.
func (b *EventBus) Published() []events.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]events.Event, len(b.published))
	copy(out, b.published)
	return out
}

// Kinds lists the kinds of the published events in order.
func (b *EventBus) Kinds() []events.Kind {
	published := b.Published()
	kinds := make([]events.Kind, 0, len(published))
	for _, e := range published {
		kinds = append(kinds, e.Kind())
	}
	return kinds
}
