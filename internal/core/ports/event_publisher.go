package ports

import (
	"context"

	"fulfillment/internal/core/domain/events"
)

// EventPublisher delivers domain events to interested parties.
// A returned error means the event was not accepted.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}
