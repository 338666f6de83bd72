package providers

import (
	"context"

	"github.com/doodledaron/findcare/backend/internal/domain/entities"
)

// QueueChannel is the pub/sub channel carrying queue-depth changes
const QueueChannel = "queue-events"

// EventBus distributes queue events to live status screens
type EventBus interface {
	// Publish publishes an event to all subscribers
	Publish(ctx context.Context, channel string, event *entities.QueueEvent) error

	// Subscribe subscribes to events on a channel; the returned channel
	// closes when ctx is cancelled
	Subscribe(ctx context.Context, channel string) (<-chan *entities.QueueEvent, error)

	// Close shuts down the bus
	Close() error
}
