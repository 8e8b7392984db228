package messaging

import (
	"context"
)

// Publisher defines the interface for publishing sync events to the message queue
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishSyncCycle publishes a completed sync cycle to the message broker
	PublishSyncCycle(ctx context.Context, event *SyncCycleEvent) error
	// Close closes the connection
	Close()
}
