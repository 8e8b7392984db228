package messaging

import (
	"time"

	"github.com/shadrss/registry-watcher/internal/webhook"
)

// SyncEventType distinguishes the kinds of sync events on the stream
type SyncEventType string

const (
	// SyncEventCycleCompleted is published after a full catalog sync cycle
	SyncEventCycleCompleted SyncEventType = "cycle_completed"
)

// RegistryUpdate is one registry's observed changes within a sync cycle
type RegistryUpdate struct {
	RegistryID uint64         `json:"registry_id"`
	Items      []webhook.Item `json:"items,omitempty"`
}

// SyncCycleEvent is emitted by the syncer once a sync cycle finishes with at
// least one changed registry. The dispatcher consumes it and fans the changes
// out to subscribed webhooks.
type SyncCycleEvent struct {
	CycleID     string           `json:"cycle_id"`
	EventType   SyncEventType    `json:"event_type"`
	StartedAt   time.Time        `json:"started_at"`
	CompletedAt time.Time        `json:"completed_at"`
	Updates     []RegistryUpdate `json:"updates"`
}
