package webhook

import "time"

// Event type constants
const (
	// EventRegistryUpdated is fired when a registry feed changed without new items
	EventRegistryUpdated EventType = "registry.updated"

	// EventRegistryItemsAdded is fired when new feed items were observed for a registry
	EventRegistryItemsAdded EventType = "registry.items_added"

	// EventTest is fired by an explicit test-send request
	EventTest EventType = "test"
)

// UserAgent is the fixed User-Agent header sent with every outbound delivery.
// Receivers key off this value; do not change it.
const UserAgent = "ShadRSS-Webhook/1.0"

// Delivery retry policy. The backoff schedule is an explicit lookup table
// indexed by attempt number (1-based), not a computed progression.
const MaxDeliveryAttempts = 3

// RetryBackoff holds the delay before retry N+1 after failed attempt N.
var RetryBackoff = [MaxDeliveryAttempts]time.Duration{
	60 * time.Second,
	300 * time.Second,
	900 * time.Second,
}

// EventType is the type of event carried by a webhook payload
type EventType string

// Valid reports whether the event type is one of the supported values
func (e EventType) Valid() bool {
	switch e {
	case EventRegistryUpdated, EventRegistryItemsAdded, EventTest:
		return true
	}
	return false
}

// RegistrySnapshot carries the identity fields of a registry as they were at
// payload-construction time. Retries resend this snapshot unchanged.
type RegistrySnapshot struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	Homepage string `json:"homepage"`
}

// Item is a single feed item embedded in a payload
type Item struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	PubDate     string `json:"pubDate"`
	Description string `json:"description,omitempty"`
}

// SourceEntry is one registry plus its new items inside a batched payload
type SourceEntry struct {
	Registry RegistrySnapshot `json:"registry"`
	Items    []Item           `json:"items,omitempty"`
}

// PayloadData is the data section of an outbound payload. Exactly one shape is
// populated, depending on which constructor built the payload: single-source
// (Registry/Items), batched (Registries), or test (Message/WebhookID).
type PayloadData struct {
	Registry   *RegistrySnapshot `json:"registry,omitempty"`
	Items      []Item            `json:"items,omitempty"`
	Registries []SourceEntry     `json:"registries,omitempty"`
	Message    string            `json:"message,omitempty"`
	WebhookID  string            `json:"webhook_id,omitempty"`
}

// Payload is the wire form of an outbound webhook request body
type Payload struct {
	Event     EventType   `json:"event"`
	Timestamp string      `json:"timestamp"`
	Data      PayloadData `json:"data"`
}

// NewPayload builds a single-source payload. The event type is items_added
// when items is non-empty, registry.updated otherwise.
func NewPayload(now time.Time, registry RegistrySnapshot, items []Item) Payload {
	event := EventRegistryUpdated
	if len(items) > 0 {
		event = EventRegistryItemsAdded
	}

	return Payload{
		Event:     event,
		Timestamp: Timestamp(now),
		Data: PayloadData{
			Registry: &registry,
			Items:    items,
		},
	}
}

// NewBatchPayload builds a batched payload covering several registries. The
// event type is items_added when any entry carries items.
func NewBatchPayload(now time.Time, entries []SourceEntry) Payload {
	event := EventRegistryUpdated
	for _, entry := range entries {
		if len(entry.Items) > 0 {
			event = EventRegistryItemsAdded
			break
		}
	}

	return Payload{
		Event:     event,
		Timestamp: Timestamp(now),
		Data: PayloadData{
			Registries: entries,
		},
	}
}

// NewTestPayload builds a synthetic test payload for the given webhook
func NewTestPayload(now time.Time, webhookID string) Payload {
	return Payload{
		Event:     EventTest,
		Timestamp: Timestamp(now),
		Data: PayloadData{
			Message:   "This is a test webhook from ShadRSS",
			WebhookID: webhookID,
		},
	}
}

// Timestamp formats a time as the ISO-8601 string used in payloads and headers
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// Outcome is the structured result of a single delivery attempt
type Outcome struct {
	// Success indicates whether the receiver answered with a 2xx status
	Success bool
	// HTTPStatus is the status code of the response, nil on transport failure
	HTTPStatus *int
	// ErrorMessage describes the failure; empty on success
	ErrorMessage string
}

// DeliveryResult is the per-webhook result returned to notify/notifyBatch callers
type DeliveryResult struct {
	WebhookID    string `json:"webhook_id"`
	Success      bool   `json:"success"`
	HTTPStatus   *int   `json:"http_status,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}
