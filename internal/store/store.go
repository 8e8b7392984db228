package store

import (
	"context"
	"errors"
	"time"

	"github.com/shadrss/registry-watcher/internal/store/schema"
	"github.com/shadrss/registry-watcher/internal/webhook"
)

// ErrUnknownRegistry is returned when a webhook references registry IDs that
// do not exist
var ErrUnknownRegistry = errors.New("one or more registry ids do not exist")

// CreateWebhookInput carries the fields for registering a webhook
type CreateWebhookInput struct {
	UserID      string
	URL         string
	Secret      *string
	RegistryIDs []uint64
}

// UpdateWebhookInput carries the mutable webhook fields. Nil pointers leave
// the stored value unchanged; a non-nil empty RegistryIDs slice clears the
// subscription set.
type UpdateWebhookInput struct {
	URL         *string
	Secret      *string
	Active      *bool
	RegistryIDs *[]uint64
}

// CreateWebhookDeliveryInput carries the fields for a new ledger row
type CreateWebhookDeliveryInput struct {
	WebhookID string
	Event     webhook.EventType
	Payload   []byte
}

// UpsertRegistryInput carries the catalog fields for a registry
type UpsertRegistryInput struct {
	Name        string
	URL         string
	Homepage    string
	Description string
}

// CreateRSSItemInput carries the fields of a feed item observed during sync
type CreateRSSItemInput struct {
	GUID        string
	Title       string
	Link        string
	PubDate     *time.Time
	Description string
}

// Store defines the interface for database operations
//
//go:generate go run github.com/golang/mock/mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// CreateWebhook registers a webhook with its subscription set. It fails
	// with ErrUnknownRegistry when any referenced registry does not exist.
	CreateWebhook(ctx context.Context, input CreateWebhookInput) (*schema.Webhook, error)
	// GetWebhook retrieves a webhook owned by userID, nil when absent or
	// owned by someone else
	GetWebhook(ctx context.Context, userID, webhookID string) (*schema.Webhook, error)
	// ListWebhooks retrieves all webhooks owned by userID
	ListWebhooks(ctx context.Context, userID string) ([]*schema.Webhook, error)
	// UpdateWebhook applies a partial update to a webhook owned by userID,
	// nil when absent
	UpdateWebhook(ctx context.Context, userID, webhookID string, input UpdateWebhookInput) (*schema.Webhook, error)
	// DeleteWebhook removes a webhook owned by userID along with its
	// subscriptions and delivery history, reporting whether a row was deleted
	DeleteWebhook(ctx context.Context, userID, webhookID string) (bool, error)
	// SetWebhookActive pauses or resumes a webhook owned by userID, nil when
	// absent
	SetWebhookActive(ctx context.Context, userID, webhookID string, active bool) (*schema.Webhook, error)
	// GetWebhookByID retrieves a webhook by ID without user scoping, for
	// delivery-side lookups
	GetWebhookByID(ctx context.Context, webhookID string) (*schema.Webhook, error)
	// GetActiveWebhooksForRegistry retrieves active webhooks whose
	// subscription set includes registryID. Webhooks with no subscriptions
	// are never resolved.
	GetActiveWebhooksForRegistry(ctx context.Context, registryID uint64) ([]*schema.Webhook, error)
	// GetActiveWebhooksForRegistries retrieves active webhooks matching any
	// of the given registries
	GetActiveWebhooksForRegistries(ctx context.Context, registryIDs []uint64) ([]*schema.Webhook, error)
	// UpdateWebhookHealth records the result of a delivery attempt on the
	// webhook row. Success marks the webhook healthy, resets the failure
	// count, and clears the last error; failure marks it failed, increments
	// the count, and records the message.
	UpdateWebhookHealth(ctx context.Context, webhookID string, success bool, errorMessage string, at time.Time) error

	// CreateWebhookDelivery inserts a pending ledger row for a delivery
	CreateWebhookDelivery(ctx context.Context, input CreateWebhookDeliveryInput) (*schema.WebhookDelivery, error)
	// ApplyDeliveryOutcome records an attempt against a ledger row and moves
	// it to its next state: success, pending with a scheduled retry, or
	// terminally failed
	ApplyDeliveryOutcome(ctx context.Context, deliveryID string, outcome webhook.Outcome, at time.Time) (*schema.WebhookDelivery, error)
	// MarkDeliveryFailed terminally fails a ledger row without counting an
	// attempt, used when the target webhook is gone or paused
	MarkDeliveryFailed(ctx context.Context, deliveryID, errorMessage string) error
	// ListDueDeliveries retrieves pending deliveries whose next_retry_at has
	// passed, oldest first
	ListDueDeliveries(ctx context.Context, now time.Time, limit int) ([]*schema.WebhookDelivery, error)
	// ListDeliveriesByWebhook retrieves recent deliveries for a webhook owned
	// by userID, newest first
	ListDeliveriesByWebhook(ctx context.Context, userID, webhookID string, limit int) ([]*schema.WebhookDelivery, error)

	// UpsertRegistry creates or refreshes a registry keyed by its URL
	UpsertRegistry(ctx context.Context, input UpsertRegistryInput) (*schema.Registry, error)
	// ListRegistries retrieves all tracked registries
	ListRegistries(ctx context.Context) ([]*schema.Registry, error)
	// GetRegistryByID retrieves a registry, nil when absent
	GetRegistryByID(ctx context.Context, registryID uint64) (*schema.Registry, error)
	// SetRegistryFeedURL records the discovered feed URL for a registry
	SetRegistryFeedURL(ctx context.Context, registryID uint64, feedURL string) error
	// InsertNewRSSItems stores feed items for a registry, skipping ones
	// already present, and returns only the newly inserted items
	InsertNewRSSItems(ctx context.Context, registryID uint64, items []CreateRSSItemInput) ([]*schema.RSSItem, error)
	// TouchRegistrySynced stamps last_synced_at and refreshes item_count
	TouchRegistrySynced(ctx context.Context, registryID uint64, at time.Time) error
}
