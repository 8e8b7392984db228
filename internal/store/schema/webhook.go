package schema

import "time"

// WebhookStatus is the aggregated health of a webhook, reflecting its most
// recent delivery attempt across all deliveries
type WebhookStatus string

const (
	// WebhookStatusPending means no delivery has been attempted yet
	WebhookStatusPending WebhookStatus = "pending"
	// WebhookStatusHealthy means the most recent attempt succeeded
	WebhookStatusHealthy WebhookStatus = "healthy"
	// WebhookStatusFailed means the most recent attempt failed
	WebhookStatusFailed WebhookStatus = "failed"
)

// Webhook represents the webhooks table - user-registered webhook endpoints
type Webhook struct {
	// WebhookID is the external identifier, format "whk_" plus a dash-less UUID
	WebhookID string `gorm:"column:webhook_id;primaryKey;type:varchar(36)"`
	// UserID is the owning user; all reads and writes are scoped by it
	UserID string `gorm:"column:user_id;not null;index;type:varchar(36)"`
	// URL is the endpoint deliveries are POSTed to
	URL string `gorm:"column:url;not null;type:text"`
	// Secret is the HMAC-SHA256 signing key, nil for unsigned webhooks
	Secret *string `gorm:"column:secret;type:text"`
	// Active indicates whether this webhook receives deliveries. Paused
	// webhooks are skipped at notify time and fail terminally at retry time.
	Active bool `gorm:"column:active;not null;default:true"`
	// Status is the aggregated health, updated after every delivery attempt
	Status WebhookStatus `gorm:"column:status;not null;default:pending;type:varchar(10)"`
	// FailureCount is the running count of failed delivery attempts since the
	// last success
	FailureCount int `gorm:"column:failure_count;not null;default:0"`
	// LastTriggeredAt is the timestamp of the most recent delivery attempt,
	// successful or not
	LastTriggeredAt *time.Time `gorm:"column:last_triggered_at;type:timestamptz"`
	// LastSuccessAt is the timestamp of the most recent successful delivery
	LastSuccessAt *time.Time `gorm:"column:last_success_at;type:timestamptz"`
	// LastFailureAt is the timestamp of the most recent failed delivery
	LastFailureAt *time.Time `gorm:"column:last_failure_at;type:timestamptz"`
	// LastErrorMessage describes the most recent failure, cleared on success
	LastErrorMessage string `gorm:"column:last_error_message;type:text"`
	// CreatedAt is the timestamp when this webhook was registered
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this webhook was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Subscriptions are the registries this webhook listens to. A webhook
	// with no subscriptions is never resolved for delivery.
	Subscriptions []WebhookSubscription `gorm:"foreignKey:WebhookID;references:WebhookID"`
}

// TableName specifies the table name for the Webhook model
func (Webhook) TableName() string {
	return "webhooks"
}

// RegistryIDs returns the subscribed registry IDs in stored order
func (w *Webhook) RegistryIDs() []uint64 {
	if len(w.Subscriptions) == 0 {
		return nil
	}
	ids := make([]uint64, 0, len(w.Subscriptions))
	for _, sub := range w.Subscriptions {
		ids = append(ids, sub.RegistryID)
	}
	return ids
}

// SubscribesTo reports whether the webhook listens to the given registry.
// An empty subscription set matches nothing.
func (w *Webhook) SubscribesTo(registryID uint64) bool {
	for _, sub := range w.Subscriptions {
		if sub.RegistryID == registryID {
			return true
		}
	}
	return false
}
