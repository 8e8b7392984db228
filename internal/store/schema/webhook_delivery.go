package schema

import "time"

// WebhookDeliveryStatus is the status of a webhook delivery
type WebhookDeliveryStatus string

const (
	// WebhookDeliveryStatusPending is the status of a webhook delivery that is pending
	WebhookDeliveryStatusPending WebhookDeliveryStatus = "pending"
	// WebhookDeliveryStatusSuccess is the status of a webhook delivery that was successful
	WebhookDeliveryStatusSuccess WebhookDeliveryStatus = "success"
	// WebhookDeliveryStatusFailed is the status of a webhook delivery that failed
	WebhookDeliveryStatusFailed WebhookDeliveryStatus = "failed"
)

// WebhookDelivery represents the webhook_deliveries table - the ledger of
// delivery attempts, one row per logical delivery across all of its retries
type WebhookDelivery struct {
	// DeliveryID is the external identifier for this delivery (UUID)
	DeliveryID string `gorm:"column:delivery_id;primaryKey;type:varchar(36)"`
	// WebhookID is the webhook this delivery targets
	WebhookID string `gorm:"column:webhook_id;not null;index;type:varchar(36)"`
	// Event is the event type carried by the payload
	Event string `gorm:"column:event;not null;type:varchar(50)"`
	// Payload is the exact serialized request body. Stored as text so retries
	// resend byte-identical content; jsonb would reorder keys and break
	// signature verification against the stored bytes.
	Payload string `gorm:"column:payload;not null;type:text"`
	// Status indicates the current status: pending, success, failed
	Status WebhookDeliveryStatus `gorm:"column:status;not null;default:pending;index"`
	// AttemptCount is the number of delivery attempts made so far
	AttemptCount int `gorm:"column:attempt_count;not null;default:0"`
	// MaxAttempts is the attempt cap after which the delivery fails terminally
	MaxAttempts int `gorm:"column:max_attempts;not null;default:3"`
	// HTTPStatus is the response status of the most recent attempt, nil when
	// the attempt failed before receiving a response
	HTTPStatus *int `gorm:"column:http_status"`
	// ErrorMessage describes the most recent failure
	ErrorMessage string `gorm:"column:error_message;type:text"`
	// NextRetryAt is when the delivery becomes due for retry. Set only while
	// status is pending with attempts remaining.
	NextRetryAt *time.Time `gorm:"column:next_retry_at;index;type:timestamptz"`
	// DeliveredAt is the timestamp of the successful attempt
	DeliveredAt *time.Time `gorm:"column:delivered_at;type:timestamptz"`
	// CreatedAt is the timestamp when this delivery record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this delivery record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the WebhookDelivery model
func (WebhookDelivery) TableName() string {
	return "webhook_deliveries"
}

// Exhausted reports whether the delivery has used up its attempt budget
func (d *WebhookDelivery) Exhausted() bool {
	return d.AttemptCount >= d.MaxAttempts
}
