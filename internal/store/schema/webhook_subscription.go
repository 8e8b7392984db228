package schema

// WebhookSubscription represents the webhook_registries table - the join table
// mapping webhooks to the registries they listen to
type WebhookSubscription struct {
	// WebhookID is the subscribing webhook
	WebhookID string `gorm:"column:webhook_id;primaryKey;type:varchar(36)"`
	// RegistryID is the registry the webhook listens to
	RegistryID uint64 `gorm:"column:registry_id;primaryKey;index"`
}

// TableName specifies the table name for the WebhookSubscription model
func (WebhookSubscription) TableName() string {
	return "webhook_registries"
}
