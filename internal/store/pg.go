package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shadrss/registry-watcher/internal/store/schema"
	"github.com/shadrss/registry-watcher/internal/webhook"
)

const (
	defaultDeliveryHistoryLimit = 50
	maxDeliveryHistoryLimit     = 100
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// NewWebhookID generates an external webhook identifier.
// Format: "whk_" + UUID with dashes stripped.
func NewWebhookID() string {
	return "whk_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// CreateWebhook registers a webhook with its subscription set
func (s *pgStore) CreateWebhook(ctx context.Context, input CreateWebhookInput) (*schema.Webhook, error) {
	wh := schema.Webhook{
		WebhookID: NewWebhookID(),
		UserID:    input.UserID,
		URL:       input.URL,
		Secret:    input.Secret,
		Active:    true,
		Status:    schema.WebhookStatusPending,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.validateRegistryIDs(tx, input.RegistryIDs); err != nil {
			return err
		}

		if err := tx.Create(&wh).Error; err != nil {
			return fmt.Errorf("failed to create webhook: %w", err)
		}

		if len(input.RegistryIDs) > 0 {
			subs := make([]schema.WebhookSubscription, 0, len(input.RegistryIDs))
			for _, registryID := range input.RegistryIDs {
				subs = append(subs, schema.WebhookSubscription{
					WebhookID:  wh.WebhookID,
					RegistryID: registryID,
				})
			}
			if err := tx.Create(&subs).Error; err != nil {
				return fmt.Errorf("failed to create webhook subscriptions: %w", err)
			}
			wh.Subscriptions = subs
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &wh, nil
}

func (s *pgStore) validateRegistryIDs(tx *gorm.DB, registryIDs []uint64) error {
	if len(registryIDs) == 0 {
		return nil
	}

	var count int64
	if err := tx.Model(&schema.Registry{}).
		Where("id IN ?", registryIDs).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to validate registry ids: %w", err)
	}
	if count != int64(len(registryIDs)) {
		return ErrUnknownRegistry
	}

	return nil
}

// GetWebhook retrieves a webhook owned by userID, nil when absent.
// The same nil is returned whether the webhook does not exist or belongs to
// another user, so callers cannot probe for foreign webhook IDs.
func (s *pgStore) GetWebhook(ctx context.Context, userID, webhookID string) (*schema.Webhook, error) {
	var wh schema.Webhook
	err := s.db.WithContext(ctx).
		Preload("Subscriptions").
		Where("webhook_id = ? AND user_id = ?", webhookID, userID).
		First(&wh).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get webhook: %w", err)
	}

	return &wh, nil
}

// ListWebhooks retrieves all webhooks owned by userID
func (s *pgStore) ListWebhooks(ctx context.Context, userID string) ([]*schema.Webhook, error) {
	var webhooks []*schema.Webhook
	err := s.db.WithContext(ctx).
		Preload("Subscriptions").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&webhooks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list webhooks: %w", err)
	}

	return webhooks, nil
}

// UpdateWebhook applies a partial update to a webhook owned by userID
func (s *pgStore) UpdateWebhook(ctx context.Context, userID, webhookID string, input UpdateWebhookInput) (*schema.Webhook, error) {
	var wh *schema.Webhook

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing schema.Webhook
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("webhook_id = ? AND user_id = ?", webhookID, userID).
			First(&existing).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("failed to get webhook: %w", err)
		}

		if input.URL != nil {
			existing.URL = *input.URL
		}
		if input.Secret != nil {
			existing.Secret = input.Secret
		}
		if input.Active != nil {
			existing.Active = *input.Active
		}

		if err := tx.Save(&existing).Error; err != nil {
			return fmt.Errorf("failed to update webhook: %w", err)
		}

		if input.RegistryIDs != nil {
			registryIDs := *input.RegistryIDs
			if err := s.validateRegistryIDs(tx, registryIDs); err != nil {
				return err
			}

			if err := tx.Where("webhook_id = ?", webhookID).
				Delete(&schema.WebhookSubscription{}).Error; err != nil {
				return fmt.Errorf("failed to clear webhook subscriptions: %w", err)
			}

			if len(registryIDs) > 0 {
				subs := make([]schema.WebhookSubscription, 0, len(registryIDs))
				for _, registryID := range registryIDs {
					subs = append(subs, schema.WebhookSubscription{
						WebhookID:  webhookID,
						RegistryID: registryID,
					})
				}
				if err := tx.Create(&subs).Error; err != nil {
					return fmt.Errorf("failed to create webhook subscriptions: %w", err)
				}
			}
		}

		wh = &existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, nil
	}

	return s.GetWebhook(ctx, userID, webhookID)
}

// DeleteWebhook removes a webhook owned by userID. Subscription and delivery
// ledger rows cascade with it through the foreign keys, so no ledger entry
// outlives its webhook.
func (s *pgStore) DeleteWebhook(ctx context.Context, userID, webhookID string) (bool, error) {
	result := s.db.WithContext(ctx).
		Where("webhook_id = ? AND user_id = ?", webhookID, userID).
		Delete(&schema.Webhook{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete webhook: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// SetWebhookActive pauses or resumes a webhook owned by userID
func (s *pgStore) SetWebhookActive(ctx context.Context, userID, webhookID string, active bool) (*schema.Webhook, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.Webhook{}).
		Where("webhook_id = ? AND user_id = ?", webhookID, userID).
		Updates(map[string]interface{}{
			"active":     active,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to set webhook active: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return s.GetWebhook(ctx, userID, webhookID)
}

// GetWebhookByID retrieves a webhook by ID without user scoping
func (s *pgStore) GetWebhookByID(ctx context.Context, webhookID string) (*schema.Webhook, error) {
	var wh schema.Webhook
	err := s.db.WithContext(ctx).
		Preload("Subscriptions").
		Where("webhook_id = ?", webhookID).
		First(&wh).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get webhook: %w", err)
	}

	return &wh, nil
}

// GetActiveWebhooksForRegistry retrieves active webhooks listening to registryID
func (s *pgStore) GetActiveWebhooksForRegistry(ctx context.Context, registryID uint64) ([]*schema.Webhook, error) {
	return s.GetActiveWebhooksForRegistries(ctx, []uint64{registryID})
}

// GetActiveWebhooksForRegistries retrieves active webhooks whose subscription
// set intersects the given registries. Resolution goes through the join table
// only, so a webhook without subscription rows is never returned.
func (s *pgStore) GetActiveWebhooksForRegistries(ctx context.Context, registryIDs []uint64) ([]*schema.Webhook, error) {
	if len(registryIDs) == 0 {
		return []*schema.Webhook{}, nil
	}

	var webhooks []*schema.Webhook
	err := s.db.WithContext(ctx).
		Preload("Subscriptions").
		Where("active = ?", true).
		Where(`EXISTS (
			SELECT 1 FROM webhook_registries wr
			WHERE wr.webhook_id = webhooks.webhook_id AND wr.registry_id IN ?
		)`, registryIDs).
		Order("created_at ASC").
		Find(&webhooks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get active webhooks: %w", err)
	}

	return webhooks, nil
}

// UpdateWebhookHealth records the result of a delivery attempt on the webhook
// row as a single conditional UPDATE, so concurrent deliveries never lose
// failure counts. Health reflects the most recent attempt: success marks the
// webhook healthy and clears the last error, failure marks it failed and
// records the message.
func (s *pgStore) UpdateWebhookHealth(ctx context.Context, webhookID string, success bool, errorMessage string, at time.Time) error {
	updates := map[string]interface{}{
		"last_triggered_at": at,
		"updated_at":        at,
	}
	if success {
		updates["status"] = schema.WebhookStatusHealthy
		updates["failure_count"] = 0
		updates["last_success_at"] = at
		updates["last_error_message"] = ""
	} else {
		updates["status"] = schema.WebhookStatusFailed
		updates["failure_count"] = gorm.Expr("failure_count + 1")
		updates["last_failure_at"] = at
		updates["last_error_message"] = errorMessage
	}

	err := s.db.WithContext(ctx).
		Model(&schema.Webhook{}).
		Where("webhook_id = ?", webhookID).
		Updates(updates).Error
	if err != nil {
		return fmt.Errorf("failed to update webhook health: %w", err)
	}

	return nil
}

// CreateWebhookDelivery inserts a pending ledger row for a delivery
func (s *pgStore) CreateWebhookDelivery(ctx context.Context, input CreateWebhookDeliveryInput) (*schema.WebhookDelivery, error) {
	delivery := schema.WebhookDelivery{
		DeliveryID:  uuid.NewString(),
		WebhookID:   input.WebhookID,
		Event:       string(input.Event),
		Payload:     string(input.Payload),
		Status:      schema.WebhookDeliveryStatusPending,
		MaxAttempts: webhook.MaxDeliveryAttempts,
	}

	if err := s.db.WithContext(ctx).Create(&delivery).Error; err != nil {
		return nil, fmt.Errorf("failed to create webhook delivery: %w", err)
	}

	return &delivery, nil
}

// ApplyDeliveryOutcome records an attempt against a ledger row and moves it to
// its next state. On failure with attempts remaining the next retry is
// scheduled from the backoff table, indexed by the attempt that just failed.
func (s *pgStore) ApplyDeliveryOutcome(ctx context.Context, deliveryID string, outcome webhook.Outcome, at time.Time) (*schema.WebhookDelivery, error) {
	var delivery schema.WebhookDelivery

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("delivery_id = ?", deliveryID).
			First(&delivery).Error
		if err != nil {
			return fmt.Errorf("failed to get webhook delivery: %w", err)
		}

		delivery.AttemptCount++
		delivery.HTTPStatus = outcome.HTTPStatus
		delivery.ErrorMessage = outcome.ErrorMessage
		delivery.UpdatedAt = at

		switch {
		case outcome.Success:
			delivery.Status = schema.WebhookDeliveryStatusSuccess
			delivery.DeliveredAt = &at
			delivery.NextRetryAt = nil
		case delivery.AttemptCount >= delivery.MaxAttempts:
			delivery.Status = schema.WebhookDeliveryStatusFailed
			delivery.NextRetryAt = nil
		default:
			next := at.Add(webhook.RetryBackoff[delivery.AttemptCount-1])
			delivery.Status = schema.WebhookDeliveryStatusPending
			delivery.NextRetryAt = &next
		}

		if err := tx.Save(&delivery).Error; err != nil {
			return fmt.Errorf("failed to update webhook delivery: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &delivery, nil
}

// MarkDeliveryFailed terminally fails a ledger row without counting an attempt
func (s *pgStore) MarkDeliveryFailed(ctx context.Context, deliveryID, errorMessage string) error {
	err := s.db.WithContext(ctx).
		Model(&schema.WebhookDelivery{}).
		Where("delivery_id = ?", deliveryID).
		Updates(map[string]interface{}{
			"status":        schema.WebhookDeliveryStatusFailed,
			"error_message": errorMessage,
			"next_retry_at": nil,
			"updated_at":    time.Now(),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to mark webhook delivery failed: %w", err)
	}

	return nil
}

// ListDueDeliveries retrieves pending deliveries whose next_retry_at has
// passed, oldest first
func (s *pgStore) ListDueDeliveries(ctx context.Context, now time.Time, limit int) ([]*schema.WebhookDelivery, error) {
	var deliveries []*schema.WebhookDelivery
	err := s.db.WithContext(ctx).
		Where("status = ? AND next_retry_at IS NOT NULL AND next_retry_at <= ?",
			schema.WebhookDeliveryStatusPending, now).
		Order("next_retry_at ASC").
		Limit(limit).
		Find(&deliveries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list due deliveries: %w", err)
	}

	return deliveries, nil
}

// ListDeliveriesByWebhook retrieves recent deliveries for a webhook owned by
// userID, newest first. The webhook is looked up user-scoped first so foreign
// webhook IDs yield an empty history rather than leaking rows.
func (s *pgStore) ListDeliveriesByWebhook(ctx context.Context, userID, webhookID string, limit int) ([]*schema.WebhookDelivery, error) {
	if limit <= 0 {
		limit = defaultDeliveryHistoryLimit
	}
	if limit > maxDeliveryHistoryLimit {
		limit = maxDeliveryHistoryLimit
	}

	var deliveries []*schema.WebhookDelivery
	err := s.db.WithContext(ctx).
		Joins("JOIN webhooks ON webhooks.webhook_id = webhook_deliveries.webhook_id").
		Where("webhook_deliveries.webhook_id = ? AND webhooks.user_id = ?", webhookID, userID).
		Order("webhook_deliveries.created_at DESC").
		Limit(limit).
		Find(&deliveries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list webhook deliveries: %w", err)
	}

	return deliveries, nil
}

// UpsertRegistry creates or refreshes a registry keyed by its URL
func (s *pgStore) UpsertRegistry(ctx context.Context, input UpsertRegistryInput) (*schema.Registry, error) {
	registry := schema.Registry{
		Name:        input.Name,
		URL:         input.URL,
		Homepage:    input.Homepage,
		Description: input.Description,
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "url"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "homepage", "description", "updated_at"}),
	}).Create(&registry).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert registry: %w", err)
	}

	// On conflict the insert does not report the existing ID, so fetch it
	if registry.ID == 0 {
		if err := s.db.WithContext(ctx).Where("url = ?", input.URL).First(&registry).Error; err != nil {
			return nil, fmt.Errorf("failed to get upserted registry: %w", err)
		}
	}

	return &registry, nil
}

// ListRegistries retrieves all tracked registries
func (s *pgStore) ListRegistries(ctx context.Context) ([]*schema.Registry, error) {
	var registries []*schema.Registry
	err := s.db.WithContext(ctx).
		Order("id ASC").
		Find(&registries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list registries: %w", err)
	}

	return registries, nil
}

// GetRegistryByID retrieves a registry by its internal ID
func (s *pgStore) GetRegistryByID(ctx context.Context, registryID uint64) (*schema.Registry, error) {
	var registry schema.Registry
	err := s.db.WithContext(ctx).Where("id = ?", registryID).First(&registry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get registry: %w", err)
	}

	return &registry, nil
}

// SetRegistryFeedURL records the discovered feed URL for a registry
func (s *pgStore) SetRegistryFeedURL(ctx context.Context, registryID uint64, feedURL string) error {
	err := s.db.WithContext(ctx).
		Model(&schema.Registry{}).
		Where("id = ?", registryID).
		Updates(map[string]interface{}{
			"feed_url":   feedURL,
			"updated_at": time.Now(),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to set registry feed url: %w", err)
	}

	return nil
}

// InsertNewRSSItems stores feed items for a registry, skipping duplicates on
// (registry_id, guid), and returns only the newly inserted items
func (s *pgStore) InsertNewRSSItems(ctx context.Context, registryID uint64, items []CreateRSSItemInput) ([]*schema.RSSItem, error) {
	if len(items) == 0 {
		return []*schema.RSSItem{}, nil
	}

	rows := make([]schema.RSSItem, 0, len(items))
	for _, item := range items {
		rows = append(rows, schema.RSSItem{
			RegistryID:  registryID,
			GUID:        item.GUID,
			Title:       item.Title,
			Link:        item.Link,
			PubDate:     item.PubDate,
			Description: item.Description,
		})
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "registry_id"}, {Name: "guid"}},
		DoNothing: true,
	}).Clauses(clause.Returning{Columns: []clause.Column{}}).
		Create(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to insert rss items: %w", err)
	}

	// Duplicates keep a zero ID after the conflict-skipping insert
	created := make([]*schema.RSSItem, 0, len(rows))
	for i := range rows {
		if rows[i].ID != 0 {
			created = append(created, &rows[i])
		}
	}

	return created, nil
}

// TouchRegistrySynced stamps last_synced_at and refreshes item_count
func (s *pgStore) TouchRegistrySynced(ctx context.Context, registryID uint64, at time.Time) error {
	err := s.db.WithContext(ctx).
		Model(&schema.Registry{}).
		Where("id = ?", registryID).
		Updates(map[string]interface{}{
			"last_synced_at": at,
			"item_count":     gorm.Expr("(SELECT COUNT(*) FROM rss_items WHERE rss_items.registry_id = ?)", registryID),
			"updated_at":     at,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to touch registry synced: %w", err)
	}

	return nil
}
