package notifier

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/shadrss/registry-watcher/internal/adapter"
	"github.com/shadrss/registry-watcher/internal/logger"
	"github.com/shadrss/registry-watcher/internal/store"
	"github.com/shadrss/registry-watcher/internal/store/schema"
	"github.com/shadrss/registry-watcher/internal/webhook"
)

// DefaultMaxConcurrency caps how many deliveries run in parallel during fan-out
const DefaultMaxConcurrency = 10

var (
	// ErrWebhookNotFound is returned by SendTest when the webhook does not
	// exist or belongs to another user
	ErrWebhookNotFound = errors.New("webhook not found")
	// ErrRegistryNotFound is returned by Notify when the registry is unknown
	ErrRegistryNotFound = errors.New("registry not found")
)

// SourceUpdate is one registry's changes within a sync cycle
type SourceUpdate struct {
	RegistryID uint64
	Items      []webhook.Item
}

// Store is the subset of store operations the notifier depends on
//
//go:generate go run github.com/golang/mock/mockgen -source=notifier.go -destination=../mocks/notifier_store.go -package=mocks -mock_names=Store=MockNotifierStore,Notifier=MockNotifier
type Store interface {
	GetRegistryByID(ctx context.Context, registryID uint64) (*schema.Registry, error)
	GetWebhook(ctx context.Context, userID, webhookID string) (*schema.Webhook, error)
	GetActiveWebhooksForRegistry(ctx context.Context, registryID uint64) ([]*schema.Webhook, error)
	GetActiveWebhooksForRegistries(ctx context.Context, registryIDs []uint64) ([]*schema.Webhook, error)
	CreateWebhookDelivery(ctx context.Context, input store.CreateWebhookDeliveryInput) (*schema.WebhookDelivery, error)
	ApplyDeliveryOutcome(ctx context.Context, deliveryID string, outcome webhook.Outcome, at time.Time) (*schema.WebhookDelivery, error)
	UpdateWebhookHealth(ctx context.Context, webhookID string, success bool, errorMessage string, at time.Time) error
}

// Notifier fans out webhook deliveries for registry changes
type Notifier interface {
	// Notify delivers a single-registry payload to every matching webhook
	Notify(ctx context.Context, registryID uint64, items []webhook.Item) ([]webhook.DeliveryResult, error)
	// NotifyBatch delivers one batched payload per webhook covering several
	// registries, trimmed to each webhook's subscription set
	NotifyBatch(ctx context.Context, updates []SourceUpdate) ([]webhook.DeliveryResult, error)
	// SendTest delivers a synthetic test payload to a single webhook owned by
	// userID, regardless of its paused state
	SendTest(ctx context.Context, userID, webhookID string) (*webhook.DeliveryResult, error)
}

type notifier struct {
	store  Store
	sender webhook.Sender
	clock  adapter.Clock
	json   adapter.JSON
	pool   pond.Pool
}

// New creates a Notifier with the default fan-out concurrency
func New(st Store, sender webhook.Sender) Notifier {
	return NewWithAdapters(st, sender, &adapter.RealClock{}, &adapter.RealJSON{}, DefaultMaxConcurrency)
}

// NewWithAdapters creates a Notifier with injected adapters, for tests
func NewWithAdapters(st Store, sender webhook.Sender, clock adapter.Clock, jsonAdapter adapter.JSON, maxConcurrency int) Notifier {
	if maxConcurrency <= 0 {
		maxConcurrency = DefaultMaxConcurrency
	}
	return &notifier{
		store:  st,
		sender: sender,
		clock:  clock,
		json:   jsonAdapter,
		pool:   pond.NewPool(maxConcurrency),
	}
}

// Notify delivers a single-registry payload to every matching webhook
func (n *notifier) Notify(ctx context.Context, registryID uint64, items []webhook.Item) ([]webhook.DeliveryResult, error) {
	registry, err := n.store.GetRegistryByID(ctx, registryID)
	if err != nil {
		return nil, err
	}
	if registry == nil {
		return nil, ErrRegistryNotFound
	}

	resolved, err := n.store.GetActiveWebhooksForRegistry(ctx, registryID)
	if err != nil {
		return nil, err
	}
	webhooks := make([]*schema.Webhook, 0, len(resolved))
	for _, wh := range resolved {
		if wh.SubscribesTo(registryID) {
			webhooks = append(webhooks, wh)
		}
	}
	if len(webhooks) == 0 {
		return []webhook.DeliveryResult{}, nil
	}

	now := n.clock.Now()
	payload := webhook.NewPayload(now, snapshot(registry), items)
	body, err := n.json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	logger.InfoCtx(ctx, "Fanning out webhook deliveries",
		zap.Uint64("registry_id", registryID),
		zap.String("event", string(payload.Event)),
		zap.Int("webhooks", len(webhooks)))

	return n.fanOut(ctx, webhooks, func(wh *schema.Webhook) ([]byte, webhook.EventType) {
		return body, payload.Event
	}, payload.Timestamp), nil
}

// NotifyBatch delivers one batched payload per webhook. Each webhook's payload
// carries only the registries in its subscription set; webhooks whose set
// intersects nothing are skipped without a ledger row.
func (n *notifier) NotifyBatch(ctx context.Context, updates []SourceUpdate) ([]webhook.DeliveryResult, error) {
	if len(updates) == 0 {
		return []webhook.DeliveryResult{}, nil
	}

	registryIDs := make([]uint64, 0, len(updates))
	registries := make(map[uint64]*schema.Registry, len(updates))
	for _, update := range updates {
		registry, err := n.store.GetRegistryByID(ctx, update.RegistryID)
		if err != nil {
			return nil, err
		}
		if registry == nil {
			continue
		}
		registryIDs = append(registryIDs, update.RegistryID)
		registries[update.RegistryID] = registry
	}
	if len(registryIDs) == 0 {
		return []webhook.DeliveryResult{}, nil
	}

	webhooks, err := n.store.GetActiveWebhooksForRegistries(ctx, registryIDs)
	if err != nil {
		return nil, err
	}
	if len(webhooks) == 0 {
		return []webhook.DeliveryResult{}, nil
	}

	now := n.clock.Now()
	timestamp := webhook.Timestamp(now)

	// Pre-build each webhook's payload so marshal errors surface before any
	// delivery starts
	type job struct {
		wh    *schema.Webhook
		body  []byte
		event webhook.EventType
	}
	jobs := make([]job, 0, len(webhooks))
	for _, wh := range webhooks {
		entries := entriesFor(wh, updates, registries)
		if len(entries) == 0 {
			continue
		}
		payload := webhook.NewBatchPayload(now, entries)
		body, err := n.json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal payload: %w", err)
		}
		jobs = append(jobs, job{wh: wh, body: body, event: payload.Event})
	}
	if len(jobs) == 0 {
		return []webhook.DeliveryResult{}, nil
	}

	logger.InfoCtx(ctx, "Fanning out batched webhook deliveries",
		zap.Int("registries", len(registryIDs)),
		zap.Int("webhooks", len(jobs)))

	results := make([]webhook.DeliveryResult, len(jobs))
	group := n.pool.NewGroup()
	for i := range jobs {
		i := i
		group.Submit(func() {
			results[i] = n.deliver(ctx, jobs[i].wh, jobs[i].event, jobs[i].body, timestamp)
		})
	}
	_ = group.Wait()

	return results, nil
}

// SendTest delivers a synthetic test payload to a single webhook
func (n *notifier) SendTest(ctx context.Context, userID, webhookID string) (*webhook.DeliveryResult, error) {
	wh, err := n.store.GetWebhook(ctx, userID, webhookID)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, ErrWebhookNotFound
	}

	now := n.clock.Now()
	payload := webhook.NewTestPayload(now, wh.WebhookID)
	body, err := n.json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	result := n.deliver(ctx, wh, payload.Event, body, payload.Timestamp)
	return &result, nil
}

// fanOut runs one delivery per webhook concurrently, capped by the pool size,
// and returns results in webhook order
func (n *notifier) fanOut(ctx context.Context, webhooks []*schema.Webhook, payloadFor func(*schema.Webhook) ([]byte, webhook.EventType), timestamp string) []webhook.DeliveryResult {
	results := make([]webhook.DeliveryResult, len(webhooks))
	group := n.pool.NewGroup()
	for i, wh := range webhooks {
		i, wh := i, wh
		group.Submit(func() {
			body, event := payloadFor(wh)
			results[i] = n.deliver(ctx, wh, event, body, timestamp)
		})
	}
	_ = group.Wait()

	return results
}

// deliver runs the full per-webhook delivery sequence: ledger row, single
// send attempt, outcome recording, health update
func (n *notifier) deliver(ctx context.Context, wh *schema.Webhook, event webhook.EventType, body []byte, timestamp string) webhook.DeliveryResult {
	delivery, err := n.store.CreateWebhookDelivery(ctx, store.CreateWebhookDeliveryInput{
		WebhookID: wh.WebhookID,
		Event:     event,
		Payload:   body,
	})
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to create delivery ledger row"), zap.String("webhook_id", wh.WebhookID))
		return webhook.DeliveryResult{
			WebhookID:    wh.WebhookID,
			Success:      false,
			ErrorMessage: err.Error(),
		}
	}

	outcome := n.sender.Send(ctx, webhook.Endpoint{
		WebhookID: wh.WebhookID,
		URL:       wh.URL,
		Secret:    wh.Secret,
	}, body, event, timestamp)

	now := n.clock.Now()
	if _, err := n.store.ApplyDeliveryOutcome(ctx, delivery.DeliveryID, outcome, now); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to record delivery outcome"), zap.String("delivery_id", delivery.DeliveryID))
	}
	if err := n.store.UpdateWebhookHealth(ctx, wh.WebhookID, outcome.Success, outcome.ErrorMessage, now); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to update webhook health"), zap.String("webhook_id", wh.WebhookID))
	}

	if !outcome.Success {
		logger.WarnCtx(ctx, "Webhook delivery attempt failed",
			zap.String("webhook_id", wh.WebhookID),
			zap.String("delivery_id", delivery.DeliveryID),
			zap.String("error", outcome.ErrorMessage))
	}

	return webhook.DeliveryResult{
		WebhookID:    wh.WebhookID,
		Success:      outcome.Success,
		HTTPStatus:   outcome.HTTPStatus,
		ErrorMessage: outcome.ErrorMessage,
	}
}

// entriesFor trims a cycle's updates down to one webhook's subscription set
func entriesFor(wh *schema.Webhook, updates []SourceUpdate, registries map[uint64]*schema.Registry) []webhook.SourceEntry {
	entries := make([]webhook.SourceEntry, 0, len(updates))
	for _, update := range updates {
		registry, ok := registries[update.RegistryID]
		if !ok || !wh.SubscribesTo(update.RegistryID) {
			continue
		}
		entries = append(entries, webhook.SourceEntry{
			Registry: snapshot(registry),
			Items:    update.Items,
		})
	}
	return entries
}

func snapshot(registry *schema.Registry) webhook.RegistrySnapshot {
	return webhook.RegistrySnapshot{
		ID:       registry.ID,
		Name:     registry.Name,
		URL:      registry.URL,
		Homepage: registry.Homepage,
	}
}
