package sweeper

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/shadrss/registry-watcher/internal/adapter"
	"github.com/shadrss/registry-watcher/internal/logger"
	"github.com/shadrss/registry-watcher/internal/store/schema"
	"github.com/shadrss/registry-watcher/internal/webhook"
)

const (
	// DefaultSweepInterval is the pause between retry sweeps
	DefaultSweepInterval = time.Minute
	// DefaultSweepBatchSize caps how many due deliveries one sweep picks up
	DefaultSweepBatchSize = 100

	// errWebhookGone is recorded on deliveries whose webhook was deleted or
	// paused between the original attempt and the retry
	errWebhookGone = "Webhook not found or paused"
)

// SweepResult summarizes one retry sweep
type SweepResult struct {
	// Processed is the number of due deliveries examined
	Processed int
	// Succeeded is the number of deliveries that reached their receiver
	Succeeded int
	// Rescheduled is the number of deliveries that stay pending for a later
	// sweep, whether another attempt was scheduled or the attempt could not
	// be recorded
	Rescheduled int
	// Failed is the number of deliveries that failed terminally
	Failed int
}

// Store is the subset of store operations the retry sweeper depends on
type Store interface {
	ListDueDeliveries(ctx context.Context, now time.Time, limit int) ([]*schema.WebhookDelivery, error)
	GetWebhookByID(ctx context.Context, webhookID string) (*schema.Webhook, error)
	ApplyDeliveryOutcome(ctx context.Context, deliveryID string, outcome webhook.Outcome, at time.Time) (*schema.WebhookDelivery, error)
	MarkDeliveryFailed(ctx context.Context, deliveryID, errorMessage string) error
	UpdateWebhookHealth(ctx context.Context, webhookID string, success bool, errorMessage string, at time.Time) error
}

// RetrySweeperConfig holds configuration for the webhook retry sweeper
type RetrySweeperConfig struct {
	Interval  time.Duration // Pause between sweeps
	BatchSize int           // Due deliveries per sweep
}

// RetrySweeper re-attempts pending webhook deliveries whose retry window has
// opened. Sweeps run strictly sequentially; overlapping ticks are skipped.
type RetrySweeper struct {
	config    RetrySweeperConfig
	store     Store
	sender    webhook.Sender
	clock     adapter.Clock
	json      adapter.JSON
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

var _ Sweeper = (*RetrySweeper)(nil)

// NewRetrySweeper creates a new webhook retry sweeper
func NewRetrySweeper(config RetrySweeperConfig, st Store, sender webhook.Sender, clock adapter.Clock, jsonAdapter adapter.JSON) *RetrySweeper {
	if config.Interval <= 0 {
		config.Interval = DefaultSweepInterval
	}
	if config.BatchSize <= 0 {
		config.BatchSize = DefaultSweepBatchSize
	}

	return &RetrySweeper{
		config:    config,
		store:     st,
		sender:    sender,
		clock:     clock,
		json:      jsonAdapter,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *RetrySweeper) Name() string {
	return "webhook-retry-sweeper"
}

// Start begins the sweeper's main loop. One sweep runs immediately; further
// sweeps are scheduled on the configured interval. A tick that arrives while
// the previous sweep is still running is skipped rather than queued, so
// sweeps never overlap.
func (s *RetrySweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting webhook retry sweeper",
		zap.Duration("interval", s.config.Interval),
		zap.Int("batch_size", s.config.BatchSize),
	)

	if _, err := s.RunOnce(ctx); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Retry sweep failed"))
	}

	c := cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DiscardLogger),
	))
	c.Schedule(cron.Every(s.config.Interval), cron.FuncJob(func() {
		if _, err := s.RunOnce(ctx); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Retry sweep failed"))
		}
	}))
	c.Start()

	select {
	case <-ctx.Done():
		logger.InfoCtx(ctx, "Webhook retry sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
	case <-s.stopChan:
		logger.InfoCtx(ctx, "Webhook retry sweeper stop requested")
	}

	// Wait for an in-flight sweep to finish before returning
	<-c.Stop().Done()
	return nil
}

// Stop gracefully stops the sweeper with timeout support
func (s *RetrySweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping webhook retry sweeper")
	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Webhook retry sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Webhook retry sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// RunOnce performs a single retry sweep: it picks up due deliveries, oldest
// first, and re-attempts them one at a time
func (s *RetrySweeper) RunOnce(ctx context.Context) (SweepResult, error) {
	var result SweepResult
	now := s.clock.Now()

	deliveries, err := s.store.ListDueDeliveries(ctx, now, s.config.BatchSize)
	if err != nil {
		return result, fmt.Errorf("failed to list due deliveries: %w", err)
	}
	if len(deliveries) == 0 {
		return result, nil
	}

	logger.InfoCtx(ctx, "Retrying due webhook deliveries", zap.Int("count", len(deliveries)))

	for _, delivery := range deliveries {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		result.Processed++
		switch s.retryOne(ctx, delivery) {
		case schema.WebhookDeliveryStatusSuccess:
			result.Succeeded++
		case schema.WebhookDeliveryStatusFailed:
			result.Failed++
		default:
			result.Rescheduled++
		}
	}

	logger.InfoCtx(ctx, "Retry sweep completed",
		zap.Int("processed", result.Processed),
		zap.Int("succeeded", result.Succeeded),
		zap.Int("rescheduled", result.Rescheduled),
		zap.Int("failed", result.Failed),
	)

	return result, nil
}

// retryOne re-attempts a single delivery and returns the delivery's state
// after the attempt. Deliveries whose webhook was deleted or paused fail
// terminally without a network call and without counting an attempt.
func (s *RetrySweeper) retryOne(ctx context.Context, delivery *schema.WebhookDelivery) schema.WebhookDeliveryStatus {
	wh, err := s.store.GetWebhookByID(ctx, delivery.WebhookID)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to load webhook for retry"), zap.String("delivery_id", delivery.DeliveryID))
		return schema.WebhookDeliveryStatusPending
	}
	if wh == nil || !wh.Active {
		if err := s.store.MarkDeliveryFailed(ctx, delivery.DeliveryID, errWebhookGone); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Failed to mark delivery failed"), zap.String("delivery_id", delivery.DeliveryID))
		}
		return schema.WebhookDeliveryStatusFailed
	}

	// Resend the stored payload bytes unchanged, with the header timestamp
	// mirroring the payload's own, so a retried request is bit-identical to
	// the original
	outcome := s.sender.Send(ctx, webhook.Endpoint{
		WebhookID: wh.WebhookID,
		URL:       wh.URL,
		Secret:    wh.Secret,
	}, []byte(delivery.Payload), webhook.EventType(delivery.Event), s.payloadTimestamp(delivery))

	now := s.clock.Now()
	updated, err := s.store.ApplyDeliveryOutcome(ctx, delivery.DeliveryID, outcome, now)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to record retry outcome"), zap.String("delivery_id", delivery.DeliveryID))
	}
	if err := s.store.UpdateWebhookHealth(ctx, wh.WebhookID, outcome.Success, outcome.ErrorMessage, now); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to update webhook health"), zap.String("webhook_id", wh.WebhookID))
	}

	if updated != nil {
		return updated.Status
	}
	if outcome.Success {
		return schema.WebhookDeliveryStatusSuccess
	}
	return schema.WebhookDeliveryStatusPending
}

// payloadTimestamp recovers the timestamp field from the stored payload.
// Falls back to the attempt time for a payload that cannot be decoded.
func (s *RetrySweeper) payloadTimestamp(delivery *schema.WebhookDelivery) string {
	var envelope struct {
		Timestamp string `json:"timestamp"`
	}
	if err := s.json.Unmarshal([]byte(delivery.Payload), &envelope); err != nil || envelope.Timestamp == "" {
		return webhook.Timestamp(s.clock.Now())
	}
	return envelope.Timestamp
}
