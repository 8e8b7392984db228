package bridge

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/shadrss/registry-watcher/internal/adapter"
	"github.com/shadrss/registry-watcher/internal/logger"
	"github.com/shadrss/registry-watcher/internal/messaging"
	"github.com/shadrss/registry-watcher/internal/notifier"
	"github.com/shadrss/registry-watcher/internal/webhook"
)

// Config holds the configuration for the sync event bridge
type Config struct {
	URL            string
	StreamName     string
	ConsumerName   string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	AckWaitTimeout time.Duration
	MaxDeliver     int
}

// Bridge defines the interface for the sync event bridge
type Bridge interface {
	// Run starts the event bridge
	Run(ctx context.Context) error
	// Close closes the bridge and cleans up resources
	Close()
}

type bridge struct {
	nc       adapter.NatsConn
	js       adapter.JetStream
	notifier notifier.Notifier
	json     adapter.JSON
	config   Config
}

// NewBridge creates a new sync event bridge. It consumes sync cycle events
// from JetStream and fans each one out to subscribed webhooks.
func NewBridge(
	cfg Config,
	natsJS adapter.NatsJetStream,
	n notifier.Notifier,
	jsonAdapter adapter.JSON,
) (Bridge, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	return &bridge{
		nc:       nc,
		js:       js,
		notifier: n,
		json:     jsonAdapter,
		config:   cfg,
	}, nil
}

// Run starts the event bridge
func (b *bridge) Run(ctx context.Context) error {
	logger.InfoCtx(ctx, "Starting sync event bridge",
		zap.String("stream", b.config.StreamName),
		zap.String("consumer", b.config.ConsumerName),
	)

	consumerConfig := jetstream.ConsumerConfig{
		Durable:       b.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       b.config.AckWaitTimeout,
		MaxDeliver:    b.config.MaxDeliver,
		FilterSubject: "sync.>",
	}

	consumer, err := b.js.CreateOrUpdateConsumer(ctx, b.config.StreamName, consumerConfig)
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	consumerInfo, err := consumer.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to get consumer info: %w", err)
	}
	logger.InfoCtx(ctx, "Consumer created/retrieved", zap.String("consumer", consumerInfo.Name))

	msgChan := make(chan adapter.Message, 100)
	sub, err := consumer.Consume(func(msg adapter.Message) {
		msgChan <- msg
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	logger.InfoCtx(ctx, "Started consuming messages")

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Shutting down sync event bridge")
			return ctx.Err()
		case msg := <-msgChan:
			go b.handleMessage(ctx, msg)
		}
	}
}

// handleMessage processes a single NATS message
func (b *bridge) handleMessage(ctx context.Context, msg adapter.Message) {
	metadata, _ := msg.Metadata()

	var event messaging.SyncCycleEvent
	if err := b.json.Unmarshal(msg.Data(), &event); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to unmarshal sync event"))
		// Terminate message for unparseable data
		if err := msg.Term(); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Failed to terminate message"))
		}
		return
	}

	deliveredCount := uint64(0)
	if metadata != nil {
		deliveredCount = metadata.NumDelivered
	}
	logger.InfoCtx(ctx, "Received sync cycle event",
		zap.String("cycle_id", event.CycleID),
		zap.Int("updates", len(event.Updates)),
		zap.Uint64("deliveryCount", deliveredCount),
	)

	if err := b.dispatch(ctx, &event); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to dispatch sync cycle event"))
		// NAK to retry
		if err := msg.Nak(); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Failed to NAK message"))
		}
		return
	}

	// ACK message after successful processing
	if err := msg.Ack(); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to ACK message"))
	}
}

// dispatch fans a sync cycle out to webhooks. A cycle with one changed
// registry becomes a single-registry payload; a cycle with several becomes
// one batched payload per webhook.
func (b *bridge) dispatch(ctx context.Context, event *messaging.SyncCycleEvent) error {
	if len(event.Updates) == 0 {
		return nil
	}

	var (
		results []webhook.DeliveryResult
		err     error
	)
	if len(event.Updates) == 1 {
		update := event.Updates[0]
		results, err = b.notifier.Notify(ctx, update.RegistryID, update.Items)
	} else {
		updates := make([]notifier.SourceUpdate, 0, len(event.Updates))
		for _, update := range event.Updates {
			updates = append(updates, notifier.SourceUpdate{
				RegistryID: update.RegistryID,
				Items:      update.Items,
			})
		}
		results, err = b.notifier.NotifyBatch(ctx, updates)
	}
	if err != nil {
		return fmt.Errorf("failed to notify webhooks: %w", err)
	}

	succeeded, failed := 0, 0
	for _, r := range results {
		if r.Success {
			succeeded++
		} else {
			failed++
		}
	}

	logger.InfoCtx(ctx, "Sync cycle event dispatched",
		zap.String("cycle_id", event.CycleID),
		zap.Int("succeeded", succeeded),
		zap.Int("failed", failed),
	)

	return nil
}

// Close closes the bridge and cleans up resources
func (b *bridge) Close() {
	if b.nc == nil {
		return
	}

	b.nc.Close()
}
