package feed

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/mmcdole/gofeed"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/shadrss/registry-watcher/internal/adapter"
	"github.com/shadrss/registry-watcher/internal/logger"
	"github.com/shadrss/registry-watcher/internal/messaging"
	"github.com/shadrss/registry-watcher/internal/store"
	"github.com/shadrss/registry-watcher/internal/store/schema"
	"github.com/shadrss/registry-watcher/internal/webhook"
)

const (
	// DefaultCatalogURL is the upstream catalog of known component registries
	DefaultCatalogURL = "https://raw.githubusercontent.com/shadcn-ui/ui/refs/heads/main/apps/v4/registry/directory.json"

	// DefaultConcurrency bounds how many registries are synced at once
	DefaultConcurrency = 10

	// DiscoveryTimeout bounds each feed-discovery HEAD probe
	DiscoveryTimeout = 2 * time.Second
	// FetchTimeout bounds each feed fetch
	FetchTimeout = 5 * time.Second
)

// DefaultDiscoveryPaths are the candidate feed locations probed under a
// registry's homepage, in priority order
var DefaultDiscoveryPaths = []string{
	"/rss.xml",
	"/feed.xml",
	"/rss",
	"/feed",
	"/atom.xml",
	"/atom",
	"/index.xml",
	"/index.rss",
	"/feed.rss",
	"/rss.rss",
	"/registry/rss",
	"/registry/rss.xml",
	"/registry/feed",
	"/registry/feed.xml",
	"/registry/atom",
	"/registry/atom.xml",
}

// CatalogEntry is one registry in the upstream catalog JSON
type CatalogEntry struct {
	Name        string `json:"name"`
	Homepage    string `json:"homepage"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
}

// Store is the subset of store operations the feed syncer depends on
//
//go:generate go run github.com/golang/mock/mockgen -source=feed.go -destination=../mocks/feed_store.go -package=mocks -mock_names=Store=MockFeedStore
type Store interface {
	UpsertRegistry(ctx context.Context, input store.UpsertRegistryInput) (*schema.Registry, error)
	ListRegistries(ctx context.Context) ([]*schema.Registry, error)
	SetRegistryFeedURL(ctx context.Context, registryID uint64, feedURL string) error
	InsertNewRSSItems(ctx context.Context, registryID uint64, items []store.CreateRSSItemInput) ([]*schema.RSSItem, error)
	TouchRegistrySynced(ctx context.Context, registryID uint64, at time.Time) error
}

// Config holds configuration for the feed syncer
type Config struct {
	CatalogURL     string
	DiscoveryPaths []string
	Concurrency    int
}

// CycleResult summarizes one full sync cycle
type CycleResult struct {
	CycleID     string
	StartedAt   time.Time
	CompletedAt time.Time

	// CatalogSynced is the number of catalog registries upserted
	CatalogSynced int
	// Processed is the number of tracked registries examined
	Processed int
	// WithFeeds is the number of registries with a working feed
	WithFeeds int
	// NewItems is the total number of previously unseen feed items
	NewItems int
	// Errors is the number of registries whose sync failed
	Errors int

	// Updates lists the registries with new items this cycle
	Updates []messaging.RegistryUpdate
}

// Syncer runs sync cycles: refresh the registry catalog, pull every
// registry's feed, diff items against the stored set, and publish one sync
// event covering all registries that changed.
type Syncer struct {
	config    Config
	store     Store
	http      adapter.HTTPClient
	publisher messaging.Publisher
	clock     adapter.Clock
	parser    *gofeed.Parser
	pool      pond.Pool
}

// NewSyncer creates a new feed syncer
func NewSyncer(cfg Config, st Store, httpClient adapter.HTTPClient, publisher messaging.Publisher, clock adapter.Clock) *Syncer {
	if cfg.CatalogURL == "" {
		cfg.CatalogURL = DefaultCatalogURL
	}
	if len(cfg.DiscoveryPaths) == 0 {
		cfg.DiscoveryPaths = DefaultDiscoveryPaths
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConcurrency
	}

	return &Syncer{
		config:    cfg,
		store:     st,
		http:      httpClient,
		publisher: publisher,
		clock:     clock,
		parser:    gofeed.NewParser(),
		pool:      pond.NewPool(cfg.Concurrency),
	}
}

// RunCycle performs one full sync cycle and publishes the resulting updates
// event when at least one registry changed
func (s *Syncer) RunCycle(ctx context.Context) (*CycleResult, error) {
	// ULIDs sort by creation time, so cycle logs line up chronologically
	result := &CycleResult{
		CycleID:   ulid.Make().String(),
		StartedAt: s.clock.Now(),
	}

	synced, err := s.syncCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sync registry catalog: %w", err)
	}
	result.CatalogSynced = synced

	registries, err := s.store.ListRegistries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list registries: %w", err)
	}
	result.Processed = len(registries)

	outcomes := make([]registryOutcome, len(registries))
	group := s.pool.NewGroup()
	for i, registry := range registries {
		i, registry := i, registry
		group.Submit(func() {
			outcomes[i] = s.processRegistry(ctx, registry)
		})
	}
	group.Wait()

	for _, outcome := range outcomes {
		switch {
		case outcome.err != nil:
			result.Errors++
		case outcome.hasFeed:
			result.WithFeeds++
			result.NewItems += len(outcome.newItems)
			if len(outcome.newItems) > 0 {
				result.Updates = append(result.Updates, messaging.RegistryUpdate{
					RegistryID: outcome.registryID,
					Items:      outcome.newItems,
				})
			}
		}
	}

	result.CompletedAt = s.clock.Now()

	if len(result.Updates) > 0 && s.publisher != nil {
		event := &messaging.SyncCycleEvent{
			CycleID:     result.CycleID,
			EventType:   messaging.SyncEventCycleCompleted,
			StartedAt:   result.StartedAt,
			CompletedAt: result.CompletedAt,
			Updates:     result.Updates,
		}
		if err := s.publisher.PublishSyncCycle(ctx, event); err != nil {
			return nil, fmt.Errorf("failed to publish sync cycle event: %w", err)
		}
	}

	logger.InfoCtx(ctx, "Sync cycle completed",
		zap.String("cycle_id", result.CycleID),
		zap.Int("catalog_synced", result.CatalogSynced),
		zap.Int("processed", result.Processed),
		zap.Int("with_feeds", result.WithFeeds),
		zap.Int("new_items", result.NewItems),
		zap.Int("errors", result.Errors),
	)

	return result, nil
}

// syncCatalog refreshes the tracked registries from the upstream catalog
func (s *Syncer) syncCatalog(ctx context.Context) (int, error) {
	var entries []CatalogEntry
	if err := s.http.Get(ctx, s.config.CatalogURL, &entries); err != nil {
		return 0, err
	}

	synced := 0
	for _, entry := range entries {
		if entry.URL == "" {
			continue
		}
		_, err := s.store.UpsertRegistry(ctx, store.UpsertRegistryInput{
			Name:        entry.Name,
			URL:         entry.URL,
			Homepage:    entry.Homepage,
			Description: entry.Description,
		})
		if err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Failed to upsert registry"), zap.String("name", entry.Name))
			continue
		}
		synced++
	}

	return synced, nil
}

type registryOutcome struct {
	registryID uint64
	hasFeed    bool
	newItems   []webhook.Item
	err        error
}

// processRegistry syncs a single registry's feed and reports which items are
// new since the previous cycle
func (s *Syncer) processRegistry(ctx context.Context, registry *schema.Registry) registryOutcome {
	outcome := registryOutcome{registryID: registry.ID}

	base := registry.Homepage
	if base == "" {
		base = registry.URL
	}
	if base == "" {
		s.touch(ctx, registry.ID)
		return outcome
	}

	feedURL := registry.FeedURL
	discovered := false
	if feedURL == "" {
		feedURL = s.discoverFeedURL(ctx, base)
		discovered = feedURL != ""
	}
	if feedURL == "" {
		s.touch(ctx, registry.ID)
		return outcome
	}

	parsed, err := s.fetchFeed(ctx, feedURL)
	if err != nil {
		// A previously working feed that stopped parsing is re-discovered on
		// the next cycle
		if clearErr := s.store.SetRegistryFeedURL(ctx, registry.ID, ""); clearErr != nil {
			logger.ErrorCtx(ctx, clearErr, zap.String("message", "Failed to clear feed URL"), zap.Uint64("registry_id", registry.ID))
		}
		s.touch(ctx, registry.ID)
		return outcome
	}

	if discovered {
		if err := s.store.SetRegistryFeedURL(ctx, registry.ID, feedURL); err != nil {
			outcome.err = err
			return outcome
		}
	}

	inputs := make([]store.CreateRSSItemInput, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		guid := item.GUID
		if guid == "" {
			guid = item.Link
		}
		if guid == "" {
			continue
		}
		inputs = append(inputs, store.CreateRSSItemInput{
			GUID:        guid,
			Title:       item.Title,
			Link:        item.Link,
			PubDate:     item.PublishedParsed,
			Description: item.Description,
		})
	}

	inserted, err := s.store.InsertNewRSSItems(ctx, registry.ID, inputs)
	if err != nil {
		outcome.err = err
		return outcome
	}

	s.touch(ctx, registry.ID)

	outcome.hasFeed = true
	for _, item := range inserted {
		outcome.newItems = append(outcome.newItems, itemForPayload(item))
	}

	return outcome
}

// discoverFeedURL probes the candidate feed paths under base and returns the
// first one that answers a HEAD request with a 2xx status
func (s *Syncer) discoverFeedURL(ctx context.Context, base string) string {
	base = strings.TrimRight(base, "/")
	for _, path := range s.config.DiscoveryPaths {
		candidate := base + "/" + strings.TrimLeft(path, "/")

		probeCtx, cancel := context.WithTimeout(ctx, DiscoveryTimeout)
		resp, err := s.http.Head(probeCtx, candidate)
		cancel()
		if err != nil {
			continue
		}
		_ = resp.Body.Close()
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return candidate
		}
	}
	return ""
}

// fetchFeed downloads and parses a feed
func (s *Syncer) fetchFeed(ctx context.Context, feedURL string) (*gofeed.Feed, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, FetchTimeout)
	defer cancel()

	body, err := s.http.GetRaw(fetchCtx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	parsed, err := s.parser.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	return parsed, nil
}

func (s *Syncer) touch(ctx context.Context, registryID uint64) {
	if err := s.store.TouchRegistrySynced(ctx, registryID, s.clock.Now()); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to stamp registry sync"), zap.Uint64("registry_id", registryID))
	}
}

// itemForPayload converts a stored feed item into its payload form
func itemForPayload(item *schema.RSSItem) webhook.Item {
	payloadItem := webhook.Item{
		Title:       item.Title,
		Link:        item.Link,
		Description: item.Description,
	}
	if item.PubDate != nil {
		payloadItem.PubDate = item.PubDate.UTC().Format(time.RFC3339)
	}
	return payloadItem
}
