package store

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadrss/registry-watcher/internal/store/schema"
	"github.com/shadrss/registry-watcher/internal/types"
	"github.com/shadrss/registry-watcher/internal/webhook"
)

// =============================================================================
// Test Data Builders
// =============================================================================

// buildTestRegistry creates a registry input with a unique URL
func buildTestRegistry(name string) UpsertRegistryInput {
	return UpsertRegistryInput{
		Name:        name,
		URL:         fmt.Sprintf("https://%s.example.com/r/registry.json", name),
		Homepage:    fmt.Sprintf("https://%s.example.com", name),
		Description: "test registry",
	}
}

// mustCreateRegistry upserts a registry and returns its ID
func mustCreateRegistry(t *testing.T, store Store, name string) uint64 {
	registry, err := store.UpsertRegistry(context.Background(), buildTestRegistry(name))
	require.NoError(t, err)
	require.NotZero(t, registry.ID)
	return registry.ID
}

// mustCreateWebhook registers a webhook and returns it
func mustCreateWebhook(t *testing.T, store Store, userID string, registryIDs []uint64) string {
	wh, err := store.CreateWebhook(context.Background(), CreateWebhookInput{
		UserID:      userID,
		URL:         "https://hooks.example.com/receiver",
		Secret:      types.StringPtr("s3cr3t"),
		RegistryIDs: registryIDs,
	})
	require.NoError(t, err)
	require.NotNil(t, wh)
	return wh.WebhookID
}

// =============================================================================
// Test: Webhook registry
// =============================================================================

func testCreateWebhook(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("creates webhook with generated id", func(t *testing.T) {
		wh, err := store.CreateWebhook(ctx, CreateWebhookInput{
			UserID: "user-1",
			URL:    "https://hooks.example.com/a",
		})
		require.NoError(t, err)
		require.NotNil(t, wh)
		assert.True(t, strings.HasPrefix(wh.WebhookID, "whk_"))
		assert.Len(t, wh.WebhookID, 36)
		assert.True(t, wh.Active)
		assert.Equal(t, schema.WebhookStatusPending, wh.Status)
		assert.Zero(t, wh.FailureCount)
		assert.Empty(t, wh.Subscriptions)
	})

	t.Run("creates webhook with subscriptions", func(t *testing.T) {
		reg1 := mustCreateRegistry(t, store, "sub-a")
		reg2 := mustCreateRegistry(t, store, "sub-b")

		wh, err := store.CreateWebhook(ctx, CreateWebhookInput{
			UserID:      "user-1",
			URL:         "https://hooks.example.com/b",
			Secret:      types.StringPtr("topsecret"),
			RegistryIDs: []uint64{reg1, reg2},
		})
		require.NoError(t, err)
		require.NotNil(t, wh)
		assert.ElementsMatch(t, []uint64{reg1, reg2}, wh.RegistryIDs())
	})

	t.Run("rejects unknown registry ids", func(t *testing.T) {
		reg := mustCreateRegistry(t, store, "sub-c")

		_, err := store.CreateWebhook(ctx, CreateWebhookInput{
			UserID:      "user-1",
			URL:         "https://hooks.example.com/c",
			RegistryIDs: []uint64{reg, 999999999},
		})
		assert.ErrorIs(t, err, ErrUnknownRegistry)

		// Nothing was created for the failed request
		webhooks, err := store.ListWebhooks(ctx, "user-1")
		require.NoError(t, err)
		for _, wh := range webhooks {
			assert.NotEqual(t, "https://hooks.example.com/c", wh.URL)
		}
	})
}

func testGetWebhook(t *testing.T, store Store) {
	ctx := context.Background()
	webhookID := mustCreateWebhook(t, store, "owner", nil)

	t.Run("returns webhook for owner", func(t *testing.T) {
		wh, err := store.GetWebhook(ctx, "owner", webhookID)
		require.NoError(t, err)
		require.NotNil(t, wh)
		assert.Equal(t, webhookID, wh.WebhookID)
	})

	t.Run("returns nil for other user", func(t *testing.T) {
		wh, err := store.GetWebhook(ctx, "intruder", webhookID)
		require.NoError(t, err)
		assert.Nil(t, wh)
	})

	t.Run("returns nil for missing id", func(t *testing.T) {
		wh, err := store.GetWebhook(ctx, "owner", "whk_does_not_exist")
		require.NoError(t, err)
		assert.Nil(t, wh)
	})
}

func testListWebhooks(t *testing.T, store Store) {
	ctx := context.Background()
	mustCreateWebhook(t, store, "lister", nil)
	mustCreateWebhook(t, store, "lister", nil)
	mustCreateWebhook(t, store, "someone-else", nil)

	webhooks, err := store.ListWebhooks(ctx, "lister")
	require.NoError(t, err)
	assert.Len(t, webhooks, 2)
	for _, wh := range webhooks {
		assert.Equal(t, "lister", wh.UserID)
	}

	empty, err := store.ListWebhooks(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func testUpdateWebhook(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("applies partial updates", func(t *testing.T) {
		webhookID := mustCreateWebhook(t, store, "owner", nil)

		wh, err := store.UpdateWebhook(ctx, "owner", webhookID, UpdateWebhookInput{
			URL:    types.StringPtr("https://hooks.example.com/moved"),
			Active: boolPtr(false),
		})
		require.NoError(t, err)
		require.NotNil(t, wh)
		assert.Equal(t, "https://hooks.example.com/moved", wh.URL)
		assert.False(t, wh.Active)
		// Secret untouched
		require.NotNil(t, wh.Secret)
		assert.Equal(t, "s3cr3t", *wh.Secret)
	})

	t.Run("replaces subscription set", func(t *testing.T) {
		reg1 := mustCreateRegistry(t, store, "upd-a")
		reg2 := mustCreateRegistry(t, store, "upd-b")
		webhookID := mustCreateWebhook(t, store, "owner", []uint64{reg1})

		newSet := []uint64{reg2}
		wh, err := store.UpdateWebhook(ctx, "owner", webhookID, UpdateWebhookInput{
			RegistryIDs: &newSet,
		})
		require.NoError(t, err)
		require.NotNil(t, wh)
		assert.Equal(t, []uint64{reg2}, wh.RegistryIDs())
	})

	t.Run("clears subscription set with empty slice", func(t *testing.T) {
		reg := mustCreateRegistry(t, store, "upd-c")
		webhookID := mustCreateWebhook(t, store, "owner", []uint64{reg})

		emptySet := []uint64{}
		wh, err := store.UpdateWebhook(ctx, "owner", webhookID, UpdateWebhookInput{
			RegistryIDs: &emptySet,
		})
		require.NoError(t, err)
		require.NotNil(t, wh)
		assert.Empty(t, wh.Subscriptions)
	})

	t.Run("rejects unknown registry ids", func(t *testing.T) {
		webhookID := mustCreateWebhook(t, store, "owner", nil)

		badSet := []uint64{999999999}
		_, err := store.UpdateWebhook(ctx, "owner", webhookID, UpdateWebhookInput{
			RegistryIDs: &badSet,
		})
		assert.ErrorIs(t, err, ErrUnknownRegistry)
	})

	t.Run("returns nil for other user", func(t *testing.T) {
		webhookID := mustCreateWebhook(t, store, "owner", nil)

		wh, err := store.UpdateWebhook(ctx, "intruder", webhookID, UpdateWebhookInput{
			URL: types.StringPtr("https://evil.example.com"),
		})
		require.NoError(t, err)
		assert.Nil(t, wh)

		// Unchanged for the owner
		original, err := store.GetWebhook(ctx, "owner", webhookID)
		require.NoError(t, err)
		require.NotNil(t, original)
		assert.Equal(t, "https://hooks.example.com/receiver", original.URL)
	})
}

func testDeleteWebhook(t *testing.T, store Store) {
	ctx := context.Background()
	reg := mustCreateRegistry(t, store, "del-a")
	webhookID := mustCreateWebhook(t, store, "owner", []uint64{reg})

	t.Run("other user cannot delete", func(t *testing.T) {
		deleted, err := store.DeleteWebhook(ctx, "intruder", webhookID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("owner deletes webhook, subscriptions, and ledger rows", func(t *testing.T) {
		// Leave a pending delivery due for retry behind the webhook
		delivery, err := store.CreateWebhookDelivery(ctx, CreateWebhookDeliveryInput{
			WebhookID: webhookID,
			Event:     webhook.EventRegistryUpdated,
			Payload:   []byte(`{"event":"registry.updated","timestamp":"2025-01-15T10:00:00Z","data":{}}`),
		})
		require.NoError(t, err)
		now := time.Now().UTC()
		status := 500
		_, err = store.ApplyDeliveryOutcome(ctx, delivery.DeliveryID, webhook.Outcome{
			Success: false, HTTPStatus: &status, ErrorMessage: "HTTP 500: boom",
		}, now.Add(-5*time.Minute))
		require.NoError(t, err)

		deleted, err := store.DeleteWebhook(ctx, "owner", webhookID)
		require.NoError(t, err)
		assert.True(t, deleted)

		wh, err := store.GetWebhook(ctx, "owner", webhookID)
		require.NoError(t, err)
		assert.Nil(t, wh)

		matches, err := store.GetActiveWebhooksForRegistry(ctx, reg)
		require.NoError(t, err)
		for _, m := range matches {
			assert.NotEqual(t, webhookID, m.WebhookID)
		}

		// The ledger row went with the webhook; nothing is left for the sweeper
		due, err := store.ListDueDeliveries(ctx, now, 100)
		require.NoError(t, err)
		for _, d := range due {
			assert.NotEqual(t, delivery.DeliveryID, d.DeliveryID)
		}
	})

	t.Run("second delete reports false", func(t *testing.T) {
		deleted, err := store.DeleteWebhook(ctx, "owner", webhookID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func testSetWebhookActive(t *testing.T, store Store) {
	ctx := context.Background()
	webhookID := mustCreateWebhook(t, store, "owner", nil)

	wh, err := store.SetWebhookActive(ctx, "owner", webhookID, false)
	require.NoError(t, err)
	require.NotNil(t, wh)
	assert.False(t, wh.Active)

	wh, err = store.SetWebhookActive(ctx, "owner", webhookID, true)
	require.NoError(t, err)
	require.NotNil(t, wh)
	assert.True(t, wh.Active)

	missing, err := store.SetWebhookActive(ctx, "intruder", webhookID, false)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func testGetActiveWebhooksForRegistries(t *testing.T, store Store) {
	ctx := context.Background()
	regA := mustCreateRegistry(t, store, "act-a")
	regB := mustCreateRegistry(t, store, "act-b")

	noSubs := mustCreateWebhook(t, store, "owner", nil)
	onlyA := mustCreateWebhook(t, store, "owner", []uint64{regA})
	onlyB := mustCreateWebhook(t, store, "owner", []uint64{regB})
	paused := mustCreateWebhook(t, store, "owner", []uint64{regA})
	_, err := store.SetWebhookActive(ctx, "owner", paused, false)
	require.NoError(t, err)

	t.Run("single registry", func(t *testing.T) {
		matches, err := store.GetActiveWebhooksForRegistry(ctx, regA)
		require.NoError(t, err)

		ids := webhookIDs(matches)
		assert.Contains(t, ids, onlyA)
		assert.NotContains(t, ids, noSubs)
		assert.NotContains(t, ids, onlyB)
		assert.NotContains(t, ids, paused)
	})

	t.Run("multiple registries", func(t *testing.T) {
		matches, err := store.GetActiveWebhooksForRegistries(ctx, []uint64{regA, regB})
		require.NoError(t, err)

		ids := webhookIDs(matches)
		assert.Contains(t, ids, onlyA)
		assert.Contains(t, ids, onlyB)
		assert.NotContains(t, ids, noSubs)
		assert.NotContains(t, ids, paused)
	})

	t.Run("zero-subscription webhook is never resolved", func(t *testing.T) {
		matches, err := store.GetActiveWebhooksForRegistries(ctx, []uint64{regA, regB})
		require.NoError(t, err)
		assert.NotContains(t, webhookIDs(matches), noSubs)

		single, err := store.GetActiveWebhooksForRegistry(ctx, regB)
		require.NoError(t, err)
		assert.NotContains(t, webhookIDs(single), noSubs)
	})

	t.Run("empty input yields no matches", func(t *testing.T) {
		matches, err := store.GetActiveWebhooksForRegistries(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, matches)
	})
}

func testUpdateWebhookHealth(t *testing.T, store Store) {
	ctx := context.Background()
	webhookID := mustCreateWebhook(t, store, "owner", nil)
	now := time.Now().UTC().Truncate(time.Millisecond)

	require.NoError(t, store.UpdateWebhookHealth(ctx, webhookID, false, "HTTP 500: boom", now))
	require.NoError(t, store.UpdateWebhookHealth(ctx, webhookID, false, "HTTP 503: busy", now.Add(time.Second)))

	wh, err := store.GetWebhook(ctx, "owner", webhookID)
	require.NoError(t, err)
	require.NotNil(t, wh)
	assert.Equal(t, schema.WebhookStatusFailed, wh.Status)
	assert.Equal(t, 2, wh.FailureCount)
	require.NotNil(t, wh.LastFailureAt)
	require.NotNil(t, wh.LastTriggeredAt)
	assert.Nil(t, wh.LastSuccessAt)
	// The latest failure wins
	assert.Equal(t, "HTTP 503: busy", wh.LastErrorMessage)

	// A success marks the webhook healthy and clears the failure state
	require.NoError(t, store.UpdateWebhookHealth(ctx, webhookID, true, "", now.Add(2*time.Second)))

	wh, err = store.GetWebhook(ctx, "owner", webhookID)
	require.NoError(t, err)
	require.NotNil(t, wh)
	assert.Equal(t, schema.WebhookStatusHealthy, wh.Status)
	assert.Zero(t, wh.FailureCount)
	assert.Empty(t, wh.LastErrorMessage)
	require.NotNil(t, wh.LastSuccessAt)
	require.NotNil(t, wh.LastTriggeredAt)
	assert.WithinDuration(t, now.Add(2*time.Second), *wh.LastTriggeredAt, time.Second)
	// The failure timestamp is retained
	require.NotNil(t, wh.LastFailureAt)
}

// =============================================================================
// Test: Delivery ledger
// =============================================================================

func testWebhookDeliveryLifecycle(t *testing.T, store Store) {
	ctx := context.Background()
	webhookID := mustCreateWebhook(t, store, "owner", nil)
	payload := []byte(`{"event":"registry.updated","timestamp":"2025-01-15T10:00:00Z","data":{}}`)

	t.Run("create starts pending with zero attempts", func(t *testing.T) {
		delivery, err := store.CreateWebhookDelivery(ctx, CreateWebhookDeliveryInput{
			WebhookID: webhookID,
			Event:     webhook.EventRegistryUpdated,
			Payload:   payload,
		})
		require.NoError(t, err)
		assert.Equal(t, "pending", string(delivery.Status))
		assert.Zero(t, delivery.AttemptCount)
		assert.Equal(t, 3, delivery.MaxAttempts)
		assert.Equal(t, string(payload), delivery.Payload)
		assert.Nil(t, delivery.NextRetryAt)
	})

	t.Run("success finalizes the row", func(t *testing.T) {
		delivery, err := store.CreateWebhookDelivery(ctx, CreateWebhookDeliveryInput{
			WebhookID: webhookID,
			Event:     webhook.EventRegistryUpdated,
			Payload:   payload,
		})
		require.NoError(t, err)

		now := time.Now().UTC()
		status := 200
		updated, err := store.ApplyDeliveryOutcome(ctx, delivery.DeliveryID, webhook.Outcome{
			Success:    true,
			HTTPStatus: &status,
		}, now)
		require.NoError(t, err)
		assert.Equal(t, "success", string(updated.Status))
		assert.Equal(t, 1, updated.AttemptCount)
		require.NotNil(t, updated.HTTPStatus)
		assert.Equal(t, 200, *updated.HTTPStatus)
		require.NotNil(t, updated.DeliveredAt)
		assert.Nil(t, updated.NextRetryAt)
	})

	t.Run("failures walk the backoff table then fail terminally", func(t *testing.T) {
		delivery, err := store.CreateWebhookDelivery(ctx, CreateWebhookDeliveryInput{
			WebhookID: webhookID,
			Event:     webhook.EventRegistryItemsAdded,
			Payload:   payload,
		})
		require.NoError(t, err)

		now := time.Now().UTC()
		status := 500
		failure := webhook.Outcome{
			Success:      false,
			HTTPStatus:   &status,
			ErrorMessage: "HTTP 500: boom",
		}

		// First failure schedules a retry 60s out
		updated, err := store.ApplyDeliveryOutcome(ctx, delivery.DeliveryID, failure, now)
		require.NoError(t, err)
		assert.Equal(t, "pending", string(updated.Status))
		assert.Equal(t, 1, updated.AttemptCount)
		require.NotNil(t, updated.NextRetryAt)
		assert.WithinDuration(t, now.Add(60*time.Second), *updated.NextRetryAt, time.Second)

		// Second failure schedules 300s out
		updated, err = store.ApplyDeliveryOutcome(ctx, delivery.DeliveryID, failure, now)
		require.NoError(t, err)
		assert.Equal(t, "pending", string(updated.Status))
		assert.Equal(t, 2, updated.AttemptCount)
		require.NotNil(t, updated.NextRetryAt)
		assert.WithinDuration(t, now.Add(300*time.Second), *updated.NextRetryAt, time.Second)

		// Third failure exhausts the budget
		updated, err = store.ApplyDeliveryOutcome(ctx, delivery.DeliveryID, failure, now)
		require.NoError(t, err)
		assert.Equal(t, "failed", string(updated.Status))
		assert.Equal(t, 3, updated.AttemptCount)
		assert.Nil(t, updated.NextRetryAt)
		assert.Equal(t, "HTTP 500: boom", updated.ErrorMessage)
	})

	t.Run("mark failed without counting an attempt", func(t *testing.T) {
		delivery, err := store.CreateWebhookDelivery(ctx, CreateWebhookDeliveryInput{
			WebhookID: webhookID,
			Event:     webhook.EventTest,
			Payload:   payload,
		})
		require.NoError(t, err)

		require.NoError(t, store.MarkDeliveryFailed(ctx, delivery.DeliveryID, "Webhook not found or paused"))

		history, err := store.ListDeliveriesByWebhook(ctx, "owner", webhookID, 100)
		require.NoError(t, err)
		found := false
		for _, d := range history {
			if d.DeliveryID == delivery.DeliveryID {
				found = true
				assert.Equal(t, "failed", string(d.Status))
				assert.Zero(t, d.AttemptCount)
				assert.Equal(t, "Webhook not found or paused", d.ErrorMessage)
				assert.Nil(t, d.NextRetryAt)
			}
		}
		assert.True(t, found)
	})
}

func testListDueDeliveries(t *testing.T, store Store) {
	ctx := context.Background()
	webhookID := mustCreateWebhook(t, store, "owner", nil)
	payload := []byte(`{"event":"test","timestamp":"2025-01-15T10:00:00Z","data":{}}`)
	now := time.Now().UTC()
	status := 503
	failure := webhook.Outcome{Success: false, HTTPStatus: &status, ErrorMessage: "HTTP 503: "}

	// A delivery that failed long enough ago to be due
	due, err := store.CreateWebhookDelivery(ctx, CreateWebhookDeliveryInput{
		WebhookID: webhookID, Event: webhook.EventTest, Payload: payload,
	})
	require.NoError(t, err)
	_, err = store.ApplyDeliveryOutcome(ctx, due.DeliveryID, failure, now.Add(-5*time.Minute))
	require.NoError(t, err)

	// A delivery whose retry window has not opened yet
	notDue, err := store.CreateWebhookDelivery(ctx, CreateWebhookDeliveryInput{
		WebhookID: webhookID, Event: webhook.EventTest, Payload: payload,
	})
	require.NoError(t, err)
	_, err = store.ApplyDeliveryOutcome(ctx, notDue.DeliveryID, failure, now)
	require.NoError(t, err)

	// A fresh pending delivery with no retry scheduled
	fresh, err := store.CreateWebhookDelivery(ctx, CreateWebhookDeliveryInput{
		WebhookID: webhookID, Event: webhook.EventTest, Payload: payload,
	})
	require.NoError(t, err)

	deliveries, err := store.ListDueDeliveries(ctx, now, 100)
	require.NoError(t, err)

	ids := make([]string, 0, len(deliveries))
	for _, d := range deliveries {
		ids = append(ids, d.DeliveryID)
	}
	assert.Contains(t, ids, due.DeliveryID)
	assert.NotContains(t, ids, notDue.DeliveryID)
	assert.NotContains(t, ids, fresh.DeliveryID)
}

func testListDeliveriesByWebhook(t *testing.T, store Store) {
	ctx := context.Background()
	webhookID := mustCreateWebhook(t, store, "owner", nil)
	payload := []byte(`{"event":"test","timestamp":"2025-01-15T10:00:00Z","data":{}}`)

	for i := 0; i < 3; i++ {
		_, err := store.CreateWebhookDelivery(ctx, CreateWebhookDeliveryInput{
			WebhookID: webhookID, Event: webhook.EventTest, Payload: payload,
		})
		require.NoError(t, err)
	}

	t.Run("owner sees history", func(t *testing.T) {
		history, err := store.ListDeliveriesByWebhook(ctx, "owner", webhookID, 0)
		require.NoError(t, err)
		assert.Len(t, history, 3)
	})

	t.Run("other user sees nothing", func(t *testing.T) {
		history, err := store.ListDeliveriesByWebhook(ctx, "intruder", webhookID, 0)
		require.NoError(t, err)
		assert.Empty(t, history)
	})

	t.Run("limit is applied", func(t *testing.T) {
		history, err := store.ListDeliveriesByWebhook(ctx, "owner", webhookID, 2)
		require.NoError(t, err)
		assert.Len(t, history, 2)
	})
}

// =============================================================================
// Test: Registry sync
// =============================================================================

func testUpsertRegistry(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("creates then refreshes keeping the id", func(t *testing.T) {
		input := buildTestRegistry("upsert-a")
		created, err := store.UpsertRegistry(ctx, input)
		require.NoError(t, err)
		require.NotZero(t, created.ID)

		input.Name = "renamed"
		input.Description = "updated description"
		refreshed, err := store.UpsertRegistry(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, created.ID, refreshed.ID)
		assert.Equal(t, "renamed", refreshed.Name)
		assert.Equal(t, "updated description", refreshed.Description)
	})

	t.Run("lookup by id", func(t *testing.T) {
		created, err := store.UpsertRegistry(ctx, buildTestRegistry("upsert-b"))
		require.NoError(t, err)

		got, err := store.GetRegistryByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, created.URL, got.URL)

		missing, err := store.GetRegistryByID(ctx, 999999999)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("feed url is recorded", func(t *testing.T) {
		created, err := store.UpsertRegistry(ctx, buildTestRegistry("upsert-c"))
		require.NoError(t, err)

		require.NoError(t, store.SetRegistryFeedURL(ctx, created.ID, "https://upsert-c.example.com/feed.xml"))

		got, err := store.GetRegistryByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "https://upsert-c.example.com/feed.xml", got.FeedURL)
	})
}

func testInsertNewRSSItems(t *testing.T, store Store) {
	ctx := context.Background()
	registryID := mustCreateRegistry(t, store, "items-a")
	pub := time.Now().UTC().Truncate(time.Second)

	first := []CreateRSSItemInput{
		{GUID: "guid-1", Title: "One", Link: "https://items-a.example.com/1", PubDate: &pub},
		{GUID: "guid-2", Title: "Two", Link: "https://items-a.example.com/2", PubDate: &pub},
	}

	created, err := store.InsertNewRSSItems(ctx, registryID, first)
	require.NoError(t, err)
	assert.Len(t, created, 2)

	// Re-inserting one known and one new item yields only the new one
	second := []CreateRSSItemInput{
		{GUID: "guid-2", Title: "Two", Link: "https://items-a.example.com/2", PubDate: &pub},
		{GUID: "guid-3", Title: "Three", Link: "https://items-a.example.com/3", PubDate: &pub},
	}

	created, err = store.InsertNewRSSItems(ctx, registryID, second)
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, "guid-3", created[0].GUID)

	// Item count and sync stamp follow
	now := time.Now().UTC()
	require.NoError(t, store.TouchRegistrySynced(ctx, registryID, now))

	registry, err := store.GetRegistryByID(ctx, registryID)
	require.NoError(t, err)
	require.NotNil(t, registry)
	assert.Equal(t, 3, registry.ItemCount)
	require.NotNil(t, registry.LastSyncedAt)

	// Empty input is a no-op
	created, err = store.InsertNewRSSItems(ctx, registryID, nil)
	require.NoError(t, err)
	assert.Empty(t, created)
}

// =============================================================================
// Helpers
// =============================================================================

func boolPtr(b bool) *bool {
	return &b
}

func webhookIDs(webhooks []*schema.Webhook) []string {
	ids := make([]string, 0, len(webhooks))
	for _, wh := range webhooks {
		ids = append(ids, wh.WebhookID)
	}
	return ids
}

// RunStoreTests runs the full store test suite against an implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"CreateWebhook", testCreateWebhook},
		{"GetWebhook", testGetWebhook},
		{"ListWebhooks", testListWebhooks},
		{"UpdateWebhook", testUpdateWebhook},
		{"DeleteWebhook", testDeleteWebhook},
		{"SetWebhookActive", testSetWebhookActive},
		{"GetActiveWebhooksForRegistries", testGetActiveWebhooksForRegistries},
		{"UpdateWebhookHealth", testUpdateWebhookHealth},
		{"WebhookDeliveryLifecycle", testWebhookDeliveryLifecycle},
		{"ListDueDeliveries", testListDueDeliveries},
		{"ListDeliveriesByWebhook", testListDeliveriesByWebhook},
		{"UpsertRegistry", testUpsertRegistry},
		{"InsertNewRSSItems", testInsertNewRSSItems},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
