package webhook_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadrss/registry-watcher/internal/webhook"
)

func TestNewPayload(t *testing.T) {
	now := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
	registry := webhook.RegistrySnapshot{
		ID:       42,
		Name:     "shadcn/ui",
		URL:      "https://ui.shadcn.com/r/registry.json",
		Homepage: "https://ui.shadcn.com",
	}

	t.Run("items present selects items_added event", func(t *testing.T) {
		items := []webhook.Item{
			{Title: "New component", Link: "https://ui.shadcn.com/blog/new", PubDate: "2025-01-15T09:00:00Z"},
		}

		payload := webhook.NewPayload(now, registry, items)
		assert.Equal(t, webhook.EventRegistryItemsAdded, payload.Event)
		assert.Equal(t, "2025-01-15T10:30:00Z", payload.Timestamp)
		require.NotNil(t, payload.Data.Registry)
		assert.Equal(t, registry, *payload.Data.Registry)
		assert.Equal(t, items, payload.Data.Items)
	})

	t.Run("no items selects updated event", func(t *testing.T) {
		payload := webhook.NewPayload(now, registry, nil)
		assert.Equal(t, webhook.EventRegistryUpdated, payload.Event)
		assert.Empty(t, payload.Data.Items)
	})

	t.Run("wire shape", func(t *testing.T) {
		payload := webhook.NewPayload(now, registry, nil)
		raw, err := json.Marshal(payload)
		require.NoError(t, err)

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.Equal(t, "registry.updated", decoded["event"])
		assert.Equal(t, "2025-01-15T10:30:00Z", decoded["timestamp"])
		assert.Contains(t, decoded, "data")
	})
}

func TestNewBatchPayload(t *testing.T) {
	now := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

	t.Run("any entry with items selects items_added event", func(t *testing.T) {
		entries := []webhook.SourceEntry{
			{Registry: webhook.RegistrySnapshot{ID: 1, Name: "first"}},
			{
				Registry: webhook.RegistrySnapshot{ID: 2, Name: "second"},
				Items:    []webhook.Item{{Title: "Fresh", Link: "https://example.com/fresh"}},
			},
		}

		payload := webhook.NewBatchPayload(now, entries)
		assert.Equal(t, webhook.EventRegistryItemsAdded, payload.Event)
		assert.Len(t, payload.Data.Registries, 2)
		assert.Nil(t, payload.Data.Registry)
	})

	t.Run("no items anywhere selects updated event", func(t *testing.T) {
		entries := []webhook.SourceEntry{
			{Registry: webhook.RegistrySnapshot{ID: 1, Name: "first"}},
			{Registry: webhook.RegistrySnapshot{ID: 2, Name: "second"}},
		}

		payload := webhook.NewBatchPayload(now, entries)
		assert.Equal(t, webhook.EventRegistryUpdated, payload.Event)
	})
}

func TestNewTestPayload(t *testing.T) {
	now := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

	payload := webhook.NewTestPayload(now, "whk_0b8a6c2e")
	assert.Equal(t, webhook.EventTest, payload.Event)
	assert.Equal(t, "This is a test webhook from ShadRSS", payload.Data.Message)
	assert.Equal(t, "whk_0b8a6c2e", payload.Data.WebhookID)
	assert.Equal(t, "2025-01-15T10:30:00Z", payload.Timestamp)
}

func TestTimestamp(t *testing.T) {
	t.Run("converts to UTC", func(t *testing.T) {
		loc := time.FixedZone("UTC+7", 7*3600)
		local := time.Date(2025, 1, 15, 17, 30, 0, 0, loc)
		assert.Equal(t, "2025-01-15T10:30:00Z", webhook.Timestamp(local))
	})
}

func TestEventTypeValid(t *testing.T) {
	assert.True(t, webhook.EventType("registry.updated").Valid())
	assert.True(t, webhook.EventType("registry.items_added").Valid())
	assert.True(t, webhook.EventType("test").Valid())
	assert.False(t, webhook.EventType("registry.deleted").Valid())
	assert.False(t, webhook.EventType("").Valid())
}

func TestRetryBackoff(t *testing.T) {
	// The schedule is a stable contract with receivers and operators
	assert.Equal(t, 3, webhook.MaxDeliveryAttempts)
	assert.Equal(t, 60*time.Second, webhook.RetryBackoff[0])
	assert.Equal(t, 300*time.Second, webhook.RetryBackoff[1])
	assert.Equal(t, 900*time.Second, webhook.RetryBackoff[2])
}
