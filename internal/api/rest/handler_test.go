package rest_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/shadrss/registry-watcher/internal/api/middleware"
	"github.com/shadrss/registry-watcher/internal/api/rest"
	"github.com/shadrss/registry-watcher/internal/feed"
	"github.com/shadrss/registry-watcher/internal/logger"
	"github.com/shadrss/registry-watcher/internal/mocks"
	"github.com/shadrss/registry-watcher/internal/notifier"
	"github.com/shadrss/registry-watcher/internal/store"
	"github.com/shadrss/registry-watcher/internal/store/schema"
	"github.com/shadrss/registry-watcher/internal/types"
	"github.com/shadrss/registry-watcher/internal/webhook"
)

const (
	testUserID = "user_123"
	testAPIKey = "test-api-key"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	gin.SetMode(gin.TestMode)

	code := m.Run()
	os.Exit(code)
}

type testAPIMocks struct {
	ctrl     *gomock.Controller
	store    *mocks.MockStore
	notifier *mocks.MockNotifier
	syncer   *mocks.MockSyncRunner
	router   *gin.Engine
	token    string
}

// newTestAPI wires the concrete handler behind real routes and auth so tests
// exercise the full request path
func newTestAPI(t *testing.T) *testAPIMocks {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	publicPEM := string(pem.EncodeToMemory(&pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: der,
	}))

	claims := jwt.RegisteredClaims{
		Subject:   testUserID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)

	m := &testAPIMocks{
		ctrl:     ctrl,
		store:    mocks.NewMockStore(ctrl),
		notifier: mocks.NewMockNotifier(ctrl),
		syncer:   mocks.NewMockSyncRunner(ctrl),
		token:    token,
	}

	handler := rest.NewHandler(true, m.store, m.notifier, m.syncer)

	m.router = gin.New()
	rest.SetupRoutes(m.router, handler, middleware.AuthConfig{
		JWTPublicKey: publicPEM,
		APIKeys:      []string{testAPIKey},
	})

	return m
}

func (m *testAPIMocks) do(method, path, body string, auth string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	w := httptest.NewRecorder()
	m.router.ServeHTTP(w, req)
	return w
}

func (m *testAPIMocks) doJWT(method, path, body string) *httptest.ResponseRecorder {
	return m.do(method, path, body, "Bearer "+m.token)
}

func testWebhookRow() *schema.Webhook {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	return &schema.Webhook{
		WebhookID: "whk_0123456789abcdef0123456789abcdef",
		UserID:    testUserID,
		URL:       "https://example.com/hooks/shadrss",
		Secret:    types.StringPtr("s3cr3t"),
		Active:    true,
		Status:    schema.WebhookStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
		Subscriptions: []schema.WebhookSubscription{
			{WebhookID: "whk_0123456789abcdef0123456789abcdef", RegistryID: 7},
		},
	}
}

func TestHealthCheck(t *testing.T) {
	m := newTestAPI(t)

	w := m.do(http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestListWebhooks(t *testing.T) {
	t.Run("returns owned webhooks", func(t *testing.T) {
		m := newTestAPI(t)
		m.store.EXPECT().
			ListWebhooks(gomock.Any(), testUserID).
			Return([]*schema.Webhook{testWebhookRow()}, nil)

		w := m.doJWT(http.MethodGet, "/api/v1/webhooks", "")
		require.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Items []struct {
				WebhookID   string   `json:"webhook_id"`
				HasSecret   bool     `json:"has_secret"`
				RegistryIDs []uint64 `json:"registry_ids"`
			} `json:"items"`
			Total int `json:"total"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Equal(t, 1, response.Total)
		require.Len(t, response.Items, 1)
		require.Equal(t, "whk_0123456789abcdef0123456789abcdef", response.Items[0].WebhookID)
		require.True(t, response.Items[0].HasSecret)
		require.Equal(t, []uint64{7}, response.Items[0].RegistryIDs)

		// The secret itself is never echoed back
		require.NotContains(t, w.Body.String(), "s3cr3t")
	})

	t.Run("requires authentication", func(t *testing.T) {
		m := newTestAPI(t)

		w := m.do(http.MethodGet, "/api/v1/webhooks", "", "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects API key callers", func(t *testing.T) {
		m := newTestAPI(t)

		w := m.do(http.MethodGet, "/api/v1/webhooks", "", "ApiKey "+testAPIKey)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestCreateWebhook(t *testing.T) {
	t.Run("creates a webhook", func(t *testing.T) {
		m := newTestAPI(t)
		m.store.EXPECT().
			CreateWebhook(gomock.Any(), store.CreateWebhookInput{
				UserID:      testUserID,
				URL:         "https://example.com/hooks/shadrss",
				Secret:      types.StringPtr("s3cr3t"),
				RegistryIDs: []uint64{7},
			}).
			Return(testWebhookRow(), nil)

		body := `{"url":"https://example.com/hooks/shadrss","secret":"s3cr3t","registry_ids":[7]}`
		w := m.doJWT(http.MethodPost, "/api/v1/webhooks", body)
		require.Equal(t, http.StatusCreated, w.Code)
		require.Contains(t, w.Body.String(), `"webhook_id":"whk_`)
	})

	t.Run("rejects a missing url", func(t *testing.T) {
		m := newTestAPI(t)

		w := m.doJWT(http.MethodPost, "/api/v1/webhooks", `{"registry_ids":[7]}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), "validation_failed")
	})

	t.Run("rejects an empty subscription list", func(t *testing.T) {
		m := newTestAPI(t)

		for _, body := range []string{
			`{"url":"https://example.com/hooks/shadrss"}`,
			`{"url":"https://example.com/hooks/shadrss","registry_ids":[]}`,
		} {
			w := m.doJWT(http.MethodPost, "/api/v1/webhooks", body)
			require.Equal(t, http.StatusBadRequest, w.Code)
			require.Contains(t, w.Body.String(), "validation_failed")
		}
	})

	t.Run("rejects unknown registry ids", func(t *testing.T) {
		m := newTestAPI(t)
		m.store.EXPECT().
			CreateWebhook(gomock.Any(), gomock.Any()).
			Return(nil, store.ErrUnknownRegistry)

		body := `{"url":"https://example.com/hooks/shadrss","registry_ids":[999]}`
		w := m.doJWT(http.MethodPost, "/api/v1/webhooks", body)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetWebhook(t *testing.T) {
	t.Run("returns the webhook", func(t *testing.T) {
		m := newTestAPI(t)
		wh := testWebhookRow()
		m.store.EXPECT().
			GetWebhook(gomock.Any(), testUserID, wh.WebhookID).
			Return(wh, nil)

		w := m.doJWT(http.MethodGet, "/api/v1/webhooks/"+wh.WebhookID, "")
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"status":"pending"`)
	})

	t.Run("404s for an unknown webhook", func(t *testing.T) {
		m := newTestAPI(t)
		m.store.EXPECT().
			GetWebhook(gomock.Any(), testUserID, "whk_missing").
			Return(nil, nil)

		w := m.doJWT(http.MethodGet, "/api/v1/webhooks/whk_missing", "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUpdateWebhook(t *testing.T) {
	t.Run("applies a partial update", func(t *testing.T) {
		m := newTestAPI(t)
		wh := testWebhookRow()
		m.store.EXPECT().
			UpdateWebhook(gomock.Any(), testUserID, wh.WebhookID, gomock.Any()).
			DoAndReturn(func(_ interface{}, _, _ string, input store.UpdateWebhookInput) (*schema.Webhook, error) {
				require.NotNil(t, input.URL)
				require.Equal(t, "https://example.com/hooks/v2", *input.URL)
				require.Nil(t, input.Active)
				require.Nil(t, input.Secret)
				require.Nil(t, input.RegistryIDs)
				return wh, nil
			})

		w := m.doJWT(http.MethodPatch, "/api/v1/webhooks/"+wh.WebhookID, `{"url":"https://example.com/hooks/v2"}`)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects an empty update", func(t *testing.T) {
		m := newTestAPI(t)

		w := m.doJWT(http.MethodPatch, "/api/v1/webhooks/whk_x", `{}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects clearing the subscription set", func(t *testing.T) {
		m := newTestAPI(t)

		w := m.doJWT(http.MethodPatch, "/api/v1/webhooks/whk_x", `{"registry_ids":[]}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), "validation_failed")
	})
}

func TestDeleteWebhook(t *testing.T) {
	t.Run("deletes the webhook", func(t *testing.T) {
		m := newTestAPI(t)
		m.store.EXPECT().
			DeleteWebhook(gomock.Any(), testUserID, "whk_x").
			Return(true, nil)

		w := m.doJWT(http.MethodDelete, "/api/v1/webhooks/whk_x", "")
		require.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("404s when nothing was deleted", func(t *testing.T) {
		m := newTestAPI(t)
		m.store.EXPECT().
			DeleteWebhook(gomock.Any(), testUserID, "whk_x").
			Return(false, nil)

		w := m.doJWT(http.MethodDelete, "/api/v1/webhooks/whk_x", "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPauseResumeWebhook(t *testing.T) {
	t.Run("pause deactivates the webhook", func(t *testing.T) {
		m := newTestAPI(t)
		wh := testWebhookRow()
		wh.Active = false
		m.store.EXPECT().
			SetWebhookActive(gomock.Any(), testUserID, wh.WebhookID, false).
			Return(wh, nil)

		w := m.doJWT(http.MethodPost, "/api/v1/webhooks/"+wh.WebhookID+"/pause", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"active":false`)
	})

	t.Run("resume reactivates the webhook", func(t *testing.T) {
		m := newTestAPI(t)
		wh := testWebhookRow()
		m.store.EXPECT().
			SetWebhookActive(gomock.Any(), testUserID, wh.WebhookID, true).
			Return(wh, nil)

		w := m.doJWT(http.MethodPost, "/api/v1/webhooks/"+wh.WebhookID+"/resume", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"active":true`)
	})
}

func TestTestWebhook(t *testing.T) {
	t.Run("returns the delivery result", func(t *testing.T) {
		m := newTestAPI(t)
		m.notifier.EXPECT().
			SendTest(gomock.Any(), testUserID, "whk_x").
			Return(&webhook.DeliveryResult{
				WebhookID:  "whk_x",
				Success:    true,
				HTTPStatus: types.IntPtr(200),
			}, nil)

		w := m.doJWT(http.MethodPost, "/api/v1/webhooks/whk_x/test", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"success":true`)
	})

	t.Run("404s for an unknown webhook", func(t *testing.T) {
		m := newTestAPI(t)
		m.notifier.EXPECT().
			SendTest(gomock.Any(), testUserID, "whk_x").
			Return(nil, notifier.ErrWebhookNotFound)

		w := m.doJWT(http.MethodPost, "/api/v1/webhooks/whk_x/test", "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListWebhookDeliveries(t *testing.T) {
	deliveryRow := func() *schema.WebhookDelivery {
		return &schema.WebhookDelivery{
			DeliveryID:   "d1",
			WebhookID:    "whk_x",
			Event:        "registry.updated",
			Payload:      `{"event":"registry.updated"}`,
			Status:       schema.WebhookDeliveryStatusSuccess,
			AttemptCount: 1,
			MaxAttempts:  3,
			HTTPStatus:   types.IntPtr(200),
		}
	}

	t.Run("returns the history with the default limit", func(t *testing.T) {
		m := newTestAPI(t)
		m.store.EXPECT().
			GetWebhook(gomock.Any(), testUserID, "whk_x").
			Return(testWebhookRow(), nil)
		m.store.EXPECT().
			ListDeliveriesByWebhook(gomock.Any(), testUserID, "whk_x", 50).
			Return([]*schema.WebhookDelivery{deliveryRow()}, nil)

		w := m.doJWT(http.MethodGet, "/api/v1/webhooks/whk_x/deliveries", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"delivery_id":"d1"`)

		// The stored payload stays internal
		require.NotContains(t, w.Body.String(), "payload")
	})

	t.Run("caps the limit", func(t *testing.T) {
		m := newTestAPI(t)
		m.store.EXPECT().
			GetWebhook(gomock.Any(), testUserID, "whk_x").
			Return(testWebhookRow(), nil)
		m.store.EXPECT().
			ListDeliveriesByWebhook(gomock.Any(), testUserID, "whk_x", 100).
			Return([]*schema.WebhookDelivery{}, nil)

		w := m.doJWT(http.MethodGet, "/api/v1/webhooks/whk_x/deliveries?limit=500", "")
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("404s for an unknown webhook", func(t *testing.T) {
		m := newTestAPI(t)
		m.store.EXPECT().
			GetWebhook(gomock.Any(), testUserID, "whk_x").
			Return(nil, nil)

		w := m.doJWT(http.MethodGet, "/api/v1/webhooks/whk_x/deliveries", "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListRegistries(t *testing.T) {
	m := newTestAPI(t)
	m.store.EXPECT().
		ListRegistries(gomock.Any()).
		Return([]*schema.Registry{
			{ID: 7, Name: "shadcn/ui", URL: "https://ui.shadcn.com", ItemCount: 42},
		}, nil)

	// Public endpoint, no credentials
	w := m.do(http.MethodGet, "/api/v1/registries", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"name":"shadcn/ui"`)
}

func TestTriggerSync(t *testing.T) {
	t.Run("runs a cycle in the background", func(t *testing.T) {
		m := newTestAPI(t)

		ran := make(chan struct{})
		m.syncer.EXPECT().
			RunCycle(gomock.Any()).
			DoAndReturn(func(interface{}) (*feed.CycleResult, error) {
				defer close(ran)
				return &feed.CycleResult{CycleID: "c1"}, nil
			})

		w := m.do(http.MethodPost, "/api/v1/sync", "", "ApiKey "+testAPIKey)
		require.Equal(t, http.StatusAccepted, w.Code)

		select {
		case <-ran:
		case <-time.After(2 * time.Second):
			t.Fatal("sync cycle was not started")
		}
	})

	t.Run("requires an API key", func(t *testing.T) {
		m := newTestAPI(t)

		w := m.doJWT(http.MethodPost, "/api/v1/sync", "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestInternalErrorEnvelope(t *testing.T) {
	m := newTestAPI(t)
	m.store.EXPECT().
		ListWebhooks(gomock.Any(), testUserID).
		Return(nil, errors.New("connection refused"))

	w := m.doJWT(http.MethodGet, "/api/v1/webhooks", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), `"code":"internal_error"`)

	// Internal details are not leaked to clients
	require.NotContains(t, w.Body.String(), "connection refused")
}
