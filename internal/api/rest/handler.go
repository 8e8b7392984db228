package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shadrss/registry-watcher/internal/api/middleware"
	"github.com/shadrss/registry-watcher/internal/api/rest/dto"
	"github.com/shadrss/registry-watcher/internal/feed"
	"github.com/shadrss/registry-watcher/internal/logger"
	"github.com/shadrss/registry-watcher/internal/notifier"
	"github.com/shadrss/registry-watcher/internal/store"
)

// SyncRunner runs one feed sync cycle. Implemented by feed.Syncer.
type SyncRunner interface {
	RunCycle(ctx context.Context) (*feed.CycleResult, error)
}

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate go run github.com/golang/mock/mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// ListWebhooks retrieves the webhooks owned by the authenticated user
	// GET /api/v1/webhooks
	ListWebhooks(c *gin.Context)

	// CreateWebhook registers a webhook for the authenticated user
	// POST /api/v1/webhooks
	CreateWebhook(c *gin.Context)

	// GetWebhook retrieves a single webhook owned by the authenticated user
	// GET /api/v1/webhooks/:webhook_id
	GetWebhook(c *gin.Context)

	// UpdateWebhook applies a partial update to a webhook
	// PATCH /api/v1/webhooks/:webhook_id
	UpdateWebhook(c *gin.Context)

	// DeleteWebhook removes a webhook along with its subscriptions
	// DELETE /api/v1/webhooks/:webhook_id
	DeleteWebhook(c *gin.Context)

	// PauseWebhook stops deliveries to a webhook without removing it
	// POST /api/v1/webhooks/:webhook_id/pause
	PauseWebhook(c *gin.Context)

	// ResumeWebhook re-enables deliveries to a paused webhook
	// POST /api/v1/webhooks/:webhook_id/resume
	ResumeWebhook(c *gin.Context)

	// TestWebhook sends a synthetic test event and returns the delivery
	// result synchronously
	// POST /api/v1/webhooks/:webhook_id/test
	TestWebhook(c *gin.Context)

	// ListWebhookDeliveries retrieves the recent delivery history of a
	// webhook, newest first
	// GET /api/v1/webhooks/:webhook_id/deliveries?limit=<limit>
	ListWebhookDeliveries(c *gin.Context)

	// ListRegistries retrieves the tracked registries (public read access)
	// GET /api/v1/registries
	ListRegistries(c *gin.Context)

	// TriggerSync kicks off a feed sync cycle in the background (requires
	// API key authentication)
	// POST /api/v1/sync
	TriggerSync(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	debug    bool
	store    store.Store
	notifier notifier.Notifier
	syncer   SyncRunner
}

// NewHandler creates a new REST API handler
func NewHandler(debug bool, st store.Store, n notifier.Notifier, syncer SyncRunner) Handler {
	return &handler{
		debug:    debug,
		store:    st,
		notifier: n,
		syncer:   syncer,
	}
}

// authSubject returns the authenticated user ID, or aborts with 403 when the
// request was not authenticated as a user (e.g. API key credentials)
func authSubject(c *gin.Context) (string, bool) {
	userID := c.GetString(middleware.AUTH_SUBJECT_KEY)
	if userID == "" {
		respondForbidden(c, "A user identity is required for this endpoint")
		return "", false
	}
	return userID, true
}

// ListWebhooks retrieves the webhooks owned by the authenticated user
func (h *handler) ListWebhooks(c *gin.Context) {
	userID, ok := authSubject(c)
	if !ok {
		return
	}

	webhooks, err := h.store.ListWebhooks(c.Request.Context(), userID)
	if err != nil {
		respondInternalError(c, err, "Failed to list webhooks")
		return
	}

	response := dto.WebhookListResponse{
		Webhooks: make([]dto.WebhookResponse, 0, len(webhooks)),
		Total:    len(webhooks),
	}
	for _, wh := range webhooks {
		response.Webhooks = append(response.Webhooks, *dto.MapWebhookToDTO(wh))
	}

	c.JSON(http.StatusOK, response)
}

// CreateWebhook registers a webhook for the authenticated user
func (h *handler) CreateWebhook(c *gin.Context) {
	userID, ok := authSubject(c)
	if !ok {
		return
	}

	var req dto.CreateWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	// Validate request body
	if err := req.Validate(h.debug); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	wh, err := h.store.CreateWebhook(c.Request.Context(), store.CreateWebhookInput{
		UserID:      userID,
		URL:         req.URL,
		Secret:      req.Secret,
		RegistryIDs: req.RegistryIDs,
	})
	if err != nil {
		if errors.Is(err, store.ErrUnknownRegistry) {
			respondValidationError(c, err.Error())
			return
		}
		respondInternalError(c, err, "Failed to create webhook")
		return
	}

	c.JSON(http.StatusCreated, dto.MapWebhookToDTO(wh))
}

// GetWebhook retrieves a single webhook owned by the authenticated user
func (h *handler) GetWebhook(c *gin.Context) {
	userID, ok := authSubject(c)
	if !ok {
		return
	}

	webhookID := c.Param("webhook_id")
	if webhookID == "" {
		respondBadRequest(c, "webhook_id is required")
		return
	}

	wh, err := h.store.GetWebhook(c.Request.Context(), userID, webhookID)
	if err != nil {
		respondInternalError(c, err, "Failed to get webhook")
		return
	}
	if wh == nil {
		respondNotFound(c, "Webhook not found")
		return
	}

	c.JSON(http.StatusOK, dto.MapWebhookToDTO(wh))
}

// UpdateWebhook applies a partial update to a webhook
func (h *handler) UpdateWebhook(c *gin.Context) {
	userID, ok := authSubject(c)
	if !ok {
		return
	}

	webhookID := c.Param("webhook_id")
	if webhookID == "" {
		respondBadRequest(c, "webhook_id is required")
		return
	}

	var req dto.UpdateWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	// Validate request body
	if err := req.Validate(h.debug); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	wh, err := h.store.UpdateWebhook(c.Request.Context(), userID, webhookID, store.UpdateWebhookInput{
		URL:         req.URL,
		Secret:      req.Secret,
		Active:      req.Active,
		RegistryIDs: req.RegistryIDs,
	})
	if err != nil {
		if errors.Is(err, store.ErrUnknownRegistry) {
			respondValidationError(c, err.Error())
			return
		}
		respondInternalError(c, err, "Failed to update webhook")
		return
	}
	if wh == nil {
		respondNotFound(c, "Webhook not found")
		return
	}

	c.JSON(http.StatusOK, dto.MapWebhookToDTO(wh))
}

// DeleteWebhook removes a webhook along with its subscriptions
func (h *handler) DeleteWebhook(c *gin.Context) {
	userID, ok := authSubject(c)
	if !ok {
		return
	}

	webhookID := c.Param("webhook_id")
	if webhookID == "" {
		respondBadRequest(c, "webhook_id is required")
		return
	}

	deleted, err := h.store.DeleteWebhook(c.Request.Context(), userID, webhookID)
	if err != nil {
		respondInternalError(c, err, "Failed to delete webhook")
		return
	}
	if !deleted {
		respondNotFound(c, "Webhook not found")
		return
	}

	c.Status(http.StatusNoContent)
}

// PauseWebhook stops deliveries to a webhook without removing it
func (h *handler) PauseWebhook(c *gin.Context) {
	h.setWebhookActive(c, false)
}

// ResumeWebhook re-enables deliveries to a paused webhook
func (h *handler) ResumeWebhook(c *gin.Context) {
	h.setWebhookActive(c, true)
}

func (h *handler) setWebhookActive(c *gin.Context, active bool) {
	userID, ok := authSubject(c)
	if !ok {
		return
	}

	webhookID := c.Param("webhook_id")
	if webhookID == "" {
		respondBadRequest(c, "webhook_id is required")
		return
	}

	wh, err := h.store.SetWebhookActive(c.Request.Context(), userID, webhookID, active)
	if err != nil {
		respondInternalError(c, err, "Failed to update webhook state")
		return
	}
	if wh == nil {
		respondNotFound(c, "Webhook not found")
		return
	}

	c.JSON(http.StatusOK, dto.MapWebhookToDTO(wh))
}

// TestWebhook sends a synthetic test event and returns the result
func (h *handler) TestWebhook(c *gin.Context) {
	userID, ok := authSubject(c)
	if !ok {
		return
	}

	webhookID := c.Param("webhook_id")
	if webhookID == "" {
		respondBadRequest(c, "webhook_id is required")
		return
	}

	result, err := h.notifier.SendTest(c.Request.Context(), userID, webhookID)
	if err != nil {
		if errors.Is(err, notifier.ErrWebhookNotFound) {
			respondNotFound(c, "Webhook not found")
			return
		}
		respondInternalError(c, err, "Failed to send test webhook")
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListWebhookDeliveries retrieves the recent delivery history of a webhook
func (h *handler) ListWebhookDeliveries(c *gin.Context) {
	userID, ok := authSubject(c)
	if !ok {
		return
	}

	webhookID := c.Param("webhook_id")
	if webhookID == "" {
		respondBadRequest(c, "webhook_id is required")
		return
	}

	// The history endpoint 404s for unknown webhooks rather than returning
	// an empty list
	wh, err := h.store.GetWebhook(c.Request.Context(), userID, webhookID)
	if err != nil {
		respondInternalError(c, err, "Failed to get webhook")
		return
	}
	if wh == nil {
		respondNotFound(c, "Webhook not found")
		return
	}

	queryParams, err := ParseListDeliveriesQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	deliveries, err := h.store.ListDeliveriesByWebhook(c.Request.Context(), userID, webhookID, queryParams.Limit)
	if err != nil {
		respondInternalError(c, err, "Failed to list deliveries")
		return
	}

	response := dto.DeliveryListResponse{
		Deliveries: make([]dto.DeliveryResponse, 0, len(deliveries)),
		Total:      len(deliveries),
	}
	for _, d := range deliveries {
		response.Deliveries = append(response.Deliveries, *dto.MapDeliveryToDTO(d))
	}

	c.JSON(http.StatusOK, response)
}

// ListRegistries retrieves the tracked registries
func (h *handler) ListRegistries(c *gin.Context) {
	registries, err := h.store.ListRegistries(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Failed to list registries")
		return
	}

	response := dto.RegistryListResponse{
		Registries: make([]dto.RegistryResponse, 0, len(registries)),
		Total:      len(registries),
	}
	for _, r := range registries {
		response.Registries = append(response.Registries, *dto.MapRegistryToDTO(r))
	}

	c.JSON(http.StatusOK, response)
}

// TriggerSync kicks off a feed sync cycle in the background
func (h *handler) TriggerSync(c *gin.Context) {
	if h.syncer == nil {
		respondWithError(c, http.StatusServiceUnavailable, errCodeInternalError, "Sync is not configured on this instance")
		return
	}

	// The cycle can take minutes across hundreds of registries, so it runs
	// detached from the request context
	go func() {
		ctx := context.Background()
		result, err := h.syncer.RunCycle(ctx)
		if err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Triggered sync cycle failed"))
			return
		}
		logger.InfoCtx(ctx, "Triggered sync cycle completed",
			zap.String("cycle_id", result.CycleID),
			zap.Int("processed", result.Processed),
			zap.Int("new_items", result.NewItems),
		)
	}()

	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"service": "shadrss-api",
	})
}
