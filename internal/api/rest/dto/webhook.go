package dto

import (
	"errors"
	"time"

	"github.com/shadrss/registry-watcher/internal/store/schema"
	"github.com/shadrss/registry-watcher/internal/types"
)

// CreateWebhookRequest represents the request body for registering a webhook
type CreateWebhookRequest struct {
	URL         string   `json:"url"`
	Secret      *string  `json:"secret,omitempty"`
	RegistryIDs []uint64 `json:"registry_ids,omitempty"`
}

// Validate validates the request body
func (r *CreateWebhookRequest) Validate(debug bool) error {
	// Validate: url must be provided
	if r.URL == "" {
		return errors.New("url is required")
	}

	// Validate: url must be valid; plain HTTP is only allowed in debug mode
	if debug {
		if !types.IsValidURL(r.URL) {
			return errors.New("url must be a valid URL")
		}
	} else {
		if !types.IsHTTPSURL(r.URL) {
			return errors.New("url must be a valid HTTPS URL")
		}
	}

	// Validate: secret must not be blank if provided
	if r.Secret != nil && *r.Secret == "" {
		return errors.New("secret must not be empty when provided")
	}

	// Validate: at least one registry subscription is required
	if len(r.RegistryIDs) == 0 {
		return errors.New("registry_ids must contain at least one registry")
	}

	return nil
}

// UpdateWebhookRequest represents the request body for a partial webhook
// update. Absent fields leave the stored value unchanged; registry_ids, when
// present, replaces the subscription set and must not be empty.
type UpdateWebhookRequest struct {
	URL         *string   `json:"url,omitempty"`
	Secret      *string   `json:"secret,omitempty"`
	Active      *bool     `json:"active,omitempty"`
	RegistryIDs *[]uint64 `json:"registry_ids,omitempty"`
}

// Validate validates the request body
func (r *UpdateWebhookRequest) Validate(debug bool) error {
	// Validate: at least one field must be provided
	if r.URL == nil && r.Secret == nil && r.Active == nil && r.RegistryIDs == nil {
		return errors.New("at least one field must be provided")
	}

	// Validate: url must be valid if provided
	if r.URL != nil {
		if debug {
			if !types.IsValidURL(*r.URL) {
				return errors.New("url must be a valid URL")
			}
		} else {
			if !types.IsHTTPSURL(*r.URL) {
				return errors.New("url must be a valid HTTPS URL")
			}
		}
	}

	// Validate: the replacement subscription set must not be empty
	if r.RegistryIDs != nil && len(*r.RegistryIDs) == 0 {
		return errors.New("registry_ids must contain at least one registry")
	}

	return nil
}

// WebhookResponse represents a registered webhook. The signing secret is
// never echoed back; has_secret indicates whether one is set.
type WebhookResponse struct {
	WebhookID        string     `json:"webhook_id"`
	URL              string     `json:"url"`
	HasSecret        bool       `json:"has_secret"`
	Active           bool       `json:"active"`
	RegistryIDs      []uint64   `json:"registry_ids"`
	Status           string     `json:"status"`
	FailureCount     int        `json:"failure_count"`
	LastTriggeredAt  *time.Time `json:"last_triggered_at,omitempty"`
	LastSuccessAt    *time.Time `json:"last_success_at,omitempty"`
	LastFailureAt    *time.Time `json:"last_failure_at,omitempty"`
	LastErrorMessage string     `json:"last_error_message,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// WebhookListResponse represents a list of webhooks
type WebhookListResponse struct {
	Webhooks []WebhookResponse `json:"items"`
	Total    int               `json:"total"`
}

// DeliveryResponse represents one row of a webhook's delivery history
type DeliveryResponse struct {
	DeliveryID   string     `json:"delivery_id"`
	Event        string     `json:"event"`
	Status       string     `json:"status"`
	AttemptCount int        `json:"attempt_count"`
	MaxAttempts  int        `json:"max_attempts"`
	HTTPStatus   *int       `json:"http_status,omitempty"`
	ErrorMessage string     `json:"error_message,omitempty"`
	NextRetryAt  *time.Time `json:"next_retry_at,omitempty"`
	DeliveredAt  *time.Time `json:"delivered_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// DeliveryListResponse represents a webhook's recent delivery history
type DeliveryListResponse struct {
	Deliveries []DeliveryResponse `json:"items"`
	Total      int                `json:"total"`
}

// RegistryResponse represents a tracked registry
type RegistryResponse struct {
	ID           uint64     `json:"id"`
	Name         string     `json:"name"`
	URL          string     `json:"url"`
	Homepage     string     `json:"homepage,omitempty"`
	Description  string     `json:"description,omitempty"`
	FeedURL      string     `json:"feed_url,omitempty"`
	ItemCount    int        `json:"item_count"`
	LastSyncedAt *time.Time `json:"last_synced_at,omitempty"`
}

// RegistryListResponse represents the list of tracked registries
type RegistryListResponse struct {
	Registries []RegistryResponse `json:"items"`
	Total      int                `json:"total"`
}

// MapWebhookToDTO maps a schema.Webhook to WebhookResponse
func MapWebhookToDTO(wh *schema.Webhook) *WebhookResponse {
	registryIDs := wh.RegistryIDs()
	if registryIDs == nil {
		registryIDs = []uint64{}
	}

	return &WebhookResponse{
		WebhookID:        wh.WebhookID,
		URL:              wh.URL,
		HasSecret:        !types.StringNilOrEmpty(wh.Secret),
		Active:           wh.Active,
		RegistryIDs:      registryIDs,
		Status:           string(wh.Status),
		FailureCount:     wh.FailureCount,
		LastTriggeredAt:  wh.LastTriggeredAt,
		LastSuccessAt:    wh.LastSuccessAt,
		LastFailureAt:    wh.LastFailureAt,
		LastErrorMessage: wh.LastErrorMessage,
		CreatedAt:        wh.CreatedAt,
		UpdatedAt:        wh.UpdatedAt,
	}
}

// MapDeliveryToDTO maps a schema.WebhookDelivery to DeliveryResponse
func MapDeliveryToDTO(d *schema.WebhookDelivery) *DeliveryResponse {
	return &DeliveryResponse{
		DeliveryID:   d.DeliveryID,
		Event:        d.Event,
		Status:       string(d.Status),
		AttemptCount: d.AttemptCount,
		MaxAttempts:  d.MaxAttempts,
		HTTPStatus:   d.HTTPStatus,
		ErrorMessage: d.ErrorMessage,
		NextRetryAt:  d.NextRetryAt,
		DeliveredAt:  d.DeliveredAt,
		CreatedAt:    d.CreatedAt,
	}
}

// MapRegistryToDTO maps a schema.Registry to RegistryResponse
func MapRegistryToDTO(r *schema.Registry) *RegistryResponse {
	return &RegistryResponse{
		ID:           r.ID,
		Name:         r.Name,
		URL:          r.URL,
		Homepage:     r.Homepage,
		Description:  r.Description,
		FeedURL:      r.FeedURL,
		ItemCount:    r.ItemCount,
		LastSyncedAt: r.LastSyncedAt,
	}
}
