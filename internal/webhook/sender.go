package webhook

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/shadrss/registry-watcher/internal/adapter"
	"github.com/shadrss/registry-watcher/internal/types"
)

const (
	// DeliveryTimeout is the hard cap on a single delivery attempt, covering
	// connection, request write, and response read.
	DeliveryTimeout = 10 * time.Second

	// maxErrorBodyBytes bounds how much of an error response body is read.
	// The stored excerpt is further truncated to errorExcerptChars.
	maxErrorBodyBytes = 4096
	errorExcerptChars = 200
)

// Endpoint identifies the destination of a delivery. Secret is nil for
// unsigned webhooks.
type Endpoint struct {
	WebhookID string
	URL       string
	Secret    *string
}

// Sender performs a single delivery attempt against a webhook endpoint.
//
//go:generate go run github.com/golang/mock/mockgen -source=sender.go -destination=../mocks/webhook_sender.go -package=mocks -mock_names=Sender=MockSender
type Sender interface {
	// Send POSTs body to the endpoint exactly once and reports the outcome.
	// It never retries; retry policy lives in the delivery ledger.
	Send(ctx context.Context, endpoint Endpoint, body []byte, event EventType, timestamp string) Outcome
}

type httpSender struct {
	http adapter.HTTPClient
	io   adapter.IO
}

// NewSender creates a Sender that delivers over HTTP with the standard
// delivery timeout
func NewSender() Sender {
	return &httpSender{
		http: adapter.NewHTTPClient(DeliveryTimeout),
		io:   &adapter.RealIO{},
	}
}

// NewSenderWithAdapters creates a Sender with injected adapters, for tests
func NewSenderWithAdapters(httpClient adapter.HTTPClient, ioAdapter adapter.IO) Sender {
	return &httpSender{
		http: httpClient,
		io:   ioAdapter,
	}
}

func (s *httpSender) Send(ctx context.Context, endpoint Endpoint, body []byte, event EventType, timestamp string) Outcome {
	ctx, cancel := context.WithTimeout(ctx, DeliveryTimeout)
	defer cancel()

	headers := map[string]string{
		"Content-Type":        "application/json",
		"User-Agent":          UserAgent,
		"X-Webhook-Event":     string(event),
		"X-Webhook-Timestamp": timestamp,
		"X-Webhook-Id":        endpoint.WebhookID,
	}
	if endpoint.Secret != nil && *endpoint.Secret != "" {
		headers["X-Webhook-Signature"] = SignatureHeader(body, *endpoint.Secret)
	}

	resp, err := s.http.PostWithHeadersNoRetry(ctx, endpoint.URL, headers, bytes.NewReader(body))
	if err != nil {
		return Outcome{
			Success:      false,
			ErrorMessage: err.Error(),
		}
	}
	defer resp.Body.Close()

	status := resp.StatusCode
	if status >= 200 && status < 300 {
		return Outcome{
			Success:    true,
			HTTPStatus: &status,
		}
	}

	// Read a bounded slice of the response body so the ledger records why the
	// receiver rejected the delivery. Read errors leave the excerpt empty.
	excerpt := ""
	if respBody, readErr := s.io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes)); readErr == nil {
		excerpt = types.Truncate(string(respBody), errorExcerptChars)
	}

	return Outcome{
		Success:      false,
		HTTPStatus:   &status,
		ErrorMessage: fmt.Sprintf("HTTP %d: %s", status, excerpt),
	}
}
