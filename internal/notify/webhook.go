package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hackpass/portal-api/pkg/circuitbreaker"
	"github.com/hackpass/portal-api/pkg/retry"
)

// HTTPWebhookPublisher posts notification payloads to the delivery service
// that fans them out to subscribers. Delivery is at-least-once intent with no
// ordering guarantee; redelivery beyond the local retry budget is the
// delivery service's concern, not this process's.
type HTTPWebhookPublisher struct {
	endpoint string
	token    string
	client   *http.Client
	retry    retry.RetryPolicy
	breaker  circuitbreaker.CircuitBreaker
}

type WebhookConfig struct {
	Endpoint string
	Token    string
}

func NewHTTPWebhookPublisher(cfg WebhookConfig) *HTTPWebhookPublisher {
	return &HTTPWebhookPublisher{
		endpoint: cfg.Endpoint,
		token:    cfg.Token,
		client:   &http.Client{Timeout: 10 * time.Second},
		retry: retry.NewExponentialBackoff(&retry.Config{
			MaxAttempts: 3,
			BaseDelay:   200 * time.Millisecond,
			MaxDelay:    5 * time.Second,
			Multiplier:  2.0,
		}),
		breaker: circuitbreaker.NewCircuitBreaker(nil),
	}
}

func (p *HTTPWebhookPublisher) Publish(ctx context.Context, payload Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("webhook: marshal payload: %w", err)
	}

	return p.breaker.Call(func() error {
		return p.retry.Execute(func() error {
			return p.post(ctx, body)
		})
	})
}

func (p *HTTPWebhookPublisher) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("webhook: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook: %w", err)
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode >= 400 {
		err := fmt.Errorf("webhook: delivery service returned %d", resp.StatusCode)
		if isTransientStatus(resp.StatusCode) {
			return retry.Retryable(err)
		}
		return err
	}
	return nil
}

// isTransientStatus reports whether a response status is worth retrying.
// 4xx responses other than 429 mean the request itself is bad and will not
// improve on resend.
func isTransientStatus(status int) bool {
	return status >= 500 || status == http.StatusTooManyRequests
}
