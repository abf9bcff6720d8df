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

const postmarkTemplateURL = "https://api.postmarkapp.com/email/withTemplate"

// MailClient sends templated status emails through Postmark.
type MailClient struct {
	url     string
	token   string
	from    string
	replyTo string
	stream  string
	client  *http.Client
	retry   retry.RetryPolicy
	breaker circuitbreaker.CircuitBreaker
}

type MailConfig struct {
	URL     string // override for tests; defaults to the Postmark API
	Token   string
	From    string
	ReplyTo string
	Stream  string
}

func NewMailClient(cfg MailConfig) *MailClient {
	if cfg.URL == "" {
		cfg.URL = postmarkTemplateURL
	}
	if cfg.Stream == "" {
		cfg.Stream = "outbound"
	}
	return &MailClient{
		url:     cfg.URL,
		token:   cfg.Token,
		from:    cfg.From,
		replyTo: cfg.ReplyTo,
		stream:  cfg.Stream,
		client:  &http.Client{Timeout: 10 * time.Second},
		retry: retry.NewExponentialBackoff(&retry.Config{
			MaxAttempts: 3,
			BaseDelay:   200 * time.Millisecond,
			MaxDelay:    5 * time.Second,
			Multiplier:  2.0,
		}),
		breaker: circuitbreaker.NewCircuitBreaker(nil),
	}
}

type templatedEmail struct {
	TemplateAlias string            `json:"TemplateAlias"`
	TemplateModel map[string]string `json:"TemplateModel"`
	To            string            `json:"To"`
	From          string            `json:"From"`
	ReplyTo       string            `json:"ReplyTo,omitempty"`
	TrackOpens    bool              `json:"TrackOpens"`
	MessageStream string            `json:"MessageStream"`
}

func (c *MailClient) SendTemplated(ctx context.Context, templateID, recipient string) error {
	body, err := json.Marshal(templatedEmail{
		TemplateAlias: templateID,
		TemplateModel: map[string]string{},
		To:            recipient,
		From:          c.from,
		ReplyTo:       c.replyTo,
		TrackOpens:    true,
		MessageStream: c.stream,
	})
	if err != nil {
		return fmt.Errorf("mail: marshal request: %w", err)
	}

	return c.breaker.Call(func() error {
		return c.retry.Execute(func() error {
			return c.post(ctx, body)
		})
	})
}

func (c *MailClient) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("mail: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Postmark-Server-Token", c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("mail: %w", err)
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode >= 400 {
		err := fmt.Errorf("mail: provider returned %d", resp.StatusCode)
		if isTransientStatus(resp.StatusCode) {
			return retry.Retryable(err)
		}
		return err
	}
	return nil
}
