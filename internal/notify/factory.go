package notify

import (
	"os"
	"strings"

	"github.com/hackpass/portal-api/internal/log"
)

// NewDispatcherFromEnv wires the dispatcher from environment configuration.
// Either transport may be left unconfigured; the dispatcher then drops the
// corresponding notifications with a log line instead of failing requests.
func NewDispatcherFromEnv(logger *log.Logger, contacts ContactFinder) *Dispatcher {
	var webhooks WebhookPublisher
	if endpoint := strings.TrimSpace(os.Getenv("WEBHOOK_ENDPOINT")); endpoint != "" {
		webhooks = NewHTTPWebhookPublisher(WebhookConfig{
			Endpoint: endpoint,
			Token:    strings.TrimSpace(os.Getenv("WEBHOOK_TOKEN")),
		})
		logger.Info("Webhook transport configured", "endpoint", endpoint)
	} else {
		logger.Warn("WEBHOOK_ENDPOINT not set, webhook notifications disabled")
	}

	var mail MailSender
	if token := strings.TrimSpace(os.Getenv("POSTMARK_SERVER_TOKEN")); token != "" {
		mail = NewMailClient(MailConfig{
			Token:   token,
			From:    strings.TrimSpace(os.Getenv("MAIL_FROM")),
			ReplyTo: strings.TrimSpace(os.Getenv("MAIL_REPLY_TO")),
		})
		logger.Info("Mail transport configured")
	} else {
		logger.Warn("POSTMARK_SERVER_TOKEN not set, status emails disabled")
	}

	return NewDispatcher(logger, webhooks, mail, contacts)
}
