package notify

import (
	"context"
	"sync"
	"time"

	"github.com/hackpass/portal-api/internal/log"
	"github.com/hackpass/portal-api/internal/models"
)

// Webhook event types emitted by the coordinators.
const (
	EventApplicationSubmitted     = "application.submitted"
	EventApplicationUpdated       = "application.updated"
	EventApplicationStatusChanged = "application.status_changed"
	EventCheckInMarked            = "check_in.marked"
)

// TemplateForStatus maps an application status to its email template alias.
func TemplateForStatus(status string) string {
	return "application-" + status
}

// Payload is the body sent to webhook consumers.
type Payload struct {
	// The kind of change being announced
	Type string `json:"type"`
	// The event slug the change applies to
	For string `json:"for"`
	// The object the change applies to
	Object interface{} `json:"object"`
	// When the notification was produced
	At time.Time `json:"at"`
}

type WebhookPublisher interface {
	Publish(ctx context.Context, payload Payload) error
}

type MailSender interface {
	SendTemplated(ctx context.Context, templateID, recipient string) error
}

// ContactFinder resolves where status emails for a participant are sent.
// It returns ("", nil) when no contact is known.
type ContactFinder interface {
	FindAddress(ctx context.Context, participantID int) (string, error)
}

const dispatchTimeout = 30 * time.Second

// Dispatcher emits notifications after a coordinator's transaction commits.
// Every dispatch runs detached from the request that triggered it: a
// committed state change is real regardless of what happens to the caller,
// so cancellation of the request must not suppress the notification, and a
// transport failure is logged and discarded rather than surfaced. The
// dispatcher never participates in the transaction whose outcome it reports.
type Dispatcher struct {
	logger   *log.Logger
	webhooks WebhookPublisher
	mail     MailSender
	contacts ContactFinder

	wg sync.WaitGroup
}

func NewDispatcher(logger *log.Logger, webhooks WebhookPublisher, mail MailSender, contacts ContactFinder) *Dispatcher {
	return &Dispatcher{
		logger:   logger,
		webhooks: webhooks,
		mail:     mail,
		contacts: contacts,
	}
}

// Dispatch hands a webhook payload to the outbound transport and returns
// immediately.
func (d *Dispatcher) Dispatch(ctx context.Context, eventType, eventSlug string, object interface{}) {
	if d.webhooks == nil {
		d.logger.Debug("Webhook transport not configured, dropping notification", "type", eventType, "for", eventSlug)
		return
	}

	payload := Payload{
		Type:   eventType,
		For:    eventSlug,
		Object: object,
		At:     time.Now().UTC(),
	}

	d.spawn(ctx, func(ctx context.Context) {
		if err := d.webhooks.Publish(ctx, payload); err != nil {
			d.logger.Error("Failed to send webhook", "type", eventType, "for", eventSlug, "error", err)
		}
	})
}

// DispatchEmail looks up the participant's contact address and sends the
// templated email, detached from the caller.
func (d *Dispatcher) DispatchEmail(ctx context.Context, participantID int, templateID string) {
	if d.mail == nil || d.contacts == nil {
		d.logger.Debug("Mail transport not configured, dropping email", "template", templateID, "participant_id", participantID)
		return
	}

	d.spawn(ctx, func(ctx context.Context) {
		address, err := d.contacts.FindAddress(ctx, participantID)
		if err != nil {
			d.logger.Error("Failed to resolve email contact", "participant_id", participantID, "error", err)
			return
		}
		if address == "" {
			d.logger.Warn("No email contact for participant", "participant_id", participantID)
			return
		}

		if err := d.mail.SendTemplated(ctx, templateID, address); err != nil {
			d.logger.Error("Failed to send templated email", "template", templateID, "participant_id", participantID, "error", err)
		}
	})
}

// DispatchStatusEmail sends the status-specific email for an application.
func (d *Dispatcher) DispatchStatusEmail(ctx context.Context, app *models.Application) {
	d.DispatchEmail(ctx, app.ParticipantID, TemplateForStatus(app.Status))
}

// Wait blocks until all in-flight notifications have been attempted. Used
// during graceful shutdown; best-effort, like the dispatches themselves.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// spawn runs fn on a context detached from the request's cancellation scope.
// The correlation ID is carried over so transport logs stay correlated.
func (d *Dispatcher) spawn(ctx context.Context, fn func(context.Context)) {
	detached, cancel := context.WithTimeout(context.WithoutCancel(ctx), dispatchTimeout)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer cancel()
		fn(detached)
	}()
}
