package notify

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/hackpass/portal-api/internal/log"
	"github.com/hackpass/portal-api/internal/models"
	"github.com/stretchr/testify/assert"
)

type stubPublisher struct {
	mu       sync.Mutex
	payloads []Payload
	err      error
}

func (s *stubPublisher) Publish(_ context.Context, payload Payload) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payloads = append(s.payloads, payload)
	return s.err
}

type stubSender struct {
	mu         sync.Mutex
	templates  []string
	recipients []string
	err        error
}

func (s *stubSender) SendTemplated(_ context.Context, templateID, recipient string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates = append(s.templates, templateID)
	s.recipients = append(s.recipients, recipient)
	return s.err
}

type stubContacts struct {
	addresses map[int]string
	err       error
}

func (s *stubContacts) FindAddress(_ context.Context, participantID int) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.addresses[participantID], nil
}

func newTestDispatcher(publisher WebhookPublisher, sender MailSender, contacts ContactFinder) *Dispatcher {
	return NewDispatcher(log.NewLoggerWithJSONOutput(), publisher, sender, contacts)
}

func TestDispatch_SendsPayload(t *testing.T) {
	publisher := &stubPublisher{}
	d := newTestDispatcher(publisher, nil, nil)

	d.Dispatch(context.Background(), EventApplicationSubmitted, "hack-2026", map[string]int{"participant_id": 42})
	d.Wait()

	if assert.Len(t, publisher.payloads, 1) {
		payload := publisher.payloads[0]
		assert.Equal(t, EventApplicationSubmitted, payload.Type)
		assert.Equal(t, "hack-2026", payload.For)
		assert.NotNil(t, payload.Object)
		assert.False(t, payload.At.IsZero())
	}
}

func TestDispatch_NoTransportConfigured(t *testing.T) {
	d := newTestDispatcher(nil, nil, nil)

	// Must not panic and must not leave anything in flight.
	d.Dispatch(context.Background(), EventApplicationSubmitted, "hack-2026", nil)
	d.Wait()
}

func TestDispatch_TransportFailureIsSwallowed(t *testing.T) {
	publisher := &stubPublisher{err: errors.New("connection refused")}
	d := newTestDispatcher(publisher, nil, nil)

	d.Dispatch(context.Background(), EventApplicationSubmitted, "hack-2026", nil)
	d.Wait()

	assert.Len(t, publisher.payloads, 1)
}

func TestDispatch_SurvivesCallerCancellation(t *testing.T) {
	publisher := &stubPublisher{}
	d := newTestDispatcher(publisher, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d.Dispatch(ctx, EventApplicationStatusChanged, "hack-2026", nil)
	d.Wait()

	assert.Len(t, publisher.payloads, 1)
}

func TestDispatchEmail_SendsToKnownContact(t *testing.T) {
	sender := &stubSender{}
	contacts := &stubContacts{addresses: map[int]string{42: "alice@example.com"}}
	d := newTestDispatcher(nil, sender, contacts)

	d.DispatchEmail(context.Background(), 42, "application-accepted")
	d.Wait()

	assert.Equal(t, []string{"application-accepted"}, sender.templates)
	assert.Equal(t, []string{"alice@example.com"}, sender.recipients)
}

func TestDispatchEmail_UnknownContactDropsQuietly(t *testing.T) {
	sender := &stubSender{}
	contacts := &stubContacts{addresses: map[int]string{}}
	d := newTestDispatcher(nil, sender, contacts)

	d.DispatchEmail(context.Background(), 99, "application-rejected")
	d.Wait()

	assert.Empty(t, sender.templates)
}

func TestDispatchEmail_LookupFailureDropsQuietly(t *testing.T) {
	sender := &stubSender{}
	contacts := &stubContacts{err: errors.New("db down")}
	d := newTestDispatcher(nil, sender, contacts)

	d.DispatchEmail(context.Background(), 42, "application-accepted")
	d.Wait()

	assert.Empty(t, sender.templates)
}

func TestDispatchStatusEmail_UsesStatusTemplate(t *testing.T) {
	sender := &stubSender{}
	contacts := &stubContacts{addresses: map[int]string{7: "bob@example.com"}}
	d := newTestDispatcher(nil, sender, contacts)

	d.DispatchStatusEmail(context.Background(), &models.Application{
		ParticipantID: 7,
		Status:        models.StatusWaitlisted,
	})
	d.Wait()

	assert.Equal(t, []string{"application-waitlisted"}, sender.templates)
	assert.Equal(t, []string{"bob@example.com"}, sender.recipients)
}

func TestTemplateForStatus(t *testing.T) {
	assert.Equal(t, "application-pending", TemplateForStatus(models.StatusPending))
	assert.Equal(t, "application-waitlisted", TemplateForStatus(models.StatusWaitlisted))
	assert.Equal(t, "application-accepted", TemplateForStatus(models.StatusAccepted))
	assert.Equal(t, "application-rejected", TemplateForStatus(models.StatusRejected))
}
