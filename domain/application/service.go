package application

import (
	"context"

	"github.com/hackpass/portal-api/internal/log"
	"github.com/hackpass/portal-api/internal/models"
	"github.com/hackpass/portal-api/internal/notify"
	apperrors "github.com/hackpass/portal-api/pkg/errors"
)

// Notifier is the slice of the notification dispatcher the service uses.
// Dispatches happen strictly after the repository commit and are
// fire-and-forget: the service never learns whether delivery succeeded.
type Notifier interface {
	Dispatch(ctx context.Context, eventType, eventSlug string, object interface{})
	DispatchEmail(ctx context.Context, participantID int, templateID string)
	DispatchStatusEmail(ctx context.Context, app *models.Application)
}

type ApplicationService interface {
	// SaveDraft patches the caller's draft for the event, creating it on
	// first save. Fails with AlreadySubmitted once an application exists.
	SaveDraft(ctx context.Context, event string, participantID int, req *SaveDraftRequest) (*DraftResponse, error)

	// GetDraft returns the caller's draft, or nil when none exists.
	GetDraft(ctx context.Context, event string, participantID int) (*DraftResponse, error)

	// Submit promotes the caller's draft into a pending application.
	Submit(ctx context.Context, event string, participantID int) (*ApplicationResponse, error)

	// Get returns a single application.
	Get(ctx context.Context, event string, participantID int) (*ApplicationResponse, error)

	// List returns every application for an event.
	List(ctx context.Context, event string) ([]ApplicationResponse, error)

	// Update changes the organizer-mutable review fields (flagged, notes).
	Update(ctx context.Context, event string, participantID int, req *UpdateApplicationRequest) (*ApplicationResponse, error)

	// ChangeStatus moves an application through the review state machine.
	ChangeStatus(ctx context.Context, event string, participantID int, status string) (*ApplicationResponse, error)
}

type applicationService struct {
	logger     *log.Logger
	repository ApplicationRepository
	notifier   Notifier
}

func NewApplicationService(logger *log.Logger, repository ApplicationRepository, notifier Notifier) ApplicationService {
	return &applicationService{logger: logger, repository: repository, notifier: notifier}
}

func (s *applicationService) SaveDraft(ctx context.Context, event string, participantID int, req *SaveDraftRequest) (*DraftResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if req == nil {
		logger.Error("SaveDraft received empty request")
		return nil, apperrors.NewInvalidRequestError("request cannot be nil", nil)
	}

	draft, err := s.repository.SaveDraft(ctx, event, participantID, req.ApplyTo)
	if err != nil {
		if _, ok := apperrors.AsUserError(err); !ok {
			logger.Error("Failed to save draft", "event", event, "participant_id", participantID, "error", err)
		}
		return nil, err
	}

	response := ToDraftResponse(draft)
	return &response, nil
}

func (s *applicationService) GetDraft(ctx context.Context, event string, participantID int) (*DraftResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	draft, err := s.repository.FindDraft(ctx, event, participantID)
	if err != nil {
		logger.Error("Failed to fetch draft", "event", event, "participant_id", participantID, "error", err)
		return nil, err
	}
	if draft == nil {
		return nil, nil
	}

	response := ToDraftResponse(draft)
	return &response, nil
}

func (s *applicationService) Submit(ctx context.Context, event string, participantID int) (*ApplicationResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	app, err := s.repository.SubmitFromDraft(ctx, event, participantID)
	if err != nil {
		if _, ok := apperrors.AsUserError(err); !ok {
			logger.Error("Failed to submit application", "event", event, "participant_id", participantID, "error", err)
		}
		return nil, err
	}

	// The transaction has committed; everything past this point is
	// best-effort and must not affect the response.
	s.notifier.Dispatch(ctx, notify.EventApplicationSubmitted, event, app)
	s.notifier.DispatchStatusEmail(ctx, app)

	logger.Info("Application submitted", "event", event, "participant_id", participantID)

	response := ToApplicationResponse(app)
	return &response, nil
}

func (s *applicationService) Get(ctx context.Context, event string, participantID int) (*ApplicationResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	app, err := s.repository.Find(ctx, event, participantID)
	if err != nil {
		if _, ok := apperrors.AsUserError(err); !ok {
			logger.Error("Failed to fetch application", "event", event, "participant_id", participantID, "error", err)
		}
		return nil, err
	}

	response := ToApplicationResponse(app)
	return &response, nil
}

func (s *applicationService) List(ctx context.Context, event string) ([]ApplicationResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	apps, err := s.repository.FindAllForEvent(ctx, event)
	if err != nil {
		logger.Error("Failed to list applications", "event", event, "error", err)
		return nil, err
	}

	responses := make([]ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		responses = append(responses, ToApplicationResponse(app))
	}
	return responses, nil
}

func (s *applicationService) Update(ctx context.Context, event string, participantID int, req *UpdateApplicationRequest) (*ApplicationResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if req == nil {
		logger.Error("Update received empty request")
		return nil, apperrors.NewInvalidRequestError("request cannot be nil", nil)
	}

	app, err := s.repository.Find(ctx, event, participantID)
	if err != nil {
		return nil, err
	}

	// Only touch the columns the request actually carries. A request with
	// neither field performs no write and returns the row as-is.
	fieldsToUpdate := make(map[string]interface{})
	if req.Flagged != nil {
		fieldsToUpdate["flagged"] = *req.Flagged
	}
	if req.Notes != nil {
		fieldsToUpdate["notes"] = *req.Notes
	}

	if len(fieldsToUpdate) > 0 {
		if err := s.repository.PartialUpdate(ctx, app, fieldsToUpdate); err != nil {
			if _, ok := apperrors.AsUserError(err); !ok {
				logger.Error("Failed to update application", "event", event, "participant_id", participantID, "error", err)
			}
			return nil, err
		}

		s.notifier.Dispatch(ctx, notify.EventApplicationUpdated, event, app)
	}

	response := ToApplicationResponse(app)
	return &response, nil
}

func (s *applicationService) ChangeStatus(ctx context.Context, event string, participantID int, status string) (*ApplicationResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if !models.ValidStatus(status) {
		return nil, apperrors.NewInvalidRequestError("unknown application status", nil)
	}

	app, err := s.repository.UpdateStatus(ctx, event, participantID, status)
	if err != nil {
		if _, ok := apperrors.AsUserError(err); !ok {
			logger.Error("Failed to change application status", "event", event, "participant_id", participantID, "error", err)
		}
		return nil, err
	}

	s.notifier.Dispatch(ctx, notify.EventApplicationStatusChanged, event, app)
	s.notifier.DispatchStatusEmail(ctx, app)

	logger.Info("Application status changed", "event", event, "participant_id", participantID, "status", status)

	response := ToApplicationResponse(app)
	return &response, nil
}
