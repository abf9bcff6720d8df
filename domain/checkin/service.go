package checkin

import (
	"context"

	"github.com/hackpass/portal-api/internal/log"
	"github.com/hackpass/portal-api/internal/notify"
	apperrors "github.com/hackpass/portal-api/pkg/errors"
)

// Notifier is the slice of the notification dispatcher used here.
type Notifier interface {
	Dispatch(ctx context.Context, eventType, eventSlug string, object interface{})
}

type CheckInService interface {
	// CheckIn records attendance for the target participant. The caller has
	// already decided whether the actor may check this target in; the gate
	// here is eligibility only: the target must hold an accepted
	// application. Repeated check-ins refresh the timestamp.
	CheckIn(ctx context.Context, event string, targetID int) (*CheckInResponse, error)

	// Undo removes a check-in mark.
	Undo(ctx context.Context, event string, targetID int) error
}

type checkInService struct {
	logger     *log.Logger
	repository CheckInRepository
	notifier   Notifier
}

func NewCheckInService(logger *log.Logger, repository CheckInRepository, notifier Notifier) CheckInService {
	return &checkInService{logger: logger, repository: repository, notifier: notifier}
}

func (s *checkInService) CheckIn(ctx context.Context, event string, targetID int) (*CheckInResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	checkIn, err := s.repository.Mark(ctx, event, targetID)
	if err != nil {
		if _, ok := apperrors.AsUserError(err); !ok {
			logger.Error("Failed to check in participant", "event", event, "participant_id", targetID, "error", err)
		}
		return nil, err
	}

	s.notifier.Dispatch(ctx, notify.EventCheckInMarked, event, checkIn)

	logger.Info("Participant checked in", "event", event, "participant_id", targetID)

	response := ToCheckInResponse(checkIn)
	return &response, nil
}

func (s *checkInService) Undo(ctx context.Context, event string, targetID int) error {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if err := s.repository.Delete(ctx, event, targetID); err != nil {
		if _, ok := apperrors.AsUserError(err); !ok {
			logger.Error("Failed to undo check-in", "event", event, "participant_id", targetID, "error", err)
		}
		return err
	}

	return nil
}
