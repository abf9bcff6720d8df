package contacts

import (
	"context"
	"net/mail"

	"github.com/hackpass/portal-api/internal/log"
	"github.com/hackpass/portal-api/internal/models"
	apperrors "github.com/hackpass/portal-api/pkg/errors"
)

type ContactService interface {
	// Sync upserts the address an external profile service reports for a
	// participant. The profile service owns this data; we only mirror it.
	Sync(ctx context.Context, req *SyncContactRequest) error
}

type contactService struct {
	logger     *log.Logger
	repository ContactRepository
}

func NewContactService(logger *log.Logger, repository ContactRepository) ContactService {
	return &contactService{logger: logger, repository: repository}
}

func (s *contactService) Sync(ctx context.Context, req *SyncContactRequest) error {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if req == nil {
		logger.Error("Sync received empty request")
		return apperrors.NewInvalidRequestError("request cannot be nil", nil)
	}

	if _, err := mail.ParseAddress(req.PrimaryEmail); err != nil {
		logger.Error("Sync received invalid email", "participant_id", req.ID)
		return apperrors.NewInvalidRequestError("invalid email format", nil)
	}

	err := s.repository.Upsert(ctx, &models.EmailContact{
		ParticipantID: req.ID,
		Address:       req.PrimaryEmail,
	})
	if err != nil {
		logger.Error("Failed to sync email contact", "participant_id", req.ID, "error", err)
		return err
	}

	return nil
}
