package contacts

import (
	"context"
	"errors"

	"github.com/hackpass/portal-api/internal/models"
	apperrors "github.com/hackpass/portal-api/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ContactRepository interface {
	// FindByParticipant returns the contact for a participant, or nil.
	FindByParticipant(ctx context.Context, participantID int) (*models.EmailContact, error)
	// Upsert creates or replaces the contact for a participant.
	Upsert(ctx context.Context, contact *models.EmailContact) error
	// FindAddress returns just the address, or "" when no contact is known.
	// It satisfies the notification dispatcher's contact lookup.
	FindAddress(ctx context.Context, participantID int) (string, error)
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) FindByParticipant(ctx context.Context, participantID int) (*models.EmailContact, error) {
	var contact models.EmailContact
	err := r.db.WithContext(ctx).
		Where("participant_id = ?", participantID).
		First(&contact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewDatabaseError("failed to fetch email contact", err)
	}
	return &contact, nil
}

func (r *contactRepository) Upsert(ctx context.Context, contact *models.EmailContact) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "participant_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"address"}),
	}).Create(contact).Error
	if err != nil {
		return apperrors.NewDatabaseError("failed to upsert email contact", err)
	}
	return nil
}

// FindAddress satisfies the notification dispatcher's contact lookup.
func (r *contactRepository) FindAddress(ctx context.Context, participantID int) (string, error) {
	contact, err := r.FindByParticipant(ctx, participantID)
	if err != nil {
		return "", err
	}
	if contact == nil {
		return "", nil
	}
	return contact.Address, nil
}
