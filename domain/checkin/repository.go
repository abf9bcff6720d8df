package checkin

import (
	"context"
	"time"

	"github.com/hackpass/portal-api/internal/models"
	apperrors "github.com/hackpass/portal-api/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CheckInRepository interface {
	// Mark atomically verifies the participant holds an accepted
	// application and records (or refreshes) their check-in. Re-marking is
	// idempotent: the stored timestamp is overwritten, never an error.
	Mark(ctx context.Context, event string, participantID int) (*models.CheckIn, error)
	// Delete removes a check-in mark.
	Delete(ctx context.Context, event string, participantID int) error
}

type checkInRepository struct {
	db *gorm.DB
}

func NewCheckInRepository(db *gorm.DB) CheckInRepository {
	return &checkInRepository{db: db}
}

func (r *checkInRepository) Mark(ctx context.Context, event string, participantID int) (*models.CheckIn, error) {
	var checkIn *models.CheckIn

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The eligibility gate and the write share the transaction: a
		// status change racing this check-in cannot produce a mark for a
		// participant who was never accepted.
		var accepted int64
		err := tx.Model(&models.Application{}).
			Where("event = ? AND participant_id = ? AND status = ?", event, participantID, models.StatusAccepted).
			Count(&accepted).Error
		if err != nil {
			return apperrors.NewDatabaseError("failed to check application status", err)
		}
		if accepted == 0 {
			return NewNotEligibleError()
		}

		row := models.CheckIn{
			Event:         event,
			ParticipantID: participantID,
			At:            time.Now().UTC(),
		}
		err = tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event"}, {Name: "participant_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"at"}),
		}).Create(&row).Error
		if err != nil {
			return apperrors.NewDatabaseError("failed to record check-in", err)
		}

		checkIn = &row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return checkIn, nil
}

func (r *checkInRepository) Delete(ctx context.Context, event string, participantID int) error {
	result := r.db.WithContext(ctx).
		Where("event = ? AND participant_id = ?", event, participantID).
		Delete(&models.CheckIn{})
	if result.Error != nil {
		return apperrors.NewDatabaseError("failed to delete check-in", result.Error)
	}
	if result.RowsAffected == 0 {
		return NewCheckInNotFoundError()
	}
	return nil
}
