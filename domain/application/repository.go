package application

import (
	"context"
	"errors"
	"time"

	"github.com/hackpass/portal-api/internal/models"
	apperrors "github.com/hackpass/portal-api/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ApplicationRepository interface {
	// FindDraft returns the draft for the key, or nil when absent.
	FindDraft(ctx context.Context, event string, participantID int) (*models.DraftApplication, error)
	// SaveDraft atomically loads (or starts) the draft for the key, applies
	// the given patch to it and writes the whole row back. It refuses the
	// save when an application was already submitted for the key.
	SaveDraft(ctx context.Context, event string, participantID int, apply func(*models.DraftApplication)) (*models.DraftApplication, error)

	// Find returns the application for the key.
	Find(ctx context.Context, event string, participantID int) (*models.Application, error)
	// FindAllForEvent returns every application submitted to an event.
	FindAllForEvent(ctx context.Context, event string) ([]*models.Application, error)
	// SubmitFromDraft atomically promotes the key's draft into a pending
	// application and deletes the draft. Expected outcomes surface as user
	// errors: AlreadySubmitted, Incomplete, NoDraft.
	SubmitFromDraft(ctx context.Context, event string, participantID int) (*models.Application, error)
	// PartialUpdate writes only the supplied columns and folds them back into
	// app so the caller never re-fetches. An empty update map is a no-op.
	PartialUpdate(ctx context.Context, app *models.Application, updates map[string]interface{}) error
	// UpdateStatus atomically validates the requested transition against the
	// current row and writes the new status.
	UpdateStatus(ctx context.Context, event string, participantID int, status string) (*models.Application, error)
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) FindDraft(ctx context.Context, event string, participantID int) (*models.DraftApplication, error) {
	var draft models.DraftApplication
	err := r.db.WithContext(ctx).
		Where("event = ? AND participant_id = ?", event, participantID).
		First(&draft).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewDatabaseError("failed to fetch draft application", err)
	}
	return &draft, nil
}

func (r *applicationRepository) SaveDraft(ctx context.Context, event string, participantID int, apply func(*models.DraftApplication)) (*models.DraftApplication, error) {
	var draft *models.DraftApplication

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		submitted, err := existsInTx(tx, event, participantID)
		if err != nil {
			return err
		}
		if submitted {
			return NewDraftLockedError()
		}

		var current models.DraftApplication
		err = tx.Where("event = ? AND participant_id = ?", event, participantID).
			First(&current).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewDatabaseError("failed to fetch draft application", err)
			}
			current = models.DraftApplication{Event: event, ParticipantID: participantID}
		}

		apply(&current)

		// Whole-row upsert: the patched draft replaces whatever is stored,
		// within the same transaction as the read that produced it.
		err = tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event"}, {Name: "participant_id"}},
			UpdateAll: true,
		}).Create(&current).Error
		if err != nil {
			return apperrors.NewDatabaseError("failed to save draft application", err)
		}

		draft = &current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return draft, nil
}

func existsInTx(tx *gorm.DB, event string, participantID int) (bool, error) {
	var count int64
	err := tx.Model(&models.Application{}).
		Where("event = ? AND participant_id = ?", event, participantID).
		Count(&count).Error
	if err != nil {
		return false, apperrors.NewDatabaseError("failed to check application existence", err)
	}
	return count > 0, nil
}

func (r *applicationRepository) Find(ctx context.Context, event string, participantID int) (*models.Application, error) {
	var app models.Application
	err := r.db.WithContext(ctx).
		Where("event = ? AND participant_id = ?", event, participantID).
		First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewApplicationNotFoundError()
		}
		return nil, apperrors.NewDatabaseError("failed to fetch application", err)
	}
	return &app, nil
}

func (r *applicationRepository) FindAllForEvent(ctx context.Context, event string) ([]*models.Application, error) {
	var apps []*models.Application
	err := r.db.WithContext(ctx).
		Where("event = ?", event).
		Order("created_at ASC").
		Find(&apps).Error
	if err != nil {
		return nil, apperrors.NewDatabaseError("failed to fetch applications", err)
	}
	return apps, nil
}

func (r *applicationRepository) SubmitFromDraft(ctx context.Context, event string, participantID int) (*models.Application, error) {
	var app *models.Application

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		submitted, err := existsInTx(tx, event, participantID)
		if err != nil {
			return err
		}
		if submitted {
			return NewAlreadySubmittedError()
		}

		var draft models.DraftApplication
		err = tx.Where("event = ? AND participant_id = ?", event, participantID).
			First(&draft).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewNoDraftError()
			}
			return apperrors.NewDatabaseError("failed to fetch draft application", err)
		}

		candidate, userErr := applicationFromDraft(&draft)
		if userErr != nil {
			return userErr
		}

		if err := tx.Create(candidate).Error; err != nil {
			// A racing submission that slipped past the existence check hits
			// the (event, participant_id) unique constraint here. Surface it
			// as the same user error, not as an opaque fault.
			if isDuplicateKey(err) {
				return NewAlreadySubmittedError()
			}
			return apperrors.NewDatabaseError("failed to create application", err)
		}

		err = tx.Where("event = ? AND participant_id = ?", event, participantID).
			Delete(&models.DraftApplication{}).Error
		if err != nil {
			return apperrors.NewDatabaseError("failed to delete promoted draft", err)
		}

		app = candidate
		return nil
	})
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (r *applicationRepository) PartialUpdate(ctx context.Context, app *models.Application, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}

	// Write an explicit timestamp so the value folded back into app is the
	// one the row now carries, without a re-fetch.
	columns := make(map[string]interface{}, len(updates)+1)
	for k, v := range updates {
		columns[k] = v
	}
	columns["updated_at"] = time.Now().UTC()

	result := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("event = ? AND participant_id = ?", app.Event, app.ParticipantID).
		Updates(columns)

	if result.Error != nil {
		return apperrors.NewDatabaseError("failed to update application", result.Error)
	}
	if result.RowsAffected == 0 {
		return NewApplicationNotFoundError()
	}

	applyUpdates(app, columns)
	return nil
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, event string, participantID int, status string) (*models.Application, error) {
	var app *models.Application

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.Application
		err := tx.Where("event = ? AND participant_id = ?", event, participantID).
			First(&current).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewApplicationNotFoundError()
			}
			return apperrors.NewDatabaseError("failed to fetch application", err)
		}

		// The guard and the write share the transaction so a concurrent
		// status change cannot slip between them.
		if !CanTransition(current.Status, status) {
			return NewInvalidTransitionError(current.Status, status)
		}

		now := time.Now().UTC()
		err = tx.Model(&models.Application{}).
			Where("event = ? AND participant_id = ?", event, participantID).
			Updates(map[string]interface{}{"status": status, "updated_at": now}).Error
		if err != nil {
			return apperrors.NewDatabaseError("failed to update application status", err)
		}

		current.Status = status
		current.UpdatedAt = now
		app = &current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return app, nil
}

// applyUpdates folds a column update map back into the in-memory model.
func applyUpdates(app *models.Application, updates map[string]interface{}) {
	if v, ok := updates["status"].(string); ok {
		app.Status = v
	}
	if v, ok := updates["flagged"].(bool); ok {
		app.Flagged = v
	}
	if v, ok := updates["notes"].(string); ok {
		app.Notes = v
	}
	if v, ok := updates["updated_at"].(time.Time); ok {
		app.UpdatedAt = v
	}
}

func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || apperrors.IsDuplicateKeyError(err)
}
