package contacts

import (
	"context"
	"testing"

	"github.com/hackpass/portal-api/internal/log"
	"github.com/hackpass/portal-api/internal/models"
	apperrors "github.com/hackpass/portal-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*MockContactRepository, ContactService) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockRepo := NewMockContactRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewContactService(logger, mockRepo)
	return mockRepo, service
}

func TestSync_Success(t *testing.T) {
	mockRepo, service := newTestService(t)

	mockRepo.EXPECT().Upsert(gomock.Any(), &models.EmailContact{
		ParticipantID: 42,
		Address:       "alice@example.com",
	}).Return(nil)

	err := service.Sync(context.Background(), &SyncContactRequest{ID: 42, PrimaryEmail: "alice@example.com"})
	assert.NoError(t, err)
}

func TestSync_NilRequest(t *testing.T) {
	_, service := newTestService(t)

	err := service.Sync(context.Background(), nil)
	assert.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeInvalidRequest, apperrors.GetErrorType(err))
}

func TestSync_InvalidEmail(t *testing.T) {
	_, service := newTestService(t)

	err := service.Sync(context.Background(), &SyncContactRequest{ID: 42, PrimaryEmail: "not-an-email"})
	assert.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeInvalidRequest, apperrors.GetErrorType(err))
}

func TestSync_RepositoryError(t *testing.T) {
	mockRepo, service := newTestService(t)

	mockRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		Return(apperrors.NewDatabaseError("db error", nil))

	err := service.Sync(context.Background(), &SyncContactRequest{ID: 42, PrimaryEmail: "alice@example.com"})
	assert.Error(t, err)
}
