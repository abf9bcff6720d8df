package checkin

import (
	"github.com/hackpass/portal-api/config/router"
	"github.com/hackpass/portal-api/internal/log"
	"gorm.io/gorm"
)

type CheckInServiceFactory interface {
	CreateService() CheckInService
	CreateController() *router.RESTController
}

type DefaultCheckInServiceFactory struct {
	db       *gorm.DB
	logger   *log.Logger
	notifier Notifier
}

func NewCheckInServiceFactory(db *gorm.DB, logger *log.Logger, notifier Notifier) CheckInServiceFactory {
	return &DefaultCheckInServiceFactory{
		db:       db,
		logger:   logger,
		notifier: notifier,
	}
}

func (f *DefaultCheckInServiceFactory) CreateService() CheckInService {
	repository := NewCheckInRepository(f.db)
	return NewCheckInService(f.logger, repository, f.notifier)
}

func (f *DefaultCheckInServiceFactory) CreateController() *router.RESTController {
	return NewCheckInController(f.db, f.logger, f.notifier)
}
