package application

import (
	"github.com/hackpass/portal-api/config/router"
	"github.com/hackpass/portal-api/internal/log"
	"gorm.io/gorm"
)

type ApplicationServiceFactory interface {
	CreateService() ApplicationService
	CreateController() *router.RESTController
}

type DefaultApplicationServiceFactory struct {
	db       *gorm.DB
	logger   *log.Logger
	notifier Notifier
}

func NewApplicationServiceFactory(db *gorm.DB, logger *log.Logger, notifier Notifier) ApplicationServiceFactory {
	return &DefaultApplicationServiceFactory{
		db:       db,
		logger:   logger,
		notifier: notifier,
	}
}

func (f *DefaultApplicationServiceFactory) CreateService() ApplicationService {
	repository := NewApplicationRepository(f.db)
	return NewApplicationService(f.logger, repository, f.notifier)
}

func (f *DefaultApplicationServiceFactory) CreateController() *router.RESTController {
	return NewApplicationController(f.db, f.logger, f.notifier)
}
