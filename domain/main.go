package domain

import (
	"github.com/hackpass/portal-api/config"
	"github.com/hackpass/portal-api/domain/application"
	"github.com/hackpass/portal-api/domain/checkin"
	"github.com/hackpass/portal-api/domain/contacts"
	"github.com/hackpass/portal-api/domain/monitoring"
	"github.com/hackpass/portal-api/internal/notify"
)

func SetupCoreDomain(appConfig *config.ApplicationConfig) {
	contactRepository := contacts.NewContactRepository(appConfig.DB)
	dispatcher := notify.NewDispatcherFromEnv(appConfig.Logger, contactRepository)
	appConfig.Dispatcher = dispatcher

	appConfig.RouterService.MountController(monitoring.NewMonitoringController(appConfig.DB, appConfig.Logger, appConfig.Cache))
	appConfig.RouterService.MountController(application.NewApplicationController(appConfig.DB, appConfig.Logger, dispatcher))
	appConfig.RouterService.MountController(checkin.NewCheckInController(appConfig.DB, appConfig.Logger, dispatcher))
	appConfig.RouterService.MountController(contacts.NewContactController(appConfig.DB, appConfig.Logger))
}
