package contacts

import (
	"github.com/hackpass/portal-api/config/router"
	"github.com/hackpass/portal-api/internal/log"
	apperrors "github.com/hackpass/portal-api/pkg/errors"
	"gorm.io/gorm"
)

func NewContactController(db *gorm.DB, logger *log.Logger) *router.RESTController {
	return router.NewVersionedRESTController(
		"ContactController",
		"v1",
		"/contacts",
		func(rs *router.RouterService, c *router.RESTController) {
			repository := NewContactRepository(db)
			service := NewContactService(logger, repository)

			rs.AddPostHandler(c, nil, "/participant", syncHandler(service))
		},
	)
}

func syncHandler(service ContactService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req SyncContactRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)
			validationErrors := apperrors.FormatValidationErrors(err, &req)
			if len(validationErrors) > 0 {
				return router.BadRequestResult("Invalid request payload", validationErrors)
			}
			return router.BadRequestResult("Invalid request body", nil)
		}

		if err := service.Sync(ctx.Request.Context(), &req); err != nil {
			return router.ResultFromError(err)
		}

		return router.OKResult(nil, "Contact synchronized successfully")
	}
}
