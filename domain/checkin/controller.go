package checkin

import (
	"github.com/hackpass/portal-api/config/router"
	"github.com/hackpass/portal-api/internal/actor"
	"github.com/hackpass/portal-api/internal/log"
	apperrors "github.com/hackpass/portal-api/pkg/errors"
	"gorm.io/gorm"
)

func NewCheckInController(db *gorm.DB, logger *log.Logger, notifier Notifier) *router.RESTController {
	return router.NewVersionedRESTController(
		"CheckInController",
		"v1",
		"/events",
		func(rs *router.RouterService, c *router.RESTController) {
			repository := NewCheckInRepository(db)
			service := NewCheckInService(logger, repository, notifier)

			rs.AddPostHandler(c, nil, "/:slug/check-in", checkInHandler(service))
			rs.AddDeleteHandler(c, nil, "/:slug/check-in/:id", undoHandler(service))
		},
	)
}

func checkInHandler(service CheckInService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		caller, ok := actor.FromRequest(ctx.Request)
		if !ok {
			return router.UnauthorizedResult("Missing or invalid actor identity")
		}

		var req CheckInRequest
		if ctx.Request.ContentLength > 0 {
			if err := ctx.ShouldBindJSON(&req); err != nil {
				logger.Error("Failed to bind request", "error", err)
				validationErrors := apperrors.FormatValidationErrors(err, &req)
				if len(validationErrors) > 0 {
					return router.BadRequestResult("Invalid request payload", validationErrors)
				}
				return router.BadRequestResult("Invalid request body", nil)
			}
		}

		// Self check-in requires the participant role; checking in someone
		// else requires at least an organizer.
		targetID := caller.ID
		if req.ID != nil {
			targetID = *req.ID
		}
		if targetID == caller.ID {
			if !caller.IsParticipant() && !caller.AtLeast(actor.RoleOrganizer) {
				return router.ErrorResult(apperrors.StatusForbidden, "Participant role required", nil)
			}
		} else if !caller.AtLeast(actor.RoleOrganizer) {
			return router.ErrorResult(apperrors.StatusForbidden, "Organizer role required to check in another participant", nil)
		}

		response, err := service.CheckIn(ctx.Request.Context(), ctx.Param("slug"), targetID)
		if err != nil {
			return router.ResultFromError(err)
		}

		return router.OKResult(response, "Checked in successfully")
	}
}

func undoHandler(service CheckInService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		caller, ok := actor.FromRequest(ctx.Request)
		if !ok {
			return router.UnauthorizedResult("Missing or invalid actor identity")
		}
		if !caller.AtLeast(actor.RoleOrganizer) {
			return router.ErrorResult(apperrors.StatusForbidden, "Organizer role required", nil)
		}

		id, errResult := router.ParseIDParam(ctx, "id")
		if errResult != nil {
			return errResult
		}

		if err := service.Undo(ctx.Request.Context(), ctx.Param("slug"), int(id)); err != nil {
			return router.ResultFromError(err)
		}

		return router.OKResult(nil, "Check-in removed successfully")
	}
}
