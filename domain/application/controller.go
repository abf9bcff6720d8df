package application

import (
	"github.com/hackpass/portal-api/config/router"
	"github.com/hackpass/portal-api/internal/actor"
	"github.com/hackpass/portal-api/internal/log"
	apperrors "github.com/hackpass/portal-api/pkg/errors"
	"gorm.io/gorm"
)

func NewApplicationController(db *gorm.DB, logger *log.Logger, notifier Notifier) *router.RESTController {
	return router.NewVersionedRESTController(
		"ApplicationController",
		"v1",
		"/events",
		func(rs *router.RouterService, c *router.RESTController) {
			repository := NewApplicationRepository(db)
			service := NewApplicationService(logger, repository, notifier)

			rs.AddPutHandler(c, nil, "/:slug/draft", saveDraftHandler(service))
			rs.AddGetHandler(c, nil, "/:slug/draft", getDraftHandler(service))
			rs.AddPostHandler(c, nil, "/:slug/applications", submitHandler(service))
			rs.AddGetHandler(c, nil, "/:slug/applications", listHandler(service))
			rs.AddGetHandler(c, nil, "/:slug/applications/:id", getHandler(service))
			rs.AddPatchHandler(c, nil, "/:slug/applications/:id", updateHandler(service))
			rs.AddPutHandler(c, nil, "/:slug/applications/:id/status", changeStatusHandler(service))
		},
	)
}

// resolveActor reads the gateway-resolved actor. Authentication happened
// upstream; only the role shape is checked here.
func resolveActor(ctx *router.RequestContext) (actor.Actor, *router.ServiceResult) {
	caller, ok := actor.FromRequest(ctx.Request)
	if !ok {
		return actor.Actor{}, router.UnauthorizedResult("Missing or invalid actor identity")
	}
	return caller, nil
}

func saveDraftHandler(service ApplicationService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		caller, errResult := resolveActor(ctx)
		if errResult != nil {
			return errResult
		}
		if !caller.IsParticipant() {
			return router.ErrorResult(apperrors.StatusForbidden, "Only participants may save a draft", nil)
		}

		slug := ctx.Param("slug")

		var req SaveDraftRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)
			validationErrors := apperrors.FormatValidationErrors(err, &req)
			if len(validationErrors) > 0 {
				return router.BadRequestResult("Invalid request payload", validationErrors)
			}
			return router.BadRequestResult("Invalid request body", nil)
		}

		response, err := service.SaveDraft(ctx.Request.Context(), slug, caller.ID, &req)
		if err != nil {
			return router.ResultFromError(err)
		}

		return router.OKResult(response, "Draft saved successfully")
	}
}

func getDraftHandler(service ApplicationService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		caller, errResult := resolveActor(ctx)
		if errResult != nil {
			return errResult
		}
		if !caller.IsParticipant() {
			return router.ErrorResult(apperrors.StatusForbidden, "Only participants have drafts", nil)
		}

		response, err := service.GetDraft(ctx.Request.Context(), ctx.Param("slug"), caller.ID)
		if err != nil {
			return router.ResultFromError(err)
		}
		if response == nil {
			return router.NotFoundResult("No draft application found")
		}

		return router.OKResult(response, "Draft retrieved successfully")
	}
}

func submitHandler(service ApplicationService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		caller, errResult := resolveActor(ctx)
		if errResult != nil {
			return errResult
		}
		if !caller.IsParticipant() {
			return router.ErrorResult(apperrors.StatusForbidden, "Only participants may submit an application", nil)
		}

		response, err := service.Submit(ctx.Request.Context(), ctx.Param("slug"), caller.ID)
		if err != nil {
			return router.ResultFromError(err)
		}

		return router.CreatedResult(response, "Application")
	}
}

func listHandler(service ApplicationService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		caller, errResult := resolveActor(ctx)
		if errResult != nil {
			return errResult
		}
		if !caller.AtLeast(actor.RoleOrganizer) {
			return router.ErrorResult(apperrors.StatusForbidden, "Organizer role required", nil)
		}

		response, err := service.List(ctx.Request.Context(), ctx.Param("slug"))
		if err != nil {
			return router.ResultFromError(err)
		}

		return router.OKResult(response, "Applications retrieved successfully")
	}
}

func getHandler(service ApplicationService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		caller, errResult := resolveActor(ctx)
		if errResult != nil {
			return errResult
		}

		id, errResult := router.ParseIDParam(ctx, "id")
		if errResult != nil {
			return errResult
		}

		// Participants may read their own application; anyone else's
		// requires at least the organizer role.
		if caller.ID != int(id) && !caller.AtLeast(actor.RoleOrganizer) {
			return router.ErrorResult(apperrors.StatusForbidden, "Organizer role required", nil)
		}

		response, err := service.Get(ctx.Request.Context(), ctx.Param("slug"), int(id))
		if err != nil {
			return router.ResultFromError(err)
		}

		return router.OKResult(response, "Application retrieved successfully")
	}
}

func updateHandler(service ApplicationService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		caller, errResult := resolveActor(ctx)
		if errResult != nil {
			return errResult
		}
		if !caller.AtLeast(actor.RoleOrganizer) {
			return router.ErrorResult(apperrors.StatusForbidden, "Organizer role required", nil)
		}

		id, errResult := router.ParseIDParam(ctx, "id")
		if errResult != nil {
			return errResult
		}

		var req UpdateApplicationRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)
			validationErrors := apperrors.FormatValidationErrors(err, &req)
			if len(validationErrors) > 0 {
				return router.BadRequestResult("Invalid request payload", validationErrors)
			}
			return router.BadRequestResult("Invalid request body", nil)
		}

		response, err := service.Update(ctx.Request.Context(), ctx.Param("slug"), int(id), &req)
		if err != nil {
			return router.ResultFromError(err)
		}

		return router.OKResult(response, "Application updated successfully")
	}
}

func changeStatusHandler(service ApplicationService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		caller, errResult := resolveActor(ctx)
		if errResult != nil {
			return errResult
		}
		if !caller.AtLeast(actor.RoleOrganizer) {
			return router.ErrorResult(apperrors.StatusForbidden, "Organizer role required", nil)
		}

		id, errResult := router.ParseIDParam(ctx, "id")
		if errResult != nil {
			return errResult
		}

		var req ChangeStatusRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)
			validationErrors := apperrors.FormatValidationErrors(err, &req)
			if len(validationErrors) > 0 {
				return router.BadRequestResult("Invalid request payload", validationErrors)
			}
			return router.BadRequestResult("Invalid request body", nil)
		}

		response, err := service.ChangeStatus(ctx.Request.Context(), ctx.Param("slug"), int(id), req.Status)
		if err != nil {
			return router.ResultFromError(err)
		}

		return router.OKResult(response, "Application status updated successfully")
	}
}
