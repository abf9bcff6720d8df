package application

import (
	apperrors "github.com/hackpass/portal-api/pkg/errors"
)

// User errors returned as normal operation outcomes. Each carries the path of
// the request field it addresses so clients can attach the message to a form.

func NewAlreadySubmittedError() *apperrors.UserError {
	return apperrors.NewUserError(
		apperrors.ErrorTypeConflict,
		[]string{"submitApplication"},
		"application already submitted",
	)
}

// NewDraftLockedError is the save-path variant of AlreadySubmitted: the
// field path addresses the save operation that was refused.
func NewDraftLockedError() *apperrors.UserError {
	return apperrors.NewUserError(
		apperrors.ErrorTypeConflict,
		[]string{"saveApplication"},
		"application already submitted",
	)
}

// NewIncompleteError names the first draft field that blocked submission.
func NewIncompleteError(field string) *apperrors.UserError {
	return apperrors.NewUserError(
		apperrors.ErrorTypeInvalidRequest,
		[]string{"submitApplication", field},
		"application is incomplete",
	)
}

func NewNoDraftError() *apperrors.UserError {
	return apperrors.NewUserError(
		apperrors.ErrorTypeNotFound,
		[]string{"submitApplication"},
		"could not find a draft application",
	)
}

func NewApplicationNotFoundError() *apperrors.UserError {
	return apperrors.NewUserError(
		apperrors.ErrorTypeNotFound,
		[]string{"id"},
		"application not found",
	)
}

func NewInvalidTransitionError(current, requested string) *apperrors.UserError {
	return apperrors.NewUserError(
		apperrors.ErrorTypeInvalidRequest,
		[]string{"status"},
		"cannot transition from "+current+" to "+requested,
	)
}
