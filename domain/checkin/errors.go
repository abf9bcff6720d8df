package checkin

import (
	apperrors "github.com/hackpass/portal-api/pkg/errors"
)

func NewNotEligibleError() *apperrors.UserError {
	return apperrors.NewUserError(
		apperrors.ErrorTypeForbidden,
		[]string{"id"},
		"only participants with accepted applications can check in",
	)
}

func NewCheckInNotFoundError() *apperrors.UserError {
	return apperrors.NewUserError(
		apperrors.ErrorTypeNotFound,
		[]string{"id"},
		"check-in not found",
	)
}
