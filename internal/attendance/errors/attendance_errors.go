package attendanceerrors

import (
	"net/http"

	"geo-attend/internal/shared/apperror"
)

var (
	ErrOfficeNotConfigured = apperror.New(
		apperror.CodeNotConfigured,
		"Office location has not been set up yet",
		http.StatusConflict,
	)
	ErrLocationUnavailable = apperror.New(
		apperror.CodeLocationUnavailable,
		"Current location is not known yet",
		http.StatusConflict,
	)
	ErrOutsideGeofence = apperror.New(
		apperror.CodeOutsideGeofence,
		"You must be within the office radius to check in",
		http.StatusForbidden,
	)
)
