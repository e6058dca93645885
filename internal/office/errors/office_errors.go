package officeerrors

import (
	"net/http"

	"geo-attend/internal/shared/apperror"
)

var (
	ErrOfficeNotConfigured = apperror.New(
		apperror.CodeNotConfigured,
		"Office location has not been set up yet",
		http.StatusNotFound,
	)
	ErrInvalidRadius = apperror.New(
		apperror.CodeInvalidInput,
		"Radius must be greater than zero",
		http.StatusBadRequest,
	)
)
