package assistanterrors

import (
	"net/http"

	"geo-attend/internal/shared/apperror"
)

var (
	ErrSuperseded = apperror.New(
		apperror.CodeConflict,
		"Request was replaced by a newer one",
		http.StatusConflict,
	)
	ErrUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"Assistant is shutting down",
		http.StatusServiceUnavailable,
	)
)
