package locationerrors

import (
	"net/http"

	"geo-attend/internal/shared/apperror"
)

var (
	ErrWatchActive = apperror.New(
		apperror.CodeConflict,
		"A location watch is already active, stop it before starting a new one",
		http.StatusConflict,
	)
	ErrNoActiveWatch = apperror.New(
		apperror.CodeInvalidState,
		"No location watch is active",
		http.StatusConflict,
	)
)
