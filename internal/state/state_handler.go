package state

import (
	"context"
	"net/http"

	"geo-attend/internal/shared/apperror"
	"geo-attend/internal/shared/audit"
	"geo-attend/internal/shared/contextutil"
	"geo-attend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Manager is the part of Store the HTTP layer needs.
type Manager interface {
	Load(ctx context.Context) (UserState, error)
	Reset(ctx context.Context) error
}

type Handler struct {
	store   Manager
	auditor audit.Logger
}

func NewHandler(store Manager, auditor audit.Logger) *Handler {
	return &Handler{store: store, auditor: auditor}
}

func writeStorageError(c *gin.Context, err error) {
	contextutil.GetLogger(c.Request.Context(), zap.L()).Error("state storage failed", zap.Error(err))
	httpErr := apperror.ToHTTP(apperror.Wrap(err,
		apperror.ErrStorageUnavailable.Code,
		apperror.ErrStorageUnavailable.Message,
		apperror.ErrStorageUnavailable.HTTPStatus,
	))
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
}

func (h *Handler) Get(c *gin.Context) {
	st, err := h.store.Load(c.Request.Context())
	if err != nil {
		writeStorageError(c, err)
		return
	}
	response.Success(c, http.StatusOK, st, nil)
}

// Reset clears all stored state: office config and history.
func (h *Handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.store.Reset(ctx); err != nil {
		writeStorageError(c, err)
		return
	}

	if h.auditor != nil {
		h.auditor.Log(ctx, audit.Entry{
			Action:  "STATE_RESET",
			Message: "Attendance state cleared",
			Meta:    map[string]any{"client_ip": c.ClientIP()},
		})
	}
	response.Success(c, http.StatusOK, DefaultState(), nil)
}
