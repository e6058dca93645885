package location

import (
	"net/http"

	"geo-attend/internal/geo"
	"geo-attend/internal/shared/apperror"
	"geo-attend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=location_handler.go -destination=mock/location_service_mock.go -package=mock
type Service interface {
	Start() error
	Stop()
	Update(loc geo.Location) error
	Deny(unsupported bool)
	Snapshot() Snapshot
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Get(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Snapshot(), nil)
}

func (h *Handler) StartWatch(c *gin.Context) {
	if err := h.service.Start(); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, h.service.Snapshot(), nil)
}

func (h *Handler) StopWatch(c *gin.Context) {
	h.service.Stop()
	response.Success(c, http.StatusOK, h.service.Snapshot(), nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	loc := geo.Location{Latitude: *req.Latitude, Longitude: *req.Longitude}
	if err := h.service.Update(loc); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.service.Snapshot(), nil)
}

func (h *Handler) Deny(c *gin.Context) {
	var req DenyRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			writeServiceError(c, apperror.MapValidationError(err))
			return
		}
	}

	h.service.Deny(req.Reason == "unsupported")
	response.Success(c, http.StatusOK, h.service.Snapshot(), nil)
}
