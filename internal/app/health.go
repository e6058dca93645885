package app

import (
	"context"
	"net/http"
	"time"

	"geo-attend/internal/shared/apperror"
	"geo-attend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status     string `json:"status"`
	Storage    string `json:"storage"`
	StorageKey string `json:"storageKey"`
}

func healthHandler(infra *Infra, backend, key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := infra.Ping(ctx); err != nil {
			response.Error(c, http.StatusServiceUnavailable, apperror.CodeServiceUnavailable, "Dependency unavailable", err.Error())
			return
		}
		response.Success(c, http.StatusOK, HealthResponse{Status: "ok", Storage: backend, StorageKey: key}, nil)
	}
}
