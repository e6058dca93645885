package attendance

import (
	"geo-attend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rdb *redis.Client) {
	att := r.Group("/attendance")
	{
		att.GET("/status", h.Status)
		att.GET("/history", h.History)

		actions := att.Group("")
		if rdb != nil {
			actions.Use(middleware.Idempotency(rdb))
		}
		actions.POST("/check-in", h.CheckIn)
		actions.POST("/check-out", h.CheckOut)
	}
}
