package location

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	loc := r.Group("/location")
	{
		loc.GET("", h.Get)
		loc.PUT("", h.Update)
		loc.POST("/watch", h.StartWatch)
		loc.DELETE("/watch", h.StopWatch)
		loc.POST("/denied", h.Deny)
	}
}
