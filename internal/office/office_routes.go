package office

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	o := r.Group("/office")
	{
		o.GET("", h.Get)
		o.PUT("", h.Save)
	}
}
