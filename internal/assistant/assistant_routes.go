package assistant

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	a := r.Group("/assistant")
	{
		a.POST("/office-lookup", h.LookupOffice)
		a.POST("/analysis", h.Analyze)
	}
}
