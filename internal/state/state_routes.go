package state

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	st := r.Group("/state")
	{
		st.GET("", h.Get)
		st.DELETE("", h.Reset)
	}
}
