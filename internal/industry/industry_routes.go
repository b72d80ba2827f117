package industry

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	industries := r.Group("/industries")

	{
		industries.GET("", h.List)
		industries.POST("", h.Create)
		industries.POST("/:ind_code", h.Associate)
	}
}
