package company

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	companies := r.Group("/companies")

	{
		companies.GET("", h.List)
		companies.POST("", h.Create)
		companies.GET("/:code", h.Get)
		companies.PUT("/:code", h.Update)
		companies.DELETE("/:code", h.Delete)
	}
}
