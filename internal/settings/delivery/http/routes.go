package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the settings endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	s := rg.Group("/settings")
	{
		s.GET("", h.Get)
		s.PUT("", h.Update)
	}
}
