package http

import (
	"tidy-planner/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the planning endpoints. Generation is throttled per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	plans := rg.Group("/plans")
	{
		plans.POST("", mw.RateLimit(), h.Generate)
		plans.POST("/export", mw.RateLimit(), h.Export)
	}
}
