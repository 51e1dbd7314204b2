package http

import (
	"alert-srv/internal/middleware"
	"alert-srv/internal/model"

	"github.com/gin-gonic/gin"
)

// MapRoutes registers the alert routes on /api/alerts.
func (h *Handler) MapRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	alerts := r.Group("/alerts", mw.Auth())
	{
		alerts.GET("/:alertId", h.Detail)
		alerts.GET("/:alertId/analytics", h.Analytics)

		staff := alerts.Group("", mw.RequireRole(model.RoleModerator))
		{
			staff.POST("", h.Create)
			staff.POST("/:alertId/dispatch", h.Dispatch)
			staff.POST("/retry/:alertId", h.Retry)
		}
	}
}
