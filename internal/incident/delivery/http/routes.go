package http

import (
	"alert-srv/internal/middleware"
	"alert-srv/internal/model"

	"github.com/gin-gonic/gin"
)

// MapRoutes registers the public incident routes on /api/incidents and
// the moderation routes on /api/admin/incidents.
func (h *Handler) MapRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	incidents := r.Group("/incidents", mw.Auth())
	{
		incidents.POST("", h.Submit)
		incidents.GET("/:reportId", h.Detail)
	}

	admin := r.Group("/admin/incidents", mw.Auth(), mw.RequireRole(model.RoleModerator))
	{
		admin.GET("", h.List)
		admin.PUT("/:reportId/verify", h.ConfirmOfficial)
		admin.PUT("/:reportId/:action", h.Moderate)
	}
}
