package http

import (
	"alert-srv/internal/model"
	pkgErrors "alert-srv/pkg/errors"
	"alert-srv/pkg/postgre"
	"alert-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *Handler) processCreateRequest(c *gin.Context) (model.Scope, createAlertReq, error) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		return model.Scope{}, createAlertReq{}, pkgErrors.NewUnauthorizedHTTPError()
	}

	var req createAlertReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.alert.delivery.http.processCreateRequest.ShouldBindJSON: %v", err)
		return model.Scope{}, createAlertReq{}, pkgErrors.NewBadRequestHTTPError("invalid request body")
	}

	return sc, req, nil
}

// processAlertIDRequest extracts the scope and the alertId path parameter,
// rejecting malformed UUIDs before they reach the database.
func (h *Handler) processAlertIDRequest(c *gin.Context) (model.Scope, string, error) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		return model.Scope{}, "", pkgErrors.NewUnauthorizedHTTPError()
	}

	alertID := c.Param("alertId")
	if !postgres.IsValidUUID(alertID) {
		return model.Scope{}, "", pkgErrors.NewBadRequestHTTPError("invalid alert id")
	}

	return sc, alertID, nil
}
