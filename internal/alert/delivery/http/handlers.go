package http

import (
	"errors"

	"alert-srv/internal/alert"
	pkgErrors "alert-srv/pkg/errors"
	"alert-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Create handles POST /api/alerts.
func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processCreateRequest(c)
	if err != nil {
		response.Error(c, err, h.d)
		return
	}

	a, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, err, h.d)
		return
	}

	response.Created(c, newAlertResp(a))
}

// Detail handles GET /api/alerts/:alertId.
func (h *Handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, alertID, err := h.processAlertIDRequest(c)
	if err != nil {
		response.Error(c, err, h.d)
		return
	}

	a, err := h.uc.Detail(ctx, sc, alertID)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newAlertResp(a))
}

// Dispatch handles POST /api/alerts/:alertId/dispatch.
func (h *Handler) Dispatch(c *gin.Context) {
	ctx := c.Request.Context()

	sc, alertID, err := h.processAlertIDRequest(c)
	if err != nil {
		response.Error(c, err, h.d)
		return
	}

	a, err := h.uc.Dispatch(ctx, sc, alertID)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OKWithMessage(c, newAlertResp(a), "Alert dispatched")
}

// Retry handles POST /api/alerts/retry/:alertId.
func (h *Handler) Retry(c *gin.Context) {
	ctx := c.Request.Context()

	sc, alertID, err := h.processAlertIDRequest(c)
	if err != nil {
		response.Error(c, err, h.d)
		return
	}

	result, err := h.uc.Retry(ctx, sc, alertID)
	if err != nil {
		var pErr *alert.ProviderError
		if errors.As(err, &pErr) {
			response.Error(c, pkgErrors.NewInternalHTTPError("Failed to retry alert delivery", pErr.Detail), h.d)
			return
		}
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OKWithMessage(c, retryResp{AlertID: alertID, RetryResult: result}, "Retry completed")
}

// Analytics handles GET /api/alerts/:alertId/analytics.
func (h *Handler) Analytics(c *gin.Context) {
	ctx := c.Request.Context()

	sc, alertID, err := h.processAlertIDRequest(c)
	if err != nil {
		response.Error(c, err, h.d)
		return
	}

	analytics, err := h.uc.Analytics(ctx, sc, alertID)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, analytics)
}
