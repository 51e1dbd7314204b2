package http

import (
	"time"

	"alert-srv/internal/incident"
	"alert-srv/internal/model"
	pkgErrors "alert-srv/pkg/errors"
	"alert-srv/pkg/paginator"
	"alert-srv/pkg/postgre"
	"alert-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *Handler) processSubmitRequest(c *gin.Context) (model.Scope, submitReportReq, error) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		return model.Scope{}, submitReportReq{}, pkgErrors.NewUnauthorizedHTTPError()
	}

	var req submitReportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.incident.delivery.http.processSubmitRequest.ShouldBindJSON: %v", err)
		return model.Scope{}, submitReportReq{}, pkgErrors.NewBadRequestHTTPError("invalid request body")
	}

	return sc, req, nil
}

func (h *Handler) processReportIDRequest(c *gin.Context) (model.Scope, string, error) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		return model.Scope{}, "", pkgErrors.NewUnauthorizedHTTPError()
	}

	reportID := c.Param("reportId")
	if !postgres.IsValidUUID(reportID) {
		return model.Scope{}, "", pkgErrors.NewBadRequestHTTPError("invalid report id")
	}

	return sc, reportID, nil
}

// processListRequest parses the admin listing query. Unrecognized filter
// values are silently dropped rather than rejected, so stale dashboard
// links keep working as the enums evolve.
func (h *Handler) processListRequest(c *gin.Context) (model.Scope, incident.ListInput, error) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		return model.Scope{}, incident.ListInput{}, pkgErrors.NewUnauthorizedHTTPError()
	}

	var pq paginator.PaginateQuery
	if err := c.ShouldBindQuery(&pq); err != nil {
		h.l.Warnf(ctx, "internal.incident.delivery.http.processListRequest.ShouldBindQuery: %v", err)
		return model.Scope{}, incident.ListInput{}, pkgErrors.NewBadRequestHTTPError("invalid query parameters")
	}

	var filter incident.ListFilter
	if v := c.Query("status"); v != "" {
		if status, ok := model.ParseReportStatus(v); ok {
			filter.Status = &status
		}
	}
	if v := c.Query("verificationStatus"); v != "" {
		if vs, ok := model.ParseVerificationStatus(v); ok {
			filter.VerificationStatus = &vs
		}
	}
	if v := c.Query("parish"); v != "" {
		if parish, ok := model.ParseParish(v); ok {
			filter.Parish = &parish
		}
	}
	if v := c.Query("incidentType"); v != "" {
		if t, ok := model.ParseIncidentType(v); ok {
			filter.IncidentType = &t
		}
	}
	if v := c.Query("severity"); v != "" {
		if sev, ok := model.ParseSeverity(v); ok {
			filter.Severity = &sev
		}
	}
	if v := c.Query("dateFrom"); v != "" {
		if ts, ok := parseFilterTime(v); ok {
			filter.DateFrom = &ts
		}
	}
	if v := c.Query("dateTo"); v != "" {
		if ts, ok := parseFilterTime(v); ok {
			filter.DateTo = &ts
		}
	}

	return sc, incident.ListInput{Filter: filter, Paginate: pq}, nil
}

// parseFilterTime accepts an RFC 3339 timestamp or a bare date.
func parseFilterTime(s string) (time.Time, bool) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, true
	}
	if ts, err := time.Parse("2006-01-02", s); err == nil {
		return ts, true
	}
	return time.Time{}, false
}

func (h *Handler) processModerateRequest(c *gin.Context) (model.Scope, string, incident.ModerationAction, error) {
	sc, reportID, err := h.processReportIDRequest(c)
	if err != nil {
		return model.Scope{}, "", "", err
	}

	action, ok := incident.ParseModerationAction(c.Param("action"))
	if !ok {
		return model.Scope{}, "", "", pkgErrors.NewBadRequestHTTPError("unknown moderation action")
	}

	return sc, reportID, action, nil
}
