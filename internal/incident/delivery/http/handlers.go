package http

import (
	"alert-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Submit handles POST /api/incidents.
func (h *Handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processSubmitRequest(c)
	if err != nil {
		response.Error(c, err, h.d)
		return
	}

	report, err := h.uc.SubmitReport(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, err, h.d)
		return
	}

	response.Created(c, newReportResp(report))
}

// Detail handles GET /api/incidents/:reportId.
func (h *Handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, reportID, err := h.processReportIDRequest(c)
	if err != nil {
		response.Error(c, err, h.d)
		return
	}

	report, err := h.uc.Detail(ctx, sc, reportID)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newReportResp(report))
}

// List handles GET /api/admin/incidents.
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, input, err := h.processListRequest(c)
	if err != nil {
		response.Error(c, err, h.d)
		return
	}

	reports, pag, err := h.uc.List(ctx, sc, input)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newListResp(reports, pag))
}

// Moderate handles PUT /api/admin/incidents/:reportId/:action.
func (h *Handler) Moderate(c *gin.Context) {
	ctx := c.Request.Context()

	sc, reportID, action, err := h.processModerateRequest(c)
	if err != nil {
		response.Error(c, err, h.d)
		return
	}

	report, err := h.uc.Moderate(ctx, sc, reportID, action)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, moderateResp{
		ID:        report.ID,
		Status:    report.Status,
		UpdatedAt: report.UpdatedAt,
	})
}

// ConfirmOfficial handles PUT /api/admin/incidents/:reportId/verify.
func (h *Handler) ConfirmOfficial(c *gin.Context) {
	ctx := c.Request.Context()

	sc, reportID, err := h.processReportIDRequest(c)
	if err != nil {
		response.Error(c, err, h.d)
		return
	}

	report, err := h.uc.ConfirmOfficial(ctx, sc, reportID)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OKWithMessage(c, newReportResp(report), "Report verified")
}
