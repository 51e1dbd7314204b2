package http

import (
	"time"

	"alert-srv/internal/incident"
	"alert-srv/internal/model"
	"alert-srv/pkg/paginator"
)

type submitReportReq struct {
	IncidentType string `json:"incidentType"`
	Severity     string `json:"severity"`
	Parish       string `json:"parish"`
	Community    string `json:"community"`
	Description  string `json:"description"`
	Anonymous    bool   `json:"anonymous"`
}

func (r submitReportReq) toInput() incident.SubmitInput {
	return incident.SubmitInput{
		IncidentType: r.IncidentType,
		Severity:     r.Severity,
		Parish:       r.Parish,
		Community:    r.Community,
		Description:  r.Description,
		Anonymous:    r.Anonymous,
	}
}

type reportResp struct {
	ID                 string                   `json:"id"`
	IncidentType       model.IncidentType       `json:"incidentType"`
	Severity           model.Severity           `json:"severity"`
	Parish             model.Parish             `json:"parish"`
	Community          string                   `json:"community"`
	Description        string                   `json:"description"`
	ReporterID         *string                  `json:"reporterId,omitempty"`
	VerificationStatus model.VerificationStatus `json:"verificationStatus"`
	Status             model.ReportStatus       `json:"status"`
	ReportCount        int                      `json:"reportCount"`
	EscalatedAt        *time.Time               `json:"escalatedAt,omitempty"`
	CreatedAt          time.Time                `json:"createdAt"`
	UpdatedAt          time.Time                `json:"updatedAt"`
}

func newReportResp(r model.IncidentReport) reportResp {
	return reportResp{
		ID:                 r.ID,
		IncidentType:       r.IncidentType,
		Severity:           r.Severity,
		Parish:             r.Parish,
		Community:          r.Community,
		Description:        r.Description,
		ReporterID:         r.ReporterID,
		VerificationStatus: r.VerificationStatus,
		Status:             r.Status,
		ReportCount:        r.ReportCount,
		EscalatedAt:        r.EscalatedAt,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

type listResp struct {
	Incidents  []reportResp                `json:"incidents"`
	Pagination paginator.PaginatorResponse `json:"pagination"`
}

func newListResp(reports []model.IncidentReport, pag paginator.Paginator) listResp {
	items := make([]reportResp, 0, len(reports))
	for _, r := range reports {
		items = append(items, newReportResp(r))
	}
	return listResp{Incidents: items, Pagination: pag.ToResponse()}
}

type moderateResp struct {
	ID        string             `json:"id"`
	Status    model.ReportStatus `json:"status"`
	UpdatedAt time.Time          `json:"updatedAt"`
}
