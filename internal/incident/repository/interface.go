package repository

import (
	"context"
	"errors"

	"alert-srv/internal/incident"
	"alert-srv/internal/model"
	"alert-srv/pkg/paginator"
)

var ErrNotFound = errors.New("incident report not found")

// CorroborateResult reports what Corroborate did to the matched report.
type CorroborateResult struct {
	Report    model.IncidentReport
	Escalated bool
}

// Repository persists incident reports.
type Repository interface {
	Create(ctx context.Context, report model.IncidentReport) (model.IncidentReport, error)
	Detail(ctx context.Context, id string) (model.IncidentReport, error)

	// FindOpen returns the open (non-rejected, non-resolved) report matching
	// the (type, parish, community) triple, if any.
	FindOpen(ctx context.Context, incidentType model.IncidentType, parish model.Parish, community string) (model.IncidentReport, error)

	// Corroborate increments the report count and, when the count reaches
	// threshold and the report has never escalated, atomically promotes the
	// report to COMMUNITY_CONFIRMED and stamps escalated_at. The guard is in
	// SQL so concurrent corroborations escalate at most once.
	Corroborate(ctx context.Context, id string, threshold int) (CorroborateResult, error)

	// ConfirmOfficial promotes a COMMUNITY_CONFIRMED report to
	// ODPEM_VERIFIED. The WHERE clause enforces the precondition.
	ConfirmOfficial(ctx context.Context, id string) (model.IncidentReport, error)

	SetStatus(ctx context.Context, id string, status model.ReportStatus) (model.IncidentReport, error)

	List(ctx context.Context, filter incident.ListFilter, pq paginator.PaginateQuery) ([]model.IncidentReport, paginator.Paginator, error)
}
