package incident

import (
	"context"

	"alert-srv/internal/model"
	"alert-srv/pkg/paginator"
)

// UseCase is the incident verification service: it ingests crowd-sourced
// reports, escalates them at the corroboration threshold, and exposes the
// moderation surface.
type UseCase interface {
	// SubmitReport records a new observation. A report matching an open
	// report's (type, parish, community) corroborates it instead of
	// creating a duplicate.
	SubmitReport(ctx context.Context, sc model.Scope, input SubmitInput) (model.IncidentReport, error)

	// ConfirmOfficial marks a community-confirmed report ODPEM_VERIFIED.
	// Admin only; the transition is terminal.
	ConfirmOfficial(ctx context.Context, sc model.Scope, reportID string) (model.IncidentReport, error)

	// Moderate applies an admin review action (approve, reject, resolve).
	Moderate(ctx context.Context, sc model.Scope, reportID string, action ModerationAction) (model.IncidentReport, error)

	Detail(ctx context.Context, sc model.Scope, reportID string) (model.IncidentReport, error)
	List(ctx context.Context, sc model.Scope, input ListInput) ([]model.IncidentReport, paginator.Paginator, error)
}
