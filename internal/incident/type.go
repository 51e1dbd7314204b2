package incident

import (
	"time"

	"alert-srv/internal/model"
	"alert-srv/pkg/paginator"
)

// SubmitInput carries one crowd-sourced incident observation.
type SubmitInput struct {
	IncidentType string
	Severity     string
	Parish       string
	Community    string
	Description  string
	Anonymous    bool
}

// ModerationAction is an admin review decision on a report.
type ModerationAction string

const (
	ActionApprove ModerationAction = "approve"
	ActionReject  ModerationAction = "reject"
	ActionResolve ModerationAction = "resolve"
)

// ParseModerationAction parses the action path segment.
func ParseModerationAction(s string) (ModerationAction, bool) {
	switch ModerationAction(s) {
	case ActionApprove, ActionReject, ActionResolve:
		return ModerationAction(s), true
	}
	return "", false
}

// StatusFor maps a moderation action to the resulting report status.
func (a ModerationAction) StatusFor() model.ReportStatus {
	switch a {
	case ActionApprove:
		return model.ReportApproved
	case ActionReject:
		return model.ReportRejected
	default:
		return model.ReportResolved
	}
}

// ListFilter holds the recognized admin list filters. Unrecognized filter
// values are dropped before this struct is built, never rejected.
type ListFilter struct {
	Status             *model.ReportStatus
	VerificationStatus *model.VerificationStatus
	Parish             *model.Parish
	IncidentType       *model.IncidentType
	Severity           *model.Severity
	DateFrom           *time.Time
	DateTo             *time.Time
}

// ListInput is the admin incident listing request.
type ListInput struct {
	Filter   ListFilter
	Paginate paginator.PaginateQuery
}
