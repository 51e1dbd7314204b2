package model

import "time"

// IncidentType classifies a crowd-sourced hazard report.
type IncidentType string

const (
	IncidentFlood     IncidentType = "FLOOD"
	IncidentFire      IncidentType = "FIRE"
	IncidentLandslide IncidentType = "LANDSLIDE"
	IncidentAccident  IncidentType = "ACCIDENT"
	IncidentPowerLine IncidentType = "POWER_LINE"
	IncidentOther     IncidentType = "OTHER"
)

var incidentTypes = map[IncidentType]struct{}{
	IncidentFlood:     {},
	IncidentFire:      {},
	IncidentLandslide: {},
	IncidentAccident:  {},
	IncidentPowerLine: {},
	IncidentOther:     {},
}

// ParseIncidentType parses an incident type code.
func ParseIncidentType(s string) (IncidentType, bool) {
	t := IncidentType(s)
	_, ok := incidentTypes[t]
	return t, ok
}

// VerificationStatus is an incident report's credibility stage.
//
// UNVERIFIED -> COMMUNITY_CONFIRMED happens automatically when the
// corroboration threshold is reached. COMMUNITY_CONFIRMED -> ODPEM_VERIFIED
// happens only through an explicit administrative confirmation and is
// terminal.
type VerificationStatus string

const (
	VerificationUnverified         VerificationStatus = "UNVERIFIED"
	VerificationCommunityConfirmed VerificationStatus = "COMMUNITY_CONFIRMED"
	VerificationODPEMVerified      VerificationStatus = "ODPEM_VERIFIED"
)

var verificationStatuses = map[VerificationStatus]struct{}{
	VerificationUnverified:         {},
	VerificationCommunityConfirmed: {},
	VerificationODPEMVerified:      {},
}

// ParseVerificationStatus parses a verification status code.
func ParseVerificationStatus(s string) (VerificationStatus, bool) {
	v := VerificationStatus(s)
	_, ok := verificationStatuses[v]
	return v, ok
}

// ReportStatus is the admin-review dimension of a report. It is
// independent of VerificationStatus.
type ReportStatus string

const (
	ReportPending  ReportStatus = "PENDING"
	ReportApproved ReportStatus = "APPROVED"
	ReportRejected ReportStatus = "REJECTED"
	ReportResolved ReportStatus = "RESOLVED"
)

var reportStatuses = map[ReportStatus]struct{}{
	ReportPending:  {},
	ReportApproved: {},
	ReportRejected: {},
	ReportResolved: {},
}

// ParseReportStatus parses a report status code.
func ParseReportStatus(s string) (ReportStatus, bool) {
	r := ReportStatus(s)
	_, ok := reportStatuses[r]
	return r, ok
}

// IncidentReport is a crowd-sourced observation of a real-world hazard,
// distinct from an Alert.
//
// EscalatedAt is set exactly once, on the transition to
// COMMUNITY_CONFIRMED, and never cleared.
type IncidentReport struct {
	ID                 string             `json:"id"`
	IncidentType       IncidentType       `json:"incidentType"`
	Severity           Severity           `json:"severity"`
	Parish             Parish             `json:"parish"`
	Community          string             `json:"community"`
	Description        string             `json:"description"`
	ReporterID         *string            `json:"reporterId,omitempty"` // nil when anonymous
	VerificationStatus VerificationStatus `json:"verificationStatus"`
	Status             ReportStatus       `json:"status"`
	ReportCount        int                `json:"reportCount"`
	EscalatedAt        *time.Time         `json:"escalatedAt,omitempty"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
}
