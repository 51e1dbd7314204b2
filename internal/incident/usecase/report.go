package usecase

import (
	"context"
	"fmt"
	"strings"

	"alert-srv/internal/incident"
	"alert-srv/internal/incident/repository"
	"alert-srv/internal/model"
	pkgErrors "alert-srv/pkg/errors"
	"alert-srv/pkg/postgre"
)

const maxDescriptionLength = 2000

func (uc *implUseCase) SubmitReport(ctx context.Context, sc model.Scope, input incident.SubmitInput) (model.IncidentReport, error) {
	collector := pkgErrors.NewValidationErrorCollector()

	incidentType, ok := model.ParseIncidentType(input.IncidentType)
	if !ok {
		collector.Add(pkgErrors.NewValidationError(400, "incidentType", "unknown incident type"))
	}
	severity, ok := model.ParseSeverity(input.Severity)
	if !ok {
		collector.Add(pkgErrors.NewValidationError(400, "severity", "unknown severity"))
	}
	parish, ok := model.ParseParish(input.Parish)
	if !ok {
		collector.Add(pkgErrors.NewValidationError(400, "parish", "unknown parish"))
	}

	community := strings.TrimSpace(input.Community)
	if community == "" {
		collector.Add(pkgErrors.NewValidationError(400, "community", "community is required"))
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		collector.Add(pkgErrors.NewValidationError(400, "description", "description is required"))
	} else if len(description) > maxDescriptionLength {
		collector.Add(pkgErrors.NewValidationError(400, "description", "description is too long"))
	}

	if collector.HasError() {
		return model.IncidentReport{}, collector
	}

	// A matching open report is corroborated rather than duplicated.
	existing, err := uc.repo.FindOpen(ctx, incidentType, parish, community)
	if err == nil {
		return uc.corroborate(ctx, existing)
	}
	if err != repository.ErrNotFound {
		uc.l.Errorf(ctx, "internal.incident.usecase.SubmitReport.repo.FindOpen: %v", err)
		return model.IncidentReport{}, err
	}

	var reporterID *string
	if !input.Anonymous && sc.UserID != "" {
		id := sc.UserID
		reporterID = &id
	}

	created, err := uc.repo.Create(ctx, model.IncidentReport{
		ID:           postgres.NewUUID(),
		IncidentType: incidentType,
		Severity:     severity,
		Parish:       parish,
		Community:    community,
		Description:  description,
		ReporterID:   reporterID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.incident.usecase.SubmitReport.repo.Create: %v", err)
		return model.IncidentReport{}, err
	}
	return created, nil
}

func (uc *implUseCase) corroborate(ctx context.Context, existing model.IncidentReport) (model.IncidentReport, error) {
	res, err := uc.repo.Corroborate(ctx, existing.ID, uc.cfg.CorroborationThreshold)
	if err != nil {
		uc.l.Errorf(ctx, "internal.incident.usecase.corroborate.repo.Corroborate: %v", err)
		return model.IncidentReport{}, err
	}

	if res.Escalated {
		uc.metrics.IncEscalation()
		uc.notifyEscalation(ctx, res.Report)
	}
	return res.Report, nil
}

// notifyEscalation pings administrators about a newly community-confirmed
// report. Failures are logged, never surfaced: the escalation itself is
// already committed.
func (uc *implUseCase) notifyEscalation(ctx context.Context, report model.IncidentReport) {
	if uc.d == nil {
		return
	}
	err := uc.d.SendNotification(ctx,
		"Incident community confirmed",
		fmt.Sprintf("%s in %s, %s reached %d corroborating reports.",
			report.IncidentType, report.Community, report.Parish, report.ReportCount),
		map[string]string{
			"Report ID": report.ID,
			"Severity":  string(report.Severity),
		},
	)
	if err != nil {
		uc.l.Warnf(ctx, "internal.incident.usecase.notifyEscalation.SendNotification: %v", err)
	}
}

func (uc *implUseCase) ConfirmOfficial(ctx context.Context, sc model.Scope, reportID string) (model.IncidentReport, error) {
	if !sc.Role.AtLeast(model.RoleAdmin) {
		return model.IncidentReport{}, pkgErrors.NewPermissionError(403, "role", "admin role required")
	}

	report, err := uc.repo.ConfirmOfficial(ctx, reportID)
	if err == nil {
		return report, nil
	}
	if err != repository.ErrNotFound {
		uc.l.Errorf(ctx, "internal.incident.usecase.ConfirmOfficial.repo.ConfirmOfficial: %v", err)
		return model.IncidentReport{}, err
	}

	// The guarded UPDATE matched nothing: distinguish a missing report
	// from one in the wrong verification state.
	existing, err := uc.repo.Detail(ctx, reportID)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.IncidentReport{}, incident.ErrReportNotFound
		}
		uc.l.Errorf(ctx, "internal.incident.usecase.ConfirmOfficial.repo.Detail: %v", err)
		return model.IncidentReport{}, err
	}
	if existing.VerificationStatus == model.VerificationODPEMVerified {
		return model.IncidentReport{}, incident.ErrAlreadyVerified
	}
	return model.IncidentReport{}, incident.ErrNotCommunityConfirmed
}
