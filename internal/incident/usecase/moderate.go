package usecase

import (
	"context"

	"alert-srv/internal/incident"
	"alert-srv/internal/incident/repository"
	"alert-srv/internal/model"
	pkgErrors "alert-srv/pkg/errors"
	"alert-srv/pkg/paginator"
)

func (uc *implUseCase) Moderate(ctx context.Context, sc model.Scope, reportID string, action incident.ModerationAction) (model.IncidentReport, error) {
	if !sc.Role.AtLeast(model.RoleModerator) {
		return model.IncidentReport{}, pkgErrors.NewPermissionError(403, "role", "moderator role or above required")
	}

	report, err := uc.repo.SetStatus(ctx, reportID, action.StatusFor())
	if err != nil {
		if err == repository.ErrNotFound {
			return model.IncidentReport{}, incident.ErrReportNotFound
		}
		uc.l.Errorf(ctx, "internal.incident.usecase.Moderate.repo.SetStatus: %v", err)
		return model.IncidentReport{}, err
	}
	return report, nil
}

func (uc *implUseCase) Detail(ctx context.Context, _ model.Scope, reportID string) (model.IncidentReport, error) {
	report, err := uc.repo.Detail(ctx, reportID)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.IncidentReport{}, incident.ErrReportNotFound
		}
		uc.l.Errorf(ctx, "internal.incident.usecase.Detail.repo.Detail: %v", err)
		return model.IncidentReport{}, err
	}
	return report, nil
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input incident.ListInput) ([]model.IncidentReport, paginator.Paginator, error) {
	if !sc.Role.AtLeast(model.RoleModerator) {
		return nil, paginator.Paginator{}, pkgErrors.NewPermissionError(403, "role", "moderator role or above required")
	}

	input.Paginate.Adjust()

	reports, pag, err := uc.repo.List(ctx, input.Filter, input.Paginate)
	if err != nil {
		uc.l.Errorf(ctx, "internal.incident.usecase.List.repo.List: %v", err)
		return nil, paginator.Paginator{}, err
	}
	return reports, pag, nil
}
