package usecase

import (
	"context"
	"strings"

	"alert-srv/internal/alert"
	"alert-srv/internal/model"
	pkgErrors "alert-srv/pkg/errors"
	"alert-srv/pkg/postgre"
)

const (
	maxTitleLength   = 200
	maxMessageLength = 2000
)

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input alert.CreateInput) (model.Alert, error) {
	if !sc.Role.AtLeast(model.RoleModerator) {
		return model.Alert{}, pkgErrors.NewPermissionError(403, "role", "moderator role or above required")
	}

	collector := pkgErrors.NewValidationErrorCollector()

	alertType, ok := model.ParseAlertType(input.Type)
	if !ok {
		collector.Add(pkgErrors.NewValidationError(400, "type", "unknown alert type"))
	}
	severity, ok := model.ParseSeverity(input.Severity)
	if !ok {
		collector.Add(pkgErrors.NewValidationError(400, "severity", "unknown severity"))
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		collector.Add(pkgErrors.NewValidationError(400, "title", "title is required"))
	} else if len(title) > maxTitleLength {
		collector.Add(pkgErrors.NewValidationError(400, "title", "title is too long"))
	}

	message := strings.TrimSpace(input.Message)
	if message == "" {
		collector.Add(pkgErrors.NewValidationError(400, "message", "message is required"))
	} else if len(message) > maxMessageLength {
		collector.Add(pkgErrors.NewValidationError(400, "message", "message is too long"))
	}

	parishes := make([]model.Parish, 0, len(input.Parishes))
	if len(input.Parishes) == 0 {
		collector.Add(pkgErrors.NewValidationError(400, "parishes", "at least one parish is required"))
	}
	for _, p := range input.Parishes {
		parish, ok := model.ParseParish(p)
		if !ok {
			collector.Add(pkgErrors.NewValidationError(400, "parishes", "unknown parish: "+p))
			continue
		}
		parishes = append(parishes, parish)
	}

	if input.ExpiresAt != nil && !input.ExpiresAt.After(uc.clock.Now()) {
		collector.Add(pkgErrors.NewValidationError(400, "expiresAt", "expiry must be in the future"))
	}

	if collector.HasError() {
		return model.Alert{}, collector
	}

	created, err := uc.repo.Create(ctx, model.Alert{
		ID:        postgres.NewUUID(),
		Type:      alertType,
		Severity:  severity,
		Title:     title,
		Message:   message,
		Parishes:  parishes,
		ExpiresAt: input.ExpiresAt,
		CreatedBy: sc.UserID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.Create.repo.Create: %v", err)
		return model.Alert{}, err
	}
	return created, nil
}
