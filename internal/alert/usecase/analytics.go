package usecase

import (
	"context"
	"math"

	"alert-srv/internal/alert"
	"alert-srv/internal/alert/repository"
	"alert-srv/internal/model"
)

func (uc *implUseCase) Detail(ctx context.Context, _ model.Scope, alertID string) (model.Alert, error) {
	a, err := uc.repo.Detail(ctx, alertID)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Alert{}, alert.ErrAlertNotFound
		}
		uc.l.Errorf(ctx, "internal.alert.usecase.Detail.repo.Detail: %v", err)
		return model.Alert{}, err
	}
	return a, nil
}

func (uc *implUseCase) Analytics(ctx context.Context, sc model.Scope, alertID string) (alert.Analytics, error) {
	a, err := uc.Detail(ctx, sc, alertID)
	if err != nil {
		return alert.Analytics{}, err
	}

	var rate float64
	if a.RecipientCount > 0 {
		rate = float64(a.DeliveredCount) / float64(a.RecipientCount) * 100
		rate = math.Round(rate*100) / 100
	}

	return alert.Analytics{
		AlertID:        a.ID,
		DeliveryStatus: a.DeliveryStatus,
		RecipientCount: a.RecipientCount,
		DeliveredCount: a.DeliveredCount,
		FailedCount:    a.FailedCount,
		DeliveryStats:  a.DeliveryStats,
		DeliveryRate:   rate,
	}, nil
}
