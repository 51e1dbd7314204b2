package alert

import (
	"context"

	"alert-srv/internal/model"
)

// UseCase is the alert service: it creates alerts, runs first dispatch,
// and exposes retry and analytics operations.
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Alert, error)
	Dispatch(ctx context.Context, sc model.Scope, alertID string) (model.Alert, error)
	Retry(ctx context.Context, sc model.Scope, alertID string) (RetryResult, error)
	Detail(ctx context.Context, sc model.Scope, alertID string) (model.Alert, error)
	Analytics(ctx context.Context, sc model.Scope, alertID string) (Analytics, error)
}
