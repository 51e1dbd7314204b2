package usecase

import (
	"context"

	"alert-srv/internal/alert"
	"alert-srv/internal/alert/repository"
	"alert-srv/internal/channel"
	"alert-srv/internal/dispatcher"
	"alert-srv/internal/model"
	pkgErrors "alert-srv/pkg/errors"
)

func (uc *implUseCase) Dispatch(ctx context.Context, sc model.Scope, alertID string) (model.Alert, error) {
	if !sc.Role.AtLeast(model.RoleModerator) {
		return model.Alert{}, pkgErrors.NewPermissionError(403, "role", "moderator role or above required")
	}

	a, err := uc.repo.Detail(ctx, alertID)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Alert{}, alert.ErrAlertNotFound
		}
		uc.l.Errorf(ctx, "internal.alert.usecase.Dispatch.repo.Detail: %v", err)
		return model.Alert{}, err
	}

	if a.Expired(uc.clock.Now()) {
		return model.Alert{}, alert.ErrAlertExpired
	}

	release, ok, err := uc.locker.Acquire(ctx, dispatchLockKey(alertID), uc.cfg.LockTTL)
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.Dispatch.locker.Acquire: %v", err)
		return model.Alert{}, err
	}
	if !ok {
		return model.Alert{}, alert.ErrDispatchInProgress
	}
	defer release()

	targets, err := uc.resolver.Resolve(ctx, a.Parishes, a.Severity)
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.Dispatch.resolver.Resolve: %v", err)
		return model.Alert{}, err
	}

	if err := uc.repo.BeginDispatch(ctx, alertID, len(targets)); err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.Dispatch.repo.BeginDispatch: %v", err)
		return model.Alert{}, err
	}

	if len(targets) == 0 {
		if err := uc.repo.SetStatus(ctx, alertID, model.DeliveryStatusCompleted); err != nil {
			return model.Alert{}, err
		}
		return uc.repo.Detail(ctx, alertID)
	}

	results := uc.bc.Dispatch(ctx, channel.Payload{
		AlertID:  a.ID,
		Type:     a.Type,
		Severity: a.Severity,
		Title:    a.Title,
		Message:  a.Message,
	}, targets)

	success := uc.recordResults(ctx, alertID, results)

	// COMPLETED means nothing is left in FAILED; any remaining failure
	// leaves the alert FAILED and retryable.
	status := model.DeliveryStatusCompleted
	if success < len(results) {
		status = model.DeliveryStatusFailed
	}
	if err := uc.repo.SetStatus(ctx, alertID, status); err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.Dispatch.repo.SetStatus: %v", err)
		return model.Alert{}, err
	}

	return uc.repo.Detail(ctx, alertID)
}

// recordResults persists every per-target outcome and returns the number
// of successes. Persistence errors are logged and skipped; one bad row
// must not lose the rest of the run.
func (uc *implUseCase) recordResults(ctx context.Context, alertID string, results []dispatcher.Result) int {
	success := 0
	for _, res := range results {
		status := model.AttemptSucceeded
		var lastError *string
		if res.Err != nil {
			status = model.AttemptFailed
			msg := res.Err.Error()
			lastError = &msg
		} else {
			success++
		}

		err := uc.repo.RecordOutcome(ctx, model.DeliveryAttempt{
			AlertID:     alertID,
			RecipientID: res.Target.RecipientID,
			Channel:     res.Target.Channel,
			Address:     res.Target.Address,
			Status:      status,
			LastError:   lastError,
		})
		if err != nil {
			uc.l.Errorf(ctx, "internal.alert.usecase.recordResults.repo.RecordOutcome: %v", err)
		}
	}
	return success
}
