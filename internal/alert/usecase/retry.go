package usecase

import (
	"context"

	"alert-srv/internal/alert"
	"alert-srv/internal/alert/repository"
	"alert-srv/internal/channel"
	"alert-srv/internal/model"
	pkgErrors "alert-srv/pkg/errors"
)

// Retry re-sends exactly the attempts currently in FAILED state, at
// (recipient, channel) granularity. Attempts that already succeeded are
// never re-sent, and the alert's recipient count is never changed, so a
// second retry with nothing left to do reports totalRetried = 0 only
// when the failed set is empty; an empty set is rejected up front.
func (uc *implUseCase) Retry(ctx context.Context, sc model.Scope, alertID string) (alert.RetryResult, error) {
	if !sc.Role.AtLeast(model.RoleModerator) {
		return alert.RetryResult{}, pkgErrors.NewPermissionError(403, "role", "moderator role or above required")
	}

	a, err := uc.repo.Detail(ctx, alertID)
	if err != nil {
		if err == repository.ErrNotFound {
			return alert.RetryResult{}, alert.ErrAlertNotFound
		}
		uc.l.Errorf(ctx, "internal.alert.usecase.Retry.repo.Detail: %v", err)
		return alert.RetryResult{}, err
	}

	if a.Expired(uc.clock.Now()) {
		return alert.RetryResult{}, alert.ErrAlertExpired
	}

	failed, err := uc.repo.ListFailedAttempts(ctx, alertID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.Retry.repo.ListFailedAttempts: %v", err)
		return alert.RetryResult{}, err
	}
	if len(failed) == 0 {
		return alert.RetryResult{}, alert.ErrNoFailedDeliveries
	}

	release, ok, err := uc.locker.Acquire(ctx, dispatchLockKey(alertID), uc.cfg.LockTTL)
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.Retry.locker.Acquire: %v", err)
		return alert.RetryResult{}, err
	}
	if !ok {
		return alert.RetryResult{}, alert.ErrDispatchInProgress
	}
	defer release()

	// Recipient count stays fixed; only the status moves back to IN_PROGRESS.
	if err := uc.repo.BeginDispatch(ctx, alertID, -1); err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.Retry.repo.BeginDispatch: %v", err)
		return alert.RetryResult{}, err
	}

	// Targets come from the stored attempts, not a fresh resolution: the
	// retry set must match what actually failed, even if user opt-ins have
	// changed since.
	targets := make([]channel.Target, len(failed))
	for i, at := range failed {
		targets[i] = channel.Target{
			RecipientID: at.RecipientID,
			Channel:     at.Channel,
			Address:     at.Address,
		}
	}

	results := uc.bc.Dispatch(ctx, channel.Payload{
		AlertID:  a.ID,
		Type:     a.Type,
		Severity: a.Severity,
		Title:    a.Title,
		Message:  a.Message,
	}, targets)

	success := uc.recordResults(ctx, alertID, results)
	failure := len(results) - success

	allOutage := success == 0
	for _, res := range results {
		if res.Err != nil && !channel.IsOutage(res.Err) {
			allOutage = false
			break
		}
	}

	// The retry set was exactly the FAILED set, so the alert is COMPLETED
	// iff every retried attempt succeeded.
	status := model.DeliveryStatusCompleted
	if failure > 0 {
		status = model.DeliveryStatusFailed
	}
	if err := uc.repo.SetStatus(ctx, alertID, status); err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.Retry.repo.SetStatus: %v", err)
		return alert.RetryResult{}, err
	}

	if allOutage {
		return alert.RetryResult{}, &alert.ProviderError{Detail: "all delivery providers unavailable"}
	}

	fresh, err := uc.repo.Detail(ctx, alertID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.Retry.repo.Detail: %v", err)
		return alert.RetryResult{}, err
	}

	return alert.RetryResult{
		TotalRetried:  len(failed),
		SuccessCount:  success,
		FailureCount:  failure,
		DeliveryStats: fresh.DeliveryStats,
	}, nil
}
