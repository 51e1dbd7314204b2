package repository

import (
	"context"
	"errors"

	"alert-srv/internal/model"
)

var ErrNotFound = errors.New("alert not found")

// Repository persists alerts and delivery attempts. It is the single
// writer of the alert's counters; all counter mutations go through
// RecordOutcome's atomic increments, never read-modify-write.
type Repository interface {
	Create(ctx context.Context, a model.Alert) (model.Alert, error)
	Detail(ctx context.Context, id string) (model.Alert, error)

	// BeginDispatch moves the alert to IN_PROGRESS and, on first dispatch,
	// fixes the recipient count. Retries pass recipientCount < 0 to leave
	// the count untouched.
	BeginDispatch(ctx context.Context, id string, recipientCount int) error

	// SetStatus records the final delivery status of a dispatch or retry.
	SetStatus(ctx context.Context, id string, status model.DeliveryStatus) error

	// RecordOutcome upserts the attempt identified by the
	// (alert, recipient, channel) triple and atomically adjusts the owning
	// alert's counters and per-channel stats in the same transaction.
	RecordOutcome(ctx context.Context, attempt model.DeliveryAttempt) error

	// ListFailedAttempts returns the attempts currently in FAILED state
	// for the alert. This is exactly the retry set.
	ListFailedAttempts(ctx context.Context, alertID string) ([]model.DeliveryAttempt, error)
}
