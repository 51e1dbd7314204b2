package postgres

import (
	"context"
	"database/sql"

	"alert-srv/internal/model"

	"github.com/friendsofgo/errors"
)

// counterDelta is the set of increments a single outcome applies to the
// owning alert row. Applied in one UPDATE so the counters never drift
// from the attempt table.
type counterDelta struct {
	delivered, failed    int
	chanSent, chanFailed int
}

// deltaFor derives the counter adjustment from the attempt's state
// transition. prev is empty when no attempt existed yet.
func deltaFor(prev, next model.AttemptStatus) (counterDelta, bool) {
	switch {
	case prev == "" && next == model.AttemptSucceeded:
		return counterDelta{delivered: 1, chanSent: 1}, true
	case prev == "" && next == model.AttemptFailed:
		return counterDelta{failed: 1, chanFailed: 1}, true
	case prev == model.AttemptFailed && next == model.AttemptSucceeded:
		return counterDelta{delivered: 1, failed: -1, chanSent: 1, chanFailed: -1}, true
	case prev == model.AttemptFailed && next == model.AttemptFailed:
		return counterDelta{}, true
	default:
		// SUCCEEDED is terminal; anything else is a bug upstream.
		return counterDelta{}, false
	}
}

func channelColumns(ch model.Channel) (sent, failed string) {
	switch ch {
	case model.ChannelEmail:
		return "email_sent", "email_failed"
	case model.ChannelSMS:
		return "sms_sent", "sms_failed"
	default:
		return "push_sent", "push_failed"
	}
}

func (r *implRepository) RecordOutcome(ctx context.Context, attempt model.DeliveryAttempt) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgres.RecordOutcome.Begin: %v", err)
		return errors.Wrap(err, "begin tx")
	}
	defer tx.Rollback()

	var prev model.AttemptStatus
	err = tx.QueryRowContext(ctx, `
		SELECT status FROM delivery_attempts
		WHERE alert_id = $1 AND recipient_id = $2 AND channel = $3
		FOR UPDATE`,
		attempt.AlertID, attempt.RecipientID, attempt.Channel,
	).Scan(&prev)
	if err != nil && err != sql.ErrNoRows {
		r.l.Errorf(ctx, "internal.alert.repository.postgres.RecordOutcome.Select: %v", err)
		return errors.Wrap(err, "select attempt")
	}

	delta, ok := deltaFor(prev, attempt.Status)
	if !ok {
		// Already delivered; the record is terminal and the counters stand.
		return nil
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO delivery_attempts (alert_id, recipient_id, channel, address, status, attempts, last_error, updated_at)
		VALUES ($1, $2, $3, $4, $5, 1, $6, NOW())
		ON CONFLICT (alert_id, recipient_id, channel) DO UPDATE
		SET status = EXCLUDED.status,
			address = EXCLUDED.address,
			attempts = delivery_attempts.attempts + 1,
			last_error = EXCLUDED.last_error,
			updated_at = NOW()`,
		attempt.AlertID, attempt.RecipientID, attempt.Channel, attempt.Address,
		attempt.Status, attempt.LastError,
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgres.RecordOutcome.Upsert: %v", err)
		return errors.Wrap(err, "upsert attempt")
	}

	if delta != (counterDelta{}) {
		sentCol, failedCol := channelColumns(attempt.Channel)
		_, err = tx.ExecContext(ctx, `
			UPDATE alerts
			SET delivered_count = delivered_count + $2,
				failed_count = failed_count + $3,
				`+sentCol+` = `+sentCol+` + $4,
				`+failedCol+` = `+failedCol+` + $5,
				updated_at = NOW()
			WHERE id = $1`,
			attempt.AlertID, delta.delivered, delta.failed, delta.chanSent, delta.chanFailed,
		)
		if err != nil {
			r.l.Errorf(ctx, "internal.alert.repository.postgres.RecordOutcome.Counters: %v", err)
			return errors.Wrap(err, "update counters")
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgres.RecordOutcome.Commit: %v", err)
		return errors.Wrap(err, "commit")
	}
	return nil
}

func (r *implRepository) ListFailedAttempts(ctx context.Context, alertID string) ([]model.DeliveryAttempt, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT alert_id, recipient_id, channel, address, status, attempts, last_error, updated_at
		FROM delivery_attempts
		WHERE alert_id = $1 AND status = $2
		ORDER BY recipient_id, channel`,
		alertID, model.AttemptFailed)
	if err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgres.ListFailedAttempts.Query: %v", err)
		return nil, errors.Wrap(err, "list failed attempts")
	}
	defer rows.Close()

	var attempts []model.DeliveryAttempt
	for rows.Next() {
		var a model.DeliveryAttempt
		var lastError sql.NullString
		if err := rows.Scan(&a.AlertID, &a.RecipientID, &a.Channel, &a.Address,
			&a.Status, &a.Attempts, &lastError, &a.UpdatedAt); err != nil {
			r.l.Errorf(ctx, "internal.alert.repository.postgres.ListFailedAttempts.Scan: %v", err)
			return nil, errors.Wrap(err, "scan attempt")
		}
		if lastError.Valid {
			s := lastError.String
			a.LastError = &s
		}
		attempts = append(attempts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate attempts")
	}
	return attempts, nil
}
