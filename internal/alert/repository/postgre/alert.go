package postgres

import (
	"context"
	"database/sql"
	"time"

	"alert-srv/internal/alert/repository"
	"alert-srv/internal/model"

	"github.com/friendsofgo/errors"
	"github.com/lib/pq"
)

const alertColumns = `id, type, severity, title, message, parishes, delivery_status,
	recipient_count, delivered_count, failed_count,
	email_sent, email_failed, sms_sent, sms_failed, push_sent, push_failed,
	created_by, created_at, expires_at, updated_at`

func (r *implRepository) Create(ctx context.Context, a model.Alert) (model.Alert, error) {
	parishes := make([]string, len(a.Parishes))
	for i, p := range a.Parishes {
		parishes[i] = string(p)
	}

	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO alerts (id, type, severity, title, message, parishes, delivery_status,
			recipient_count, delivered_count, failed_count,
			email_sent, email_failed, sms_sent, sms_failed, push_sent, push_failed,
			created_by, created_at, expires_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 0, 0, 0, 0, 0, 0, 0, 0, 0, $8, $9, $10, $9)`,
		a.ID, a.Type, a.Severity, a.Title, a.Message, pq.Array(parishes),
		model.DeliveryStatusPending, a.CreatedBy, now, a.ExpiresAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgres.Create.Insert: %v", err)
		return model.Alert{}, errors.Wrap(err, "insert alert")
	}

	return r.Detail(ctx, a.ID)
}

func (r *implRepository) Detail(ctx context.Context, id string) (model.Alert, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+alertColumns+` FROM alerts WHERE id = $1`, id)

	a, err := scanAlert(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Alert{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.alert.repository.postgres.Detail.Scan: %v", err)
		return model.Alert{}, errors.Wrap(err, "alert detail")
	}
	return a, nil
}

func (r *implRepository) BeginDispatch(ctx context.Context, id string, recipientCount int) error {
	var res sql.Result
	var err error
	if recipientCount >= 0 {
		res, err = r.db.ExecContext(ctx, `
			UPDATE alerts
			SET delivery_status = $2, recipient_count = $3, updated_at = NOW()
			WHERE id = $1`,
			id, model.DeliveryStatusInProgress, recipientCount)
	} else {
		res, err = r.db.ExecContext(ctx, `
			UPDATE alerts
			SET delivery_status = $2, updated_at = NOW()
			WHERE id = $1`,
			id, model.DeliveryStatusInProgress)
	}
	if err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgres.BeginDispatch.Update: %v", err)
		return errors.Wrap(err, "begin dispatch")
	}
	return checkAffected(res)
}

func (r *implRepository) SetStatus(ctx context.Context, id string, status model.DeliveryStatus) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE alerts SET delivery_status = $2, updated_at = NOW() WHERE id = $1`,
		id, status)
	if err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgres.SetStatus.Update: %v", err)
		return errors.Wrap(err, "set status")
	}
	return checkAffected(res)
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "rows affected")
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAlert(row rowScanner) (model.Alert, error) {
	var a model.Alert
	var parishes pq.StringArray
	var expiresAt sql.NullTime
	err := row.Scan(
		&a.ID, &a.Type, &a.Severity, &a.Title, &a.Message, &parishes, &a.DeliveryStatus,
		&a.RecipientCount, &a.DeliveredCount, &a.FailedCount,
		&a.DeliveryStats.Email.Sent, &a.DeliveryStats.Email.Failed,
		&a.DeliveryStats.SMS.Sent, &a.DeliveryStats.SMS.Failed,
		&a.DeliveryStats.Push.Sent, &a.DeliveryStats.Push.Failed,
		&a.CreatedBy, &a.CreatedAt, &expiresAt, &a.UpdatedAt,
	)
	if err != nil {
		return model.Alert{}, err
	}
	a.Parishes = make([]model.Parish, len(parishes))
	for i, p := range parishes {
		a.Parishes[i] = model.Parish(p)
	}
	if expiresAt.Valid {
		t := expiresAt.Time
		a.ExpiresAt = &t
	}
	return a, nil
}
