package postgres

import (
	"context"
	"database/sql"

	"alert-srv/internal/model"
	"alert-srv/internal/user/repository"

	"github.com/friendsofgo/errors"
	"github.com/lib/pq"
)

const userColumns = `id, email, phone, push_token, parish, email_enabled, sms_enabled, push_enabled, emergency_only, is_active, created_at`

func (r *implRepository) ListEligible(ctx context.Context, opts repository.ListEligibleOptions) ([]model.User, error) {
	parishes := make([]string, len(opts.Parishes))
	for i, p := range opts.Parishes {
		parishes[i] = string(p)
	}

	// Emergency-only users are excluded below HIGH severity; users with no
	// opted-in channel are never recipients.
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE is_active = TRUE
		  AND parish = ANY($1)
		  AND ($2 OR emergency_only = FALSE)
		  AND (email_enabled OR sms_enabled OR push_enabled)`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(parishes), opts.Severity == model.SeverityHigh)
	if err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.ListEligible.Query: %v", err)
		return nil, errors.Wrap(err, "list eligible users")
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			r.l.Errorf(ctx, "internal.user.repository.postgres.ListEligible.Scan: %v", err)
			return nil, errors.Wrap(err, "scan user")
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.ListEligible.Rows: %v", err)
		return nil, errors.Wrap(err, "iterate users")
	}

	return users, nil
}

func (r *implRepository) Detail(ctx context.Context, id string) (model.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.User{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.user.repository.postgres.Detail.Scan: %v", err)
		return model.User{}, errors.Wrap(err, "user detail")
	}
	return u, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (model.User, error) {
	var u model.User
	var phone, pushToken sql.NullString
	var parish string
	err := row.Scan(
		&u.ID, &u.Email, &phone, &pushToken, &parish,
		&u.EmailEnabled, &u.SMSEnabled, &u.PushEnabled,
		&u.EmergencyOnly, &u.IsActive, &u.CreatedAt,
	)
	if err != nil {
		return model.User{}, err
	}
	u.Parish = model.Parish(parish)
	if phone.Valid {
		u.Phone = &phone.String
	}
	if pushToken.Valid {
		u.PushToken = &pushToken.String
	}
	return u, nil
}
