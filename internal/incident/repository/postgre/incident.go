package postgres

import (
	"context"
	"database/sql"
	"time"

	"alert-srv/internal/incident/repository"
	"alert-srv/internal/model"

	"github.com/friendsofgo/errors"
)

const reportColumns = `id, incident_type, severity, parish, community, description,
	reporter_id, verification_status, status, report_count, escalated_at, created_at, updated_at`

func (r *implRepository) Create(ctx context.Context, report model.IncidentReport) (model.IncidentReport, error) {
	now := time.Now().UTC()
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO incident_reports (id, incident_type, severity, parish, community, description,
			reporter_id, verification_status, status, report_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 1, $10, $10)
		RETURNING `+reportColumns,
		report.ID, report.IncidentType, report.Severity, report.Parish, report.Community,
		report.Description, report.ReporterID, model.VerificationUnverified, model.ReportPending, now,
	)

	created, err := scanReport(row)
	if err != nil {
		r.l.Errorf(ctx, "internal.incident.repository.postgres.Create.Insert: %v", err)
		return model.IncidentReport{}, errors.Wrap(err, "insert incident report")
	}
	return created, nil
}

func (r *implRepository) Detail(ctx context.Context, id string) (model.IncidentReport, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+reportColumns+` FROM incident_reports WHERE id = $1`, id)

	report, err := scanReport(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.IncidentReport{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.incident.repository.postgres.Detail.Scan: %v", err)
		return model.IncidentReport{}, errors.Wrap(err, "incident detail")
	}
	return report, nil
}

func (r *implRepository) FindOpen(ctx context.Context, incidentType model.IncidentType, parish model.Parish, community string) (model.IncidentReport, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+reportColumns+`
		FROM incident_reports
		WHERE incident_type = $1 AND parish = $2 AND LOWER(community) = LOWER($3)
			AND status NOT IN ($4, $5)
		ORDER BY created_at DESC
		LIMIT 1`,
		incidentType, parish, community, model.ReportRejected, model.ReportResolved,
	)

	report, err := scanReport(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.IncidentReport{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.incident.repository.postgres.FindOpen.Scan: %v", err)
		return model.IncidentReport{}, errors.Wrap(err, "find open report")
	}
	return report, nil
}

func (r *implRepository) Corroborate(ctx context.Context, id string, threshold int) (repository.CorroborateResult, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "internal.incident.repository.postgres.Corroborate.Begin: %v", err)
		return repository.CorroborateResult{}, errors.Wrap(err, "begin tx")
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE incident_reports
		SET report_count = report_count + 1, updated_at = NOW()
		WHERE id = $1`, id)
	if err != nil {
		r.l.Errorf(ctx, "internal.incident.repository.postgres.Corroborate.Increment: %v", err)
		return repository.CorroborateResult{}, errors.Wrap(err, "increment report count")
	}
	if n, err := res.RowsAffected(); err != nil {
		return repository.CorroborateResult{}, errors.Wrap(err, "rows affected")
	} else if n == 0 {
		return repository.CorroborateResult{}, repository.ErrNotFound
	}

	// escalated_at IS NULL makes the escalation idempotent under
	// concurrency: only one corroboration can ever stamp it.
	escRes, err := tx.ExecContext(ctx, `
		UPDATE incident_reports
		SET verification_status = $2, escalated_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND report_count >= $3 AND escalated_at IS NULL`,
		id, model.VerificationCommunityConfirmed, threshold)
	if err != nil {
		r.l.Errorf(ctx, "internal.incident.repository.postgres.Corroborate.Escalate: %v", err)
		return repository.CorroborateResult{}, errors.Wrap(err, "escalate report")
	}
	escalatedRows, err := escRes.RowsAffected()
	if err != nil {
		return repository.CorroborateResult{}, errors.Wrap(err, "rows affected")
	}

	row := tx.QueryRowContext(ctx, `SELECT `+reportColumns+` FROM incident_reports WHERE id = $1`, id)
	report, err := scanReport(row)
	if err != nil {
		r.l.Errorf(ctx, "internal.incident.repository.postgres.Corroborate.Scan: %v", err)
		return repository.CorroborateResult{}, errors.Wrap(err, "reload report")
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "internal.incident.repository.postgres.Corroborate.Commit: %v", err)
		return repository.CorroborateResult{}, errors.Wrap(err, "commit")
	}

	return repository.CorroborateResult{Report: report, Escalated: escalatedRows > 0}, nil
}

func (r *implRepository) ConfirmOfficial(ctx context.Context, id string) (model.IncidentReport, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE incident_reports
		SET verification_status = $2, updated_at = NOW()
		WHERE id = $1 AND verification_status = $3
		RETURNING `+reportColumns,
		id, model.VerificationODPEMVerified, model.VerificationCommunityConfirmed,
	)

	report, err := scanReport(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.IncidentReport{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.incident.repository.postgres.ConfirmOfficial.Scan: %v", err)
		return model.IncidentReport{}, errors.Wrap(err, "confirm report")
	}
	return report, nil
}

func (r *implRepository) SetStatus(ctx context.Context, id string, status model.ReportStatus) (model.IncidentReport, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE incident_reports
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING `+reportColumns,
		id, status,
	)

	report, err := scanReport(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.IncidentReport{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.incident.repository.postgres.SetStatus.Scan: %v", err)
		return model.IncidentReport{}, errors.Wrap(err, "set report status")
	}
	return report, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReport(row rowScanner) (model.IncidentReport, error) {
	var report model.IncidentReport
	var reporterID sql.NullString
	var escalatedAt sql.NullTime
	err := row.Scan(
		&report.ID, &report.IncidentType, &report.Severity, &report.Parish, &report.Community,
		&report.Description, &reporterID, &report.VerificationStatus, &report.Status,
		&report.ReportCount, &escalatedAt, &report.CreatedAt, &report.UpdatedAt,
	)
	if err != nil {
		return model.IncidentReport{}, err
	}
	if reporterID.Valid {
		s := reporterID.String
		report.ReporterID = &s
	}
	if escalatedAt.Valid {
		t := escalatedAt.Time
		report.EscalatedAt = &t
	}
	return report, nil
}
