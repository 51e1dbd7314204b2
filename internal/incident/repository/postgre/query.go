package postgres

import (
	"context"
	"fmt"
	"strings"

	"alert-srv/internal/incident"
	"alert-srv/internal/model"
	"alert-srv/pkg/paginator"

	"github.com/friendsofgo/errors"
)

// buildListWhere renders the filter into a WHERE clause. Only filters the
// caller actually set produce predicates.
func buildListWhere(filter incident.ListFilter) (string, []any) {
	var conds []string
	var args []any

	add := func(column string, value any) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if filter.Status != nil {
		add("status", *filter.Status)
	}
	if filter.VerificationStatus != nil {
		add("verification_status", *filter.VerificationStatus)
	}
	if filter.Parish != nil {
		add("parish", *filter.Parish)
	}
	if filter.IncidentType != nil {
		add("incident_type", *filter.IncidentType)
	}
	if filter.Severity != nil {
		add("severity", *filter.Severity)
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		conds = append(conds, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		conds = append(conds, fmt.Sprintf("created_at <= $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *implRepository) List(ctx context.Context, filter incident.ListFilter, pq paginator.PaginateQuery) ([]model.IncidentReport, paginator.Paginator, error) {
	where, args := buildListWhere(filter)

	var total int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM incident_reports`+where, args...).Scan(&total)
	if err != nil {
		r.l.Errorf(ctx, "internal.incident.repository.postgres.List.Count: %v", err)
		return nil, paginator.Paginator{}, errors.Wrap(err, "count incident reports")
	}

	query := fmt.Sprintf(`SELECT %s FROM incident_reports%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		reportColumns, where, len(args)+1, len(args)+2)
	args = append(args, pq.Limit, pq.Offset())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "internal.incident.repository.postgres.List.Query: %v", err)
		return nil, paginator.Paginator{}, errors.Wrap(err, "list incident reports")
	}
	defer rows.Close()

	var reports []model.IncidentReport
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			r.l.Errorf(ctx, "internal.incident.repository.postgres.List.Scan: %v", err)
			return nil, paginator.Paginator{}, errors.Wrap(err, "scan incident report")
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, paginator.Paginator{}, errors.Wrap(err, "iterate incident reports")
	}

	return reports, paginator.Paginator{
		Total:       total,
		Count:       int64(len(reports)),
		PerPage:     pq.Limit,
		CurrentPage: pq.Page,
	}, nil
}
