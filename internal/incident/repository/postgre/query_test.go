package postgres

import (
	"testing"
	"time"

	"alert-srv/internal/incident"
	"alert-srv/internal/model"
)

func TestBuildListWhere(t *testing.T) {
	t.Run("empty filter", func(t *testing.T) {
		where, args := buildListWhere(incident.ListFilter{})
		if where != "" || len(args) != 0 {
			t.Errorf("got %q with %d args, want no clause", where, len(args))
		}
	})

	t.Run("date range", func(t *testing.T) {
		from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
		status := model.ReportPending

		where, args := buildListWhere(incident.ListFilter{
			Status:   &status,
			DateFrom: &from,
			DateTo:   &to,
		})
		want := " WHERE status = $1 AND created_at >= $2 AND created_at <= $3"
		if where != want {
			t.Errorf("where = %q, want %q", where, want)
		}
		if len(args) != 3 {
			t.Fatalf("got %d args, want 3", len(args))
		}
		if args[1] != from || args[2] != to {
			t.Errorf("args = %v", args)
		}
	})

	t.Run("lower bound only", func(t *testing.T) {
		from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		where, args := buildListWhere(incident.ListFilter{DateFrom: &from})
		if where != " WHERE created_at >= $1" || len(args) != 1 {
			t.Errorf("got %q with %d args", where, len(args))
		}
	})
}
