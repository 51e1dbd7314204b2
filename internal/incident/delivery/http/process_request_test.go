package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"alert-srv/internal/model"
	pkgErrors "alert-srv/pkg/errors"
	"alert-srv/pkg/log"
	"alert-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func testHandler() *Handler {
	l := log.Init(log.ZapConfig{Level: "error", Mode: "development", Encoding: "console"})
	return New(l, nil, nil)
}

func listContext(t *testing.T, query string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	req := httptest.NewRequest(http.MethodGet, "/api/admin/incidents?"+query, nil)
	ctx := scope.SetScopeToContext(req.Context(), model.Scope{UserID: "a1", Role: model.RoleAdmin})
	c.Request = req.WithContext(ctx)
	return c
}

func TestProcessListRequestFilters(t *testing.T) {
	h := testHandler()

	t.Run("valid filters are kept", func(t *testing.T) {
		c := listContext(t, "status=PENDING&parish=KINGSTON&incidentType=FLOOD&severity=HIGH&verificationStatus=UNVERIFIED")
		_, input, err := h.processListRequest(c)
		if err != nil {
			t.Fatalf("process: %v", err)
		}
		f := input.Filter
		if f.Status == nil || *f.Status != model.ReportPending {
			t.Errorf("status filter = %v, want PENDING", f.Status)
		}
		if f.Parish == nil || *f.Parish != model.ParishKingston {
			t.Errorf("parish filter = %v, want KINGSTON", f.Parish)
		}
		if f.IncidentType == nil || *f.IncidentType != model.IncidentFlood {
			t.Errorf("incidentType filter = %v, want FLOOD", f.IncidentType)
		}
		if f.Severity == nil || *f.Severity != model.SeverityHigh {
			t.Errorf("severity filter = %v, want HIGH", f.Severity)
		}
		if f.VerificationStatus == nil || *f.VerificationStatus != model.VerificationUnverified {
			t.Errorf("verificationStatus filter = %v, want UNVERIFIED", f.VerificationStatus)
		}
	})

	t.Run("unknown filter values are dropped silently", func(t *testing.T) {
		c := listContext(t, "status=BOGUS&parish=Atlantis&incidentType=METEOR&severity=EXTREME&verificationStatus=MAYBE")
		_, input, err := h.processListRequest(c)
		if err != nil {
			t.Fatalf("unknown filter values must not error: %v", err)
		}
		f := input.Filter
		if f.Status != nil || f.Parish != nil || f.IncidentType != nil || f.Severity != nil || f.VerificationStatus != nil {
			t.Errorf("filter = %+v, want all nil", f)
		}
	})

	t.Run("mixed valid and unknown", func(t *testing.T) {
		c := listContext(t, "status=APPROVED&parish=Atlantis")
		_, input, err := h.processListRequest(c)
		if err != nil {
			t.Fatalf("process: %v", err)
		}
		if input.Filter.Status == nil || *input.Filter.Status != model.ReportApproved {
			t.Errorf("status filter = %v, want APPROVED", input.Filter.Status)
		}
		if input.Filter.Parish != nil {
			t.Errorf("parish filter = %v, want dropped", input.Filter.Parish)
		}
	})

	t.Run("date filters are parsed", func(t *testing.T) {
		c := listContext(t, "dateFrom=2026-03-01T00:00:00Z&dateTo=2026-03-15")
		_, input, err := h.processListRequest(c)
		if err != nil {
			t.Fatalf("process: %v", err)
		}
		f := input.Filter
		if f.DateFrom == nil || !f.DateFrom.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("dateFrom = %v, want 2026-03-01T00:00:00Z", f.DateFrom)
		}
		if f.DateTo == nil || !f.DateTo.Equal(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("dateTo = %v, want 2026-03-15", f.DateTo)
		}
	})

	t.Run("unparseable date filters are dropped silently", func(t *testing.T) {
		c := listContext(t, "dateFrom=yesterday&dateTo=03%2F15%2F2026")
		_, input, err := h.processListRequest(c)
		if err != nil {
			t.Fatalf("unparseable dates must not error: %v", err)
		}
		if input.Filter.DateFrom != nil || input.Filter.DateTo != nil {
			t.Errorf("date filters = %v/%v, want both nil", input.Filter.DateFrom, input.Filter.DateTo)
		}
	})

	t.Run("pagination is carried through", func(t *testing.T) {
		c := listContext(t, "page=3&limit=50")
		_, input, err := h.processListRequest(c)
		if err != nil {
			t.Fatalf("process: %v", err)
		}
		if input.Paginate.Page != 3 || input.Paginate.Limit != 50 {
			t.Errorf("paginate = %+v, want page 3 limit 50", input.Paginate)
		}
	})

	t.Run("missing scope is unauthorized", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/api/admin/incidents", nil)

		_, _, err := h.processListRequest(c)
		httpErr, ok := err.(*pkgErrors.HTTPError)
		if !ok || httpErr.StatusCode != http.StatusUnauthorized {
			t.Fatalf("got %v, want 401 HTTPError", err)
		}
	})
}

func TestProcessModerateRequest(t *testing.T) {
	h := testHandler()
	gin.SetMode(gin.TestMode)

	newCtx := func(reportID, action string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		req := httptest.NewRequest(http.MethodPut, "/api/admin/incidents/"+reportID+"/"+action, nil)
		ctx := scope.SetScopeToContext(req.Context(), model.Scope{UserID: "a1", Role: model.RoleAdmin})
		c.Request = req.WithContext(ctx)
		c.Params = gin.Params{
			{Key: "reportId", Value: reportID},
			{Key: "action", Value: action},
		}
		return c
	}

	validID := "4f6c1556-9a1b-4a2e-8f6a-0f6f2b9a7f33"

	t.Run("valid actions", func(t *testing.T) {
		for _, action := range []string{"approve", "reject", "resolve"} {
			_, _, got, err := h.processModerateRequest(newCtx(validID, action))
			if err != nil {
				t.Errorf("action %s: %v", action, err)
			}
			if string(got) != action {
				t.Errorf("parsed action = %s, want %s", got, action)
			}
		}
	})

	t.Run("unknown action is a bad request", func(t *testing.T) {
		_, _, _, err := h.processModerateRequest(newCtx(validID, "escalate"))
		httpErr, ok := err.(*pkgErrors.HTTPError)
		if !ok || httpErr.StatusCode != http.StatusBadRequest {
			t.Fatalf("got %v, want 400 HTTPError", err)
		}
	})

	t.Run("malformed report id is a bad request", func(t *testing.T) {
		_, _, _, err := h.processModerateRequest(newCtx("not-a-uuid", "approve"))
		httpErr, ok := err.(*pkgErrors.HTTPError)
		if !ok || httpErr.StatusCode != http.StatusBadRequest {
			t.Fatalf("got %v, want 400 HTTPError", err)
		}
	})
}
