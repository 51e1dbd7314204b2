package usecase

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"alert-srv/internal/incident"
	"alert-srv/internal/incident/repository"
	"alert-srv/internal/model"
	"alert-srv/pkg/discord"
	pkgErrors "alert-srv/pkg/errors"
	"alert-srv/pkg/log"
	"alert-srv/pkg/metrics"
	"alert-srv/pkg/paginator"
	"alert-srv/pkg/postgre"
)

// memRepo is an in-memory repository.Repository applying the same
// escalation guard as the SQL implementation.
type memRepo struct {
	mu      sync.Mutex
	reports map[string]*model.IncidentReport
}

func newMemRepo() *memRepo {
	return &memRepo{reports: make(map[string]*model.IncidentReport)}
}

func (r *memRepo) Create(_ context.Context, report model.IncidentReport) (model.IncidentReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	report.VerificationStatus = model.VerificationUnverified
	report.Status = model.ReportPending
	report.ReportCount = 1
	report.CreatedAt = now
	report.UpdatedAt = now
	r.reports[report.ID] = &report
	return report, nil
}

func (r *memRepo) Detail(_ context.Context, id string) (model.IncidentReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	report, ok := r.reports[id]
	if !ok {
		return model.IncidentReport{}, repository.ErrNotFound
	}
	return *report, nil
}

func (r *memRepo) FindOpen(_ context.Context, incidentType model.IncidentType, parish model.Parish, community string) (model.IncidentReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, report := range r.reports {
		if report.IncidentType == incidentType && report.Parish == parish &&
			strings.EqualFold(report.Community, community) &&
			report.Status != model.ReportRejected && report.Status != model.ReportResolved {
			return *report, nil
		}
	}
	return model.IncidentReport{}, repository.ErrNotFound
}

func (r *memRepo) Corroborate(_ context.Context, id string, threshold int) (repository.CorroborateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	report, ok := r.reports[id]
	if !ok {
		return repository.CorroborateResult{}, repository.ErrNotFound
	}
	report.ReportCount++
	report.UpdatedAt = time.Now()

	escalated := false
	if report.ReportCount >= threshold && report.EscalatedAt == nil {
		now := time.Now()
		report.EscalatedAt = &now
		report.VerificationStatus = model.VerificationCommunityConfirmed
		escalated = true
	}
	return repository.CorroborateResult{Report: *report, Escalated: escalated}, nil
}

func (r *memRepo) ConfirmOfficial(_ context.Context, id string) (model.IncidentReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	report, ok := r.reports[id]
	if !ok || report.VerificationStatus != model.VerificationCommunityConfirmed {
		return model.IncidentReport{}, repository.ErrNotFound
	}
	report.VerificationStatus = model.VerificationODPEMVerified
	report.UpdatedAt = time.Now()
	return *report, nil
}

func (r *memRepo) SetStatus(_ context.Context, id string, status model.ReportStatus) (model.IncidentReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	report, ok := r.reports[id]
	if !ok {
		return model.IncidentReport{}, repository.ErrNotFound
	}
	report.Status = status
	report.UpdatedAt = time.Now()
	return *report, nil
}

func (r *memRepo) List(_ context.Context, filter incident.ListFilter, pq paginator.PaginateQuery) ([]model.IncidentReport, paginator.Paginator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.IncidentReport
	for _, report := range r.reports {
		if filter.Status != nil && report.Status != *filter.Status {
			continue
		}
		if filter.Parish != nil && report.Parish != *filter.Parish {
			continue
		}
		out = append(out, *report)
	}
	return out, paginator.Paginator{
		Total:       int64(len(out)),
		Count:       int64(len(out)),
		PerPage:     pq.Limit,
		CurrentPage: pq.Page,
	}, nil
}

// fakeNotifier records escalation notifications. Only SendNotification
// matters to these tests.
type fakeNotifier struct {
	mu            sync.Mutex
	notifications int
}

func (n *fakeNotifier) SendMessage(context.Context, string) error { return nil }
func (n *fakeNotifier) SendEmbed(context.Context, discord.MessageOptions) error { return nil }
func (n *fakeNotifier) SendNotification(context.Context, string, string, map[string]string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notifications++
	return nil
}
func (n *fakeNotifier) ReportBug(context.Context, string) error { return nil }
func (n *fakeNotifier) GetWebhookURL() string { return "" }
func (n *fakeNotifier) Close() error { return nil }

func (n *fakeNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.notifications
}

func testLogger() log.Logger {
	return log.Init(log.ZapConfig{Level: "error", Mode: "development", Encoding: "console"})
}

func userScope() model.Scope {
	return model.Scope{UserID: postgres.NewUUID(), Username: "resident", Role: model.RoleUser}
}

func adminScope() model.Scope {
	return model.Scope{UserID: postgres.NewUUID(), Username: "admin", Role: model.RoleAdmin}
}

func floodInput() incident.SubmitInput {
	return incident.SubmitInput{
		IncidentType: "FLOOD",
		Severity:     "HIGH",
		Parish:       "ST_CATHERINE",
		Community:    "Portmore",
		Description:  "Road impassable near the plaza",
	}
}

func TestSubmitReportValidation(t *testing.T) {
	uc := New(testLogger(), newMemRepo(), nil, metrics.Nop(), Config{})

	tests := []struct {
		name  string
		alter func(*incident.SubmitInput)
	}{
		{"unknown type", func(in *incident.SubmitInput) { in.IncidentType = "METEOR" }},
		{"unknown severity", func(in *incident.SubmitInput) { in.Severity = "EXTREME" }},
		{"unknown parish", func(in *incident.SubmitInput) { in.Parish = "Atlantis" }},
		{"empty community", func(in *incident.SubmitInput) { in.Community = "   " }},
		{"empty description", func(in *incident.SubmitInput) { in.Description = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := floodInput()
			tt.alter(&in)
			_, err := uc.SubmitReport(context.Background(), userScope(), in)
			if _, ok := err.(*pkgErrors.ValidationErrorCollector); !ok {
				t.Errorf("got error %v, want validation error collector", err)
			}
		})
	}
}

func TestSubmitReportCreatesThenCorroborates(t *testing.T) {
	repo := newMemRepo()
	notifier := &fakeNotifier{}
	uc := New(testLogger(), repo, notifier, metrics.Nop(), Config{CorroborationThreshold: 3})

	first, err := uc.SubmitReport(context.Background(), userScope(), floodInput())
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if first.ReportCount != 1 || first.VerificationStatus != model.VerificationUnverified {
		t.Fatalf("first report = %+v, want count 1 UNVERIFIED", first)
	}

	second, err := uc.SubmitReport(context.Background(), userScope(), floodInput())
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if second.ID != first.ID {
		t.Fatal("second submit created a duplicate instead of corroborating")
	}
	if second.ReportCount != 2 || second.VerificationStatus != model.VerificationUnverified {
		t.Errorf("second report = count %d %s, want 2 UNVERIFIED below threshold", second.ReportCount, second.VerificationStatus)
	}
	if notifier.count() != 0 {
		t.Errorf("notified before threshold")
	}

	third, err := uc.SubmitReport(context.Background(), userScope(), floodInput())
	if err != nil {
		t.Fatalf("third submit: %v", err)
	}
	if third.VerificationStatus != model.VerificationCommunityConfirmed {
		t.Errorf("status = %s, want COMMUNITY_CONFIRMED at threshold", third.VerificationStatus)
	}
	if third.EscalatedAt == nil {
		t.Error("escalatedAt not stamped")
	}
	if notifier.count() != 1 {
		t.Errorf("notifications = %d, want 1", notifier.count())
	}
}

func TestEscalationHappensOnce(t *testing.T) {
	repo := newMemRepo()
	notifier := &fakeNotifier{}
	uc := New(testLogger(), repo, notifier, metrics.Nop(), Config{CorroborationThreshold: 2})

	var escalatedAt *time.Time
	for i := 0; i < 5; i++ {
		report, err := uc.SubmitReport(context.Background(), userScope(), floodInput())
		if err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		if report.EscalatedAt != nil && escalatedAt == nil {
			escalatedAt = report.EscalatedAt
		}
		if escalatedAt != nil && report.EscalatedAt != nil && !report.EscalatedAt.Equal(*escalatedAt) {
			t.Fatalf("escalatedAt moved from %v to %v", escalatedAt, report.EscalatedAt)
		}
	}

	if notifier.count() != 1 {
		t.Errorf("notifications = %d, want exactly 1", notifier.count())
	}

	final, _ := uc.Detail(context.Background(), userScope(), mustFindReport(t, repo))
	if final.ReportCount != 5 {
		t.Errorf("reportCount = %d, want 5", final.ReportCount)
	}
	if final.VerificationStatus != model.VerificationCommunityConfirmed {
		t.Errorf("status = %s, want COMMUNITY_CONFIRMED", final.VerificationStatus)
	}
}

func mustFindReport(t *testing.T, repo *memRepo) string {
	t.Helper()
	repo.mu.Lock()
	defer repo.mu.Unlock()
	for id := range repo.reports {
		return id
	}
	t.Fatal("no report in repository")
	return ""
}

func TestAnonymousReportHasNoReporter(t *testing.T) {
	repo := newMemRepo()
	uc := New(testLogger(), repo, nil, metrics.Nop(), Config{})

	in := floodInput()
	in.Anonymous = true
	report, err := uc.SubmitReport(context.Background(), userScope(), in)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if report.ReporterID != nil {
		t.Errorf("reporterId = %v, want nil for anonymous report", *report.ReporterID)
	}
}

func TestConfirmOfficialRequiresAdmin(t *testing.T) {
	uc := New(testLogger(), newMemRepo(), nil, metrics.Nop(), Config{})

	for _, sc := range []model.Scope{userScope(), {UserID: "m1", Role: model.RoleModerator}} {
		_, err := uc.ConfirmOfficial(context.Background(), sc, postgres.NewUUID())
		if _, ok := err.(*pkgErrors.PermissionError); !ok {
			t.Errorf("role %s: got %v, want permission error", sc.Role, err)
		}
	}
}

func TestConfirmOfficialTransitions(t *testing.T) {
	repo := newMemRepo()
	uc := New(testLogger(), repo, nil, metrics.Nop(), Config{CorroborationThreshold: 2})

	report, _ := uc.SubmitReport(context.Background(), userScope(), floodInput())

	// Not yet community confirmed.
	_, err := uc.ConfirmOfficial(context.Background(), adminScope(), report.ID)
	if err != incident.ErrNotCommunityConfirmed {
		t.Fatalf("got %v, want ErrNotCommunityConfirmed", err)
	}

	if _, err := uc.SubmitReport(context.Background(), userScope(), floodInput()); err != nil {
		t.Fatalf("corroborate: %v", err)
	}

	verified, err := uc.ConfirmOfficial(context.Background(), adminScope(), report.ID)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if verified.VerificationStatus != model.VerificationODPEMVerified {
		t.Errorf("status = %s, want ODPEM_VERIFIED", verified.VerificationStatus)
	}

	// The transition is terminal.
	_, err = uc.ConfirmOfficial(context.Background(), adminScope(), report.ID)
	if err != incident.ErrAlreadyVerified {
		t.Fatalf("got %v, want ErrAlreadyVerified", err)
	}
}

func TestConfirmOfficialUnknownReport(t *testing.T) {
	uc := New(testLogger(), newMemRepo(), nil, metrics.Nop(), Config{})

	_, err := uc.ConfirmOfficial(context.Background(), adminScope(), postgres.NewUUID())
	if err != incident.ErrReportNotFound {
		t.Fatalf("got %v, want ErrReportNotFound", err)
	}
}

func TestModerate(t *testing.T) {
	repo := newMemRepo()
	uc := New(testLogger(), repo, nil, metrics.Nop(), Config{})

	report, _ := uc.SubmitReport(context.Background(), userScope(), floodInput())

	tests := []struct {
		action incident.ModerationAction
		want   model.ReportStatus
	}{
		{incident.ActionApprove, model.ReportApproved},
		{incident.ActionReject, model.ReportRejected},
		{incident.ActionResolve, model.ReportResolved},
	}
	mod := model.Scope{UserID: "m1", Role: model.RoleModerator}
	for _, tt := range tests {
		got, err := uc.Moderate(context.Background(), mod, report.ID, tt.action)
		if err != nil {
			t.Fatalf("moderate %s: %v", tt.action, err)
		}
		if got.Status != tt.want {
			t.Errorf("action %s: status = %s, want %s", tt.action, got.Status, tt.want)
		}
	}
}

func TestModerateRequiresModerator(t *testing.T) {
	uc := New(testLogger(), newMemRepo(), nil, metrics.Nop(), Config{})

	_, err := uc.Moderate(context.Background(), userScope(), postgres.NewUUID(), incident.ActionApprove)
	if _, ok := err.(*pkgErrors.PermissionError); !ok {
		t.Fatalf("got %v, want permission error", err)
	}
}

func TestModerateUnknownReport(t *testing.T) {
	uc := New(testLogger(), newMemRepo(), nil, metrics.Nop(), Config{})

	mod := model.Scope{UserID: "m1", Role: model.RoleModerator}
	_, err := uc.Moderate(context.Background(), mod, postgres.NewUUID(), incident.ActionResolve)
	if err != incident.ErrReportNotFound {
		t.Fatalf("got %v, want ErrReportNotFound", err)
	}
}

func TestListRequiresModerator(t *testing.T) {
	uc := New(testLogger(), newMemRepo(), nil, metrics.Nop(), Config{})

	_, _, err := uc.List(context.Background(), userScope(), incident.ListInput{})
	if _, ok := err.(*pkgErrors.PermissionError); !ok {
		t.Fatalf("got %v, want permission error", err)
	}
}
