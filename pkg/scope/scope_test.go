package scope

import (
	"context"
	"errors"
	"testing"

	"alert-srv/internal/model"
)

func TestTokenRoundTrip(t *testing.T) {
	m := New("test-secret")

	token, err := m.CreateToken(Payload{UserID: "u1", Username: "ops", Role: "ADMIN"})
	if err != nil {
		t.Fatalf("create token: %v", err)
	}

	payload, err := m.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if payload.UserID != "u1" || payload.Username != "ops" || payload.Role != "ADMIN" {
		t.Errorf("payload = %+v", payload)
	}
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	m := New("test-secret")

	if _, err := m.Verify(""); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("empty token: got %v, want ErrInvalidToken", err)
	}
	if _, err := m.Verify("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("garbage token: got %v, want ErrInvalidToken", err)
	}

	other := New("other-secret")
	token, err := other.CreateToken(Payload{UserID: "u1", Role: "ADMIN"})
	if err != nil {
		t.Fatalf("create token: %v", err)
	}
	if _, err := m.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("wrong secret: got %v, want ErrInvalidToken", err)
	}
}

func TestNewScope(t *testing.T) {
	sc := NewScope(Payload{UserID: "u1", Username: "ops", Role: "MODERATOR"})
	if sc.UserID != "u1" || sc.Role != model.RoleModerator {
		t.Errorf("scope = %+v", sc)
	}

	// Tokens minted elsewhere may only carry the subject claim.
	p := Payload{Role: "USER"}
	p.Subject = "u2"
	if got := NewScope(p).UserID; got != "u2" {
		t.Errorf("UserID = %q, want subject fallback u2", got)
	}
}

func TestScopeContext(t *testing.T) {
	ctx := context.Background()
	if _, ok := GetScopeFromContext(ctx); ok {
		t.Error("empty context should carry no scope")
	}

	want := model.Scope{UserID: "u1", Role: model.RoleAdmin}
	ctx = SetScopeToContext(ctx, want)
	got, ok := GetScopeFromContext(ctx)
	if !ok || got != want {
		t.Errorf("got %+v ok=%v, want %+v", got, ok, want)
	}
}
