package dispatcher

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"alert-srv/internal/channel"
	"alert-srv/internal/model"
	"alert-srv/pkg/log"
	"alert-srv/pkg/metrics"

	"github.com/benbjohnson/clock"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeSender counts calls and fails according to failFn.
type fakeSender struct {
	ch     model.Channel
	failFn func(call int, target channel.Target) error

	mu    sync.Mutex
	calls int
	sent  []channel.Target
}

func (s *fakeSender) Channel() model.Channel { return s.ch }

func (s *fakeSender) Send(_ context.Context, target channel.Target, _ channel.Payload) error {
	s.mu.Lock()
	s.calls++
	call := s.calls
	s.sent = append(s.sent, target)
	s.mu.Unlock()

	if s.failFn != nil {
		return s.failFn(call, target)
	}
	return nil
}

func (s *fakeSender) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func testLogger() log.Logger {
	return log.Init(log.ZapConfig{Level: "error", Mode: "development", Encoding: "console"})
}

func makeTargets(ch model.Channel, n int) []channel.Target {
	targets := make([]channel.Target, n)
	for i := range targets {
		targets[i] = channel.Target{
			RecipientID: fmt.Sprintf("user-%d", i),
			Channel:     ch,
			Address:     fmt.Sprintf("addr-%d", i),
		}
	}
	return targets
}

func TestDispatchAllSucceed(t *testing.T) {
	email := &fakeSender{ch: model.ChannelEmail}
	sms := &fakeSender{ch: model.ChannelSMS}
	d := New(testLogger(), Config{BatchSize: 10, ChannelWorkers: 4}, nil, metrics.Nop(), email, sms)

	targets := append(makeTargets(model.ChannelEmail, 7), makeTargets(model.ChannelSMS, 5)...)
	results := d.Dispatch(context.Background(), channel.Payload{AlertID: "a1"}, targets)

	if len(results) != 12 {
		t.Fatalf("got %d results, want 12", len(results))
	}
	for _, r := range results {
		if !r.Succeeded() {
			t.Errorf("target %s: unexpected error %v", r.Target.RecipientID, r.Err)
		}
	}
	if email.callCount() != 7 || sms.callCount() != 5 {
		t.Errorf("sender calls = %d email, %d sms; want 7, 5", email.callCount(), sms.callCount())
	}
}

func TestDispatchMissingSender(t *testing.T) {
	email := &fakeSender{ch: model.ChannelEmail}
	d := New(testLogger(), Config{}, nil, metrics.Nop(), email)

	results := d.Dispatch(context.Background(), channel.Payload{}, makeTargets(model.ChannelPush, 3))

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for _, r := range results {
		if r.Err == nil {
			t.Errorf("target %s: want error for missing sender", r.Target.RecipientID)
		}
	}
}

func TestDispatchOutageFailsFast(t *testing.T) {
	sms := &fakeSender{
		ch: model.ChannelSMS,
		failFn: func(int, channel.Target) error {
			return fmt.Errorf("dial: %w", channel.ErrProviderUnavailable)
		},
	}
	d := New(testLogger(), Config{BatchSize: 3, ChannelWorkers: 1, OutageThreshold: 5}, nil, metrics.Nop(), sms)

	results := d.Dispatch(context.Background(), channel.Payload{}, makeTargets(model.ChannelSMS, 12))

	if len(results) != 12 {
		t.Fatalf("got %d results, want 12", len(results))
	}
	for _, r := range results {
		if r.Err == nil {
			t.Errorf("target %s: want error after outage", r.Target.RecipientID)
		}
	}
	// The first outage marks the channel down; later batches never reach
	// the provider.
	if sms.callCount() > 3 {
		t.Errorf("sender called %d times, want at most one batch of 3", sms.callCount())
	}
}

func TestDispatchConsecutiveFailuresMarkDown(t *testing.T) {
	email := &fakeSender{
		ch: model.ChannelEmail,
		failFn: func(int, channel.Target) error {
			return fmt.Errorf("mailbox rejected")
		},
	}
	d := New(testLogger(), Config{BatchSize: 4, ChannelWorkers: 1, OutageThreshold: 3}, nil, metrics.Nop(), email)

	results := d.Dispatch(context.Background(), channel.Payload{}, makeTargets(model.ChannelEmail, 20))

	if len(results) != 20 {
		t.Fatalf("got %d results, want 20", len(results))
	}
	// Per-recipient rejections only take the channel down at the
	// consecutive-failure threshold, not on the first error.
	if email.callCount() < 3 {
		t.Errorf("sender called %d times, want at least the threshold of 3", email.callCount())
	}
	if email.callCount() > 8 {
		t.Errorf("sender called %d times, want fail-fast soon after threshold", email.callCount())
	}
}

func TestDispatchSuccessResetsFailureStreak(t *testing.T) {
	// Alternating failures never reach the threshold.
	email := &fakeSender{
		ch: model.ChannelEmail,
		failFn: func(call int, _ channel.Target) error {
			if call%2 == 0 {
				return fmt.Errorf("mailbox rejected")
			}
			return nil
		},
	}
	d := New(testLogger(), Config{BatchSize: 20, ChannelWorkers: 1, OutageThreshold: 2}, nil, metrics.Nop(), email)

	results := d.Dispatch(context.Background(), channel.Payload{}, makeTargets(model.ChannelEmail, 20))

	if email.callCount() != 20 {
		t.Errorf("sender called %d times, want all 20", email.callCount())
	}
	succeeded := 0
	for _, r := range results {
		if r.Succeeded() {
			succeeded++
		}
	}
	if succeeded != 10 {
		t.Errorf("got %d successes, want 10", succeeded)
	}
}

func TestDispatchBatchDelay(t *testing.T) {
	mock := clock.NewMock()
	email := &fakeSender{ch: model.ChannelEmail}
	d := New(testLogger(), Config{BatchSize: 5, BatchDelay: 200 * time.Millisecond, ChannelWorkers: 2}, mock, metrics.Nop(), email)

	done := make(chan []Result, 1)
	go func() {
		done <- d.Dispatch(context.Background(), channel.Payload{}, makeTargets(model.ChannelEmail, 12))
	}()

	// 12 targets at batch size 5 means two inter-batch delays; drive the
	// mock clock until Dispatch finishes.
	var results []Result
	for results == nil {
		select {
		case results = <-done:
		case <-time.After(time.Millisecond):
			mock.Add(200 * time.Millisecond)
		}
	}

	if len(results) != 12 {
		t.Fatalf("got %d results, want 12", len(results))
	}
	if email.callCount() != 12 {
		t.Errorf("sender called %d times, want 12", email.callCount())
	}
}

func TestDispatchCanceledContextFailsRemaining(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	email := &fakeSender{ch: model.ChannelEmail}
	d := New(testLogger(), Config{BatchSize: 5, BatchDelay: time.Hour, ChannelWorkers: 2}, nil, metrics.Nop(), email)

	results := d.Dispatch(ctx, channel.Payload{}, makeTargets(model.ChannelEmail, 12))

	if len(results) != 12 {
		t.Fatalf("got %d results, want 12", len(results))
	}
	// The first batch was already issued; everything after the first
	// inter-batch pause fails with the context error.
	var failed int
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	if failed != 7 {
		t.Errorf("got %d failures, want the 7 targets after the first batch", failed)
	}
}
