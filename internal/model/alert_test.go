package model

import (
	"testing"
	"time"
)

func TestParseEnums(t *testing.T) {
	if _, ok := ParseAlertType("HURRICANE"); !ok {
		t.Error("HURRICANE should parse")
	}
	if _, ok := ParseAlertType("TSUNAMI"); ok {
		t.Error("TSUNAMI should not parse")
	}
	if _, ok := ParseSeverity("MEDIUM"); !ok {
		t.Error("MEDIUM should parse")
	}
	if _, ok := ParseSeverity("medium"); ok {
		t.Error("severity codes are case sensitive")
	}
	if _, ok := ParseParish("ST_ELIZABETH"); !ok {
		t.Error("ST_ELIZABETH should parse")
	}
	if _, ok := ParseChannel("sms"); !ok {
		t.Error("sms should parse")
	}
	if _, ok := ParseChannel("SMS"); ok {
		t.Error("channel codes are lowercase")
	}
}

func TestAlertExpired(t *testing.T) {
	now := time.Now()

	var a Alert
	if a.Expired(now) {
		t.Error("alert without expiry never expires")
	}

	future := now.Add(time.Hour)
	a.ExpiresAt = &future
	if a.Expired(now) {
		t.Error("alert expiring in an hour is not expired")
	}

	past := now.Add(-time.Minute)
	a.ExpiresAt = &past
	if !a.Expired(now) {
		t.Error("alert past its expiry is expired")
	}
}

func TestDeliveryStatsForChannel(t *testing.T) {
	var s DeliveryStats
	s.ForChannel(ChannelEmail).Sent = 3
	s.ForChannel(ChannelSMS).Failed = 2
	s.ForChannel(ChannelPush).Sent = 1

	if s.Email.Sent != 3 || s.SMS.Failed != 2 || s.Push.Sent != 1 {
		t.Errorf("stats = %+v", s)
	}
	if s.IsZero() {
		t.Error("populated stats reported zero")
	}
	if !(DeliveryStats{}).IsZero() {
		t.Error("empty stats should report zero")
	}
}
