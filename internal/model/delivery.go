package model

import "time"

// Channel is a notification medium.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
	ChannelPush  Channel = "push"
)

// Channels lists every delivery channel.
var Channels = []Channel{ChannelEmail, ChannelSMS, ChannelPush}

// ParseChannel parses a channel name.
func ParseChannel(s string) (Channel, bool) {
	switch Channel(s) {
	case ChannelEmail, ChannelSMS, ChannelPush:
		return Channel(s), true
	}
	return "", false
}

// AttemptStatus is the state of a single delivery attempt.
//
// State machine per (alert, recipient, channel):
//
//	(none) -> SUCCEEDED            terminal
//	(none) -> FAILED -> SUCCEEDED  terminal, via retry
//	(none) -> FAILED -> FAILED     remains retryable
type AttemptStatus string

const (
	AttemptSucceeded AttemptStatus = "SUCCEEDED"
	AttemptFailed    AttemptStatus = "FAILED"
)

// DeliveryAttempt is the single evolving record of one channel's sends to
// one recipient for one alert. Retries mutate it in place; the
// (AlertID, RecipientID, Channel) triple is unique.
type DeliveryAttempt struct {
	AlertID     string        `json:"alertId"`
	RecipientID string        `json:"recipientId"`
	Channel     Channel       `json:"channel"`
	Address     string        `json:"address"`
	Status      AttemptStatus `json:"status"`
	Attempts    int           `json:"attempts"`
	LastError   *string       `json:"lastError,omitempty"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}
