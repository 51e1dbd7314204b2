package channel

import (
	"context"

	"alert-srv/internal/model"
)

// Target is one (recipient, channel) delivery destination.
type Target struct {
	RecipientID string
	Channel     model.Channel
	Address     string
}

// Payload is the channel-agnostic content of an alert; each sender
// renders it into the provider's format.
type Payload struct {
	AlertID  string
	Type     model.AlertType
	Severity model.Severity
	Title    string
	Message  string
}

// Sender wraps one external delivery provider behind a uniform contract.
// Implementations are safe for concurrent use.
type Sender interface {
	Channel() model.Channel
	Send(ctx context.Context, target Target, payload Payload) error
}
