package user

import (
	"context"

	"alert-srv/internal/channel"
	"alert-srv/internal/model"
)

// UseCase resolves the recipients of an alert.
type UseCase interface {
	// Resolve returns one target per (user, channel) pair for every active
	// user in the parish set who is eligible for the given severity and has
	// opted into at least one channel.
	Resolve(ctx context.Context, parishes []model.Parish, severity model.Severity) ([]channel.Target, error)
}
