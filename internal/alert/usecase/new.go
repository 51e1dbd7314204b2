package usecase

import (
	"context"
	"time"

	"alert-srv/internal/alert"
	"alert-srv/internal/alert/repository"
	"alert-srv/internal/channel"
	"alert-srv/internal/dispatcher"
	"alert-srv/internal/user"
	"alert-srv/pkg/locker"
	"alert-srv/pkg/log"

	"github.com/benbjohnson/clock"
)

// Broadcaster fans an alert out to a target list. Satisfied by
// *dispatcher.Dispatcher.
type Broadcaster interface {
	Dispatch(ctx context.Context, payload channel.Payload, targets []channel.Target) []dispatcher.Result
}

// Config tunes the alert use case.
type Config struct {
	// LockTTL bounds the per-alert dispatch lock if the holder dies.
	LockTTL time.Duration
}

type implUseCase struct {
	l        log.Logger
	repo     repository.Repository
	resolver user.UseCase
	bc       Broadcaster
	locker   locker.Locker
	clock    clock.Clock
	cfg      Config
}

// New creates the alert use case.
func New(l log.Logger, repo repository.Repository, resolver user.UseCase, bc Broadcaster, lk locker.Locker, clk clock.Clock, cfg Config) alert.UseCase {
	if clk == nil {
		clk = clock.New()
	}
	if cfg.LockTTL <= 0 {
		cfg.LockTTL = 10 * time.Minute
	}
	return &implUseCase{
		l:        l,
		repo:     repo,
		resolver: resolver,
		bc:       bc,
		locker:   lk,
		clock:    clk,
		cfg:      cfg,
	}
}

func dispatchLockKey(alertID string) string {
	return "alert:dispatch:" + alertID
}
