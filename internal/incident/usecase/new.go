package usecase

import (
	"alert-srv/internal/incident"
	"alert-srv/internal/incident/repository"
	"alert-srv/pkg/discord"
	"alert-srv/pkg/log"
	"alert-srv/pkg/metrics"
)

// Config tunes the incident verification engine.
type Config struct {
	// CorroborationThreshold is the report count at which an unverified
	// report becomes COMMUNITY_CONFIRMED. Minimum 2.
	CorroborationThreshold int
}

type implUseCase struct {
	l       log.Logger
	repo    repository.Repository
	d       discord.IDiscord
	metrics metrics.Recorder
	cfg     Config
}

// New creates the incident use case. The Discord client may be nil; it
// only receives escalation notifications.
func New(l log.Logger, repo repository.Repository, d discord.IDiscord, rec metrics.Recorder, cfg Config) incident.UseCase {
	if rec == nil {
		rec = metrics.Nop()
	}
	if cfg.CorroborationThreshold < 2 {
		cfg.CorroborationThreshold = 2
	}
	return &implUseCase{
		l:       l,
		repo:    repo,
		d:       d,
		metrics: rec,
		cfg:     cfg,
	}
}
