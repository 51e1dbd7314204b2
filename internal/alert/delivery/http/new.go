package http

import (
	"alert-srv/internal/alert"
	"alert-srv/pkg/discord"
	"alert-srv/pkg/log"
)

// Handler exposes the alert delivery engine over HTTP.
type Handler struct {
	l  log.Logger
	uc alert.UseCase
	d  discord.IDiscord
}

// New creates the alert HTTP handler. The Discord client may be nil; it
// only receives internal-error reports.
func New(l log.Logger, uc alert.UseCase, d discord.IDiscord) *Handler {
	return &Handler{l: l, uc: uc, d: d}
}
