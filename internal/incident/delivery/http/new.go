package http

import (
	"alert-srv/internal/incident"
	"alert-srv/pkg/discord"
	"alert-srv/pkg/log"
)

// Handler exposes incident reporting and moderation over HTTP.
type Handler struct {
	l  log.Logger
	uc incident.UseCase
	d  discord.IDiscord
}

// New creates the incident HTTP handler.
func New(l log.Logger, uc incident.UseCase, d discord.IDiscord) *Handler {
	return &Handler{l: l, uc: uc, d: d}
}
