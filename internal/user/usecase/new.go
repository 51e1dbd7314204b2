package usecase

import (
	"alert-srv/internal/user"
	"alert-srv/internal/user/repository"
	"alert-srv/pkg/log"
)

type implUseCase struct {
	l    log.Logger
	repo repository.Repository
}

// New creates the recipient resolver use case.
func New(l log.Logger, repo repository.Repository) user.UseCase {
	return &implUseCase{l: l, repo: repo}
}
