package repository

import (
	"context"
	"errors"

	"alert-srv/internal/model"
)

var ErrNotFound = errors.New("user not found")

// ListEligibleOptions filters users for recipient resolution.
type ListEligibleOptions struct {
	Parishes []model.Parish
	Severity model.Severity
}

// Repository reads recipient records. The registration subsystem owns
// writes; the delivery engine never mutates users.
type Repository interface {
	ListEligible(ctx context.Context, opts ListEligibleOptions) ([]model.User, error)
	Detail(ctx context.Context, id string) (model.User, error)
}
