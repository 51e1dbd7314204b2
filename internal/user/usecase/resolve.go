package usecase

import (
	"context"

	"alert-srv/internal/channel"
	"alert-srv/internal/model"
	"alert-srv/internal/user/repository"
)

// Resolve expands eligible users into (user, channel) delivery targets.
// A user opted into two channels contributes two targets; the alert's
// recipient count is the number of targets, not users.
func (uc *implUseCase) Resolve(ctx context.Context, parishes []model.Parish, severity model.Severity) ([]channel.Target, error) {
	users, err := uc.repo.ListEligible(ctx, repository.ListEligibleOptions{
		Parishes: parishes,
		Severity: severity,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.Resolve.ListEligible: %v", err)
		return nil, err
	}

	var targets []channel.Target
	for _, u := range users {
		for _, ch := range u.OptedChannels() {
			targets = append(targets, channel.Target{
				RecipientID: u.ID,
				Channel:     ch,
				Address:     u.AddressFor(ch),
			})
		}
	}

	return targets, nil
}
