package channel

import "errors"

var (
	// ErrProviderUnavailable marks a provider-level outage as opposed to a
	// per-recipient rejection. The dispatcher fails the remaining sends on
	// the channel fast when it sees this error.
	ErrProviderUnavailable = errors.New("channel provider unavailable")

	// ErrEmptyAddress is returned for a target with no usable address.
	ErrEmptyAddress = errors.New("empty delivery address")
)

// IsOutage reports whether err indicates a provider-level outage.
func IsOutage(err error) bool {
	return errors.Is(err, ErrProviderUnavailable)
}
