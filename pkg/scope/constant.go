package scope

import "time"

const (
	// TokenExpirationDuration is the lifetime of issued tokens.
	TokenExpirationDuration = 24 * time.Hour
)
