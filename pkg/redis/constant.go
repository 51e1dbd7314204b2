package redis

import "time"

const (
	// DefaultConnectTimeout bounds the initial connection attempt.
	DefaultConnectTimeout = 5 * time.Second
)
