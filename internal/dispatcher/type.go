package dispatcher

import (
	"time"

	"alert-srv/internal/channel"
)

// Config tunes the dispatcher's backpressure policy. Batch size and the
// inter-batch delay bound the burst load put on upstream providers, which
// have little admission control of their own.
type Config struct {
	// BatchSize is the number of sends issued per channel before pausing.
	BatchSize int
	// BatchDelay is the pause between consecutive batches on one channel.
	BatchDelay time.Duration
	// ChannelWorkers bounds concurrent sends within one channel.
	ChannelWorkers int
	// OutageThreshold is the number of consecutive failures on a channel
	// after which the remaining sends fail fast.
	OutageThreshold int
}

// Result is the outcome of one (recipient, channel) send. Err == nil
// means the send succeeded.
type Result struct {
	Target channel.Target
	Err    error
}

// Succeeded reports whether the send went through.
func (r Result) Succeeded() bool {
	return r.Err == nil
}
