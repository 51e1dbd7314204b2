package dispatcher

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"alert-srv/internal/channel"
	"alert-srv/internal/model"
	"alert-srv/pkg/log"
	"alert-srv/pkg/metrics"

	"github.com/benbjohnson/clock"
)

// Dispatcher fans a recipient list out across channel senders in bounded,
// staggered batches and collects per-target outcomes.
type Dispatcher struct {
	l       log.Logger
	cfg     Config
	clock   clock.Clock
	metrics metrics.Recorder
	senders map[model.Channel]channel.Sender
}

// New builds a Dispatcher over the given senders. A nil clock defaults to
// the wall clock; a nil recorder drops metrics.
func New(l log.Logger, cfg Config, clk clock.Clock, rec metrics.Recorder, senders ...channel.Sender) *Dispatcher {
	if clk == nil {
		clk = clock.New()
	}
	if rec == nil {
		rec = metrics.Nop()
	}
	if cfg.BatchSize < 1 {
		cfg.BatchSize = 25
	}
	if cfg.ChannelWorkers < 1 {
		cfg.ChannelWorkers = 8
	}
	if cfg.OutageThreshold < 1 {
		cfg.OutageThreshold = 5
	}

	m := make(map[model.Channel]channel.Sender, len(senders))
	for _, s := range senders {
		m[s.Channel()] = s
	}
	return &Dispatcher{
		l:       l,
		cfg:     cfg,
		clock:   clk,
		metrics: rec,
		senders: m,
	}
}

// Dispatch sends the payload to every target and returns one Result per
// target. Channels proceed independently and concurrently; there is no
// ordering guarantee between targets. Dispatch returns only after every
// send has completed or been failed fast.
func (d *Dispatcher) Dispatch(ctx context.Context, payload channel.Payload, targets []channel.Target) []Result {
	start := d.clock.Now()
	defer func() {
		d.metrics.ObserveDispatchDuration(d.clock.Since(start))
	}()

	byChannel := make(map[model.Channel][]channel.Target)
	for _, t := range targets {
		byChannel[t.Channel] = append(byChannel[t.Channel], t)
	}

	results := make(chan Result, len(targets))
	var wg sync.WaitGroup
	for ch, chTargets := range byChannel {
		wg.Add(1)
		go func(ch model.Channel, chTargets []channel.Target) {
			defer wg.Done()
			d.runChannel(ctx, ch, payload, chTargets, results)
		}(ch, chTargets)
	}
	wg.Wait()
	close(results)

	out := make([]Result, 0, len(targets))
	for r := range results {
		status := "succeeded"
		if r.Err != nil {
			status = "failed"
		}
		d.metrics.IncDelivery(string(r.Target.Channel), status)
		out = append(out, r)
	}
	return out
}

// runChannel issues sends for one channel in batches, with a delay
// between batches and bounded concurrency within each batch.
func (d *Dispatcher) runChannel(ctx context.Context, ch model.Channel, payload channel.Payload, targets []channel.Target, results chan<- Result) {
	sender, ok := d.senders[ch]
	if !ok {
		err := fmt.Errorf("no sender configured for channel %s", ch)
		for _, t := range targets {
			results <- Result{Target: t, Err: err}
		}
		return
	}

	var down atomic.Bool
	var consecutiveFails atomic.Int32

	sem := make(chan struct{}, d.cfg.ChannelWorkers)
	var wg sync.WaitGroup

	for start := 0; start < len(targets); start += d.cfg.BatchSize {
		end := start + d.cfg.BatchSize
		if end > len(targets) {
			end = len(targets)
		}

		for _, t := range targets[start:end] {
			if down.Load() {
				results <- Result{Target: t, Err: fmt.Errorf("%w: failing fast, channel %s is down", channel.ErrProviderUnavailable, ch)}
				continue
			}

			wg.Add(1)
			sem <- struct{}{}
			go func(t channel.Target) {
				defer wg.Done()
				defer func() { <-sem }()

				if down.Load() {
					results <- Result{Target: t, Err: fmt.Errorf("%w: failing fast, channel %s is down", channel.ErrProviderUnavailable, ch)}
					return
				}

				err := sender.Send(ctx, t, payload)
				if err == nil {
					consecutiveFails.Store(0)
					results <- Result{Target: t}
					return
				}

				if channel.IsOutage(err) || consecutiveFails.Add(1) >= int32(d.cfg.OutageThreshold) {
					if down.CompareAndSwap(false, true) {
						d.l.Warnf(ctx, "internal.dispatcher.runChannel: channel %s marked down: %v", ch, err)
					}
				}
				results <- Result{Target: t, Err: err}
			}(t)
		}
		wg.Wait()

		if end < len(targets) && !down.Load() && d.cfg.BatchDelay > 0 {
			select {
			case <-d.clock.After(d.cfg.BatchDelay):
			case <-ctx.Done():
				// Fail whatever is left; already-issued sends are not recalled.
				for _, t := range targets[end:] {
					results <- Result{Target: t, Err: ctx.Err()}
				}
				return
			}
		}
	}
}
