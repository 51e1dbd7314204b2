// Package locker provides advisory locks keyed by string. The delivery
// engine uses one lock per alert so dispatch and retry for the same alert
// never run concurrently, while different alerts proceed in parallel.
package locker

import (
	"context"
	"sync"
	"time"

	"alert-srv/pkg/redis"

	"github.com/google/uuid"
)

// ReleaseFunc releases a held lock. Calling it more than once is safe.
type ReleaseFunc func()

// Locker acquires advisory locks. Acquire returns ok=false when the lock
// is already held elsewhere.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (release ReleaseFunc, ok bool, err error)
}

type redisLocker struct {
	r redis.IRedis
}

// NewRedis returns a Locker backed by Redis SET NX with a TTL. The TTL
// bounds lock lifetime if the holder dies mid-dispatch.
func NewRedis(r redis.IRedis) Locker {
	return &redisLocker{r: r}
}

func (l *redisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (ReleaseFunc, bool, error) {
	token := uuid.New().String()
	ok, err := l.r.SetNX(ctx, key, token, ttl)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	var once sync.Once
	release := func() {
		once.Do(func() {
			// Delete only if the key still holds our token. A holder that
			// outlived the TTL must not release the next holder's lock.
			ctx := context.Background()
			val, err := l.r.Get(ctx, key)
			if err != nil || val != token {
				return
			}
			// Best-effort: the TTL is the backstop if the delete fails.
			_ = l.r.Delete(ctx, key)
		})
	}
	return release, true, nil
}

type memoryLocker struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// NewMemory returns an in-process Locker. Used in tests and single-node
// deployments without Redis.
func NewMemory() Locker {
	return &memoryLocker{held: make(map[string]struct{})}
}

func (l *memoryLocker) Acquire(_ context.Context, key string, _ time.Duration) (ReleaseFunc, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.held[key]; exists {
		return nil, false, nil
	}
	l.held[key] = struct{}{}

	var once sync.Once
	release := func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()
			delete(l.held, key)
		})
	}
	return release, true, nil
}
