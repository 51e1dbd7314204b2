package locker

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"alert-srv/pkg/redis"
)

// fakeRedis is an in-memory redis.IRedis. expire simulates the server
// dropping a key when its TTL elapses.
type fakeRedis struct {
	mu   sync.Mutex
	vals map[string]string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{vals: make(map[string]string)}
}

func (f *fakeRedis) expire(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.vals, key)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.vals[key] = fmt.Sprint(value)
	return nil
}

func (f *fakeRedis) SetNX(_ context.Context, key string, value interface{}, _ time.Duration) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.vals[key]; exists {
		return false, nil
	}
	f.vals[key] = fmt.Sprint(value)
	return true, nil
}

func (f *fakeRedis) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	val, ok := f.vals[key]
	if !ok {
		return "", redis.ErrKeyNotFound
	}
	return val, nil
}

func (f *fakeRedis) Delete(_ context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, key := range keys {
		delete(f.vals, key)
	}
	return nil
}

func (f *fakeRedis) Exists(_ context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.vals[key]
	return ok, nil
}

func (f *fakeRedis) Close() error               { return nil }
func (f *fakeRedis) Ping(context.Context) error { return nil }

func TestRedisLockerAcquireRelease(t *testing.T) {
	ctx := context.Background()
	lk := NewRedis(newFakeRedis())

	release, ok, err := lk.Acquire(ctx, "alert:dispatch:a1", time.Minute)
	if err != nil || !ok {
		t.Fatalf("acquire: ok=%v err=%v", ok, err)
	}

	if _, ok, _ := lk.Acquire(ctx, "alert:dispatch:a1", time.Minute); ok {
		t.Fatal("second acquire succeeded while lock held")
	}
	// A different key is an independent lock.
	if _, ok, _ := lk.Acquire(ctx, "alert:dispatch:a2", time.Minute); !ok {
		t.Fatal("acquire of a different key failed")
	}

	release()
	release() // releasing twice is safe

	if _, ok, _ := lk.Acquire(ctx, "alert:dispatch:a1", time.Minute); !ok {
		t.Fatal("re-acquire after release failed")
	}
}

func TestRedisLockerStaleReleaseKeepsNewHolder(t *testing.T) {
	ctx := context.Background()
	r := newFakeRedis()
	lk := NewRedis(r)
	key := "alert:dispatch:a1"

	staleRelease, ok, err := lk.Acquire(ctx, key, time.Minute)
	if err != nil || !ok {
		t.Fatalf("first acquire: ok=%v err=%v", ok, err)
	}

	// The first holder's TTL elapses mid-dispatch; a second holder takes
	// the lock.
	r.expire(key)
	if _, ok, _ := lk.Acquire(ctx, key, time.Minute); !ok {
		t.Fatal("acquire after expiry failed")
	}

	// The stale holder's release must leave the new holder's lock intact.
	staleRelease()
	if held, _ := r.Exists(ctx, key); !held {
		t.Fatal("stale release deleted the new holder's lock")
	}
	if _, ok, _ := lk.Acquire(ctx, key, time.Minute); ok {
		t.Fatal("lock was acquirable after a stale release")
	}
}

func TestMemoryLocker(t *testing.T) {
	ctx := context.Background()
	lk := NewMemory()

	release, ok, err := lk.Acquire(ctx, "a1", time.Minute)
	if err != nil || !ok {
		t.Fatalf("acquire: ok=%v err=%v", ok, err)
	}
	if _, ok, _ := lk.Acquire(ctx, "a1", time.Minute); ok {
		t.Fatal("second acquire succeeded while lock held")
	}

	release()
	if _, ok, _ := lk.Acquire(ctx, "a1", time.Minute); !ok {
		t.Fatal("re-acquire after release failed")
	}
}
