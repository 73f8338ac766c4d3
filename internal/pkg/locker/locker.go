// Package locker provides per-entity mutual exclusion for the
// read-check-write sections in the usecases. Keys are logical entity keys
// such as "lock:stock:<product-id>"; locks on different keys never contend.
package locker

import (
	"context"
	"sync"
)

// Locker serializes critical sections per key. Acquire blocks until the lock
// is held or ctx is done, and returns a release function that must be called
// exactly once.
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

type keyLock struct {
	ch   chan struct{} // buffered 1, acts as the per-key mutex
	refs int
}

// InProcess is a keyed mutex for single-instance deployments and tests.
type InProcess struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

func NewInProcess() *InProcess {
	return &InProcess{locks: make(map[string]*keyLock)}
}

func (l *InProcess) Acquire(ctx context.Context, key string) (func(), error) {
	l.mu.Lock()
	kl, ok := l.locks[key]
	if !ok {
		kl = &keyLock{ch: make(chan struct{}, 1)}
		l.locks[key] = kl
	}
	kl.refs++
	l.mu.Unlock()

	select {
	case kl.ch <- struct{}{}:
	case <-ctx.Done():
		l.decref(key, kl)
		return nil, ctx.Err()
	}

	return func() {
		<-kl.ch
		l.decref(key, kl)
	}, nil
}

func (l *InProcess) decref(key string, kl *keyLock) {
	l.mu.Lock()
	kl.refs--
	if kl.refs == 0 {
		delete(l.locks, key)
	}
	l.mu.Unlock()
}
