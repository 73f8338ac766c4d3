package locker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInProcessMutualExclusion(t *testing.T) {
	l := NewInProcess()
	ctx := context.Background()

	var counter int
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := l.Acquire(ctx, "key")
			if err != nil {
				t.Error(err)
				return
			}
			defer release()
			// Unsynchronized increment; only the lock protects it.
			v := counter
			v++
			counter = v
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestInProcessIndependentKeys(t *testing.T) {
	l := NewInProcess()
	ctx := context.Background()

	releaseA, err := l.Acquire(ctx, "a")
	require.NoError(t, err)
	defer releaseA()

	// A held lock on "a" must not block "b".
	done := make(chan struct{})
	go func() {
		releaseB, err := l.Acquire(ctx, "b")
		if err == nil {
			releaseB()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("lock on independent key blocked")
	}
}

func TestInProcessAcquireHonorsContext(t *testing.T) {
	l := NewInProcess()

	release, err := l.Acquire(context.Background(), "key")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = l.Acquire(ctx, "key")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	release()

	// After release the key is free again.
	release2, err := l.Acquire(context.Background(), "key")
	require.NoError(t, err)
	release2()
}
