package locker

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrLockBusy is returned when the lease cannot be acquired within the retry
// budget.
var ErrLockBusy = errors.New("locker: lock busy")

// releaseScript deletes the key only if it still holds our lease value, so an
// expired lease taken over by another holder is never released by us.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// Redis is a SetNX lease locker for multi-instance deployments. Each Acquire
// retries a few times before giving up rather than blocking indefinitely.
type Redis struct {
	client   *redis.Client
	ttl      time.Duration
	attempts int
	backoff  time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{
		client:   client,
		ttl:      ttl,
		attempts: 3,
		backoff:  100 * time.Millisecond,
	}
}

func (l *Redis) Acquire(ctx context.Context, key string) (func(), error) {
	value := uuid.New().String()
	for i := 0; i < l.attempts; i++ {
		ok, err := l.client.SetNX(ctx, key, value, l.ttl).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			return func() {
				releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				_ = releaseScript.Run(releaseCtx, l.client, []string{key}, value).Err()
			}, nil
		}
		select {
		case <-time.After(l.backoff):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return nil, ErrLockBusy
}
