package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// releaseScript deletes the key only while it still holds the caller's token,
// so an expired holder never frees a lock someone else has since taken.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Lock implements ports.DistributedLock with SET NX PX and a token check on release.
type Lock struct {
	client goredis.UniversalClient
}

// NewLock creates a Redis-backed distributed lock.
func NewLock(client goredis.UniversalClient) *Lock {
	return &Lock{client: client}
}

// Acquire takes key for ttl if nobody holds it. Returns false on contention.
func (l *Lock) Acquire(ctx context.Context, key, token string, ttl time.Duration) (bool, error) {
	res, err := l.client.SetArgs(ctx, key, token, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis lock acquire: %w", err)
	}
	return res == "OK", nil
}

// Release frees key if token still owns it. Returns false when the lock had
// already expired or changed hands.
func (l *Lock) Release(ctx context.Context, key, token string) (bool, error) {
	n, err := releaseScript.Run(ctx, l.client, []string{key}, token).Int()
	if err != nil {
		return false, fmt.Errorf("redis lock release: %w", err)
	}
	return n == 1, nil
}
