package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"

	"github.com/sitebooks/ledger/internal/domain"
)

const (
	lockTTL           = 30 * time.Second
	lockRetryInterval = 50 * time.Millisecond
)

// Redis serializes writers per account across instances using redislock.
// The row lock inside the database transaction is still the correctness
// guarantee; this lock only keeps competing instances from burning retries
// against each other.
type Redis struct {
	client *redislock.Client
}

// NewRedis creates a Redis locker on top of an existing connection.
func NewRedis(rdb *redis.Client) *Redis {
	return &Redis{client: redislock.New(rdb)}
}

// Acquire obtains the account lock, retrying until the context expires. A
// lock that cannot be obtained surfaces as a concurrent modification so the
// recorder's retry policy applies.
func (l *Redis) Acquire(ctx context.Context, accountID string) (func(), error) {
	lock, err := l.client.Obtain(ctx, lockKey(accountID), lockTTL,
		&redislock.Options{
			RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(lockRetryInterval), 20),
		})
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, fmt.Errorf("account %s locked elsewhere: %w", accountID, domain.ErrConcurrentModification)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to obtain account lock: %w", err)
	}

	return func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		_ = lock.Release(releaseCtx)
	}, nil
}

func lockKey(accountID string) string {
	return "lock:account:" + accountID
}
