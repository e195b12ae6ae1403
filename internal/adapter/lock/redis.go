package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/MikeRez0/ypshop/internal/core/port"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	lockPrefix = "ypshop:order_lock:"
	lockExpiry = 10 * time.Second
	lockTries  = 32
)

// RedisLocker serializes handlers of one order across service instances.
type RedisLocker struct {
	rs     *redsync.Redsync
	logger *zap.Logger
}

var _ port.OrderLocker = (*RedisLocker)(nil)

func NewRedisClient(ctx context.Context, addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

func NewRedisLocker(rdb *redis.Client, logger *zap.Logger) *RedisLocker {
	return &RedisLocker{
		rs:     redsync.New(goredis.NewPool(rdb)),
		logger: logger,
	}
}

func (l *RedisLocker) LockOrder(ctx context.Context, orderNumber string) (func(), error) {
	mutex := l.rs.NewMutex(
		lockPrefix+orderNumber,
		redsync.WithExpiry(lockExpiry),
		redsync.WithTries(lockTries),
	)

	if err := mutex.LockContext(ctx); err != nil {
		return nil, fmt.Errorf("lock order %s: %w", orderNumber, err)
	}

	return func() {
		// the caller's context may already be done here
		if _, err := mutex.UnlockContext(context.Background()); err != nil {
			l.logger.Warn("Unlock order", zap.String("order", orderNumber), zap.Error(err))
		}
	}, nil
}
