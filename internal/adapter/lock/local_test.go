package lock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLocker(t *testing.T) {
	t.Run("Same order is exclusive", func(t *testing.T) {
		l := NewLocalLocker()

		var wg sync.WaitGroup
		var mu sync.Mutex
		inside, maxInside := 0, 0
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				unlock, err := l.LockOrder(context.Background(), "A1")
				if !assert.NoError(t, err) {
					return
				}
				defer unlock()

				mu.Lock()
				inside++
				if inside > maxInside {
					maxInside = inside
				}
				mu.Unlock()

				time.Sleep(time.Millisecond)

				mu.Lock()
				inside--
				mu.Unlock()
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, maxInside)
		assert.Empty(t, l.slots)
	})

	t.Run("Distinct orders do not wait", func(t *testing.T) {
		l := NewLocalLocker()
		unlockA, err := l.LockOrder(context.Background(), "A1")
		require.NoError(t, err)
		defer unlockA()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		unlockB, err := l.LockOrder(ctx, "B2")
		require.NoError(t, err)
		unlockB()
	})

	t.Run("Context cancel while waiting", func(t *testing.T) {
		l := NewLocalLocker()
		unlock, err := l.LockOrder(context.Background(), "A1")
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		_, err = l.LockOrder(ctx, "A1")
		assert.ErrorIs(t, err, context.DeadlineExceeded)

		unlock()
		unlock()
		assert.Empty(t, l.slots)
	})
}
