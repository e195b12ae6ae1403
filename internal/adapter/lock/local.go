package lock

import (
	"context"
	"sync"

	"github.com/MikeRez0/ypshop/internal/core/port"
)

// LocalLocker serializes handlers of one order inside a single process.
type LocalLocker struct {
	mu    sync.Mutex
	slots map[string]*slot
}

type slot struct {
	ch   chan struct{}
	refs int
}

var _ port.OrderLocker = (*LocalLocker)(nil)

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{slots: make(map[string]*slot)}
}

func (l *LocalLocker) LockOrder(ctx context.Context, orderNumber string) (func(), error) {
	l.mu.Lock()
	s, ok := l.slots[orderNumber]
	if !ok {
		s = &slot{ch: make(chan struct{}, 1)}
		l.slots[orderNumber] = s
	}
	s.refs++
	l.mu.Unlock()

	select {
	case s.ch <- struct{}{}:
	case <-ctx.Done():
		l.release(orderNumber, s)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-s.ch
			l.release(orderNumber, s)
		})
	}, nil
}

func (l *LocalLocker) release(orderNumber string, s *slot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	s.refs--
	if s.refs == 0 {
		delete(l.slots, orderNumber)
	}
}
