package port

import "context"

//go:generate mockgen -source=lock.go -destination=mock/lock.go -package=mock
type OrderLocker interface {
	// LockOrder blocks until the order is held by the caller and returns the release func.
	LockOrder(ctx context.Context, orderNumber string) (unlock func(), err error)
}
