package port

import (
	"context"

	"github.com/MikeRez0/ypshop/internal/core/domain"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// Order
	ReadOrder(ctx context.Context, orderID uint64) (*domain.Order, error)
	ReadOrderByNumber(ctx context.Context, number string) (*domain.Order, error)
	UpdateOrderByNumber(ctx context.Context, number string, updateFn UpdateOrderFn) (*domain.Order, error)

	// Installment
	ReplacePendingInstallment(ctx context.Context, orderID uint64, buildFn BuildInstallmentFn) (*domain.Installment, error)
	ListInstallmentsByOrder(ctx context.Context, orderID uint64) ([]*domain.Installment, error)

	OutboxRepository
}

type OutboxRepository interface {
	ClaimOutboxMessages(ctx context.Context, limit int) ([]*domain.OutboxMessage, error)
	MarkOutboxPublished(ctx context.Context, id string) error
	MarkOutboxFailed(ctx context.Context, id string, cause error) error
}

// UpdateOrderFn runs while the order row is locked. It mutates the order in place and
// may return a message to store in the outbox with the update. Returning
// domain.ErrNoUpdatedData leaves the order untouched.
type UpdateOrderFn func(o *domain.Order) (*domain.OutboxMessage, error)

// BuildInstallmentFn runs while the order row is locked and returns the plan that
// replaces the pending plans of the order.
type BuildInstallmentFn func(o *domain.Order) (*domain.Installment, error)
