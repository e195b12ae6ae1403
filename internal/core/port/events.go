package port

import (
	"context"

	"github.com/MikeRez0/ypshop/internal/core/domain"
)

//go:generate mockgen -source=events.go -destination=mock/events.go -package=mock
type EventPublisher interface {
	Publish(ctx context.Context, msg *domain.OutboxMessage) error
	Close() error
}
