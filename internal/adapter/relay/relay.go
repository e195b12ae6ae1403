package relay

import (
	"context"
	"errors"
	"fmt"

	"github.com/MikeRez0/ypshop/internal/adapter/config"
	"github.com/MikeRez0/ypshop/internal/adapter/metrics"
	"github.com/MikeRez0/ypshop/internal/core/domain"
	"github.com/MikeRez0/ypshop/internal/core/port"
	"go.uber.org/zap"
)

// Relay moves outbox messages to the event broker. Delivery is at least once,
// subscribers deduplicate by message id.
type Relay struct {
	repo      port.OutboxRepository
	publisher port.EventPublisher
	metrics   *metrics.Metrics
	logger    *zap.Logger
	batch     int
	queue     chan *domain.OutboxMessage
}

func NewRelay(cfg *config.Relay, repo port.OutboxRepository, publisher port.EventPublisher,
	m *metrics.Metrics, log *zap.Logger) (*Relay, error) {
	if cfg.BatchSize <= 0 {
		return nil, fmt.Errorf("relay batch size must be positive, got %d", cfg.BatchSize)
	}
	return &Relay{
		repo:      repo,
		publisher: publisher,
		metrics:   m,
		logger:    log,
		batch:     cfg.BatchSize,
		queue:     make(chan *domain.OutboxMessage, cfg.BatchSize),
	}, nil
}

// Start runs workers goroutines serving the relay queue until ctx is done.
func (r *Relay) Start(ctx context.Context, workers int) {
	for i := 0; i < workers; i++ {
		go func(queue chan *domain.OutboxMessage) {
			for {
				select {
				case msg := <-queue:
					r.process(ctx, msg)
				case <-ctx.Done():
					r.logger.Debug("Finished relay worker")
					return
				}
			}
		}(r.queue)
	}
}

func (r *Relay) process(ctx context.Context, msg *domain.OutboxMessage) {
	log := r.logger.With(
		zap.String("message_id", msg.ID),
		zap.String("topic", msg.Topic),
		zap.String("key", msg.Key),
		zap.Int("attempt", msg.Attempts))

	err := r.publisher.Publish(ctx, msg)
	if err != nil {
		r.metrics.ObserveRelay(msg.Topic, metrics.RelayFailed)
		log.Warn("Publish outbox message", zap.Error(err))
		if err := r.repo.MarkOutboxFailed(ctx, msg.ID, err); err != nil {
			// the lease runs out and the message is claimed again
			log.Error("Reschedule outbox message", zap.Error(err))
		}
		return
	}

	r.metrics.ObserveRelay(msg.Topic, metrics.RelayPublished)
	if err := r.repo.MarkOutboxPublished(ctx, msg.ID); err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			log.Warn("Outbox message vanished after publish")
			return
		}
		log.Error("Mark outbox message published", zap.Error(err))
		return
	}
	log.Debug("Outbox message published")
}
