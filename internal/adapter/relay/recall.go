package relay

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Recall claims due outbox messages and hands them to the workers. It returns the
// number of claimed messages.
func (r *Relay) Recall(ctx context.Context) (int, error) {
	messages, err := r.repo.ClaimOutboxMessages(ctx, r.batch)
	if err != nil {
		return 0, err
	}
	for i, msg := range messages {
		select {
		case r.queue <- msg:
		case <-ctx.Done():
			return i, ctx.Err()
		}
	}

	return len(messages), nil
}

// Schedule recalls outbox messages every interval until ctx is done.
func (r *Relay) Schedule(ctx context.Context, interval time.Duration) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))

	_, err := c.AddFunc(fmt.Sprintf("@every %s", interval), func() {
		n, err := r.Recall(ctx)
		if err != nil {
			r.logger.Error("Recall outbox messages", zap.Error(err))
			return
		}
		if n > 0 {
			r.logger.Debug("Recalled outbox messages", zap.Int("count", n))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("schedule outbox recall: %w", err)
	}

	c.Start()
	go func() {
		<-ctx.Done()
		<-c.Stop().Done()
	}()

	return c, nil
}
