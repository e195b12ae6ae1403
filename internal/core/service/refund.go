package service

import (
	"context"
	"errors"

	"github.com/MikeRez0/ypshop/internal/core/domain"
	"go.uber.org/zap"
)

// HandleRefundNotification records the refund outcome reported by the gateway.
// The written state depends only on the payload, so redelivery rewrites the same values.
func (s *Service) HandleRefundNotification(ctx context.Context, n *domain.RefundNotification) domain.AckOutcome {
	log := s.logger.With(
		zap.String("order", n.OutTradeNo),
		zap.String("refund_status", n.RefundStatus))

	unlock, err := s.locker.LockOrder(ctx, n.OutTradeNo)
	if err != nil {
		log.Error("Lock order", zap.Error(err))
		return domain.AckHardFailure
	}
	defer unlock()

	_, err = s.repo.UpdateOrderByNumber(ctx, n.OutTradeNo,
		func(o *domain.Order) (*domain.OutboxMessage, error) {
			if n.RefundStatus == domain.RefundStatusCodeSuccess {
				o.RefundStatus = domain.RefundStatusSuccess
				return nil, nil
			}

			o.RefundStatus = domain.RefundStatusFailed
			o.SetExtra(domain.ExtraRefundFailedCode, n.RefundStatus)
			return nil, nil
		})
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			log.Warn("Refund notification for unknown order")
		} else {
			log.Error("Update refund status", zap.Error(err))
		}
		return domain.AckHardFailure
	}

	log.Info("Refund status recorded")
	return domain.AckAcknowledge
}
