package service

import (
	"context"
	"errors"

	"github.com/MikeRez0/ypshop/internal/core/domain"
	"go.uber.org/zap"
)

func (s *Service) InitiatePayment(ctx context.Context, userID uint64, orderID uint64,
	method domain.PaymentMethod) (*domain.PaymentRequest, error) {
	if !domain.IsGateway(method) {
		return nil, domain.ErrPaymentMethodInvalid
	}

	order, err := s.ownedOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if !order.Payable() {
		return nil, domain.ErrOrderStatusInvalid
	}

	amount := domain.TruncMinor(order.TotalAmount)
	minor, err := domain.MinorUnits(amount)
	if err != nil {
		s.logger.Error("Payment amount", zap.String("order", order.Number), zap.Error(err))
		return nil, domain.ErrInternal
	}

	return &domain.PaymentRequest{
		Method:      method,
		OutTradeNo:  order.Number,
		Amount:      amount,
		AmountMinor: minor,
		Subject:     "Payment for order " + order.Number,
	}, nil
}

// HandlePaymentNotification applies a verified "payment" callback to the order it names.
// Redelivered callbacks are acknowledged without touching the order again.
func (s *Service) HandlePaymentNotification(ctx context.Context, gateway domain.PaymentMethod,
	n *domain.PaymentNotification) domain.AckOutcome {
	log := s.logger.With(
		zap.String("gateway", string(gateway)),
		zap.String("order", n.OutTradeNo),
		zap.String("status", n.Status))

	if !domain.IsGateway(gateway) {
		log.Error("Notification from unknown gateway")
		return domain.AckRejected
	}
	// intermediate statuses are accepted and ignored
	if !domain.IsPaymentSuccess(gateway, n.Status) {
		log.Debug("Ignoring non-final payment status")
		return domain.AckAcknowledge
	}

	unlock, err := s.locker.LockOrder(ctx, n.OutTradeNo)
	if err != nil {
		log.Error("Lock order", zap.Error(err))
		return domain.AckRejected
	}
	defer unlock()

	closed := false
	_, err = s.repo.UpdateOrderByNumber(ctx, n.OutTradeNo,
		func(o *domain.Order) (*domain.OutboxMessage, error) {
			if o.IsPaid() {
				return nil, domain.ErrNoUpdatedData
			}
			if o.Closed {
				closed = true
				return nil, domain.ErrNoUpdatedData
			}

			o.MarkPaid(gateway, n.TransactionID, s.now())
			return domain.NewOrderPaidMessage(o)
		})

	switch {
	case err == nil:
		log.Info("Order paid", zap.String("payment_no", n.TransactionID))
		return domain.AckAcknowledge
	case errors.Is(err, domain.ErrNoUpdatedData):
		if closed {
			log.Warn("Payment for closed order, left unpaid", zap.String("payment_no", n.TransactionID))
		} else {
			log.Debug("Order already paid")
		}
		return domain.AckAcknowledge
	case errors.Is(err, domain.ErrDataNotFound):
		log.Warn("Payment notification for unknown order")
		return domain.AckRejected
	default:
		log.Error("Update paid order", zap.Error(err))
		return domain.AckRejected
	}
}
