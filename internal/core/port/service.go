package port

import (
	"context"

	"github.com/MikeRez0/ypshop/internal/core/domain"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock
type Service interface {
	GetOrder(ctx context.Context, userID uint64, orderID uint64) (*domain.Order, error)
	InitiatePayment(ctx context.Context, userID uint64, orderID uint64,
		method domain.PaymentMethod) (*domain.PaymentRequest, error)

	HandlePaymentNotification(ctx context.Context, gateway domain.PaymentMethod,
		n *domain.PaymentNotification) domain.AckOutcome
	HandleRefundNotification(ctx context.Context, n *domain.RefundNotification) domain.AckOutcome

	CreateInstallmentPlan(ctx context.Context, userID uint64, orderID uint64, count int) (*domain.Installment, error)
}
