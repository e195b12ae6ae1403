package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MikeRez0/ypshop/internal/core/domain"
	"go.uber.org/zap"
)

// CreateInstallmentPlan replaces the pending installment plan of the order with a
// count-period plan for the buyer.
func (s *Service) CreateInstallmentPlan(ctx context.Context, userID uint64, orderID uint64,
	count int) (*domain.Installment, error) {
	order, err := s.ownedOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if err := s.checkInstallment(order, count); err != nil {
		return nil, err
	}

	unlock, err := s.locker.LockOrder(ctx, order.Number)
	if err != nil {
		s.logger.Error("Lock order", zap.String("order", order.Number), zap.Error(err))
		return nil, domain.ErrInternal
	}
	defer unlock()

	installment, err := s.repo.ReplacePendingInstallment(ctx, order.ID,
		func(o *domain.Order) (*domain.Installment, error) {
			// state may have changed since the first read
			if err := s.checkInstallment(o, count); err != nil {
				return nil, err
			}
			return s.planInstallment(o, userID, count)
		})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			return nil, err
		}
		s.logger.Error("Create installment", zap.String("order", order.Number), zap.Error(err))
		return nil, domain.ErrInternal
	}

	s.logger.Info("Installment plan created",
		zap.String("order", order.Number),
		zap.Int("count", count),
		zap.Uint64("installment_id", installment.ID))

	return installment, nil
}

func (s *Service) checkInstallment(o *domain.Order, count int) error {
	if !o.Payable() {
		return domain.ErrOrderStatusInvalid
	}
	if o.TotalAmount.Cmp(s.policy.MinAmount) < 0 {
		return domain.ErrInstallmentAmountTooLow
	}
	if _, ok := s.policy.FeeRate(count); !ok {
		return domain.ErrInstallmentCountInvalid
	}
	return nil
}

func (s *Service) planInstallment(o *domain.Order, userID uint64, count int) (*domain.Installment, error) {
	feeRate, _ := s.policy.FeeRate(count)

	base, last, err := domain.SplitEvenly(o.TotalAmount, count)
	if err != nil {
		return nil, fmt.Errorf("installment base: %w", err)
	}
	fee, err := domain.PercentOf(o.TotalAmount, feeRate)
	if err != nil {
		return nil, fmt.Errorf("installment fee: %w", err)
	}

	now := s.now()
	installment := &domain.Installment{
		UserID:      userID,
		OrderID:     o.ID,
		TotalAmount: o.TotalAmount,
		Count:       count,
		FeeRate:     feeRate,
		FineRate:    s.policy.FineRate,
		Status:      domain.InstallmentStatusPending,
		CreatedAt:   now,
		Items:       make([]*domain.InstallmentItem, 0, count),
	}

	dueDate := domain.FirstDueDate(now)
	for i := 0; i < count; i++ {
		item := &domain.InstallmentItem{
			Sequence: i,
			Base:     base,
			Fee:      fee,
			DueDate:  dueDate,
		}
		if i == count-1 {
			item.Base = last
		}
		installment.Items = append(installment.Items, item)
		dueDate = dueDate.AddDate(0, 0, domain.InstallmentPeriodDays)
	}

	return installment, nil
}
