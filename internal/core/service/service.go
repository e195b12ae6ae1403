package service

import (
	"context"
	"errors"
	"time"

	"github.com/MikeRez0/ypshop/internal/core/domain"
	"github.com/MikeRez0/ypshop/internal/core/port"
	"go.uber.org/zap"
)

type Service struct {
	repo   port.Repository
	locker port.OrderLocker
	policy domain.InstallmentPolicy
	logger *zap.Logger
	now    func() time.Time
}

var _ port.Service = (*Service)(nil)

type Option func(*Service)

// WithClock replaces time.Now as the source of payment and plan timestamps.
func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

func NewService(repo port.Repository, locker port.OrderLocker,
	policy domain.InstallmentPolicy, logger *zap.Logger, opts ...Option) (*Service, error) {
	s := &Service{
		repo:   repo,
		locker: locker,
		policy: policy,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Service) GetOrder(ctx context.Context, userID uint64, orderID uint64) (*domain.Order, error) {
	return s.ownedOrder(ctx, userID, orderID)
}

func (s *Service) ownedOrder(ctx context.Context, userID uint64, orderID uint64) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrDataNotFound
		}
		s.logger.Error("Read order", zap.Uint64("order_id", orderID), zap.Error(err))
		return nil, domain.ErrInternal
	}

	if order.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return order, nil
}
