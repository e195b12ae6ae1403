package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/ypshop/internal/adapter/storage"
	"github.com/MikeRez0/ypshop/internal/core/domain"
	"github.com/MikeRez0/ypshop/internal/core/port"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Repository struct {
	db *storage.DB
}

var _ port.Repository = (*Repository)(nil)

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

var orderColumns = []string{
	"id", "no", "user_id", "total_amount", "paid_at", "payment_method",
	"payment_no", "closed", "refund_status", "extra", "created_at",
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	order := domain.Order{}
	err := row.Scan(
		&order.ID,
		&order.Number,
		&order.UserID,
		&order.TotalAmount,
		&order.PaidAt,
		&order.PaymentMethod,
		&order.PaymentNo,
		&order.Closed,
		&order.RefundStatus,
		&order.Extra,
		&order.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	if order.Extra == nil {
		order.Extra = map[string]string{}
	}
	return &order, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func (r *Repository) readOrder(ctx context.Context, q pgx.Tx, where sq.Eq, forUpdate bool) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(where)
	if forUpdate {
		statement = statement.Suffix("FOR UPDATE")
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	if q != nil {
		return scanOrder(q.QueryRow(ctx, sql, args...))
	}
	return scanOrder(r.db.QueryRow(ctx, sql, args...))
}

func (r *Repository) ReadOrder(ctx context.Context, orderID uint64) (*domain.Order, error) {
	return r.readOrder(ctx, nil, sq.Eq{"id": orderID}, false)
}

func (r *Repository) ReadOrderByNumber(ctx context.Context, number string) (*domain.Order, error) {
	return r.readOrder(ctx, nil, sq.Eq{"no": number}, false)
}

// UpdateOrderByNumber locks the order row, lets updateFn decide and writes the payment
// and refund fields together with the returned outbox message in one transaction.
func (r *Repository) UpdateOrderByNumber(ctx context.Context, number string,
	updateFn port.UpdateOrderFn) (*domain.Order, error) {
	var order *domain.Order

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		order, err = r.readOrder(ctx, tx, sq.Eq{"no": number}, true)
		if err != nil {
			return err
		}

		msg, err := updateFn(order)
		if err != nil {
			return err
		}

		statement := r.db.QueryBuilder.
			Update("orders").
			Set("paid_at", order.PaidAt).
			Set("payment_method", order.PaymentMethod).
			Set("payment_no", order.PaymentNo).
			Set("refund_status", order.RefundStatus).
			Set("extra", order.Extra).
			Where(sq.Eq{"id": order.ID})

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}
		if _, err = tx.Exec(ctx, sql, args...); err != nil {
			return err
		}

		if msg != nil {
			return r.insertOutbox(ctx, tx, msg)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}
