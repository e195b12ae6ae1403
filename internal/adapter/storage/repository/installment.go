package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/ypshop/internal/core/domain"
	"github.com/MikeRez0/ypshop/internal/core/port"
	"github.com/jackc/pgx/v5"
)

var installmentColumns = []string{
	"id", "user_id", "order_id", "total_amount", "count", "fee_rate", "fine_rate", "status", "created_at",
}

// ReplacePendingInstallment deletes the pending plans of the order and stores the one built
// by buildFn, holding the order row lock for the whole transaction.
func (r *Repository) ReplacePendingInstallment(ctx context.Context, orderID uint64,
	buildFn port.BuildInstallmentFn) (*domain.Installment, error) {
	var installment *domain.Installment

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		order, err := r.readOrder(ctx, tx, sq.Eq{"id": orderID}, true)
		if err != nil {
			return err
		}

		installment, err = buildFn(order)
		if err != nil {
			return err
		}

		deleteSt := r.db.QueryBuilder.
			Delete("installments").
			Where(sq.Eq{"order_id": order.ID, "status": domain.InstallmentStatusPending})

		sql, args, err := deleteSt.ToSql()
		if err != nil {
			return err
		}
		if _, err = tx.Exec(ctx, sql, args...); err != nil {
			return err
		}

		insertSt := r.db.QueryBuilder.
			Insert("installments").
			Columns("user_id", "order_id", "total_amount", "count", "fee_rate", "fine_rate", "status", "created_at").
			Values(installment.UserID, installment.OrderID, installment.TotalAmount, installment.Count,
				installment.FeeRate, installment.FineRate, installment.Status, installment.CreatedAt).
			Suffix("RETURNING id")

		sql, args, err = insertSt.ToSql()
		if err != nil {
			return err
		}
		if err = tx.QueryRow(ctx, sql, args...).Scan(&installment.ID); err != nil {
			return err
		}

		itemsSt := r.db.QueryBuilder.
			Insert("installment_items").
			Columns("installment_id", "sequence", "base", "fee", "due_date")
		for _, item := range installment.Items {
			itemsSt = itemsSt.Values(installment.ID, item.Sequence, item.Base, item.Fee, item.DueDate)
		}

		sql, args, err = itemsSt.ToSql()
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, sql, args...)
		return err
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	return installment, nil
}

func (r *Repository) ListInstallmentsByOrder(ctx context.Context, orderID uint64) ([]*domain.Installment, error) {
	statement := r.db.QueryBuilder.
		Select(installmentColumns...).
		From("installments").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Installment, 0)
	byID := make(map[uint64]*domain.Installment)
	for rows.Next() {
		inst := domain.Installment{}
		err := rows.Scan(
			&inst.ID,
			&inst.UserID,
			&inst.OrderID,
			&inst.TotalAmount,
			&inst.Count,
			&inst.FeeRate,
			&inst.FineRate,
			&inst.Status,
			&inst.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &inst)
		byID[inst.ID] = &inst
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return list, nil
	}

	ids := make([]uint64, 0, len(list))
	for _, inst := range list {
		ids = append(ids, inst.ID)
	}

	itemsSt := r.db.QueryBuilder.
		Select("installment_id", "sequence", "base", "fee", "due_date").
		From("installment_items").
		Where(sq.Eq{"installment_id": ids}).
		OrderBy("installment_id", "sequence")

	sql, args, err = itemsSt.ToSql()
	if err != nil {
		return nil, err
	}

	itemRows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var installmentID uint64
		item := domain.InstallmentItem{}
		if err := itemRows.Scan(&installmentID, &item.Sequence, &item.Base, &item.Fee, &item.DueDate); err != nil {
			return nil, err
		}
		if inst, ok := byID[installmentID]; ok {
			inst.Items = append(inst.Items, &item)
		}
	}

	return list, itemRows.Err()
}
