package repository

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/ypshop/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// claimLease keeps a claimed message away from other relays while it is being published.
const claimLease = 30 * time.Second

// maxBackoffSeconds caps the retry delay of a failing message.
const maxBackoffSeconds = 300.0

func (r *Repository) insertOutbox(ctx context.Context, tx pgx.Tx, msg *domain.OutboxMessage) error {
	statement := r.db.QueryBuilder.
		Insert("outbox").
		Columns("id", "topic", "key", "payload", "status", "created_at").
		Values(msg.ID, msg.Topic, msg.Key, msg.Payload, domain.OutboxStatusPending, msg.CreatedAt)

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, sql, args...)
	return err
}

// ClaimOutboxMessages leases up to limit due messages to the caller.
func (r *Repository) ClaimOutboxMessages(ctx context.Context, limit int) ([]*domain.OutboxMessage, error) {
	if limit <= 0 {
		return nil, errors.New("claim limit must be positive")
	}

	due := sq.Select("id").
		From("outbox").
		Where(sq.Eq{"status": domain.OutboxStatusPending}).
		Where("available_at <= now()").
		OrderBy("created_at").
		Limit(uint64(limit)).
		Suffix("FOR UPDATE SKIP LOCKED")

	statement := r.db.QueryBuilder.
		Update("outbox").
		Set("attempts", sq.Expr("attempts + 1")).
		Set("available_at", sq.Expr("now() + make_interval(secs => ?)", claimLease.Seconds())).
		Where(sq.Expr("id IN (?)", due)).
		Suffix("RETURNING id::text, topic, key, payload, attempts, created_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.OutboxMessage, 0)
	for rows.Next() {
		msg := domain.OutboxMessage{}
		if err := rows.Scan(&msg.ID, &msg.Topic, &msg.Key, &msg.Payload, &msg.Attempts, &msg.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, &msg)
	}

	return list, rows.Err()
}

func (r *Repository) MarkOutboxPublished(ctx context.Context, id string) error {
	statement := r.db.QueryBuilder.
		Update("outbox").
		Set("status", domain.OutboxStatusPublished).
		Set("published_at", sq.Expr("now()")).
		Set("last_error", nil).
		Where(sq.Eq{"id": id})

	return r.execOne(ctx, statement)
}

// MarkOutboxFailed records the publish error and schedules the next attempt with a delay
// doubling per attempt.
func (r *Repository) MarkOutboxFailed(ctx context.Context, id string, cause error) error {
	lastError := ""
	if cause != nil {
		lastError = cause.Error()
	}

	statement := r.db.QueryBuilder.
		Update("outbox").
		Set("last_error", lastError).
		Set("available_at", sq.Expr("now() + make_interval(secs => least(power(2, attempts), ?))", maxBackoffSeconds)).
		Where(sq.Eq{"id": id, "status": domain.OutboxStatusPending})

	return r.execOne(ctx, statement)
}

func (r *Repository) execOne(ctx context.Context, statement sq.UpdateBuilder) error {
	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}
