package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
)

const TopicOrderPaid = "order.paid"

type OutboxStatus string

const (
	OutboxStatusPending   OutboxStatus = "PENDING"
	OutboxStatusPublished OutboxStatus = "PUBLISHED"
)

type OutboxMessage struct {
	ID        string
	Topic     string
	Key       string
	Payload   []byte
	Attempts  int
	CreatedAt time.Time
}

type OrderPaidEvent struct {
	OrderID       uint64          `json:"order_id"`
	OrderNumber   string          `json:"order_no"`
	UserID        uint64          `json:"user_id"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	PaymentNo     string          `json:"payment_no"`
	PaidAt        time.Time       `json:"paid_at"`
}

// NewOrderPaidMessage describes a paid order for downstream subscribers.
func NewOrderPaidMessage(o *Order) (*OutboxMessage, error) {
	if o.PaidAt == nil {
		return nil, fmt.Errorf("order %s is not paid", o.Number)
	}
	payload, err := json.Marshal(OrderPaidEvent{
		OrderID:       o.ID,
		OrderNumber:   o.Number,
		UserID:        o.UserID,
		TotalAmount:   o.TotalAmount,
		PaymentMethod: o.PaymentMethod,
		PaymentNo:     o.PaymentNo,
		PaidAt:        *o.PaidAt,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal order paid event: %w", err)
	}

	return &OutboxMessage{
		ID:        uuid.NewString(),
		Topic:     TopicOrderPaid,
		Key:       o.Number,
		Payload:   payload,
		CreatedAt: *o.PaidAt,
	}, nil
}
