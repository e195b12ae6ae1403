package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type PaymentMethod string

const (
	PaymentMethodNone        PaymentMethod = ""
	PaymentMethodAlipay      PaymentMethod = "alipay"
	PaymentMethodWechat      PaymentMethod = "wechat"
	PaymentMethodInstallment PaymentMethod = "installment"
)

type RefundStatus string

const (
	RefundStatusNone       RefundStatus = "none"
	RefundStatusProcessing RefundStatus = "processing"
	RefundStatusSuccess    RefundStatus = "success"
	RefundStatusFailed     RefundStatus = "failed"
)

// ExtraRefundFailedCode is the Order.Extra key holding the gateway refund failure code.
const ExtraRefundFailedCode = "refund_failed_code"

type Order struct {
	ID            uint64
	Number        string
	UserID        uint64
	TotalAmount   decimal.Decimal
	PaidAt        *time.Time
	PaymentMethod PaymentMethod
	PaymentNo     string
	Closed        bool
	RefundStatus  RefundStatus
	Extra         map[string]string
	CreatedAt     time.Time
}

func (o *Order) IsPaid() bool {
	return o.PaidAt != nil
}

// Payable reports whether a payment may still be started for the order.
func (o *Order) Payable() bool {
	return !o.IsPaid() && !o.Closed
}

// MarkPaid sets all payment fields together.
func (o *Order) MarkPaid(method PaymentMethod, paymentNo string, at time.Time) {
	paidAt := at
	o.PaidAt = &paidAt
	o.PaymentMethod = method
	o.PaymentNo = paymentNo
}

// SetExtra sets one diagnostic key and keeps the others.
func (o *Order) SetExtra(key, value string) {
	extra := make(map[string]string, len(o.Extra)+1)
	for k, v := range o.Extra {
		extra[k] = v
	}
	extra[key] = value
	o.Extra = extra
}

// PaymentRequest is what a gateway SDK needs to start a payment for an order.
type PaymentRequest struct {
	Method      PaymentMethod
	OutTradeNo  string
	Amount      decimal.Decimal
	AmountMinor int64
	Subject     string
}
