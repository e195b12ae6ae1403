package http

import (
	"time"

	"github.com/MikeRez0/ypshop/internal/core/domain"
	"github.com/govalues/decimal"
)

// jsonDecimal renders amounts as JSON numbers with their exact digits.
type jsonDecimal decimal.Decimal

func (j jsonDecimal) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(j).String()), nil
}

type OrderResp struct {
	ID            uint64            `json:"id"`
	Number        string            `json:"no"`
	TotalAmount   jsonDecimal       `json:"total_amount"`
	PaidAt        *time.Time        `json:"paid_at,omitempty"`
	PaymentMethod string            `json:"payment_method,omitempty"`
	PaymentNo     string            `json:"payment_no,omitempty"`
	Closed        bool              `json:"closed"`
	RefundStatus  string            `json:"refund_status"`
	Extra         map[string]string `json:"extra,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}

func newOrderResp(o *domain.Order) OrderResp {
	return OrderResp{
		ID:            o.ID,
		Number:        o.Number,
		TotalAmount:   jsonDecimal(o.TotalAmount),
		PaidAt:        o.PaidAt,
		PaymentMethod: string(o.PaymentMethod),
		PaymentNo:     o.PaymentNo,
		Closed:        o.Closed,
		RefundStatus:  string(o.RefundStatus),
		Extra:         o.Extra,
		CreatedAt:     o.CreatedAt,
	}
}

type PaymentResp struct {
	Method     string      `json:"method"`
	OutTradeNo string      `json:"out_trade_no"`
	Amount     jsonDecimal `json:"total_amount"`
	TotalFee   int64       `json:"total_fee"`
	Subject    string      `json:"subject"`
}

func newPaymentResp(p *domain.PaymentRequest) PaymentResp {
	return PaymentResp{
		Method:     string(p.Method),
		OutTradeNo: p.OutTradeNo,
		Amount:     jsonDecimal(p.Amount),
		TotalFee:   p.AmountMinor,
		Subject:    p.Subject,
	}
}

type InstallmentItemResp struct {
	Sequence int         `json:"sequence"`
	Base     jsonDecimal `json:"base"`
	Fee      jsonDecimal `json:"fee"`
	DueDate  time.Time   `json:"due_date"`
}

type InstallmentResp struct {
	ID          uint64                `json:"id"`
	OrderID     uint64                `json:"order_id"`
	TotalAmount jsonDecimal           `json:"total_amount"`
	Count       int                   `json:"count"`
	FeeRate     jsonDecimal           `json:"fee_rate"`
	FineRate    jsonDecimal           `json:"fine_rate"`
	Status      string                `json:"status"`
	Items       []InstallmentItemResp `json:"items"`
}

func newInstallmentResp(i *domain.Installment) InstallmentResp {
	r := InstallmentResp{
		ID:          i.ID,
		OrderID:     i.OrderID,
		TotalAmount: jsonDecimal(i.TotalAmount),
		Count:       i.Count,
		FeeRate:     jsonDecimal(i.FeeRate),
		FineRate:    jsonDecimal(i.FineRate),
		Status:      string(i.Status),
		Items:       make([]InstallmentItemResp, 0, len(i.Items)),
	}
	for _, item := range i.Items {
		r.Items = append(r.Items, InstallmentItemResp{
			Sequence: item.Sequence,
			Base:     jsonDecimal(item.Base),
			Fee:      jsonDecimal(item.Fee),
			DueDate:  item.DueDate,
		})
	}
	return r
}
