package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type InstallmentStatus string

const (
	InstallmentStatusPending  InstallmentStatus = "pending"
	InstallmentStatusRepaying InstallmentStatus = "repaying"
	InstallmentStatusFinished InstallmentStatus = "finished"
)

// InstallmentPeriodDays is the distance between two consecutive due dates.
const InstallmentPeriodDays = 30

type Installment struct {
	ID          uint64
	UserID      uint64
	OrderID     uint64
	TotalAmount decimal.Decimal
	Count       int
	FeeRate     decimal.Decimal
	FineRate    decimal.Decimal
	Status      InstallmentStatus
	CreatedAt   time.Time
	Items       []*InstallmentItem
}

type InstallmentItem struct {
	Sequence int
	Base     decimal.Decimal
	Fee      decimal.Decimal
	DueDate  time.Time
}

// InstallmentPolicy holds the installment settings supplied by configuration.
type InstallmentPolicy struct {
	MinAmount decimal.Decimal
	// FeeRates maps an allowed period count to its fee rate, in percent per period.
	FeeRates map[int]decimal.Decimal
	FineRate decimal.Decimal
}

func DefaultInstallmentPolicy() InstallmentPolicy {
	return InstallmentPolicy{
		MinAmount: decimal.MustParse("300.00"),
		FeeRates: map[int]decimal.Decimal{
			3:  decimal.MustParse("1.5"),
			6:  decimal.MustParse("2"),
			12: decimal.MustParse("2.5"),
		},
		FineRate: decimal.MustParse("0.05"),
	}
}

// FeeRate returns the fee rate for count and whether count is allowed.
func (p InstallmentPolicy) FeeRate(count int) (decimal.Decimal, bool) {
	rate, ok := p.FeeRates[count]
	return rate, ok
}

// FirstDueDate is the start of the day after now.
func FirstDueDate(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
}
