package domain

import (
	"fmt"
	"strconv"

	"github.com/govalues/decimal"
)

// MinorScale is the number of digits after the point of the currency minor unit.
const MinorScale = 2

// TruncMinor truncates d toward zero to minor units.
func TruncMinor(d decimal.Decimal) decimal.Decimal {
	return d.Trunc(MinorScale).Pad(MinorScale)
}

// SplitEvenly divides total into count parts. Every part but the last equals base,
// the last one absorbs the truncation remainder so the parts add up to total exactly.
func SplitEvenly(total decimal.Decimal, count int) (base, last decimal.Decimal, err error) {
	if count <= 0 {
		return decimal.Zero, decimal.Zero, fmt.Errorf("split into %d parts", count)
	}
	n, err := decimal.New(int64(count), 0)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("math error: %w", err)
	}
	q, err := total.Quo(n)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("math error: %w", err)
	}
	base = TruncMinor(q)

	rest, err := decimal.New(int64(count-1), 0)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("math error: %w", err)
	}
	paid, err := base.Mul(rest)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("math error: %w", err)
	}
	last, err = total.Sub(paid)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("math error: %w", err)
	}

	return base, last.Pad(MinorScale), nil
}

// PercentOf returns amount * rate / 100 truncated to minor units.
func PercentOf(amount, rate decimal.Decimal) (decimal.Decimal, error) {
	p, err := amount.Mul(rate)
	if err != nil {
		return decimal.Zero, fmt.Errorf("math error: %w", err)
	}
	p, err = p.Quo(decimal.Hundred)
	if err != nil {
		return decimal.Zero, fmt.Errorf("math error: %w", err)
	}
	return TruncMinor(p), nil
}

// MinorUnits converts an amount to an integer count of minor units, truncating sub-cent digits.
func MinorUnits(amount decimal.Decimal) (int64, error) {
	m, err := amount.Mul(decimal.Hundred)
	if err != nil {
		return 0, fmt.Errorf("math error: %w", err)
	}
	units, err := strconv.ParseInt(m.Trunc(0).String(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("minor units of %s: %w", amount, err)
	}
	return units, nil
}
