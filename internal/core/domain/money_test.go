package domain_test

import (
	"testing"

	"github.com/MikeRez0/ypshop/internal/core/domain"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitEvenly(t *testing.T) {
	type splitTest struct {
		name    string
		total   string
		count   int
		expBase string
		expLast string
	}

	tests := []splitTest{
		{name: "remainder goes to last", total: "1000.00", count: 3, expBase: "333.33", expLast: "333.34"},
		{name: "even split", total: "300.00", count: 3, expBase: "100.00", expLast: "100.00"},
		{name: "twelve periods", total: "1234.56", count: 12, expBase: "102.88", expLast: "102.88"},
		{name: "big remainder", total: "1000.01", count: 6, expBase: "166.66", expLast: "166.71"},
		{name: "single period", total: "999.99", count: 1, expBase: "999.99", expLast: "999.99"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			total := decimal.MustParse(test.total)
			base, last, err := domain.SplitEvenly(total, test.count)
			require.NoError(t, err)

			assert.Equal(t, test.expBase, base.String())
			assert.Equal(t, test.expLast, last.String())
		})
	}
}

func TestSplitEvenly_ExactSum(t *testing.T) {
	totals := []string{"300.00", "1000.00", "1000.01", "777.77", "12345.67", "300.01", "99999.99"}
	counts := []int{1, 3, 6, 7, 12, 24}

	for _, ts := range totals {
		for _, count := range counts {
			total := decimal.MustParse(ts)
			base, last, err := domain.SplitEvenly(total, count)
			require.NoError(t, err)

			sum := decimal.Zero
			for i := 0; i < count-1; i++ {
				sum, err = sum.Add(base)
				require.NoError(t, err)
			}
			sum, err = sum.Add(last)
			require.NoError(t, err)

			assert.True(t, sum.Cmp(total) == 0, "total %s count %d: sum %s", ts, count, sum)
			assert.True(t, last.Cmp(base) >= 0, "last period must not be below base")
		}
	}
}

func TestSplitEvenly_BadCount(t *testing.T) {
	_, _, err := domain.SplitEvenly(decimal.Hundred, 0)
	assert.Error(t, err)
}

func TestPercentOf(t *testing.T) {
	fee, err := domain.PercentOf(decimal.MustParse("1000.00"), decimal.MustParse("2.5"))
	require.NoError(t, err)
	assert.Equal(t, "25.00", fee.String())

	fee, err = domain.PercentOf(decimal.MustParse("333.33"), decimal.MustParse("1.5"))
	require.NoError(t, err)
	// 4.99995 is truncated, not rounded
	assert.Equal(t, "4.99", fee.String())
}

func TestMinorUnits(t *testing.T) {
	units, err := domain.MinorUnits(decimal.MustParse("1000.00"))
	require.NoError(t, err)
	assert.Equal(t, int64(100000), units)

	units, err = domain.MinorUnits(decimal.MustParse("0.019"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), units)
}
