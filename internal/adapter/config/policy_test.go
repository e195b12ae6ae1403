package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadInstallmentPolicy(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		policy, err := LoadInstallmentPolicy(&Policy{})
		require.NoError(t, err)

		assert.Equal(t, "300.00", policy.MinAmount.String())
		assert.Equal(t, "0.05", policy.FineRate.String())
		assert.Len(t, policy.FeeRates, 3)
		rate, ok := policy.FeeRate(6)
		assert.True(t, ok)
		assert.True(t, rate.Cmp(decimal.MustParse("2")) == 0)
	})

	t.Run("From file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "installment.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
min_amount: "500.00"
fine_rate: "0.1"
fee_rates:
  "3": "1.5"
  "24": "3.25"
`), 0o600))

		policy, err := LoadInstallmentPolicy(&Policy{File: path})
		require.NoError(t, err)

		assert.Equal(t, "500.00", policy.MinAmount.String())
		assert.Equal(t, "0.1", policy.FineRate.String())
		assert.Len(t, policy.FeeRates, 2)
		_, ok := policy.FeeRate(12)
		assert.False(t, ok)
		rate, ok := policy.FeeRate(24)
		assert.True(t, ok)
		assert.Equal(t, "3.25", rate.String())
	})

	t.Run("Env overrides file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "installment.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`min_amount: "500.00"`), 0o600))
		t.Setenv("INSTALLMENT_MIN_AMOUNT", "100")

		policy, err := LoadInstallmentPolicy(&Policy{File: path})
		require.NoError(t, err)
		assert.Equal(t, "100", policy.MinAmount.String())
	})

	t.Run("Bad count", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "installment.yaml")
		require.NoError(t, os.WriteFile(path, []byte("fee_rates:\n  \"three\": \"1.5\"\n"), 0o600))

		_, err := LoadInstallmentPolicy(&Policy{File: path})
		assert.Error(t, err)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := LoadInstallmentPolicy(&Policy{File: filepath.Join(t.TempDir(), "absent.yaml")})
		assert.Error(t, err)
	})
}
