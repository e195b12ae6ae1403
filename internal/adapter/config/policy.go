package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MikeRez0/ypshop/internal/core/domain"
	"github.com/govalues/decimal"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type policyFile struct {
	MinAmount string            `koanf:"min_amount"`
	FeeRates  map[string]string `koanf:"fee_rates"`
	FineRate  string            `koanf:"fine_rate"`
}

// LoadInstallmentPolicy reads the installment policy from a YAML file, then from
// INSTALLMENT_ prefixed variables (INSTALLMENT_FINE_RATE, INSTALLMENT_MIN_AMOUNT).
// Keys missing everywhere keep their default values.
func LoadInstallmentPolicy(conf *Policy) (domain.InstallmentPolicy, error) {
	policy := domain.DefaultInstallmentPolicy()

	k := koanf.New(".")
	if conf.File != "" {
		if err := k.Load(file.Provider(conf.File), yaml.Parser()); err != nil {
			return policy, fmt.Errorf("load installment policy: %w", err)
		}
	}
	if err := k.Load(env.Provider("INSTALLMENT_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "INSTALLMENT_"))
	}), nil); err != nil {
		return policy, fmt.Errorf("env overlay: %w", err)
	}
	// the file name itself lives under the same prefix
	k.Delete("config")

	var pf policyFile
	if err := k.Unmarshal("", &pf); err != nil {
		return policy, fmt.Errorf("unmarshal installment policy: %w", err)
	}

	var err error
	if pf.MinAmount != "" {
		if policy.MinAmount, err = decimal.Parse(pf.MinAmount); err != nil {
			return policy, fmt.Errorf("min_amount: %w", err)
		}
	}
	if pf.FineRate != "" {
		if policy.FineRate, err = decimal.Parse(pf.FineRate); err != nil {
			return policy, fmt.Errorf("fine_rate: %w", err)
		}
	}
	if len(pf.FeeRates) > 0 {
		rates := make(map[int]decimal.Decimal, len(pf.FeeRates))
		for c, r := range pf.FeeRates {
			count, err := strconv.Atoi(c)
			if err != nil || count <= 0 {
				return policy, fmt.Errorf("fee_rates: bad period count %q", c)
			}
			if rates[count], err = decimal.Parse(r); err != nil {
				return policy, fmt.Errorf("fee_rates[%d]: %w", count, err)
			}
		}
		policy.FeeRates = rates
	}

	if policy.MinAmount.IsNeg() || policy.FineRate.IsNeg() {
		return policy, fmt.Errorf("installment amounts must not be negative")
	}
	return policy, nil
}
