package domain

import (
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/text/currency"
)

// ToMinorUnits converts a decimal amount string (e.g. "12.345") to cents,
// rounding half away from zero. The input is parsed as an exact rational so
// no float error is introduced. Empty input is zero.
func ToMinorUnits(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return 0, nil
	}

	r, ok := new(big.Rat).SetString(amount)
	if !ok {
		return 0, fmt.Errorf("%w: invalid amount %q", ErrValidation, amount)
	}
	if r.Sign() < 0 {
		return 0, fmt.Errorf("%w: amount must not be negative", ErrValidation)
	}

	r.Mul(r, big.NewRat(100, 1))
	// add one half and truncate: half-up for non-negative values
	r.Add(r, big.NewRat(1, 2))
	cents := new(big.Int).Quo(r.Num(), r.Denom())
	if !cents.IsInt64() {
		return 0, fmt.Errorf("%w: amount too large", ErrValidation)
	}

	return cents.Int64(), nil
}

// NormalizeCurrency validates an ISO 4217 code and returns it upper-cased.
func NormalizeCurrency(code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", nil
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("%w: unknown currency %q", ErrValidation, code)
	}

	return unit.String(), nil
}

// FormatMinorUnits renders cents as a decimal amount with two places.
func FormatMinorUnits(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
