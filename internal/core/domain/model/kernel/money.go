package kernel

import (
	"fmt"

	"atelier/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Supported currency codes for order totals.
const (
	CurrencyGBP = "GBP"
	CurrencyAED = "AED"
)

// ErrCurrencyIsNotSupported is returned when constructing Money with an unknown currency code.
var ErrCurrencyIsNotSupported = errs.NewValueIsInvalidError("currency")

// Money is a value object representing a monetary amount in a specific currency.
// Amounts are backed by arbitrary-precision decimals so totals never accumulate
// binary floating point drift. The zero value represents zero GBP and is valid.
//
// Money is immutable: arithmetic returns new values.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// NewMoney creates a Money value from an amount and a currency code.
// Negative amounts are rejected: order totals and item prices are never negative.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if currency != CurrencyGBP && currency != CurrencyAED {
		return Money{}, ErrCurrencyIsNotSupported
	}
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount))
	}

	return Money{amount: amount, currency: currency}, nil
}

// MoneyFromString parses a decimal string such as "1249.50" into Money.
// Used when reconstructing monetary values from persistence.
func MoneyFromString(amount, currency string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d, currency)
}

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the ISO currency code. An empty code means the zero value,
// which is treated as GBP.
func (m Money) Currency() string {
	if m.currency == "" {
		return CurrencyGBP
	}
	return m.currency
}

// Add returns the sum of two Money values.
// Adding across currencies is a programming error and is rejected.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency() != other.Currency() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("cannot add %s to %s", other.Currency(), m.Currency()))
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.Currency()}, nil
}

// Mul returns the amount multiplied by an integer quantity.
func (m Money) Mul(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))), currency: m.Currency()}
}

// IsEqual compares two Money values by amount and currency.
func (m Money) IsEqual(other Money) bool {
	return m.Currency() == other.Currency() && m.amount.Equal(other.amount)
}

// String renders the amount with its currency code, e.g. "1249.5 GBP".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.String(), m.Currency())
}
