package service

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/cartways/paypal-express-api/models"
	"github.com/shopspring/decimal"
)

// ErrUnsupportedAmountType is returned when a monetary value is not one of
// the accepted representations. It is a programming error and is never
// caught locally.
var ErrUnsupportedAmountType = errors.New("unsupported type for money amount")

var amountRegex = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// MoneyValue is one of the accepted internal representations of a monetary
// value: a money wrapper object, a raw decimal, or the literal value zero.
type MoneyValue interface {
	isMoneyValue()
}

// WrappedAmount is the platform's money wrapper representation
type WrappedAmount models.MoneyRest

// RawDecimal is a plain decimal amount
type RawDecimal decimal.Decimal

// Zero is the literal value zero
type Zero struct{}

func (WrappedAmount) isMoneyValue() {}
func (RawDecimal) isMoneyValue()    {}
func (Zero) isMoneyValue()          {}

// CoerceAmount normalises a monetary value into the single decimal form
// accepted by the provider. Fractional zeros are trimmed when the amount is
// serialised, so whole amounts render as integers and fractional amounts
// keep their decimal unrounded.
func CoerceAmount(value MoneyValue) (models.AmountValue, error) {
	switch v := value.(type) {
	case WrappedAmount:
		amount, err := ParseAmount(v.Amount)
		if err != nil {
			return models.AmountValue{}, err
		}
		return amount, nil
	case RawDecimal:
		return models.AmountValue{Decimal: decimal.Decimal(v)}, nil
	case Zero:
		return models.AmountValue{Decimal: decimal.Zero}, nil
	default:
		return models.AmountValue{}, fmt.Errorf("%w: %T", ErrUnsupportedAmountType, value)
	}
}

// MoneyValueFromRest converts the platform money wrapper into a MoneyValue.
// A nil wrapper is not an accepted representation and coerces to
// ErrUnsupportedAmountType.
func MoneyValueFromRest(money *models.MoneyRest) MoneyValue {
	if money == nil {
		return nil
	}
	return WrappedAmount(*money)
}

// MoneyValueFromRestOrZero converts the platform money wrapper into a
// MoneyValue, defaulting to the literal zero when absent
func MoneyValueFromRestOrZero(money *models.MoneyRest) MoneyValue {
	if money == nil {
		return Zero{}
	}
	return WrappedAmount(*money)
}

// ParseAmount parses a platform amount string into provider-safe decimal form
func ParseAmount(amount string) (models.AmountValue, error) {
	if !amountRegex.MatchString(amount) {
		return models.AmountValue{}, fmt.Errorf("amount [%s] format incorrect", amount)
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return models.AmountValue{}, fmt.Errorf("error parsing amount [%s]: [%v]", amount, err)
	}

	return models.AmountValue{Decimal: d}, nil
}
