package types

import "github.com/shopspring/decimal"

// hundred is used to convert percentages to fractions.
var hundred = decimal.NewFromInt(100)

// DecimalOrZero returns the value of an optional decimal. An absent
// value is zero.
func DecimalOrZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}

// NewNullDecimal returns a present optional decimal.
func NewNullDecimal(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// PercentOf returns percent % of the amount. An absent percentage
// counts as zero.
func PercentOf(amount decimal.Decimal, percent decimal.NullDecimal) decimal.Decimal {
	return amount.Mul(DecimalOrZero(percent).Div(hundred))
}
