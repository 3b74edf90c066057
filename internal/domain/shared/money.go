package shared

import (
	"github.com/shopspring/decimal"
)

// All monetary amounts are stored and computed as integer cents.
// Decimal is used only when converting dollar strings at the API boundary.

var centsPerDollar = decimal.NewFromInt(100)

// ParseDollars converts a dollar amount string (e.g. "25.50") to cents.
// Amounts with more than two fractional digits are rejected.
func ParseDollars(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, NewDomainError("INVALID_INPUT", "Invalid monetary amount")
	}
	if d.IsNegative() {
		return 0, NewDomainError("INVALID_INPUT", "Monetary amount cannot be negative")
	}
	cents := d.Mul(centsPerDollar)
	if !cents.IsInteger() {
		return 0, NewDomainError("INVALID_INPUT", "Monetary amount cannot have sub-cent precision")
	}
	return cents.IntPart(), nil
}

// FormatCents renders cents as a dollar string with two fractional digits.
func FormatCents(cents int64) string {
	return decimal.NewFromInt(cents).Div(centsPerDollar).StringFixed(2)
}
