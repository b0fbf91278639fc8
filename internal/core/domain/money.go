package domain

import "github.com/shopspring/decimal"

var (
	MinBudget = decimal.NewFromInt(1)
	MinBid    = decimal.RequireFromString("0.01")
)

// checkMoney rejects negative amounts and amounts with more than two
// decimal places.
func checkMoney(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return &ValidationError{Field: field, Reason: "must not be negative"}
	}
	if !v.Equal(v.Round(2)) {
		return &ValidationError{Field: field, Reason: "must have at most 2 decimal places"}
	}
	return nil
}
