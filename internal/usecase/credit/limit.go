package credit

import "github.com/shopspring/decimal"

var lakh = decimal.NewFromInt(100_000)

// RoundToNearestLakh rounds an amount to the nearest multiple of 100,000,
// half up for positive amounts (half away from zero in general). Used to
// derive a customer's approved credit limit at registration and during bulk
// ingestion; the decision engine itself never recomputes limits.
func RoundToNearestLakh(amount decimal.Decimal) int64 {
	return amount.Div(lakh).Round(0).Mul(lakh).IntPart()
}
