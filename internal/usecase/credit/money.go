package credit

import "github.com/shopspring/decimal"

// RoundMoney rounds a monetary amount to 2 decimal places, half away from
// zero. Every currency figure leaving this package goes through it exactly
// once, at the point of final computation; intermediate steps stay unrounded
// so rounding error never compounds.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
