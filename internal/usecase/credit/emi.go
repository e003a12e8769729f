package credit

import "github.com/shopspring/decimal"

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// ComputeEMI returns the fixed monthly installment for a loan of the given
// principal at an annual interest rate (percent) over tenureMonths, using the
// standard amortizing-loan formula:
//
//	EMI = P·r·(1+r)^n / ((1+r)^n − 1), r = rate/100/12
//
// A non-positive tenure yields 0 (no installment is owed), and a zero rate
// degenerates to equal division of the principal. The result is rounded per
// RoundMoney; callers embed it verbatim in responses and persisted loans.
func ComputeEMI(principal, annualRatePct decimal.Decimal, tenureMonths int) decimal.Decimal {
	if tenureMonths <= 0 {
		return decimal.Zero
	}
	n := decimal.NewFromInt(int64(tenureMonths))
	r := annualRatePct.Div(hundred).Div(twelve)
	if r.IsZero() {
		return RoundMoney(principal.Div(n))
	}
	growth := one.Add(r).Pow(n)
	return RoundMoney(principal.Mul(r).Mul(growth).Div(growth.Sub(one)))
}
