package credit

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/SupriyoGhoshal/Credit-Approver-Backend-System/internal/domain/customer"
	"github.com/SupriyoGhoshal/Credit-Approver-Backend-System/internal/domain/loan"
)

// MsgEMIBurden is returned when existing installments already consume more
// than half the customer's monthly income.
const MsgEMIBurden = "Total EMI burden exceeds 50% of monthly income. Loan not approved."

// Slab rate floors: the minimum annual rate acceptable for mid and low
// credit-score bands.
var (
	slabMidRate = decimal.NewFromInt(12)
	slabLowRate = decimal.NewFromInt(16)
)

// Decision is the outcome of an eligibility evaluation. A rejection is a
// business outcome, not an error.
//
// CorrectedInterestRate carries a double meaning inherited from the credit
// policy: when the slab accepts the requested rate it is the rate actually
// used, and when the slab rejects it it is the minimum rate that would have
// unlocked approval. It is nil only for EMI-burden rejections, where
// MonthlyInstallment is nil as well.
type Decision struct {
	Approved              bool
	InterestRate          decimal.Decimal
	CorrectedInterestRate *decimal.Decimal
	Tenure                int
	MonthlyInstallment    *decimal.Decimal
	CreditScore           float64
	Message               string
}

// EvaluateEligibility decides whether the proposed loan should be granted.
// loans must be the customer's full history (see ComputeCreditScore). The
// evaluation order is fixed: score, then the income-burden gate, then the
// score slabs. The installment is always computed at the corrected rate, even
// for rejected applications, so callers can report what the loan would cost.
func EvaluateEligibility(c *customer.Customer, loans []loan.Loan, loanAmount, interestRate decimal.Decimal, tenureMonths int, now time.Time) Decision {
	score := ComputeCreditScore(c, loans, now)

	burden := decimal.Zero
	for i := range loans {
		if loans[i].Approved && loans[i].Active() {
			burden = burden.Add(loans[i].MonthlyInstallment)
		}
	}
	// A zero or missing income never divides and never faults: any positive
	// burden simply exceeds half of it.
	if burden.GreaterThan(c.MonthlyIncome.Div(decimal.NewFromInt(2))) {
		return Decision{
			Approved:     false,
			InterestRate: interestRate,
			Tenure:       tenureMonths,
			CreditScore:  score,
			Message:      MsgEMIBurden,
		}
	}

	corrected := interestRate
	approved := false
	switch {
	case score > 50:
		approved = true
	case score > 30:
		if interestRate.GreaterThanOrEqual(slabMidRate) {
			approved = true
		} else {
			corrected = slabMidRate
		}
	case score > 10:
		if interestRate.GreaterThanOrEqual(slabLowRate) {
			approved = true
		} else {
			corrected = slabLowRate
		}
	}
	// score <= 10: rejected outright, corrected stays at the requested rate.

	emi := ComputeEMI(loanAmount, corrected, tenureMonths)
	return Decision{
		Approved:              approved,
		InterestRate:          interestRate,
		CorrectedInterestRate: &corrected,
		Tenure:                tenureMonths,
		MonthlyInstallment:    &emi,
		CreditScore:           score,
	}
}
