package credit

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SupriyoGhoshal/Credit-Approver-Backend-System/internal/domain/customer"
	"github.com/SupriyoGhoshal/Credit-Approver-Backend-System/internal/domain/loan"
)

var six = decimal.NewFromInt(6)

// ComputeCreditScore aggregates a customer's loan history into a score in
// [0,100], rounded to 2 decimals. loans must be the customer's FULL history,
// past and current; the engine does not detect a filtered or foreign subset,
// but the score is meaningless over one. now drives the recency component and
// is injected so results are reproducible under test.
//
// Starting from a base of 50:
//   - up to +30 for the on-time share of all EMIs ever due, where each loan
//     contributes max(repayments_done, tenure) due EMIs (repayment counts
//     past tenure win over tenure); a flat +5 when there is no EMI history
//   - +10 with no loans at all, otherwise −min(15, 2·loan count)
//   - −min(10, 2·count of loans started in now's calendar year)
//   - −20 when total borrowed principal exceeds 6× a positive monthly income
//
// After clamping to [0,100] one hard override applies last: if the principal
// of the currently outstanding loans exceeds the approved limit, the score is
// exactly 0.
func ComputeCreditScore(c *customer.Customer, loans []loan.Loan, now time.Time) float64 {
	score := 50.0

	totalEMIs := 0
	ontimeEMIs := 0
	for i := range loans {
		total := loans[i].RepaymentsDone
		if loans[i].Tenure > total {
			total = loans[i].Tenure
		}
		totalEMIs += total
		ontimeEMIs += loans[i].EMIsPaidOnTime
	}
	if totalEMIs > 0 {
		score += 30 * float64(ontimeEMIs) / float64(totalEMIs)
	} else {
		score += 5
	}

	if len(loans) == 0 {
		score += 10
	} else {
		score -= math.Min(15, float64(2*len(loans)))
	}

	recent := 0
	for i := range loans {
		if sd := loans[i].StartDate; sd != nil && sd.Year() == now.Year() {
			recent++
		}
	}
	if recent > 0 {
		score -= math.Min(10, float64(2*recent))
	}

	volume := decimal.Zero
	for i := range loans {
		volume = volume.Add(loans[i].LoanAmount)
	}
	if c.MonthlyIncome.IsPositive() && volume.GreaterThan(c.MonthlyIncome.Mul(six)) {
		score -= 20
	}

	score = math.Max(0, math.Min(100, score))

	outstanding := decimal.Zero
	for i := range loans {
		if loans[i].Active() {
			outstanding = outstanding.Add(loans[i].LoanAmount)
		}
	}
	if outstanding.GreaterThan(decimal.NewFromInt(c.ApprovedLimit)) {
		return 0.0
	}

	return math.Round(score*100) / 100
}
