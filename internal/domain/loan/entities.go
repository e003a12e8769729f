package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

type Loan struct {
	LoanID             uint64          `gorm:"primaryKey;autoIncrement;column:loan_id" json:"loan_id"`
	CustomerID         uint64          `gorm:"index:idx_loans_customer" json:"customer_id"`
	LoanAmount         decimal.Decimal `gorm:"type:decimal(14,2)" json:"loan_amount"`
	Tenure             int             `json:"tenure"` // months
	InterestRate       decimal.Decimal `gorm:"type:decimal(5,2)" json:"interest_rate"` // annual %
	MonthlyInstallment decimal.Decimal `gorm:"type:decimal(12,2)" json:"monthly_installment"`
	EMIsPaidOnTime     int             `gorm:"column:emis_paid_on_time;default:0" json:"emis_paid_on_time"`
	RepaymentsDone     int             `gorm:"default:0" json:"repayments_done"`
	Approved           bool            `gorm:"default:false" json:"approved"`
	StartDate          *time.Time      `gorm:"type:date" json:"start_date"`
	EndDate            *time.Time      `gorm:"type:date" json:"end_date"`
	CreatedAt          time.Time       `gorm:"autoCreateTime" json:"-"`
	UpdatedAt          time.Time       `gorm:"autoUpdateTime" json:"-"`
}

func (Loan) TableName() string { return "loans" }

// Active reports whether the loan is currently outstanding: either still
// pending approval, or approved but not yet fully repaid.
func (l *Loan) Active() bool {
	return !l.Approved || l.RepaymentsDone < l.Tenure
}

func (l *Loan) RemainingRepayments() int {
	if left := l.Tenure - l.RepaymentsDone; left > 0 {
		return left
	}
	return 0
}
