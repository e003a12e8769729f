package loanapp

import (
	"context"
	"errors"
	"time"

	customerDomain "github.com/SupriyoGhoshal/Credit-Approver-Backend-System/internal/domain/customer"
	loanDomain "github.com/SupriyoGhoshal/Credit-Approver-Backend-System/internal/domain/loan"
	"github.com/SupriyoGhoshal/Credit-Approver-Backend-System/internal/domain/uow"
	"github.com/SupriyoGhoshal/Credit-Approver-Backend-System/internal/usecase/credit"
)

const MsgLoanCreated = "Loan approved and created"

// Usecase wires the pure credit engine to storage: it loads the customer
// snapshot plus the full loan history, evaluates, and (for CreateLoan)
// persists the approved loan. The wall clock is injected into every engine
// call so the recency component of the score stays deterministic under test.
type Usecase struct {
	customers customerDomain.Repository
	loans     loanDomain.Repository
	uow       uow.UnitOfWork
	now       func() time.Time
}

func NewUsecase(customers customerDomain.Repository, loans loanDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{customers: customers, loans: loans, uow: tx, now: time.Now}
}

func (u *Usecase) CheckEligibility(ctx context.Context, in EligibilityInput) (*EligibilityDTO, error) {
	c, err := u.customers.GetByCustomerID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	history, err := u.loans.ListByCustomerID(ctx, c.CustomerID)
	if err != nil {
		return nil, err
	}
	d := credit.EvaluateEligibility(c, history, in.LoanAmount, in.InterestRate, in.Tenure, u.now().UTC())
	return toEligibilityDTO(c.CustomerID, d), nil
}

// CreateLoan re-runs the eligibility evaluation inside a transaction with the
// customer row locked, so two concurrent applications for the same customer
// cannot both be granted against the same history snapshot. On approval the
// persisted loan carries the corrected rate and the engine-computed
// installment, with no repayments yet.
func (u *Usecase) CreateLoan(ctx context.Context, in CreateLoanInput) (*CreateLoanDTO, error) {
	if u.uow == nil {
		return nil, errors.New("loanapp: unit of work not configured")
	}
	var dto *CreateLoanDTO

	err := u.uow.WithinCustomerTx(ctx, in.CustomerID, func(r uow.Repos, c *customerDomain.Customer) error {
		history, err := r.Loans.ListByCustomerID(ctx, c.CustomerID)
		if err != nil {
			return err
		}
		d := credit.EvaluateEligibility(c, history, in.LoanAmount, in.InterestRate, in.Tenure, u.now().UTC())

		if !d.Approved {
			msg := d.Message
			if msg == "" {
				msg = "Not approved"
			}
			dto = &CreateLoanDTO{CustomerID: c.CustomerID, LoanApproved: false, Message: msg}
			return nil
		}

		start := u.now().UTC().Truncate(24 * time.Hour)
		l := &loanDomain.Loan{
			CustomerID:         c.CustomerID,
			LoanAmount:         in.LoanAmount,
			Tenure:             in.Tenure,
			InterestRate:       *d.CorrectedInterestRate,
			MonthlyInstallment: *d.MonthlyInstallment,
			Approved:           true,
			RepaymentsDone:     0,
			StartDate:          &start,
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}

		dto = &CreateLoanDTO{
			LoanID:             &l.LoanID,
			CustomerID:         c.CustomerID,
			LoanApproved:       true,
			Message:            MsgLoanCreated,
			MonthlyInstallment: d.MonthlyInstallment,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) ViewLoan(ctx context.Context, loanID uint64) (*LoanDetailDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	c, err := u.customers.GetByCustomerID(ctx, l.CustomerID)
	if err != nil {
		return nil, err
	}
	return &LoanDetailDTO{
		LoanID: l.LoanID,
		Customer: CustomerSummary{
			ID:          c.CustomerID,
			FirstName:   c.FirstName,
			LastName:    c.LastName,
			PhoneNumber: c.PhoneNumber,
			Age:         c.Age,
		},
		LoanAmount:         l.LoanAmount,
		InterestRate:       l.InterestRate,
		Approved:           l.Approved,
		MonthlyInstallment: l.MonthlyInstallment,
		Tenure:             l.Tenure,
	}, nil
}

func (u *Usecase) ViewLoansByCustomer(ctx context.Context, customerID uint64) ([]CustomerLoanDTO, error) {
	history, err := u.loans.ListByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	out := make([]CustomerLoanDTO, 0, len(history))
	for i := range history {
		l := &history[i]
		out = append(out, CustomerLoanDTO{
			LoanID:             l.LoanID,
			LoanAmount:         l.LoanAmount,
			Approved:           l.Approved,
			InterestRate:       l.InterestRate,
			MonthlyInstallment: l.MonthlyInstallment,
			RepaymentsLeft:     l.RemainingRepayments(),
		})
	}
	return out, nil
}

func toEligibilityDTO(customerID uint64, d credit.Decision) *EligibilityDTO {
	dto := &EligibilityDTO{
		CustomerID:            customerID,
		Approval:              d.Approved,
		InterestRate:          d.InterestRate,
		CorrectedInterestRate: d.CorrectedInterestRate,
		Tenure:                d.Tenure,
		MonthlyInstallment:    d.MonthlyInstallment,
		Message:               d.Message,
	}
	if d.Message == "" {
		score := d.CreditScore
		dto.CreditScore = &score
	}
	return dto
}
