package loan

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("loan not found")

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID uint64) (*Loan, error)
	// ListByCustomerID returns the customer's FULL loan history, past and
	// current. The credit score is meaningless over a filtered subset.
	ListByCustomerID(ctx context.Context, customerID uint64) ([]Loan, error)
	// Upsert writes a loan record keyed by LoanID. Used by bulk ingestion only.
	Upsert(ctx context.Context, l *Loan) error
}
