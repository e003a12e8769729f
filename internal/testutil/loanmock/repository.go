package loanmock

import (
	"context"

	domain "github.com/SupriyoGhoshal/Credit-Approver-Backend-System/internal/domain/loan"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only methods you need are included; add more as tests require.
type Repo struct {
	CreateFn           func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn      func(ctx context.Context, loanID uint64) (*domain.Loan, error)
	ListByCustomerIDFn func(ctx context.Context, customerID uint64) ([]domain.Loan, error)
	UpsertFn           func(ctx context.Context, l *domain.Loan) error
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID uint64) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListByCustomerID(ctx context.Context, customerID uint64) ([]domain.Loan, error) {
	if m.ListByCustomerIDFn != nil {
		return m.ListByCustomerIDFn(ctx, customerID)
	}
	return nil, nil
}

func (m *Repo) Upsert(ctx context.Context, l *domain.Loan) error {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, l)
	}
	return nil
}
