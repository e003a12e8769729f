package customermock

import (
	"context"

	domain "github.com/SupriyoGhoshal/Credit-Approver-Backend-System/internal/domain/customer"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only the methods a test configures behave; the rest fall back to the
// domain not-found error.
type Repo struct {
	CreateFn          func(ctx context.Context, c *domain.Customer) error
	GetByCustomerIDFn func(ctx context.Context, customerID uint64) (*domain.Customer, error)
	UpsertFn          func(ctx context.Context, c *domain.Customer) error
}

func (m *Repo) Create(ctx context.Context, c *domain.Customer) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByCustomerID(ctx context.Context, customerID uint64) (*domain.Customer, error) {
	if m.GetByCustomerIDFn != nil {
		return m.GetByCustomerIDFn(ctx, customerID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Upsert(ctx context.Context, c *domain.Customer) error {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, c)
	}
	return nil
}
