package uow

import (
	"context"

	"github.com/SupriyoGhoshal/Credit-Approver-Backend-System/internal/domain/customer"
	"github.com/SupriyoGhoshal/Credit-Approver-Backend-System/internal/domain/loan"
)

type Repos struct {
	Customers customer.Repository
	Loans     loan.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the customer row first, then pass it in
	WithinCustomerTx(ctx context.Context, customerID uint64, fn func(r Repos, c *customer.Customer) error) error
}
