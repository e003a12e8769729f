package customer

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("customer not found")

type Repository interface {
	Create(ctx context.Context, c *Customer) error
	GetByCustomerID(ctx context.Context, customerID uint64) (*Customer, error)
	// Upsert writes a customer record keyed by CustomerID, inserting or
	// replacing fields. Used by bulk ingestion only.
	Upsert(ctx context.Context, c *Customer) error
}
