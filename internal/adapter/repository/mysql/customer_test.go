package mysql

import (
	"context"
	"errors"
	"testing"

	customerDomain "github.com/SupriyoGhoshal/Credit-Approver-Backend-System/internal/domain/customer"
)

func makeCustomer(t *testing.T, phone string) *customerDomain.Customer {
	t.Helper()
	age := 30
	return &customerDomain.Customer{
		FirstName:     "Aarav",
		LastName:      "Sharma",
		Age:           &age,
		PhoneNumber:   phone,
		MonthlyIncome: mustDec(t, "50000.00"),
		ApprovedLimit: 1_800_000,
		CurrentDebt:   mustDec(t, "0"),
	}
}

func TestCustomerCreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	c := makeCustomer(t, "9876543210")
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.CustomerID == 0 {
		t.Fatalf("Create did not set auto-increment customer_id")
	}

	got, err := repo.GetByCustomerID(ctx, c.CustomerID)
	if err != nil {
		t.Fatalf("GetByCustomerID: %v", err)
	}
	if got.PhoneNumber != "9876543210" || got.ApprovedLimit != 1_800_000 {
		t.Errorf("unexpected customer: %+v", got)
	}
	if !got.MonthlyIncome.Equal(mustDec(t, "50000.00")) {
		t.Errorf("income round-trip mismatch: %s", got.MonthlyIncome)
	}
	if got.Age == nil || *got.Age != 30 {
		t.Errorf("age round-trip mismatch: %v", got.Age)
	}
}

func TestCustomerGet_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewCustomerRepository(db)

	_, err := repo.GetByCustomerID(context.Background(), 9999)
	if !errors.Is(err, customerDomain.ErrNotFound) {
		t.Fatalf("expected customerDomain.ErrNotFound, got %v", err)
	}
}

func TestCustomerGetForUpdate(t *testing.T) {
	db := openTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	c := makeCustomer(t, "9000000001")
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByCustomerIDForUpdate(ctx, c.CustomerID)
	if err != nil {
		t.Fatalf("GetByCustomerIDForUpdate: %v", err)
	}
	if got.CustomerID != c.CustomerID {
		t.Errorf("unexpected customer: %+v", got)
	}

	if _, err := repo.GetByCustomerIDForUpdate(ctx, 9999); !errors.Is(err, customerDomain.ErrNotFound) {
		t.Fatalf("expected customerDomain.ErrNotFound, got %v", err)
	}
}

func TestCustomerUpsert_UpdatesOnConflict(t *testing.T) {
	db := openTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	c := makeCustomer(t, "9111111111")
	c.CustomerID = 301 // explicit id, as bulk ingestion supplies them
	if err := repo.Upsert(ctx, c); err != nil {
		t.Fatalf("Upsert insert: %v", err)
	}

	c.MonthlyIncome = mustDec(t, "75000.00")
	c.ApprovedLimit = 2_700_000
	if err := repo.Upsert(ctx, c); err != nil {
		t.Fatalf("Upsert update: %v", err)
	}

	got, err := repo.GetByCustomerID(ctx, 301)
	if err != nil {
		t.Fatalf("GetByCustomerID: %v", err)
	}
	if got.ApprovedLimit != 2_700_000 || !got.MonthlyIncome.Equal(mustDec(t, "75000.00")) {
		t.Errorf("upsert did not update fields: %+v", got)
	}

	var n int64
	db.Model(&customerDomain.Customer{}).Count(&n)
	if n != 1 {
		t.Fatalf("expected a single row after upsert, got %d", n)
	}
}
