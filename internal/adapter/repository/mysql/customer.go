package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	customerDomain "github.com/SupriyoGhoshal/Credit-Approver-Backend-System/internal/domain/customer"
)

type CustomerRepository struct{ db *gorm.DB }

func NewCustomerRepository(db *gorm.DB) *CustomerRepository { return &CustomerRepository{db: db} }

func (r *CustomerRepository) Create(ctx context.Context, c *customerDomain.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CustomerRepository) GetByCustomerID(ctx context.Context, customerID uint64) (*customerDomain.Customer, error) {
	var out customerDomain.Customer
	res := r.db.WithContext(ctx).Where("customer_id = ?", customerID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, customerDomain.ErrNotFound
	}
	return &out, res.Error
}

// GetByCustomerIDForUpdate locks the customer row for the life of the
// enclosing transaction. No-op locking outside one.
func (r *CustomerRepository) GetByCustomerIDForUpdate(ctx context.Context, customerID uint64) (*customerDomain.Customer, error) {
	var out customerDomain.Customer
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("customer_id = ?", customerID).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, customerDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *CustomerRepository) Upsert(ctx context.Context, c *customerDomain.Customer) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "customer_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"first_name", "last_name", "age", "phone_number",
				"monthly_income", "approved_limit", "current_debt",
			}),
		}).
		Create(c).Error
}
