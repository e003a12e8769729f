package customer

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	customerDomain "github.com/SupriyoGhoshal/Credit-Approver-Backend-System/internal/domain/customer"
	"github.com/SupriyoGhoshal/Credit-Approver-Backend-System/internal/usecase/credit"
)

var thirtySix = decimal.NewFromInt(36)

type Usecase struct{ repo customerDomain.Repository }

func NewUsecase(r customerDomain.Repository) *Usecase { return &Usecase{repo: r} }

type RegisterInput struct {
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	Age           *int            `json:"age"`
	MonthlyIncome decimal.Decimal `json:"monthly_income"`
	PhoneNumber   string          `json:"phone_number"`
}

type CustomerDTO struct {
	CustomerID    uint64          `json:"customer_id"`
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	Age           *int            `json:"age"`
	MonthlyIncome decimal.Decimal `json:"monthly_income"`
	ApprovedLimit int64           `json:"approved_limit"`
	PhoneNumber   string          `json:"phone_number"`
	CurrentDebt   decimal.Decimal `json:"current_debt"`
}

// Register creates a customer with an initial approved credit limit of
// 36x monthly income, rounded to the nearest lakh. The limit is set once
// here and never recomputed by the decision engine.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*CustomerDTO, error) {
	if in.FirstName == "" || in.LastName == "" || in.PhoneNumber == "" || !in.MonthlyIncome.IsPositive() {
		return nil, errors.New("invalid input")
	}

	c := &customerDomain.Customer{
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Age:           in.Age,
		PhoneNumber:   in.PhoneNumber,
		MonthlyIncome: in.MonthlyIncome,
		ApprovedLimit: credit.RoundToNearestLakh(in.MonthlyIncome.Mul(thirtySix)),
	}
	if err := u.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toDTO(c), nil
}

func (u *Usecase) Get(ctx context.Context, customerID uint64) (*CustomerDTO, error) {
	c, err := u.repo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return toDTO(c), nil
}

func toDTO(c *customerDomain.Customer) *CustomerDTO {
	return &CustomerDTO{
		CustomerID:    c.CustomerID,
		FirstName:     c.FirstName,
		LastName:      c.LastName,
		Age:           c.Age,
		MonthlyIncome: c.MonthlyIncome,
		ApprovedLimit: c.ApprovedLimit,
		PhoneNumber:   c.PhoneNumber,
		CurrentDebt:   c.CurrentDebt,
	}
}
