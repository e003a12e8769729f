package customer

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	CustomerID    uint64          `gorm:"primaryKey;autoIncrement;column:customer_id" json:"customer_id"`
	FirstName     string          `gorm:"size:120" json:"first_name"`
	LastName      string          `gorm:"size:120" json:"last_name"`
	Age           *int            `json:"age"`
	PhoneNumber   string          `gorm:"size:20;uniqueIndex:ux_customers_phone" json:"phone_number"`
	MonthlyIncome decimal.Decimal `gorm:"type:decimal(12,2)" json:"monthly_income"`
	ApprovedLimit int64           `gorm:"default:0" json:"approved_limit"`
	CurrentDebt   decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"current_debt"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"-"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"-"`
}

func (Customer) TableName() string { return "customers" }
