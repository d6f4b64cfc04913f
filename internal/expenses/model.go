package expenses

import (
	"time"

	"daycare-api/internal/auth"
)

const (
	CategorySalaries    = "salaries"
	CategorySupplies    = "supplies"
	CategoryMaintenance = "maintenance"
	CategoryUtilities   = "utilities"
	CategoryOther       = "other"
)

func ValidCategory(s string) bool {
	switch s {
	case CategorySalaries, CategorySupplies, CategoryMaintenance, CategoryUtilities, CategoryOther:
		return true
	}
	return false
}

const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusOverdue   = "overdue"
	StatusCancelled = "cancelled"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusPaid, StatusOverdue, StatusCancelled:
		return true
	}
	return false
}

const (
	MethodCash         = "cash"
	MethodMobileMoney  = "mobile_money"
	MethodBankTransfer = "bank_transfer"
	MethodCreditCard   = "credit_card"
	MethodCheck        = "check"
	MethodOther        = "other"
)

func ValidMethod(s string) bool {
	switch s {
	case MethodCash, MethodMobileMoney, MethodBankTransfer, MethodCreditCard, MethodCheck, MethodOther:
		return true
	}
	return false
}

type Expense struct {
	ID          int        `gorm:"primaryKey;autoIncrement" json:"id"`
	Category    string     `gorm:"size:20;not null" json:"category"`
	Status      string     `gorm:"size:20;not null" json:"status"`
	Method      string     `gorm:"size:20;not null" json:"method"`
	Amount      float64    `gorm:"not null" json:"amount"`
	Date        string     `gorm:"size:10;not null;index" json:"date"`
	Vendor      string     `gorm:"size:200" json:"vendor"`
	Description string     `gorm:"size:500" json:"description"`
	RecordedBy  *int       `json:"recorded_by,omitempty"`
	Recorder    *auth.User `gorm:"foreignKey:RecordedBy;constraint:OnDelete:SET NULL" json:"-"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Expense) TableName() string {
	return "expenses"
}

type ExpensePatch struct {
	Category    *string  `json:"category"`
	Status      *string  `json:"status"`
	Method      *string  `json:"method"`
	Amount      *float64 `json:"amount"`
	Vendor      *string  `json:"vendor"`
	Description *string  `json:"description"`
}

func (p ExpensePatch) Empty() bool {
	return p.Category == nil && p.Status == nil && p.Method == nil &&
		p.Amount == nil && p.Vendor == nil && p.Description == nil
}

type ListFilter struct {
	Category string
	Status   string
	From     string
	To       string
}

// CategoryTotal is one row of the per-category spend breakdown.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int64   `json:"count"`
}
