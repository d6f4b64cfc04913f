package payments

import (
	"time"

	"daycare-api/internal/auth"
)

const (
	DirectionIncome  = "income"
	DirectionExpense = "expense"
)

func ValidDirection(s string) bool {
	return s == DirectionIncome || s == DirectionExpense
}

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusCancelled = "cancelled"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed, StatusCancelled:
		return true
	}
	return false
}

const (
	CategoryTuition     = "tuition"
	CategorySalary      = "salary"
	CategorySupplies    = "supplies"
	CategoryMaintenance = "maintenance"
	CategoryOther       = "other"
)

func ValidCategory(s string) bool {
	switch s {
	case CategoryTuition, CategorySalary, CategorySupplies, CategoryMaintenance, CategoryOther:
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

// Payment is a single money movement. Payer and payee are optional user
// references that are cleared when the account is removed, so the financial
// history survives account deletion.
type Payment struct {
	ID          int        `gorm:"primaryKey;autoIncrement" json:"id"`
	Direction   string     `gorm:"size:10;not null" json:"direction"`
	Category    string     `gorm:"size:20;not null" json:"category"`
	Status      string     `gorm:"size:20;not null" json:"status"`
	Method      string     `gorm:"size:20;not null" json:"method"`
	Amount      float64    `gorm:"not null" json:"amount"`
	Date        string     `gorm:"size:10;not null;index" json:"date"`
	Description string     `gorm:"size:500" json:"description"`
	PayerID     *int       `json:"payer_id,omitempty"`
	Payer       *auth.User `gorm:"foreignKey:PayerID;constraint:OnDelete:SET NULL" json:"-"`
	PayeeID     *int       `json:"payee_id,omitempty"`
	Payee       *auth.User `gorm:"foreignKey:PayeeID;constraint:OnDelete:SET NULL" json:"-"`
	DueDate     string     `gorm:"size:10" json:"due_date,omitempty"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Payment) TableName() string {
	return "payments"
}

type PaymentPatch struct {
	Status      *string    `json:"status"`
	Method      *string    `json:"method"`
	Amount      *float64   `json:"amount"`
	Description *string    `json:"description"`
	DueDate     *string    `json:"due_date"`
	PaidAt      *time.Time `json:"paid_at"`
}

func (p PaymentPatch) Empty() bool {
	return p.Status == nil && p.Method == nil && p.Amount == nil &&
		p.Description == nil && p.DueDate == nil && p.PaidAt == nil
}

type ListFilter struct {
	Direction string
	Category  string
	Status    string
	PayerID   int
	PayeeID   int
	From      string
	To        string
}

// CategoryTotal is one row of the completed-payment breakdown by category.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int64   `json:"count"`
}

// StatusTotal is one row of the all-payment breakdown by status.
type StatusTotal struct {
	Status string  `json:"status"`
	Total  float64 `json:"total"`
	Count  int64   `json:"count"`
}

// Summary nets completed income against completed expense over a period.
// ByCategory covers completed payments only; ByStatus covers every payment
// in the period.
type Summary struct {
	From         string          `json:"from,omitempty"`
	To           string          `json:"to,omitempty"`
	TotalIncome  float64         `json:"total_income"`
	TotalExpense float64         `json:"total_expense"`
	Net          float64         `json:"net"`
	Count        int64           `json:"count"`
	ByCategory   []CategoryTotal `json:"by_category"`
	ByStatus     []StatusTotal   `json:"by_status"`
}
