package budgets

import (
	"time"

	"daycare-api/internal/auth"

	"gorm.io/datatypes"
)

const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
	PeriodYearly  = "yearly"
)

func ValidPeriod(s string) bool {
	switch s {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly:
		return true
	}
	return false
}

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

// Budget is a planned spending envelope for a period. Month is required for
// monthly budgets, week for weekly ones, day for daily ones; the designators
// are meaningless for the other periods.
type Budget struct {
	ID        int            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string         `gorm:"size:200;not null" json:"name"`
	Period    string         `gorm:"size:10;not null" json:"period"`
	Category  string         `gorm:"size:20;not null" json:"category"`
	Year      int            `gorm:"not null;index" json:"year"`
	Month     *int           `json:"month,omitempty"`
	Week      *int           `json:"week,omitempty"`
	Day       *int           `json:"day,omitempty"`
	Amount    float64        `gorm:"not null" json:"amount"`
	StartDate datatypes.Date `json:"start_date"`
	EndDate   datatypes.Date `json:"end_date"`
	Notes     string         `gorm:"size:500" json:"notes"`
	CreatedBy *int           `json:"created_by,omitempty"`
	Creator   *auth.User     `gorm:"foreignKey:CreatedBy;constraint:OnDelete:SET NULL" json:"-"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (Budget) TableName() string {
	return "budgets"
}

type BudgetPatch struct {
	Name   *string  `json:"name"`
	Amount *float64 `json:"amount"`
	Notes  *string  `json:"notes"`
}

func (p BudgetPatch) Empty() bool {
	return p.Name == nil && p.Amount == nil && p.Notes == nil
}

type ListFilter struct {
	Period   string
	Category string
	Year     int
}
