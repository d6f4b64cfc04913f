package babysitters

import (
	"time"

	"daycare-api/internal/auth"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusOnLeave  = "on_leave"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusActive, StatusInactive, StatusOnLeave:
		return true
	}
	return false
}

type Babysitter struct {
	ID             int        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         int        `gorm:"uniqueIndex;not null" json:"user_id"`
	User           *auth.User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	NationalID     string     `gorm:"size:50;uniqueIndex;not null" json:"national_id"`
	DateOfBirth    *time.Time `json:"date_of_birth,omitempty"`
	NextOfKinName  string     `gorm:"size:100" json:"next_of_kin_name"`
	NextOfKinPhone string     `gorm:"size:30" json:"next_of_kin_phone"`
	Status         string     `gorm:"size:20;not null" json:"status"`
	PaymentRate    float64    `gorm:"not null;default:0" json:"payment_rate"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (Babysitter) TableName() string {
	return "babysitters"
}

type BabysitterPatch struct {
	NextOfKinName  *string    `json:"next_of_kin_name"`
	NextOfKinPhone *string    `json:"next_of_kin_phone"`
	Status         *string    `json:"status"`
	PaymentRate    *float64   `json:"payment_rate"`
	DateOfBirth    *time.Time `json:"date_of_birth"`
}

func (p BabysitterPatch) Empty() bool {
	return p.NextOfKinName == nil && p.NextOfKinPhone == nil && p.Status == nil &&
		p.PaymentRate == nil && p.DateOfBirth == nil
}
