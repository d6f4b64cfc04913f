package notifications

import (
	"time"

	"daycare-api/internal/auth"

	"gorm.io/datatypes"
)

const (
	TypeInfo    = "info"
	TypeWarning = "warning"
	TypeSuccess = "success"
	TypeError   = "error"
)

func ValidType(s string) bool {
	switch s {
	case TypeInfo, TypeWarning, TypeSuccess, TypeError:
		return true
	}
	return false
}

const (
	RecipientParent     = "parent"
	RecipientBabysitter = "babysitter"
	RecipientAdmin      = "admin"
	RecipientAll        = "all"
)

func ValidRecipientType(s string) bool {
	switch s {
	case RecipientParent, RecipientBabysitter, RecipientAdmin, RecipientAll:
		return true
	}
	return false
}

// Notification targets either one user (recipient_id set) or a whole audience
// (recipient_id nil). Metadata is a free-form JSON payload for the client.
type Notification struct {
	ID            int            `gorm:"primaryKey;autoIncrement" json:"id"`
	Type          string         `gorm:"size:20;not null" json:"type"`
	Title         string         `gorm:"size:200;not null" json:"title"`
	Body          string         `gorm:"type:text" json:"body"`
	RecipientType string         `gorm:"size:20;not null;index" json:"recipient_type"`
	RecipientID   *int           `gorm:"index" json:"recipient_id,omitempty"`
	Recipient     *auth.User     `gorm:"foreignKey:RecipientID;constraint:OnDelete:CASCADE" json:"-"`
	Read          bool           `gorm:"not null;default:false" json:"read"`
	Metadata      datatypes.JSON `json:"metadata,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
