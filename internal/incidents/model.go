package incidents

import (
	"time"

	"daycare-api/internal/auth"
	"daycare-api/internal/children"
)

const (
	TypeInjury   = "injury"
	TypeIllness  = "illness"
	TypeBehavior = "behavior"
	TypeAccident = "accident"
	TypeOther    = "other"
)

func ValidType(s string) bool {
	switch s {
	case TypeInjury, TypeIllness, TypeBehavior, TypeAccident, TypeOther:
		return true
	}
	return false
}

const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

func ValidSeverity(s string) bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

const (
	StatusOpen     = "open"
	StatusClosed   = "closed"
	StatusFollowUp = "follow_up"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusOpen, StatusClosed, StatusFollowUp:
		return true
	}
	return false
}

// Incident is removed together with its child; the reporter reference is
// cleared if that user account goes away.
type Incident struct {
	ID               int             `gorm:"primaryKey;autoIncrement" json:"id"`
	ChildID          int             `gorm:"not null;index" json:"child_id"`
	Child            *children.Child `gorm:"foreignKey:ChildID;constraint:OnDelete:CASCADE" json:"child,omitempty"`
	ReportedBy       *int            `json:"reported_by,omitempty"`
	Reporter         *auth.User      `gorm:"foreignKey:ReportedBy;constraint:OnDelete:SET NULL" json:"-"`
	Type             string          `gorm:"size:20;not null" json:"type"`
	Severity         string          `gorm:"size:20;not null" json:"severity"`
	Status           string          `gorm:"size:20;not null" json:"status"`
	Description      string          `gorm:"type:text;not null" json:"description"`
	ActionTaken      string          `gorm:"type:text" json:"action_taken"`
	FollowUpRequired bool            `gorm:"not null;default:false" json:"follow_up_required"`
	FollowUpNotes    string          `gorm:"type:text" json:"follow_up_notes"`
	ParentNotified   bool            `gorm:"not null;default:false" json:"parent_notified"`
	ParentNotifiedAt *time.Time      `json:"parent_notified_at,omitempty"`
	OccurredAt       time.Time       `gorm:"not null" json:"occurred_at"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func (Incident) TableName() string {
	return "incidents"
}

type IncidentPatch struct {
	Type             *string `json:"type"`
	Severity         *string `json:"severity"`
	Status           *string `json:"status"`
	Description      *string `json:"description"`
	ActionTaken      *string `json:"action_taken"`
	FollowUpRequired *bool   `json:"follow_up_required"`
	FollowUpNotes    *string `json:"follow_up_notes"`
}

func (p IncidentPatch) Empty() bool {
	return p.Type == nil && p.Severity == nil && p.Status == nil && p.Description == nil &&
		p.ActionTaken == nil && p.FollowUpRequired == nil && p.FollowUpNotes == nil
}

// ListFilter narrows List. OccurredUntil is an exclusive boundary.
type ListFilter struct {
	ChildID       int
	Type          string
	Severity      string
	Status        string
	OccurredFrom  *time.Time
	OccurredUntil *time.Time
}
