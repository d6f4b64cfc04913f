package children

import (
	"time"

	"daycare-api/internal/auth"
	"daycare-api/internal/babysitters"

	"github.com/lib/pq"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

const (
	SessionFullDay     = "full_day"
	SessionHalfDay     = "half_day"
	SessionAfterSchool = "after_school"
)

const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusGraduated = "graduated"
)

func ValidGender(g string) bool {
	return g == GenderMale || g == GenderFemale
}

func ValidSessionType(s string) bool {
	switch s {
	case SessionFullDay, SessionHalfDay, SessionAfterSchool:
		return true
	}
	return false
}

func ValidStatus(s string) bool {
	switch s {
	case StatusActive, StatusInactive, StatusGraduated:
		return true
	}
	return false
}

type Child struct {
	ID           int                     `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName    string                  `gorm:"size:100;not null;column:firstname" json:"firstname"`
	LastName     string                  `gorm:"size:100;not null;column:lastname" json:"lastname"`
	DateOfBirth  time.Time               `gorm:"not null" json:"date_of_birth"`
	Gender       string                  `gorm:"size:10;not null" json:"gender"`
	ParentID     int                     `gorm:"not null;index" json:"parent_id"`
	Parent       *auth.User              `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE" json:"parent,omitempty"`
	BabysitterID *int                    `gorm:"index" json:"babysitter_id,omitempty"`
	Babysitter   *babysitters.Babysitter `gorm:"foreignKey:BabysitterID;constraint:OnDelete:SET NULL" json:"babysitter,omitempty"`
	SessionType  string                  `gorm:"size:20;not null" json:"session_type"`
	Status       string                  `gorm:"size:20;not null" json:"status"`
	Allergies    pq.StringArray          `gorm:"type:text[]" json:"allergies"`
	MedicalInfo  string                  `gorm:"type:text" json:"medical_info"`
	SpecialNeeds string                  `gorm:"type:text" json:"special_needs"`
	EnrolledAt   time.Time               `gorm:"not null" json:"enrolled_at"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}

func (Child) TableName() string {
	return "children"
}

type ChildPatch struct {
	FirstName    *string         `json:"firstname"`
	LastName     *string         `json:"lastname"`
	Gender       *string         `json:"gender"`
	BabysitterID *int            `json:"babysitter_id"`
	SessionType  *string         `json:"session_type"`
	Status       *string         `json:"status"`
	Allergies    *pq.StringArray `json:"allergies"`
	MedicalInfo  *string         `json:"medical_info"`
	SpecialNeeds *string         `json:"special_needs"`
}

func (p ChildPatch) Empty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Gender == nil && p.BabysitterID == nil &&
		p.SessionType == nil && p.Status == nil && p.Allergies == nil &&
		p.MedicalInfo == nil && p.SpecialNeeds == nil
}

// ListFilter narrows List; zero values mean "no filter".
type ListFilter struct {
	Status       string
	ParentID     int
	BabysitterID int
	SessionType  string
}
