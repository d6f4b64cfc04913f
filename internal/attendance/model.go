package attendance

import (
	"time"

	"daycare-api/internal/auth"
)

const (
	PersonChild      = "child"
	PersonBabysitter = "babysitter"
)

func ValidPersonType(s string) bool {
	return s == PersonChild || s == PersonBabysitter
}

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
	StatusExcused = "excused"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate, StatusExcused:
		return true
	}
	return false
}

// ValidDate accepts calendar dates in YYYY-MM-DD form. Dates are stored as
// text so that equality and range filters behave the same on sqlite and
// postgres.
func ValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// Record is one person-day attendance entry. A person can have at most one
// record per date, enforced by the composite unique index.
type Record struct {
	ID         int        `gorm:"primaryKey;autoIncrement" json:"id"`
	Date       string     `gorm:"size:10;not null;uniqueIndex:idx_attendance_person_day" json:"date"`
	PersonID   int        `gorm:"not null;uniqueIndex:idx_attendance_person_day" json:"person_id"`
	PersonType string     `gorm:"size:20;not null;uniqueIndex:idx_attendance_person_day" json:"person_type"`
	Status     string     `gorm:"size:20;not null" json:"status"`
	CheckIn    *time.Time `json:"check_in,omitempty"`
	CheckOut   *time.Time `json:"check_out,omitempty"`
	RecordedBy *int       `json:"recorded_by,omitempty"`
	Recorder   *auth.User `gorm:"foreignKey:RecordedBy;constraint:OnDelete:SET NULL" json:"-"`
	Notes      string     `gorm:"size:500" json:"notes"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (Record) TableName() string {
	return "attendance_records"
}

type RecordPatch struct {
	Status   *string    `json:"status"`
	CheckIn  *time.Time `json:"check_in"`
	CheckOut *time.Time `json:"check_out"`
	Notes    *string    `json:"notes"`
}

func (p RecordPatch) Empty() bool {
	return p.Status == nil && p.CheckIn == nil && p.CheckOut == nil && p.Notes == nil
}

type ListFilter struct {
	Date       string
	From       string
	To         string
	PersonType string
	PersonID   int
	Status     string
}

// DailyStats summarizes who attended on a single date. Children are broken
// down by the session type on their enrollment record. Only present and late
// rows count as attended; absent and excused records are on file for the date
// but stay out of these totals.
type DailyStats struct {
	Date                string `json:"date"`
	TotalChildren       int64  `json:"total_children"`
	FullDayChildren     int64  `json:"full_day_children"`
	HalfDayChildren     int64  `json:"half_day_children"`
	AfterSchoolChildren int64  `json:"after_school_children"`
	TotalBabysitters    int64  `json:"total_babysitters"`
}

// MonthlyStats carries the month's status counts plus the distinct-person
// breakdown: a child attending twenty times in the month still counts once.
type MonthlyStats struct {
	Year                int     `json:"year"`
	Month               int     `json:"month"`
	DaysRecorded        int64   `json:"days_recorded"`
	Present             int64   `json:"present"`
	Absent              int64   `json:"absent"`
	Late                int64   `json:"late"`
	Excused             int64   `json:"excused"`
	TotalChildren       int64   `json:"total_children"`
	FullDayChildren     int64   `json:"full_day_children"`
	HalfDayChildren     int64   `json:"half_day_children"`
	AfterSchoolChildren int64   `json:"after_school_children"`
	TotalBabysitters    int64   `json:"total_babysitters"`
	AverageDailyPresent float64 `json:"average_daily_present"`
}
