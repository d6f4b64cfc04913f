package attendance

import (
	"fmt"

	"daycare-api/internal/apperr"
	"daycare-api/internal/pagination"

	"gorm.io/gorm"
)

type AttendanceService struct {
	DB *gorm.DB
}

func (s *AttendanceService) Create(rec Record) (*Record, error) {
	if !ValidDate(rec.Date) {
		return nil, apperr.Validationf("invalid date %q, expected YYYY-MM-DD", rec.Date)
	}
	if rec.PersonID == 0 {
		return nil, apperr.Validationf("person reference is required")
	}
	if !ValidPersonType(rec.PersonType) {
		return nil, apperr.Validationf("invalid person type %q", rec.PersonType)
	}
	if rec.Status == "" {
		rec.Status = StatusPresent
	}
	if !ValidStatus(rec.Status) {
		return nil, apperr.Validationf("invalid attendance status %q", rec.Status)
	}
	if rec.CheckIn != nil && rec.CheckOut != nil && rec.CheckOut.Before(*rec.CheckIn) {
		return nil, apperr.Validationf("check-out must not precede check-in")
	}

	rec.Recorder = nil
	if err := s.DB.Create(&rec).Error; err != nil {
		if apperr.IsDuplicate(err) {
			return nil, apperr.Validationf("attendance already recorded for this person on %s", rec.Date)
		}
		return nil, apperr.FromDB(err, "attendance record")
	}
	return &rec, nil
}

func (s *AttendanceService) GetByID(id int) (*Record, error) {
	var rec Record
	if err := s.DB.First(&rec, id).Error; err != nil {
		return nil, apperr.FromDB(err, "attendance record")
	}
	return &rec, nil
}

func (s *AttendanceService) List(filter ListFilter, p pagination.Params) ([]Record, pagination.Result, error) {
	q := s.DB.Model(&Record{})
	if filter.Date != "" {
		q = q.Where("date = ?", filter.Date)
	}
	if filter.From != "" {
		q = q.Where("date >= ?", filter.From)
	}
	if filter.To != "" {
		q = q.Where("date <= ?", filter.To)
	}
	if filter.PersonType != "" {
		q = q.Where("person_type = ?", filter.PersonType)
	}
	if filter.PersonID != 0 {
		q = q.Where("person_id = ?", filter.PersonID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, pagination.Result{}, apperr.FromDB(err, "attendance record")
	}

	var items []Record
	if err := q.Order("date, person_type, person_id").Offset(p.Offset()).Limit(p.Normalize().Limit).Find(&items).Error; err != nil {
		return nil, pagination.Result{}, apperr.FromDB(err, "attendance record")
	}

	return items, pagination.Paginate(total, p), nil
}

func (s *AttendanceService) Update(id int, patch RecordPatch) (*Record, error) {
	rec, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Empty() {
		return rec, nil
	}

	updates := map[string]interface{}{}
	if patch.Status != nil {
		if !ValidStatus(*patch.Status) {
			return nil, apperr.Validationf("invalid attendance status %q", *patch.Status)
		}
		updates["status"] = *patch.Status
	}
	if patch.CheckIn != nil {
		updates["check_in"] = *patch.CheckIn
	}
	if patch.CheckOut != nil {
		updates["check_out"] = *patch.CheckOut
	}
	if patch.Notes != nil {
		updates["notes"] = *patch.Notes
	}

	if err := s.DB.Model(rec).Updates(updates).Error; err != nil {
		return nil, apperr.FromDB(err, "attendance record")
	}

	return s.GetByID(id)
}

func (s *AttendanceService) Delete(id int) error {
	res := s.DB.Delete(&Record{}, id)
	if res.Error != nil {
		return apperr.FromDB(res.Error, "attendance record")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("attendance record not found")
	}
	return nil
}

// attendedStatuses are the statuses that count as having shown up.
var attendedStatuses = []string{StatusPresent, StatusLate}

// DailyStats aggregates one day of attendance. Child rows are joined against
// the children table so the totals can be split by session type.
func (s *AttendanceService) DailyStats(date string) (*DailyStats, error) {
	if !ValidDate(date) {
		return nil, apperr.Validationf("invalid date %q, expected YYYY-MM-DD", date)
	}

	stats := DailyStats{Date: date}

	var rows []struct {
		SessionType string
		N           int64
	}
	err := s.DB.Table("attendance_records").
		Select("children.session_type AS session_type, COUNT(*) AS n").
		Joins("JOIN children ON children.id = attendance_records.person_id").
		Where("attendance_records.date = ? AND attendance_records.person_type = ? AND attendance_records.status IN ?",
			date, PersonChild, attendedStatuses).
		Group("children.session_type").
		Scan(&rows).Error
	if err != nil {
		return nil, apperr.FromDB(err, "attendance record")
	}

	for _, r := range rows {
		stats.TotalChildren += r.N
		switch r.SessionType {
		case "full_day":
			stats.FullDayChildren = r.N
		case "half_day":
			stats.HalfDayChildren = r.N
		case "after_school":
			stats.AfterSchoolChildren = r.N
		}
	}

	err = s.DB.Model(&Record{}).
		Where("date = ? AND person_type = ? AND status IN ?", date, PersonBabysitter, attendedStatuses).
		Count(&stats.TotalBabysitters).Error
	if err != nil {
		return nil, apperr.FromDB(err, "attendance record")
	}

	return &stats, nil
}

// MonthlyStats aggregates attendance over a calendar month. Date strings are
// zero padded ISO dates so lexical range comparisons are correct.
func (s *AttendanceService) MonthlyStats(year, month int) (*MonthlyStats, error) {
	if month < 1 || month > 12 {
		return nil, apperr.Validationf("invalid month %d", month)
	}
	if year < 1 {
		return nil, apperr.Validationf("invalid year %d", year)
	}

	from := fmt.Sprintf("%04d-%02d-01", year, month)
	toYear, toMonth := year, month+1
	if toMonth > 12 {
		toYear, toMonth = year+1, 1
	}
	to := fmt.Sprintf("%04d-%02d-01", toYear, toMonth)

	stats := MonthlyStats{Year: year, Month: month}

	var rows []struct {
		Status string
		N      int64
	}
	err := s.DB.Model(&Record{}).
		Select("status, COUNT(*) AS n").
		Where("date >= ? AND date < ?", from, to).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, apperr.FromDB(err, "attendance record")
	}

	for _, r := range rows {
		switch r.Status {
		case StatusPresent:
			stats.Present = r.N
		case StatusAbsent:
			stats.Absent = r.N
		case StatusLate:
			stats.Late = r.N
		case StatusExcused:
			stats.Excused = r.N
		}
	}

	err = s.DB.Model(&Record{}).
		Where("date >= ? AND date < ?", from, to).
		Distinct("date").
		Count(&stats.DaysRecorded).Error
	if err != nil {
		return nil, apperr.FromDB(err, "attendance record")
	}

	var children []struct {
		SessionType string
		N           int64
	}
	err = s.DB.Table("attendance_records").
		Select("children.session_type AS session_type, COUNT(DISTINCT attendance_records.person_id) AS n").
		Joins("JOIN children ON children.id = attendance_records.person_id").
		Where("attendance_records.date >= ? AND attendance_records.date < ? AND attendance_records.person_type = ? AND attendance_records.status IN ?",
			from, to, PersonChild, attendedStatuses).
		Group("children.session_type").
		Scan(&children).Error
	if err != nil {
		return nil, apperr.FromDB(err, "attendance record")
	}
	for _, r := range children {
		stats.TotalChildren += r.N
		switch r.SessionType {
		case "full_day":
			stats.FullDayChildren = r.N
		case "half_day":
			stats.HalfDayChildren = r.N
		case "after_school":
			stats.AfterSchoolChildren = r.N
		}
	}

	err = s.DB.Model(&Record{}).
		Where("date >= ? AND date < ? AND person_type = ? AND status IN ?", from, to, PersonBabysitter, attendedStatuses).
		Distinct("person_id").
		Count(&stats.TotalBabysitters).Error
	if err != nil {
		return nil, apperr.FromDB(err, "attendance record")
	}

	if stats.DaysRecorded > 0 {
		stats.AverageDailyPresent = float64(stats.Present+stats.Late) / float64(stats.DaysRecorded)
	}

	return &stats, nil
}
