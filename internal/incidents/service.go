package incidents

import (
	"strings"
	"time"

	"daycare-api/internal/apperr"
	"daycare-api/internal/pagination"

	"gorm.io/gorm"
)

type IncidentService struct {
	DB *gorm.DB
}

func (s *IncidentService) Create(inc Incident) (*Incident, error) {
	if inc.ChildID == 0 {
		return nil, apperr.Validationf("child reference is required")
	}
	if strings.TrimSpace(inc.Description) == "" {
		return nil, apperr.Validationf("description is required")
	}
	if inc.Type == "" {
		inc.Type = TypeOther
	}
	if !ValidType(inc.Type) {
		return nil, apperr.Validationf("invalid incident type %q", inc.Type)
	}
	if inc.Severity == "" {
		inc.Severity = SeverityLow
	}
	if !ValidSeverity(inc.Severity) {
		return nil, apperr.Validationf("invalid severity %q", inc.Severity)
	}
	if inc.Status == "" {
		inc.Status = StatusOpen
	}
	if !ValidStatus(inc.Status) {
		return nil, apperr.Validationf("invalid incident status %q", inc.Status)
	}
	if inc.OccurredAt.IsZero() {
		inc.OccurredAt = time.Now()
	}

	inc.Child = nil
	inc.Reporter = nil
	if err := s.DB.Create(&inc).Error; err != nil {
		return nil, apperr.FromDB(err, "incident")
	}
	return &inc, nil
}

func (s *IncidentService) GetByID(id int) (*Incident, error) {
	var inc Incident
	if err := s.DB.First(&inc, id).Error; err != nil {
		return nil, apperr.FromDB(err, "incident")
	}
	return &inc, nil
}

func (s *IncidentService) List(filter ListFilter, p pagination.Params) ([]Incident, pagination.Result, error) {
	q := s.DB.Model(&Incident{})
	if filter.ChildID != 0 {
		q = q.Where("child_id = ?", filter.ChildID)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Severity != "" {
		q = q.Where("severity = ?", filter.Severity)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.OccurredFrom != nil {
		q = q.Where("occurred_at >= ?", *filter.OccurredFrom)
	}
	if filter.OccurredUntil != nil {
		q = q.Where("occurred_at < ?", *filter.OccurredUntil)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, pagination.Result{}, apperr.FromDB(err, "incident")
	}

	var items []Incident
	if err := q.Order("occurred_at DESC, id DESC").Offset(p.Offset()).Limit(p.Normalize().Limit).Find(&items).Error; err != nil {
		return nil, pagination.Result{}, apperr.FromDB(err, "incident")
	}

	return items, pagination.Paginate(total, p), nil
}

func (s *IncidentService) Update(id int, patch IncidentPatch) (*Incident, error) {
	inc, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Empty() {
		return inc, nil
	}

	updates := map[string]interface{}{}
	if patch.Type != nil {
		if !ValidType(*patch.Type) {
			return nil, apperr.Validationf("invalid incident type %q", *patch.Type)
		}
		updates["type"] = *patch.Type
	}
	if patch.Severity != nil {
		if !ValidSeverity(*patch.Severity) {
			return nil, apperr.Validationf("invalid severity %q", *patch.Severity)
		}
		updates["severity"] = *patch.Severity
	}
	if patch.Status != nil {
		if !ValidStatus(*patch.Status) {
			return nil, apperr.Validationf("invalid incident status %q", *patch.Status)
		}
		updates["status"] = *patch.Status
	}
	if patch.Description != nil {
		if strings.TrimSpace(*patch.Description) == "" {
			return nil, apperr.Validationf("description must not be empty")
		}
		updates["description"] = *patch.Description
	}
	if patch.ActionTaken != nil {
		updates["action_taken"] = *patch.ActionTaken
	}
	if patch.FollowUpRequired != nil {
		updates["follow_up_required"] = *patch.FollowUpRequired
	}
	if patch.FollowUpNotes != nil {
		updates["follow_up_notes"] = *patch.FollowUpNotes
	}

	if err := s.DB.Model(inc).Updates(updates).Error; err != nil {
		return nil, apperr.FromDB(err, "incident")
	}

	return s.GetByID(id)
}

func (s *IncidentService) Delete(id int) error {
	res := s.DB.Delete(&Incident{}, id)
	if res.Error != nil {
		return apperr.FromDB(res.Error, "incident")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("incident not found")
	}
	return nil
}

// MarkParentNotified stamps the notification time once; repeated calls keep
// the original timestamp.
func (s *IncidentService) MarkParentNotified(id int) (*Incident, error) {
	inc, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inc.ParentNotified {
		return inc, nil
	}

	now := time.Now()
	updates := map[string]interface{}{
		"parent_notified":    true,
		"parent_notified_at": now,
	}
	if err := s.DB.Model(inc).Updates(updates).Error; err != nil {
		return nil, apperr.FromDB(err, "incident")
	}

	return s.GetByID(id)
}
