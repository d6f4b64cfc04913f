package children

import (
	"time"

	"daycare-api/internal/apperr"
	"daycare-api/internal/pagination"

	"gorm.io/gorm"
)

type ChildService struct {
	DB *gorm.DB
}

func (s *ChildService) Create(child Child) (*Child, error) {
	if child.ParentID == 0 {
		return nil, apperr.Validationf("parent reference is required")
	}
	if child.DateOfBirth.IsZero() {
		return nil, apperr.Validationf("date of birth is required")
	}
	if !ValidGender(child.Gender) {
		return nil, apperr.Validationf("invalid gender %q", child.Gender)
	}
	if child.SessionType == "" {
		child.SessionType = SessionFullDay
	}
	if !ValidSessionType(child.SessionType) {
		return nil, apperr.Validationf("invalid session type %q", child.SessionType)
	}
	if child.Status == "" {
		child.Status = StatusActive
	}
	if !ValidStatus(child.Status) {
		return nil, apperr.Validationf("invalid child status %q", child.Status)
	}
	if child.EnrolledAt.IsZero() {
		child.EnrolledAt = time.Now()
	}

	// The store enforces the parent/babysitter references; associations are
	// never created implicitly here.
	child.Parent = nil
	child.Babysitter = nil

	if err := s.DB.Create(&child).Error; err != nil {
		return nil, apperr.FromDB(err, "child")
	}
	return &child, nil
}

func (s *ChildService) GetByID(id int) (*Child, error) {
	var child Child
	if err := s.DB.First(&child, id).Error; err != nil {
		return nil, apperr.FromDB(err, "child")
	}
	return &child, nil
}

func (s *ChildService) List(filter ListFilter, p pagination.Params) ([]Child, pagination.Result, error) {
	q := s.DB.Model(&Child{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.ParentID != 0 {
		q = q.Where("parent_id = ?", filter.ParentID)
	}
	if filter.BabysitterID != 0 {
		q = q.Where("babysitter_id = ?", filter.BabysitterID)
	}
	if filter.SessionType != "" {
		q = q.Where("session_type = ?", filter.SessionType)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, pagination.Result{}, apperr.FromDB(err, "child")
	}

	var items []Child
	if err := q.Order("id").Offset(p.Offset()).Limit(p.Normalize().Limit).Find(&items).Error; err != nil {
		return nil, pagination.Result{}, apperr.FromDB(err, "child")
	}

	return items, pagination.Paginate(total, p), nil
}

func (s *ChildService) Update(id int, patch ChildPatch) (*Child, error) {
	child, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Empty() {
		return child, nil
	}

	updates := map[string]interface{}{}
	if patch.FirstName != nil {
		updates["firstname"] = *patch.FirstName
	}
	if patch.LastName != nil {
		updates["lastname"] = *patch.LastName
	}
	if patch.Gender != nil {
		if !ValidGender(*patch.Gender) {
			return nil, apperr.Validationf("invalid gender %q", *patch.Gender)
		}
		updates["gender"] = *patch.Gender
	}
	if patch.BabysitterID != nil {
		if *patch.BabysitterID == 0 {
			updates["babysitter_id"] = nil
		} else {
			updates["babysitter_id"] = *patch.BabysitterID
		}
	}
	if patch.SessionType != nil {
		if !ValidSessionType(*patch.SessionType) {
			return nil, apperr.Validationf("invalid session type %q", *patch.SessionType)
		}
		updates["session_type"] = *patch.SessionType
	}
	if patch.Status != nil {
		if !ValidStatus(*patch.Status) {
			return nil, apperr.Validationf("invalid child status %q", *patch.Status)
		}
		updates["status"] = *patch.Status
	}
	if patch.Allergies != nil {
		updates["allergies"] = *patch.Allergies
	}
	if patch.MedicalInfo != nil {
		updates["medical_info"] = *patch.MedicalInfo
	}
	if patch.SpecialNeeds != nil {
		updates["special_needs"] = *patch.SpecialNeeds
	}

	if err := s.DB.Model(child).Updates(updates).Error; err != nil {
		return nil, apperr.FromDB(err, "child")
	}

	return s.GetByID(id)
}

func (s *ChildService) Delete(id int) error {
	res := s.DB.Delete(&Child{}, id)
	if res.Error != nil {
		return apperr.FromDB(res.Error, "child")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("child not found")
	}
	return nil
}
