package babysitters

import (
	"strings"

	"daycare-api/internal/apperr"
	"daycare-api/internal/pagination"

	"gorm.io/gorm"
)

type BabysitterService struct {
	DB *gorm.DB
}

func (s *BabysitterService) Create(b Babysitter) (*Babysitter, error) {
	if b.UserID == 0 {
		return nil, apperr.Validationf("user reference is required")
	}
	if strings.TrimSpace(b.NationalID) == "" {
		return nil, apperr.Validationf("national ID is required")
	}
	if b.Status == "" {
		b.Status = StatusActive
	}
	if !ValidStatus(b.Status) {
		return nil, apperr.Validationf("invalid babysitter status %q", b.Status)
	}
	if b.PaymentRate < 0 {
		return nil, apperr.Validationf("payment rate must not be negative")
	}

	b.User = nil
	if err := s.DB.Create(&b).Error; err != nil {
		if apperr.IsDuplicate(err) {
			return nil, apperr.Validationf("a babysitter with this user or national ID already exists")
		}
		return nil, apperr.FromDB(err, "babysitter")
	}
	return &b, nil
}

func (s *BabysitterService) GetByID(id int) (*Babysitter, error) {
	var b Babysitter
	if err := s.DB.First(&b, id).Error; err != nil {
		return nil, apperr.FromDB(err, "babysitter")
	}
	return &b, nil
}

func (s *BabysitterService) List(status *string, p pagination.Params) ([]Babysitter, pagination.Result, error) {
	q := s.DB.Model(&Babysitter{})
	if status != nil && *status != "" {
		q = q.Where("status = ?", *status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, pagination.Result{}, apperr.FromDB(err, "babysitter")
	}

	var items []Babysitter
	if err := q.Order("id").Offset(p.Offset()).Limit(p.Normalize().Limit).Find(&items).Error; err != nil {
		return nil, pagination.Result{}, apperr.FromDB(err, "babysitter")
	}

	return items, pagination.Paginate(total, p), nil
}

func (s *BabysitterService) Update(id int, patch BabysitterPatch) (*Babysitter, error) {
	b, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Empty() {
		return b, nil
	}

	updates := map[string]interface{}{}
	if patch.NextOfKinName != nil {
		updates["next_of_kin_name"] = *patch.NextOfKinName
	}
	if patch.NextOfKinPhone != nil {
		updates["next_of_kin_phone"] = *patch.NextOfKinPhone
	}
	if patch.Status != nil {
		if !ValidStatus(*patch.Status) {
			return nil, apperr.Validationf("invalid babysitter status %q", *patch.Status)
		}
		updates["status"] = *patch.Status
	}
	if patch.PaymentRate != nil {
		if *patch.PaymentRate < 0 {
			return nil, apperr.Validationf("payment rate must not be negative")
		}
		updates["payment_rate"] = *patch.PaymentRate
	}
	if patch.DateOfBirth != nil {
		updates["date_of_birth"] = *patch.DateOfBirth
	}

	if err := s.DB.Model(b).Updates(updates).Error; err != nil {
		return nil, apperr.FromDB(err, "babysitter")
	}

	return s.GetByID(id)
}

// Delete removes the babysitter; children keep their rows with the reference
// cleared by the SET NULL policy on children.babysitter_id.
func (s *BabysitterService) Delete(id int) error {
	res := s.DB.Delete(&Babysitter{}, id)
	if res.Error != nil {
		return apperr.FromDB(res.Error, "babysitter")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("babysitter not found")
	}
	return nil
}

// AssignedChildrenCount queries the children table by name to avoid importing
// the children package from here.
func (s *BabysitterService) AssignedChildrenCount(id int) (int64, error) {
	if _, err := s.GetByID(id); err != nil {
		return 0, err
	}

	var n int64
	if err := s.DB.Table("children").Where("babysitter_id = ?", id).Count(&n).Error; err != nil {
		return 0, apperr.FromDB(err, "child")
	}
	return n, nil
}
