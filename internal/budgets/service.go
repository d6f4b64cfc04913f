package budgets

import (
	"strings"

	"daycare-api/internal/apperr"
	"daycare-api/internal/pagination"

	"gorm.io/gorm"
)

type BudgetService struct {
	DB *gorm.DB
}

func (s *BudgetService) Create(b Budget) (*Budget, error) {
	if strings.TrimSpace(b.Name) == "" {
		return nil, apperr.Validationf("name is required")
	}
	if !ValidPeriod(b.Period) {
		return nil, apperr.Validationf("invalid budget period %q", b.Period)
	}
	if b.Category == "" {
		b.Category = CategoryOther
	}
	if !ValidCategory(b.Category) {
		return nil, apperr.Validationf("invalid budget category %q", b.Category)
	}
	if b.Year < 1 {
		return nil, apperr.Validationf("invalid year %d", b.Year)
	}
	if b.Amount < 0 {
		return nil, apperr.Validationf("amount must not be negative")
	}

	switch b.Period {
	case PeriodMonthly:
		if b.Month == nil || *b.Month < 1 || *b.Month > 12 {
			return nil, apperr.Validationf("monthly budgets need a month between 1 and 12")
		}
		b.Week = nil
		b.Day = nil
	case PeriodWeekly:
		if b.Week == nil || *b.Week < 1 || *b.Week > 53 {
			return nil, apperr.Validationf("weekly budgets need a week between 1 and 53")
		}
		b.Month = nil
		b.Day = nil
	case PeriodDaily:
		if b.Month == nil || *b.Month < 1 || *b.Month > 12 {
			return nil, apperr.Validationf("daily budgets need a month between 1 and 12")
		}
		if b.Day == nil || *b.Day < 1 || *b.Day > 31 {
			return nil, apperr.Validationf("daily budgets need a day between 1 and 31")
		}
		b.Week = nil
	default:
		b.Month = nil
		b.Week = nil
		b.Day = nil
	}

	b.Creator = nil
	if err := s.DB.Create(&b).Error; err != nil {
		return nil, apperr.FromDB(err, "budget")
	}
	return &b, nil
}

func (s *BudgetService) GetByID(id int) (*Budget, error) {
	var b Budget
	if err := s.DB.First(&b, id).Error; err != nil {
		return nil, apperr.FromDB(err, "budget")
	}
	return &b, nil
}

func (s *BudgetService) List(filter ListFilter, p pagination.Params) ([]Budget, pagination.Result, error) {
	q := s.DB.Model(&Budget{})
	if filter.Period != "" {
		q = q.Where("period = ?", filter.Period)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Year != 0 {
		q = q.Where("year = ?", filter.Year)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, pagination.Result{}, apperr.FromDB(err, "budget")
	}

	var items []Budget
	if err := q.Order("year DESC, id DESC").Offset(p.Offset()).Limit(p.Normalize().Limit).Find(&items).Error; err != nil {
		return nil, pagination.Result{}, apperr.FromDB(err, "budget")
	}

	return items, pagination.Paginate(total, p), nil
}

func (s *BudgetService) Update(id int, patch BudgetPatch) (*Budget, error) {
	b, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Empty() {
		return b, nil
	}

	updates := map[string]interface{}{}
	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, apperr.Validationf("name must not be empty")
		}
		updates["name"] = *patch.Name
	}
	if patch.Amount != nil {
		if *patch.Amount < 0 {
			return nil, apperr.Validationf("amount must not be negative")
		}
		updates["amount"] = *patch.Amount
	}
	if patch.Notes != nil {
		updates["notes"] = *patch.Notes
	}

	if err := s.DB.Model(b).Updates(updates).Error; err != nil {
		return nil, apperr.FromDB(err, "budget")
	}

	return s.GetByID(id)
}

func (s *BudgetService) Delete(id int) error {
	res := s.DB.Delete(&Budget{}, id)
	if res.Error != nil {
		return apperr.FromDB(res.Error, "budget")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("budget not found")
	}
	return nil
}
