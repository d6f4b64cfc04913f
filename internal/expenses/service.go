package expenses

import (
	"time"

	"daycare-api/internal/apperr"
	"daycare-api/internal/pagination"

	"gorm.io/gorm"
)

type ExpenseService struct {
	DB *gorm.DB
}

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func (s *ExpenseService) Create(e Expense) (*Expense, error) {
	if e.Category == "" {
		e.Category = CategoryOther
	}
	if !ValidCategory(e.Category) {
		return nil, apperr.Validationf("invalid expense category %q", e.Category)
	}
	if e.Status == "" {
		e.Status = StatusPending
	}
	if !ValidStatus(e.Status) {
		return nil, apperr.Validationf("invalid expense status %q", e.Status)
	}
	if e.Method == "" {
		e.Method = MethodCash
	}
	if !ValidMethod(e.Method) {
		return nil, apperr.Validationf("invalid payment method %q", e.Method)
	}
	if e.Amount < 0 {
		return nil, apperr.Validationf("amount must not be negative")
	}
	if e.Date == "" {
		e.Date = time.Now().Format("2006-01-02")
	}
	if !validDate(e.Date) {
		return nil, apperr.Validationf("invalid date %q, expected YYYY-MM-DD", e.Date)
	}

	e.Recorder = nil
	if err := s.DB.Create(&e).Error; err != nil {
		return nil, apperr.FromDB(err, "expense")
	}
	return &e, nil
}

func (s *ExpenseService) GetByID(id int) (*Expense, error) {
	var e Expense
	if err := s.DB.First(&e, id).Error; err != nil {
		return nil, apperr.FromDB(err, "expense")
	}
	return &e, nil
}

func (s *ExpenseService) List(filter ListFilter, p pagination.Params) ([]Expense, pagination.Result, error) {
	q := s.applyFilter(filter)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, pagination.Result{}, apperr.FromDB(err, "expense")
	}

	var items []Expense
	if err := q.Order("date DESC, id DESC").Offset(p.Offset()).Limit(p.Normalize().Limit).Find(&items).Error; err != nil {
		return nil, pagination.Result{}, apperr.FromDB(err, "expense")
	}

	return items, pagination.Paginate(total, p), nil
}

func (s *ExpenseService) applyFilter(filter ListFilter) *gorm.DB {
	q := s.DB.Model(&Expense{})
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.From != "" {
		q = q.Where("date >= ?", filter.From)
	}
	if filter.To != "" {
		q = q.Where("date <= ?", filter.To)
	}
	return q
}

func (s *ExpenseService) Update(id int, patch ExpensePatch) (*Expense, error) {
	e, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Empty() {
		return e, nil
	}

	updates := map[string]interface{}{}
	if patch.Category != nil {
		if !ValidCategory(*patch.Category) {
			return nil, apperr.Validationf("invalid expense category %q", *patch.Category)
		}
		updates["category"] = *patch.Category
	}
	if patch.Status != nil {
		if !ValidStatus(*patch.Status) {
			return nil, apperr.Validationf("invalid expense status %q", *patch.Status)
		}
		updates["status"] = *patch.Status
	}
	if patch.Method != nil {
		if !ValidMethod(*patch.Method) {
			return nil, apperr.Validationf("invalid payment method %q", *patch.Method)
		}
		updates["method"] = *patch.Method
	}
	if patch.Amount != nil {
		if *patch.Amount < 0 {
			return nil, apperr.Validationf("amount must not be negative")
		}
		updates["amount"] = *patch.Amount
	}
	if patch.Vendor != nil {
		updates["vendor"] = *patch.Vendor
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}

	if err := s.DB.Model(e).Updates(updates).Error; err != nil {
		return nil, apperr.FromDB(err, "expense")
	}

	return s.GetByID(id)
}

func (s *ExpenseService) Delete(id int) error {
	res := s.DB.Delete(&Expense{}, id)
	if res.Error != nil {
		return apperr.FromDB(res.Error, "expense")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("expense not found")
	}
	return nil
}

// CategoryTotals breaks spend down by category over a period. Cancelled
// expenses are skipped.
func (s *ExpenseService) CategoryTotals(from, to string) ([]CategoryTotal, error) {
	if from != "" && !validDate(from) {
		return nil, apperr.Validationf("invalid date %q, expected YYYY-MM-DD", from)
	}
	if to != "" && !validDate(to) {
		return nil, apperr.Validationf("invalid date %q, expected YYYY-MM-DD", to)
	}

	q := s.DB.Model(&Expense{}).
		Select("category, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Where("status <> ?", StatusCancelled)
	if from != "" {
		q = q.Where("date >= ?", from)
	}
	if to != "" {
		q = q.Where("date <= ?", to)
	}

	var rows []CategoryTotal
	if err := q.Group("category").Order("total DESC").Scan(&rows).Error; err != nil {
		return nil, apperr.FromDB(err, "expense")
	}
	return rows, nil
}
