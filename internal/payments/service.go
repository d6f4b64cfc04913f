package payments

import (
	"time"

	"daycare-api/internal/apperr"
	"daycare-api/internal/pagination"

	"gorm.io/gorm"
)

type PaymentService struct {
	DB *gorm.DB
}

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func (s *PaymentService) Create(p Payment) (*Payment, error) {
	if !ValidDirection(p.Direction) {
		return nil, apperr.Validationf("invalid payment direction %q", p.Direction)
	}
	if p.Category == "" {
		p.Category = CategoryOther
	}
	if !ValidCategory(p.Category) {
		return nil, apperr.Validationf("invalid payment category %q", p.Category)
	}
	if p.Status == "" {
		p.Status = StatusPending
	}
	if !ValidStatus(p.Status) {
		return nil, apperr.Validationf("invalid payment status %q", p.Status)
	}
	if p.Method == "" {
		p.Method = MethodCash
	}
	if !ValidMethod(p.Method) {
		return nil, apperr.Validationf("invalid payment method %q", p.Method)
	}
	if p.Amount < 0 {
		return nil, apperr.Validationf("amount must not be negative")
	}
	if p.Date == "" {
		p.Date = time.Now().Format("2006-01-02")
	}
	if !validDate(p.Date) {
		return nil, apperr.Validationf("invalid date %q, expected YYYY-MM-DD", p.Date)
	}
	if p.DueDate != "" && !validDate(p.DueDate) {
		return nil, apperr.Validationf("invalid due date %q, expected YYYY-MM-DD", p.DueDate)
	}

	p.Payer = nil
	p.Payee = nil
	if err := s.DB.Create(&p).Error; err != nil {
		return nil, apperr.FromDB(err, "payment")
	}
	return &p, nil
}

func (s *PaymentService) GetByID(id int) (*Payment, error) {
	var p Payment
	if err := s.DB.First(&p, id).Error; err != nil {
		return nil, apperr.FromDB(err, "payment")
	}
	return &p, nil
}

func (s *PaymentService) List(filter ListFilter, p pagination.Params) ([]Payment, pagination.Result, error) {
	q := s.applyFilter(filter)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, pagination.Result{}, apperr.FromDB(err, "payment")
	}

	var items []Payment
	if err := q.Order("date DESC, id DESC").Offset(p.Offset()).Limit(p.Normalize().Limit).Find(&items).Error; err != nil {
		return nil, pagination.Result{}, apperr.FromDB(err, "payment")
	}

	return items, pagination.Paginate(total, p), nil
}

func (s *PaymentService) applyFilter(filter ListFilter) *gorm.DB {
	q := s.DB.Model(&Payment{})
	if filter.Direction != "" {
		q = q.Where("direction = ?", filter.Direction)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.PayerID != 0 {
		q = q.Where("payer_id = ?", filter.PayerID)
	}
	if filter.PayeeID != 0 {
		q = q.Where("payee_id = ?", filter.PayeeID)
	}
	if filter.From != "" {
		q = q.Where("date >= ?", filter.From)
	}
	if filter.To != "" {
		q = q.Where("date <= ?", filter.To)
	}
	return q
}

func (s *PaymentService) Update(id int, patch PaymentPatch) (*Payment, error) {
	p, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Empty() {
		return p, nil
	}

	updates := map[string]interface{}{}
	if patch.Status != nil {
		if !ValidStatus(*patch.Status) {
			return nil, apperr.Validationf("invalid payment status %q", *patch.Status)
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
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.DueDate != nil {
		if *patch.DueDate != "" && !validDate(*patch.DueDate) {
			return nil, apperr.Validationf("invalid due date %q, expected YYYY-MM-DD", *patch.DueDate)
		}
		updates["due_date"] = *patch.DueDate
	}
	if patch.PaidAt != nil {
		updates["paid_at"] = *patch.PaidAt
	}

	if err := s.DB.Model(p).Updates(updates).Error; err != nil {
		return nil, apperr.FromDB(err, "payment")
	}

	return s.GetByID(id)
}

func (s *PaymentService) Delete(id int) error {
	res := s.DB.Delete(&Payment{}, id)
	if res.Error != nil {
		return apperr.FromDB(res.Error, "payment")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("payment not found")
	}
	return nil
}

// Summarize totals completed payments in the period. Pending, failed and
// cancelled movements never count towards the totals.
func (s *PaymentService) Summarize(from, to string) (*Summary, error) {
	if from != "" && !validDate(from) {
		return nil, apperr.Validationf("invalid date %q, expected YYYY-MM-DD", from)
	}
	if to != "" && !validDate(to) {
		return nil, apperr.Validationf("invalid date %q, expected YYYY-MM-DD", to)
	}

	sum := Summary{From: from, To: to}

	var rows []struct {
		Direction string
		Total     float64
		N         int64
	}
	q := s.DB.Model(&Payment{}).
		Select("direction, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS n").
		Where("status = ?", StatusCompleted)
	if err := s.applyDateRange(q, from, to).Group("direction").Scan(&rows).Error; err != nil {
		return nil, apperr.FromDB(err, "payment")
	}

	for _, r := range rows {
		sum.Count += r.N
		switch r.Direction {
		case DirectionIncome:
			sum.TotalIncome = r.Total
		case DirectionExpense:
			sum.TotalExpense = r.Total
		}
	}
	sum.Net = sum.TotalIncome - sum.TotalExpense

	catQ := s.DB.Model(&Payment{}).
		Select("category, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Where("status = ?", StatusCompleted)
	if err := s.applyDateRange(catQ, from, to).Group("category").Order("total DESC").Scan(&sum.ByCategory).Error; err != nil {
		return nil, apperr.FromDB(err, "payment")
	}

	statQ := s.DB.Model(&Payment{}).
		Select("status, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count")
	if err := s.applyDateRange(statQ, from, to).Group("status").Order("total DESC").Scan(&sum.ByStatus).Error; err != nil {
		return nil, apperr.FromDB(err, "payment")
	}

	return &sum, nil
}

func (s *PaymentService) applyDateRange(q *gorm.DB, from, to string) *gorm.DB {
	if from != "" {
		q = q.Where("date >= ?", from)
	}
	if to != "" {
		q = q.Where("date <= ?", to)
	}
	return q
}

// Outstanding lists pending payments, oldest due date first. With overdueOnly
// the result is limited to payments whose due date is already past.
func (s *PaymentService) Outstanding(overdueOnly bool, p pagination.Params) ([]Payment, pagination.Result, error) {
	q := s.DB.Model(&Payment{}).Where("status = ?", StatusPending)
	if overdueOnly {
		q = q.Where("due_date <> '' AND due_date < ?", time.Now().Format("2006-01-02"))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, pagination.Result{}, apperr.FromDB(err, "payment")
	}

	var items []Payment
	if err := q.Order("due_date, id").Offset(p.Offset()).Limit(p.Normalize().Limit).Find(&items).Error; err != nil {
		return nil, pagination.Result{}, apperr.FromDB(err, "payment")
	}

	return items, pagination.Paginate(total, p), nil
}
