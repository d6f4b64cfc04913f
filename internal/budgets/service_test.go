package budgets

import (
	"fmt"
	"strings"
	"testing"

	"daycare-api/internal/apperr"
	"daycare-api/internal/auth"
	"daycare-api/internal/pagination"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", "\\", "_", " ", "_", ":", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&auth.User{}, &Budget{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	sqlDB, err := db.DB()
	if err == nil {
		t.Cleanup(func() { _ = sqlDB.Close() })
	}

	return db
}

func intp(v int) *int { return &v }

func TestBudgetService_Create_Monthly(t *testing.T) {
	db := newTestDB(t)
	svc := &BudgetService{DB: db}

	created, err := svc.Create(Budget{Name: "March groceries", Period: PeriodMonthly, Year: 2026, Month: intp(3), Amount: 1200})
	if err != nil {
		t.Fatalf("expected nil err, got: %v", err)
	}
	if created.Month == nil || *created.Month != 3 {
		t.Fatalf("month not kept: %+v", created)
	}
	if created.Week != nil || created.Day != nil {
		t.Fatalf("week and day must be cleared on a monthly budget")
	}
	if created.Category != CategoryOther {
		t.Fatalf("category not defaulted: %+v", created)
	}

	fetched, err := svc.GetByID(created.ID)
	if err != nil {
		t.Fatalf("GetByID after Create: %v", err)
	}
	if fetched.Name != "March groceries" || fetched.Amount != 1200 {
		t.Fatalf("fetched record differs: %+v", fetched)
	}
}

func TestBudgetService_Create_PeriodFieldRules(t *testing.T) {
	db := newTestDB(t)
	svc := &BudgetService{DB: db}

	cases := []Budget{
		{Name: "x", Period: "quarterly", Year: 2026, Amount: 1},
		{Name: "x", Period: PeriodMonthly, Year: 2026, Amount: 1},
		{Name: "x", Period: PeriodMonthly, Year: 2026, Month: intp(13), Amount: 1},
		{Name: "x", Period: PeriodWeekly, Year: 2026, Amount: 1},
		{Name: "x", Period: PeriodWeekly, Year: 2026, Week: intp(54), Amount: 1},
		{Name: "x", Period: PeriodDaily, Year: 2026, Month: intp(3), Amount: 1},
		{Name: "x", Period: PeriodDaily, Year: 2026, Day: intp(9), Amount: 1},
		{Name: "x", Period: PeriodDaily, Year: 2026, Month: intp(3), Day: intp(32), Amount: 1},
		{Name: "x", Period: PeriodYearly, Year: 2026, Category: "travel", Amount: 1},
		{Name: "  ", Period: PeriodYearly, Year: 2026, Amount: 1},
		{Name: "x", Period: PeriodYearly, Year: 0, Amount: 1},
		{Name: "x", Period: PeriodYearly, Year: 2026, Amount: -1},
	}
	for i, b := range cases {
		if _, err := svc.Create(b); !apperr.IsValidation(err) {
			t.Fatalf("case %d: expected validation error, got: %v", i, err)
		}
	}

	var n int64
	if err := db.Model(&Budget{}).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("invalid writes reached storage: %d rows", n)
	}
}

func TestBudgetService_Create_YearlyClearsSubPeriods(t *testing.T) {
	db := newTestDB(t)
	svc := &BudgetService{DB: db}

	created, err := svc.Create(Budget{Name: "2026 plan", Period: PeriodYearly, Year: 2026, Month: intp(5), Week: intp(10), Day: intp(4), Amount: 50000})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Month != nil || created.Week != nil || created.Day != nil {
		t.Fatalf("yearly budget kept sub-period fields: %+v", created)
	}
}

func TestBudgetService_Create_Daily(t *testing.T) {
	db := newTestDB(t)
	svc := &BudgetService{DB: db}

	created, err := svc.Create(Budget{
		Name:     "field trip lunches",
		Period:   PeriodDaily,
		Category: CategorySupplies,
		Year:     2026,
		Month:    intp(3),
		Week:     intp(11),
		Day:      intp(9),
		Amount:   80,
	})
	if err != nil {
		t.Fatalf("expected nil err, got: %v", err)
	}
	if created.Month == nil || *created.Month != 3 || created.Day == nil || *created.Day != 9 {
		t.Fatalf("day designators not kept: %+v", created)
	}
	if created.Week != nil {
		t.Fatalf("week must be cleared on a daily budget")
	}
	if created.Category != CategorySupplies {
		t.Fatalf("category not kept: %+v", created)
	}
}

func TestBudgetService_Update(t *testing.T) {
	db := newTestDB(t)
	svc := &BudgetService{DB: db}

	created, err := svc.Create(Budget{Name: "Week 10", Period: PeriodWeekly, Year: 2026, Week: intp(10), Amount: 200})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	amount := 250.0
	updated, err := svc.Update(created.ID, BudgetPatch{Amount: &amount})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Amount != 250 || updated.Name != "Week 10" {
		t.Fatalf("patch not applied: %+v", updated)
	}

	blank := " "
	if _, err := svc.Update(created.ID, BudgetPatch{Name: &blank}); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for blank name, got: %v", err)
	}

	noop, err := svc.Update(created.ID, BudgetPatch{})
	if err != nil {
		t.Fatalf("no-op update: %v", err)
	}
	if noop.Amount != 250 {
		t.Fatalf("no-op patch changed the record: %+v", noop)
	}
}

func TestBudgetService_List_ByPeriodAndYear(t *testing.T) {
	db := newTestDB(t)
	svc := &BudgetService{DB: db}

	seed := []Budget{
		{Name: "a", Period: PeriodMonthly, Year: 2026, Month: intp(1), Category: CategorySalaries, Amount: 1},
		{Name: "b", Period: PeriodMonthly, Year: 2026, Month: intp(2), Amount: 2},
		{Name: "c", Period: PeriodMonthly, Year: 2025, Month: intp(1), Amount: 3},
		{Name: "d", Period: PeriodYearly, Year: 2026, Amount: 4},
	}
	for _, b := range seed {
		if _, err := svc.Create(b); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	items, page, err := svc.List(ListFilter{Period: PeriodMonthly, Year: 2026}, pagination.Params{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 || page.Total != 2 {
		t.Fatalf("unexpected filter result: n=%d %+v", len(items), page)
	}

	items, _, err = svc.List(ListFilter{Year: 2026}, pagination.Params{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("unexpected year filter result: n=%d", len(items))
	}

	items, _, err = svc.List(ListFilter{Category: CategorySalaries}, pagination.Params{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].Name != "a" {
		t.Fatalf("unexpected category filter result: %+v", items)
	}
}

func TestBudgetService_Delete_ThenGetFails(t *testing.T) {
	db := newTestDB(t)
	svc := &BudgetService{DB: db}

	created, err := svc.Create(Budget{Name: "gone", Period: PeriodDaily, Year: 2026, Month: intp(6), Day: intp(12), Amount: 10})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetByID(created.ID); !apperr.IsNotFound(err) {
		t.Fatalf("expected not-found after delete, got: %v", err)
	}
	if err := svc.Delete(created.ID); !apperr.IsNotFound(err) {
		t.Fatalf("expected not-found on second delete, got: %v", err)
	}
}
