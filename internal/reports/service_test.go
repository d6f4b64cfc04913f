package reports

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"daycare-api/internal/attendance"
	"daycare-api/internal/auth"
	"daycare-api/internal/babysitters"
	"daycare-api/internal/children"
	"daycare-api/internal/expenses"
	"daycare-api/internal/payments"

	"github.com/glebarez/sqlite"
	"github.com/xuri/excelize/v2"
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

	models := []interface{}{
		&auth.User{}, &babysitters.Babysitter{}, &children.Child{},
		&attendance.Record{}, &payments.Payment{}, &expenses.Expense{},
	}
	if err := db.AutoMigrate(models...); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	sqlDB, err := db.DB()
	if err == nil {
		t.Cleanup(func() { _ = sqlDB.Close() })
	}

	return db
}

func newReportService(db *gorm.DB) *ReportService {
	return &ReportService{
		Payments:   &payments.PaymentService{DB: db},
		Expenses:   &expenses.ExpenseService{DB: db},
		Attendance: &attendance.AttendanceService{DB: db},
	}
}

func cellValue(t *testing.T, f *excelize.File, sheet, cell string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, cell)
	if err != nil {
		t.Fatalf("GetCellValue %s!%s: %v", sheet, cell, err)
	}
	return v
}

func TestReportService_FinancialSummaryXLSX(t *testing.T) {
	db := newTestDB(t)
	svc := newReportService(db)

	paySeed := []payments.Payment{
		{Direction: payments.DirectionIncome, Amount: 200, Status: payments.StatusCompleted, Date: "2026-03-02"},
		{Direction: payments.DirectionExpense, Amount: 50, Status: payments.StatusCompleted, Date: "2026-03-10"},
		{Direction: payments.DirectionIncome, Amount: 999, Status: payments.StatusPending, Date: "2026-03-11"},
	}
	for _, p := range paySeed {
		if _, err := svc.Payments.Create(p); err != nil {
			t.Fatalf("seed payment: %v", err)
		}
	}
	expSeed := []expenses.Expense{
		{Amount: 120, Category: expenses.CategorySupplies, Status: expenses.StatusPaid, Date: "2026-03-05"},
		{Amount: 30, Category: expenses.CategoryUtilities, Status: expenses.StatusPending, Date: "2026-03-06"},
	}
	for _, e := range expSeed {
		if _, err := svc.Expenses.Create(e); err != nil {
			t.Fatalf("seed expense: %v", err)
		}
	}

	data, name, err := svc.FinancialSummaryXLSX("2026-03-01", "2026-03-31")
	if err != nil {
		t.Fatalf("financial summary: %v", err)
	}
	if !strings.Contains(name, "financial-summary") || !strings.HasSuffix(name, ".xlsx") {
		t.Fatalf("unexpected file name: %q", name)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("workbook unreadable: %v", err)
	}
	defer f.Close()

	const sheet = "Financial Summary"
	if got := cellValue(t, f, sheet, "A1"); got != "Total Income" {
		t.Fatalf("unexpected A1: %q", got)
	}
	if got := cellValue(t, f, sheet, "B1"); got != "200" {
		t.Fatalf("unexpected income: %q", got)
	}
	if got := cellValue(t, f, sheet, "B3"); got != "150" {
		t.Fatalf("unexpected net: %q", got)
	}
	if got := cellValue(t, f, sheet, "A6"); got != "Category" {
		t.Fatalf("unexpected breakdown header: %q", got)
	}
	if got := cellValue(t, f, sheet, "A7"); got != expenses.CategorySupplies {
		t.Fatalf("unexpected top category: %q", got)
	}
}

func TestReportService_AttendanceRegisterXLSX(t *testing.T) {
	db := newTestDB(t)
	svc := newReportService(db)

	u := auth.User{Email: "p@test.com", Password: "x", Role: auth.RoleParent}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed parent: %v", err)
	}
	kid := children.Child{
		FirstName: "Kid", LastName: "T", Gender: children.GenderFemale,
		DateOfBirth: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
		ParentID:    u.ID, SessionType: children.SessionFullDay,
		Status: children.StatusActive, EnrolledAt: time.Now(),
	}
	if err := db.Create(&kid).Error; err != nil {
		t.Fatalf("seed child: %v", err)
	}

	seed := []attendance.Record{
		{Date: "2026-03-02", PersonID: kid.ID, PersonType: attendance.PersonChild, Status: attendance.StatusPresent},
		{Date: "2026-03-03", PersonID: kid.ID, PersonType: attendance.PersonChild, Status: attendance.StatusAbsent},
		{Date: "2026-04-01", PersonID: kid.ID, PersonType: attendance.PersonChild, Status: attendance.StatusPresent},
	}
	for _, rec := range seed {
		if _, err := svc.Attendance.Create(rec); err != nil {
			t.Fatalf("seed attendance: %v", err)
		}
	}

	data, name, err := svc.AttendanceRegisterXLSX(2026, 3)
	if err != nil {
		t.Fatalf("attendance register: %v", err)
	}
	if name != "attendance-register_2026-03.xlsx" {
		t.Fatalf("unexpected file name: %q", name)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("workbook unreadable: %v", err)
	}
	defer f.Close()

	const sheet = "Attendance Register"
	if got := cellValue(t, f, sheet, "B1"); got != "2026-03" {
		t.Fatalf("unexpected month cell: %q", got)
	}
	if got := cellValue(t, f, sheet, "B3"); got != "1" {
		t.Fatalf("unexpected present count: %q", got)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	var recordRows int
	for _, r := range rows {
		if len(r) > 0 && strings.HasPrefix(r[0], "2026-03-") {
			recordRows++
		}
	}
	if recordRows != 2 {
		t.Fatalf("expected 2 record rows for March, got %d", recordRows)
	}
}

func TestReportService_Archive_NoBucketConfigured(t *testing.T) {
	db := newTestDB(t)
	svc := newReportService(db)

	if _, _, err := svc.Archive(context.Background(), "r.xlsx", []byte("x")); err == nil {
		t.Fatalf("expected an error without a bucket")
	}
}
