package reports

import (
	"context"
	"fmt"
	"time"

	"daycare-api/internal/apperr"
	"daycare-api/internal/attendance"
	"daycare-api/internal/expenses"
	"daycare-api/internal/pagination"
	"daycare-api/internal/payments"
	"daycare-api/internal/util"

	"github.com/iancoleman/orderedmap"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportService struct {
	Payments   *payments.PaymentService
	Expenses   *expenses.ExpenseService
	Attendance *attendance.AttendanceService
	Bucket     string
}

// FinancialSummaryXLSX renders the period's money summary and the
// per-category spend breakdown as a workbook.
func (s *ReportService) FinancialSummaryXLSX(from, to string) ([]byte, string, error) {
	sum, err := s.Payments.Summarize(from, to)
	if err != nil {
		return nil, "", err
	}
	totals, err := s.Expenses.CategoryTotals(from, to)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", "Financial Summary")
	sheet := "Financial Summary"

	summary := orderedmap.New()
	summary.Set("Total Income", sum.TotalIncome)
	summary.Set("Total Expense", sum.TotalExpense)
	summary.Set("Net", sum.Net)
	summary.Set("Completed Payments", sum.Count)

	row := 1
	for _, key := range summary.Keys() {
		val, _ := summary.Get(key)
		_ = f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &[]interface{}{key, val})
		row++
	}

	row++
	_ = f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &[]interface{}{"Category", "Total", "Count"})
	for _, ct := range totals {
		row++
		_ = f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &[]interface{}{ct.Category, ct.Total, ct.Count})
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", apperr.Storef("failed to render financial summary: %v", err)
	}

	name := "financial-summary.xlsx"
	if from != "" || to != "" {
		name = fmt.Sprintf("financial-summary_%s_%s.xlsx", from, to)
	}
	return buf.Bytes(), name, nil
}

// AttendanceRegisterXLSX renders the month's attendance records plus the
// aggregated monthly counts. Record pages are walked until exhausted.
func (s *ReportService) AttendanceRegisterXLSX(year, month int) ([]byte, string, error) {
	stats, err := s.Attendance.MonthlyStats(year, month)
	if err != nil {
		return nil, "", err
	}

	from := fmt.Sprintf("%04d-%02d-01", year, month)
	lastDay := time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	to := lastDay.Format("2006-01-02")

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", "Attendance Register")
	sheet := "Attendance Register"

	header := orderedmap.New()
	header.Set("Days Recorded", stats.DaysRecorded)
	header.Set("Present", stats.Present)
	header.Set("Absent", stats.Absent)
	header.Set("Late", stats.Late)
	header.Set("Excused", stats.Excused)
	header.Set("Average Daily Present", stats.AverageDailyPresent)

	row := 1
	_ = f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &[]interface{}{"Month", fmt.Sprintf("%04d-%02d", year, month)})
	for _, key := range header.Keys() {
		row++
		val, _ := header.Get(key)
		_ = f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &[]interface{}{key, val})
	}

	row += 2
	_ = f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &[]interface{}{"Date", "Person Type", "Person ID", "Status", "Notes"})

	page := pagination.Params{Page: 1, Limit: pagination.MaxLimit}
	for {
		items, pg, err := s.Attendance.List(attendance.ListFilter{From: from, To: to}, page)
		if err != nil {
			return nil, "", err
		}
		for _, rec := range items {
			row++
			_ = f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &[]interface{}{
				rec.Date, rec.PersonType, rec.PersonID, rec.Status, rec.Notes,
			})
		}
		if pg.Next == nil {
			break
		}
		page.Page = pg.Next.Page
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", apperr.Storef("failed to render attendance register: %v", err)
	}

	return buf.Bytes(), fmt.Sprintf("attendance-register_%04d-%02d.xlsx", year, month), nil
}

// Archive stores the workbook bytes in the configured bucket and returns the
// gs:// URL together with the public https download URL.
func (s *ReportService) Archive(ctx context.Context, objectName string, data []byte) (string, string, error) {
	if s.Bucket == "" {
		return "", "", apperr.Validationf("no archive bucket configured")
	}
	objectPath := "reports/" + objectName
	url, _, err := util.UploadReportToBucket(ctx, s.Bucket, objectPath, data)
	if err != nil {
		return "", "", apperr.Storef("failed to archive report: %v", err)
	}
	return url, util.PublicBucketURL(s.Bucket, objectPath), nil
}

// ListArchived returns the object names of previously archived reports.
func (s *ReportService) ListArchived(ctx context.Context) ([]string, error) {
	if s.Bucket == "" {
		return nil, apperr.Validationf("no archive bucket configured")
	}
	names, err := util.ListBucketObjects(ctx, s.Bucket, "reports/")
	if err != nil {
		return nil, apperr.Storef("failed to list archived reports: %v", err)
	}
	return names, nil
}
