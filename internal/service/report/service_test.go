package report

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/officetrack/attendance-backend-go/internal/domain/employee"
	"github.com/officetrack/attendance-backend-go/internal/domain/report"
	"github.com/officetrack/attendance-backend-go/internal/pkg/validator"
)

type fakeAttendanceRepo struct {
	records    []attendance.Record
	lastFilter attendance.Filter
	listErr    error
}

func (f *fakeAttendanceRepo) CountBatch(ctx context.Context, date, department string, period attendance.Period) (int64, error) {
	return 0, nil
}

func (f *fakeAttendanceRepo) InsertBatch(ctx context.Context, recs []attendance.Record) (int, error) {
	return 0, nil
}

func (f *fakeAttendanceRepo) ListForEdit(ctx context.Context, date, department string, period attendance.Period) ([]attendance.Record, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) UpdateStatus(ctx context.Context, recordID string, status attendance.Status, ot bool) error {
	return nil
}

func (f *fakeAttendanceRepo) ListFiltered(ctx context.Context, filter attendance.Filter) ([]attendance.Record, error) {
	f.lastFilter = filter
	if f.listErr != nil {
		return nil, f.listErr
	}

	var out []attendance.Record
	for _, rec := range f.records {
		date := rec.Date.Format("2006-01-02")
		if filter.Date != "" && date != filter.Date {
			continue
		}
		if filter.StartDate != "" && date < filter.StartDate {
			continue
		}
		if filter.EndDate != "" && date > filter.EndDate {
			continue
		}
		if filter.Department != "" && rec.Department != filter.Department {
			continue
		}
		if filter.Period != "" && rec.Period != filter.Period {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (f *fakeAttendanceRepo) DeleteByEmployee(ctx context.Context, employeeID string) error {
	return nil
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func thaiDate(t *testing.T, s string) string {
	t.Helper()
	d := mustDate(t, s)
	return fmt.Sprintf("%02d/%02d/%d", d.Day(), int(d.Month()), d.Year()+543)
}

func rec(t *testing.T, date, dept, name string, period attendance.Period, status attendance.Status, ot bool) attendance.Record {
	t.Helper()
	code := "EMP-" + name
	return attendance.Record{
		ID:           "rec-" + date + "-" + name,
		EmployeeID:   "emp-" + name,
		EmployeeName: name,
		Department:   dept,
		Date:         mustDate(t, date),
		ThaiDate:     thaiDate(t, date),
		Period:       period,
		Status:       status,
		OT:           ot,
		EmployeeCode: &code,
	}
}

func TestSummaryAggregatesDay(t *testing.T) {
	repo := &fakeAttendanceRepo{records: []attendance.Record{
		rec(t, "2025-06-02", employee.DepartmentIT, "สมชาย", attendance.PeriodAfternoon, attendance.StatusPresent, true),
		rec(t, "2025-06-02", employee.DepartmentIT, "สมหญิง", attendance.PeriodAfternoon, attendance.StatusSickLeave, false),
		rec(t, "2025-06-02", employee.DepartmentSales, "วิชัย", attendance.PeriodAfternoon, attendance.StatusAbsent, false),
		rec(t, "2025-06-03", employee.DepartmentIT, "สมชาย", attendance.PeriodMorning, attendance.StatusPresent, false),
	}}
	svc := NewReportService(repo)

	resp, err := svc.Summary(context.Background(), report.SummaryRequest{Date: "2025-06-02"})
	require.NoError(t, err)

	assert.Equal(t, "2025-06-02", resp.Date)
	assert.Equal(t, attendance.Counter{Present: 1, Sick: 1, Absent: 1, OT: 1, Total: 3}, resp.Counter)
	assert.Equal(t, []string{"มา", "ลาป่วย", "ลากิจ", "ขาด"}, resp.ChartLabels)
	assert.Equal(t, []int{1, 1, 0, 1}, resp.ChartValues)

	require.Len(t, resp.Rows, 3)
	first := resp.Rows[0]
	assert.Equal(t, "02/06/2568", first.Date)
	assert.Equal(t, "ช่วงบ่าย", first.Period)
	assert.Equal(t, "ฝ่ายเทคนิค", first.Department)
	assert.Equal(t, "สมชาย", first.EmployeeName)
	assert.Equal(t, "มา", first.Status)
	assert.Equal(t, "OT", first.OT)
	assert.Equal(t, "-", resp.Rows[1].OT)
}

func TestSummaryPeriodAndDepartmentFilters(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := NewReportService(repo)

	_, err := svc.Summary(context.Background(), report.SummaryRequest{Date: "2025-06-02", Period: "all", Department: "all"})
	require.NoError(t, err)
	assert.Equal(t, attendance.Filter{Date: "2025-06-02"}, repo.lastFilter, "all means no filter")

	_, err = svc.Summary(context.Background(), report.SummaryRequest{Date: "2025-06-02", Period: "morning", Department: employee.DepartmentIT})
	require.NoError(t, err)
	assert.Equal(t, attendance.Filter{Date: "2025-06-02", Period: attendance.PeriodMorning, Department: employee.DepartmentIT}, repo.lastFilter)
}

func TestSummaryValidatesRequest(t *testing.T) {
	svc := NewReportService(&fakeAttendanceRepo{})

	_, err := svc.Summary(context.Background(), report.SummaryRequest{Date: "02-06-2025"})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)

	_, err = svc.Summary(context.Background(), report.SummaryRequest{Date: "2025-06-02", Period: "evening"})
	assert.ErrorAs(t, err, &verrs)
}

func TestSummaryEmptyDayIsZeroes(t *testing.T) {
	svc := NewReportService(&fakeAttendanceRepo{})

	resp, err := svc.Summary(context.Background(), report.SummaryRequest{Date: "2025-06-02"})
	require.NoError(t, err)
	assert.Equal(t, attendance.Counter{}, resp.Counter)
	assert.Empty(t, resp.Rows)
}

func TestMonthRange(t *testing.T) {
	cases := []struct {
		month string
		first string
		last  string
	}{
		{"2025-06", "2025-06-01", "2025-06-30"},
		{"2025-12", "2025-12-01", "2025-12-31"},
		{"2024-02", "2024-02-01", "2024-02-29"},
		{"2023-02", "2023-02-01", "2023-02-28"},
	}
	for _, c := range cases {
		t.Run(c.month, func(t *testing.T) {
			first, last, err := monthRange(c.month)
			require.NoError(t, err)
			assert.Equal(t, c.first, first)
			assert.Equal(t, c.last, last)
		})
	}
}

func TestExportDay(t *testing.T) {
	repo := &fakeAttendanceRepo{records: []attendance.Record{
		rec(t, "2025-06-02", employee.DepartmentIT, "สมชาย", attendance.PeriodAfternoon, attendance.StatusPresent, true),
		rec(t, "2025-06-02", employee.DepartmentAccounting, "สมหญิง", attendance.PeriodMorning, attendance.StatusPersonalLeave, false),
	}}
	svc := NewReportService(repo)

	f, filename, err := svc.ExportDay(context.Background(), report.ExportDayRequest{Date: "2025-06-02"})
	require.NoError(t, err)
	assert.Equal(t, "attendance-day-2025-06-02.xlsx", filename)

	assert.ElementsMatch(t, []string{"รายชื่อพนักงาน", "สรุปประจำวัน"}, f.GetSheetList())

	detail, err := f.GetRows("รายชื่อพนักงาน")
	require.NoError(t, err)
	require.Len(t, detail, 3)
	assert.Equal(t, []string{"วันที่", "ช่วงเวลา", "แผนก", "รหัสพนักงาน", "ชื่อ-สกุล", "สถานะ", "OT"}, detail[0])
	assert.Equal(t, []string{"02/06/2568", "ช่วงบ่าย", "ฝ่ายเทคนิค", "EMP-สมชาย", "สมชาย", "มา", "OT"}, detail[1])

	summary, err := f.GetRows("สรุปประจำวัน")
	require.NoError(t, err)
	require.Len(t, summary, 2)
	assert.Equal(t, []string{"รายการ", "มา", "ลาป่วย", "ลากิจ", "ขาด", "OT", "รวม"}, summary[0])
	assert.Equal(t, []string{"สรุปวันที่ 02/06/2568", "1", "0", "1", "0", "1", "2"}, summary[1])
}

func TestExportDayNoData(t *testing.T) {
	svc := NewReportService(&fakeAttendanceRepo{})

	_, _, err := svc.ExportDay(context.Background(), report.ExportDayRequest{Date: "2025-06-02"})
	assert.ErrorIs(t, err, report.ErrNoAttendanceData)
}

func TestExportMonthGroupsByDepartment(t *testing.T) {
	repo := &fakeAttendanceRepo{records: []attendance.Record{
		rec(t, "2025-06-02", employee.DepartmentIT, "สมชาย", attendance.PeriodAfternoon, attendance.StatusPresent, true),
		rec(t, "2025-06-03", employee.DepartmentIT, "สมชาย", attendance.PeriodAfternoon, attendance.StatusAbsent, false),
		rec(t, "2025-06-02", employee.DepartmentSales, "วิชัย", attendance.PeriodMorning, attendance.StatusPresent, false),
		// Out of range, dropped by the date window.
		rec(t, "2025-07-01", employee.DepartmentIT, "สมชาย", attendance.PeriodMorning, attendance.StatusPresent, false),
	}}
	svc := NewReportService(repo)

	f, filename, err := svc.ExportMonth(context.Background(), report.ExportMonthRequest{Month: "2025-06"})
	require.NoError(t, err)
	assert.Equal(t, "attendance-month-2025-06.xlsx", filename)
	assert.Equal(t, "2025-06-01", repo.lastFilter.StartDate)
	assert.Equal(t, "2025-06-30", repo.lastFilter.EndDate)

	// Department codes sort IT before the Thai-named sales code, two sheets each.
	assert.Equal(t, []string{"รายชื่อ-ฝ่ายเทคนิค", "สรุป-ฝ่ายเทคนิค", "รายชื่อ-วิศวกร", "สรุป-วิศวกร"}, f.GetSheetList())

	itDetail, err := f.GetRows("รายชื่อ-ฝ่ายเทคนิค")
	require.NoError(t, err)
	require.Len(t, itDetail, 3, "july record stays out")

	itSummary, err := f.GetRows("สรุป-ฝ่ายเทคนิค")
	require.NoError(t, err)
	require.Len(t, itSummary, 4, "header, two days, month total")
	assert.Equal(t, []string{"02/06/2568", "1", "0", "0", "0", "1", "1"}, itSummary[1])
	assert.Equal(t, []string{"03/06/2568", "0", "0", "0", "1", "0", "1"}, itSummary[2])
	assert.Equal(t, []string{"รวมทั้งเดือน (ฝ่ายเทคนิค)", "1", "0", "0", "1", "1", "2"}, itSummary[3])
}

func TestExportMonthSingleDepartmentFilter(t *testing.T) {
	repo := &fakeAttendanceRepo{records: []attendance.Record{
		rec(t, "2025-06-02", employee.DepartmentIT, "สมชาย", attendance.PeriodMorning, attendance.StatusPresent, false),
		rec(t, "2025-06-02", employee.DepartmentSales, "วิชัย", attendance.PeriodMorning, attendance.StatusPresent, false),
	}}
	svc := NewReportService(repo)

	f, _, err := svc.ExportMonth(context.Background(), report.ExportMonthRequest{Month: "2025-06", Department: employee.DepartmentSales})
	require.NoError(t, err)
	assert.Equal(t, []string{"รายชื่อ-วิศวกร", "สรุป-วิศวกร"}, f.GetSheetList())
}

func TestExportMonthNoData(t *testing.T) {
	svc := NewReportService(&fakeAttendanceRepo{})

	_, _, err := svc.ExportMonth(context.Background(), report.ExportMonthRequest{Month: "2025-06"})
	assert.ErrorIs(t, err, report.ErrNoAttendanceData)

	_, _, err = svc.ExportMonth(context.Background(), report.ExportMonthRequest{Month: "06-2025"})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}
