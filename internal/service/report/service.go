package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/officetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/officetrack/attendance-backend-go/internal/domain/employee"
	"github.com/officetrack/attendance-backend-go/internal/domain/report"
	"github.com/officetrack/attendance-backend-go/internal/pkg/excel"
)

var detailHeaders = []string{"วันที่", "ช่วงเวลา", "แผนก", "รหัสพนักงาน", "ชื่อ-สกุล", "สถานะ", "OT"}

var summaryHeaders = []string{"รายการ", "มา", "ลาป่วย", "ลากิจ", "ขาด", "OT", "รวม"}

type ReportServiceImpl struct {
	attendanceRepo attendance.Repository
}

func NewReportService(attendanceRepo attendance.Repository) report.Service {
	return &ReportServiceImpl{attendanceRepo: attendanceRepo}
}

// filterFrom maps request fields to a repository filter. "all" and empty both
// mean no filter.
func filterFrom(date, startDate, endDate, period, department string) attendance.Filter {
	filter := attendance.Filter{
		Date:      date,
		StartDate: startDate,
		EndDate:   endDate,
	}
	if department != "" && department != "all" {
		filter.Department = department
	}
	if period != "" && period != "all" {
		filter.Period = attendance.Period(period)
	}
	return filter
}

func toDetailRow(rec attendance.Record) report.DetailRow {
	code := ""
	if rec.EmployeeCode != nil {
		code = *rec.EmployeeCode
	}
	ot := "-"
	if rec.OT {
		ot = "OT"
	}
	return report.DetailRow{
		Date:         rec.ThaiDate,
		Period:       rec.Period.Label(),
		Department:   employee.DepartmentLabel(rec.Department),
		EmployeeCode: code,
		EmployeeName: rec.EmployeeName,
		Status:       rec.Status.Label(),
		OT:           ot,
	}
}

func detailCells(recs []attendance.Record) [][]interface{} {
	rows := make([][]interface{}, 0, len(recs))
	for _, rec := range recs {
		r := toDetailRow(rec)
		rows = append(rows, []interface{}{r.Date, r.Period, r.Department, r.EmployeeCode, r.EmployeeName, r.Status, r.OT})
	}
	return rows
}

func counterCells(label string, c attendance.Counter) []interface{} {
	return []interface{}{label, c.Present, c.Sick, c.Leave, c.Absent, c.OT, c.Total}
}

// monthRange returns the first and last calendar day of a YYYY-MM month.
func monthRange(month string) (string, string, error) {
	first, err := time.Parse("2006-01", month)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse month %q: %w", month, err)
	}
	last := first.AddDate(0, 1, -1)
	return first.Format("2006-01-02"), last.Format("2006-01-02"), nil
}

// Summary implements report.Service.
func (r *ReportServiceImpl) Summary(ctx context.Context, req report.SummaryRequest) (report.SummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return report.SummaryResponse{}, err
	}

	recs, err := r.attendanceRepo.ListFiltered(ctx, filterFrom(req.Date, "", "", req.Period, req.Department))
	if err != nil {
		return report.SummaryResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	counter := attendance.Aggregate(recs)
	rows := make([]report.DetailRow, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, toDetailRow(rec))
	}

	return report.SummaryResponse{
		Date:        req.Date,
		Counter:     counter,
		ChartLabels: []string{"มา", "ลาป่วย", "ลากิจ", "ขาด"},
		ChartValues: []int{counter.Present, counter.Sick, counter.Leave, counter.Absent},
		Rows:        rows,
	}, nil
}

// ExportDay implements report.Service. The workbook carries the filtered
// detail rows plus a one-row summary of the day.
func (r *ReportServiceImpl) ExportDay(ctx context.Context, req report.ExportDayRequest) (*excelize.File, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", err
	}

	recs, err := r.attendanceRepo.ListFiltered(ctx, filterFrom(req.Date, "", "", req.Period, req.Department))
	if err != nil {
		return nil, "", fmt.Errorf("failed to list attendance: %w", err)
	}
	if len(recs) == 0 {
		return nil, "", report.ErrNoAttendanceData
	}

	wb := excel.NewWorkbook()
	if _, err := wb.AppendSheet("รายชื่อพนักงาน", detailHeaders, detailCells(recs)); err != nil {
		return nil, "", err
	}

	counter := attendance.Aggregate(recs)
	summaryRow := counterCells("สรุปวันที่ "+recs[0].ThaiDate, counter)
	if _, err := wb.AppendSheet("สรุปประจำวัน", summaryHeaders, [][]interface{}{summaryRow}); err != nil {
		return nil, "", err
	}

	return wb.File(), "attendance-day-" + req.Date + ".xlsx", nil
}

// ExportMonth implements report.Service. One detail sheet and one summary
// sheet per department found in the month, departments in code order.
func (r *ReportServiceImpl) ExportMonth(ctx context.Context, req report.ExportMonthRequest) (*excelize.File, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", err
	}

	startDate, endDate, err := monthRange(req.Month)
	if err != nil {
		return nil, "", err
	}

	recs, err := r.attendanceRepo.ListFiltered(ctx, filterFrom("", startDate, endDate, "", req.Department))
	if err != nil {
		return nil, "", fmt.Errorf("failed to list attendance: %w", err)
	}
	if len(recs) == 0 {
		return nil, "", report.ErrNoAttendanceData
	}

	byDepartment := make(map[string][]attendance.Record)
	departments := make([]string, 0)
	for _, rec := range recs {
		if _, seen := byDepartment[rec.Department]; !seen {
			departments = append(departments, rec.Department)
		}
		byDepartment[rec.Department] = append(byDepartment[rec.Department], rec)
	}
	sort.Strings(departments)

	wb := excel.NewWorkbook()
	for _, dept := range departments {
		deptRecs := byDepartment[dept]
		label := employee.DepartmentLabel(dept)

		if _, err := wb.AppendSheet("รายชื่อ-"+label, detailHeaders, detailCells(deptRecs)); err != nil {
			return nil, "", err
		}

		if _, err := wb.AppendSheet("สรุป-"+label, summaryHeaders, monthSummaryRows(deptRecs, label)); err != nil {
			return nil, "", err
		}
	}

	return wb.File(), "attendance-month-" + req.Month + ".xlsx", nil
}

// monthSummaryRows builds one counter row per calendar day that has records,
// days ascending, followed by a whole-month total row.
func monthSummaryRows(recs []attendance.Record, label string) [][]interface{} {
	byDate := make(map[string][]attendance.Record)
	dates := make([]string, 0)
	for _, rec := range recs {
		key := rec.Date.Format("2006-01-02")
		if _, seen := byDate[key]; !seen {
			dates = append(dates, key)
		}
		byDate[key] = append(byDate[key], rec)
	}
	sort.Strings(dates)

	rows := make([][]interface{}, 0, len(dates)+1)
	for _, date := range dates {
		dayRecs := byDate[date]
		rows = append(rows, counterCells(dayRecs[0].ThaiDate, attendance.Aggregate(dayRecs)))
	}
	rows = append(rows, counterCells("รวมทั้งเดือน ("+label+")", attendance.Aggregate(recs)))
	return rows
}
