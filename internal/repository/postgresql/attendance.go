package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/officetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/officetrack/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

// CountBatch implements attendance.Repository.
func (a *attendanceRepository) CountBatch(ctx context.Context, date, department string, period attendance.Period) (int64, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT COUNT(*)
		FROM attendance
		WHERE date = $1
		  AND department = $2
		  AND time_period = $3
	`

	var count int64
	if err := q.QueryRow(ctx, query, date, department, string(period)).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count attendance batch: %w", err)
	}

	return count, nil
}

// InsertBatch implements attendance.Repository. The whole batch goes into
// one multi-row INSERT, so either every row lands or none does.
func (a *attendanceRepository) InsertBatch(ctx context.Context, recs []attendance.Record) (int, error) {
	if len(recs) == 0 {
		return 0, nil
	}

	q := GetQuerier(ctx, a.db)

	var sb strings.Builder
	sb.WriteString(`
		INSERT INTO attendance (
			employee_id, employee_name, department, date, thai_date, time_period, status, ot
		) VALUES `)

	args := make([]interface{}, 0, len(recs)*8)
	for i, rec := range recs {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 8
		sb.WriteString(fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8))
		args = append(args,
			rec.EmployeeID,
			rec.EmployeeName,
			rec.Department,
			rec.Date,
			rec.ThaiDate,
			string(rec.Period),
			string(rec.Status),
			rec.OT,
		)
	}

	tag, err := q.Exec(ctx, sb.String(), args...)
	if err != nil {
		return 0, fmt.Errorf("failed to insert attendance batch: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

// ListForEdit implements attendance.Repository.
func (a *attendanceRepository) ListForEdit(ctx context.Context, date, department string, period attendance.Period) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.employee_id, a.employee_name, a.department, a.date, a.thai_date,
			   a.time_period, a.status, a.ot, a.created_at,
			   e.employee_code
		FROM attendance a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.date = $1
		  AND a.department = $2
		  AND a.time_period = $3
		ORDER BY a.employee_name ASC
	`

	rows, err := q.Query(ctx, query, date, department, string(period))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for edit: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// UpdateStatus implements attendance.Repository.
func (a *attendanceRepository) UpdateStatus(ctx context.Context, recordID string, status attendance.Status, ot bool) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance
		SET status = $2, ot = $3
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, recordID, string(status), ot)
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// ListFiltered implements attendance.Repository.
func (a *attendanceRepository) ListFiltered(ctx context.Context, filter attendance.Filter) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	baseWhere := "1 = 1"
	args := []interface{}{}
	argIdx := 1

	if filter.Date != "" {
		baseWhere += fmt.Sprintf(" AND a.date = $%d", argIdx)
		args = append(args, filter.Date)
		argIdx++
	}
	if filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, filter.StartDate)
		argIdx++
	}
	if filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, filter.EndDate)
		argIdx++
	}
	if filter.Department != "" {
		baseWhere += fmt.Sprintf(" AND a.department = $%d", argIdx)
		args = append(args, filter.Department)
		argIdx++
	}
	if filter.Period != "" {
		baseWhere += fmt.Sprintf(" AND a.time_period = $%d", argIdx)
		args = append(args, string(filter.Period))
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT a.id, a.employee_id, a.employee_name, a.department, a.date, a.thai_date,
			   a.time_period, a.status, a.ot, a.created_at,
			   e.employee_code
		FROM attendance a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE %s
		ORDER BY a.date ASC,
			CASE a.time_period WHEN 'morning' THEN 1 WHEN 'afternoon' THEN 2 ELSE 99 END,
			a.department ASC,
			a.employee_name ASC
	`, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// DeleteByEmployee implements attendance.Repository.
func (a *attendanceRepository) DeleteByEmployee(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, a.db)

	if _, err := q.Exec(ctx, `DELETE FROM attendance WHERE employee_id = $1`, employeeID); err != nil {
		return fmt.Errorf("failed to delete attendance of employee: %w", err)
	}

	return nil
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanRecords(rows rowScanner) ([]attendance.Record, error) {
	var recs []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		var period, status string
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.EmployeeName, &rec.Department, &rec.Date, &rec.ThaiDate,
			&period, &status, &rec.OT, &rec.CreatedAt,
			&rec.EmployeeCode,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		rec.Period = attendance.Period(period)
		rec.Status = attendance.Status(status)
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return recs, nil
}
