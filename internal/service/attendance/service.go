package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/officetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/officetrack/attendance-backend-go/internal/domain/auth"
	"github.com/officetrack/attendance-backend-go/internal/domain/employee"
	"github.com/officetrack/attendance-backend-go/internal/pkg/jwt"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.Repository
	employeeRepo   employee.Repository
	authService    auth.Service
	jwtService     jwt.Service
}

func NewAttendanceService(
	attendanceRepo attendance.Repository,
	employeeRepo employee.Repository,
	authService auth.Service,
	jwtService jwt.Service,
) attendance.Service {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		authService:    authService,
		jwtService:     jwtService,
	}
}

// currentUserFromContext extracts the signed-in account from access-token claims.
func currentUserFromContext(ctx context.Context) (userID string, email string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", auth.ErrNoSession
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", auth.ErrNoSession
	}
	email, ok = claims["email"].(string)
	if !ok || email == "" {
		return "", "", auth.ErrNoSession
	}

	return userID, email, nil
}

// formatThaiDate renders a date the way the office reads it: DD/MM/YYYY with
// the year in the Buddhist era.
func formatThaiDate(t time.Time) string {
	return fmt.Sprintf("%02d/%02d/%d", t.Day(), int(t.Month()), t.Year()+543)
}

// LoadRoster implements attendance.Service. Rows come back without a status;
// the overtime control starts disabled and only unlocks once a status makes
// the row eligible.
func (a *AttendanceServiceImpl) LoadRoster(ctx context.Context, department string, period attendance.Period) ([]attendance.RosterRow, error) {
	if department == "" {
		return nil, attendance.ErrDepartmentRequired
	}
	if !period.Valid() {
		period = attendance.PeriodMorning
	}

	emps, err := a.employeeRepo.ListByDepartment(ctx, department)
	if err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}
	if len(emps) == 0 {
		return nil, attendance.ErrNoEmployeesFound
	}

	rows := make([]attendance.RosterRow, 0, len(emps))
	for _, emp := range emps {
		rows = append(rows, attendance.RosterRow{
			EmployeeID:   emp.ID,
			EmployeeCode: emp.EmployeeCode,
			EmployeeName: emp.FullName,
			Department:   emp.Department,
			OT:           false,
			OTEnabled:    false, // no status selected yet
		})
	}

	return rows, nil
}

// Save implements attendance.Service. One capture batch per (date,
// department, period): validated, confirmed, checked against prior
// submission, then inserted in a single statement.
func (a *AttendanceServiceImpl) Save(ctx context.Context, req attendance.SaveRequest) (attendance.SaveResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SaveResponse{}, err
	}

	if !req.Confirmed {
		return attendance.SaveResponse{}, attendance.ErrConfirmationRequired
	}

	existing, err := a.attendanceRepo.CountBatch(ctx, req.Date, req.Department, req.Period)
	if err != nil {
		return attendance.SaveResponse{}, fmt.Errorf("failed to check for prior submission: %w", err)
	}
	if existing > 0 {
		return attendance.SaveResponse{}, attendance.ErrAlreadySubmitted
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return attendance.SaveResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	recs := make([]attendance.Record, 0, len(req.Rows))
	for _, row := range req.Rows {
		recs = append(recs, attendance.Record{
			EmployeeID:   row.EmployeeID,
			EmployeeName: row.EmployeeName,
			Department:   row.Department,
			Date:         date,
			ThaiDate:     formatThaiDate(date),
			Period:       req.Period,
			Status:       row.Status,
			// A stale flag from the client never survives an ineligible row.
			OT: attendance.OTEligible(row.Status, req.Period) && row.OT,
		})
	}

	inserted, err := a.attendanceRepo.InsertBatch(ctx, recs)
	if err != nil {
		return attendance.SaveResponse{}, fmt.Errorf("failed to save attendance batch: %w", err)
	}

	return attendance.SaveResponse{Inserted: inserted}, nil
}
