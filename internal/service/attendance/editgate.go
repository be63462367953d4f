package attendance

import (
	"context"
	"fmt"

	"github.com/officetrack/attendance-backend-go/internal/domain/attendance"
)

// RequestEditAccess implements attendance.Service. Every edit session starts
// here: the already signed-in account re-enters its password and gets a
// short-lived capability token back. Nothing is cached between sessions.
func (a *AttendanceServiceImpl) RequestEditAccess(ctx context.Context, password string) (attendance.EditAccessResponse, error) {
	userID, email, err := currentUserFromContext(ctx)
	if err != nil {
		return attendance.EditAccessResponse{}, err
	}

	if password == "" {
		return attendance.EditAccessResponse{}, attendance.ErrPasswordRequired
	}

	if err := a.authService.Reauthenticate(ctx, email, password); err != nil {
		return attendance.EditAccessResponse{}, attendance.ErrReauthenticationFailed
	}

	token, expiresIn, err := a.jwtService.GenerateEditToken(userID, email)
	if err != nil {
		return attendance.EditAccessResponse{}, fmt.Errorf("failed to issue edit token: %w", err)
	}

	return attendance.EditAccessResponse{
		EditToken: token,
		ExpiresIn: expiresIn,
	}, nil
}

// LoadEditableRows implements attendance.Service. An empty result is its own
// condition, distinct from a query error, so the caller can tell "nothing
// recorded for this selection" apart from a backend failure.
func (a *AttendanceServiceImpl) LoadEditableRows(ctx context.Context, date, department string, period attendance.Period) ([]attendance.RosterRow, error) {
	if date == "" || department == "" {
		return nil, attendance.ErrDepartmentRequired
	}
	if !period.Valid() {
		period = attendance.PeriodMorning
	}

	recs, err := a.attendanceRepo.ListForEdit(ctx, date, department, period)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance records: %w", err)
	}
	if len(recs) == 0 {
		return nil, attendance.ErrNoRecordsFound
	}

	rows := make([]attendance.RosterRow, 0, len(recs))
	for _, rec := range recs {
		status := rec.Status
		code := "-"
		if rec.EmployeeCode != nil {
			code = *rec.EmployeeCode
		}
		rows = append(rows, attendance.RosterRow{
			RecordID:     rec.ID,
			EmployeeID:   rec.EmployeeID,
			EmployeeCode: code,
			EmployeeName: rec.EmployeeName,
			Department:   rec.Department,
			Status:       &status,
			OT:           rec.OT,
			OTEnabled:    attendance.OTEligible(rec.Status, rec.Period),
		})
	}

	return rows, nil
}

// CommitEdits implements attendance.Service. Updates run one row at a time
// in request order; the first store error aborts the rest. Already applied
// rows are not rolled back: each update is an idempotent status/overtime
// pair, so re-running the commit converges.
func (a *AttendanceServiceImpl) CommitEdits(ctx context.Context, req attendance.CommitEditsRequest) (attendance.CommitEditsResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CommitEditsResponse{}, err
	}

	if _, err := a.jwtService.ValidateEditToken(req.EditToken); err != nil {
		return attendance.CommitEditsResponse{}, attendance.ErrEditCapabilityRequired
	}

	updated := 0
	for _, row := range req.Rows {
		ot := attendance.OTEligible(row.Status, req.Period) && row.OT
		if err := a.attendanceRepo.UpdateStatus(ctx, row.RecordID, row.Status, ot); err != nil {
			return attendance.CommitEditsResponse{Updated: updated},
				fmt.Errorf("failed to update record %s: %w", row.RecordID, err)
		}
		updated++
	}

	return attendance.CommitEditsResponse{Updated: updated}, nil
}
