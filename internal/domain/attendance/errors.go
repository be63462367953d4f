package attendance

import "errors"

// Attendance domain errors
var (
	// Capture errors
	ErrDepartmentRequired   = errors.New("department must be selected")
	ErrNoEmployeesFound     = errors.New("no employees found for this department")
	ErrConfirmationRequired = errors.New("save must be explicitly confirmed")
	ErrAlreadySubmitted     = errors.New("attendance already submitted for this date, department and period")

	// Edit-gate errors
	ErrPasswordRequired       = errors.New("password is required to edit attendance")
	ErrReauthenticationFailed = errors.New("re-authentication failed")
	ErrEditCapabilityRequired = errors.New("a valid edit capability token is required")
	ErrNoRecordsFound         = errors.New("no attendance records found for this selection")
	ErrRecordNotFound         = errors.New("attendance record not found")
)
