package attendance

import (
	"time"
)

// Record is one persisted attendance entry: one employee, one calendar day,
// one period. The employee name and department are denormalized at capture
// time so history survives later transfers.
type Record struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	Department   string
	Date         time.Time
	ThaiDate     string
	Period       Period
	Status       Status
	OT           bool
	CreatedAt    time.Time

	// Joined for display
	EmployeeCode *string
}

// RosterRow is the ephemeral row a capture or edit session works on. In
// capture mode RecordID is empty and Status unset; in edit mode both carry
// the previously saved values.
type RosterRow struct {
	RecordID     string  `json:"record_id,omitempty"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeCode string  `json:"employee_code"`
	EmployeeName string  `json:"employee_name"`
	Department   string  `json:"department"`
	Status       *Status `json:"status,omitempty"`
	OT           bool    `json:"ot"`
	OTEnabled    bool    `json:"ot_enabled"`
}
