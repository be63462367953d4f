package attendance

import (
	"fmt"

	"github.com/officetrack/attendance-backend-go/internal/pkg/validator"
)

type SaveRow struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Department   string `json:"department"`
	Status       Status `json:"status"`
	OT           bool   `json:"ot"`
}

// SaveRequest is one whole capture batch for a (date, department, period).
// Confirmed models the explicit yes/no decision point the UI shows before a
// save is allowed to reach the store.
type SaveRequest struct {
	Date       string    `json:"date"`
	Department string    `json:"department"`
	Period     Period    `json:"period"`
	Confirmed  bool      `json:"confirmed"`
	Rows       []SaveRow `json:"rows"`
}

func (r *SaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}

	if !r.Period.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: "period must be morning or afternoon",
		})
	}

	if len(r.Rows) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "rows",
			Message: "roster is empty, nothing to save",
		})
	}

	for i, row := range r.Rows {
		if validator.IsEmpty(row.EmployeeID) {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("rows[%d].employee_id", i),
				Message: "employee_id is required",
			})
		}
		if !row.Status.Valid() {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("rows[%d].status", i),
				Message: "every row must have a selected status",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EditRow struct {
	RecordID string `json:"record_id"`
	Status   Status `json:"status"`
	OT       bool   `json:"ot"`
}

// CommitEditsRequest mutates previously saved records, one update per record
// id. It is only accepted together with a live edit capability token.
type CommitEditsRequest struct {
	EditToken string    `json:"edit_token"`
	Period    Period    `json:"period"`
	Rows      []EditRow `json:"rows"`
}

func (r *CommitEditsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EditToken) {
		errs = append(errs, validator.ValidationError{
			Field:   "edit_token",
			Message: "edit_token is required",
		})
	}

	if !r.Period.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: "period must be morning or afternoon",
		})
	}

	if len(r.Rows) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "rows",
			Message: "no rows to update",
		})
	}

	for i, row := range r.Rows {
		if validator.IsEmpty(row.RecordID) {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("rows[%d].record_id", i),
				Message: "record_id is required",
			})
		}
		if !row.Status.Valid() {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("rows[%d].status", i),
				Message: "every row must have a selected status",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SaveResponse struct {
	Inserted int `json:"inserted"`
}

type CommitEditsResponse struct {
	Updated int `json:"updated"`
}

type EditAccessResponse struct {
	EditToken string `json:"edit_token"`
	ExpiresIn int    `json:"expires_in"`
}
