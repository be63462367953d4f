package report

import (
	"github.com/officetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/officetrack/attendance-backend-go/internal/pkg/validator"
)

type SummaryRequest struct {
	Date       string `json:"date"`
	Period     string `json:"period"`
	Department string `json:"department"`
}

func (r *SummaryRequest) Validate() error {
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

	if r.Period != "" && r.Period != "all" && !attendance.Period(r.Period).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: "period must be morning, afternoon or all",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SummaryResponse is the on-screen summary plus the label/value pairs the
// chart widget consumes.
type SummaryResponse struct {
	Date        string             `json:"date"`
	Counter     attendance.Counter `json:"counter"`
	ChartLabels []string           `json:"chart_labels"`
	ChartValues []int              `json:"chart_values"`
	Rows        []DetailRow        `json:"rows"`
}

// DetailRow is one display row of the history table and the export detail
// sheets, with all labels already resolved to Thai.
type DetailRow struct {
	Date         string `json:"date"`
	Period       string `json:"period"`
	Department   string `json:"department"`
	EmployeeCode string `json:"employee_code"`
	EmployeeName string `json:"employee_name"`
	Status       string `json:"status"`
	OT           string `json:"ot"`
}

type ExportDayRequest struct {
	Date       string `json:"date"`
	Period     string `json:"period"`
	Department string `json:"department"`
}

func (r *ExportDayRequest) Validate() error {
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

	if r.Period != "" && r.Period != "all" && !attendance.Period(r.Period).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: "period must be morning, afternoon or all",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ExportMonthRequest struct {
	Month      string `json:"month"` // YYYY-MM
	Department string `json:"department"`
}

func (r *ExportMonthRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month is required",
		})
	} else if _, ok := validator.IsValidYearMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
