package employee

import (
	"github.com/officetrack/attendance-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	EmployeeCode string `json:"employee_code"`
	FullName     string `json:"full_name"`
	Department   string `json:"department"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code is required",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if !ValidDepartment(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department must be one of the known departments",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TransferRequest struct {
	Department string `json:"department"`
}

func (r *TransferRequest) Validate() error {
	var errs validator.ValidationErrors

	if !ValidDepartment(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department must be one of the known departments",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Response struct {
	ID              string `json:"id"`
	EmployeeCode    string `json:"employee_code"`
	FullName        string `json:"full_name"`
	Department      string `json:"department"`
	DepartmentLabel string `json:"department_label"`
}

func ToResponse(e Employee) Response {
	return Response{
		ID:              e.ID,
		EmployeeCode:    e.EmployeeCode,
		FullName:        e.FullName,
		Department:      e.Department,
		DepartmentLabel: DepartmentLabel(e.Department),
	}
}
