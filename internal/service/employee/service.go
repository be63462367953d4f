package employee

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/officetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/officetrack/attendance-backend-go/internal/domain/employee"
	"github.com/officetrack/attendance-backend-go/internal/pkg/database"
	"github.com/officetrack/attendance-backend-go/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	db             *database.DB
	employeeRepo   employee.Repository
	attendanceRepo attendance.Repository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.Repository,
	attendanceRepo attendance.Repository,
) employee.Service {
	return &EmployeeServiceImpl{
		db:             db,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
	}
}

// List implements employee.Service.
func (e *EmployeeServiceImpl) List(ctx context.Context, department string) ([]employee.Response, error) {
	if !employee.ValidDepartment(department) {
		return nil, employee.ErrInvalidDepartment
	}

	emps, err := e.employeeRepo.ListByDepartment(ctx, department)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.Response, 0, len(emps))
	for _, emp := range emps {
		responses = append(responses, employee.ToResponse(emp))
	}
	return responses, nil
}

// Create implements employee.Service.
func (e *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateRequest) (employee.Response, error) {
	if err := req.Validate(); err != nil {
		return employee.Response{}, err
	}

	created, err := e.employeeRepo.Create(ctx, employee.Employee{
		EmployeeCode: req.EmployeeCode,
		FullName:     req.FullName,
		Department:   req.Department,
	})
	if err != nil {
		return employee.Response{}, err
	}
	return employee.ToResponse(created), nil
}

// Transfer implements employee.Service. Past attendance rows keep the
// department they were captured under.
func (e *EmployeeServiceImpl) Transfer(ctx context.Context, id string, req employee.TransferRequest) (employee.Response, error) {
	if err := req.Validate(); err != nil {
		return employee.Response{}, err
	}

	emp, err := e.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.Response{}, err
	}

	if err := e.employeeRepo.UpdateDepartment(ctx, id, req.Department); err != nil {
		return employee.Response{}, fmt.Errorf("failed to update department: %w", err)
	}

	emp.Department = req.Department
	return employee.ToResponse(emp), nil
}

// Delete implements employee.Service.
func (e *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := e.employeeRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, e.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := e.attendanceRepo.DeleteByEmployee(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete attendance records: %w", err)
		}
		if err := e.employeeRepo.Delete(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete employee: %w", err)
		}
		return nil
	})
}
