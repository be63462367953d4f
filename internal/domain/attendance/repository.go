package attendance

import (
	"context"
)

// Filter narrows attendance queries. Zero values mean "no filter" except
// Date, which is always required by the callers that use it.
type Filter struct {
	Date       string
	StartDate  string
	EndDate    string
	Department string
	Period     Period
}

// Repository defines data access for attendance records. The duplicate check
// here is a fast-fail only; the real uniqueness guarantee is the
// (employee_id, date, time_period) constraint in the store.
type Repository interface {
	// CountBatch counts records already saved for a (date, department, period).
	CountBatch(ctx context.Context, date, department string, period Period) (int64, error)

	// InsertBatch inserts a whole capture batch in one statement. Partial
	// batches never reach the store.
	InsertBatch(ctx context.Context, recs []Record) (int, error)

	// ListForEdit returns saved records joined with the employee code,
	// ordered by employee name ascending.
	ListForEdit(ctx context.Context, date, department string, period Period) ([]Record, error)

	// UpdateStatus patches status and overtime on one record by id.
	UpdateStatus(ctx context.Context, recordID string, status Status, ot bool) error

	// ListFiltered returns records matching the filter, ordered by date,
	// period, department, then employee name.
	ListFiltered(ctx context.Context, filter Filter) ([]Record, error)

	// DeleteByEmployee removes all records of one employee. Used when the
	// directory removes the employee itself.
	DeleteByEmployee(ctx context.Context, employeeID string) error
}
