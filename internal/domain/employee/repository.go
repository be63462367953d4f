package employee

import (
	"context"
)

type Repository interface {
	// ListByDepartment returns employees of one department ordered by
	// employee code ascending.
	ListByDepartment(ctx context.Context, department string) ([]Employee, error)

	GetByID(ctx context.Context, id string) (Employee, error)
	Create(ctx context.Context, emp Employee) (Employee, error)
	UpdateDepartment(ctx context.Context, id string, department string) error
	Delete(ctx context.Context, id string) error
}
