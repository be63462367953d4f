package employee

import (
	"context"
)

// Service manages the employee directory. All operations are admin-gated at
// the transport layer.
type Service interface {
	List(ctx context.Context, department string) ([]Response, error)
	Create(ctx context.Context, req CreateRequest) (Response, error)
	Transfer(ctx context.Context, id string, req TransferRequest) (Response, error)

	// Delete removes the employee and every attendance record captured for
	// them, atomically.
	Delete(ctx context.Context, id string) error
}
