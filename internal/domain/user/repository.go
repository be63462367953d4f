package user

import (
	"context"
)

type Repository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	Create(ctx context.Context, u User) (User, error)
	RecordLogin(ctx context.Context, event LoginEvent) error
}
