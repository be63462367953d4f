package auth

import (
	"context"
)

type Service interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Register(ctx context.Context, req RegisterRequest) error
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (TokenResponse, error)

	// Reauthenticate re-checks the password of an already signed-in account.
	// Used by the attendance edit gate before any mutation is allowed.
	Reauthenticate(ctx context.Context, email, password string) error
}
