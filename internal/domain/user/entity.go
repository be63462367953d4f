package user

import (
	"time"
)

type User struct {
	ID           string
	Email        string
	PasswordHash *string
	CreatedAt    time.Time
}

// LoginEvent is one row of the login audit trail. Recording it must never
// block a login; failures are only logged.
type LoginEvent struct {
	Email     string
	LoginDate string
	LoginTime string
}
