package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/officetrack/attendance-backend-go/internal/domain/user"
	"github.com/officetrack/attendance-backend-go/internal/pkg/database"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.Repository {
	return &userRepository{db: db}
}

// GetByEmail implements user.Repository.
func (u *userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, email, password_hash, created_at
		FROM users
		WHERE email = $1
	`

	var usr user.User
	err := q.QueryRow(ctx, query, email).Scan(&usr.ID, &usr.Email, &usr.PasswordHash, &usr.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return usr, nil
}

// Create implements user.Repository.
func (u *userRepository) Create(ctx context.Context, usr user.User) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, usr.Email, usr.PasswordHash).Scan(&usr.ID, &usr.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.User{}, user.ErrEmailExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return usr, nil
}

// RecordLogin implements user.Repository.
func (u *userRepository) RecordLogin(ctx context.Context, event user.LoginEvent) error {
	q := GetQuerier(ctx, u.db)

	query := `
		INSERT INTO user_logins (email, login_date, login_time)
		VALUES ($1, $2, $3)
	`

	if _, err := q.Exec(ctx, query, event.Email, event.LoginDate, event.LoginTime); err != nil {
		return fmt.Errorf("failed to record login: %w", err)
	}

	return nil
}
