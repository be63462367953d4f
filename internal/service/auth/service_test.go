package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/officetrack/attendance-backend-go/internal/domain/auth"
	"github.com/officetrack/attendance-backend-go/internal/domain/user"
	"github.com/officetrack/attendance-backend-go/internal/pkg/jwt"
	"github.com/officetrack/attendance-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users       map[string]user.User
	logins      []user.LoginEvent
	recordErr   error
	createCalls int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]user.User)}
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	u, ok := f.users[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	f.createCalls++
	if _, exists := f.users[u.Email]; exists {
		return user.User{}, user.ErrEmailExists
	}
	u.ID = "user-1"
	f.users[u.Email] = u
	return u, nil
}

func (f *fakeUserRepo) RecordLogin(ctx context.Context, event user.LoginEvent) error {
	if f.recordErr != nil {
		return f.recordErr
	}
	f.logins = append(f.logins, event)
	return nil
}

func newTestAuthService(repo *fakeUserRepo) auth.Service {
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewAuthService(repo, jwtService, logger)
}

func addUser(t *testing.T, repo *fakeUserRepo, email, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	hashed := string(hash)
	repo.users[email] = user.User{ID: "user-1", Email: email, PasswordHash: &hashed}
}

func TestLoginSuccess(t *testing.T) {
	repo := newFakeUserRepo()
	addUser(t, repo, "admin1@gmail.com", "password123")
	svc := newTestAuthService(repo)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{Email: "admin1@gmail.com", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Greater(t, resp.AccessTokenExpiresIn, int64(0))

	// Login audit row written.
	require.Len(t, repo.logins, 1)
	assert.Equal(t, "admin1@gmail.com", repo.logins[0].Email)
}

func TestLoginInvalidPassword(t *testing.T) {
	repo := newFakeUserRepo()
	addUser(t, repo, "admin1@gmail.com", "password123")
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "admin1@gmail.com", Password: "wrong"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "nobody@gmail.com", Password: "password123"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRegisterValidationRules(t *testing.T) {
	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"thai email", "ผู้ใช้@gmail.com", "password123"},
		{"wrong domain", "somsak@example.com", "password123"},
		{"short local part", "abc@gmail.com", "password123"},
		{"thai password", "somsak01@gmail.com", "รหัสผ่าน123"},
		{"symbol password", "somsak01@gmail.com", "pass-word!"},
		{"short password", "somsak01@gmail.com", "ab1"},
	}

	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := svc.Register(context.Background(), auth.RegisterRequest{Email: c.email, Password: c.password})
			var verrs validator.ValidationErrors
			assert.ErrorAs(t, err, &verrs)
		})
	}
	assert.Zero(t, repo.createCalls, "invalid registrations never reach the store")
}

func TestRegisterSuccessAndDuplicate(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	err := svc.Register(context.Background(), auth.RegisterRequest{Email: "somsak01@gmail.com", Password: "password123"})
	require.NoError(t, err)

	stored := repo.users["somsak01@gmail.com"]
	require.NotNil(t, stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*stored.PasswordHash), []byte("password123")))

	err = svc.Register(context.Background(), auth.RegisterRequest{Email: "somsak01@gmail.com", Password: "password123"})
	assert.ErrorIs(t, err, auth.ErrEmailAlreadyInUse)
}

func TestLoginSurvivesAuditFailure(t *testing.T) {
	repo := newFakeUserRepo()
	addUser(t, repo, "admin1@gmail.com", "password123")
	repo.recordErr = assert.AnError
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "admin1@gmail.com", Password: "password123"})
	assert.NoError(t, err)
}

func TestReauthenticate(t *testing.T) {
	repo := newFakeUserRepo()
	addUser(t, repo, "admin1@gmail.com", "password123")
	svc := newTestAuthService(repo)

	assert.NoError(t, svc.Reauthenticate(context.Background(), "admin1@gmail.com", "password123"))
	assert.ErrorIs(t, svc.Reauthenticate(context.Background(), "admin1@gmail.com", "wrong"), auth.ErrInvalidCredentials)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	repo := newFakeUserRepo()
	addUser(t, repo, "admin1@gmail.com", "password123")
	svc := newTestAuthService(repo)

	first, err := svc.Login(context.Background(), auth.LoginRequest{Email: "admin1@gmail.com", Password: "password123"})
	require.NoError(t, err)

	second, err := svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: first.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, second.AccessToken)

	_, err = svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: first.AccessToken})
	assert.ErrorIs(t, err, auth.ErrInvalidToken, "access token must not pass as refresh token")
}
