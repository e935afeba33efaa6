// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/taskflow/internal/logger"
	"github.com/MKhiriev/taskflow/internal/store"
	"github.com/MKhiriev/taskflow/internal/validators"
	"github.com/MKhiriev/taskflow/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn          func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFn     func(ctx context.Context, email string) (models.User, error)
	findUserByIDFn        func(ctx context.Context, userID uuid.UUID) (models.User, error)
	updateUserFn          func(ctx context.Context, user models.User) (models.User, error)
	deleteUserWithTasksFn func(ctx context.Context, userID uuid.UUID) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findUserByEmailFn != nil {
		return m.findUserByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID uuid.UUID) (models.User, error) {
	if m.findUserByIDFn != nil {
		return m.findUserByIDFn(ctx, userID)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.updateUserFn != nil {
		return m.updateUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) DeleteUserWithTasks(ctx context.Context, userID uuid.UUID) error {
	if m.deleteUserWithTasksFn != nil {
		return m.deleteUserWithTasksFn(ctx, userID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Helper
// ─────────────────────────────────────────────

func newTestAuthService(repo *mockUserRepository) *authService {
	return &authService{
		userRepository: repo,
		validator:      validators.NewRequestValidator(),
		tokenSignKey:   "test-sign-key",
		tokenIssuer:    "taskflow-test",
		tokenDuration:  time.Hour,
		logger:         logger.Nop(),
	}
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

// ─────────────────────────────────────────────
// Register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			user.UserID = uuid.New()
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:    "john@example.com",
		Password: "longenough",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.UserID)
	assert.Equal(t, "john@example.com", user.Email)
	// the stored hash must verify against the original password
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("longenough")))
}

func TestRegister_InvalidEmail(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:    "not-an-email",
		Password: "longenough",
	})

	require.ErrorIs(t, err, validators.ErrInvalidEmail)
}

func TestRegister_PasswordBoundary(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "seven characters rejected", password: "1234567", wantErr: validators.ErrPasswordTooShort},
		{name: "eight characters accepted", password: "12345678", wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestAuthService(&mockUserRepository{})

			_, err := svc.Register(context.Background(), models.RegisterRequest{
				Email:    "john@example.com",
				Password: tt.password,
			})

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestRegister_EmailTaken(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:    "taken@example.com",
		Password: "longenough",
	})

	require.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestRegister_DoesNotStorePlaintext(t *testing.T) {
	var persisted models.User
	repo := &mockUserRepository{
		createUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			persisted = user
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:    "john@example.com",
		Password: "longenough",
	})

	require.NoError(t, err)
	assert.NotEqual(t, "longenough", persisted.PasswordHash)
	assert.NotEmpty(t, persisted.PasswordHash)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	stored := models.User{
		UserID:       uuid.New(),
		Email:        "john@example.com",
		PasswordHash: mustHash(t, "longenough"),
		Name:         "John",
	}
	repo := &mockUserRepository{
		findUserByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return stored, nil
		},
	}
	svc := newTestAuthService(repo)

	user, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "john@example.com",
		Password: "longenough",
	})

	require.NoError(t, err)
	assert.Equal(t, stored.UserID, user.UserID)
}

func TestLogin_MissingCredentials(t *testing.T) {
	tests := []struct {
		name string
		req  models.LoginRequest
	}{
		{name: "empty email", req: models.LoginRequest{Password: "longenough"}},
		{name: "empty password", req: models.LoginRequest{Email: "john@example.com"}},
		{name: "both empty", req: models.LoginRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestAuthService(&mockUserRepository{})

			_, err := svc.Login(context.Background(), tt.req)
			require.ErrorIs(t, err, ErrMissingCredentials)
		})
	}
}

func TestLogin_UnknownEmailAndWrongPasswordShareError(t *testing.T) {
	// unknown email
	repoUnknown := &mockUserRepository{
		findUserByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	_, errUnknown := newTestAuthService(repoUnknown).Login(context.Background(), models.LoginRequest{
		Email:    "absent@example.com",
		Password: "longenough",
	})
	require.ErrorIs(t, errUnknown, ErrInvalidCredentials)

	// wrong password
	repoWrongPassword := &mockUserRepository{
		findUserByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{PasswordHash: mustHash(t, "different")}, nil
		},
	}
	_, errWrongPassword := newTestAuthService(repoWrongPassword).Login(context.Background(), models.LoginRequest{
		Email:    "john@example.com",
		Password: "longenough",
	})
	require.ErrorIs(t, errWrongPassword, ErrInvalidCredentials)

	// the two failures must be indistinguishable to the caller
	assert.Equal(t, errUnknown, errWrongPassword)
}

// ─────────────────────────────────────────────
// UpdateProfile
// ─────────────────────────────────────────────

func TestUpdateProfile_NameOnly(t *testing.T) {
	stored := models.User{
		UserID:       uuid.New(),
		Email:        "john@example.com",
		PasswordHash: mustHash(t, "longenough"),
		Name:         "John",
	}
	var persisted models.User
	repo := &mockUserRepository{
		findUserByIDFn: func(ctx context.Context, userID uuid.UUID) (models.User, error) {
			return stored, nil
		},
		updateUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			persisted = user
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	updated, err := svc.UpdateProfile(context.Background(), stored.UserID, models.UpdateProfileRequest{
		Name: "Johnny",
	})

	require.NoError(t, err)
	assert.Equal(t, "Johnny", updated.Name)
	// password hash must remain untouched when no new password was supplied
	assert.Equal(t, stored.PasswordHash, persisted.PasswordHash)
}

func TestUpdateProfile_PasswordChange(t *testing.T) {
	stored := models.User{
		UserID:       uuid.New(),
		PasswordHash: mustHash(t, "oldpassword"),
	}
	var persisted models.User
	repo := &mockUserRepository{
		findUserByIDFn: func(ctx context.Context, userID uuid.UUID) (models.User, error) {
			return stored, nil
		},
		updateUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			persisted = user
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.UpdateProfile(context.Background(), stored.UserID, models.UpdateProfileRequest{
		CurrentPassword: "oldpassword",
		NewPassword:     "newpassword",
	})

	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(persisted.PasswordHash), []byte("newpassword")))
}

func TestUpdateProfile_WrongCurrentPassword(t *testing.T) {
	stored := models.User{
		UserID:       uuid.New(),
		PasswordHash: mustHash(t, "oldpassword"),
	}
	updateCalled := false
	repo := &mockUserRepository{
		findUserByIDFn: func(ctx context.Context, userID uuid.UUID) (models.User, error) {
			return stored, nil
		},
		updateUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			updateCalled = true
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.UpdateProfile(context.Background(), stored.UserID, models.UpdateProfileRequest{
		CurrentPassword: "not-the-password",
		NewPassword:     "newpassword",
	})

	require.ErrorIs(t, err, ErrWrongCurrentPassword)
	assert.False(t, updateCalled, "stored record must stay untouched on current-password mismatch")
}

func TestUpdateProfile_NewPasswordTooShort(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.UpdateProfile(context.Background(), uuid.New(), models.UpdateProfileRequest{
		CurrentPassword: "oldpassword",
		NewPassword:     "short",
	})

	require.ErrorIs(t, err, validators.ErrPasswordTooShort)
}

// ─────────────────────────────────────────────
// DeleteAccount
// ─────────────────────────────────────────────

func TestDeleteAccount_Success(t *testing.T) {
	var deletedID uuid.UUID
	repo := &mockUserRepository{
		deleteUserWithTasksFn: func(ctx context.Context, userID uuid.UUID) error {
			deletedID = userID
			return nil
		},
	}
	svc := newTestAuthService(repo)

	userID := uuid.New()
	require.NoError(t, svc.DeleteAccount(context.Background(), userID))
	assert.Equal(t, userID, deletedID)
}

func TestDeleteAccount_RepositoryError(t *testing.T) {
	repo := &mockUserRepository{
		deleteUserWithTasksFn: func(ctx context.Context, userID uuid.UUID) error {
			return errors.New("db is down")
		},
	}
	svc := newTestAuthService(repo)

	err := svc.DeleteAccount(context.Background(), uuid.New())
	require.Error(t, err)
}

// ─────────────────────────────────────────────
// Tokens
// ─────────────────────────────────────────────

func TestCreateToken_ParseToken_RoundTrip(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})
	user := models.User{UserID: uuid.New()}

	token, err := svc.CreateToken(context.Background(), user)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, parsed.UserID)
}

func TestParseToken_WrongIssuer(t *testing.T) {
	issuing := newTestAuthService(&mockUserRepository{})
	issuing.tokenIssuer = "someone-else"

	token, err := issuing.CreateToken(context.Background(), models.User{UserID: uuid.New()})
	require.NoError(t, err)

	verifying := newTestAuthService(&mockUserRepository{})
	_, err = verifying.ParseToken(context.Background(), token.SignedString)
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestParseToken_Expired(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})
	svc.tokenDuration = -time.Minute

	token, err := svc.CreateToken(context.Background(), models.User{UserID: uuid.New()})
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), token.SignedString)
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestParseToken_Garbage(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.ParseToken(context.Background(), "not.a.token")
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
