package service

import (
	"context"

	"github.com/MKhiriev/taskflow/models"
	"github.com/google/uuid"
)

// AuthService covers the account lifecycle (registration, login, profile
// updates, deletion) and the session-token lifecycle (issue, verify).
type AuthService interface {
	// Register validates the registration input, hashes the password and
	// persists a new account.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login authenticates an existing account by email and password.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// GetUserByID resolves an account by its identifier.
	GetUserByID(ctx context.Context, userID uuid.UUID) (models.User, error)

	// UpdateProfile applies the display name and, when requested, a
	// password change guarded by the current password.
	UpdateProfile(ctx context.Context, userID uuid.UUID, req models.UpdateProfileRequest) (models.User, error)

	// DeleteAccount removes the account and every task it owns.
	DeleteAccount(ctx context.Context, userID uuid.UUID) error

	// CreateToken issues a signed session token for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw session-token string and resolves the
	// embedded identity.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// TaskService covers every task operation. All operations are scoped to the
// owner resolved by the session middleware; ownership is re-verified on
// every call.
type TaskService interface {
	ListTasks(ctx context.Context, ownerID uuid.UUID) ([]models.Task, error)
	CreateTask(ctx context.Context, ownerID uuid.UUID, req models.CreateTaskRequest) (models.Task, error)
	ToggleStatus(ctx context.Context, ownerID, taskID uuid.UUID, isDone bool) (models.Task, error)
	UpdateTitle(ctx context.Context, ownerID, taskID uuid.UUID, title string) (models.Task, error)
	UpdateDueDate(ctx context.Context, ownerID, taskID uuid.UUID, dueDate *models.Date) (models.Task, error)
	DeleteTask(ctx context.Context, ownerID, taskID uuid.UUID) error
}
