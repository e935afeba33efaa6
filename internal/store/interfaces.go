package store

import (
	"context"

	"github.com/MKhiriev/taskflow/models"
	"github.com/google/uuid"
)

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns the stored record with
	// server-assigned fields populated. A duplicate email yields
	// [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks an account up by its unique email.
	// Returns [ErrNoUserWasFound] when no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks an account up by its identifier.
	// Returns [ErrNoUserWasFound] when no account matches.
	FindUserByID(ctx context.Context, userID uuid.UUID) (models.User, error)

	// UpdateUser applies the name and password hash of user to the stored
	// record identified by user.UserID and returns the updated record.
	UpdateUser(ctx context.Context, user models.User) (models.User, error)

	// DeleteUserWithTasks removes the user and every task they own inside
	// a single transaction, so the cascade is never partially visible.
	DeleteUserWithTasks(ctx context.Context, userID uuid.UUID) error
}

// TaskRepository is the data-access contract for tasks. Every method that
// targets an existing task is scoped by both the task ID and the owner ID;
// an absent task and a task owned by someone else are indistinguishable and
// both yield [ErrTaskNotFound].
type TaskRepository interface {
	// CreateTask persists a new task and returns the stored record.
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)

	// ListTasksByOwner returns every task owned by ownerID ordered by
	// creation time, newest first.
	ListTasksByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Task, error)

	// FindTaskByIDAndOwner resolves a single task scoped to its owner.
	FindTaskByIDAndOwner(ctx context.Context, taskID, ownerID uuid.UUID) (models.Task, error)

	// SetTaskStatus updates the completion flag of an owner-scoped task
	// and returns the updated record.
	SetTaskStatus(ctx context.Context, taskID, ownerID uuid.UUID, isDone bool) (models.Task, error)

	// SetTaskTitle updates the title of an owner-scoped task and returns
	// the updated record.
	SetTaskTitle(ctx context.Context, taskID, ownerID uuid.UUID, title string) (models.Task, error)

	// SetTaskDueDate updates or clears (nil) the due date of an
	// owner-scoped task and returns the updated record.
	SetTaskDueDate(ctx context.Context, taskID, ownerID uuid.UUID, dueDate *models.Date) (models.Task, error)

	// DeleteTask permanently removes an owner-scoped task.
	DeleteTask(ctx context.Context, taskID, ownerID uuid.UUID) error
}
