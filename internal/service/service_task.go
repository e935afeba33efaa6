package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/taskflow/internal/logger"
	"github.com/MKhiriev/taskflow/internal/store"
	"github.com/MKhiriev/taskflow/internal/validators"
	"github.com/MKhiriev/taskflow/models"
	"github.com/google/uuid"
)

// taskService is the concrete implementation of TaskService.
//
// Every operation receives the owner identity resolved by the session
// middleware and passes it straight into the repository's id+owner scoping,
// which is re-evaluated on every call — ownership is never cached from a
// prior request. Store-level ErrTaskNotFound covers both absent and
// foreign-owned tasks and flows through unchanged.
type taskService struct {
	taskRepository store.TaskRepository
	validator      validators.Validator
	logger         *logger.Logger
}

// NewTaskService constructs a TaskService wired to the given TaskRepository.
func NewTaskService(taskRepository store.TaskRepository, validator validators.Validator, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: taskRepository,
		validator:      validator,
		logger:         logger,
	}
}

// ListTasks returns every task owned by the caller, newest first.
func (t *taskService) ListTasks(ctx context.Context, ownerID uuid.UUID) ([]models.Task, error) {
	tasks, err := t.taskRepository.ListTasksByOwner(ctx, ownerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("task listing ended with error")
		return nil, fmt.Errorf("task listing ended with error: %w", err)
	}

	return tasks, nil
}

// CreateTask validates the input and persists a new task on behalf of the
// caller. Priority defaults to LOW; the owner is forced to the resolved
// caller identity regardless of any client-supplied value.
func (t *taskService) CreateTask(ctx context.Context, ownerID uuid.UUID, req models.CreateTaskRequest) (models.Task, error) {
	log := logger.FromContext(ctx)

	if err := t.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("invalid task data provided")
		return models.Task{}, err
	}

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityLow
	}

	created, err := t.taskRepository.CreateTask(ctx, models.Task{
		Title:    req.Title,
		Priority: priority,
		DueDate:  req.DueDate,
		OwnerID:  ownerID,
	})
	if err != nil {
		log.Err(err).Msg("task creation ended with error")
		return models.Task{}, fmt.Errorf("task creation ended with error: %w", err)
	}

	return created, nil
}

// ToggleStatus sets the completion flag of an owner-scoped task.
func (t *taskService) ToggleStatus(ctx context.Context, ownerID, taskID uuid.UUID, isDone bool) (models.Task, error) {
	task, err := t.taskRepository.SetTaskStatus(ctx, taskID, ownerID, isDone)
	if err != nil {
		return models.Task{}, taskMutationError(ctx, "status update", err)
	}

	return task, nil
}

// UpdateTitle sets a new non-empty title on an owner-scoped task.
func (t *taskService) UpdateTitle(ctx context.Context, ownerID, taskID uuid.UUID, title string) (models.Task, error) {
	if err := t.validator.Validate(ctx, models.UpdateTitleRequest{Title: title}); err != nil {
		logger.FromContext(ctx).Err(err).Msg("invalid task title provided")
		return models.Task{}, err
	}

	task, err := t.taskRepository.SetTaskTitle(ctx, taskID, ownerID, title)
	if err != nil {
		return models.Task{}, taskMutationError(ctx, "title update", err)
	}

	return task, nil
}

// UpdateDueDate sets or clears (nil) the due date of an owner-scoped task.
func (t *taskService) UpdateDueDate(ctx context.Context, ownerID, taskID uuid.UUID, dueDate *models.Date) (models.Task, error) {
	task, err := t.taskRepository.SetTaskDueDate(ctx, taskID, ownerID, dueDate)
	if err != nil {
		return models.Task{}, taskMutationError(ctx, "due date update", err)
	}

	return task, nil
}

// DeleteTask permanently removes an owner-scoped task.
func (t *taskService) DeleteTask(ctx context.Context, ownerID, taskID uuid.UUID) error {
	if err := t.taskRepository.DeleteTask(ctx, taskID, ownerID); err != nil {
		return taskMutationError(ctx, "deletion", err)
	}

	return nil
}

// taskMutationError logs and wraps a repository failure, passing the
// ErrTaskNotFound sentinel through unwrapped inside the chain so callers can
// still match it with errors.Is.
func taskMutationError(ctx context.Context, operation string, err error) error {
	logger.FromContext(ctx).Err(err).Str("operation", operation).Msg("task mutation ended with error")
	return fmt.Errorf("task %s ended with error: %w", operation, err)
}
