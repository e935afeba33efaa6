package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/taskflow/internal/logger"
	"github.com/MKhiriev/taskflow/models"
	"github.com/google/uuid"
)

// taskRepository is the PostgreSQL-backed implementation of [TaskRepository].
//
// Every statement that targets an existing task carries both task_id and
// owner_id in its WHERE clause; ownership is therefore enforced on every
// call and never cached between requests.
type taskRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTaskRepository constructs a [TaskRepository] backed by the provided
// database connection and logger.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTask persists a new task record and returns the canonical database
// representation with server-assigned fields (CreatedAt).
func (r *taskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	if task.TaskID == uuid.Nil {
		task.TaskID = uuid.New()
	}

	query, args, err := buildInsertTaskQuery(ctx, task)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.CreateTask").Msg("error: building insert query failed")
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*taskRepository.CreateTask").Msg("error: row is nil")
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	created, err := scanTask(row)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.CreateTask").Msg("error: scanning error")
		return models.Task{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// ListTasksByOwner returns all tasks owned by ownerID ordered by creation
// time descending (newest first). An owner with no tasks yields an empty,
// non-nil slice.
func (r *taskRepository) ListTasksByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListTasksByOwnerQuery(ctx, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.ListTasksByOwner").Msg("error: building list query failed")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.ListTasksByOwner").Msg("error: executing list query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer func() { _ = rows.Close() }()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			log.Err(err).Str("func", "*taskRepository.ListTasksByOwner").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*taskRepository.ListTasksByOwner").Msg("error: rows iteration failed")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tasks, nil
}

// FindTaskByIDAndOwner resolves a single task scoped to its owner.
// Both an absent task and a task owned by someone else yield
// [ErrTaskNotFound].
func (r *taskRepository) FindTaskByIDAndOwner(ctx context.Context, taskID, ownerID uuid.UUID) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectTaskByIDAndOwnerQuery(ctx, taskID, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.FindTaskByIDAndOwner").Msg("error: building select query failed")
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*taskRepository.FindTaskByIDAndOwner").Msg("error: row is nil")
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}
		log.Err(err).Str("func", "*taskRepository.FindTaskByIDAndOwner").Msg("error: scanning error")
		return models.Task{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return task, nil
}

// SetTaskStatus updates the completion flag of an owner-scoped task.
func (r *taskRepository) SetTaskStatus(ctx context.Context, taskID, ownerID uuid.UUID, isDone bool) (models.Task, error) {
	return r.updateTaskColumn(ctx, taskID, ownerID, "is_done", isDone)
}

// SetTaskTitle updates the title of an owner-scoped task.
func (r *taskRepository) SetTaskTitle(ctx context.Context, taskID, ownerID uuid.UUID, title string) (models.Task, error) {
	return r.updateTaskColumn(ctx, taskID, ownerID, "title", title)
}

// SetTaskDueDate updates the due date of an owner-scoped task.
// A nil dueDate clears the deadline (stores NULL).
func (r *taskRepository) SetTaskDueDate(ctx context.Context, taskID, ownerID uuid.UUID, dueDate *models.Date) (models.Task, error) {
	var value any
	if dueDate != nil {
		value = *dueDate
	}
	return r.updateTaskColumn(ctx, taskID, ownerID, "due_date", value)
}

// DeleteTask permanently removes an owner-scoped task. Zero affected rows
// mean the task does not exist for this owner → [ErrTaskNotFound].
func (r *taskRepository) DeleteTask(ctx context.Context, taskID, ownerID uuid.UUID) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteTaskQuery(ctx, taskID, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.DeleteTask").Msg("error: building delete query failed")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.DeleteTask").Msg("error: executing delete failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// updateTaskColumn runs a single-column UPDATE scoped by task and owner and
// scans back the updated row. An empty result set means the ownership check
// in the WHERE clause matched nothing → [ErrTaskNotFound].
func (r *taskRepository) updateTaskColumn(ctx context.Context, taskID, ownerID uuid.UUID, column string, value any) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateTaskQuery(ctx, taskID, ownerID, column, value)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.updateTaskColumn").Str("column", column).Msg("error: building update query failed")
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*taskRepository.updateTaskColumn").Str("column", column).Msg("error: row is nil")
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}
		log.Err(err).Str("func", "*taskRepository.updateTaskColumn").Str("column", column).Msg("error: scanning error")
		return models.Task{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return task, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for scanTask.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanTask reads one row in the [taskColumns] order into a models.Task,
// converting a NULL due_date into a nil pointer.
func scanTask(row rowScanner) (models.Task, error) {
	var task models.Task
	var dueDate sql.NullTime

	if err := row.Scan(&task.TaskID, &task.Title, &task.Priority, &dueDate, &task.IsDone, &task.CreatedAt, &task.OwnerID); err != nil {
		return models.Task{}, err
	}

	if dueDate.Valid {
		d := models.Date{Time: dueDate.Time}
		task.DueDate = &d
	}

	return task, nil
}
