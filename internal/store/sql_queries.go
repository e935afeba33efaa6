package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/taskflow/models"
	"github.com/google/uuid"
)

const (
	createUser = `INSERT INTO users (user_id, email, password_hash, name)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, email, password_hash, name, created_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, name, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, email, password_hash, name, created_at
    FROM users
    WHERE user_id = $1;`

	updateUser = `UPDATE users
    SET name = $2, password_hash = $3
    WHERE user_id = $1
    RETURNING user_id, email, password_hash, name, created_at;`

	deleteUserTasks = `DELETE FROM tasks WHERE owner_id = $1;`
	deleteUser      = `DELETE FROM users WHERE user_id = $1;`
)

// taskColumns is the canonical column order used by every task query and
// matched by scanTask.
var taskColumns = []string{"task_id", "title", "priority", "due_date", "is_done", "created_at", "owner_id"}

// psql is the squirrel statement builder configured for PostgreSQL
// ($N placeholders).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildInsertTaskQuery(ctx context.Context, task models.Task) (string, []any, error) {
	var dueDate any
	if task.DueDate != nil {
		dueDate = *task.DueDate
	}

	return psql.Insert(task.TableName()).
		Columns("task_id", "title", "priority", "due_date", "is_done", "owner_id").
		Values(task.TaskID, task.Title, task.Priority, dueDate, task.IsDone, task.OwnerID).
		Suffix("RETURNING " + joinColumns(taskColumns)).
		ToSql()
}

func buildListTasksByOwnerQuery(ctx context.Context, ownerID uuid.UUID) (string, []any, error) {
	return psql.Select(taskColumns...).
		From("tasks").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC").
		ToSql()
}

func buildSelectTaskByIDAndOwnerQuery(ctx context.Context, taskID, ownerID uuid.UUID) (string, []any, error) {
	return psql.Select(taskColumns...).
		From("tasks").
		Where(sq.Eq{"task_id": taskID, "owner_id": ownerID}).
		ToSql()
}

// buildUpdateTaskQuery builds a single-column UPDATE scoped by both the task
// ID and the owner ID, returning the full updated row. The owner scoping in
// the WHERE clause is what enforces the ownership invariant at the SQL level.
func buildUpdateTaskQuery(ctx context.Context, taskID, ownerID uuid.UUID, column string, value any) (string, []any, error) {
	return psql.Update("tasks").
		Set(column, value).
		Where(sq.Eq{"task_id": taskID, "owner_id": ownerID}).
		Suffix("RETURNING " + joinColumns(taskColumns)).
		ToSql()
}

func buildDeleteTaskQuery(ctx context.Context, taskID, ownerID uuid.UUID) (string, []any, error) {
	return psql.Delete("tasks").
		Where(sq.Eq{"task_id": taskID, "owner_id": ownerID}).
		ToSql()
}

func joinColumns(columns []string) string {
	out := ""
	for i, c := range columns {
		if i > 0 {
			out += ", "
		}
		out += c
	}
	return out
}
