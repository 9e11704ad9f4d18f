package mysql

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/TsaqifHasbi/todo-api-go/internal/model"
	"github.com/TsaqifHasbi/todo-api-go/internal/store"
)

// CreateTask inserts a new task for its owner, assigning ID and timestamps.
func (s *Store) CreateTask(ctx context.Context, task *model.Task) error {
	id := uuid.NewString()
	now := time.Now().UTC()

	query := `INSERT INTO tasks (id, user_id, title, completed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query, id, task.OwnerID, task.Title, task.Completed, now, now)
	if err != nil {
		return err
	}

	task.ID = id
	task.CreatedAt = now
	task.UpdatedAt = now
	return nil
}

// ListTasks retrieves all tasks for an owner, most recently created first.
func (s *Store) ListTasks(ctx context.Context, ownerID string) ([]model.Task, error) {
	query := `SELECT id, user_id, title, completed, created_at, updated_at
		FROM tasks WHERE user_id = ? ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(
			&t.ID, &t.OwnerID, &t.Title, &t.Completed, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

// UpdateTask applies the supplied fields in a single UPDATE keyed by both id
// and owner, so the ownership check and the mutation are one atomic statement.
// A task that is absent, owned by someone else, or deleted by a concurrent
// request all surface identically as ErrTaskNotFound.
func (s *Store) UpdateTask(ctx context.Context, ownerID, taskID string, title *string, completed *bool) (*model.Task, error) {
	query := `UPDATE tasks
		SET title = COALESCE(?, title), completed = COALESCE(?, completed), updated_at = ?
		WHERE id = ? AND user_id = ?`

	if _, err := s.db.ExecContext(ctx, query, title, completed, time.Now().UTC(), taskID, ownerID); err != nil {
		return nil, err
	}

	// RowsAffected is unreliable here: MySQL reports 0 when the new values
	// equal the old ones. Re-read the row to decide existence.
	selectQuery := `SELECT id, user_id, title, completed, created_at, updated_at
		FROM tasks WHERE id = ? AND user_id = ?`

	task := &model.Task{}
	err := s.db.QueryRowContext(ctx, selectQuery, taskID, ownerID).Scan(
		&task.ID, &task.OwnerID, &task.Title, &task.Completed, &task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTaskNotFound
		}
		return nil, err
	}

	return task, nil
}

// DeleteTask removes a task owned by the given user. The owner predicate in
// the WHERE clause keeps non-owners from learning whether the task exists.
func (s *Store) DeleteTask(ctx context.Context, ownerID, taskID string) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM tasks WHERE id = ? AND user_id = ?`, taskID, ownerID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrTaskNotFound
	}

	return nil
}
