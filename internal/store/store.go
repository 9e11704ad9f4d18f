// Package store defines the persistence contract shared by every storage
// engine. Exactly one implementation is selected at startup; engines are
// never mixed at runtime.
package store

import (
	"context"
	"errors"

	"github.com/TsaqifHasbi/todo-api-go/internal/model"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup key.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUser is returned when a username or email is already taken.
	// Detection must be atomic: two concurrent creates with the same email
	// cannot both succeed.
	ErrDuplicateUser = errors.New("username or email already exists")

	// ErrTaskNotFound is returned both when a task does not exist and when it
	// exists under a different owner. Callers must not be able to tell the
	// two cases apart.
	ErrTaskNotFound = errors.New("task not found")
)

// UserStore persists user accounts.
type UserStore interface {
	// CreateUser inserts a new user, assigning ID and CreatedAt on the struct.
	// Returns ErrDuplicateUser if the username or email is taken.
	CreateUser(ctx context.Context, user *model.User) error

	// GetUserByEmail returns the user with the given email, or ErrUserNotFound.
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)

	// GetUserByID returns the user with the given id, or ErrUserNotFound.
	GetUserByID(ctx context.Context, id string) (*model.User, error)

	// DeleteUser removes a user and every task they own, or ErrUserNotFound.
	DeleteUser(ctx context.Context, id string) error
}

// TaskStore persists tasks. Every operation except CreateTask is keyed by the
// owner; there is no way to reach a task row without the owner predicate.
type TaskStore interface {
	// CreateTask inserts a new task, assigning ID, CreatedAt and UpdatedAt.
	CreateTask(ctx context.Context, task *model.Task) error

	// ListTasks returns the owner's tasks ordered by CreatedAt descending.
	// An owner with no tasks gets an empty slice, not an error.
	ListTasks(ctx context.Context, ownerID string) ([]model.Task, error)

	// UpdateTask applies the supplied fields to the task identified by
	// (ownerID, taskID) and refreshes UpdatedAt, atomically with respect to a
	// concurrent delete of the same task. Nil fields are left untouched.
	// Returns the updated task, or ErrTaskNotFound if the task is absent or
	// owned by someone else.
	UpdateTask(ctx context.Context, ownerID, taskID string, title *string, completed *bool) (*model.Task, error)

	// DeleteTask removes the task identified by (ownerID, taskID), or returns
	// ErrTaskNotFound under the same rule as UpdateTask.
	DeleteTask(ctx context.Context, ownerID, taskID string) error
}

// Store bundles the per-entity stores a single engine provides.
type Store interface {
	UserStore
	TaskStore
}
