// Package memory implements the store interfaces with in-process maps.
// All state is lost on restart; the engine exists for development and tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/TsaqifHasbi/todo-api-go/internal/model"
	"github.com/TsaqifHasbi/todo-api-go/internal/store"
)

// Store implements store.Store with maps keyed by id. A single RWMutex guards
// both maps so uniqueness checks and cascading deletes are atomic.
type Store struct {
	mu    sync.RWMutex
	users map[string]model.User
	tasks map[string]model.Task
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		users: make(map[string]model.User),
		tasks: make(map[string]model.Task),
	}
}

// CreateUser inserts a new user. The uniqueness check and the insert happen
// under one write lock, so concurrent registrations with the same username or
// email cannot both succeed.
func (s *Store) CreateUser(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == user.Username || u.Email == user.Email {
			return store.ErrDuplicateUser
		}
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now().UTC()
	s.users[user.ID] = *user
	return nil
}

// GetUserByEmail retrieves a user by email.
func (s *Store) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			copied := u
			return &copied, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// GetUserByID retrieves a user by id.
func (s *Store) GetUserByID(_ context.Context, id string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	copied := u
	return &copied, nil
}

// DeleteUser removes a user and sweeps every task they own under the same
// lock, mirroring the relational engine's cascading foreign key.
func (s *Store) DeleteUser(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return store.ErrUserNotFound
	}
	delete(s.users, id)

	for taskID, t := range s.tasks {
		if t.OwnerID == id {
			delete(s.tasks, taskID)
		}
	}
	return nil
}

// CreateTask inserts a new task, assigning ID and timestamps.
func (s *Store) CreateTask(_ context.Context, task *model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	task.ID = uuid.NewString()
	task.CreatedAt = now
	task.UpdatedAt = now
	s.tasks[task.ID] = *task
	return nil
}

// ListTasks returns the owner's tasks, most recently created first.
func (s *Store) ListTasks(_ context.Context, ownerID string) ([]model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := []model.Task{}
	for _, t := range s.tasks {
		if t.OwnerID == ownerID {
			tasks = append(tasks, t)
		}
	}

	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})
	return tasks, nil
}

// UpdateTask applies the supplied fields under the write lock. A task that is
// absent or owned by another user is reported identically as ErrTaskNotFound.
func (s *Store) UpdateTask(_ context.Context, ownerID, taskID string, title *string, completed *bool) (*model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[taskID]
	if !ok || t.OwnerID != ownerID {
		return nil, store.ErrTaskNotFound
	}

	if title != nil {
		t.Title = *title
	}
	if completed != nil {
		t.Completed = *completed
	}
	t.UpdatedAt = time.Now().UTC()
	s.tasks[taskID] = t

	copied := t
	return &copied, nil
}

// DeleteTask removes a task under the same ownership rule as UpdateTask.
func (s *Store) DeleteTask(_ context.Context, ownerID, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[taskID]
	if !ok || t.OwnerID != ownerID {
		return store.ErrTaskNotFound
	}

	delete(s.tasks, taskID)
	return nil
}
