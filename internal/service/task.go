package service

import (
	"context"
	"errors"
	"strings"

	"github.com/TsaqifHasbi/todo-api-go/internal/model"
	"github.com/TsaqifHasbi/todo-api-go/internal/store"
)

var (
	ErrTitleRequired = errors.New("task title is required")
	ErrNoFields      = errors.New("no fields to update")
	ErrTaskNotFound  = errors.New("task not found")
)

// TaskService handles task CRUD with ownership enforced on every operation.
// Every call takes a userID that the caller has already verified via a token.
type TaskService struct {
	tasks store.TaskStore
}

// NewTaskService creates a new TaskService.
func NewTaskService(tasks store.TaskStore) *TaskService {
	return &TaskService{tasks: tasks}
}

// List returns the caller's tasks, most recently created first. A caller with
// no tasks gets an empty slice.
func (s *TaskService) List(ctx context.Context, userID string) ([]model.TaskResponse, error) {
	tasks, err := s.tasks.ListTasks(ctx, userID)
	if err != nil {
		return nil, err
	}

	return tasksToResponse(tasks), nil
}

// Create adds a new pending task owned by the caller. The title is trimmed
// and must be non-empty afterwards.
func (s *TaskService) Create(ctx context.Context, userID string, req model.CreateTaskRequest) (model.TaskResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return model.TaskResponse{}, ErrTitleRequired
	}

	task := &model.Task{
		OwnerID:   userID,
		Title:     title,
		Completed: false,
	}

	if err := s.tasks.CreateTask(ctx, task); err != nil {
		return model.TaskResponse{}, err
	}

	return model.TaskToResponse(*task), nil
}

// Update applies the supplied fields to a task the caller owns. Omitting both
// fields is rejected rather than treated as a no-op, since a no-op would still
// bump the updated timestamp. A task owned by someone else is reported
// exactly like a missing one.
func (s *TaskService) Update(ctx context.Context, userID, taskID string, req model.UpdateTaskRequest) (model.TaskResponse, error) {
	if req.Title == nil && req.Completed == nil {
		return model.TaskResponse{}, ErrNoFields
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return model.TaskResponse{}, ErrTitleRequired
		}
		req.Title = &title
	}

	task, err := s.tasks.UpdateTask(ctx, userID, taskID, req.Title, req.Completed)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return model.TaskResponse{}, ErrTaskNotFound
		}
		return model.TaskResponse{}, err
	}

	return model.TaskToResponse(*task), nil
}

// Delete permanently removes a task the caller owns. Deleting an already
// deleted task fails with ErrTaskNotFound, same as one that never existed.
func (s *TaskService) Delete(ctx context.Context, userID, taskID string) error {
	err := s.tasks.DeleteTask(ctx, userID, taskID)
	if errors.Is(err, store.ErrTaskNotFound) {
		return ErrTaskNotFound
	}
	return err
}

// tasksToResponse converts a slice of Task to a slice of TaskResponse.
func tasksToResponse(tasks []model.Task) []model.TaskResponse {
	result := make([]model.TaskResponse, len(tasks))
	for i, t := range tasks {
		result[i] = model.TaskToResponse(t)
	}
	return result
}
