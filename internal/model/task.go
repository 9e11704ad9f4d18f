package model

import "time"

// Task represents a to-do item owned by exactly one user.
// OwnerID is set at creation and never changes.
type Task struct {
	ID        string
	OwnerID   string
	Title     string
	Completed bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateTaskRequest represents a task creation request.
type CreateTaskRequest struct {
	Title string `json:"title"`
}

// UpdateTaskRequest represents a partial task update.
// Pointer fields allow distinguishing between a missing field and an explicit value.
type UpdateTaskRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

// TaskResponse represents a task in API responses. The owner is implied by the
// authenticated caller and never serialized.
type TaskResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TaskToResponse converts a Task to its API representation.
func TaskToResponse(t Task) TaskResponse {
	return TaskResponse{
		ID:        t.ID,
		Title:     t.Title,
		Completed: t.Completed,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
