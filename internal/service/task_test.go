package service

import (
	"context"
	"testing"

	"github.com/TsaqifHasbi/todo-api-go/internal/model"
	"github.com/TsaqifHasbi/todo-api-go/internal/store/memory"
)

func newTestTaskService() *TaskService {
	return NewTaskService(memory.New())
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestCreate_EmptyTitle(t *testing.T) {
	svc := newTestTaskService()
	ctx := context.Background()

	for _, title := range []string{"", "   ", "\t\n"} {
		if _, err := svc.Create(ctx, "user-a", model.CreateTaskRequest{Title: title}); err != ErrTitleRequired {
			t.Errorf("title %q: expected ErrTitleRequired, got %v", title, err)
		}
	}

	// No task may have been created by the failed attempts.
	tasks, err := svc.List(ctx, "user-a")
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected 0 tasks after rejected creates, got %d", len(tasks))
	}
}

func TestCreate_TrimsTitle(t *testing.T) {
	svc := newTestTaskService()

	task, err := svc.Create(context.Background(), "user-a", model.CreateTaskRequest{Title: "  buy milk  "})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if task.Title != "buy milk" {
		t.Errorf("title = %q, want %q", task.Title, "buy milk")
	}
	if task.Completed {
		t.Error("new task must start pending")
	}
	if task.ID == "" {
		t.Error("new task must get an id")
	}
}

func TestList_EmptyForNewUser(t *testing.T) {
	svc := newTestTaskService()

	tasks, err := svc.List(context.Background(), "user-with-no-tasks")
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if tasks == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(tasks) != 0 {
		t.Errorf("expected 0 tasks, got %d", len(tasks))
	}
}

func TestList_OrderedNewestFirst(t *testing.T) {
	svc := newTestTaskService()
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		if _, err := svc.Create(ctx, "user-a", model.CreateTaskRequest{Title: title}); err != nil {
			t.Fatalf("Create(%q) unexpected error: %v", title, err)
		}
	}

	tasks, err := svc.List(ctx, "user-a")
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}
	for i := 1; i < len(tasks); i++ {
		if tasks[i].CreatedAt.After(tasks[i-1].CreatedAt) {
			t.Errorf("tasks out of order at index %d: %v before %v", i, tasks[i-1].CreatedAt, tasks[i].CreatedAt)
		}
	}
}

func TestUpdate_NoFields(t *testing.T) {
	svc := newTestTaskService()
	ctx := context.Background()

	task, err := svc.Create(ctx, "user-a", model.CreateTaskRequest{Title: "buy milk"})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	if _, err := svc.Update(ctx, "user-a", task.ID, model.UpdateTaskRequest{}); err != ErrNoFields {
		t.Errorf("expected ErrNoFields, got %v", err)
	}
}

func TestUpdate_EmptyTitle(t *testing.T) {
	svc := newTestTaskService()
	ctx := context.Background()

	task, err := svc.Create(ctx, "user-a", model.CreateTaskRequest{Title: "buy milk"})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	_, err = svc.Update(ctx, "user-a", task.ID, model.UpdateTaskRequest{Title: strPtr("   ")})
	if err != ErrTitleRequired {
		t.Errorf("expected ErrTitleRequired, got %v", err)
	}
}

func TestUpdate_PartialFields(t *testing.T) {
	svc := newTestTaskService()
	ctx := context.Background()

	task, err := svc.Create(ctx, "user-a", model.CreateTaskRequest{Title: "buy milk"})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	// Completed only: title untouched.
	updated, err := svc.Update(ctx, "user-a", task.ID, model.UpdateTaskRequest{Completed: boolPtr(true)})
	if err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}
	if !updated.Completed {
		t.Error("completed should be true")
	}
	if updated.Title != "buy milk" {
		t.Errorf("title changed unexpectedly: %q", updated.Title)
	}

	// Title only: completed untouched, back-transition possible later.
	updated, err = svc.Update(ctx, "user-a", task.ID, model.UpdateTaskRequest{Title: strPtr("buy oat milk")})
	if err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}
	if updated.Title != "buy oat milk" {
		t.Errorf("title = %q, want %q", updated.Title, "buy oat milk")
	}
	if !updated.Completed {
		t.Error("completed flag should survive a title-only update")
	}

	// Done back to pending: the state machine is bidirectional.
	updated, err = svc.Update(ctx, "user-a", task.ID, model.UpdateTaskRequest{Completed: boolPtr(false)})
	if err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}
	if updated.Completed {
		t.Error("completed should be false again")
	}
}

func TestUpdate_RefreshesUpdatedAt(t *testing.T) {
	svc := newTestTaskService()
	ctx := context.Background()

	task, err := svc.Create(ctx, "user-a", model.CreateTaskRequest{Title: "buy milk"})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	updated, err := svc.Update(ctx, "user-a", task.ID, model.UpdateTaskRequest{Completed: boolPtr(true)})
	if err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) {
		t.Errorf("updated_at %v should be after created_at %v", updated.UpdatedAt, updated.CreatedAt)
	}
	if !updated.CreatedAt.Equal(task.CreatedAt) {
		t.Error("created_at must never change")
	}
}

func TestOwnership_CrossUserIsolation(t *testing.T) {
	svc := newTestTaskService()
	ctx := context.Background()

	task, err := svc.Create(ctx, "user-a", model.CreateTaskRequest{Title: "a's task"})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	// B never sees A's task.
	tasks, err := svc.List(ctx, "user-b")
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("user-b should see no tasks, got %d", len(tasks))
	}

	// B cannot update or delete it; the failure is indistinguishable from a
	// missing task.
	if _, err := svc.Update(ctx, "user-b", task.ID, model.UpdateTaskRequest{Completed: boolPtr(true)}); err != ErrTaskNotFound {
		t.Errorf("update by non-owner: expected ErrTaskNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, "user-b", task.ID); err != ErrTaskNotFound {
		t.Errorf("delete by non-owner: expected ErrTaskNotFound, got %v", err)
	}

	// A still can.
	if _, err := svc.Update(ctx, "user-a", task.ID, model.UpdateTaskRequest{Completed: boolPtr(true)}); err != nil {
		t.Errorf("update by owner: unexpected error %v", err)
	}
}

func TestDelete_Idempotence(t *testing.T) {
	svc := newTestTaskService()
	ctx := context.Background()

	task, err := svc.Create(ctx, "user-a", model.CreateTaskRequest{Title: "buy milk"})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	if err := svc.Delete(ctx, "user-a", task.ID); err != nil {
		t.Fatalf("first Delete() unexpected error: %v", err)
	}
	if err := svc.Delete(ctx, "user-a", task.ID); err != ErrTaskNotFound {
		t.Errorf("second Delete(): expected ErrTaskNotFound, got %v", err)
	}

	tasks, err := svc.List(ctx, "user-a")
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected empty list after delete, got %d tasks", len(tasks))
	}
}

func TestUpdate_UnknownTask(t *testing.T) {
	svc := newTestTaskService()

	_, err := svc.Update(context.Background(), "user-a", "no-such-id", model.UpdateTaskRequest{Completed: boolPtr(true)})
	if err != ErrTaskNotFound {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}
