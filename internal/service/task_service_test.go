package service_test

import (
	"context"
	"errors"
	"testing"

	"todo-server/internal/repository"
	"todo-server/internal/service"
)

func newTestTaskService(t *testing.T) (service.TaskService, int64, int64) {
	t.Helper()
	users, tasks := newTestRepos(t)
	userSvc := service.NewUserService(users, testBcryptCost)
	ctx := context.Background()

	alice, err := userSvc.Register(ctx, registerInput("alice@example.com", "alice"))
	if err != nil {
		t.Fatalf("register alice: %v", err)
	}
	bob, err := userSvc.Register(ctx, registerInput("bob@example.com", "bob"))
	if err != nil {
		t.Fatalf("register bob: %v", err)
	}

	return service.NewTaskService(tasks), alice.ID, bob.ID
}

func TestTaskService_Create(t *testing.T) {
	svc, alice, _ := newTestTaskService(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, alice, "  buy milk  ")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if task.Text != "buy milk" {
		t.Fatalf("expected trimmed text, got %q", task.Text)
	}
	if task.Completed {
		t.Fatal("new task must start incomplete")
	}
	if task.OwnerID != alice {
		t.Fatalf("expected owner %d, got %d", alice, task.OwnerID)
	}
}

func TestTaskService_Create_EmptyText(t *testing.T) {
	svc, alice, _ := newTestTaskService(t)
	ctx := context.Background()

	for _, text := range []string{"", "   ", "\t\n"} {
		if _, err := svc.Create(ctx, alice, text); !errors.Is(err, service.ErrEmptyTaskText) {
			t.Fatalf("text %q: expected ErrEmptyTaskText, got %v", text, err)
		}
	}

	tasks, err := svc.List(ctx, alice)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("rejected creates must not persist, got %d tasks", len(tasks))
	}
}

func TestTaskService_Update(t *testing.T) {
	svc, alice, _ := newTestTaskService(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, alice, "buy milk")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	done := true
	updated, err := svc.Update(ctx, alice, task.ID, service.TaskPatch{Completed: &done})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !updated.Completed {
		t.Fatal("expected completed to be true")
	}
	if updated.Text != "buy milk" {
		t.Fatalf("partial patch must leave text unchanged, got %q", updated.Text)
	}

	text := "buy oat milk"
	updated, err = svc.Update(ctx, alice, task.ID, service.TaskPatch{Text: &text})
	if err != nil {
		t.Fatalf("Update text: %v", err)
	}
	if updated.Text != "buy oat milk" || !updated.Completed {
		t.Fatalf("unexpected task after patch: %+v", updated)
	}
}

func TestTaskService_Update_EmptyText(t *testing.T) {
	svc, alice, _ := newTestTaskService(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, alice, "buy milk")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	empty := "   "
	_, err = svc.Update(ctx, alice, task.ID, service.TaskPatch{Text: &empty})
	if !errors.Is(err, service.ErrEmptyTaskText) {
		t.Fatalf("expected ErrEmptyTaskText, got %v", err)
	}
}

func TestTaskService_Update_OtherOwnerReportsNotFound(t *testing.T) {
	svc, alice, bob := newTestTaskService(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, alice, "alice's task")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	done := true
	_, err = svc.Update(ctx, bob, task.ID, service.TaskPatch{Completed: &done})
	if !errors.Is(err, repository.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestTaskService_Delete(t *testing.T) {
	svc, alice, _ := newTestTaskService(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, alice, "doomed")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	deleted, err := svc.Delete(ctx, alice, task.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deleted.ID != task.ID {
		t.Fatalf("expected deleted task %d, got %d", task.ID, deleted.ID)
	}

	tasks, err := svc.List(ctx, alice)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("expected empty list after delete, got %d", len(tasks))
	}
}

func TestTaskService_Delete_OtherOwnerReportsNotFound(t *testing.T) {
	svc, alice, bob := newTestTaskService(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, alice, "alice's task")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err = svc.Delete(ctx, bob, task.ID)
	if !errors.Is(err, repository.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}

	tasks, err := svc.List(ctx, alice)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("task must survive a cross-owner delete, got %d tasks", len(tasks))
	}
}
