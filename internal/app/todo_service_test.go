package app

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/jsamuelsen11/todo-api/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// fakeTodoStore implements ports.TodoStore with per-method hooks so each
// test controls exactly the calls it expects.
type fakeTodoStore struct {
	listFn         func(ctx context.Context) ([]domain.Todo, error)
	createFn       func(ctx context.Context, td *domain.Todo) (*domain.Todo, error)
	setCompletedFn func(ctx context.Context, id int64, completed bool) error
	deleteFn       func(ctx context.Context, id int64) error

	createCalls int
}

func (f *fakeTodoStore) ListTodos(ctx context.Context) ([]domain.Todo, error) {
	return f.listFn(ctx)
}

func (f *fakeTodoStore) CreateTodo(ctx context.Context, td *domain.Todo) (*domain.Todo, error) {
	f.createCalls++
	return f.createFn(ctx, td)
}

func (f *fakeTodoStore) SetTodoCompleted(ctx context.Context, id int64, completed bool) error {
	return f.setCompletedFn(ctx, id, completed)
}

func (f *fakeTodoStore) DeleteTodo(ctx context.Context, id int64) error {
	return f.deleteFn(ctx, id)
}

// --- NewTodoService ---

func TestNewTodoService_NilLogger(t *testing.T) {
	t.Parallel()

	svc := NewTodoService(&fakeTodoStore{}, nil)
	if svc.logger == nil {
		t.Fatal("NewTodoService(nil logger) should create a no-op logger, got nil")
	}
}

// --- ListTodos ---

func TestTodoService_ListTodos(t *testing.T) {
	t.Parallel()

	t.Run("returns todos on success", func(t *testing.T) {
		t.Parallel()
		want := []domain.Todo{
			{ID: 2, Title: "Walk the dog", CreatedAt: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)},
			{ID: 1, Title: "Buy groceries", CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		}
		store := &fakeTodoStore{
			listFn: func(context.Context) ([]domain.Todo, error) { return want, nil },
		}
		svc := NewTodoService(store, discardLogger())

		got, err := svc.ListTodos(context.Background())
		if err != nil {
			t.Fatalf("ListTodos() error = %v, want nil", err)
		}
		if len(got) != 2 {
			t.Fatalf("ListTodos() len = %d, want 2", len(got))
		}
		if got[0].ID != 2 {
			t.Errorf("ListTodos()[0].ID = %d, want 2 (newest first)", got[0].ID)
		}
	})

	t.Run("returns error when store fails", func(t *testing.T) {
		t.Parallel()
		store := &fakeTodoStore{
			listFn: func(context.Context) ([]domain.Todo, error) { return nil, domain.ErrUnavailable },
		}
		svc := NewTodoService(store, discardLogger())

		_, err := svc.ListTodos(context.Background())
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("ListTodos() error = %v, want ErrUnavailable", err)
		}
	})
}

// --- CreateTodo ---

func TestTodoService_CreateTodo(t *testing.T) {
	t.Parallel()

	t.Run("stores trimmed title and returns created entity", func(t *testing.T) {
		t.Parallel()
		store := &fakeTodoStore{
			createFn: func(_ context.Context, td *domain.Todo) (*domain.Todo, error) {
				created := *td
				created.ID = 42
				created.CreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
				return &created, nil
			},
		}
		svc := NewTodoService(store, discardLogger())

		created, err := svc.CreateTodo(context.Background(), &domain.Todo{Title: "  Buy groceries  "})
		if err != nil {
			t.Fatalf("CreateTodo() error = %v, want nil", err)
		}
		if created.ID != 42 {
			t.Errorf("CreateTodo().ID = %d, want 42", created.ID)
		}
		if created.Title != "Buy groceries" {
			t.Errorf("CreateTodo().Title = %q, want trimmed %q", created.Title, "Buy groceries")
		}
		if created.Completed {
			t.Error("CreateTodo().Completed = true, want false")
		}
	})

	t.Run("rejects empty title without calling store", func(t *testing.T) {
		t.Parallel()
		store := &fakeTodoStore{}
		svc := NewTodoService(store, discardLogger())

		_, err := svc.CreateTodo(context.Background(), &domain.Todo{Title: ""})
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("CreateTodo() error = %v, want ErrValidation", err)
		}
		if store.createCalls != 0 {
			t.Errorf("store.CreateTodo called %d times, want 0", store.createCalls)
		}
	})

	t.Run("rejects whitespace-only title without calling store", func(t *testing.T) {
		t.Parallel()
		store := &fakeTodoStore{}
		svc := NewTodoService(store, discardLogger())

		_, err := svc.CreateTodo(context.Background(), &domain.Todo{Title: "   "})
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("CreateTodo() error = %v, want ErrValidation", err)
		}
		if store.createCalls != 0 {
			t.Errorf("store.CreateTodo called %d times, want 0", store.createCalls)
		}
	})

	t.Run("returns error when store fails", func(t *testing.T) {
		t.Parallel()
		store := &fakeTodoStore{
			createFn: func(context.Context, *domain.Todo) (*domain.Todo, error) {
				return nil, domain.ErrUnavailable
			},
		}
		svc := NewTodoService(store, discardLogger())

		_, err := svc.CreateTodo(context.Background(), &domain.Todo{Title: "Buy groceries"})
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("CreateTodo() error = %v, want ErrUnavailable", err)
		}
	})
}

// --- SetTodoCompleted ---

func TestTodoService_SetTodoCompleted(t *testing.T) {
	t.Parallel()

	t.Run("passes id and flag to store", func(t *testing.T) {
		t.Parallel()
		var gotID int64
		var gotCompleted bool
		store := &fakeTodoStore{
			setCompletedFn: func(_ context.Context, id int64, completed bool) error {
				gotID, gotCompleted = id, completed
				return nil
			},
		}
		svc := NewTodoService(store, discardLogger())

		if err := svc.SetTodoCompleted(context.Background(), 7, true); err != nil {
			t.Fatalf("SetTodoCompleted() error = %v, want nil", err)
		}
		if gotID != 7 {
			t.Errorf("store received id = %d, want 7", gotID)
		}
		if !gotCompleted {
			t.Error("store received completed = false, want true")
		}
	})

	t.Run("propagates not found", func(t *testing.T) {
		t.Parallel()
		store := &fakeTodoStore{
			setCompletedFn: func(context.Context, int64, bool) error { return domain.ErrNotFound },
		}
		svc := NewTodoService(store, discardLogger())

		err := svc.SetTodoCompleted(context.Background(), 999, false)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("SetTodoCompleted() error = %v, want ErrNotFound", err)
		}
	})
}

// --- DeleteTodo ---

func TestTodoService_DeleteTodo(t *testing.T) {
	t.Parallel()

	t.Run("deletes existing todo", func(t *testing.T) {
		t.Parallel()
		var gotID int64
		store := &fakeTodoStore{
			deleteFn: func(_ context.Context, id int64) error {
				gotID = id
				return nil
			},
		}
		svc := NewTodoService(store, discardLogger())

		if err := svc.DeleteTodo(context.Background(), 3); err != nil {
			t.Fatalf("DeleteTodo() error = %v, want nil", err)
		}
		if gotID != 3 {
			t.Errorf("store received id = %d, want 3", gotID)
		}
	})

	t.Run("propagates not found", func(t *testing.T) {
		t.Parallel()
		store := &fakeTodoStore{
			deleteFn: func(context.Context, int64) error { return domain.ErrNotFound },
		}
		svc := NewTodoService(store, discardLogger())

		err := svc.DeleteTodo(context.Background(), 999)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("DeleteTodo() error = %v, want ErrNotFound", err)
		}
	})
}
