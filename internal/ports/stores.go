package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-api/internal/domain"
)

// TodoStore defines the store port for todo persistence.
// Implemented by the postgres adapter; called by the application layer.
type TodoStore interface {
	// ListTodos returns all todos ordered by creation time, newest first.
	ListTodos(ctx context.Context) ([]domain.Todo, error)

	// CreateTodo inserts a new todo and returns the stored entity with
	// store-assigned fields (ID, CreatedAt) populated.
	CreateTodo(ctx context.Context, todo *domain.Todo) (*domain.Todo, error)

	// SetTodoCompleted updates the completion flag of the todo with the
	// given ID. Returns domain.ErrNotFound if no row matched.
	SetTodoCompleted(ctx context.Context, id int64, completed bool) error

	// DeleteTodo removes the todo with the given ID.
	// Returns domain.ErrNotFound if no row matched.
	DeleteTodo(ctx context.Context, id int64) error
}
