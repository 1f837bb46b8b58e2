package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-api/internal/domain"
)

// TodoService defines the service port for todo operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type TodoService interface {
	// ListTodos returns all todos, newest first.
	ListTodos(ctx context.Context) ([]domain.Todo, error)

	// CreateTodo creates a new todo and returns the created entity with
	// server-assigned fields (ID, CreatedAt).
	// Returns domain.ErrValidation if the todo fails validation.
	CreateTodo(ctx context.Context, todo *domain.Todo) (*domain.Todo, error)

	// SetTodoCompleted updates the completion flag of an existing todo.
	// Returns domain.ErrNotFound if the todo does not exist.
	SetTodoCompleted(ctx context.Context, id int64, completed bool) error

	// DeleteTodo deletes a todo by ID.
	// Returns domain.ErrNotFound if the todo does not exist.
	DeleteTodo(ctx context.Context, id int64) error
}

// MetadataService defines the service port for instance metadata lookups.
// Lookups never fail: facts that cannot be fetched carry the
// domain.MetadataUnavailable placeholder.
type MetadataService interface {
	// InstanceMetadata returns the facts describing the instance the
	// service runs on, degrading per fact to placeholders.
	InstanceMetadata(ctx context.Context) domain.InstanceMetadata
}
