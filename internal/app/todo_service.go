// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jsamuelsen11/todo-api/internal/domain"
	"github.com/jsamuelsen11/todo-api/internal/ports"
)

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

// TodoService implements ports.TodoService by orchestrating calls to the
// todo store through the TodoStore port. It handles validation and
// structured logging but contains no persistence logic.
type TodoService struct {
	store  ports.TodoStore
	logger *slog.Logger
}

// NewTodoService creates a TodoService. The store port provides todo
// persistence. The logger is used for structured request/error logging;
// a nil logger discards all output.
func NewTodoService(store ports.TodoStore, logger *slog.Logger) *TodoService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TodoService{
		store:  store,
		logger: logger,
	}
}

// ListTodos returns all todos, newest first.
func (s *TodoService) ListTodos(ctx context.Context) ([]domain.Todo, error) {
	s.logger.InfoContext(ctx, "listing todos")

	todos, err := s.store.ListTodos(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list todos",
			slog.String("operation", "ListTodos"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return todos, nil
}

// CreateTodo validates and creates a new todo, returning the created entity
// with store-assigned fields (ID, CreatedAt). The title is stored trimmed.
func (s *TodoService) CreateTodo(ctx context.Context, td *domain.Todo) (*domain.Todo, error) {
	s.logger.InfoContext(ctx, "creating todo", slog.String("title", td.Title))

	td.Title = strings.TrimSpace(td.Title)
	if err := td.Validate(); err != nil {
		return nil, err
	}

	created, err := s.store.CreateTodo(ctx, td)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create todo",
			slog.String("operation", "CreateTodo"),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "todo created", slog.Int64("id", created.ID))
	return created, nil
}

// SetTodoCompleted updates the completion flag of an existing todo.
func (s *TodoService) SetTodoCompleted(ctx context.Context, id int64, completed bool) error {
	s.logger.InfoContext(ctx, "updating todo completion",
		slog.Int64("id", id),
		slog.Bool("completed", completed),
	)

	if err := s.store.SetTodoCompleted(ctx, id, completed); err != nil {
		s.logger.ErrorContext(ctx, "failed to update todo",
			slog.String("operation", "SetTodoCompleted"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}

// DeleteTodo deletes a todo by ID.
func (s *TodoService) DeleteTodo(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting todo", slog.Int64("id", id))

	if err := s.store.DeleteTodo(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete todo",
			slog.String("operation", "DeleteTodo"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}
