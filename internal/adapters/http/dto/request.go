package dto

import (
	"strings"

	"github.com/jsamuelsen11/todo-api/internal/domain"
)

const msgRequired = "is required"

// CreateTodoRequest represents the JSON body for creating a new todo.
type CreateTodoRequest struct {
	Title string `json:"title"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateTodoRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return &domain.ValidationError{
			Fields: map[string]string{"title": msgRequired},
		}
	}
	return nil
}

// UpdateTodoRequest represents the JSON body for setting a todo's completion
// state. Completed is a pointer so an absent field can be told apart from an
// explicit false.
type UpdateTodoRequest struct {
	Completed *bool `json:"completed"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateTodoRequest) Validate() error {
	if r.Completed == nil {
		return &domain.ValidationError{
			Fields: map[string]string{"completed": msgRequired},
		}
	}
	return nil
}
