package domain

import (
	"strings"
	"time"
)

// msgRequired is the validation message for mandatory fields.
const msgRequired = "is required"

// Todo is a single task item. ID and CreatedAt are assigned by the store;
// Completed is the only field that changes after creation.
type Todo struct {
	ID        int64
	Title     string
	Completed bool
	CreatedAt time.Time
}

// Validate checks business rules for the Todo entity.
// Returns a *ValidationError (wrapping ErrValidation) with per-field details,
// or nil if all rules pass.
func (t *Todo) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.Title) == "" {
		fields["title"] = msgRequired
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
