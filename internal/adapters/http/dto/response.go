// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/todo-api/internal/domain"
)

// TodoResponse represents a single todo in HTTP responses.
type TodoResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"created_at"`
}

// ToTodoResponse converts a domain Todo entity to an HTTP response DTO.
func ToTodoResponse(t *domain.Todo) TodoResponse {
	return TodoResponse{
		ID:        t.ID,
		Title:     t.Title,
		Completed: t.Completed,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
}

// ToTodoListResponse converts a slice of domain Todo entities to the bare
// JSON array the list endpoint returns. The result is never nil so an empty
// list serializes as [] rather than null.
func ToTodoListResponse(todos []domain.Todo) []TodoResponse {
	items := make([]TodoResponse, len(todos))
	for i := range todos {
		items[i] = ToTodoResponse(&todos[i])
	}
	return items
}

// MessageResponse is the confirmation payload for mutations, which do not
// echo the affected record.
type MessageResponse struct {
	Message string `json:"message"`
}

// MetadataResponse represents instance identity facts in HTTP responses.
type MetadataResponse struct {
	InstanceID       string `json:"instance_id"`
	InstanceType     string `json:"instance_type"`
	AvailabilityZone string `json:"availability_zone"`
	PrivateIPv4      string `json:"private_ipv4"`
}

// ToMetadataResponse converts domain instance metadata to an HTTP response DTO.
func ToMetadataResponse(m domain.InstanceMetadata) MetadataResponse {
	return MetadataResponse{
		InstanceID:       m.InstanceID,
		InstanceType:     m.InstanceType,
		AvailabilityZone: m.AvailabilityZone,
		PrivateIPv4:      m.PrivateIPv4,
	}
}

// DatabaseHealthResponse reports readiness of the database dependency.
type DatabaseHealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// NewDatabaseHealthResponse builds the readiness payload for the given state.
func NewDatabaseHealthResponse(healthy bool) DatabaseHealthResponse {
	if healthy {
		return DatabaseHealthResponse{Status: "healthy", Database: "connected"}
	}
	return DatabaseHealthResponse{Status: "unhealthy", Database: "disconnected"}
}
