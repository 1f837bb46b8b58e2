package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/todo-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-api/internal/ports"
)

// HealthHandler handles liveness and readiness HTTP endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health. It always returns 200 with a plain-text
// body, independent of downstream dependencies.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, "OK")
}

// DatabaseReadiness handles GET /dbactive. Returns 200 when every
// registered check passes, 503 when any fails.
func (h *HealthHandler) DatabaseReadiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	healthy := true
	for _, err := range results {
		if err != nil {
			healthy = false
			break
		}
	}

	code := http.StatusOK
	if !healthy {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, dto.NewDatabaseHealthResponse(healthy))
}
