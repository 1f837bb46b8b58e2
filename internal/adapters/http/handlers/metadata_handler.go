package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/todo-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-api/internal/ports"
)

// MetadataHandler handles HTTP requests for instance identity metadata.
type MetadataHandler struct {
	service ports.MetadataService
}

// NewMetadataHandler creates a new MetadataHandler with the given service port.
func NewMetadataHandler(service ports.MetadataService) *MetadataHandler {
	return &MetadataHandler{service: service}
}

// GetMetadata handles GET /api/metadata. Lookups are best-effort; failed
// facts come back as placeholders, so this endpoint always returns 200.
func (h *MetadataHandler) GetMetadata(w http.ResponseWriter, r *http.Request) {
	meta := h.service.InstanceMetadata(r.Context())
	writeJSON(w, http.StatusOK, dto.ToMetadataResponse(meta))
}
