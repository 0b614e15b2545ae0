package api

import (
	"net/http"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status  string                 `json:"status"`
	Message string                 `json:"message"`
	Items   int                    `json:"items"`
	Memory  map[string]interface{} `json:"memory,omitempty"`
}

// memoryReporter is implemented by stores that can report runtime usage
type memoryReporter interface {
	GetMemoryStats() map[string]interface{}
}

// HandleHealth handles GET requests to the health check endpoint
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:  "healthy",
		Message: "go-items is running",
		Items:   h.store.Count(),
	}
	if reporter, ok := h.store.(memoryReporter); ok {
		response.Memory = reporter.GetMemoryStats()
	}

	writeJSON(w, http.StatusOK, response)
}
