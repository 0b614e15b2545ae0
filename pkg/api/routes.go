package api

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API routes with the given router
func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/health", h.HandleHealth).Methods("GET")

	// Collection operations; view and stats come before {id} so they are not parsed as IDs
	router.HandleFunc("/api/items", h.HandleListItems).Methods("GET")
	router.HandleFunc("/api/items", h.HandleInsert).Methods("POST")
	router.HandleFunc("/api/items/view", h.HandleView).Methods("GET")
	router.HandleFunc("/api/items/stats", h.HandleStats).Methods("GET")

	// Item operations (by ID)
	router.HandleFunc("/api/items/{id}", h.HandleGetById).Methods("GET")
	router.HandleFunc("/api/items/{id}", h.HandleUpdateById).Methods("PUT")
	router.HandleFunc("/api/items/{id}", h.HandleDeleteById).Methods("DELETE")
}
