package handlers

import (
	"github.com/gorilla/mux"

	"restaurant-finder/middleware"
)

// NewRouter wires the API and page routes with the middleware chain.
func NewRouter(findHandler *FindHandler, pageHandler *PageHandler, allowedOrigins []string) *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.ErrorMiddleware())
	r.Use(middleware.CORSMiddleware(allowedOrigins))

	// API routes
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/find", findHandler.Find).Methods("GET", "OPTIONS")

	// Everything else gets the page
	r.PathPrefix("/").HandlerFunc(pageHandler.Index)

	return r
}
