package handlers

import (
	"context"
	"log"
	"net/http"

	"restaurant-finder/middleware"
	"restaurant-finder/models"
)

// Finder answers a find request for raw latitude and longitude values.
type Finder interface {
	HandleFind(ctx context.Context, rawLat, rawLon string) (*models.FindResult, error)
}

type FindHandler struct {
	finder Finder
}

func NewFindHandler(finder Finder) *FindHandler {
	return &FindHandler{finder: finder}
}

// Find serves GET /api/find?lat=&lon=.
func (h *FindHandler) Find(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	result, err := h.finder.HandleFind(r.Context(), query.Get("lat"), query.Get("lon"))
	if err != nil {
		log.Printf("[%s] Rejected find request lat=%q lon=%q: %v", middleware.RequestID(r.Context()), query.Get("lat"), query.Get("lon"), err)
		middleware.WriteError(w, err)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, result)
}
